package planning

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/invorya-planning/internal/application/dto"
	"github.com/jhoicas/invorya-planning/internal/domain"
	"github.com/jhoicas/invorya-planning/internal/domain/inventory"
	"github.com/jhoicas/invorya-planning/internal/domain/repository"
)

// RiskUseCase evalúa el riesgo de quiebre, sobrestock y vencimiento del inventario de una ubicación.
type RiskUseCase struct {
	items     repository.InventoryItemRepository
	sales     repository.SalesRepository
	locations repository.LocationRepository
	settings  Settings
	log       zerolog.Logger
	now       func() time.Time
}

// NewRiskUseCase construye el caso de uso.
func NewRiskUseCase(
	items repository.InventoryItemRepository,
	sales repository.SalesRepository,
	locations repository.LocationRepository,
	settings Settings,
	log zerolog.Logger,
) *RiskUseCase {
	return &RiskUseCase{
		items:     items,
		sales:     sales,
		locations: locations,
		settings:  settings.withDefaults(),
		log:       log,
		now:       time.Now,
	}
}

var levelRank = map[inventory.RiskLevel]int{
	inventory.RiskHigh:   0,
	inventory.RiskMedium: 1,
	inventory.RiskSafe:   2,
}

// Assess devuelve una evaluación por ítem (riesgo alto primero) y, para los perecederos con fecha de
// vencimiento dentro de la ventana, el descuento sugerido y la recuperación estimada.
func (uc *RiskUseCase) Assess(ctx context.Context, companyID, locationID string) (*dto.RiskReportResponse, error) {
	if locationID == "" {
		return nil, fmt.Errorf("%w: location_id es requerido", domain.ErrInvalidInput)
	}
	loc, err := uc.locations.GetByID(ctx, companyID, locationID)
	if err != nil {
		return nil, fmt.Errorf("riesgo: ubicación: %w", err)
	}
	if loc == nil {
		return nil, fmt.Errorf("%w: ubicación %s", domain.ErrNotFound, locationID)
	}

	now := uc.now()
	items, err := uc.items.ListByLocation(ctx, companyID, locationID)
	if err != nil {
		return nil, fmt.Errorf("riesgo: inventario: %w", err)
	}
	history, err := uc.sales.DailyDemandByProduct(ctx, companyID, locationID, historyStart(now, uc.settings.HistoryDays))
	if err != nil {
		return nil, fmt.Errorf("riesgo: historial: %w", err)
	}

	resp := &dto.RiskReportResponse{
		LocationID:  loc.ID,
		Assessments: make([]dto.RiskAssessmentDTO, 0, len(items)),
		Perishables: make([]dto.PerishableRiskDTO, 0),
	}
	for _, e := range items {
		item := toItem(e, history[e.ProductID])
		a := inventory.GenerateRiskAssessment(inventory.RiskParams{
			ProductID:              item.ProductID,
			LocationID:             item.LocationID,
			CurrentStock:           item.CurrentStock,
			AvgDailyDemand:         item.AvgDailyDemand,
			LeadTimeDays:           item.LeadTimeDays,
			OverstockThresholdDays: uc.settings.OverstockThresholdDays,
		})
		annualCOGS := item.AvgDailyDemand * 365 * item.CostPrice
		resp.Assessments = append(resp.Assessments, dto.RiskAssessmentDTO{
			ProductID:       e.ProductID,
			SKU:             e.SKU,
			ProductName:     e.ProductName,
			LocationID:      e.LocationID,
			RiskLevel:       string(a.RiskLevel),
			RiskType:        string(a.RiskType),
			Severity:        string(a.Severity),
			DaysToStockout:  a.DaysToStockout,
			DaysOfInventory: reportDays(inventory.DaysOfInventory(float64(item.CurrentStock), item.AvgDailyDemand)),
			Turnover:        inventory.InventoryTurnover(annualCOGS, float64(item.CurrentStock)*item.CostPrice),
			Message:         a.Message,
		})
		switch a.RiskLevel {
		case inventory.RiskHigh:
			resp.Summary.High++
		case inventory.RiskMedium:
			resp.Summary.Medium++
		default:
			resp.Summary.Safe++
		}

		if !item.Perishable || item.ExpiryDate == nil {
			continue
		}
		pr, ok := inventory.AssessPerishableRisk(*item.ExpiryDate, item.CurrentStock, item.SellingPrice, item.CostPrice, item.AvgDailyDemand, now)
		if !ok {
			continue
		}
		resp.Perishables = append(resp.Perishables, dto.PerishableRiskDTO{
			ProductID:         e.ProductID,
			SKU:               e.SKU,
			ProductName:       e.ProductName,
			LocationID:        e.LocationID,
			DaysToExpiry:      pr.DaysToExpiry,
			SuggestedDiscount: pr.SuggestedDiscount,
			EstimatedRecovery: money(pr.EstimatedRecovery),
			WastePrevention:   pr.WastePrevention,
		})
	}
	resp.Summary.Perishable = len(resp.Perishables)

	sort.SliceStable(resp.Assessments, func(i, j int) bool {
		a, b := resp.Assessments[i], resp.Assessments[j]
		ra, rb := levelRank[inventory.RiskLevel(a.RiskLevel)], levelRank[inventory.RiskLevel(b.RiskLevel)]
		if ra != rb {
			return ra < rb
		}
		return a.DaysToStockout < b.DaysToStockout
	})
	sort.SliceStable(resp.Perishables, func(i, j int) bool {
		return resp.Perishables[i].DaysToExpiry < resp.Perishables[j].DaysToExpiry
	})

	uc.log.Debug().
		Str("location_id", locationID).
		Int("high", resp.Summary.High).
		Int("perishable", resp.Summary.Perishable).
		Msg("evaluación de riesgo")

	return resp, nil
}
