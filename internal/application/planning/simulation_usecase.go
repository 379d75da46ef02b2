package planning

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/invorya-planning/internal/application/dto"
	"github.com/jhoicas/invorya-planning/internal/domain"
	"github.com/jhoicas/invorya-planning/internal/domain/inventory"
	"github.com/jhoicas/invorya-planning/internal/domain/repository"
)

// Límite del multiplicador de demanda aceptado por la API.
const maxDemandMultiplier = 10

// SimulationUseCase ejecuta escenarios "qué pasa si" sobre un ítem existente o parámetros explícitos.
type SimulationUseCase struct {
	items    repository.InventoryItemRepository
	sales    repository.SalesRepository
	settings Settings
	log      zerolog.Logger
	now      func() time.Time
}

// NewSimulationUseCase construye el caso de uso.
func NewSimulationUseCase(
	items repository.InventoryItemRepository,
	sales repository.SalesRepository,
	settings Settings,
	log zerolog.Logger,
) *SimulationUseCase {
	return &SimulationUseCase{
		items:    items,
		sales:    sales,
		settings: settings.withDefaults(),
		log:      log,
		now:      time.Now,
	}
}

// SimulateItem carga el ítem y la desviación de su demanda observada y compara el escenario actual
// contra demanda × multiplicador y lead time + retraso.
func (uc *SimulationUseCase) SimulateItem(ctx context.Context, companyID string, req dto.SimulationRequest) (*dto.SimulationResponse, error) {
	if req.ProductID == "" || req.LocationID == "" {
		return nil, fmt.Errorf("%w: product_id y location_id son requeridos", domain.ErrInvalidInput)
	}
	if err := validateScenario(req.DemandMultiplier, req.LeadTimeDelayDays, req.ZScore); err != nil {
		return nil, err
	}

	e, err := uc.items.Get(ctx, companyID, req.ProductID, req.LocationID)
	if err != nil {
		return nil, fmt.Errorf("simulación: inventario: %w", err)
	}
	if e == nil {
		return nil, fmt.Errorf("%w: el producto %s no tiene inventario en la ubicación %s", domain.ErrNotFound, req.ProductID, req.LocationID)
	}
	history, err := uc.sales.DailyDemand(ctx, companyID, req.ProductID, req.LocationID, historyStart(uc.now(), uc.settings.HistoryDays))
	if err != nil {
		return nil, fmt.Errorf("simulación: historial: %w", err)
	}

	item := toItem(e, history)
	z := req.ZScore
	if z == 0 {
		z = uc.settings.ZScore
	}
	res := inventory.Simulate(inventory.SimulationInput{
		CurrentStock:       item.CurrentStock,
		AvgDailyDemand:     item.AvgDailyDemand,
		StdDevDemand:       demandStdDev(history),
		LeadTimeDays:       item.LeadTimeDays,
		CostPrice:          item.CostPrice,
		SellingPrice:       item.SellingPrice,
		HoldingCostPercent: item.HoldingCostPercent,
		DemandMultiplier:   req.DemandMultiplier,
		LeadTimeDelayDays:  req.LeadTimeDelayDays,
		ZScore:             z,
	})

	resp := toSimulationResponse(res)
	resp.ProductID = req.ProductID
	resp.LocationID = req.LocationID
	return resp, nil
}

// SimulateRaw ejecuta la simulación con los parámetros recibidos, sin consultar la base de datos.
func (uc *SimulationUseCase) SimulateRaw(req dto.RawSimulationRequest) (*dto.SimulationResponse, error) {
	if req.CurrentStock < 0 || req.AvgDailyDemand < 0 || req.StdDevDemand < 0 || req.LeadTimeDays < 0 ||
		req.CostPrice < 0 || req.SellingPrice < 0 || req.HoldingCostPercent < 0 {
		return nil, fmt.Errorf("%w: los parámetros de inventario no pueden ser negativos", domain.ErrInvalidInput)
	}
	if err := validateScenario(req.DemandMultiplier, req.LeadTimeDelayDays, req.ZScore); err != nil {
		return nil, err
	}
	z := req.ZScore
	if z == 0 {
		z = uc.settings.ZScore
	}
	res := inventory.Simulate(inventory.SimulationInput{
		CurrentStock:       req.CurrentStock,
		AvgDailyDemand:     req.AvgDailyDemand,
		StdDevDemand:       req.StdDevDemand,
		LeadTimeDays:       req.LeadTimeDays,
		CostPrice:          req.CostPrice,
		SellingPrice:       req.SellingPrice,
		HoldingCostPercent: req.HoldingCostPercent,
		DemandMultiplier:   req.DemandMultiplier,
		LeadTimeDelayDays:  req.LeadTimeDelayDays,
		ZScore:             z,
	})
	return toSimulationResponse(res), nil
}

func validateScenario(multiplier, delay, z float64) error {
	if math.IsNaN(multiplier) || multiplier < 0 || multiplier > maxDemandMultiplier {
		return fmt.Errorf("%w: demand_multiplier debe estar entre 0 y %d", domain.ErrInvalidInput, maxDemandMultiplier)
	}
	if math.IsNaN(delay) || delay < 0 {
		return fmt.Errorf("%w: lead_time_delay_days no puede ser negativo", domain.ErrInvalidInput)
	}
	if math.IsNaN(z) || z < 0 {
		return fmt.Errorf("%w: z_score no puede ser negativo", domain.ErrInvalidInput)
	}
	return nil
}

func toSimulationResponse(res inventory.SimulationResult) *dto.SimulationResponse {
	return &dto.SimulationResponse{
		Before: toMetricsDTO(res.Before),
		After:  toMetricsDTO(res.After),
		Impact: dto.SimulationImpactDTO{
			SafetyStockChange:     res.Impact.SafetyStockChange,
			ReorderPointChange:    res.Impact.ReorderPointChange,
			LostSalesRisk:         money(res.Impact.LostSalesRisk),
			AdditionalHoldingCost: money(res.Impact.AdditionalHoldingCost),
		},
	}
}

func toMetricsDTO(m inventory.SimulationMetrics) dto.SimulationMetricsDTO {
	return dto.SimulationMetricsDTO{
		AvgDailyDemand:  m.AvgDailyDemand,
		StdDevDemand:    m.StdDevDemand,
		LeadTimeDays:    m.LeadTimeDays,
		SafetyStock:     m.SafetyStock,
		ReorderPoint:    m.ReorderPoint,
		DaysOfInventory: reportDays(m.DaysOfInventory),
		HoldingCost:     money(m.HoldingCost),
		StockoutRisk:    string(m.Stockout.Level),
		DaysToStockout:  m.Stockout.DaysToStockout,
	}
}
