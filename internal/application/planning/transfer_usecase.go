package planning

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/invorya-planning/internal/application/dto"
	"github.com/jhoicas/invorya-planning/internal/domain"
	"github.com/jhoicas/invorya-planning/internal/domain/entity"
	"github.com/jhoicas/invorya-planning/internal/domain/forecast"
	"github.com/jhoicas/invorya-planning/internal/domain/inventory"
	"github.com/jhoicas/invorya-planning/internal/domain/repository"
	"github.com/jhoicas/invorya-planning/internal/domain/stats"
)

// TransferUseCase sugiere traslados de un producto entre ubicaciones antes de pedir al proveedor.
type TransferUseCase struct {
	items     repository.InventoryItemRepository
	sales     repository.SalesRepository
	locations repository.LocationRepository
	settings  Settings
	log       zerolog.Logger
	now       func() time.Time
}

// NewTransferUseCase construye el caso de uso.
func NewTransferUseCase(
	items repository.InventoryItemRepository,
	sales repository.SalesRepository,
	locations repository.LocationRepository,
	settings Settings,
	log zerolog.Logger,
) *TransferUseCase {
	return &TransferUseCase{
		items:     items,
		sales:     sales,
		locations: locations,
		settings:  settings.withDefaults(),
		log:       log,
		now:       time.Now,
	}
}

// Suggest arma el stock por ubicación del producto (stock de seguridad y punto de reorden calculados con la
// demanda observada) y devuelve los traslados de excedente a faltante y las redistribuciones de perecederos.
func (uc *TransferUseCase) Suggest(ctx context.Context, companyID, productID string) (*dto.TransferResponse, error) {
	if productID == "" {
		return nil, fmt.Errorf("%w: product_id es requerido", domain.ErrInvalidInput)
	}
	now := uc.now()

	var (
		items     []*entity.InventoryItem
		locations []*entity.Location
		history   map[string][]forecast.DemandPoint
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = uc.items.ListByProduct(gctx, companyID, productID)
		if err != nil {
			return fmt.Errorf("inventario: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		locations, err = uc.locations.ListByCompany(gctx, companyID, "")
		if err != nil {
			return fmt.Errorf("ubicaciones: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		history, err = uc.sales.DailyDemandByLocation(gctx, companyID, productID, historyStart(now, uc.settings.HistoryDays))
		if err != nil {
			return fmt.Errorf("historial: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("traslados: %w", err)
	}

	byID := make(map[string]*entity.Location, len(locations))
	for _, l := range locations {
		byID[l.ID] = l
	}

	stocks := make([]inventory.LocationStock, 0, len(items))
	perishables := make([]inventory.PerishableStock, 0, len(items))
	for _, e := range items {
		loc, ok := byID[e.LocationID]
		if !ok {
			continue
		}
		h := history[e.LocationID]
		demand := effectiveDemand(e.AvgDailyDemand, h)
		safety := inventory.SafetyStock(demandStdDev(h), e.LeadTimeDays, uc.settings.ZScore)
		ls := inventory.LocationStock{
			LocationID:     loc.ID,
			LocationName:   loc.Name,
			LocationType:   inventory.LocationType(loc.Type),
			CurrentStock:   e.CurrentStock,
			AvgDailyDemand: demand,
			LeadTimeDays:   e.LeadTimeDays,
			SafetyStock:    safety,
			ReorderPoint:   inventory.ReorderPoint(demand, e.LeadTimeDays, safety),
		}
		stocks = append(stocks, ls)

		ps := inventory.PerishableStock{LocationStock: ls}
		if e.Perishable && e.ExpiryDate != nil {
			days := stats.DaysBetween(now, *e.ExpiryDate)
			ps.DaysToExpiry = &days
		}
		perishables = append(perishables, ps)
	}

	resp := PlanTransfers(productID, stocks, perishables)

	uc.log.Debug().
		Str("product_id", productID).
		Int("transfers", len(resp.Transfers)).
		Int("redistributions", len(resp.Redistributions)).
		Msg("sugerencias de traslado")

	return resp, nil
}

// PlanTransfers arma la respuesta de traslados a partir de los niveles ya calculados por ubicación.
// perishables puede ser nil si el producto no vence.
func PlanTransfers(productID string, stocks []inventory.LocationStock, perishables []inventory.PerishableStock) *dto.TransferResponse {
	return &dto.TransferResponse{
		ProductID:       productID,
		Locations:       len(stocks),
		Transfers:       toTransferDTOs(inventory.SuggestTransfers(productID, stocks)),
		Redistributions: toTransferDTOs(inventory.SuggestPerishableRedistribution(productID, perishables)),
	}
}

func toTransferDTOs(in []inventory.TransferSuggestion) []dto.TransferSuggestionDTO {
	out := make([]dto.TransferSuggestionDTO, len(in))
	for i, t := range in {
		out[i] = dto.TransferSuggestionDTO{
			ProductID:        t.ProductID,
			FromLocationID:   t.FromLocationID,
			FromLocationName: t.FromLocationName,
			ToLocationID:     t.ToLocationID,
			ToLocationName:   t.ToLocationName,
			Quantity:         t.Quantity,
			Reason:           t.Reason,
			Priority:         string(t.Priority),
		}
	}
	return out
}
