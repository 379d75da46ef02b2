package planning

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/invorya-planning/internal/application/dto"
	"github.com/jhoicas/invorya-planning/internal/domain"
	"github.com/jhoicas/invorya-planning/internal/domain/entity"
	"github.com/jhoicas/invorya-planning/internal/domain/inventory"
	"github.com/jhoicas/invorya-planning/internal/domain/repository"
	"github.com/jhoicas/invorya-planning/internal/domain/stats"
)

// ReplenishmentUseCase genera la lista de reposición de una ubicación y el pedido de bodega.
// Cada ítem usa la desviación de su demanda diaria observada para el stock de seguridad.
type ReplenishmentUseCase struct {
	items     repository.InventoryItemRepository
	sales     repository.SalesRepository
	locations repository.LocationRepository
	renderer  ReorderReportRenderer
	settings  Settings
	log       zerolog.Logger
	now       func() time.Time
}

// NewReplenishmentUseCase construye el caso de uso de reposición.
func NewReplenishmentUseCase(
	items repository.InventoryItemRepository,
	sales repository.SalesRepository,
	locations repository.LocationRepository,
	renderer ReorderReportRenderer,
	settings Settings,
	log zerolog.Logger,
) *ReplenishmentUseCase {
	return &ReplenishmentUseCase{
		items:     items,
		sales:     sales,
		locations: locations,
		renderer:  renderer,
		settings:  settings.withDefaults(),
		log:       log,
		now:       time.Now,
	}
}

// ReorderList devuelve los productos de la ubicación en o bajo su punto de reorden, con la cantidad
// y la fecha sugeridas. Orden: fecha sugerida más próxima primero y, a igual fecha, mayor costo.
func (uc *ReplenishmentUseCase) ReorderList(ctx context.Context, companyID, locationID string) (*dto.ReorderListResponse, error) {
	resp, _, err := uc.reorderList(ctx, companyID, locationID)
	return resp, err
}

func (uc *ReplenishmentUseCase) reorderList(ctx context.Context, companyID, locationID string) (*dto.ReorderListResponse, *entity.Location, error) {
	if locationID == "" {
		return nil, nil, fmt.Errorf("%w: location_id es requerido", domain.ErrInvalidInput)
	}
	loc, err := uc.locations.GetByID(ctx, companyID, locationID)
	if err != nil {
		return nil, nil, fmt.Errorf("reposición: ubicación: %w", err)
	}
	if loc == nil {
		return nil, nil, fmt.Errorf("%w: ubicación %s", domain.ErrNotFound, locationID)
	}

	now := uc.now()
	items, err := uc.items.ListByLocation(ctx, companyID, locationID)
	if err != nil {
		return nil, nil, fmt.Errorf("reposición: inventario: %w", err)
	}
	history, err := uc.sales.DailyDemandByProduct(ctx, companyID, locationID, historyStart(now, uc.settings.HistoryDays))
	if err != nil {
		return nil, nil, fmt.Errorf("reposición: historial: %w", err)
	}

	suggestions := make([]dto.ReorderSuggestionDTO, 0, len(items))
	total := decimal.Zero
	for _, e := range items {
		h := history[e.ProductID]
		item := toItem(e, h)
		s, ok := inventory.SuggestReorder(item, demandStdDev(h), now)
		if !ok {
			continue
		}
		cost := e.CostPrice.Mul(decimal.NewFromInt(int64(s.SuggestedQuantity))).Round(2)
		total = total.Add(cost)
		suggestions = append(suggestions, dto.ReorderSuggestionDTO{
			ProductID:         e.ProductID,
			SKU:               e.SKU,
			ProductName:       e.ProductName,
			LocationID:        e.LocationID,
			CurrentStock:      s.CurrentStock,
			ReservedStock:     e.ReservedStock,
			SafetyStock:       s.SafetyStock,
			ReorderPoint:      s.ReorderPoint,
			SuggestedQuantity: s.SuggestedQuantity,
			SuggestedDate:     dateLabel(s.SuggestedDate),
			UnitCost:          e.CostPrice.Round(2),
			EstimatedCost:     cost,
			EOQ:               economicOrder(e, item.AvgDailyDemand),
		})
	}

	// YYYY-MM-DD ordena lexicográficamente igual que cronológicamente.
	sort.SliceStable(suggestions, func(i, j int) bool {
		a, b := suggestions[i], suggestions[j]
		if a.SuggestedDate != b.SuggestedDate {
			return a.SuggestedDate < b.SuggestedDate
		}
		return a.EstimatedCost.GreaterThan(b.EstimatedCost)
	})
	for i := range suggestions {
		suggestions[i].Priority = i + 1
	}

	uc.log.Debug().
		Str("location_id", locationID).
		Int("items", len(items)).
		Int("suggestions", len(suggestions)).
		Msg("lista de reposición")

	return &dto.ReorderListResponse{
		LocationID:   loc.ID,
		LocationName: loc.Name,
		Total:        len(suggestions),
		TotalCost:    total,
		Suggestions:  suggestions,
	}, loc, nil
}

// economicOrder EOQ con demanda anual d×365 y costo de mantener por unidad costo×%/100.
// 0 si el ítem no tiene costo de pedido.
func economicOrder(e *entity.InventoryItem, dailyDemand float64) int {
	ordering := e.OrderingCost.InexactFloat64()
	holding := e.CostPrice.InexactFloat64() * e.HoldingCostPercent / 100
	if ordering <= 0 || holding <= 0 {
		return 0
	}
	return inventory.EconomicOrderQuantity(dailyDemand*365, ordering, holding)
}

// WarehouseReorder decide el pedido de la bodega a partir de la demanda agregada de las tiendas.
// El stock de seguridad usa la desviación de la serie diaria sumada de todas las tiendas.
func (uc *ReplenishmentUseCase) WarehouseReorder(ctx context.Context, companyID, productID, warehouseID string) (*dto.WarehouseReorderResponse, error) {
	if productID == "" || warehouseID == "" {
		return nil, fmt.Errorf("%w: product_id y warehouse_id son requeridos", domain.ErrInvalidInput)
	}
	wh, err := uc.locations.GetByID(ctx, companyID, warehouseID)
	if err != nil {
		return nil, fmt.Errorf("reposición bodega: ubicación: %w", err)
	}
	if wh == nil {
		return nil, fmt.Errorf("%w: bodega %s", domain.ErrNotFound, warehouseID)
	}
	if !wh.IsWarehouse() {
		return nil, fmt.Errorf("%w: la ubicación %s no es una bodega", domain.ErrInvalidInput, warehouseID)
	}
	whItem, err := uc.items.Get(ctx, companyID, productID, warehouseID)
	if err != nil {
		return nil, fmt.Errorf("reposición bodega: inventario: %w", err)
	}
	if whItem == nil {
		return nil, fmt.Errorf("%w: el producto %s no tiene inventario en la bodega", domain.ErrNotFound, productID)
	}

	stores, err := uc.locations.ListByCompany(ctx, companyID, entity.LocationTypeStore)
	if err != nil {
		return nil, fmt.Errorf("reposición bodega: tiendas: %w", err)
	}
	isStore := make(map[string]bool, len(stores))
	for _, s := range stores {
		isStore[s.ID] = true
	}
	storeItems, err := uc.items.ListByProduct(ctx, companyID, productID)
	if err != nil {
		return nil, fmt.Errorf("reposición bodega: inventario tiendas: %w", err)
	}
	history, err := uc.sales.DailyDemandByLocation(ctx, companyID, productID, historyStart(uc.now(), uc.settings.HistoryDays))
	if err != nil {
		return nil, fmt.Errorf("reposición bodega: historial: %w", err)
	}

	var demand float64
	daily := make(map[time.Time]float64)
	for _, it := range storeItems {
		if !isStore[it.LocationID] {
			continue
		}
		h := history[it.LocationID]
		demand += effectiveDemand(it.AvgDailyDemand, h)
		for _, p := range h {
			daily[stats.StartOfDay(p.Date)] += float64(p.Quantity)
		}
	}
	combined := make([]float64, 0, len(daily))
	for _, q := range daily {
		combined = append(combined, q)
	}

	safety := inventory.SafetyStock(stats.StdDev(combined), whItem.LeadTimeDays, uc.settings.ZScore)
	res := inventory.WarehouseReorder(whItem.CurrentStock, demand, whItem.LeadTimeDays, safety)

	return &dto.WarehouseReorderResponse{
		ProductID:         productID,
		WarehouseID:       wh.ID,
		WarehouseName:     wh.Name,
		CurrentStock:      whItem.CurrentStock,
		StoreDemand:       stats.Round1(demand),
		SafetyStock:       safety,
		ReorderPoint:      res.ReorderPoint,
		ShouldReorder:     res.ShouldReorder,
		SuggestedQuantity: res.SuggestedQuantity,
		DaysOfStock:       reportDays(res.DaysOfStock),
		Urgency:           string(res.Urgency),
		EstimatedCost:     whItem.CostPrice.Mul(decimal.NewFromInt(int64(res.SuggestedQuantity))).Round(2),
	}, nil
}

// ReorderReportPDF genera la lista de reposición de la ubicación como documento PDF.
func (uc *ReplenishmentUseCase) ReorderReportPDF(ctx context.Context, companyID, locationID string) ([]byte, error) {
	report, loc, err := uc.reorderList(ctx, companyID, locationID)
	if err != nil {
		return nil, err
	}
	pdf, err := uc.renderer.RenderReorderReport(ctx, loc, report, uc.now())
	if err != nil {
		return nil, fmt.Errorf("reposición: generar PDF: %w", err)
	}
	return pdf, nil
}
