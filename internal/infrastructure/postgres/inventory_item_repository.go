package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/invorya-planning/internal/domain/entity"
	"github.com/jhoicas/invorya-planning/internal/domain/repository"
)

var _ repository.InventoryItemRepository = (*InventoryItemRepo)(nil)

// InventoryItemRepo implementación del puerto InventoryItemRepository sobre PostgreSQL.
type InventoryItemRepo struct {
	q Querier
}

// NewInventoryItemRepository construye el adaptador. Acepta pool o tx (Querier).
func NewInventoryItemRepository(q Querier) *InventoryItemRepo {
	return &InventoryItemRepo{q: q}
}

// Precio y perecibilidad vienen del catálogo; el costo de pedido puede ser NULL (sin EOQ).
const inventoryItemSelect = `
	SELECT i.id, i.company_id, i.product_id, i.location_id, p.sku, p.name,
	       i.current_stock, i.reserved_stock, i.avg_daily_demand::float8, i.lead_time_days::float8,
	       i.holding_cost_percent::float8, COALESCE(i.ordering_cost, 0), p.cost_price, p.selling_price,
	       p.perishable, i.expiry_date, i.updated_at
	FROM inventory i
	JOIN products p ON p.id = i.product_id`

func scanInventoryItem(row pgx.Row) (*entity.InventoryItem, error) {
	var it entity.InventoryItem
	err := row.Scan(
		&it.ID, &it.CompanyID, &it.ProductID, &it.LocationID, &it.SKU, &it.ProductName,
		&it.CurrentStock, &it.ReservedStock, &it.AvgDailyDemand, &it.LeadTimeDays,
		&it.HoldingCostPercent, &it.OrderingCost, &it.CostPrice, &it.SellingPrice,
		&it.Perishable, &it.ExpiryDate, &it.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &it, nil
}

// Get obtiene el registro de inventario de un producto en una ubicación.
func (r *InventoryItemRepo) Get(ctx context.Context, companyID, productID, locationID string) (*entity.InventoryItem, error) {
	query := inventoryItemSelect + `
	WHERE i.company_id = $1 AND i.product_id = $2 AND i.location_id = $3`
	it, err := scanInventoryItem(r.q.QueryRow(ctx, query, companyID, productID, locationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory item: %w", err)
	}
	return it, nil
}

// ListByLocation lista el inventario de una ubicación ordenado por SKU.
func (r *InventoryItemRepo) ListByLocation(ctx context.Context, companyID, locationID string) ([]*entity.InventoryItem, error) {
	query := inventoryItemSelect + `
	WHERE i.company_id = $1 AND i.location_id = $2
	ORDER BY p.sku`
	return r.list(ctx, "list inventory by location", query, companyID, locationID)
}

// ListByProduct lista el inventario de un producto en todas las ubicaciones.
func (r *InventoryItemRepo) ListByProduct(ctx context.Context, companyID, productID string) ([]*entity.InventoryItem, error) {
	query := inventoryItemSelect + `
	WHERE i.company_id = $1 AND i.product_id = $2
	ORDER BY i.location_id`
	return r.list(ctx, "list inventory by product", query, companyID, productID)
}

func (r *InventoryItemRepo) list(ctx context.Context, op, query string, args ...any) ([]*entity.InventoryItem, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var list []*entity.InventoryItem
	for rows.Next() {
		it, err := scanInventoryItem(rows)
		if err != nil {
			return nil, fmt.Errorf("%s scan: %w", op, err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}
