package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/invorya-planning/internal/domain/forecast"
	"github.com/jhoicas/invorya-planning/internal/domain/repository"
)

var _ repository.SalesRepository = (*SalesRepo)(nil)

// SalesRepo consultas de solo lectura sobre la tabla sales para armar series de demanda diaria.
type SalesRepo struct {
	q Querier
}

// NewSalesRepository construye el adaptador del historial de ventas.
func NewSalesRepository(q Querier) *SalesRepo {
	return &SalesRepo{q: q}
}

// DailyDemand serie diaria de un producto en una ubicación. generate_series rellena con cero los días sin ventas.
func (r *SalesRepo) DailyDemand(
	ctx context.Context,
	companyID, productID, locationID string,
	since time.Time,
) ([]forecast.DemandPoint, error) {
	const query = `
	SELECT d::date                          AS day,
	       COALESCE(SUM(s.quantity), 0)::int AS quantity
	FROM generate_series($4::date, CURRENT_DATE - 1, interval '1 day') AS d
	LEFT JOIN sales s
	       ON s.sale_date::date = d::date
	      AND s.company_id     = $1
	      AND s.product_id     = $2
	      AND s.location_id    = $3
	GROUP BY d
	ORDER BY d`

	rows, err := r.q.Query(ctx, query, companyID, productID, locationID, since)
	if err != nil {
		return nil, fmt.Errorf("sales.DailyDemand: %w", err)
	}
	defer rows.Close()

	var series []forecast.DemandPoint
	for rows.Next() {
		var p forecast.DemandPoint
		if err := rows.Scan(&p.Date, &p.Quantity); err != nil {
			return nil, fmt.Errorf("sales.DailyDemand scan: %w", err)
		}
		series = append(series, p)
	}
	return series, rows.Err()
}

// DailyDemandByLocation series diarias de un producto en cada ubicación que lo maneja.
func (r *SalesRepo) DailyDemandByLocation(
	ctx context.Context,
	companyID, productID string,
	since time.Time,
) (map[string][]forecast.DemandPoint, error) {
	const query = `
	SELECT i.location_id,
	       d::date                          AS day,
	       COALESCE(SUM(s.quantity), 0)::int AS quantity
	FROM inventory i
	CROSS JOIN generate_series($3::date, CURRENT_DATE - 1, interval '1 day') AS d
	LEFT JOIN sales s
	       ON s.product_id      = i.product_id
	      AND s.location_id     = i.location_id
	      AND s.company_id      = i.company_id
	      AND s.sale_date::date = d::date
	WHERE i.company_id = $1
	  AND i.product_id = $2
	GROUP BY i.location_id, d
	ORDER BY i.location_id, d`

	return r.grouped(ctx, "sales.DailyDemandByLocation", query, companyID, productID, since)
}

// DailyDemandByProduct series diarias de cada producto con inventario en una ubicación.
func (r *SalesRepo) DailyDemandByProduct(
	ctx context.Context,
	companyID, locationID string,
	since time.Time,
) (map[string][]forecast.DemandPoint, error) {
	const query = `
	SELECT i.product_id,
	       d::date                          AS day,
	       COALESCE(SUM(s.quantity), 0)::int AS quantity
	FROM inventory i
	CROSS JOIN generate_series($3::date, CURRENT_DATE - 1, interval '1 day') AS d
	LEFT JOIN sales s
	       ON s.product_id      = i.product_id
	      AND s.location_id     = i.location_id
	      AND s.company_id      = i.company_id
	      AND s.sale_date::date = d::date
	WHERE i.company_id  = $1
	  AND i.location_id = $2
	GROUP BY i.product_id, d
	ORDER BY i.product_id, d`

	return r.grouped(ctx, "sales.DailyDemandByProduct", query, companyID, locationID, since)
}

// grouped lee filas (clave, día, cantidad) ya ordenadas por clave y día.
func (r *SalesRepo) grouped(ctx context.Context, op, query string, args ...any) (map[string][]forecast.DemandPoint, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	out := make(map[string][]forecast.DemandPoint)
	for rows.Next() {
		var key string
		var p forecast.DemandPoint
		if err := rows.Scan(&key, &p.Date, &p.Quantity); err != nil {
			return nil, fmt.Errorf("%s scan: %w", op, err)
		}
		out[key] = append(out[key], p)
	}
	return out, rows.Err()
}
