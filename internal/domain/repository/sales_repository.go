package repository

import (
	"context"
	"time"

	"github.com/jhoicas/invorya-planning/internal/domain/forecast"
)

// SalesRepository define el puerto de lectura del historial de ventas.
// Las series son diarias, ordenadas por fecha y con ceros en los días sin ventas,
// desde `since` hasta ayer (el día en curso está incompleto).
type SalesRepository interface {
	DailyDemand(ctx context.Context, companyID, productID, locationID string, since time.Time) ([]forecast.DemandPoint, error)
	// DailyDemandByLocation serie por ubicación para un producto (clave: location_id).
	DailyDemandByLocation(ctx context.Context, companyID, productID string, since time.Time) (map[string][]forecast.DemandPoint, error)
	// DailyDemandByProduct serie por producto para una ubicación (clave: product_id).
	DailyDemandByProduct(ctx context.Context, companyID, locationID string, since time.Time) (map[string][]forecast.DemandPoint, error)
}
