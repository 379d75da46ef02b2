package planning

import (
	"context"
	"time"

	"github.com/jhoicas/invorya-planning/internal/application/dto"
	"github.com/jhoicas/invorya-planning/internal/domain/entity"
)

// ForecastCache guarda pronósticos serializados. Un fallo del caché nunca falla la petición.
type ForecastCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// ReorderReportRenderer genera el documento de la lista de reposición (PDF).
type ReorderReportRenderer interface {
	RenderReorderReport(ctx context.Context, location *entity.Location, report *dto.ReorderListResponse, generatedAt time.Time) ([]byte, error)
}
