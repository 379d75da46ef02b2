package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/invorya-planning/internal/application/dto"
)

// Pinger lo cumplen *pgxpool.Pool y el caché Redis.
type Pinger interface {
	Ping(ctx context.Context) error
}

const healthTimeout = 2 * time.Second

// HealthHandler estado del servicio y sus dependencias. cache nil se reporta como "disabled".
type HealthHandler struct {
	db    Pinger
	cache Pinger
}

// NewHealthHandler construye el handler.
func NewHealthHandler(db, cache Pinger) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

// Health godoc
// @Summary      Estado del servicio
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.HealthResponse
// @Failure      503  {object}  dto.HealthResponse
// @Router       /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), healthTimeout)
	defer cancel()

	resp := dto.HealthResponse{Status: "ok", Database: "ok", Cache: "disabled"}
	if h.db != nil {
		if err := h.db.Ping(ctx); err != nil {
			resp.Status, resp.Database = "degraded", "down"
		}
	}
	if h.cache != nil {
		// Sin Redis el servicio sigue respondiendo; solo se pierde el caché.
		resp.Cache = "ok"
		if err := h.cache.Ping(ctx); err != nil {
			resp.Cache = "down"
		}
	}
	if resp.Database == "down" {
		return c.Status(fiber.StatusServiceUnavailable).JSON(resp)
	}
	return c.JSON(resp)
}
