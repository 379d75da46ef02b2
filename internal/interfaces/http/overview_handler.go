package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/invorya-planning/internal/application/dto"
)

type overviewService interface {
	Summary(ctx context.Context, companyID, locationID string) (*dto.OverviewDTO, error)
}

// OverviewHandler resumen de planificación de una ubicación.
type OverviewHandler struct {
	uc overviewService
}

// NewOverviewHandler construye el handler.
func NewOverviewHandler(uc overviewService) *OverviewHandler {
	return &OverviewHandler{uc: uc}
}

// Summary devuelve pedidos pendientes, costo y conteo de riesgos de la ubicación.
// GET /api/overview?location_id=
//
// Respuesta: OverviewDTO (reorder_count, reorder_cost, urgent[5], risk, date_label).
func (h *OverviewHandler) Summary(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	resp, err := h.uc.Summary(c.Context(), companyID, c.Query("location_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}
