package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/invorya-planning/internal/application/dto"
)

type simulationService interface {
	SimulateItem(ctx context.Context, companyID string, req dto.SimulationRequest) (*dto.SimulationResponse, error)
	SimulateRaw(req dto.RawSimulationRequest) (*dto.SimulationResponse, error)
}

// SimulationHandler escenarios "qué pasa si" de demanda y lead time.
type SimulationHandler struct {
	uc simulationService
}

// NewSimulationHandler construye el handler.
func NewSimulationHandler(uc simulationService) *SimulationHandler {
	return &SimulationHandler{uc: uc}
}

// Simulate godoc
// @Summary      Simular escenario de un ítem
// @Tags         simulation
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.SimulationRequest  true  "product_id, location_id, demand_multiplier, lead_time_delay_days"
// @Success      200   {object}  dto.SimulationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/simulation [post]
func (h *SimulationHandler) Simulate(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	var in dto.SimulationRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	resp, err := h.uc.SimulateItem(c.Context(), companyID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// SimulateRaw godoc
// @Summary      Simular escenario con parámetros explícitos
// @Tags         simulation
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.RawSimulationRequest  true  "parámetros del ítem y del escenario"
// @Success      200   {object}  dto.SimulationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/simulation/raw [post]
func (h *SimulationHandler) SimulateRaw(c *fiber.Ctx) error {
	var in dto.RawSimulationRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	resp, err := h.uc.SimulateRaw(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}
