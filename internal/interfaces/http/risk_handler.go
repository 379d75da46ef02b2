package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/invorya-planning/internal/application/dto"
)

type riskService interface {
	Assess(ctx context.Context, companyID, locationID string) (*dto.RiskReportResponse, error)
}

// RiskHandler expone el reporte de riesgos de inventario.
type RiskHandler struct {
	uc riskService
}

// NewRiskHandler construye el handler.
func NewRiskHandler(uc riskService) *RiskHandler {
	return &RiskHandler{uc: uc}
}

// Report godoc
// @Summary      Reporte de riesgos
// @Description  Quiebre, sobrestock y perecederos próximos a vencer de la ubicación.
// @Tags         risk
// @Security     Bearer
// @Produce      json
// @Param        location_id  query  string  true  "Ubicación"
// @Success      200  {object}  dto.RiskReportResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/risk [get]
func (h *RiskHandler) Report(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	resp, err := h.uc.Assess(c.Context(), companyID, c.Query("location_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}
