package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/invorya-planning/internal/application/dto"
)

type transferService interface {
	Suggest(ctx context.Context, companyID, productID string) (*dto.TransferResponse, error)
}

// TransferHandler sugerencias de traslado entre ubicaciones.
type TransferHandler struct {
	uc transferService
}

// NewTransferHandler construye el handler.
func NewTransferHandler(uc transferService) *TransferHandler {
	return &TransferHandler{uc: uc}
}

// Suggest godoc
// @Summary      Traslados sugeridos
// @Description  Empareja ubicaciones con faltante y con excedente; para perecederos propone redistribución.
// @Tags         transfers
// @Security     Bearer
// @Produce      json
// @Param        product_id  query  string  true  "Producto"
// @Success      200  {object}  dto.TransferResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/transfers [get]
func (h *TransferHandler) Suggest(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	resp, err := h.uc.Suggest(c.Context(), companyID, c.Query("product_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}
