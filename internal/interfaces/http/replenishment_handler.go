package http

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/invorya-planning/internal/application/dto"
)

type replenishmentService interface {
	ReorderList(ctx context.Context, companyID, locationID string) (*dto.ReorderListResponse, error)
	WarehouseReorder(ctx context.Context, companyID, productID, warehouseID string) (*dto.WarehouseReorderResponse, error)
	ReorderReportPDF(ctx context.Context, companyID, locationID string) ([]byte, error)
}

// ReplenishmentHandler maneja la lista de reposición y el pedido de bodega.
type ReplenishmentHandler struct {
	uc replenishmentService
}

// NewReplenishmentHandler construye el handler.
func NewReplenishmentHandler(uc replenishmentService) *ReplenishmentHandler {
	return &ReplenishmentHandler{uc: uc}
}

// ReorderList godoc
// @Summary      Lista de reposición
// @Description  Productos de la ubicación en o bajo su punto de reorden, con cantidad y fecha sugeridas.
//
//	Orden: fecha sugerida más próxima y, a igual fecha, mayor costo.
//
// @Tags         replenishment
// @Security     Bearer
// @Produce      json
// @Param        location_id  query  string  true  "Ubicación"
// @Success      200  {object}  dto.ReorderListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/replenishment/reorders [get]
func (h *ReplenishmentHandler) ReorderList(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	resp, err := h.uc.ReorderList(c.Context(), companyID, c.Query("location_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// ReorderPDF godoc
// @Summary      Lista de reposición en PDF
// @Tags         replenishment
// @Security     Bearer
// @Produce      application/pdf
// @Param        location_id  query  string  true  "Ubicación"
// @Success      200  {file}    binary
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/replenishment/reorders/pdf [get]
func (h *ReplenishmentHandler) ReorderPDF(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	locationID := c.Query("location_id")
	pdf, err := h.uc.ReorderReportPDF(c.Context(), companyID, locationID)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="reposicion-%s.pdf"`, locationID))
	return c.Send(pdf)
}

// Warehouse godoc
// @Summary      Pedido de bodega
// @Description  Decide el pedido de la bodega con la demanda agregada de las tiendas.
// @Tags         replenishment
// @Security     Bearer
// @Produce      json
// @Param        product_id    query  string  true  "Producto"
// @Param        warehouse_id  query  string  true  "Bodega"
// @Success      200  {object}  dto.WarehouseReorderResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/replenishment/warehouse [get]
func (h *ReplenishmentHandler) Warehouse(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	resp, err := h.uc.WarehouseReorder(c.Context(), companyID, c.Query("product_id"), c.Query("warehouse_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}
