package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/invorya-planning/internal/application/dto"
)

type forecastService interface {
	Forecast(ctx context.Context, companyID string, req dto.ForecastRequest) (*dto.ForecastResponse, error)
	WarehouseForecast(ctx context.Context, companyID string, req dto.WarehouseForecastRequest) (*dto.WarehouseForecastResponse, error)
}

// ForecastHandler maneja los endpoints de pronóstico de demanda.
type ForecastHandler struct {
	uc forecastService
}

// NewForecastHandler construye el handler.
func NewForecastHandler(uc forecastService) *ForecastHandler {
	return &ForecastHandler{uc: uc}
}

// Forecast godoc
// @Summary      Pronóstico de demanda por ubicación
// @Description  Pronostica la demanda diaria con banda de confianza del 95% y devuelve el MAPE del backtest.
// @Tags         forecast
// @Security     Bearer
// @Produce      json
// @Param        product_id    query  string   true   "Producto"
// @Param        location_id   query  string   true   "Ubicación"
// @Param        model         query  string   false  "moving_average | exponential_smoothing"
// @Param        window        query  int      false  "Ventana del promedio móvil (defecto 7)"
// @Param        alpha         query  number   false  "Alpha del suavizamiento (defecto 0.3)"
// @Param        periods       query  int      false  "Días a pronosticar (defecto 30)"
// @Param        history_days  query  int      false  "Días de historial (defecto 90)"
// @Success      200  {object}  dto.ForecastResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/forecast [get]
func (h *ForecastHandler) Forecast(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	var req dto.ForecastRequest
	if err := c.QueryParser(&req); err != nil {
		return invalidQuery(c)
	}
	resp, err := h.uc.Forecast(c.Context(), companyID, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Warehouse godoc
// @Summary      Pronóstico agregado para bodega
// @Description  Suma el pronóstico de promedio móvil de todas las tiendas de la empresa.
// @Tags         forecast
// @Security     Bearer
// @Produce      json
// @Param        product_id  query  string  true   "Producto"
// @Param        periods     query  int     false  "Días a pronosticar (defecto 30)"
// @Success      200  {object}  dto.WarehouseForecastResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/forecast/warehouse [get]
func (h *ForecastHandler) Warehouse(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	var req dto.WarehouseForecastRequest
	if err := c.QueryParser(&req); err != nil {
		return invalidQuery(c)
	}
	resp, err := h.uc.WarehouseForecast(c.Context(), companyID, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}
