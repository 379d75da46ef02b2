package dto

import "time"

// ForecastRequest parámetros para GET /api/forecast.
type ForecastRequest struct {
	ProductID   string  `query:"product_id"`
	LocationID  string  `query:"location_id"`
	Model       string  `query:"model"`        // moving_average (defecto) | exponential_smoothing
	Window      int     `query:"window"`       // promedio móvil; defecto 7, máx 90
	Alpha       float64 `query:"alpha"`        // suavizamiento; defecto 0.3
	Periods     int     `query:"periods"`      // días a pronosticar; defecto 30, máx 365
	HistoryDays int     `query:"history_days"` // días de historial; defecto 90, máx 730
}

// WarehouseForecastRequest parámetros para GET /api/forecast/warehouse.
type WarehouseForecastRequest struct {
	ProductID string `query:"product_id"`
	Periods   int    `query:"periods"`
}

// ForecastPointDTO predicción de un día con su banda de confianza del 95%.
type ForecastPointDTO struct {
	Date       string  `json:"date"` // YYYY-MM-DD
	Predicted  float64 `json:"predicted"`
	LowerBound float64 `json:"lower_bound"` // puede ser negativo; el cliente decide si recorta
	UpperBound float64 `json:"upper_bound"`
	Model      string  `json:"model"`
}

// ForecastResponse respuesta de GET /api/forecast.
type ForecastResponse struct {
	ProductID   string             `json:"product_id"`
	LocationID  string             `json:"location_id"`
	Model       string             `json:"model"`
	HistoryDays int                `json:"history_days"` // puntos de historial usados
	MAPE        float64            `json:"mape"`         // backtest sobre los últimos días del historial
	Points      []ForecastPointDTO `json:"points"`
	GeneratedAt time.Time          `json:"generated_at"`
	Cached      bool               `json:"cached"`
}

// WarehouseForecastResponse pronóstico agregado de todas las tiendas para abastecer la bodega.
type WarehouseForecastResponse struct {
	ProductID   string             `json:"product_id"`
	ProductName string             `json:"product_name"`
	Stores      int                `json:"stores"`
	Points      []ForecastPointDTO `json:"points"`
	GeneratedAt time.Time          `json:"generated_at"`
}
