package dto

import "github.com/shopspring/decimal"

// OverviewDTO respuesta de GET /api/overview: KPIs de planificación de una ubicación.
type OverviewDTO struct {
	LocationID   string `json:"location_id"`
	LocationName string `json:"location_name"`

	// Reposición
	ReorderCount int                    `json:"reorder_count"`
	ReorderCost  decimal.Decimal        `json:"reorder_cost"`
	Urgent       []ReorderSuggestionDTO `json:"urgent"` // primeras 5 por prioridad

	// Riesgo
	Risk RiskSummaryDTO `json:"risk"`

	DateLabel string `json:"date_label"` // ej: "Marzo 2026"
}
