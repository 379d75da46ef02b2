package dto

import "github.com/shopspring/decimal"

// RiskAssessmentDTO riesgo consolidado de un producto en la ubicación.
type RiskAssessmentDTO struct {
	ProductID       string  `json:"product_id"`
	SKU             string  `json:"sku"`
	ProductName     string  `json:"product_name"`
	LocationID      string  `json:"location_id"`
	RiskLevel       string  `json:"risk_level"` // high | medium | safe
	RiskType        string  `json:"risk_type"`  // stockout | overstock | healthy
	Severity        string  `json:"severity"`
	DaysToStockout  int     `json:"days_to_stockout"`  // tope 999
	DaysOfInventory int     `json:"days_of_inventory"` // tope 999
	Turnover        float64 `json:"turnover"`          // rotación anual
	Message         string  `json:"message"`
}

// PerishableRiskDTO lote perecedero próximo a vencer con su descuento sugerido.
type PerishableRiskDTO struct {
	ProductID         string          `json:"product_id"`
	SKU               string          `json:"sku"`
	ProductName       string          `json:"product_name"`
	LocationID        string          `json:"location_id"`
	DaysToExpiry      int             `json:"days_to_expiry"`     // negativo si ya venció
	SuggestedDiscount float64         `json:"suggested_discount"` // porcentaje
	EstimatedRecovery decimal.Decimal `json:"estimated_recovery"`
	WastePrevention   float64         `json:"waste_prevention"` // porcentaje 0–100
}

// RiskSummaryDTO conteos por nivel.
type RiskSummaryDTO struct {
	High       int `json:"high"`
	Medium     int `json:"medium"`
	Safe       int `json:"safe"`
	Perishable int `json:"perishable"`
}

// RiskReportResponse respuesta de GET /api/risk.
type RiskReportResponse struct {
	LocationID  string              `json:"location_id"`
	Summary     RiskSummaryDTO      `json:"summary"`
	Assessments []RiskAssessmentDTO `json:"assessments"`
	Perishables []PerishableRiskDTO `json:"perishables"`
}
