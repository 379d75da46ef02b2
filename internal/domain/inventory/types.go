// Package inventory implementa los cálculos de planeación de inventario: stock de seguridad,
// punto de reorden, EOQ, clasificación de riesgo, transferencias entre ubicaciones y simulación.
//
// Todas las funciones son puras: no hacen I/O, no guardan estado y reciben "hoy" como parámetro
// cuando lo necesitan. Los casos de borde (demanda cero, lead time cero, costo de mantener cero)
// se resuelven con valores centinela documentados en cada función, nunca con errores.
package inventory

import "time"

// MaxReportedDays tope para los días hasta quiebre en las salidas (la demanda cero da +Inf).
const MaxReportedDays = 999

// LocationType tipo de ubicación.
type LocationType string

const (
	LocationStore     LocationType = "store"
	LocationWarehouse LocationType = "warehouse"
)

// RiskLevel nivel de riesgo de quiebre o sobrestock.
type RiskLevel string

const (
	RiskHigh   RiskLevel = "high"
	RiskMedium RiskLevel = "medium"
	RiskSafe   RiskLevel = "safe"
)

// RiskType categoría del riesgo reportado.
type RiskType string

const (
	RiskTypeStockout  RiskType = "stockout"
	RiskTypeOverstock RiskType = "overstock"
	RiskTypeExpiry    RiskType = "expiry"
	RiskTypeHealthy   RiskType = "healthy"
)

// Severity severidad para la UI.
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// Priority prioridad de una transferencia.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Urgency urgencia de un pedido de bodega.
type Urgency string

const (
	UrgencyCritical Urgency = "critical"
	UrgencyHigh     Urgency = "high"
	UrgencyMedium   Urgency = "medium"
)

// Item foto de un SKU en una ubicación.
type Item struct {
	ProductID          string
	LocationID         string
	CurrentStock       int
	ReservedStock      int
	AvgDailyDemand     float64
	LeadTimeDays       float64
	HoldingCostPercent float64 // 0–100
	CostPrice          float64
	SellingPrice       float64
	Perishable         bool
	ExpiryDate         *time.Time
}

// ReorderSuggestion pedido sugerido para un SKU bajo su punto de reorden.
type ReorderSuggestion struct {
	ProductID         string
	LocationID        string
	CurrentStock      int
	ReorderPoint      int
	SafetyStock       int
	SuggestedQuantity int
	SuggestedDate     time.Time
	EstimatedCost     float64
}

// LocationStock stock de un producto en una ubicación, entrada del emparejamiento de transferencias.
type LocationStock struct {
	LocationID     string
	LocationName   string
	LocationType   LocationType
	CurrentStock   int
	AvgDailyDemand float64
	LeadTimeDays   float64
	SafetyStock    int
	ReorderPoint   int
}

// TransferSuggestion movimiento propuesto entre dos ubicaciones. Nunca modifica las entradas.
type TransferSuggestion struct {
	ProductID        string
	FromLocationID   string
	FromLocationName string
	ToLocationID     string
	ToLocationName   string
	Quantity         int
	Reason           string
	Priority         Priority
}

// StockoutRisk resultado de AssessStockoutRisk.
type StockoutRisk struct {
	Level          RiskLevel
	DaysToStockout int // tope MaxReportedDays
}

// RiskAssessment clasificación de riesgo de un SKU en una ubicación.
type RiskAssessment struct {
	ProductID      string
	LocationID     string
	RiskLevel      RiskLevel
	RiskType       RiskType
	DaysToStockout int
	Message        string
	Severity       Severity
}

// PerishableRisk recomendación de descuento para un perecedero próximo a vencer.
type PerishableRisk struct {
	ProductID         string
	LocationID        string
	DaysToExpiry      int
	SuggestedDiscount float64 // porcentaje
	EstimatedRecovery float64
	WastePrevention   float64 // porcentaje 0–100
}
