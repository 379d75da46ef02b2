package dto

import "github.com/shopspring/decimal"

// SimulationRequest cuerpo de POST /api/simulation (ítem existente).
type SimulationRequest struct {
	ProductID         string  `json:"product_id"`
	LocationID        string  `json:"location_id"`
	DemandMultiplier  float64 `json:"demand_multiplier"`    // ≤ 0 se trata como 1
	LeadTimeDelayDays float64 `json:"lead_time_delay_days"` // días adicionales de lead time
	ZScore            float64 `json:"z_score,omitempty"`
}

// RawSimulationRequest cuerpo de POST /api/simulation/raw (parámetros explícitos, sin BD).
type RawSimulationRequest struct {
	CurrentStock       int     `json:"current_stock"`
	AvgDailyDemand     float64 `json:"avg_daily_demand"`
	StdDevDemand       float64 `json:"std_dev_demand"`
	LeadTimeDays       float64 `json:"lead_time_days"`
	CostPrice          float64 `json:"cost_price"`
	SellingPrice       float64 `json:"selling_price"`
	HoldingCostPercent float64 `json:"holding_cost_percent"`
	DemandMultiplier   float64 `json:"demand_multiplier"`
	LeadTimeDelayDays  float64 `json:"lead_time_delay_days"`
	ZScore             float64 `json:"z_score,omitempty"`
}

// SimulationMetricsDTO métricas de un escenario.
type SimulationMetricsDTO struct {
	AvgDailyDemand  float64         `json:"avg_daily_demand"`
	StdDevDemand    float64         `json:"std_dev_demand"`
	LeadTimeDays    float64         `json:"lead_time_days"`
	SafetyStock     int             `json:"safety_stock"`
	ReorderPoint    int             `json:"reorder_point"`
	DaysOfInventory int             `json:"days_of_inventory"` // tope 999
	HoldingCost     decimal.Decimal `json:"holding_cost"`
	StockoutRisk    string          `json:"stockout_risk"`
	DaysToStockout  int             `json:"days_to_stockout"`
}

// SimulationImpactDTO diferencias entre escenarios.
type SimulationImpactDTO struct {
	SafetyStockChange     int             `json:"safety_stock_change"`
	ReorderPointChange    int             `json:"reorder_point_change"`
	LostSalesRisk         decimal.Decimal `json:"lost_sales_risk"`
	AdditionalHoldingCost decimal.Decimal `json:"additional_holding_cost"`
}

// SimulationResponse escenario actual vs simulado.
type SimulationResponse struct {
	ProductID  string               `json:"product_id,omitempty"`
	LocationID string               `json:"location_id,omitempty"`
	Before     SimulationMetricsDTO `json:"before"`
	After      SimulationMetricsDTO `json:"after"`
	Impact     SimulationImpactDTO  `json:"impact"`
}
