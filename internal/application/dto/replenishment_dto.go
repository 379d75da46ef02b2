package dto

import "github.com/shopspring/decimal"

// ReorderSuggestionDTO pedido sugerido para un producto de la ubicación.
type ReorderSuggestionDTO struct {
	Priority          int             `json:"priority"` // 1 = más urgente
	ProductID         string          `json:"product_id"`
	SKU               string          `json:"sku"`
	ProductName       string          `json:"product_name"`
	LocationID        string          `json:"location_id"`
	CurrentStock      int             `json:"current_stock"`
	ReservedStock     int             `json:"reserved_stock"`
	SafetyStock       int             `json:"safety_stock"`
	ReorderPoint      int             `json:"reorder_point"`
	SuggestedQuantity int             `json:"suggested_quantity"`
	SuggestedDate     string          `json:"suggested_date"` // YYYY-MM-DD
	UnitCost          decimal.Decimal `json:"unit_cost"`
	EstimatedCost     decimal.Decimal `json:"estimated_cost"`
	EOQ               int             `json:"eoq,omitempty"` // 0 si el ítem no tiene costo de pedido
}

// ReorderListResponse respuesta de GET /api/replenishment/reorders.
type ReorderListResponse struct {
	LocationID   string                 `json:"location_id"`
	LocationName string                 `json:"location_name"`
	Total        int                    `json:"total"`
	TotalCost    decimal.Decimal        `json:"total_cost"`
	Suggestions  []ReorderSuggestionDTO `json:"suggestions"`
}

// WarehouseReorderResponse respuesta de GET /api/replenishment/warehouse.
type WarehouseReorderResponse struct {
	ProductID         string          `json:"product_id"`
	WarehouseID       string          `json:"warehouse_id"`
	WarehouseName     string          `json:"warehouse_name"`
	CurrentStock      int             `json:"current_stock"`
	StoreDemand       float64         `json:"store_demand"` // demanda diaria agregada de las tiendas
	SafetyStock       int             `json:"safety_stock"`
	ReorderPoint      int             `json:"reorder_point"`
	ShouldReorder     bool            `json:"should_reorder"`
	SuggestedQuantity int             `json:"suggested_quantity"`
	DaysOfStock       int             `json:"days_of_stock"` // tope 999
	Urgency           string          `json:"urgency"`
	EstimatedCost     decimal.Decimal `json:"estimated_cost"`
}
