package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem representa el stock de un producto en una ubicación junto con los parámetros
// de reposición (demanda promedio, lead time, costo de mantener). SKU y ProductName vienen del join con products.
type InventoryItem struct {
	ID                 string
	CompanyID          string
	ProductID          string
	LocationID         string
	SKU                string
	ProductName        string
	CurrentStock       int
	ReservedStock      int
	AvgDailyDemand     float64
	LeadTimeDays       float64
	HoldingCostPercent float64         // 0–100 anual
	OrderingCost       decimal.Decimal // costo fijo por pedido (0 = sin EOQ)
	CostPrice          decimal.Decimal
	SellingPrice       decimal.Decimal
	Perishable         bool
	ExpiryDate         *time.Time // lote más próximo a vencer
	UpdatedAt          time.Time
}
