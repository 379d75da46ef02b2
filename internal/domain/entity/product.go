package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto o SKU del catálogo (multi-ubicación).
// El stock y los parámetros de reposición se manejan por ubicación en InventoryItem.
type Product struct {
	ID           string
	CompanyID    string
	SKU          string // código único por empresa
	Name         string
	Category     string
	CostPrice    decimal.Decimal
	SellingPrice decimal.Decimal
	Perishable   bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
