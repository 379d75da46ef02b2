package entity

import "time"

// Tipos de ubicación.
const (
	LocationTypeStore     = "store"
	LocationTypeWarehouse = "warehouse"
)

// Location representa una tienda o bodega donde se almacena inventario (multi-ubicación).
type Location struct {
	ID        string
	CompanyID string
	Name      string
	Type      string // store | warehouse
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsWarehouse indica si la ubicación abastece a otras.
func (l *Location) IsWarehouse() bool {
	return l != nil && l.Type == LocationTypeWarehouse
}
