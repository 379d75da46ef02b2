package repository

import (
	"context"

	"github.com/jhoicas/invorya-planning/internal/domain/entity"
)

// InventoryItemRepository define el puerto para consultar stock y parámetros de reposición por producto+ubicación (DIP).
type InventoryItemRepository interface {
	Get(ctx context.Context, companyID, productID, locationID string) (*entity.InventoryItem, error)
	ListByLocation(ctx context.Context, companyID, locationID string) ([]*entity.InventoryItem, error)
	ListByProduct(ctx context.Context, companyID, productID string) ([]*entity.InventoryItem, error)
}
