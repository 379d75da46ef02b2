package repository

import (
	"context"

	"github.com/jhoicas/invorya-planning/internal/domain/entity"
)

// ProductRepository define el puerto de lectura para Product (DIP).
type ProductRepository interface {
	GetByID(ctx context.Context, companyID, id string) (*entity.Product, error)
}
