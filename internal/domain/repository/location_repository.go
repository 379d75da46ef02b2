package repository

import (
	"context"

	"github.com/jhoicas/invorya-planning/internal/domain/entity"
)

// LocationRepository define el puerto de lectura para tiendas y bodegas (DIP).
type LocationRepository interface {
	GetByID(ctx context.Context, companyID, id string) (*entity.Location, error)
	// ListByCompany lista las ubicaciones de la empresa; locationType vacío no filtra.
	ListByCompany(ctx context.Context, companyID, locationType string) ([]*entity.Location, error)
}
