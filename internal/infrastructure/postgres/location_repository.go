package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/invorya-planning/internal/domain/entity"
	"github.com/jhoicas/invorya-planning/internal/domain/repository"
)

var _ repository.LocationRepository = (*LocationRepo)(nil)

// LocationRepo implementación del puerto LocationRepository sobre PostgreSQL.
type LocationRepo struct {
	q Querier
}

// NewLocationRepository construye el adaptador de persistencia para tiendas y bodegas.
func NewLocationRepository(q Querier) *LocationRepo {
	return &LocationRepo{q: q}
}

// GetByID obtiene una ubicación de la empresa por ID.
func (r *LocationRepo) GetByID(ctx context.Context, companyID, id string) (*entity.Location, error) {
	query := `
		SELECT id, company_id, name, type, COALESCE(address, ''), created_at, updated_at
		FROM locations WHERE company_id = $1 AND id = $2`
	var l entity.Location
	err := r.q.QueryRow(ctx, query, companyID, id).Scan(
		&l.ID, &l.CompanyID, &l.Name, &l.Type, &l.Address, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get location: %w", err)
	}
	return &l, nil
}

// ListByCompany lista ubicaciones por empresa, opcionalmente filtradas por tipo.
func (r *LocationRepo) ListByCompany(ctx context.Context, companyID, locationType string) ([]*entity.Location, error) {
	query := `
		SELECT id, company_id, name, type, COALESCE(address, ''), created_at, updated_at
		FROM locations
		WHERE company_id = $1 AND ($2::text = '' OR type = $2::text)
		ORDER BY name`
	rows, err := r.q.Query(ctx, query, companyID, locationType)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()

	var list []*entity.Location
	for rows.Next() {
		var l entity.Location
		if err := rows.Scan(&l.ID, &l.CompanyID, &l.Name, &l.Type, &l.Address, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
