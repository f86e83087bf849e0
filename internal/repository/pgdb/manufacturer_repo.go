package pgdb

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
	"github.com/partlane/go-backend/internal/domain"
	"github.com/partlane/go-backend/internal/repository/pgdb/converter"
	"github.com/partlane/go-backend/pkg/e"
)

// ManufacturerRepo реализует репозиторий производителей поверх PostgreSQL.
type ManufacturerRepo struct {
	pool *pgxpool.Pool
	conv converter.ManufacturerConverter
}

func NewManufacturerRepo(pool *pgxpool.Pool, conv converter.ManufacturerConverter) *ManufacturerRepo {
	return &ManufacturerRepo{pool: pool, conv: conv}
}

func (m *ManufacturerRepo) Create(ctx context.Context, manufacturer *domain.Manufacturer) (*domain.Manufacturer, error) {
	query := `
		INSERT INTO manufacturers(name) VALUES ($1)
		RETURNING id, name, created_at, updated_at;
	`

	var model converter.ManufacturerModel
	if err := m.pool.QueryRow(ctx, query, manufacturer.Name).
		Scan(&model.ID, &model.Name, &model.CreatedAt, &model.UpdatedAt); err != nil {
		if postgresDuplicate(err) {
			return nil, fmt.Errorf("manufacturer %s: %w", manufacturer.Name, e.ErrDuplicateName)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return m.conv.ToEntity(&model), nil
}

func (m *ManufacturerRepo) List(ctx context.Context) ([]domain.Manufacturer, error) {
	rows, err := m.pool.Query(ctx, `SELECT id, name, created_at, updated_at FROM manufacturers ORDER BY name;`)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]domain.Manufacturer, 0)
	for rows.Next() {
		var model converter.ManufacturerModel
		if err := rows.Scan(&model.ID, &model.Name, &model.CreatedAt, &model.UpdatedAt); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, *m.conv.ToEntity(&model))
	}

	return result, nil
}

func (m *ManufacturerRepo) GetByName(ctx context.Context, name string) (*domain.Manufacturer, error) {
	query := `SELECT id, name, created_at, updated_at FROM manufacturers WHERE name = $1;`

	var model converter.ManufacturerModel
	if err := m.pool.QueryRow(ctx, query, name).
		Scan(&model.ID, &model.Name, &model.CreatedAt, &model.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("manufacturer %s: %w", name, e.ErrManufacturerNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return m.conv.ToEntity(&model), nil
}

func (m *ManufacturerRepo) Delete(ctx context.Context, id int64) error {
	result, err := m.pool.Exec(ctx, `DELETE FROM manufacturers WHERE id = $1;`, id)
	if err != nil {
		if postgresForeignKey(err) {
			return e.ErrManufacturerInUse
		}
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if result.RowsAffected() == 0 {
		return e.ErrManufacturerNotFound
	}

	return nil
}
