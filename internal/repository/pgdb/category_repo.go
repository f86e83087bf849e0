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

// CategoryRepo реализует репозиторий категорий поверх PostgreSQL.
type CategoryRepo struct {
	pool *pgxpool.Pool
	conv converter.CategoryConverter
}

func NewCategoryRepo(pool *pgxpool.Pool, conv converter.CategoryConverter) *CategoryRepo {
	return &CategoryRepo{pool: pool, conv: conv}
}

func (c *CategoryRepo) Create(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	query := `
		INSERT INTO categories(name) VALUES ($1)
		RETURNING id, name, created_at, updated_at;
	`

	var model converter.CategoryModel
	if err := c.pool.QueryRow(ctx, query, category.Name).
		Scan(&model.ID, &model.Name, &model.CreatedAt, &model.UpdatedAt); err != nil {
		if postgresDuplicate(err) {
			return nil, fmt.Errorf("category %s: %w", category.Name, e.ErrDuplicateName)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(&model), nil
}

func (c *CategoryRepo) List(ctx context.Context) ([]domain.Category, error) {
	rows, err := c.pool.Query(ctx, `SELECT id, name, created_at, updated_at FROM categories ORDER BY name;`)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]domain.Category, 0)
	for rows.Next() {
		var model converter.CategoryModel
		if err := rows.Scan(&model.ID, &model.Name, &model.CreatedAt, &model.UpdatedAt); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, *c.conv.ToEntity(&model))
	}

	return result, nil
}

func (c *CategoryRepo) GetByName(ctx context.Context, name string) (*domain.Category, error) {
	query := `SELECT id, name, created_at, updated_at FROM categories WHERE name = $1;`

	var model converter.CategoryModel
	if err := c.pool.QueryRow(ctx, query, name).
		Scan(&model.ID, &model.Name, &model.CreatedAt, &model.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("category %s: %w", name, e.ErrCategoryNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(&model), nil
}

func (c *CategoryRepo) Delete(ctx context.Context, id int64) error {
	result, err := c.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1;`, id)
	if err != nil {
		// Подстраховка на случай гонки с созданием товара между проверкой и удалением
		if postgresForeignKey(err) {
			return e.ErrCategoryInUse
		}
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if result.RowsAffected() == 0 {
		return e.ErrCategoryNotFound
	}

	return nil
}
