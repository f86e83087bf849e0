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
	"github.com/partlane/go-backend/internal/usecase"
	"github.com/partlane/go-backend/pkg/e"
)

// ProductRepo реализует репозиторий товаров поверх PostgreSQL.
type ProductRepo struct {
	pool *pgxpool.Pool
	conv converter.ProductConverter
}

func NewProductRepo(pool *pgxpool.Pool, conv converter.ProductConverter) *ProductRepo {
	return &ProductRepo{
		pool: pool,
		conv: conv,
	}
}

func (p *ProductRepo) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	query := `
		INSERT INTO products (name, part_number, price, category_id, manufacturer_id, description, image_url, quantity)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, name, part_number, price, category_id, manufacturer_id, description, image_url, quantity, created_at, updated_at;
	`

	var model converter.ProductModel
	err := p.pool.QueryRow(ctx, query,
		product.Name, product.PartNumber, product.Price,
		product.CategoryID, product.ManufacturerID,
		product.Description, product.ImageURL, product.Quantity,
	).Scan(
		&model.ID, &model.Name, &model.PartNumber, &model.Price,
		&model.CategoryID, &model.ManufacturerID,
		&model.Description, &model.ImageURL, &model.Quantity,
		&model.CreatedAt, &model.UpdatedAt,
	)
	if err != nil {
		if postgresDuplicate(err) {
			return nil, fmt.Errorf("part number %s: %w", product.PartNumber, e.ErrDuplicatePartNumber)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}

// Update заменяет запись товара целиком.
func (p *ProductRepo) Update(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	query := `
		UPDATE products
		SET name = $2, part_number = $3, price = $4, category_id = $5,
			manufacturer_id = $6, description = $7, image_url = $8, quantity = $9,
			updated_at = NOW()
		WHERE id = $1
		RETURNING id, name, part_number, price, category_id, manufacturer_id, description, image_url, quantity, created_at, updated_at;
	`

	var model converter.ProductModel
	err := p.pool.QueryRow(ctx, query,
		product.ID, product.Name, product.PartNumber, product.Price,
		product.CategoryID, product.ManufacturerID,
		product.Description, product.ImageURL, product.Quantity,
	).Scan(
		&model.ID, &model.Name, &model.PartNumber, &model.Price,
		&model.CategoryID, &model.ManufacturerID,
		&model.Description, &model.ImageURL, &model.Quantity,
		&model.CreatedAt, &model.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.ErrProductNotFound
		}
		if postgresDuplicate(err) {
			return nil, fmt.Errorf("part number %s: %w", product.PartNumber, e.ErrDuplicatePartNumber)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}

func (p *ProductRepo) Delete(ctx context.Context, id int64) error {
	result, err := p.pool.Exec(ctx, `DELETE FROM products WHERE id = $1;`, id)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if result.RowsAffected() == 0 {
		return e.ErrProductNotFound
	}

	return nil
}

// List возвращает товары по фильтру, новые первыми. Пустые поля фильтра не ограничивают выборку.
func (p *ProductRepo) List(ctx context.Context, filter *usecase.ProductFilter) ([]usecase.ProductInfo, error) {
	query := `
		SELECT pr.id, pr.name, pr.part_number, pr.price, cat.name, man.name,
			pr.description, pr.image_url, pr.quantity
		FROM products pr
		JOIN categories cat ON pr.category_id = cat.id
		JOIN manufacturers man ON pr.manufacturer_id = man.id
	`

	var conditions []string
	var args []any

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		conditions = append(conditions, fmt.Sprintf(
			"(pr.name ILIKE $%d OR pr.part_number ILIKE $%d OR pr.description ILIKE $%d)", n, n, n,
		))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		conditions = append(conditions, fmt.Sprintf("cat.name = $%d", len(args)))
	}
	if filter.Manufacturer != "" {
		args = append(args, filter.Manufacturer)
		conditions = append(conditions, fmt.Sprintf("man.name = $%d", len(args)))
	}
	if filter.InStockOnly {
		conditions = append(conditions, "pr.quantity > 0")
	}

	for i, cond := range conditions {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += " ORDER BY pr.created_at DESC;"

	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	return scanProductInfos(rows)
}

// GetProductsInfo возвращает информацию о товарах по их идентификаторам,
// включая названия категории и производителя.
func (p *ProductRepo) GetProductsInfo(ctx context.Context, ids []int64) ([]usecase.ProductInfo, error) {
	query := `
		SELECT pr.id, pr.name, pr.part_number, pr.price, cat.name, man.name,
			pr.description, pr.image_url, pr.quantity
		FROM products pr
		JOIN categories cat ON pr.category_id = cat.id
		JOIN manufacturers man ON pr.manufacturer_id = man.id
		WHERE pr.id = ANY($1);
	`

	rows, err := p.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	return scanProductInfos(rows)
}

func (p *ProductRepo) CountByCategory(ctx context.Context, categoryID int64) (int64, error) {
	var count int64
	err := p.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products WHERE category_id = $1;`, categoryID).Scan(&count)
	if err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return count, nil
}

func (p *ProductRepo) CountByManufacturer(ctx context.Context, manufacturerID int64) (int64, error) {
	var count int64
	err := p.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products WHERE manufacturer_id = $1;`, manufacturerID).Scan(&count)
	if err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return count, nil
}

func scanProductInfos(rows pgx.Rows) ([]usecase.ProductInfo, error) {
	result := make([]usecase.ProductInfo, 0)
	for rows.Next() {
		var product usecase.ProductInfo
		if err := rows.Scan(
			&product.ID, &product.Name, &product.PartNumber, &product.Price,
			&product.CategoryName, &product.ManufacturerName,
			&product.Description, &product.ImageURL, &product.Quantity,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		product.InStock = product.Quantity > 0

		result = append(result, product)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}
