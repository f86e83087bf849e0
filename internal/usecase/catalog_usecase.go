package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/partlane/go-backend/internal/domain"
	"github.com/partlane/go-backend/pkg/e"
	"github.com/partlane/go-backend/pkg/logger"
)

// CatalogUseCase реализует управление каталогом: товары, категории, производители.
// Источник истины — PostgreSQL; Redis служит только сквозным кэшем чтения.
type CatalogUseCase struct {
	productRepo      ProductRepository
	categoryRepo     CategoryRepository
	manufacturerRepo ManufacturerRepository
	cacheRepo        CacheRepository
	logger           logger.Logger
}

func NewCatalogUC(
	productRepo ProductRepository,
	categoryRepo CategoryRepository,
	manufacturerRepo ManufacturerRepository,
	cacheRepo CacheRepository,
	logger logger.Logger,
) *CatalogUseCase {
	return &CatalogUseCase{
		productRepo:      productRepo,
		categoryRepo:     categoryRepo,
		manufacturerRepo: manufacturerRepo,
		cacheRepo:        cacheRepo,
		logger:           logger,
	}
}

// ListProducts возвращает товары каталога по фильтру, новые первыми.
func (c *CatalogUseCase) ListProducts(ctx context.Context, filter *ProductFilter) ([]ProductInfo, error) {
	const op = "CatalogUseCase.ListProducts"

	if filter == nil {
		filter = &ProductFilter{}
	}

	products, err := c.productRepo.List(ctx, filter)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return products, nil
}

// CreateProduct создает товар, разрешая категорию и производителя по имени.
func (c *CatalogUseCase) CreateProduct(ctx context.Context, req *SaveProductReq) (*ProductInfo, error) {
	const op = "CatalogUseCase.CreateProduct"

	product, category, manufacturer, err := c.buildProduct(ctx, req)
	if err != nil {
		return nil, err
	}

	created, err := c.productRepo.Create(ctx, product)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewProductInfo(created, category.Name, manufacturer.Name), nil
}

// UpdateProduct заменяет запись товара целиком: частичного обновления полей нет,
// вызывающий обязан прислать все сохраняемые поля.
func (c *CatalogUseCase) UpdateProduct(ctx context.Context, id int64, req *SaveProductReq) (*ProductInfo, error) {
	const op = "CatalogUseCase.UpdateProduct"

	product, category, manufacturer, err := c.buildProduct(ctx, req)
	if err != nil {
		return nil, err
	}
	product.ID = id

	updated, err := c.productRepo.Update(ctx, product)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	c.invalidateProducts(ctx, []int64{id})

	return NewProductInfo(updated, category.Name, manufacturer.Name), nil
}

func (c *CatalogUseCase) DeleteProduct(ctx context.Context, id int64) error {
	const op = "CatalogUseCase.DeleteProduct"

	if err := c.productRepo.Delete(ctx, id); err != nil {
		return e.Wrap(op, err)
	}

	c.invalidateProducts(ctx, []int64{id})

	return nil
}

func (c *CatalogUseCase) ListCategories(ctx context.Context) ([]domain.Category, error) {
	const op = "CatalogUseCase.ListCategories"

	categories, err := c.categoryRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return categories, nil
}

func (c *CatalogUseCase) CreateCategory(ctx context.Context, name string) (*domain.Category, error) {
	const op = "CatalogUseCase.CreateCategory"

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, e.ErrMissingFields
	}

	category, err := c.categoryRepo.Create(ctx, domain.NewCategory(name))
	if err != nil {
		if errors.Is(err, e.ErrDuplicateName) {
			return nil, err
		}
		return nil, e.Wrap(op, err)
	}

	return category, nil
}

// DeleteCategory отклоняет удаление, пока категория используется товарами,
// и сообщает число блокирующих товаров. Частичное удаление исключено.
func (c *CatalogUseCase) DeleteCategory(ctx context.Context, id int64) error {
	const op = "CatalogUseCase.DeleteCategory"

	count, err := c.productRepo.CountByCategory(ctx, id)
	if err != nil {
		return e.Wrap(op, err)
	}
	if count > 0 {
		return fmt.Errorf("%d product(s) reference this category: %w", count, e.ErrCategoryInUse)
	}

	if err := c.categoryRepo.Delete(ctx, id); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

func (c *CatalogUseCase) ListManufacturers(ctx context.Context) ([]domain.Manufacturer, error) {
	const op = "CatalogUseCase.ListManufacturers"

	manufacturers, err := c.manufacturerRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return manufacturers, nil
}

func (c *CatalogUseCase) CreateManufacturer(ctx context.Context, name string) (*domain.Manufacturer, error) {
	const op = "CatalogUseCase.CreateManufacturer"

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, e.ErrMissingFields
	}

	manufacturer, err := c.manufacturerRepo.Create(ctx, domain.NewManufacturer(name))
	if err != nil {
		if errors.Is(err, e.ErrDuplicateName) {
			return nil, err
		}
		return nil, e.Wrap(op, err)
	}

	return manufacturer, nil
}

func (c *CatalogUseCase) DeleteManufacturer(ctx context.Context, id int64) error {
	const op = "CatalogUseCase.DeleteManufacturer"

	count, err := c.productRepo.CountByManufacturer(ctx, id)
	if err != nil {
		return e.Wrap(op, err)
	}
	if count > 0 {
		return fmt.Errorf("%d product(s) reference this manufacturer: %w", count, e.ErrManufacturerInUse)
	}

	if err := c.manufacturerRepo.Delete(ctx, id); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// buildProduct валидирует запрос и разрешает ссылки на категорию и производителя.
func (c *CatalogUseCase) buildProduct(ctx context.Context, req *SaveProductReq) (*domain.Product, *domain.Category, *domain.Manufacturer, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, nil, nil, e.ErrProductNameRequired
	}
	if strings.TrimSpace(req.PartNumber) == "" {
		return nil, nil, nil, e.ErrMissingFields
	}
	if req.Price < 0 {
		return nil, nil, nil, e.ErrInvalidPrice
	}
	if req.Quantity < 0 {
		return nil, nil, nil, e.ErrInvalidQuantity
	}

	category, err := c.categoryRepo.GetByName(ctx, strings.TrimSpace(req.CategoryName))
	if err != nil {
		return nil, nil, nil, err
	}

	manufacturer, err := c.manufacturerRepo.GetByName(ctx, strings.TrimSpace(req.ManufacturerName))
	if err != nil {
		return nil, nil, nil, err
	}

	product := domain.NewProduct(
		strings.TrimSpace(req.Name),
		strings.TrimSpace(req.PartNumber),
		req.Price,
		category.ID,
		manufacturer.ID,
		req.Description,
		req.ImageURL,
		req.Quantity,
	)

	return product, category, manufacturer, nil
}

// invalidateProducts удаляет товары из кэша; ошибка кэша не фатальна.
func (c *CatalogUseCase) invalidateProducts(ctx context.Context, ids []int64) {
	if err := c.cacheRepo.DeleteProducts(ctx, ids); err != nil {
		c.logger.Warnf("Failed to invalidate product cache: %v", err)
	}
}
