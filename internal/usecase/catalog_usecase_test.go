package usecase

import (
	"context"
	"testing"

	"github.com/partlane/go-backend/internal/domain"
	"github.com/partlane/go-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCategoryRepo struct {
	byName  map[string]*domain.Category
	deleted []int64
}

func newFakeCategoryRepo(categories ...*domain.Category) *fakeCategoryRepo {
	repo := &fakeCategoryRepo{byName: map[string]*domain.Category{}}
	for _, category := range categories {
		repo.byName[category.Name] = category
	}
	return repo
}

func (f *fakeCategoryRepo) Create(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	if _, ok := f.byName[category.Name]; ok {
		return nil, e.ErrDuplicateName
	}
	category.ID = int64(len(f.byName) + 1)
	f.byName[category.Name] = category
	return category, nil
}

func (f *fakeCategoryRepo) List(ctx context.Context) ([]domain.Category, error) {
	var result []domain.Category
	for _, category := range f.byName {
		result = append(result, *category)
	}
	return result, nil
}

func (f *fakeCategoryRepo) GetByName(ctx context.Context, name string) (*domain.Category, error) {
	category, ok := f.byName[name]
	if !ok {
		return nil, e.ErrCategoryNotFound
	}
	return category, nil
}

func (f *fakeCategoryRepo) Delete(ctx context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeManufacturerRepo struct {
	byName  map[string]*domain.Manufacturer
	deleted []int64
}

func newFakeManufacturerRepo(manufacturers ...*domain.Manufacturer) *fakeManufacturerRepo {
	repo := &fakeManufacturerRepo{byName: map[string]*domain.Manufacturer{}}
	for _, manufacturer := range manufacturers {
		repo.byName[manufacturer.Name] = manufacturer
	}
	return repo
}

func (f *fakeManufacturerRepo) Create(ctx context.Context, manufacturer *domain.Manufacturer) (*domain.Manufacturer, error) {
	if _, ok := f.byName[manufacturer.Name]; ok {
		return nil, e.ErrDuplicateName
	}
	manufacturer.ID = int64(len(f.byName) + 1)
	f.byName[manufacturer.Name] = manufacturer
	return manufacturer, nil
}

func (f *fakeManufacturerRepo) List(ctx context.Context) ([]domain.Manufacturer, error) {
	var result []domain.Manufacturer
	for _, manufacturer := range f.byName {
		result = append(result, *manufacturer)
	}
	return result, nil
}

func (f *fakeManufacturerRepo) GetByName(ctx context.Context, name string) (*domain.Manufacturer, error) {
	manufacturer, ok := f.byName[name]
	if !ok {
		return nil, e.ErrManufacturerNotFound
	}
	return manufacturer, nil
}

func (f *fakeManufacturerRepo) Delete(ctx context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func newCatalogUC(productRepo *fakeProductRepo, categoryRepo *fakeCategoryRepo, manufacturerRepo *fakeManufacturerRepo) *CatalogUseCase {
	return NewCatalogUC(productRepo, categoryRepo, manufacturerRepo, newFakeCacheRepo(), nopLogger{})
}

func TestCreateProduct(t *testing.T) {
	uc := newCatalogUC(
		newFakeProductRepo(),
		newFakeCategoryRepo(&domain.Category{ID: 1, Name: "Filters"}),
		newFakeManufacturerRepo(&domain.Manufacturer{ID: 2, Name: "Bosch"}),
	)

	info, err := uc.CreateProduct(context.Background(), &SaveProductReq{
		Name:             "Oil filter",
		PartNumber:       "OF-100",
		Price:            59999,
		CategoryName:     "Filters",
		ManufacturerName: "Bosch",
		Quantity:         5,
	})
	require.NoError(t, err)

	assert.Equal(t, "Filters", info.CategoryName)
	assert.Equal(t, "Bosch", info.ManufacturerName)
	assert.True(t, info.InStock)
}

func TestCreateProductValidation(t *testing.T) {
	uc := newCatalogUC(
		newFakeProductRepo(),
		newFakeCategoryRepo(&domain.Category{ID: 1, Name: "Filters"}),
		newFakeManufacturerRepo(&domain.Manufacturer{ID: 2, Name: "Bosch"}),
	)

	cases := []struct {
		name string
		req  SaveProductReq
		want error
	}{
		{
			name: "empty name",
			req:  SaveProductReq{PartNumber: "OF-100", CategoryName: "Filters", ManufacturerName: "Bosch"},
			want: e.ErrProductNameRequired,
		},
		{
			name: "empty part number",
			req:  SaveProductReq{Name: "Oil filter", CategoryName: "Filters", ManufacturerName: "Bosch"},
			want: e.ErrMissingFields,
		},
		{
			name: "negative price",
			req:  SaveProductReq{Name: "Oil filter", PartNumber: "OF-100", Price: -1, CategoryName: "Filters", ManufacturerName: "Bosch"},
			want: e.ErrInvalidPrice,
		},
		{
			name: "negative quantity",
			req:  SaveProductReq{Name: "Oil filter", PartNumber: "OF-100", Quantity: -1, CategoryName: "Filters", ManufacturerName: "Bosch"},
			want: e.ErrInvalidQuantity,
		},
		{
			name: "unknown category",
			req:  SaveProductReq{Name: "Oil filter", PartNumber: "OF-100", CategoryName: "Brakes", ManufacturerName: "Bosch"},
			want: e.ErrCategoryNotFound,
		},
		{
			name: "unknown manufacturer",
			req:  SaveProductReq{Name: "Oil filter", PartNumber: "OF-100", CategoryName: "Filters", ManufacturerName: "Mann"},
			want: e.ErrManufacturerNotFound,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.CreateProduct(context.Background(), &tc.req)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestDeleteProductInvalidatesCache(t *testing.T) {
	productRepo := newFakeProductRepo(ProductInfo{ID: 10, Name: "Oil filter"})
	cacheRepo := newFakeCacheRepo()
	uc := NewCatalogUC(productRepo, newFakeCategoryRepo(), newFakeManufacturerRepo(), cacheRepo, nopLogger{})

	require.NoError(t, uc.DeleteProduct(context.Background(), 10))
	assert.Contains(t, cacheRepo.deleted, int64(10))

	err := uc.DeleteProduct(context.Background(), 10)
	assert.ErrorIs(t, err, e.ErrProductNotFound)
}

func TestCreateCategoryEmptyName(t *testing.T) {
	uc := newCatalogUC(newFakeProductRepo(), newFakeCategoryRepo(), newFakeManufacturerRepo())

	_, err := uc.CreateCategory(context.Background(), "   ")
	assert.ErrorIs(t, err, e.ErrMissingFields)
}

func TestCreateCategoryDuplicate(t *testing.T) {
	uc := newCatalogUC(newFakeProductRepo(), newFakeCategoryRepo(&domain.Category{ID: 1, Name: "Filters"}), newFakeManufacturerRepo())

	_, err := uc.CreateCategory(context.Background(), "Filters")
	assert.ErrorIs(t, err, e.ErrDuplicateName)
}

func TestDeleteCategoryBlockedByProducts(t *testing.T) {
	productRepo := newFakeProductRepo()
	productRepo.countByCategory = 3
	categoryRepo := newFakeCategoryRepo()
	uc := newCatalogUC(productRepo, categoryRepo, newFakeManufacturerRepo())

	err := uc.DeleteCategory(context.Background(), 1)
	require.ErrorIs(t, err, e.ErrCategoryInUse)
	assert.Contains(t, err.Error(), "3 product(s)")
	assert.Empty(t, categoryRepo.deleted)
}

func TestDeleteCategoryUnused(t *testing.T) {
	categoryRepo := newFakeCategoryRepo()
	uc := newCatalogUC(newFakeProductRepo(), categoryRepo, newFakeManufacturerRepo())

	require.NoError(t, uc.DeleteCategory(context.Background(), 1))
	assert.Equal(t, []int64{1}, categoryRepo.deleted)
}

func TestDeleteManufacturerBlockedByProducts(t *testing.T) {
	productRepo := newFakeProductRepo()
	productRepo.countByManuf = 1
	manufacturerRepo := newFakeManufacturerRepo()
	uc := newCatalogUC(productRepo, newFakeCategoryRepo(), manufacturerRepo)

	err := uc.DeleteManufacturer(context.Background(), 5)
	require.ErrorIs(t, err, e.ErrManufacturerInUse)
	assert.Empty(t, manufacturerRepo.deleted)
}
