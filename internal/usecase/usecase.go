package usecase

import (
	"context"

	"github.com/partlane/go-backend/internal/domain"
)

type AuthUC interface {
	Signup(ctx context.Context, req *SignupReq) (*ProfileRes, error)
	Login(ctx context.Context, req *LoginReq) (*LoginRes, error)
	Logout(ctx context.Context, token string) error
	// Resolve — единственный источник истины о личности вызывающего.
	Resolve(ctx context.Context, token string) (*domain.User, error)
	Profile(ctx context.Context, userID int64) (*ProfileRes, error)
}

type CatalogUC interface {
	ListProducts(ctx context.Context, filter *ProductFilter) ([]ProductInfo, error)
	CreateProduct(ctx context.Context, req *SaveProductReq) (*ProductInfo, error)
	UpdateProduct(ctx context.Context, id int64, req *SaveProductReq) (*ProductInfo, error)
	DeleteProduct(ctx context.Context, id int64) error

	ListCategories(ctx context.Context) ([]domain.Category, error)
	CreateCategory(ctx context.Context, name string) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id int64) error

	ListManufacturers(ctx context.Context) ([]domain.Manufacturer, error)
	CreateManufacturer(ctx context.Context, name string) (*domain.Manufacturer, error)
	DeleteManufacturer(ctx context.Context, id int64) error
}

type DraftUC interface {
	Get(ctx context.Context, userID int64) (*DraftRes, error)
	AddItem(ctx context.Context, userID int64, req *AddDraftItemReq) (*DraftRes, error)
	RemoveItem(ctx context.Context, userID int64, productID int64) (*DraftRes, error)
	UpdateQuantity(ctx context.Context, userID int64, productID int64, quantity int64) (*DraftRes, error)
	Clear(ctx context.Context, userID int64) error
}

type QuotationUC interface {
	Submit(ctx context.Context, userID int64, req *SubmitQuotationReq) (*QuotationRes, error)
	ListOwn(ctx context.Context, userID int64) ([]QuotationRes, error)
	ListAll(ctx context.Context) ([]AdminQuotationRes, error)
	Price(ctx context.Context, req *PriceQuotationReq) (*QuotationRes, error)
}

type UploadUC interface {
	UploadImage(ctx context.Context, req *UploadImageReq) (*UploadImageRes, error)
}
