package usecase

import (
	"context"

	"github.com/partlane/go-backend/internal/domain"
)

type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter *ProductFilter) ([]ProductInfo, error)
	GetProductsInfo(ctx context.Context, ids []int64) ([]ProductInfo, error)
	CountByCategory(ctx context.Context, categoryID int64) (int64, error)
	CountByManufacturer(ctx context.Context, manufacturerID int64) (int64, error)
}

type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) (*domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
	GetByName(ctx context.Context, name string) (*domain.Category, error)
	Delete(ctx context.Context, id int64) error
}

type ManufacturerRepository interface {
	Create(ctx context.Context, manufacturer *domain.Manufacturer) (*domain.Manufacturer, error)
	List(ctx context.Context) ([]domain.Manufacturer, error)
	GetByName(ctx context.Context, name string) (*domain.Manufacturer, error)
	Delete(ctx context.Context, id int64) error
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetAdmin(ctx context.Context) (*domain.User, error)
}

type CredentialRepository interface {
	Create(ctx context.Context, credential *domain.Credential) (*domain.Credential, error)
	GetByEmail(ctx context.Context, email string) (*domain.Credential, error)
	GetByUserID(ctx context.Context, userID int64) (*domain.Credential, error)
}

type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) (*domain.Session, error)
	// GetUserByTokenHash возвращает пользователя по хэшу токена живой сессии.
	GetUserByTokenHash(ctx context.Context, tokenHash string) (*domain.User, error)
	DeleteByTokenHash(ctx context.Context, tokenHash string) error
}

type QuotationRepository interface {
	CreateRequest(ctx context.Context, request *domain.QuotationRequest) (*domain.QuotationRequest, error)
	CreateItems(ctx context.Context, quotationID int64, items []domain.QuotationItem) ([]domain.QuotationItem, error)
	GetByID(ctx context.Context, id int64) (*domain.QuotationRequest, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.QuotationRequest, error)
	ListAll(ctx context.Context) ([]AdminQuotationInfo, error)
	// UpdatePrices обновляет цены позиций и статус заявки. Должен вызываться
	// внутри транзакции: частичное обновление недопустимо.
	UpdatePrices(ctx context.Context, quotationID int64, status domain.QuotationStatus, prices map[int64]int64) error
}

type OutboxRepository interface {
	Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error)
	GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error)
	MarkAsProcessed(ctx context.Context, id int64) error
}

type CacheRepository interface {
	GetProducts(ctx context.Context, ids []int64) (map[int64]ProductInfo, error)
	SetProducts(ctx context.Context, products []ProductInfo) error
	DeleteProducts(ctx context.Context, ids []int64) error
}

type DraftRepository interface {
	Get(ctx context.Context, userID int64) (*domain.Draft, error)
	Save(ctx context.Context, userID int64, draft *domain.Draft) error
	Delete(ctx context.Context, userID int64) error
}

type IdempotencyRepository interface {
	// Get возвращает ID заявки, уже созданной с данным ключом.
	Get(ctx context.Context, userID int64, key string) (int64, bool, error)
	Set(ctx context.Context, userID int64, key string, quotationID int64) error
}

type ImageRepository interface {
	Upload(ctx context.Context, image *domain.Image) (string, error)
	Delete(ctx context.Context, key string) error
}
