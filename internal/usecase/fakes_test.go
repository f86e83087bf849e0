package usecase

import (
	"context"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/partlane/go-backend/internal/domain"
	"github.com/partlane/go-backend/pkg/e"
)

// Заглушки репозиториев для юнит-тестов уровня usecase.

// fakeDB открывает транзакцию-пустышку: Commit и Rollback ничего не делают,
// так что транзакционные сценарии проходят без настоящей базы.
type fakeDB struct{}

func (fakeDB) BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error) {
	return fakeTx{}, nil
}

type fakeTx struct{ pgx.Tx }

func (fakeTx) Commit(ctx context.Context) error   { return nil }
func (fakeTx) Rollback(ctx context.Context) error { return nil }

type fakeOutboxRepo struct {
	events []*OutboxEvent
}

func newFakeOutboxRepo() *fakeOutboxRepo {
	return &fakeOutboxRepo{}
}

func (f *fakeOutboxRepo) Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error) {
	event.ID = int64(len(f.events) + 1)
	f.events = append(f.events, event)
	return event, nil
}

func (f *fakeOutboxRepo) GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutboxRepo) MarkAsProcessed(ctx context.Context, id int64) error {
	return nil
}

type nopLogger struct{}

func (nopLogger) Debugf(format string, args ...any)            {}
func (nopLogger) Infof(format string, args ...any)             {}
func (nopLogger) Warnf(format string, args ...any)             {}
func (nopLogger) Errorf(err error, format string, args ...any) {}

type fakeProductRepo struct {
	products        map[int64]ProductInfo
	countByCategory int64
	countByManuf    int64
	listErr         error
}

func newFakeProductRepo(products ...ProductInfo) *fakeProductRepo {
	repo := &fakeProductRepo{products: map[int64]ProductInfo{}}
	for _, product := range products {
		repo.products[product.ID] = product
	}
	return repo
}

func (f *fakeProductRepo) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	product.ID = int64(len(f.products) + 1)
	return product, nil
}

func (f *fakeProductRepo) Update(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if _, ok := f.products[product.ID]; !ok {
		return nil, e.ErrProductNotFound
	}
	return product, nil
}

func (f *fakeProductRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.products[id]; !ok {
		return e.ErrProductNotFound
	}
	delete(f.products, id)
	return nil
}

func (f *fakeProductRepo) List(ctx context.Context, filter *ProductFilter) ([]ProductInfo, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	result := make([]ProductInfo, 0, len(f.products))
	for _, product := range f.products {
		result = append(result, product)
	}
	return result, nil
}

func (f *fakeProductRepo) GetProductsInfo(ctx context.Context, ids []int64) ([]ProductInfo, error) {
	var result []ProductInfo
	for _, id := range ids {
		if product, ok := f.products[id]; ok {
			result = append(result, product)
		}
	}
	return result, nil
}

func (f *fakeProductRepo) CountByCategory(ctx context.Context, categoryID int64) (int64, error) {
	return f.countByCategory, nil
}

func (f *fakeProductRepo) CountByManufacturer(ctx context.Context, manufacturerID int64) (int64, error) {
	return f.countByManuf, nil
}

type fakeCacheRepo struct {
	mu       sync.Mutex
	products map[int64]ProductInfo
	deleted  []int64
}

func newFakeCacheRepo() *fakeCacheRepo {
	return &fakeCacheRepo{products: map[int64]ProductInfo{}}
}

func (f *fakeCacheRepo) GetProducts(ctx context.Context, ids []int64) (map[int64]ProductInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	result := map[int64]ProductInfo{}
	for _, id := range ids {
		if product, ok := f.products[id]; ok {
			result[id] = product
		}
	}
	return result, nil
}

func (f *fakeCacheRepo) SetProducts(ctx context.Context, products []ProductInfo) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, product := range products {
		f.products[product.ID] = product
	}
	return nil
}

func (f *fakeCacheRepo) DeleteProducts(ctx context.Context, ids []int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, id := range ids {
		delete(f.products, id)
	}
	f.deleted = append(f.deleted, ids...)
	return nil
}

type fakeDraftRepo struct {
	drafts  map[int64]*domain.Draft
	deleted []int64
}

func newFakeDraftRepo() *fakeDraftRepo {
	return &fakeDraftRepo{drafts: map[int64]*domain.Draft{}}
}

func (f *fakeDraftRepo) Get(ctx context.Context, userID int64) (*domain.Draft, error) {
	if draft, ok := f.drafts[userID]; ok {
		return draft, nil
	}
	return domain.NewDraft(), nil
}

func (f *fakeDraftRepo) Save(ctx context.Context, userID int64, draft *domain.Draft) error {
	f.drafts[userID] = draft
	return nil
}

func (f *fakeDraftRepo) Delete(ctx context.Context, userID int64) error {
	delete(f.drafts, userID)
	f.deleted = append(f.deleted, userID)
	return nil
}

type fakeIdempotencyRepo struct {
	keys map[string]int64
}

func newFakeIdempotencyRepo() *fakeIdempotencyRepo {
	return &fakeIdempotencyRepo{keys: map[string]int64{}}
}

func (f *fakeIdempotencyRepo) Get(ctx context.Context, userID int64, key string) (int64, bool, error) {
	id, ok := f.keys[key]
	return id, ok, nil
}

func (f *fakeIdempotencyRepo) Set(ctx context.Context, userID int64, key string, quotationID int64) error {
	f.keys[key] = quotationID
	return nil
}

type fakeQuotationRepo struct {
	byID map[int64]*domain.QuotationRequest
}

func newFakeQuotationRepo(requests ...*domain.QuotationRequest) *fakeQuotationRepo {
	repo := &fakeQuotationRepo{byID: map[int64]*domain.QuotationRequest{}}
	for _, request := range requests {
		repo.byID[request.ID] = request
	}
	return repo
}

func (f *fakeQuotationRepo) CreateRequest(ctx context.Context, request *domain.QuotationRequest) (*domain.QuotationRequest, error) {
	request.ID = int64(len(f.byID) + 1)
	f.byID[request.ID] = request
	return request, nil
}

func (f *fakeQuotationRepo) CreateItems(ctx context.Context, quotationID int64, items []domain.QuotationItem) ([]domain.QuotationItem, error) {
	for i := range items {
		items[i].ID = int64(i + 1)
	}
	return items, nil
}

func (f *fakeQuotationRepo) GetByID(ctx context.Context, id int64) (*domain.QuotationRequest, error) {
	request, ok := f.byID[id]
	if !ok {
		return nil, e.ErrQuotationNotFound
	}
	return request, nil
}

func (f *fakeQuotationRepo) ListByUser(ctx context.Context, userID int64) ([]domain.QuotationRequest, error) {
	var result []domain.QuotationRequest
	for _, request := range f.byID {
		if request.UserID == userID {
			result = append(result, *request)
		}
	}
	return result, nil
}

func (f *fakeQuotationRepo) ListAll(ctx context.Context) ([]AdminQuotationInfo, error) {
	var result []AdminQuotationInfo
	for _, request := range f.byID {
		result = append(result, AdminQuotationInfo{Request: *request})
	}
	return result, nil
}

func (f *fakeQuotationRepo) UpdatePrices(ctx context.Context, quotationID int64, status domain.QuotationStatus, prices map[int64]int64) error {
	request, ok := f.byID[quotationID]
	if !ok {
		return e.ErrQuotationNotFound
	}
	for i := range request.Items {
		if price, ok := prices[request.Items[i].ID]; ok {
			value := price
			request.Items[i].UnitPrice = &value
		}
	}
	request.Status = status
	return nil
}

type fakeUserRepo struct {
	byID map[int64]*domain.User
}

func newFakeUserRepo(users ...*domain.User) *fakeUserRepo {
	repo := &fakeUserRepo{byID: map[int64]*domain.User{}}
	for _, user := range users {
		repo.byID[user.ID] = user
	}
	return repo
}

func (f *fakeUserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	user.ID = int64(len(f.byID) + 1)
	f.byID[user.ID] = user
	return user, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	user, ok := f.byID[id]
	if !ok {
		return nil, e.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) GetAdmin(ctx context.Context) (*domain.User, error) {
	for _, user := range f.byID {
		if user.Role == domain.RoleAdmin {
			return user, nil
		}
	}
	return nil, e.ErrUserNotFound
}

type fakeCredentialRepo struct {
	byEmail map[string]*domain.Credential
}

func newFakeCredentialRepo(credentials ...*domain.Credential) *fakeCredentialRepo {
	repo := &fakeCredentialRepo{byEmail: map[string]*domain.Credential{}}
	for _, credential := range credentials {
		repo.byEmail[credential.Email] = credential
	}
	return repo
}

func (f *fakeCredentialRepo) Create(ctx context.Context, credential *domain.Credential) (*domain.Credential, error) {
	if _, ok := f.byEmail[credential.Email]; ok {
		return nil, e.ErrEmailTaken
	}
	f.byEmail[credential.Email] = credential
	return credential, nil
}

func (f *fakeCredentialRepo) GetByEmail(ctx context.Context, email string) (*domain.Credential, error) {
	credential, ok := f.byEmail[email]
	if !ok {
		return nil, e.ErrUserNotFound
	}
	return credential, nil
}

func (f *fakeCredentialRepo) GetByUserID(ctx context.Context, userID int64) (*domain.Credential, error) {
	for _, credential := range f.byEmail {
		if credential.UserID == userID {
			return credential, nil
		}
	}
	return nil, e.ErrUserNotFound
}

type fakeSessionRepo struct {
	byHash map[string]*domain.Session
	users  map[int64]*domain.User
}

func newFakeSessionRepo(users ...*domain.User) *fakeSessionRepo {
	repo := &fakeSessionRepo{byHash: map[string]*domain.Session{}, users: map[int64]*domain.User{}}
	for _, user := range users {
		repo.users[user.ID] = user
	}
	return repo
}

func (f *fakeSessionRepo) Create(ctx context.Context, session *domain.Session) (*domain.Session, error) {
	f.byHash[session.TokenHash] = session
	return session, nil
}

func (f *fakeSessionRepo) GetUserByTokenHash(ctx context.Context, tokenHash string) (*domain.User, error) {
	session, ok := f.byHash[tokenHash]
	if !ok {
		return nil, e.ErrUserNotFound
	}
	user, ok := f.users[session.UserID]
	if !ok {
		return nil, e.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeSessionRepo) DeleteByTokenHash(ctx context.Context, tokenHash string) error {
	delete(f.byHash, tokenHash)
	return nil
}
