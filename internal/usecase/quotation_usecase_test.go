package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/partlane/go-backend/internal/domain"
	"github.com/partlane/go-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQuotationUC(quotationRepo *fakeQuotationRepo, productRepo *fakeProductRepo, idempotencyRepo *fakeIdempotencyRepo) *QuotationUseCase {
	return &QuotationUseCase{
		quotationRepo:   quotationRepo,
		productRepo:     productRepo,
		cacheRepo:       newFakeCacheRepo(),
		draftRepo:       newFakeDraftRepo(),
		idempotencyRepo: idempotencyRepo,
		outboxRepo:      newFakeOutboxRepo(),
		dbPool:          fakeDB{},
		logger:          nopLogger{},
	}
}

func TestSubmitValidation(t *testing.T) {
	uc := newQuotationUC(newFakeQuotationRepo(), newFakeProductRepo(), newFakeIdempotencyRepo())

	_, err := uc.Submit(context.Background(), 1, &SubmitQuotationReq{})
	assert.ErrorIs(t, err, e.ErrEmptyItems)

	_, err = uc.Submit(context.Background(), 1, &SubmitQuotationReq{
		Items: []SubmitItemReq{{ProductID: 1, Quantity: 0}},
	})
	assert.ErrorIs(t, err, e.ErrInvalidQuantity)
}

func TestSubmitUnknownProduct(t *testing.T) {
	uc := newQuotationUC(newFakeQuotationRepo(), newFakeProductRepo(ProductInfo{ID: 1}), newFakeIdempotencyRepo())

	_, err := uc.Submit(context.Background(), 1, &SubmitQuotationReq{
		Items: []SubmitItemReq{
			{ProductID: 1, Quantity: 1},
			{ProductID: 99, Quantity: 1},
		},
	})
	assert.ErrorIs(t, err, e.ErrProductNotFound)
}

func TestSubmitIdempotencyHit(t *testing.T) {
	existing := &domain.QuotationRequest{
		ID:        7,
		UserID:    1,
		Status:    domain.QuotationPending,
		CreatedAt: time.Now(),
		Items:     []domain.QuotationItem{{ID: 1, ProductID: 1, Quantity: 2}},
	}

	idempotencyRepo := newFakeIdempotencyRepo()
	require.NoError(t, idempotencyRepo.Set(context.Background(), 1, "key-1", 7))

	uc := newQuotationUC(newFakeQuotationRepo(existing), newFakeProductRepo(), idempotencyRepo)

	res, err := uc.Submit(context.Background(), 1, &SubmitQuotationReq{
		Items:          []SubmitItemReq{{ProductID: 1, Quantity: 2}},
		IdempotencyKey: "key-1",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), res.ID)
}

func TestSubmitCreatesPendingQuotation(t *testing.T) {
	quotationRepo := newFakeQuotationRepo()
	productRepo := newFakeProductRepo(ProductInfo{
		ID:               1,
		Name:             "Фильтр масляный",
		PartNumber:       "W914/2",
		ManufacturerName: "MANN-FILTER",
		CategoryName:     "Фильтры",
		Price:            59900,
	})
	uc := newQuotationUC(quotationRepo, productRepo, newFakeIdempotencyRepo())

	drafts := uc.draftRepo.(*fakeDraftRepo)
	drafts.drafts[1] = domain.NewDraft()

	res, err := uc.Submit(context.Background(), 1, &SubmitQuotationReq{
		Items:          []SubmitItemReq{{ProductID: 1, Quantity: 3}},
		IdempotencyKey: "key-9",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.QuotationPending, res.Status)
	assert.Nil(t, res.Subtotal)
	require.Len(t, quotationRepo.byID, 1)

	// Позиция несет снимок товара на момент отправки
	require.Len(t, res.Items, 1)
	item := res.Items[0]
	assert.Equal(t, int64(3), item.Quantity)
	assert.Equal(t, "Фильтр масляный", item.Snapshot.Name)
	assert.Equal(t, "W914/2", item.Snapshot.PartNumber)
	assert.Equal(t, "MANN-FILTER", item.Snapshot.Manufacturer)
	assert.Equal(t, "Фильтры", item.Snapshot.Category)
	assert.Nil(t, item.UnitPrice)

	outbox := uc.outboxRepo.(*fakeOutboxRepo)
	require.Len(t, outbox.events, 1)
	assert.Equal(t, QuotationSubmitted, outbox.events[0].EventType)
	assert.Equal(t, res.ID, outbox.events[0].QuotationID)

	// Черновик очищен, ключ идемпотентности привязан к заявке
	assert.Contains(t, drafts.deleted, int64(1))
	id, ok, err := uc.idempotencyRepo.Get(context.Background(), 1, "key-9")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, res.ID, id)
}

func TestPriceUnknownStatus(t *testing.T) {
	uc := newQuotationUC(newFakeQuotationRepo(), newFakeProductRepo(), newFakeIdempotencyRepo())

	_, err := uc.Price(context.Background(), &PriceQuotationReq{
		QuotationID: 1,
		Status:      "SHIPPED",
		Items:       []PriceItemReq{{ItemID: 1, UnitPrice: 100}},
	})
	assert.ErrorIs(t, err, e.ErrStatusBadRequest)
}

func TestPriceNegativePrice(t *testing.T) {
	uc := newQuotationUC(newFakeQuotationRepo(), newFakeProductRepo(), newFakeIdempotencyRepo())

	_, err := uc.Price(context.Background(), &PriceQuotationReq{
		QuotationID: 1,
		Items:       []PriceItemReq{{ItemID: 1, UnitPrice: -100}},
	})
	assert.ErrorIs(t, err, e.ErrInvalidPrice)
}

func TestPriceQuotationNotFound(t *testing.T) {
	uc := newQuotationUC(newFakeQuotationRepo(), newFakeProductRepo(), newFakeIdempotencyRepo())

	_, err := uc.Price(context.Background(), &PriceQuotationReq{
		QuotationID: 404,
		Items:       []PriceItemReq{{ItemID: 1, UnitPrice: 100}},
	})
	assert.ErrorIs(t, err, e.ErrQuotationNotFound)
}

func TestPriceRejectsPartialPricing(t *testing.T) {
	request := &domain.QuotationRequest{
		ID:     1,
		UserID: 1,
		Status: domain.QuotationPending,
		Items: []domain.QuotationItem{
			{ID: 10, ProductID: 1, Quantity: 1},
			{ID: 11, ProductID: 2, Quantity: 1},
		},
	}
	uc := newQuotationUC(newFakeQuotationRepo(request), newFakeProductRepo(), newFakeIdempotencyRepo())

	// Вторая позиция осталась без цены — заявка не расценивается вовсе
	_, err := uc.Price(context.Background(), &PriceQuotationReq{
		QuotationID: 1,
		Items:       []PriceItemReq{{ItemID: 10, UnitPrice: 100}},
	})
	assert.ErrorIs(t, err, e.ErrUnpricedItems)
	assert.Nil(t, request.Items[0].UnitPrice)
}

func TestPriceRejectsForeignItem(t *testing.T) {
	request := &domain.QuotationRequest{
		ID:     1,
		UserID: 1,
		Status: domain.QuotationPending,
		Items:  []domain.QuotationItem{{ID: 10, ProductID: 1, Quantity: 1}},
	}
	uc := newQuotationUC(newFakeQuotationRepo(request), newFakeProductRepo(), newFakeIdempotencyRepo())

	_, err := uc.Price(context.Background(), &PriceQuotationReq{
		QuotationID: 1,
		Items: []PriceItemReq{
			{ItemID: 10, UnitPrice: 100},
			{ItemID: 999, UnitPrice: 100},
		},
	})
	assert.ErrorIs(t, err, e.ErrStatusBadRequest)
}

func TestPriceUpdatesStatusAndOverwritesPrices(t *testing.T) {
	old := int64(100)
	request := &domain.QuotationRequest{
		ID:     1,
		UserID: 4,
		Status: domain.QuotationPending,
		Items: []domain.QuotationItem{
			{ID: 10, ProductID: 1, Quantity: 2, UnitPrice: &old},
			{ID: 11, ProductID: 2, Quantity: 1},
		},
	}
	uc := newQuotationUC(newFakeQuotationRepo(request), newFakeProductRepo(), newFakeIdempotencyRepo())

	res, err := uc.Price(context.Background(), &PriceQuotationReq{
		QuotationID: 1,
		Items: []PriceItemReq{
			{ItemID: 10, UnitPrice: 1200},
			{ItemID: 11, UnitPrice: 800},
		},
	})
	require.NoError(t, err)

	// Пустой статус в запросе означает UPDATED
	assert.Equal(t, domain.QuotationUpdated, res.Status)

	// Перерасценка перезаписывает прежние цены, не дублируя позиции
	require.Len(t, res.Items, 2)
	require.NotNil(t, res.Items[0].UnitPrice)
	assert.Equal(t, int64(1200), *res.Items[0].UnitPrice)
	require.NotNil(t, res.Items[1].UnitPrice)
	assert.Equal(t, int64(800), *res.Items[1].UnitPrice)
	require.NotNil(t, res.Subtotal)
	assert.Equal(t, int64(3200), *res.Subtotal)

	outbox := uc.outboxRepo.(*fakeOutboxRepo)
	require.Len(t, outbox.events, 1)
	assert.Equal(t, QuotationPriced, outbox.events[0].EventType)
	assert.Equal(t, int64(1), outbox.events[0].QuotationID)
}

func TestListOwnMapsSubtotal(t *testing.T) {
	price := int64(500)
	request := &domain.QuotationRequest{
		ID:     1,
		UserID: 1,
		Status: domain.QuotationUpdated,
		Items:  []domain.QuotationItem{{ID: 10, ProductID: 1, Quantity: 3, UnitPrice: &price}},
	}
	uc := newQuotationUC(newFakeQuotationRepo(request), newFakeProductRepo(), newFakeIdempotencyRepo())

	result, err := uc.ListOwn(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, result, 1)
	require.NotNil(t, result[0].Subtotal)
	assert.Equal(t, int64(1500), *result[0].Subtotal)
}

func TestListOwnUnpricedHasNoSubtotal(t *testing.T) {
	request := &domain.QuotationRequest{
		ID:     1,
		UserID: 1,
		Status: domain.QuotationPending,
		Items:  []domain.QuotationItem{{ID: 10, ProductID: 1, Quantity: 3}},
	}
	uc := newQuotationUC(newFakeQuotationRepo(request), newFakeProductRepo(), newFakeIdempotencyRepo())

	result, err := uc.ListOwn(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Nil(t, result[0].Subtotal)
}
