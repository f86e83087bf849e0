package usecase

import (
	"context"
	"testing"

	"github.com/partlane/go-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDraftUC(draftRepo *fakeDraftRepo, productRepo *fakeProductRepo) *DraftUseCase {
	return NewDraftUC(draftRepo, productRepo, newFakeCacheRepo(), nopLogger{})
}

func TestDraftAddItemFromCatalog(t *testing.T) {
	ctx := context.Background()
	uc := newDraftUC(newFakeDraftRepo(), newFakeProductRepo(ProductInfo{
		ID:         1,
		Name:       "Oil filter",
		PartNumber: "OF-100",
		Price:      59999,
		Quantity:   5,
		InStock:    true,
	}))

	res, err := uc.AddItem(ctx, 42, &AddDraftItemReq{ProductID: 1, Quantity: 2})
	require.NoError(t, err)

	require.Len(t, res.Items, 1)
	// Поля позиции берутся из каталога, а не из запроса
	assert.Equal(t, "Oil filter", res.Items[0].Name)
	assert.Equal(t, "OF-100", res.Items[0].PartNumber)
	assert.Equal(t, int64(59999), res.Items[0].Price)
	assert.Equal(t, int64(2), res.TotalItems)
	assert.Equal(t, int64(119998), res.TotalPrice)
}

func TestDraftAddItemMerges(t *testing.T) {
	ctx := context.Background()
	uc := newDraftUC(newFakeDraftRepo(), newFakeProductRepo(ProductInfo{ID: 1, Price: 100}))

	_, err := uc.AddItem(ctx, 42, &AddDraftItemReq{ProductID: 1, Quantity: 2})
	require.NoError(t, err)

	res, err := uc.AddItem(ctx, 42, &AddDraftItemReq{ProductID: 1, Quantity: 3})
	require.NoError(t, err)

	require.Len(t, res.Items, 1)
	assert.Equal(t, int64(5), res.Items[0].Quantity)
}

func TestDraftAddItemInvalidQuantity(t *testing.T) {
	uc := newDraftUC(newFakeDraftRepo(), newFakeProductRepo())

	_, err := uc.AddItem(context.Background(), 42, &AddDraftItemReq{ProductID: 1, Quantity: 0})
	assert.ErrorIs(t, err, e.ErrInvalidQuantity)

	_, err = uc.AddItem(context.Background(), 42, &AddDraftItemReq{ProductID: 1, Quantity: -1})
	assert.ErrorIs(t, err, e.ErrInvalidQuantity)
}

func TestDraftAddItemUnknownProduct(t *testing.T) {
	uc := newDraftUC(newFakeDraftRepo(), newFakeProductRepo())

	_, err := uc.AddItem(context.Background(), 42, &AddDraftItemReq{ProductID: 99, Quantity: 1})
	assert.ErrorIs(t, err, e.ErrProductNotFound)
}

func TestDraftUpdateQuantityMissingItem(t *testing.T) {
	uc := newDraftUC(newFakeDraftRepo(), newFakeProductRepo())

	_, err := uc.UpdateQuantity(context.Background(), 42, 7, 3)
	assert.ErrorIs(t, err, e.ErrProductNotFound)

	_, err = uc.UpdateQuantity(context.Background(), 42, 7, 0)
	assert.ErrorIs(t, err, e.ErrInvalidQuantity)
}

func TestDraftRemoveMissingItemIsNoError(t *testing.T) {
	uc := newDraftUC(newFakeDraftRepo(), newFakeProductRepo())

	res, err := uc.RemoveItem(context.Background(), 42, 7)
	require.NoError(t, err)
	assert.Empty(t, res.Items)
}

func TestDraftClear(t *testing.T) {
	ctx := context.Background()
	draftRepo := newFakeDraftRepo()
	uc := newDraftUC(draftRepo, newFakeProductRepo(ProductInfo{ID: 1, Price: 100}))

	_, err := uc.AddItem(ctx, 42, &AddDraftItemReq{ProductID: 1, Quantity: 1})
	require.NoError(t, err)

	require.NoError(t, uc.Clear(ctx, 42))

	res, err := uc.Get(ctx, 42)
	require.NoError(t, err)
	assert.Empty(t, res.Items)
}
