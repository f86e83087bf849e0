package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraftAddItemMergesQuantity(t *testing.T) {
	draft := NewDraft()

	draft.AddItem(DraftItem{ProductID: 1, Name: "Oil filter", Price: 59999, Quantity: 2})
	draft.AddItem(DraftItem{ProductID: 1, Name: "Oil filter", Price: 59999, Quantity: 3})

	require.Len(t, draft.Items, 1)
	assert.Equal(t, int64(5), draft.Items[0].Quantity)
}

func TestDraftAddItemDistinctProducts(t *testing.T) {
	draft := NewDraft()

	draft.AddItem(DraftItem{ProductID: 1, Quantity: 1})
	draft.AddItem(DraftItem{ProductID: 2, Quantity: 1})

	assert.Len(t, draft.Items, 2)
}

func TestDraftRemoveItem(t *testing.T) {
	draft := NewDraft()
	draft.AddItem(DraftItem{ProductID: 1, Quantity: 1})
	draft.AddItem(DraftItem{ProductID: 2, Quantity: 4})

	draft.RemoveItem(1)

	require.Len(t, draft.Items, 1)
	assert.Equal(t, int64(2), draft.Items[0].ProductID)

	// Удаление отсутствующей позиции ничего не ломает
	draft.RemoveItem(99)
	assert.Len(t, draft.Items, 1)
}

func TestDraftUpdateQuantity(t *testing.T) {
	draft := NewDraft()
	draft.AddItem(DraftItem{ProductID: 7, Quantity: 1})

	assert.True(t, draft.UpdateQuantity(7, 10))
	assert.Equal(t, int64(10), draft.Items[0].Quantity)

	assert.False(t, draft.UpdateQuantity(8, 1))
}

func TestDraftTotals(t *testing.T) {
	draft := NewDraft()
	draft.AddItem(DraftItem{ProductID: 1, Price: 1000, Quantity: 2})
	draft.AddItem(DraftItem{ProductID: 2, Price: 550, Quantity: 1})

	assert.Equal(t, int64(3), draft.TotalItems())
	assert.Equal(t, int64(2550), draft.TotalPrice())

	draft.Clear()
	assert.Empty(t, draft.Items)
	assert.Zero(t, draft.TotalItems())
	assert.Zero(t, draft.TotalPrice())
}
