package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func priceOf(v int64) *int64 {
	return &v
}

func TestQuotationSubtotal(t *testing.T) {
	request := &QuotationRequest{
		Items: []QuotationItem{
			{ID: 1, Quantity: 2, UnitPrice: priceOf(1000)},
			{ID: 2, Quantity: 1, UnitPrice: priceOf(550)},
		},
	}

	subtotal, ok := request.Subtotal()
	assert.True(t, ok)
	assert.Equal(t, int64(2550), subtotal)
}

func TestQuotationSubtotalPartiallyPriced(t *testing.T) {
	request := &QuotationRequest{
		Items: []QuotationItem{
			{ID: 1, Quantity: 2, UnitPrice: priceOf(1000)},
			{ID: 2, Quantity: 1},
		},
	}

	assert.False(t, request.FullyPriced())

	subtotal, ok := request.Subtotal()
	assert.False(t, ok)
	assert.Zero(t, subtotal)
}

func TestQuotationSubtotalNoItems(t *testing.T) {
	request := NewQuotationRequest(1)

	assert.Equal(t, QuotationPending, request.Status)
	assert.False(t, request.FullyPriced())

	_, ok := request.Subtotal()
	assert.False(t, ok)
}

func TestValidQuotationStatus(t *testing.T) {
	for _, status := range []QuotationStatus{
		QuotationPending, QuotationProcessing, QuotationUpdated, QuotationCompleted, QuotationCancelled,
	} {
		assert.True(t, ValidQuotationStatus(status), string(status))
	}

	assert.False(t, ValidQuotationStatus("SHIPPED"))
	assert.False(t, ValidQuotationStatus(""))
}
