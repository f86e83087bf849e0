package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/partlane/go-backend/internal/domain"
	"github.com/partlane/go-backend/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debugf(format string, args ...any)            {}
func (nopLogger) Infof(format string, args ...any)             {}
func (nopLogger) Warnf(format string, args ...any)             {}
func (nopLogger) Errorf(err error, format string, args ...any) {}

// stubQuotationUC запоминает последний запрос и возвращает заготовленный ответ.
type stubQuotationUC struct {
	submitUserID int64
	submitReq    *usecase.SubmitQuotationReq
	priceReq     *usecase.PriceQuotationReq
	res          *usecase.QuotationRes
}

func (s *stubQuotationUC) Submit(ctx context.Context, userID int64, req *usecase.SubmitQuotationReq) (*usecase.QuotationRes, error) {
	s.submitUserID = userID
	s.submitReq = req
	return s.res, nil
}

func (s *stubQuotationUC) ListOwn(ctx context.Context, userID int64) ([]usecase.QuotationRes, error) {
	return nil, nil
}

func (s *stubQuotationUC) ListAll(ctx context.Context) ([]usecase.AdminQuotationRes, error) {
	return nil, nil
}

func (s *stubQuotationUC) Price(ctx context.Context, req *usecase.PriceQuotationReq) (*usecase.QuotationRes, error) {
	s.priceReq = req
	return s.res, nil
}

func quotationRes(id int64, status domain.QuotationStatus) *usecase.QuotationRes {
	return &usecase.QuotationRes{
		ID:        id,
		Status:    status,
		CreatedAt: time.Now().UTC(),
		Items: []domain.QuotationItem{
			{ID: 10, ProductID: 1, Quantity: 3, Snapshot: domain.ProductSnapshot{Name: "Масляный фильтр"}},
		},
	}
}

func TestSubmitQuotationBody(t *testing.T) {
	stub := &stubQuotationUC{res: quotationRes(7, domain.QuotationPending)}
	handler := NewQuotationHandler(stub, nopLogger{})

	body := `{"items":[{"id":1,"quantity":3}]}`
	req := httptest.NewRequest(http.MethodPost, "/quotations", strings.NewReader(body))
	req.Header.Set("Idempotency-Key", "key-1")
	req = req.WithContext(context.WithValue(req.Context(), userCtxKey, &domain.User{ID: 42}))

	rec := httptest.NewRecorder()
	handler.submitQuotation(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	require.NotNil(t, stub.submitReq)
	assert.Equal(t, int64(42), stub.submitUserID)
	assert.Equal(t, "key-1", stub.submitReq.IdempotencyKey)
	require.Len(t, stub.submitReq.Items, 1)
	assert.Equal(t, int64(1), stub.submitReq.Items[0].ProductID)
	assert.Equal(t, int64(3), stub.submitReq.Items[0].Quantity)
}

func TestPriceQuotationBody(t *testing.T) {
	stub := &stubQuotationUC{res: quotationRes(5, domain.QuotationUpdated)}
	handler := NewQuotationHandler(stub, nopLogger{})

	router := chi.NewRouter()
	router.Put("/admin/quotations/{id}", handler.priceQuotation)

	body := `{"status":"UPDATED","items":[{"id":10,"unitPrice":"12.50"}]}`
	req := httptest.NewRequest(http.MethodPut, "/admin/quotations/5", strings.NewReader(body))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.NotNil(t, stub.priceReq)
	assert.Equal(t, int64(5), stub.priceReq.QuotationID)
	assert.Equal(t, domain.QuotationUpdated, stub.priceReq.Status)
	require.Len(t, stub.priceReq.Items, 1)
	assert.Equal(t, int64(10), stub.priceReq.Items[0].ItemID)
	assert.Equal(t, int64(1250), stub.priceReq.Items[0].UnitPrice)
}
