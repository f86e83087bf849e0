package http

import (
	"net/http"
	"time"

	"github.com/partlane/go-backend/internal/domain"
	"github.com/partlane/go-backend/internal/usecase"
	"github.com/partlane/go-backend/pkg/logger"
)

type QuotationHandler struct {
	quotationUsecase usecase.QuotationUC
	logger           logger.Logger
}

func NewQuotationHandler(quotationUsecase usecase.QuotationUC, logger logger.Logger) *QuotationHandler {
	return &QuotationHandler{quotationUsecase: quotationUsecase, logger: logger}
}

type submitItemRequest struct {
	ProductID int64 `json:"id"`
	Quantity  int64 `json:"quantity"`
}

type submitQuotationRequest struct {
	Items []submitItemRequest `json:"items"`
}

type priceItemRequest struct {
	ItemID    int64  `json:"id"`
	UnitPrice string `json:"unitPrice"`
}

type priceQuotationRequest struct {
	Status string             `json:"status,omitempty"`
	Items  []priceItemRequest `json:"items"`
}

type quotationItemResponse struct {
	ID           int64   `json:"id"`
	ProductID    int64   `json:"product_id"`
	Name         string  `json:"name"`
	PartNumber   string  `json:"part_number"`
	Manufacturer string  `json:"manufacturer"`
	Category     string  `json:"category"`
	Quantity     int64   `json:"quantity"`
	UnitPrice    *string `json:"unit_price"`
}

type quotationResponse struct {
	ID        int64                   `json:"id"`
	Status    string                  `json:"status"`
	CreatedAt time.Time               `json:"created_at"`
	UpdatedAt *time.Time              `json:"updated_at,omitempty"`
	Items     []quotationItemResponse `json:"items"`
	Subtotal  *string                 `json:"subtotal"`
}

type adminQuotationResponse struct {
	quotationResponse
	UserName    string `json:"user_name"`
	CompanyName string `json:"company_name,omitempty"`
	Email       string `json:"email"`
}

// submitQuotation
//
//	@Summary		Отправка заявки на расчет
//	@Description	Создает заявку со снимками товаров. Заголовок Idempotency-Key делает повтор безопасным.
//	@Tags			quotations
//	@Accept			json
//	@Produce		json
//	@Param			Idempotency-Key	header		string					false	"Ключ идемпотентности"
//	@Param			request			body		submitQuotationRequest	true	"Позиции заявки"
//	@Success		201				{object}	quotationResponse
//	@Failure		400				{object}	ErrorResponse	"Пустой список или неположительное количество"
//	@Failure		404				{object}	ErrorResponse	"Товар не найден"
//	@Router			/quotations [post]
func (q *QuotationHandler) submitQuotation(w http.ResponseWriter, r *http.Request) {
	user := userFromCtx(r.Context())

	var req submitQuotationRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	items := make([]usecase.SubmitItemReq, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, usecase.SubmitItemReq{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	quotation, err := q.quotationUsecase.Submit(r.Context(), user.ID, &usecase.SubmitQuotationReq{
		Items:          items,
		IdempotencyKey: r.Header.Get("Idempotency-Key"),
	})
	if err != nil {
		q.logger.Warnf("submit quotation failed: %v", err)
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, newQuotationResponse(quotation))
}

// listOwnQuotations
//
//	@Summary	Заявки текущего пользователя
//	@Tags		quotations
//	@Produce	json
//	@Success	200	{array}		quotationResponse
//	@Failure	401	{object}	ErrorResponse
//	@Router		/quotations [get]
func (q *QuotationHandler) listOwnQuotations(w http.ResponseWriter, r *http.Request) {
	user := userFromCtx(r.Context())

	quotations, err := q.quotationUsecase.ListOwn(r.Context(), user.ID)
	if err != nil {
		q.logger.Warnf("list quotations failed: %v", err)
		WriteError(w, err)
		return
	}

	result := make([]quotationResponse, 0, len(quotations))
	for i := range quotations {
		result = append(result, *newQuotationResponse(&quotations[i]))
	}

	WriteSuccess(w, http.StatusOK, result)
}

// listAllQuotations
//
//	@Summary	Заявки всех пользователей
//	@Tags		admin
//	@Produce	json
//	@Success	200	{array}		adminQuotationResponse
//	@Failure	403	{object}	ErrorResponse
//	@Router		/admin/quotations [get]
func (q *QuotationHandler) listAllQuotations(w http.ResponseWriter, r *http.Request) {
	quotations, err := q.quotationUsecase.ListAll(r.Context())
	if err != nil {
		q.logger.Warnf("list all quotations failed: %v", err)
		WriteError(w, err)
		return
	}

	result := make([]adminQuotationResponse, 0, len(quotations))
	for i := range quotations {
		result = append(result, adminQuotationResponse{
			quotationResponse: *newQuotationResponse(&quotations[i].QuotationRes),
			UserName:          quotations[i].UserName,
			CompanyName:       quotations[i].CompanyName,
			Email:             quotations[i].Email,
		})
	}

	WriteSuccess(w, http.StatusOK, result)
}

// priceQuotation
//
//	@Summary		Назначение цен по заявке
//	@Description	Каждая позиция заявки должна получить цену, обновление атомарно
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"ID заявки"
//	@Param			request	body		priceQuotationRequest	true	"Цены позиций и новый статус"
//	@Success		200		{object}	quotationResponse
//	@Failure		400		{object}	ErrorResponse	"Не все позиции расценены"
//	@Failure		404		{object}	ErrorResponse	"Заявка не найдена"
//	@Router			/admin/quotations/{id} [put]
func (q *QuotationHandler) priceQuotation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	var req priceQuotationRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	items := make([]usecase.PriceItemReq, 0, len(req.Items))
	for _, item := range req.Items {
		cents, err := parsePriceToCents(item.UnitPrice)
		if err != nil {
			WriteError(w, err)
			return
		}
		items = append(items, usecase.PriceItemReq{
			ItemID:    item.ItemID,
			UnitPrice: cents,
		})
	}

	quotation, err := q.quotationUsecase.Price(r.Context(), &usecase.PriceQuotationReq{
		QuotationID: id,
		Status:      domain.QuotationStatus(req.Status),
		Items:       items,
	})
	if err != nil {
		q.logger.Warnf("price quotation %d failed: %v", id, err)
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newQuotationResponse(quotation))
}

func newQuotationResponse(quotation *usecase.QuotationRes) *quotationResponse {
	items := make([]quotationItemResponse, 0, len(quotation.Items))
	for _, item := range quotation.Items {
		var unitPrice *string
		if item.UnitPrice != nil {
			formatted := formatCents(*item.UnitPrice)
			unitPrice = &formatted
		}

		items = append(items, quotationItemResponse{
			ID:           item.ID,
			ProductID:    item.ProductID,
			Name:         item.Snapshot.Name,
			PartNumber:   item.Snapshot.PartNumber,
			Manufacturer: item.Snapshot.Manufacturer,
			Category:     item.Snapshot.Category,
			Quantity:     item.Quantity,
			UnitPrice:    unitPrice,
		})
	}

	var subtotal *string
	if quotation.Subtotal != nil {
		formatted := formatCents(*quotation.Subtotal)
		subtotal = &formatted
	}

	return &quotationResponse{
		ID:        quotation.ID,
		Status:    string(quotation.Status),
		CreatedAt: quotation.CreatedAt,
		UpdatedAt: quotation.UpdatedAt,
		Items:     items,
		Subtotal:  subtotal,
	}
}
