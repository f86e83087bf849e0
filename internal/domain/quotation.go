package domain

import "time"

type QuotationStatus string

const (
	QuotationPending    QuotationStatus = "PENDING"
	QuotationProcessing QuotationStatus = "PROCESSING"
	QuotationUpdated    QuotationStatus = "UPDATED"
	QuotationCompleted  QuotationStatus = "COMPLETED"
	QuotationCancelled  QuotationStatus = "CANCELLED"
)

// ValidQuotationStatus проверяет, что строка — известный статус заявки.
func ValidQuotationStatus(s QuotationStatus) bool {
	switch s {
	case QuotationPending, QuotationProcessing, QuotationUpdated, QuotationCompleted, QuotationCancelled:
		return true
	}
	return false
}

// ProductSnapshot — неизменяемая копия отображаемых полей товара,
// снятая в момент отправки заявки. Последующие правки каталога
// на уже созданные заявки не влияют.
type ProductSnapshot struct {
	Name         string `json:"name"`
	PartNumber   string `json:"part_number"`
	Manufacturer string `json:"manufacturer"`
	Category     string `json:"category"`
}

// QuotationItem — позиция заявки. После создания меняется только UnitPrice,
// и только действием администратора.
type QuotationItem struct {
	ID        int64
	ProductID int64
	Snapshot  ProductSnapshot
	Quantity  int64
	UnitPrice *int64 // в копейках; nil до назначения цены администратором
	CreatedAt time.Time
}

// QuotationRequest — заявка покупателя на расчет цен.
type QuotationRequest struct {
	ID        int64
	UserID    int64
	Status    QuotationStatus
	CreatedAt time.Time
	UpdatedAt *time.Time
	Items     []QuotationItem
}

func NewQuotationRequest(userID int64) *QuotationRequest {
	return &QuotationRequest{
		UserID: userID,
		Status: QuotationPending,
	}
}

// FullyPriced сообщает, назначена ли цена каждой позиции.
func (q *QuotationRequest) FullyPriced() bool {
	for _, item := range q.Items {
		if item.UnitPrice == nil {
			return false
		}
	}
	return len(q.Items) > 0
}

// Subtotal возвращает итог заявки в копейках (Σ цена × количество).
// Второе значение false, пока хотя бы одна позиция не расценена.
func (q *QuotationRequest) Subtotal() (int64, bool) {
	if !q.FullyPriced() {
		return 0, false
	}

	var total int64
	for _, item := range q.Items {
		total += *item.UnitPrice * item.Quantity
	}
	return total, true
}
