package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/partlane/go-backend/internal/domain"
	"github.com/partlane/go-backend/pkg/e"
	"github.com/partlane/go-backend/pkg/logger"
)

// QuotationUseCase реализует жизненный цикл заявки: отправка покупателем,
// назначение цен администратором, выдача обеим сторонам.
type QuotationUseCase struct {
	quotationRepo   QuotationRepository
	productRepo     ProductRepository
	cacheRepo       CacheRepository
	draftRepo       DraftRepository
	idempotencyRepo IdempotencyRepository
	outboxRepo      OutboxRepository
	dbPool          transaction.Transactional
	logger          logger.Logger
}

func NewQuotationUC(
	quotationRepo QuotationRepository,
	productRepo ProductRepository,
	cacheRepo CacheRepository,
	draftRepo DraftRepository,
	idempotencyRepo IdempotencyRepository,
	outboxRepo OutboxRepository,
	dbPool transaction.Transactional,
	logger logger.Logger,
) *QuotationUseCase {
	return &QuotationUseCase{
		quotationRepo:   quotationRepo,
		productRepo:     productRepo,
		cacheRepo:       cacheRepo,
		draftRepo:       draftRepo,
		idempotencyRepo: idempotencyRepo,
		outboxRepo:      outboxRepo,
		dbPool:          dbPool,
		logger:          logger,
	}
}

// eventPayload — тело события жизненного цикла заявки для Kafka.
type eventPayload struct {
	EventID     string `json:"event_id"`
	EventType   string `json:"event_type"`
	QuotationID int64  `json:"quotation_id"`
	UserID      int64  `json:"user_id,omitempty"`
	OccurredAt  int64  `json:"occurred_at"`
}

// Submit создает заявку со статусом PENDING и снимками товаров на момент отправки.
// Все или ничего: отсутствие любого товара отменяет отправку целиком.
func (q *QuotationUseCase) Submit(ctx context.Context, userID int64, req *SubmitQuotationReq) (*QuotationRes, error) {
	const op = "QuotationUseCase.Submit"

	if err := validateSubmit(req); err != nil {
		return nil, err
	}

	// Повтор с тем же ключом идемпотентности возвращает исходную заявку
	if req.IdempotencyKey != "" {
		if id, ok, err := q.idempotencyRepo.Get(ctx, userID, req.IdempotencyKey); err == nil && ok {
			existing, err := q.quotationRepo.GetByID(ctx, id)
			if err != nil {
				return nil, e.Wrap(op, err)
			}
			return NewQuotationRes(existing), nil
		}
	}

	ids := make([]int64, 0, len(req.Items))
	for _, item := range req.Items {
		ids = append(ids, item.ProductID)
	}

	products, notFound, err := resolveProducts(ctx, q.cacheRepo, q.productRepo, q.logger, ids)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if len(notFound) > 0 {
		return nil, fmt.Errorf("product %d: %w", notFound[0], e.ErrProductNotFound)
	}

	items := make([]domain.QuotationItem, 0, len(req.Items))
	for _, item := range req.Items {
		product := products[item.ProductID]
		items = append(items, domain.QuotationItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Snapshot: domain.ProductSnapshot{
				Name:         product.Name,
				PartNumber:   product.PartNumber,
				Manufacturer: product.ManufacturerName,
				Category:     product.CategoryName,
			},
		})
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, q.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	var request *domain.QuotationRequest
	request, err = q.quotationRepo.CreateRequest(ctx, domain.NewQuotationRequest(userID))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	request.Items, err = q.quotationRepo.CreateItems(ctx, request.ID, items)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = q.writeEvent(ctx, QuotationSubmitted, request.ID, userID); err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	// Черновик очищается после успешной отправки; сбой очистки не фатален
	if err := q.draftRepo.Delete(ctx, userID); err != nil {
		q.logger.Warnf("Failed to clear draft after submission: %v", err)
	}

	if req.IdempotencyKey != "" {
		if err := q.idempotencyRepo.Set(ctx, userID, req.IdempotencyKey, request.ID); err != nil {
			q.logger.Warnf("Failed to store idempotency key: %v", err)
		}
	}

	return NewQuotationRes(request), nil
}

// ListOwn возвращает заявки пользователя, новые первыми.
func (q *QuotationUseCase) ListOwn(ctx context.Context, userID int64) ([]QuotationRes, error) {
	const op = "QuotationUseCase.ListOwn"

	requests, err := q.quotationRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	result := make([]QuotationRes, 0, len(requests))
	for i := range requests {
		result = append(result, *NewQuotationRes(&requests[i]))
	}

	return result, nil
}

// ListAll возвращает заявки всех пользователей с данными владельца, новые первыми.
func (q *QuotationUseCase) ListAll(ctx context.Context) ([]AdminQuotationRes, error) {
	const op = "QuotationUseCase.ListAll"

	infos, err := q.quotationRepo.ListAll(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	result := make([]AdminQuotationRes, 0, len(infos))
	for i := range infos {
		result = append(result, *NewAdminQuotationRes(&infos[i]))
	}

	return result, nil
}

// Price назначает цены всем позициям заявки и переводит ее в новый статус
// одной транзакцией. Повторное назначение перезаписывает прежние цены.
func (q *QuotationUseCase) Price(ctx context.Context, req *PriceQuotationReq) (*QuotationRes, error) {
	const op = "QuotationUseCase.Price"

	status := req.Status
	if status == "" {
		status = domain.QuotationUpdated
	}
	if !domain.ValidQuotationStatus(status) {
		return nil, fmt.Errorf("unknown status %q: %w", status, e.ErrStatusBadRequest)
	}

	prices := make(map[int64]int64, len(req.Items))
	for _, item := range req.Items {
		if item.UnitPrice < 0 {
			return nil, e.ErrInvalidPrice
		}
		prices[item.ItemID] = item.UnitPrice
	}

	request, err := q.quotationRepo.GetByID(ctx, req.QuotationID)
	if err != nil {
		return nil, err
	}

	// Каждая позиция заявки должна получить цену — иначе покупатель
	// увидит частично расцененную заявку
	for _, item := range request.Items {
		if _, ok := prices[item.ID]; !ok {
			return nil, fmt.Errorf("item %d: %w", item.ID, e.ErrUnpricedItems)
		}
	}
	for itemID := range prices {
		if !containsItem(request.Items, itemID) {
			return nil, fmt.Errorf("item %d does not belong to quotation %d: %w", itemID, req.QuotationID, e.ErrStatusBadRequest)
		}
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, q.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	if err = q.quotationRepo.UpdatePrices(ctx, req.QuotationID, status, prices); err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = q.writeEvent(ctx, QuotationPriced, req.QuotationID, request.UserID); err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	updated, err := q.quotationRepo.GetByID(ctx, req.QuotationID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewQuotationRes(updated), nil
}

// writeEvent кладет событие жизненного цикла в outbox в рамках текущей транзакции.
func (q *QuotationUseCase) writeEvent(ctx context.Context, eventType OutboxEventType, quotationID, userID int64) error {
	eventID := uuid.NewString()

	payload, err := json.Marshal(eventPayload{
		EventID:     eventID,
		EventType:   string(eventType),
		QuotationID: quotationID,
		UserID:      userID,
		OccurredAt:  time.Now().UnixNano(),
	})
	if err != nil {
		return err
	}

	_, err = q.outboxRepo.Create(ctx, &OutboxEvent{
		EventID:     eventID,
		EventType:   eventType,
		QuotationID: quotationID,
		Payload:     payload,
		Status:      Pending,
		CreatedAt:   time.Now().UTC(),
	})
	return err
}

func validateSubmit(req *SubmitQuotationReq) error {
	if len(req.Items) == 0 {
		return e.ErrEmptyItems
	}

	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return e.ErrInvalidQuantity
		}
	}

	return nil
}

func containsItem(items []domain.QuotationItem, id int64) bool {
	for _, item := range items {
		if item.ID == id {
			return true
		}
	}
	return false
}
