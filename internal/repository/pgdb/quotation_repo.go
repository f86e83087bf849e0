package pgdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
	"github.com/partlane/go-backend/internal/domain"
	"github.com/partlane/go-backend/internal/usecase"
	"github.com/partlane/go-backend/pkg/e"
	"github.com/partlane/go-backend/pkg/tr"
)

// QuotationRepo реализует репозиторий заявок поверх PostgreSQL.
// Снимок товара хранится в jsonb позиции заявки и не зависит
// от дальнейшей судьбы записи в каталоге.
type QuotationRepo struct {
	pool *pgxpool.Pool
}

func NewQuotationRepo(pool *pgxpool.Pool) *QuotationRepo {
	return &QuotationRepo{pool: pool}
}

// CreateRequest создает заявку. Вызывается внутри транзакции вместе с позициями.
func (q *QuotationRepo) CreateRequest(ctx context.Context, request *domain.QuotationRequest) (*domain.QuotationRequest, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO quotation_requests (user_id, status)
		VALUES ($1, $2)
		RETURNING id, created_at;
	`

	created := *request
	if err := tx.QueryRow(ctx, query, request.UserID, string(request.Status)).
		Scan(&created.ID, &created.CreatedAt); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &created, nil
}

// CreateItems создает позиции заявки. Вызывается внутри транзакции.
func (q *QuotationRepo) CreateItems(ctx context.Context, quotationID int64, items []domain.QuotationItem) ([]domain.QuotationItem, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO quotation_items (quotation_id, product_id, snapshot, quantity)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at;
	`

	created := make([]domain.QuotationItem, 0, len(items))
	for _, item := range items {
		snapshot, err := json.Marshal(item.Snapshot)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		if err := tx.QueryRow(ctx, query, quotationID, item.ProductID, snapshot, item.Quantity).
			Scan(&item.ID, &item.CreatedAt); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		created = append(created, item)
	}

	return created, nil
}

func (q *QuotationRepo) GetByID(ctx context.Context, id int64) (*domain.QuotationRequest, error) {
	query := `SELECT id, user_id, status, created_at, updated_at FROM quotation_requests WHERE id = $1;`

	var request domain.QuotationRequest
	var status string
	if err := q.pool.QueryRow(ctx, query, id).
		Scan(&request.ID, &request.UserID, &status, &request.CreatedAt, &request.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("quotation %d: %w", id, e.ErrQuotationNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	request.Status = domain.QuotationStatus(status)

	itemsByQuotation, err := q.loadItems(ctx, []int64{id})
	if err != nil {
		return nil, err
	}
	request.Items = itemsByQuotation[id]

	return &request, nil
}

// ListByUser возвращает заявки пользователя, новые первыми.
func (q *QuotationRepo) ListByUser(ctx context.Context, userID int64) ([]domain.QuotationRequest, error) {
	query := `
		SELECT id, user_id, status, created_at, updated_at
		FROM quotation_requests
		WHERE user_id = $1
		ORDER BY created_at DESC;
	`

	rows, err := q.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	requests, err := scanRequests(rows)
	if err != nil {
		return nil, err
	}

	if err := q.attachItems(ctx, requests); err != nil {
		return nil, err
	}

	return requests, nil
}

// ListAll возвращает заявки всех пользователей со сведениями о владельце, новые первыми.
func (q *QuotationRepo) ListAll(ctx context.Context) ([]usecase.AdminQuotationInfo, error) {
	query := `
		SELECT qr.id, qr.user_id, qr.status, qr.created_at, qr.updated_at,
			u.name, u.company_name, c.email
		FROM quotation_requests qr
		JOIN users u ON qr.user_id = u.id
		JOIN credentials c ON c.user_id = u.id
		ORDER BY qr.created_at DESC;
	`

	rows, err := q.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	infos := make([]usecase.AdminQuotationInfo, 0)
	for rows.Next() {
		var info usecase.AdminQuotationInfo
		var status string
		if err := rows.Scan(
			&info.Request.ID, &info.Request.UserID, &status,
			&info.Request.CreatedAt, &info.Request.UpdatedAt,
			&info.UserName, &info.CompanyName, &info.Email,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		info.Request.Status = domain.QuotationStatus(status)

		infos = append(infos, info)
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	requests := make([]domain.QuotationRequest, len(infos))
	for i := range infos {
		requests[i] = infos[i].Request
	}
	if err := q.attachItems(ctx, requests); err != nil {
		return nil, err
	}
	for i := range infos {
		infos[i].Request.Items = requests[i].Items
	}

	return infos, nil
}

// UpdatePrices обновляет цены позиций и статус заявки.
// Вызывается внутри транзакции: частичное обновление недопустимо.
func (q *QuotationRepo) UpdatePrices(ctx context.Context, quotationID int64, status domain.QuotationStatus, prices map[int64]int64) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	itemQuery := `UPDATE quotation_items SET unit_price = $1 WHERE id = $2 AND quotation_id = $3;`
	for itemID, price := range prices {
		result, err := tx.Exec(ctx, itemQuery, price, itemID, quotationID)
		if err != nil {
			return e.Wrap(whereami.WhereAmI(), err)
		}
		if result.RowsAffected() == 0 {
			return fmt.Errorf("item %d not in quotation %d: %w", itemID, quotationID, e.ErrQuotationNotFound)
		}
	}

	requestQuery := `UPDATE quotation_requests SET status = $1, updated_at = NOW() WHERE id = $2;`
	result, err := tx.Exec(ctx, requestQuery, string(status), quotationID)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("quotation %d: %w", quotationID, e.ErrQuotationNotFound)
	}

	return nil
}

// loadItems возвращает позиции заявок, сгруппированные по quotation_id.
func (q *QuotationRepo) loadItems(ctx context.Context, quotationIDs []int64) (map[int64][]domain.QuotationItem, error) {
	query := `
		SELECT id, quotation_id, product_id, snapshot, quantity, unit_price, created_at
		FROM quotation_items
		WHERE quotation_id = ANY($1)
		ORDER BY id;
	`

	rows, err := q.pool.Query(ctx, query, quotationIDs)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make(map[int64][]domain.QuotationItem)
	for rows.Next() {
		var item domain.QuotationItem
		var quotationID int64
		var snapshot []byte
		if err := rows.Scan(
			&item.ID, &quotationID, &item.ProductID,
			&snapshot, &item.Quantity, &item.UnitPrice, &item.CreatedAt,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		if err := json.Unmarshal(snapshot, &item.Snapshot); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result[quotationID] = append(result[quotationID], item)
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

func (q *QuotationRepo) attachItems(ctx context.Context, requests []domain.QuotationRequest) error {
	if len(requests) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(requests))
	for i := range requests {
		ids = append(ids, requests[i].ID)
	}

	itemsByQuotation, err := q.loadItems(ctx, ids)
	if err != nil {
		return err
	}

	for i := range requests {
		requests[i].Items = itemsByQuotation[requests[i].ID]
	}

	return nil
}

func scanRequests(rows pgx.Rows) ([]domain.QuotationRequest, error) {
	result := make([]domain.QuotationRequest, 0)
	for rows.Next() {
		var request domain.QuotationRequest
		var status string
		if err := rows.Scan(&request.ID, &request.UserID, &status, &request.CreatedAt, &request.UpdatedAt); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		request.Status = domain.QuotationStatus(status)

		result = append(result, request)
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}
