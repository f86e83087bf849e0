package pgdb

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
	"github.com/partlane/go-backend/internal/domain"
	"github.com/partlane/go-backend/pkg/e"
	"github.com/partlane/go-backend/pkg/tr"
)

// CredentialRepo хранит учетные данные отдельно от профиля пользователя.
// Email уникален на всю таблицу.
type CredentialRepo struct {
	pool *pgxpool.Pool
}

func NewCredentialRepo(pool *pgxpool.Pool) *CredentialRepo {
	return &CredentialRepo{pool: pool}
}

// Create вызывается внутри транзакции вместе с созданием пользователя.
func (c *CredentialRepo) Create(ctx context.Context, credential *domain.Credential) (*domain.Credential, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO credentials (user_id, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, created_at;
	`

	created := *credential
	if err := tx.QueryRow(ctx, query, credential.UserID, credential.Email, credential.PasswordHash).
		Scan(&created.ID, &created.CreatedAt); err != nil {
		if postgresDuplicate(err) {
			return nil, e.ErrEmailTaken
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &created, nil
}

func (c *CredentialRepo) GetByEmail(ctx context.Context, email string) (*domain.Credential, error) {
	query := `SELECT id, user_id, email, password_hash, created_at FROM credentials WHERE email = $1;`

	var credential domain.Credential
	if err := c.pool.QueryRow(ctx, query, email).
		Scan(&credential.ID, &credential.UserID, &credential.Email, &credential.PasswordHash, &credential.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.ErrUserNotFound
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &credential, nil
}

func (c *CredentialRepo) GetByUserID(ctx context.Context, userID int64) (*domain.Credential, error) {
	query := `SELECT id, user_id, email, password_hash, created_at FROM credentials WHERE user_id = $1;`

	var credential domain.Credential
	if err := c.pool.QueryRow(ctx, query, userID).
		Scan(&credential.ID, &credential.UserID, &credential.Email, &credential.PasswordHash, &credential.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("user %d: %w", userID, e.ErrUserNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &credential, nil
}
