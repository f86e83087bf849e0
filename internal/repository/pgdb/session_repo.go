package pgdb

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
	"github.com/partlane/go-backend/internal/domain"
	"github.com/partlane/go-backend/internal/repository/pgdb/converter"
	"github.com/partlane/go-backend/pkg/e"
)

// SessionRepo хранит сессии. Токен не хранится в открытом виде, только его хэш.
type SessionRepo struct {
	pool *pgxpool.Pool
	conv converter.UserConverter
}

func NewSessionRepo(pool *pgxpool.Pool, conv converter.UserConverter) *SessionRepo {
	return &SessionRepo{pool: pool, conv: conv}
}

func (s *SessionRepo) Create(ctx context.Context, session *domain.Session) (*domain.Session, error) {
	query := `
		INSERT INTO sessions (user_id, token_hash, expires_at)
		VALUES ($1, $2, $3)
		RETURNING id, created_at;
	`

	created := *session
	if err := s.pool.QueryRow(ctx, query, session.UserID, session.TokenHash, session.ExpiresAt).
		Scan(&created.ID, &created.CreatedAt); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &created, nil
}

// GetUserByTokenHash возвращает пользователя по хэшу токена живой сессии.
// Истекшие сессии не учитываются.
func (s *SessionRepo) GetUserByTokenHash(ctx context.Context, tokenHash string) (*domain.User, error) {
	query := `
		SELECT u.id, u.name, u.company_name, u.role, u.created_at
		FROM sessions s
		JOIN users u ON s.user_id = u.id
		WHERE s.token_hash = $1 AND s.expires_at > NOW();
	`

	var model converter.UserModel
	if err := s.pool.QueryRow(ctx, query, tokenHash).
		Scan(&model.ID, &model.Name, &model.CompanyName, &model.Role, &model.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.ErrUserNotFound
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return s.conv.ToEntity(&model), nil
}

// DeleteByTokenHash удаляет сессию. Отсутствие сессии не считается ошибкой.
func (s *SessionRepo) DeleteByTokenHash(ctx context.Context, tokenHash string) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM sessions WHERE token_hash = $1;`, tokenHash); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}
