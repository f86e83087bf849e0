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
	"github.com/partlane/go-backend/pkg/tr"
)

// UserRepo реализует репозиторий пользователей поверх PostgreSQL.
type UserRepo struct {
	pool *pgxpool.Pool
	conv converter.UserConverter
}

func NewUserRepo(pool *pgxpool.Pool, conv converter.UserConverter) *UserRepo {
	return &UserRepo{pool: pool, conv: conv}
}

// Create создает пользователя. Вызывается внутри транзакции вместе
// с созданием учетных данных.
func (u *UserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO users (name, company_name, role)
		VALUES ($1, $2, $3)
		RETURNING id, name, company_name, role, created_at;
	`

	var model converter.UserModel
	if err := tx.QueryRow(ctx, query, user.Name, user.CompanyName, string(user.Role)).
		Scan(&model.ID, &model.Name, &model.CompanyName, &model.Role, &model.CreatedAt); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return u.conv.ToEntity(&model), nil
}

func (u *UserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `SELECT id, name, company_name, role, created_at FROM users WHERE id = $1;`

	var model converter.UserModel
	if err := u.pool.QueryRow(ctx, query, id).
		Scan(&model.ID, &model.Name, &model.CompanyName, &model.Role, &model.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.ErrUserNotFound
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return u.conv.ToEntity(&model), nil
}

// GetAdmin возвращает учетную запись администратора.
func (u *UserRepo) GetAdmin(ctx context.Context) (*domain.User, error) {
	query := `SELECT id, name, company_name, role, created_at FROM users WHERE role = $1 ORDER BY id LIMIT 1;`

	var model converter.UserModel
	if err := u.pool.QueryRow(ctx, query, string(domain.RoleAdmin)).
		Scan(&model.ID, &model.Name, &model.CompanyName, &model.Role, &model.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.ErrUserNotFound
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return u.conv.ToEntity(&model), nil
}
