package usecase

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/partlane/go-backend/internal/cfg"
	"github.com/partlane/go-backend/internal/domain"
	"github.com/partlane/go-backend/pkg/e"
	"github.com/partlane/go-backend/pkg/logger"
	"golang.org/x/crypto/argon2"
)

const (
	argonTime    uint32 = 1
	argonMemory  uint32 = 64 * 1024
	argonThreads uint8  = 4
	argonKeyLen  uint32 = 32
	argonSaltLen        = 16

	sessionTokenBytes = 32
	minPasswordLength = 8
)

// AuthUseCase реализует регистрацию, вход и разрешение сессий.
// Сессия — единственный механизм идентификации: непрозрачный токен в cookie,
// в базе хранится только его SHA-256.
type AuthUseCase struct {
	userRepo       UserRepository
	credentialRepo CredentialRepository
	sessionRepo    SessionRepository
	dbPool         transaction.Transactional
	cfg            *cfg.AuthCfg
	logger         logger.Logger
}

func NewAuthUC(
	userRepo UserRepository,
	credentialRepo CredentialRepository,
	sessionRepo SessionRepository,
	dbPool transaction.Transactional,
	cfg *cfg.AuthCfg,
	logger logger.Logger,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo:       userRepo,
		credentialRepo: credentialRepo,
		sessionRepo:    sessionRepo,
		dbPool:         dbPool,
		cfg:            cfg,
		logger:         logger,
	}
}

// Signup создает пользователя с ролью USER и его учетные данные в одной транзакции.
func (a *AuthUseCase) Signup(ctx context.Context, req *SignupReq) (*ProfileRes, error) {
	const op = "AuthUseCase.Signup"

	email, err := normalizeEmail(req.Email)
	if err != nil {
		return nil, e.ErrInvalidEmail
	}

	if len(strings.TrimSpace(req.Password)) < minPasswordLength {
		return nil, e.ErrWeakPassword
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, e.ErrMissingFields
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	user, err := a.createUserWithCredential(ctx, domain.NewUser(name, strings.TrimSpace(req.CompanyName), domain.RoleUser), email, hash)
	if err != nil {
		return nil, err
	}

	return &ProfileRes{
		ID:          user.ID,
		Name:        user.Name,
		Email:       email,
		CompanyName: user.CompanyName,
		Role:        user.Role,
	}, nil
}

// Login проверяет пароль и создает сессию.
// Неизвестный email и неверный пароль неразличимы для клиента.
func (a *AuthUseCase) Login(ctx context.Context, req *LoginReq) (*LoginRes, error) {
	const op = "AuthUseCase.Login"

	email, err := normalizeEmail(req.Email)
	if err != nil {
		return nil, e.ErrInvalidCredentials
	}

	credential, err := a.credentialRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, e.ErrUserNotFound) {
			return nil, e.ErrInvalidCredentials
		}
		return nil, e.Wrap(op, err)
	}

	if !verifyPassword(req.Password, credential.PasswordHash) {
		return nil, e.ErrInvalidCredentials
	}

	user, err := a.userRepo.GetByID(ctx, credential.UserID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	token, err := newSessionToken()
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	expiresAt := time.Now().UTC().Add(a.cfg.SessionTTL)
	if _, err := a.sessionRepo.Create(ctx, domain.NewSession(user.ID, hashToken(token), expiresAt)); err != nil {
		return nil, e.Wrap(op, err)
	}

	return &LoginRes{
		User:      user,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// Logout удаляет сессию. Неизвестный токен не считается ошибкой.
func (a *AuthUseCase) Logout(ctx context.Context, token string) error {
	const op = "AuthUseCase.Logout"

	if err := a.sessionRepo.DeleteByTokenHash(ctx, hashToken(token)); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// Resolve возвращает пользователя по токену живой сессии.
func (a *AuthUseCase) Resolve(ctx context.Context, token string) (*domain.User, error) {
	if strings.TrimSpace(token) == "" {
		return nil, e.ErrAuthenticationRequired
	}

	user, err := a.sessionRepo.GetUserByTokenHash(ctx, hashToken(token))
	if err != nil {
		return nil, e.ErrAuthenticationRequired
	}

	return user, nil
}

// Profile возвращает профиль пользователя вместе с email из учетных данных.
func (a *AuthUseCase) Profile(ctx context.Context, userID int64) (*ProfileRes, error) {
	const op = "AuthUseCase.Profile"

	user, err := a.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	credential, err := a.credentialRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &ProfileRes{
		ID:          user.ID,
		Name:        user.Name,
		Email:       credential.Email,
		CompanyName: user.CompanyName,
		Role:        user.Role,
	}, nil
}

// EnsureAdmin создает администратора из конфигурации, если его еще нет.
// ADMIN — роль на обычной учетной записи, а не специальный вход.
func (a *AuthUseCase) EnsureAdmin(ctx context.Context) error {
	const op = "AuthUseCase.EnsureAdmin"

	if a.cfg.AdminEmail == "" || a.cfg.AdminPassword == "" {
		a.logger.Warnf("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin bootstrap")
		return nil
	}

	email, err := normalizeEmail(a.cfg.AdminEmail)
	if err != nil {
		return e.Wrap(op, e.ErrInvalidEmail)
	}

	// Администратор мог быть создан ранее, возможно с другим email
	if _, err := a.userRepo.GetAdmin(ctx); err == nil {
		return nil
	} else if !errors.Is(err, e.ErrUserNotFound) {
		return e.Wrap(op, err)
	}

	if _, err := a.credentialRepo.GetByEmail(ctx, email); err == nil {
		return nil
	} else if !errors.Is(err, e.ErrUserNotFound) {
		return e.Wrap(op, err)
	}

	hash, err := hashPassword(a.cfg.AdminPassword)
	if err != nil {
		return e.Wrap(op, err)
	}

	if _, err := a.createUserWithCredential(ctx, domain.NewUser("Administrator", "", domain.RoleAdmin), email, hash); err != nil {
		return e.Wrap(op, err)
	}

	a.logger.Infof("admin account bootstrapped: %s", email)
	return nil
}

// createUserWithCredential атомарно создает пользователя и его учетные данные.
func (a *AuthUseCase) createUserWithCredential(ctx context.Context, newUser *domain.User, email, passwordHash string) (*domain.User, error) {
	const op = "AuthUseCase.createUserWithCredential"

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, a.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	var user *domain.User
	user, err = a.userRepo.Create(ctx, newUser)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	_, err = a.credentialRepo.Create(ctx, domain.NewCredential(user.ID, email, passwordHash))
	if err != nil {
		if errors.Is(err, e.ErrEmailTaken) {
			return nil, e.ErrEmailTaken
		}
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	return user, nil
}

func normalizeEmail(raw string) (string, error) {
	addr, err := mail.ParseAddress(strings.TrimSpace(raw))
	if err != nil {
		return "", err
	}
	return strings.ToLower(addr.Address), nil
}

// hashPassword хэширует пароль argon2id со случайной солью.
// Формат: argon2id$time$memory$threads$base64(salt)$base64(hash).
func hashPassword(password string) (string, error) {
	salt := make([]byte, argonSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}

	hash := argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, argonKeyLen)

	return fmt.Sprintf(
		"argon2id$%d$%d$%d$%s$%s",
		argonTime, argonMemory, argonThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	), nil
}

// verifyPassword сравнивает пароль с хэшем за константное время.
func verifyPassword(password, encoded string) bool {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "argon2id" {
		return false
	}

	var t, m uint32
	var p uint8
	if _, err := fmt.Sscanf(parts[1], "%d", &t); err != nil {
		return false
	}
	if _, err := fmt.Sscanf(parts[2], "%d", &m); err != nil {
		return false
	}
	if _, err := fmt.Sscanf(parts[3], "%d", &p); err != nil {
		return false
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false
	}
	expected, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false
	}

	actual := argon2.IDKey([]byte(password), salt, t, m, p, uint32(len(expected)))
	return subtle.ConstantTimeCompare(actual, expected) == 1
}

// newSessionToken генерирует непрозрачный токен сессии.
func newSessionToken() (string, error) {
	buf := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// hashToken возвращает SHA-256 токена в hex. В базе токен в открытом виде не хранится.
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
