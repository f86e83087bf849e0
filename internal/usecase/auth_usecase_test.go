package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/partlane/go-backend/internal/cfg"
	"github.com/partlane/go-backend/internal/domain"
	"github.com/partlane/go-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := hashPassword("correct horse battery")
	require.NoError(t, err)

	assert.True(t, verifyPassword("correct horse battery", hash))
	assert.False(t, verifyPassword("wrong password", hash))
}

func TestHashPasswordUniqueSalt(t *testing.T) {
	first, err := hashPassword("secret-password")
	require.NoError(t, err)
	second, err := hashPassword("secret-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestVerifyPasswordMalformedHash(t *testing.T) {
	assert.False(t, verifyPassword("whatever", ""))
	assert.False(t, verifyPassword("whatever", "bcrypt$something"))
	assert.False(t, verifyPassword("whatever", "argon2id$1$65536$4$notbase64!$alsonot!"))
}

func TestNormalizeEmail(t *testing.T) {
	email, err := normalizeEmail("  Buyer@Example.COM ")
	require.NoError(t, err)
	assert.Equal(t, "buyer@example.com", email)

	_, err = normalizeEmail("not-an-email")
	assert.Error(t, err)
}

func TestHashTokenDeterministic(t *testing.T) {
	assert.Equal(t, hashToken("token"), hashToken("token"))
	assert.NotEqual(t, hashToken("token"), hashToken("other"))
	assert.Len(t, hashToken("token"), 64)
}

func newAuthUC(userRepo UserRepository, credentialRepo CredentialRepository, sessionRepo SessionRepository) *AuthUseCase {
	return &AuthUseCase{
		userRepo:       userRepo,
		credentialRepo: credentialRepo,
		sessionRepo:    sessionRepo,
		dbPool:         fakeDB{},
		cfg:            &cfg.AuthCfg{SessionTTL: time.Hour},
		logger:         nopLogger{},
	}
}

func TestLoginSuccess(t *testing.T) {
	ctx := context.Background()

	hash, err := hashPassword("secret-password")
	require.NoError(t, err)

	user := &domain.User{ID: 1, Name: "Buyer", Role: domain.RoleUser}
	uc := newAuthUC(
		newFakeUserRepo(user),
		newFakeCredentialRepo(domain.NewCredential(1, "buyer@example.com", hash)),
		newFakeSessionRepo(user),
	)

	res, err := uc.Login(ctx, &LoginReq{Email: "buyer@example.com", Password: "secret-password"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.User.ID)
	assert.NotEmpty(t, res.Token)
	assert.True(t, res.ExpiresAt.After(time.Now()))

	// Токен из ответа разрешается обратно в пользователя
	resolved, err := uc.Resolve(ctx, res.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, resolved.ID)
}

func TestLoginWrongPassword(t *testing.T) {
	ctx := context.Background()

	hash, err := hashPassword("secret-password")
	require.NoError(t, err)

	user := &domain.User{ID: 1, Role: domain.RoleUser}
	uc := newAuthUC(
		newFakeUserRepo(user),
		newFakeCredentialRepo(domain.NewCredential(1, "buyer@example.com", hash)),
		newFakeSessionRepo(user),
	)

	_, err = uc.Login(ctx, &LoginReq{Email: "buyer@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, e.ErrInvalidCredentials)
}

func TestLoginUnknownEmailIndistinguishable(t *testing.T) {
	ctx := context.Background()

	uc := newAuthUC(newFakeUserRepo(), newFakeCredentialRepo(), newFakeSessionRepo())

	_, err := uc.Login(ctx, &LoginReq{Email: "nobody@example.com", Password: "whatever"})
	assert.ErrorIs(t, err, e.ErrInvalidCredentials)

	_, err = uc.Login(ctx, &LoginReq{Email: "broken email", Password: "whatever"})
	assert.ErrorIs(t, err, e.ErrInvalidCredentials)
}

func TestResolveEmptyToken(t *testing.T) {
	uc := newAuthUC(newFakeUserRepo(), newFakeCredentialRepo(), newFakeSessionRepo())

	_, err := uc.Resolve(context.Background(), "")
	assert.ErrorIs(t, err, e.ErrAuthenticationRequired)

	_, err = uc.Resolve(context.Background(), "   ")
	assert.ErrorIs(t, err, e.ErrAuthenticationRequired)
}

func TestLogoutUnknownTokenIsNoError(t *testing.T) {
	uc := newAuthUC(newFakeUserRepo(), newFakeCredentialRepo(), newFakeSessionRepo())

	assert.NoError(t, uc.Logout(context.Background(), "never-issued"))
}

func TestSignupValidation(t *testing.T) {
	uc := newAuthUC(newFakeUserRepo(), newFakeCredentialRepo(), newFakeSessionRepo())

	_, err := uc.Signup(context.Background(), &SignupReq{Name: "Buyer", Email: "bad", Password: "long-enough"})
	assert.ErrorIs(t, err, e.ErrInvalidEmail)

	_, err = uc.Signup(context.Background(), &SignupReq{Name: "Buyer", Email: "buyer@example.com", Password: "short"})
	assert.ErrorIs(t, err, e.ErrWeakPassword)

	_, err = uc.Signup(context.Background(), &SignupReq{Name: "  ", Email: "buyer@example.com", Password: "long-enough"})
	assert.ErrorIs(t, err, e.ErrMissingFields)
}

func TestEnsureAdminSkipsExisting(t *testing.T) {
	hash, err := hashPassword("admin-password")
	require.NoError(t, err)

	uc := newAuthUC(
		newFakeUserRepo(),
		newFakeCredentialRepo(domain.NewCredential(1, "admin@example.com", hash)),
		newFakeSessionRepo(),
	)
	uc.cfg.AdminEmail = "admin@example.com"
	uc.cfg.AdminPassword = "admin-password"

	assert.NoError(t, uc.EnsureAdmin(context.Background()))
}

func TestEnsureAdminSkipsWhenAdminExists(t *testing.T) {
	userRepo := newFakeUserRepo(&domain.User{ID: 1, Name: "Administrator", Role: domain.RoleAdmin})

	// Email в конфигурации другой, но администратор уже есть
	uc := newAuthUC(userRepo, newFakeCredentialRepo(), newFakeSessionRepo())
	uc.cfg.AdminEmail = "new-admin@example.com"
	uc.cfg.AdminPassword = "admin-password"

	require.NoError(t, uc.EnsureAdmin(context.Background()))
	assert.Len(t, userRepo.byID, 1)
}

func TestEnsureAdminBootstraps(t *testing.T) {
	userRepo := newFakeUserRepo()
	credentialRepo := newFakeCredentialRepo()

	uc := newAuthUC(userRepo, credentialRepo, newFakeSessionRepo())
	uc.cfg.AdminEmail = "admin@example.com"
	uc.cfg.AdminPassword = "admin-password"

	require.NoError(t, uc.EnsureAdmin(context.Background()))

	admin, err := userRepo.GetAdmin(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, admin.Role)

	credential, err := credentialRepo.GetByEmail(context.Background(), "admin@example.com")
	require.NoError(t, err)
	assert.True(t, verifyPassword("admin-password", credential.PasswordHash))
}

func TestEnsureAdminSkipsWhenUnconfigured(t *testing.T) {
	uc := newAuthUC(newFakeUserRepo(), newFakeCredentialRepo(), newFakeSessionRepo())

	assert.NoError(t, uc.EnsureAdmin(context.Background()))
}
