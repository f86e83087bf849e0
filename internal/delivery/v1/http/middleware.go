package http

import (
	"context"
	"net/http"

	"github.com/partlane/go-backend/internal/cfg"
	"github.com/partlane/go-backend/internal/domain"
	"github.com/partlane/go-backend/internal/usecase"
	"github.com/partlane/go-backend/pkg/e"
)

type ctxKey string

const userCtxKey ctxKey = "user"

// sessionMiddleware разрешает cookie сессии в пользователя и кладет его в контекст.
// Запросы без валидной сессии проходят дальше анонимно: доступ решают
// requireAuth и requireAdmin на конкретных маршрутах.
func sessionMiddleware(authUC usecase.AuthUC, authCfg *cfg.AuthCfg) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(authCfg.CookieName)
			if err == nil && cookie.Value != "" {
				if user, err := authUC.Resolve(r.Context(), cookie.Value); err == nil {
					r = r.WithContext(context.WithValue(r.Context(), userCtxKey, user))
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

// requireAuth пропускает только запросы с установленным пользователем.
func requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if userFromCtx(r.Context()) == nil {
			WriteError(w, e.ErrAuthenticationRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// requireAdmin пропускает только пользователей с ролью ADMIN.
// Анонимный запрос получает 401, аутентифицированный без роли — 403.
func requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := userFromCtx(r.Context())
		if user == nil {
			WriteError(w, e.ErrAuthenticationRequired)
			return
		}
		if user.Role != domain.RoleAdmin {
			WriteError(w, e.ErrAdminRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func userFromCtx(ctx context.Context) *domain.User {
	user, _ := ctx.Value(userCtxKey).(*domain.User)
	return user
}
