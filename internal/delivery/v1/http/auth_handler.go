package http

import (
	"net/http"
	"time"

	"github.com/partlane/go-backend/internal/cfg"
	"github.com/partlane/go-backend/internal/usecase"
	"github.com/partlane/go-backend/pkg/logger"
)

type AuthHandler struct {
	authUsecase usecase.AuthUC
	cfg         *cfg.AuthCfg
	logger      logger.Logger
}

func NewAuthHandler(authUsecase usecase.AuthUC, cfg *cfg.AuthCfg, logger logger.Logger) *AuthHandler {
	return &AuthHandler{authUsecase: authUsecase, cfg: cfg, logger: logger}
}

type signupRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	CompanyName string `json:"company_name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type profileResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	CompanyName string `json:"company_name,omitempty"`
	Role        string `json:"role"`
}

// signup
//
//	@Summary		Регистрация покупателя
//	@Description	Создает учетную запись с ролью USER
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		signupRequest	true	"Данные регистрации"
//	@Success		201		{object}	profileResponse	"Созданный профиль"
//	@Failure		400		{object}	ErrorResponse	"Ошибка валидации"
//	@Failure		409		{object}	ErrorResponse	"Email уже занят"
//	@Router			/auth/signup [post]
func (a *AuthHandler) signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	profile, err := a.authUsecase.Signup(r.Context(), &usecase.SignupReq{
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		CompanyName: req.CompanyName,
	})
	if err != nil {
		a.logger.Warnf("signup failed: %v", err)
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, newProfileResponse(profile))
}

// login
//
//	@Summary		Вход
//	@Description	Проверяет пароль и устанавливает cookie сессии
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		loginRequest	true	"Учетные данные"
//	@Success		200		{object}	profileResponse	"Профиль вошедшего пользователя"
//	@Failure		401		{object}	ErrorResponse	"Неверные учетные данные"
//	@Router			/auth/login [post]
func (a *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	res, err := a.authUsecase.Login(r.Context(), &usecase.LoginReq{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		a.logger.Warnf("login failed: %v", err)
		WriteError(w, err)
		return
	}

	a.setSessionCookie(w, res.Token, res.ExpiresAt)

	profile, err := a.authUsecase.Profile(r.Context(), res.User.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newProfileResponse(profile))
}

// logout
//
//	@Summary	Выход
//	@Tags		auth
//	@Produce	json
//	@Success	204	"Сессия завершена"
//	@Router		/auth/logout [post]
func (a *AuthHandler) logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(a.cfg.CookieName); err == nil && cookie.Value != "" {
		if err := a.authUsecase.Logout(r.Context(), cookie.Value); err != nil {
			a.logger.Warnf("logout failed: %v", err)
		}
	}

	a.clearSessionCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

// me
//
//	@Summary	Профиль текущего пользователя
//	@Tags		auth
//	@Produce	json
//	@Success	200	{object}	profileResponse
//	@Failure	401	{object}	ErrorResponse	"Нет живой сессии"
//	@Router		/auth/me [get]
func (a *AuthHandler) me(w http.ResponseWriter, r *http.Request) {
	user := userFromCtx(r.Context())

	profile, err := a.authUsecase.Profile(r.Context(), user.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newProfileResponse(profile))
}

func (a *AuthHandler) setSessionCookie(w http.ResponseWriter, token string, expiresAt time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     a.cfg.CookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   a.cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (a *AuthHandler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     a.cfg.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   a.cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func newProfileResponse(profile *usecase.ProfileRes) *profileResponse {
	return &profileResponse{
		ID:          profile.ID,
		Name:        profile.Name,
		Email:       profile.Email,
		CompanyName: profile.CompanyName,
		Role:        string(profile.Role),
	}
}
