package http

import (
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/partlane/go-backend/pkg/e"
	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

func ToHTTPResponse(err error) (int, string) {
	switch {
	// 400
	case errors.Is(err, e.ErrStatusBadRequest),
		errors.Is(err, e.ErrExpectedMultipart),
		errors.Is(err, e.ErrMissingFields),
		errors.Is(err, e.ErrInvalidPrice),
		errors.Is(err, e.ErrPricePrecision),
		errors.Is(err, e.ErrInvalidQuantity),
		errors.Is(err, e.ErrEmptyItems),
		errors.Is(err, e.ErrNoFile),
		errors.Is(err, e.ErrFileTooLarge),
		errors.Is(err, e.ErrUnsupportedMediaType),
		errors.Is(err, e.ErrProductNameRequired),
		errors.Is(err, e.ErrInvalidEmail),
		errors.Is(err, e.ErrWeakPassword),
		errors.Is(err, e.ErrUnpricedItems):
		return http.StatusBadRequest, err.Error()

	// 401
	case errors.Is(err, e.ErrAuthenticationRequired),
		errors.Is(err, e.ErrInvalidCredentials):
		return http.StatusUnauthorized, err.Error()

	// 403
	case errors.Is(err, e.ErrAdminRequired):
		return http.StatusForbidden, err.Error()

	// 404
	case errors.Is(err, e.ErrProductNotFound),
		errors.Is(err, e.ErrCategoryNotFound),
		errors.Is(err, e.ErrManufacturerNotFound),
		errors.Is(err, e.ErrQuotationNotFound),
		errors.Is(err, e.ErrUserNotFound):
		return http.StatusNotFound, err.Error()

	// 409
	case errors.Is(err, e.ErrDuplicateName),
		errors.Is(err, e.ErrDuplicatePartNumber),
		errors.Is(err, e.ErrEmailTaken),
		errors.Is(err, e.ErrCategoryInUse),
		errors.Is(err, e.ErrManufacturerInUse):
		return http.StatusConflict, err.Error()

	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// decodeJSON разбирает тело запроса, отклоняя неизвестные поля.
func decodeJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return e.Wrap(err.Error(), e.ErrStatusBadRequest)
	}
	return nil
}

// pathID извлекает числовой идентификатор из URL-параметра.
func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, e.Wrap(name, e.ErrStatusBadRequest)
	}
	return id, nil
}

// parsePriceToCents converts a string like "599.99" or "600" to int64 cents.
// Returns error if:
// - invalid format
// - more than 2 decimal places
// - negative value
// - exceeds reasonable limit (e.g. 10^9 rubles)
func parsePriceToCents(s string) (int64, error) {
	if strings.TrimSpace(s) == "" {
		return 0, errors.New("price is empty")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, e.ErrInvalidPrice
	}

	// Reject negative
	if d.LessThan(decimal.Zero) {
		return 0, e.ErrInvalidPrice
	}

	// Enforce max value (e.g. 1 billion rubles = 100_000_000_000 cents)
	maxPrice := decimal.NewFromInt(1_000_000_000).Mul(decimal.NewFromInt(100)) // 1B rub in cents
	if d.GreaterThan(maxPrice) {
		return 0, e.ErrInvalidPrice
	}

	// Check decimal places
	if d.Exponent() < -2 {
		return 0, e.ErrPricePrecision // "price must have at most 2 decimal places"
	}

	// Convert to cents: multiply by 100 and round
	cents := d.Mul(decimal.NewFromInt(100)).Round(0)

	return cents.IntPart(), nil
}

// formatCents форматирует цену в копейках обратно в строку вида "599.99".
func formatCents(cents int64) string {
	return decimal.NewFromInt(cents).Div(decimal.NewFromInt(100)).StringFixed(2)
}

func ensureMultipartForm(r *http.Request, maxMemory int64) error {
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		return e.ErrExpectedMultipart
	}
	return r.ParseMultipartForm(maxMemory)
}

func readFile(fh *multipart.FileHeader, maxSize int64) ([]byte, string, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, "", e.ErrInternalServerError
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, "", e.ErrInternalServerError
	}
	if int64(len(data)) > maxSize {
		return nil, "", e.Wrap(fh.Filename, e.ErrFileTooLarge)
	}

	mimeType := http.DetectContentType(data[:min(len(data), 512)])
	return data, mimeType, nil
}
