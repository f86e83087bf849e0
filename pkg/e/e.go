package e

import "fmt"

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// Ошибки конфигурации
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")

	// 400 Bad Request
	ErrStatusBadRequest     = fmt.Errorf("bad request")
	ErrExpectedMultipart    = fmt.Errorf("expected multipart/form-data")
	ErrMissingFields        = fmt.Errorf("missing required fields")
	ErrInvalidPrice         = fmt.Errorf("invalid price")
	ErrPricePrecision       = fmt.Errorf("price must have at most 2 decimal places")
	ErrInvalidQuantity      = fmt.Errorf("quantity must be a positive integer")
	ErrEmptyItems           = fmt.Errorf("items list is empty")
	ErrNoFile               = fmt.Errorf("no file provided")
	ErrFileTooLarge         = fmt.Errorf("file too large")
	ErrUnsupportedMediaType = fmt.Errorf("unsupported media type")
	ErrProductNameRequired  = fmt.Errorf("product name is required")
	ErrInvalidEmail         = fmt.Errorf("invalid email address")
	ErrWeakPassword         = fmt.Errorf("password must be at least 8 characters")
	ErrUnpricedItems        = fmt.Errorf("every line item must receive a unit price")

	// 401 Unauthorized
	ErrAuthenticationRequired = fmt.Errorf("authentication required")
	ErrInvalidCredentials     = fmt.Errorf("invalid credentials")

	// 403 Forbidden
	ErrAdminRequired = fmt.Errorf("admin access required")

	// 404 Not Found
	ErrProductNotFound      = fmt.Errorf("product not found")
	ErrCategoryNotFound     = fmt.Errorf("category not found")
	ErrManufacturerNotFound = fmt.Errorf("manufacturer not found")
	ErrQuotationNotFound    = fmt.Errorf("quotation not found")
	ErrUserNotFound         = fmt.Errorf("user not found")

	// 409 Conflict
	ErrDuplicateName       = fmt.Errorf("name already exists")
	ErrDuplicatePartNumber = fmt.Errorf("part number already exists")
	ErrEmailTaken          = fmt.Errorf("email already registered")
	ErrCategoryInUse       = fmt.Errorf("category is referenced by products")
	ErrManufacturerInUse   = fmt.Errorf("manufacturer is referenced by products")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
