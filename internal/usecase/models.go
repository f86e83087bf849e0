package usecase

import (
	"time"

	"github.com/partlane/go-backend/internal/domain"
)

// AUTH USECASE

// SignupReq — запрос на регистрацию покупателя.
type SignupReq struct {
	Name        string
	Email       string
	Password    string
	CompanyName string
}

type LoginReq struct {
	Email    string
	Password string
}

// LoginRes — результат входа: пользователь и непрозрачный токен сессии для cookie.
type LoginRes struct {
	User      *domain.User
	Token     string
	ExpiresAt time.Time
}

// ProfileRes — DTO профиля для внешнего использования.
type ProfileRes struct {
	ID          int64
	Name        string
	Email       string
	CompanyName string
	Role        domain.Role
}

// CATALOG USECASE

// ProductFilter — предикаты выборки каталога. Пустые поля не фильтруют.
type ProductFilter struct {
	Search       string // подстрока в name/part_number/description
	Category     string
	Manufacturer string
	InStockOnly  bool
}

// SaveProductReq — полный набор полей товара; обновление заменяет запись целиком.
type SaveProductReq struct {
	Name             string
	PartNumber       string
	Price            int64
	CategoryName     string
	ManufacturerName string
	Description      string
	ImageURL         string
	Quantity         int64
}

// ProductInfo — DTO с информацией о товаре для внешнего использования и кэша.
type ProductInfo struct {
	ID               int64
	Name             string
	PartNumber       string
	Price            int64
	CategoryName     string
	ManufacturerName string
	Description      string
	ImageURL         string
	Quantity         int64
	InStock          bool
}

// DRAFT USECASE

type AddDraftItemReq struct {
	ProductID int64
	Quantity  int64
}

// DraftRes — черновик с агрегатами для отображения.
type DraftRes struct {
	Items      []domain.DraftItem
	TotalItems int64
	TotalPrice int64
}

// QUOTATION USECASE

type SubmitItemReq struct {
	ProductID int64
	Quantity  int64
}

type SubmitQuotationReq struct {
	Items          []SubmitItemReq
	IdempotencyKey string // опционально; повтор с тем же ключом возвращает исходную заявку
}

// QuotationRes — заявка для выдачи покупателю.
type QuotationRes struct {
	ID        int64
	Status    domain.QuotationStatus
	CreatedAt time.Time
	UpdatedAt *time.Time
	Items     []domain.QuotationItem
	Subtotal  *int64 // в копейках; nil, пока заявка не расценена полностью
}

// AdminQuotationInfo — заявка со сведениями о владельце (выборка репозитория).
type AdminQuotationInfo struct {
	Request     domain.QuotationRequest
	UserName    string
	CompanyName string
	Email       string
}

// AdminQuotationRes — заявка для админской выдачи.
type AdminQuotationRes struct {
	QuotationRes
	UserName    string
	CompanyName string
	Email       string
}

type PriceItemReq struct {
	ItemID    int64
	UnitPrice int64 // в копейках; не может быть отрицательной
}

type PriceQuotationReq struct {
	QuotationID int64
	Status      domain.QuotationStatus
	Items       []PriceItemReq
}

// UPLOAD / INFRASTRUCTURE

// UploadImageReq — изображение, загруженное через multipart/form-data.
type UploadImageReq struct {
	Data     []byte
	MimeType string
	Size     int64
	Name     string // оригинальное имя файла (для логов)
}

type UploadImageRes struct {
	ObjectKey string
	URL       string
}

type WriteRawMessageReq struct {
	QuotationID int64
	Payload     []byte
}

// OUTBOX

type OutboxStatus string

const (
	Pending    OutboxStatus = "PENDING"
	Processing OutboxStatus = "PROCESSING"
	Processed  OutboxStatus = "PROCESSED"
)

type OutboxEventType string

const (
	QuotationSubmitted OutboxEventType = "quotation.submitted"
	QuotationPriced    OutboxEventType = "quotation.priced"
)

// OutboxEvent — событие жизненного цикла заявки, публикуемое в Kafka
// через транзакционный outbox.
type OutboxEvent struct {
	ID          int64
	EventID     string // uuid
	EventType   OutboxEventType
	QuotationID int64
	Payload     []byte
	Status      OutboxStatus
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

// MAPPERS

func NewProductInfo(product *domain.Product, categoryName, manufacturerName string) *ProductInfo {
	return &ProductInfo{
		ID:               product.ID,
		Name:             product.Name,
		PartNumber:       product.PartNumber,
		Price:            product.Price,
		CategoryName:     categoryName,
		ManufacturerName: manufacturerName,
		Description:      product.Description,
		ImageURL:         product.ImageURL,
		Quantity:         product.Quantity,
		InStock:          product.InStock(),
	}
}

func NewDraftRes(draft *domain.Draft) *DraftRes {
	return &DraftRes{
		Items:      draft.Items,
		TotalItems: draft.TotalItems(),
		TotalPrice: draft.TotalPrice(),
	}
}

func NewQuotationRes(request *domain.QuotationRequest) *QuotationRes {
	res := &QuotationRes{
		ID:        request.ID,
		Status:    request.Status,
		CreatedAt: request.CreatedAt,
		UpdatedAt: request.UpdatedAt,
		Items:     request.Items,
	}

	if subtotal, ok := request.Subtotal(); ok {
		res.Subtotal = &subtotal
	}

	return res
}

func NewAdminQuotationRes(info *AdminQuotationInfo) *AdminQuotationRes {
	return &AdminQuotationRes{
		QuotationRes: *NewQuotationRes(&info.Request),
		UserName:     info.UserName,
		CompanyName:  info.CompanyName,
		Email:        info.Email,
	}
}

func NewWriteRawMessageReq(quotationID int64, payload []byte) *WriteRawMessageReq {
	return &WriteRawMessageReq{
		QuotationID: quotationID,
		Payload:     payload,
	}
}

func NewUploadImageReq(data []byte, mimeType string, size int64, name string) *UploadImageReq {
	return &UploadImageReq{
		Data:     data,
		MimeType: mimeType,
		Size:     size,
		Name:     name,
	}
}
