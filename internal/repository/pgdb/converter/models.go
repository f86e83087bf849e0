package converter

import "time"

// ProductModel представляет запись таблицы products в PostgreSQL.
type ProductModel struct {
	ID             int64      `db:"id"`
	Name           string     `db:"name"`
	PartNumber     string     `db:"part_number"`
	Price          int64      `db:"price"`
	CategoryID     int64      `db:"category_id"`
	ManufacturerID int64      `db:"manufacturer_id"`
	Description    string     `db:"description"`
	ImageURL       string     `db:"image_url"`
	Quantity       int64      `db:"quantity"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      *time.Time `db:"updated_at"`
}

// CategoryModel представляет запись таблицы categories в PostgreSQL.
type CategoryModel struct {
	ID        int64      `db:"id"`
	Name      string     `db:"name"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt *time.Time `db:"updated_at"`
}

// ManufacturerModel представляет запись таблицы manufacturers в PostgreSQL.
type ManufacturerModel struct {
	ID        int64      `db:"id"`
	Name      string     `db:"name"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt *time.Time `db:"updated_at"`
}

// UserModel представляет запись таблицы users в PostgreSQL.
type UserModel struct {
	ID          int64     `db:"id"`
	Name        string    `db:"name"`
	CompanyName string    `db:"company_name"`
	Role        string    `db:"role"`
	CreatedAt   time.Time `db:"created_at"`
}

// OutboxEventModel представляет запись таблицы outbox_events в PostgreSQL.
type OutboxEventModel struct {
	ID          int64      `db:"id"`
	EventID     string     `db:"event_id"`
	EventType   string     `db:"event_type"`
	QuotationID int64      `db:"quotation_id"`
	Payload     []byte     `db:"payload"`
	Status      string     `db:"status"`
	CreatedAt   time.Time  `db:"created_at"`
	ProcessedAt *time.Time `db:"processed_at"`
}
