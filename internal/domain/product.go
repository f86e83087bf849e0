package domain

import "time"

// Product описывает товар каталога
type Product struct {
	ID             int64
	Name           string
	PartNumber     string
	Price          int64 // Цена хранится в копейках
	CategoryID     int64
	ManufacturerID int64
	Description    string
	ImageURL       string
	Quantity       int64
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}

func NewProduct(name, partNumber string, price int64, categoryID, manufacturerID int64, description, imageURL string, quantity int64) *Product {
	return &Product{
		Name:           name,
		PartNumber:     partNumber,
		Price:          price,
		CategoryID:     categoryID,
		ManufacturerID: manufacturerID,
		Description:    description,
		ImageURL:       imageURL,
		Quantity:       quantity,
	}
}

// InStock — производное свойство: товар в наличии, пока quantity > 0.
// Отдельного флага в хранилище нет.
func (p *Product) InStock() bool {
	return p.Quantity > 0
}
