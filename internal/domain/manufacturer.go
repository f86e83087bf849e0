package domain

import "time"

// Manufacturer описывает производителя товара
type Manufacturer struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt *time.Time
}

func NewManufacturer(name string) *Manufacturer {
	return &Manufacturer{
		Name: name,
	}
}
