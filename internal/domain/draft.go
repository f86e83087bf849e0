package domain

// DraftItem — позиция черновика заявки (корзины).
// Цена фиксируется на момент добавления и служит только для ориентировочного
// итога: фактические цены назначает администратор после отправки заявки.
type DraftItem struct {
	ProductID  int64  `json:"product_id"`
	PartNumber string `json:"part_number"`
	Name       string `json:"name"`
	Price      int64  `json:"price"` // в копейках
	Quantity   int64  `json:"quantity"`
	ImageURL   string `json:"image_url"`
}

// Draft — черновик заявки пользователя до ее отправки.
// Инвариант: не более одной позиции на product_id.
type Draft struct {
	Items []DraftItem `json:"items"`
}

func NewDraft() *Draft {
	return &Draft{Items: []DraftItem{}}
}

// AddItem добавляет позицию. Если товар уже есть в черновике,
// количество суммируется, а не перезаписывается.
func (d *Draft) AddItem(item DraftItem) {
	for i := range d.Items {
		if d.Items[i].ProductID == item.ProductID {
			d.Items[i].Quantity += item.Quantity
			return
		}
	}
	d.Items = append(d.Items, item)
}

// RemoveItem удаляет позицию по ID товара. Отсутствие позиции не считается ошибкой.
func (d *Draft) RemoveItem(productID int64) {
	for i := range d.Items {
		if d.Items[i].ProductID == productID {
			d.Items = append(d.Items[:i], d.Items[i+1:]...)
			return
		}
	}
}

// UpdateQuantity устанавливает количество напрямую. Валидация значения —
// обязанность вызывающего слоя; черновик значение не проверяет.
// Возвращает false, если товара нет в черновике.
func (d *Draft) UpdateQuantity(productID int64, quantity int64) bool {
	for i := range d.Items {
		if d.Items[i].ProductID == productID {
			d.Items[i].Quantity = quantity
			return true
		}
	}
	return false
}

// Clear опустошает черновик. Используется после успешной отправки заявки.
func (d *Draft) Clear() {
	d.Items = []DraftItem{}
}

// TotalItems возвращает суммарное количество единиц по всем позициям.
func (d *Draft) TotalItems() int64 {
	var total int64
	for _, item := range d.Items {
		total += item.Quantity
	}
	return total
}

// TotalPrice возвращает ориентировочный итог в копейках (Σ цена × количество).
func (d *Draft) TotalPrice() int64 {
	var total int64
	for _, item := range d.Items {
		total += item.Price * item.Quantity
	}
	return total
}
