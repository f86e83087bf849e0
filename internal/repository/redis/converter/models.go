package converter

type ProductInfoRedisModel struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	PartNumber       string `json:"part_number"`
	Price            int64  `json:"price"`
	CategoryName     string `json:"category_name"`
	ManufacturerName string `json:"manufacturer_name"`
	Description      string `json:"description"`
	ImageURL         string `json:"image_url"`
	Quantity         int64  `json:"quantity"`
	InStock          bool   `json:"in_stock"`
}
