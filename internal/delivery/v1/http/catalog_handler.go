package http

import (
	"net/http"

	"github.com/partlane/go-backend/internal/usecase"
	"github.com/partlane/go-backend/pkg/logger"
)

type CatalogHandler struct {
	catalogUsecase usecase.CatalogUC
	logger         logger.Logger
}

func NewCatalogHandler(catalogUsecase usecase.CatalogUC, logger logger.Logger) *CatalogHandler {
	return &CatalogHandler{catalogUsecase: catalogUsecase, logger: logger}
}

// saveProductRequest — полный набор полей товара. Цена передается строкой
// в рублях с копейками ("599.99"), хранится в копейках.
type saveProductRequest struct {
	Name         string `json:"name"`
	PartNumber   string `json:"part_number"`
	Price        string `json:"price"`
	Category     string `json:"category"`
	Manufacturer string `json:"manufacturer"`
	Description  string `json:"description"`
	ImageURL     string `json:"image_url"`
	Quantity     int64  `json:"quantity"`
}

type productResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	PartNumber   string `json:"part_number"`
	Price        string `json:"price"`
	Category     string `json:"category"`
	Manufacturer string `json:"manufacturer"`
	Description  string `json:"description,omitempty"`
	ImageURL     string `json:"image_url,omitempty"`
	Quantity     int64  `json:"quantity"`
	InStock      bool   `json:"in_stock"`
}

type nameRequest struct {
	Name string `json:"name"`
}

type dictionaryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// listProducts
//
//	@Summary		Каталог товаров
//	@Description	Список товаров с фильтрами по подстроке, категории, производителю и наличию
//	@Tags			products
//	@Produce		json
//	@Param			search			query		string	false	"Подстрока в названии, артикуле или описании"
//	@Param			category		query		string	false	"Название категории"
//	@Param			manufacturer	query		string	false	"Название производителя"
//	@Param			in_stock		query		bool	false	"Только товары в наличии"
//	@Success		200				{array}		productResponse
//	@Failure		500				{object}	ErrorResponse
//	@Router			/products [get]
func (c *CatalogHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	filter := &usecase.ProductFilter{
		Search:       r.URL.Query().Get("search"),
		Category:     r.URL.Query().Get("category"),
		Manufacturer: r.URL.Query().Get("manufacturer"),
		InStockOnly:  r.URL.Query().Get("in_stock") == "true",
	}

	products, err := c.catalogUsecase.ListProducts(r.Context(), filter)
	if err != nil {
		c.logger.Warnf("list products failed: %v", err)
		WriteError(w, err)
		return
	}

	result := make([]productResponse, 0, len(products))
	for i := range products {
		result = append(result, *newProductResponse(&products[i]))
	}

	WriteSuccess(w, http.StatusOK, result)
}

// createProduct
//
//	@Summary	Создание товара
//	@Tags		admin
//	@Accept		json
//	@Produce	json
//	@Param		request	body		saveProductRequest	true	"Поля товара"
//	@Success	201		{object}	productResponse
//	@Failure	400		{object}	ErrorResponse	"Ошибка валидации"
//	@Failure	404		{object}	ErrorResponse	"Категория или производитель не найдены"
//	@Failure	409		{object}	ErrorResponse	"Артикул уже существует"
//	@Router		/admin/products [post]
func (c *CatalogHandler) createProduct(w http.ResponseWriter, r *http.Request) {
	req, err := c.parseSaveProduct(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	product, err := c.catalogUsecase.CreateProduct(r.Context(), req)
	if err != nil {
		c.logger.Warnf("create product failed: %v", err)
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, newProductResponse(product))
}

// updateProduct
//
//	@Summary		Обновление товара
//	@Description	Заменяет запись товара целиком, частичное обновление не поддерживается
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int					true	"ID товара"
//	@Param			request	body		saveProductRequest	true	"Все поля товара"
//	@Success		200		{object}	productResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/admin/products/{id} [put]
func (c *CatalogHandler) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	req, err := c.parseSaveProduct(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	product, err := c.catalogUsecase.UpdateProduct(r.Context(), id, req)
	if err != nil {
		c.logger.Warnf("update product %d failed: %v", id, err)
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newProductResponse(product))
}

// deleteProduct
//
//	@Summary	Удаление товара
//	@Tags		admin
//	@Produce	json
//	@Param		id	path	int	true	"ID товара"
//	@Success	204	"Товар удален"
//	@Failure	404	{object}	ErrorResponse
//	@Router		/admin/products/{id} [delete]
func (c *CatalogHandler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := c.catalogUsecase.DeleteProduct(r.Context(), id); err != nil {
		c.logger.Warnf("delete product %d failed: %v", id, err)
		WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// listCategories
//
//	@Summary	Список категорий
//	@Tags		dictionaries
//	@Produce	json
//	@Success	200	{array}	dictionaryResponse
//	@Router		/categories [get]
func (c *CatalogHandler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := c.catalogUsecase.ListCategories(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	result := make([]dictionaryResponse, 0, len(categories))
	for _, category := range categories {
		result = append(result, dictionaryResponse{ID: category.ID, Name: category.Name})
	}

	WriteSuccess(w, http.StatusOK, result)
}

// createCategory
//
//	@Summary	Создание категории
//	@Tags		admin
//	@Accept		json
//	@Produce	json
//	@Param		request	body		nameRequest	true	"Название"
//	@Success	201		{object}	dictionaryResponse
//	@Failure	409		{object}	ErrorResponse	"Название уже занято"
//	@Router		/admin/categories [post]
func (c *CatalogHandler) createCategory(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	category, err := c.catalogUsecase.CreateCategory(r.Context(), req.Name)
	if err != nil {
		c.logger.Warnf("create category failed: %v", err)
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, dictionaryResponse{ID: category.ID, Name: category.Name})
}

// deleteCategory
//
//	@Summary		Удаление категории
//	@Description	Отклоняется, пока на категорию ссылается хотя бы один товар
//	@Tags			admin
//	@Produce		json
//	@Param			id	path	int	true	"ID категории"
//	@Success		204	"Категория удалена"
//	@Failure		404	{object}	ErrorResponse
//	@Failure		409	{object}	ErrorResponse	"Категория используется товарами"
//	@Router			/admin/categories/{id} [delete]
func (c *CatalogHandler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := c.catalogUsecase.DeleteCategory(r.Context(), id); err != nil {
		c.logger.Warnf("delete category %d failed: %v", id, err)
		WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// listManufacturers
//
//	@Summary	Список производителей
//	@Tags		dictionaries
//	@Produce	json
//	@Success	200	{array}	dictionaryResponse
//	@Router		/manufacturers [get]
func (c *CatalogHandler) listManufacturers(w http.ResponseWriter, r *http.Request) {
	manufacturers, err := c.catalogUsecase.ListManufacturers(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	result := make([]dictionaryResponse, 0, len(manufacturers))
	for _, manufacturer := range manufacturers {
		result = append(result, dictionaryResponse{ID: manufacturer.ID, Name: manufacturer.Name})
	}

	WriteSuccess(w, http.StatusOK, result)
}

// createManufacturer
//
//	@Summary	Создание производителя
//	@Tags		admin
//	@Accept		json
//	@Produce	json
//	@Param		request	body		nameRequest	true	"Название"
//	@Success	201		{object}	dictionaryResponse
//	@Failure	409		{object}	ErrorResponse	"Название уже занято"
//	@Router		/admin/manufacturers [post]
func (c *CatalogHandler) createManufacturer(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	manufacturer, err := c.catalogUsecase.CreateManufacturer(r.Context(), req.Name)
	if err != nil {
		c.logger.Warnf("create manufacturer failed: %v", err)
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, dictionaryResponse{ID: manufacturer.ID, Name: manufacturer.Name})
}

// deleteManufacturer
//
//	@Summary		Удаление производителя
//	@Description	Отклоняется, пока на производителя ссылается хотя бы один товар
//	@Tags			admin
//	@Produce		json
//	@Param			id	path	int	true	"ID производителя"
//	@Success		204	"Производитель удален"
//	@Failure		404	{object}	ErrorResponse
//	@Failure		409	{object}	ErrorResponse	"Производитель используется товарами"
//	@Router			/admin/manufacturers/{id} [delete]
func (c *CatalogHandler) deleteManufacturer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := c.catalogUsecase.DeleteManufacturer(r.Context(), id); err != nil {
		c.logger.Warnf("delete manufacturer %d failed: %v", id, err)
		WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (c *CatalogHandler) parseSaveProduct(r *http.Request) (*usecase.SaveProductReq, error) {
	var req saveProductRequest
	if err := decodeJSON(r, &req); err != nil {
		return nil, err
	}

	priceCents, err := parsePriceToCents(req.Price)
	if err != nil {
		return nil, err
	}

	return &usecase.SaveProductReq{
		Name:             req.Name,
		PartNumber:       req.PartNumber,
		Price:            priceCents,
		CategoryName:     req.Category,
		ManufacturerName: req.Manufacturer,
		Description:      req.Description,
		ImageURL:         req.ImageURL,
		Quantity:         req.Quantity,
	}, nil
}

func newProductResponse(product *usecase.ProductInfo) *productResponse {
	return &productResponse{
		ID:           product.ID,
		Name:         product.Name,
		PartNumber:   product.PartNumber,
		Price:        formatCents(product.Price),
		Category:     product.CategoryName,
		Manufacturer: product.ManufacturerName,
		Description:  product.Description,
		ImageURL:     product.ImageURL,
		Quantity:     product.Quantity,
		InStock:      product.InStock,
	}
}
