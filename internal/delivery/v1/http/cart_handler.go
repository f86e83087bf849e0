package http

import (
	"net/http"

	"github.com/partlane/go-backend/internal/usecase"
	"github.com/partlane/go-backend/pkg/logger"
)

type CartHandler struct {
	draftUsecase usecase.DraftUC
	logger       logger.Logger
}

func NewCartHandler(draftUsecase usecase.DraftUC, logger logger.Logger) *CartHandler {
	return &CartHandler{draftUsecase: draftUsecase, logger: logger}
}

type addCartItemRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}

type updateCartItemRequest struct {
	Quantity int64 `json:"quantity"`
}

type cartItemResponse struct {
	ProductID  int64  `json:"product_id"`
	PartNumber string `json:"part_number"`
	Name       string `json:"name"`
	Price      string `json:"price"`
	Quantity   int64  `json:"quantity"`
	ImageURL   string `json:"image_url,omitempty"`
}

type cartResponse struct {
	Items      []cartItemResponse `json:"items"`
	TotalItems int64              `json:"total_items"`
	TotalPrice string             `json:"total_price"`
}

// getCart
//
//	@Summary	Черновик заявки текущего пользователя
//	@Tags		cart
//	@Produce	json
//	@Success	200	{object}	cartResponse
//	@Failure	401	{object}	ErrorResponse
//	@Router		/cart [get]
func (c *CartHandler) getCart(w http.ResponseWriter, r *http.Request) {
	user := userFromCtx(r.Context())

	draft, err := c.draftUsecase.Get(r.Context(), user.ID)
	if err != nil {
		c.logger.Warnf("get cart failed: %v", err)
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newCartResponse(draft))
}

// addCartItem
//
//	@Summary		Добавление товара в черновик
//	@Description	Повторное добавление того же товара суммирует количество
//	@Tags			cart
//	@Accept			json
//	@Produce		json
//	@Param			request	body		addCartItemRequest	true	"Товар и количество"
//	@Success		200		{object}	cartResponse
//	@Failure		400		{object}	ErrorResponse	"Неположительное количество"
//	@Failure		404		{object}	ErrorResponse	"Товар не найден"
//	@Router			/cart/items [post]
func (c *CartHandler) addCartItem(w http.ResponseWriter, r *http.Request) {
	user := userFromCtx(r.Context())

	var req addCartItemRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	draft, err := c.draftUsecase.AddItem(r.Context(), user.ID, &usecase.AddDraftItemReq{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		c.logger.Warnf("add cart item failed: %v", err)
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newCartResponse(draft))
}

// updateCartItem
//
//	@Summary	Изменение количества позиции черновика
//	@Tags		cart
//	@Accept		json
//	@Produce	json
//	@Param		productID	path		int						true	"ID товара"
//	@Param		request		body		updateCartItemRequest	true	"Новое количество"
//	@Success	200			{object}	cartResponse
//	@Failure	400			{object}	ErrorResponse	"Неположительное количество"
//	@Failure	404			{object}	ErrorResponse	"Позиции нет в черновике"
//	@Router		/cart/items/{productID} [put]
func (c *CartHandler) updateCartItem(w http.ResponseWriter, r *http.Request) {
	user := userFromCtx(r.Context())

	productID, err := pathID(r, "productID")
	if err != nil {
		WriteError(w, err)
		return
	}

	var req updateCartItemRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	draft, err := c.draftUsecase.UpdateQuantity(r.Context(), user.ID, productID, req.Quantity)
	if err != nil {
		c.logger.Warnf("update cart item failed: %v", err)
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newCartResponse(draft))
}

// removeCartItem
//
//	@Summary		Удаление позиции черновика
//	@Description	Отсутствие позиции не считается ошибкой
//	@Tags			cart
//	@Produce		json
//	@Param			productID	path		int	true	"ID товара"
//	@Success		200			{object}	cartResponse
//	@Failure		401			{object}	ErrorResponse
//	@Router			/cart/items/{productID} [delete]
func (c *CartHandler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	user := userFromCtx(r.Context())

	productID, err := pathID(r, "productID")
	if err != nil {
		WriteError(w, err)
		return
	}

	draft, err := c.draftUsecase.RemoveItem(r.Context(), user.ID, productID)
	if err != nil {
		c.logger.Warnf("remove cart item failed: %v", err)
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newCartResponse(draft))
}

// clearCart
//
//	@Summary	Очистка черновика
//	@Tags		cart
//	@Produce	json
//	@Success	204	"Черновик очищен"
//	@Failure	401	{object}	ErrorResponse
//	@Router		/cart [delete]
func (c *CartHandler) clearCart(w http.ResponseWriter, r *http.Request) {
	user := userFromCtx(r.Context())

	if err := c.draftUsecase.Clear(r.Context(), user.ID); err != nil {
		c.logger.Warnf("clear cart failed: %v", err)
		WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func newCartResponse(draft *usecase.DraftRes) *cartResponse {
	items := make([]cartItemResponse, 0, len(draft.Items))
	for _, item := range draft.Items {
		items = append(items, cartItemResponse{
			ProductID:  item.ProductID,
			PartNumber: item.PartNumber,
			Name:       item.Name,
			Price:      formatCents(item.Price),
			Quantity:   item.Quantity,
			ImageURL:   item.ImageURL,
		})
	}

	return &cartResponse{
		Items:      items,
		TotalItems: draft.TotalItems,
		TotalPrice: formatCents(draft.TotalPrice),
	}
}
