package usecase

import (
	"context"
	"fmt"

	"github.com/partlane/go-backend/internal/domain"
	"github.com/partlane/go-backend/pkg/e"
	"github.com/partlane/go-backend/pkg/logger"
)

// DraftUseCase управляет черновиком заявки (корзиной) пользователя.
// Черновик живет в Redis и переживает перезапуск процесса; до отправки
// заявки другого хранилища у него нет.
type DraftUseCase struct {
	draftRepo   DraftRepository
	productRepo ProductRepository
	cacheRepo   CacheRepository
	logger      logger.Logger
}

func NewDraftUC(
	draftRepo DraftRepository,
	productRepo ProductRepository,
	cacheRepo CacheRepository,
	logger logger.Logger,
) *DraftUseCase {
	return &DraftUseCase{
		draftRepo:   draftRepo,
		productRepo: productRepo,
		cacheRepo:   cacheRepo,
		logger:      logger,
	}
}

func (d *DraftUseCase) Get(ctx context.Context, userID int64) (*DraftRes, error) {
	const op = "DraftUseCase.Get"

	draft, err := d.draftRepo.Get(ctx, userID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewDraftRes(draft), nil
}

// AddItem добавляет товар в черновик. Поля позиции берутся из каталога,
// а не из запроса клиента. Повторное добавление суммирует количество.
func (d *DraftUseCase) AddItem(ctx context.Context, userID int64, req *AddDraftItemReq) (*DraftRes, error) {
	const op = "DraftUseCase.AddItem"

	if req.Quantity <= 0 {
		return nil, e.ErrInvalidQuantity
	}

	products, notFound, err := resolveProducts(ctx, d.cacheRepo, d.productRepo, d.logger, []int64{req.ProductID})
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if len(notFound) > 0 {
		return nil, fmt.Errorf("product %d: %w", req.ProductID, e.ErrProductNotFound)
	}

	product := products[req.ProductID]

	draft, err := d.draftRepo.Get(ctx, userID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	draft.AddItem(domain.DraftItem{
		ProductID:  product.ID,
		PartNumber: product.PartNumber,
		Name:       product.Name,
		Price:      product.Price,
		Quantity:   req.Quantity,
		ImageURL:   product.ImageURL,
	})

	if err := d.draftRepo.Save(ctx, userID, draft); err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewDraftRes(draft), nil
}

// RemoveItem удаляет позицию; отсутствие позиции — не ошибка.
func (d *DraftUseCase) RemoveItem(ctx context.Context, userID int64, productID int64) (*DraftRes, error) {
	const op = "DraftUseCase.RemoveItem"

	draft, err := d.draftRepo.Get(ctx, userID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	draft.RemoveItem(productID)

	if err := d.draftRepo.Save(ctx, userID, draft); err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewDraftRes(draft), nil
}

// UpdateQuantity устанавливает количество позиции. Неположительные значения
// отклоняются на этой границе: сам черновик значения не проверяет.
func (d *DraftUseCase) UpdateQuantity(ctx context.Context, userID int64, productID int64, quantity int64) (*DraftRes, error) {
	const op = "DraftUseCase.UpdateQuantity"

	if quantity <= 0 {
		return nil, e.ErrInvalidQuantity
	}

	draft, err := d.draftRepo.Get(ctx, userID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if !draft.UpdateQuantity(productID, quantity) {
		return nil, fmt.Errorf("product %d: %w", productID, e.ErrProductNotFound)
	}

	if err := d.draftRepo.Save(ctx, userID, draft); err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewDraftRes(draft), nil
}

func (d *DraftUseCase) Clear(ctx context.Context, userID int64) error {
	const op = "DraftUseCase.Clear"

	if err := d.draftRepo.Delete(ctx, userID); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}
