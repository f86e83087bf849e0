package usecase

import (
	"context"
	"time"

	"github.com/partlane/go-backend/pkg/logger"
)

// resolveProducts возвращает информацию о товарах по ID: сначала из кэша,
// промахи дочитываются из БД и фоном докладываются в кэш.
// Вторым значением возвращаются ID, не найденные нигде.
func resolveProducts(
	ctx context.Context,
	cacheRepo CacheRepository,
	productRepo ProductRepository,
	log logger.Logger,
	ids []int64,
) (map[int64]ProductInfo, []int64, error) {
	const op = "usecase.resolveProducts"

	cached, err := cacheRepo.GetProducts(ctx, ids)
	if err != nil {
		// Кэш недоступен — работаем напрямую с БД
		cached = map[int64]ProductInfo{}
	}

	var misses []int64
	for _, id := range ids {
		if _, ok := cached[id]; !ok {
			misses = append(misses, id)
		}
	}

	fromDB := map[int64]ProductInfo{}
	if len(misses) > 0 {
		products, err := productRepo.GetProductsInfo(ctx, misses)
		if err != nil {
			return nil, nil, err
		}

		for _, product := range products {
			fromDB[product.ID] = product
		}

		// Фоновое добавление найденного в кэш
		go func() {
			bgCtx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
			defer cancel()

			if err := cacheRepo.SetProducts(bgCtx, products); err != nil {
				log.Warnf("Failed to cache products in background: %v", err)
			}
		}()
	}

	result := make(map[int64]ProductInfo, len(ids))
	var notFound []int64
	for _, id := range ids {
		if product, ok := cached[id]; ok {
			result[id] = product
		} else if product, ok := fromDB[id]; ok {
			result[id] = product
		} else {
			notFound = append(notFound, id)
		}
	}

	return result, notFound, nil
}
