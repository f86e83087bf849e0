package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/jimlawless/whereami"
	"github.com/partlane/go-backend/internal/cfg"
	"github.com/partlane/go-backend/internal/domain"
	"github.com/partlane/go-backend/pkg/clients"
	"github.com/partlane/go-backend/pkg/e"
)

// DraftRepo хранит черновики заявок (корзины) в Redis.
// Черновик живет до отправки заявки или до истечения TTL.
type DraftRepo struct {
	client *clients.RedisClient
	cfg    *cfg.RedisCfg
}

func NewDraftRepo(client *clients.RedisClient, cfg *cfg.RedisCfg) *DraftRepo {
	return &DraftRepo{
		client: client,
		cfg:    cfg,
	}
}

// Get возвращает черновик пользователя. Отсутствующий черновик — пустой, не ошибка.
func (r *DraftRepo) Get(ctx context.Context, userID int64) (*domain.Draft, error) {
	data, err := r.client.Client.Get(ctx, r.draftKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return domain.NewDraft(), nil
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var draft domain.Draft
	if err := json.Unmarshal(data, &draft); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &draft, nil
}

// Save перезаписывает черновик целиком и продлевает его TTL.
func (r *DraftRepo) Save(ctx context.Context, userID int64, draft *domain.Draft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := r.client.Client.Set(ctx, r.draftKey(userID), data, r.cfg.DraftTTL).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (r *DraftRepo) Delete(ctx context.Context, userID int64) error {
	if err := r.client.Client.Del(ctx, r.draftKey(userID)).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (r *DraftRepo) draftKey(userID int64) string {
	return fmt.Sprintf("draft:%d", userID)
}
