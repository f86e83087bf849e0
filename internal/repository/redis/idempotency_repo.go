package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	goredis "github.com/redis/go-redis/v9"

	"github.com/jimlawless/whereami"
	"github.com/partlane/go-backend/internal/cfg"
	"github.com/partlane/go-backend/pkg/clients"
	"github.com/partlane/go-backend/pkg/e"
)

// IdempotencyRepo сопоставляет ключ идемпотентности отправки заявки
// с ID уже созданной заявки. Ключи изолированы по пользователям.
type IdempotencyRepo struct {
	client *clients.RedisClient
	cfg    *cfg.RedisCfg
}

func NewIdempotencyRepo(client *clients.RedisClient, cfg *cfg.RedisCfg) *IdempotencyRepo {
	return &IdempotencyRepo{
		client: client,
		cfg:    cfg,
	}
}

func (r *IdempotencyRepo) Get(ctx context.Context, userID int64, key string) (int64, bool, error) {
	value, err := r.client.Client.Get(ctx, r.idempotencyKey(userID, key)).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return 0, false, nil
		}
		return 0, false, e.Wrap(whereami.WhereAmI(), err)
	}

	quotationID, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, false, e.Wrap(whereami.WhereAmI(), err)
	}

	return quotationID, true, nil
}

func (r *IdempotencyRepo) Set(ctx context.Context, userID int64, key string, quotationID int64) error {
	redisKey := r.idempotencyKey(userID, key)
	if err := r.client.Client.Set(ctx, redisKey, strconv.FormatInt(quotationID, 10), r.cfg.IdempotencyTTL).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (r *IdempotencyRepo) idempotencyKey(userID int64, key string) string {
	return fmt.Sprintf("idempotency:%d:%s", userID, key)
}
