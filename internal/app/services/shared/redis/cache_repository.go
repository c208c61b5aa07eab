package redis

import (
	"context"
	"errors"
	"pilates-vision-service/internal/app/contracts"
	"pilates-vision-service/internal/pkg/exceptions"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

// releaseScript deletes KEYS[1] only when it still holds ARGV[1].
// 1 deleted, 0 missing, -1 held by someone else.
var releaseScript = redis.NewScript(`
local current = redis.call("GET", KEYS[1])
if not current then
	return 0
end
if current ~= ARGV[1] then
	return -1
end
redis.call("DEL", KEYS[1])
return 1
`)

type cacheRepository struct {
	client redis.UniversalClient
}

func NewCacheRepository(client redis.UniversalClient) contracts.CacheRepository {
	return &cacheRepository{client: client}
}

func (r *cacheRepository) GetJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	raw, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, exceptions.ErrRedisGetNoData(err, key)
	}

	err = json.Unmarshal(raw, dest)
	if err != nil {
		// an unreadable document is treated as a miss and dropped
		_ = r.client.Del(ctx, key).Err()
		return false, exceptions.ErrCannotParseJSON(err)
	}
	return true, nil
}

// SetJSON with a zero ttl keeps the document until invalidated.
func (r *cacheRepository) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}
	if err := r.client.Set(ctx, key, encoded, ttl).Err(); err != nil {
		return exceptions.ErrRedisSet(err)
	}
	return nil
}

func (r *cacheRepository) Invalidate(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return exceptions.ErrRedisDelete(err)
	}
	return nil
}

// Claim stores the raw token so Release can compare it server side.
func (r *cacheRepository) Claim(ctx context.Context, key, token string, ttl time.Duration) (bool, error) {
	claimed, err := r.client.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		return false, exceptions.ErrRedisSetNX(err)
	}
	return claimed, nil
}

func (r *cacheRepository) Release(ctx context.Context, key, token string) (contracts.ReleaseOutcome, error) {
	result, err := releaseScript.Run(ctx, r.client, []string{key}, token).Int()
	if err != nil {
		return contracts.ReleaseExpired, exceptions.ErrRedisUnlock(err)
	}
	switch result {
	case 1:
		return contracts.ReleaseDeleted, nil
	case -1:
		return contracts.ReleaseForeign, nil
	default:
		return contracts.ReleaseExpired, nil
	}
}
