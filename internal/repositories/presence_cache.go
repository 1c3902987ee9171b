package repositories

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/gw-social-network/internal/logger"
)

// PresenceCacheRepository caches the online flag per user in Redis with a
// TTL. The user document stays authoritative; the cache only spares the
// conversation listing a users read per row. A miss is not an error.
type PresenceCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration for cached presence entries
}

// NewPresenceCacheRepository creates a new repository instance with the given TTL
func NewPresenceCacheRepository(client *redis.Client, expiration time.Duration) *PresenceCacheRepository {
	return &PresenceCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// GetPresence fetches the cached online flag for a user.
// ok is false on a cache miss.
func (r *PresenceCacheRepository) GetPresence(ctx context.Context, userID string) (online bool, ok bool, err error) {
	key := fmt.Sprintf("presence:%s", userID)

	val, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		logger.Log.Infow("presence cache get",
			"key", key,
			"hit", false,
		)
		return false, false, nil
	}
	if err != nil {
		logger.Log.Infow("presence cache get",
			"key", key,
			"error", err,
		)
		return false, false, err
	}

	online, err = strconv.ParseBool(val)
	if err != nil {
		return false, false, err
	}

	logger.Log.Infow("presence cache get",
		"key", key,
		"result", online,
		"error", nil,
	)

	return online, true, nil
}

// SetPresence caches a user's online flag with expiration.
func (r *PresenceCacheRepository) SetPresence(ctx context.Context, userID string, online bool) error {
	key := fmt.Sprintf("presence:%s", userID)
	err := r.client.Set(ctx, key, strconv.FormatBool(online), r.exp).Err()

	logger.Log.Infow("presence cache set",
		"key", key,
		"online", online,
		"error", err,
	)

	return err
}
