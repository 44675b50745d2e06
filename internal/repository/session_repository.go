package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"milesalone/internal/storage"
	redisapp "milesalone/internal/storage/redis"
)

const sessionKeyPrefix = "session:"

// SessionRepo keeps admin sessions in Redis. The cookie carries only an
// opaque token; the token's presence here is what makes it valid, and
// the TTL handles expiry server-side.
type SessionRepo struct {
	rdb *redisapp.Client
}

func NewSessionRepository(rdb *redisapp.Client) *SessionRepo {
	return &SessionRepo{rdb: rdb}
}

func (r *SessionRepo) SaveSession(ctx context.Context, token string, ttl time.Duration) error {
	const op = "repository.session_repository.SaveSession"

	if err := r.rdb.Set(ctx, sessionKeyPrefix+token, "1", ttl).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *SessionRepo) SessionExists(ctx context.Context, token string) (bool, error) {
	const op = "repository.session_repository.SessionExists"

	err := r.rdb.Get(ctx, sessionKeyPrefix+token).Err()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return true, nil
}

func (r *SessionRepo) DeleteSession(ctx context.Context, token string) error {
	const op = "repository.session_repository.DeleteSession"

	deleted, err := r.rdb.Del(ctx, sessionKeyPrefix+token).Result()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if deleted == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrSessionExpired)
	}

	return nil
}
