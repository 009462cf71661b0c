package redis

import (
	"context"
	"errors"
	"strconv"
	"time"

	redisclient "github.com/muhammadheryan/wa-crm/cmd/redis"
	"github.com/muhammadheryan/wa-crm/constant"
	goredis "github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned when a key is absent.
var ErrCacheMiss = errors.New("redis: cache miss")

// Repository defines the session and role cache operations backed by Redis.
type Repository interface {
	GetSession(ctx context.Context, sessionID string) (uint64, error)
	GetRole(ctx context.Context, userID uint64) (constant.Role, error)
	SetRole(ctx context.Context, userID uint64, role constant.Role, ttl time.Duration) error
	DeleteRole(ctx context.Context, userID uint64) error
}

type redis struct{}

// NewRepository returns a Redis Repository implementation
func NewRepository() Repository {
	return &redis{}
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}

func roleKey(userID uint64) string {
	return "role:" + strconv.FormatUint(userID, 10)
}

// GetSession retrieves the userID bound to a session (JWT id)
func (r *redis) GetSession(ctx context.Context, sessionID string) (uint64, error) {
	client := redisclient.Get()
	if client == nil {
		return 0, ErrCacheMiss
	}
	val, err := client.Get(ctx, sessionKey(sessionID)).Uint64()
	if errors.Is(err, goredis.Nil) {
		return 0, ErrCacheMiss
	}
	if err != nil {
		return 0, err
	}
	return val, nil
}

// GetRole reads a cached role
func (r *redis) GetRole(ctx context.Context, userID uint64) (constant.Role, error) {
	client := redisclient.Get()
	if client == nil {
		return "", ErrCacheMiss
	}
	val, err := client.Get(ctx, roleKey(userID)).Result()
	if errors.Is(err, goredis.Nil) {
		return "", ErrCacheMiss
	}
	if err != nil {
		return "", err
	}
	return constant.Role(val), nil
}

// SetRole caches a role with time-to-live
func (r *redis) SetRole(ctx context.Context, userID uint64, role constant.Role, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Set(ctx, roleKey(userID), string(role), ttl).Err()
}

// DeleteRole drops a cached role so the next lookup reads the user table
func (r *redis) DeleteRole(ctx context.Context, userID uint64) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Del(ctx, roleKey(userID)).Err()
}
