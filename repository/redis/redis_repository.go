package redis

import (
	"context"
	"errors"
	"time"

	redisclient "github.com/muhammadheryan/shop-console/cmd/redis"
)

var ErrNoClient = errors.New("redis client not initialized")

// Repository stores admin sessions in Redis, keyed by token id.
type Repository interface {
	SetSession(ctx context.Context, sessionID string, username string, ttl time.Duration) error
	GetSession(ctx context.Context, sessionID string) (string, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

type redis struct{}

// NewRepository returns a Redis Repository implementation
func NewRepository() Repository {
	return &redis{}
}

func sessionKey(sessionID string) string {
	return "console:session:" + sessionID
}

// SetSession stores a session with the admin username and TTL
func (r *redis) SetSession(ctx context.Context, sessionID string, username string, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return ErrNoClient
	}
	return client.Set(ctx, sessionKey(sessionID), username, ttl).Err()
}

// GetSession retrieves the username owning a session
func (r *redis) GetSession(ctx context.Context, sessionID string) (string, error) {
	client := redisclient.Get()
	if client == nil {
		return "", ErrNoClient
	}
	return client.Get(ctx, sessionKey(sessionID)).Result()
}

// DeleteSession removes a session from Redis
func (r *redis) DeleteSession(ctx context.Context, sessionID string) error {
	client := redisclient.Get()
	if client == nil {
		return ErrNoClient
	}
	return client.Del(ctx, sessionKey(sessionID)).Err()
}
