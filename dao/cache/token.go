package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenStorage 已注销 token 黑名单
type TokenStorage struct {
	redis *redis.Client
}

func NewTokenStorage(redis *redis.Client) *TokenStorage {
	return &TokenStorage{redis: redis}
}

// Revoke 注销 token，ttl 为 token 剩余有效期，过期后自动清理
func (t *TokenStorage) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return t.redis.Set(ctx, t.key(jti), 1, ttl).Err()
}

// IsRevoked 判断 token 是否已注销
func (t *TokenStorage) IsRevoked(ctx context.Context, jti string) (bool, error) {
	err := t.redis.Get(ctx, t.key(jti)).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (t *TokenStorage) key(jti string) string {
	return fmt.Sprintf("auth:revoked:%s", jti)
}
