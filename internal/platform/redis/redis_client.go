// Package redis は利用量集計用の Redis クライアントを生成します。
package redis

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/redis/go-redis/v9"
)

// ErrNoAddress は Redis のアドレスが設定されていないことを示します。
var ErrNoAddress = errors.New("redis address is not configured")

// NewRedisClient は addr の Redis に接続し、PING で疎通を確認します。
// パスワードは REDIS_PASSWORD 環境変数から読み込みます。
func NewRedisClient(ctx context.Context, addr string) (*redis.Client, error) {
	if addr == "" {
		return nil, ErrNoAddress
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	// 接続確認
	if err := rdb.Ping(ctx).Err(); err != nil {
		slog.Error("Redis connection failed", "address", addr, "error", err)
		if cerr := rdb.Close(); cerr != nil {
			slog.Warn("failed to close redis client", "error", cerr)
		}
		return nil, err
	}

	slog.Info("Redis connection successful", "address", addr)
	return rdb, nil
}
