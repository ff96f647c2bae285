// Package redissink aggregates usage across processes in Redis.
package redissink

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"market_backend/internal/platform/usage"
)

const defaultNamespace = "usage"

// Sink は INCRBY で合計とAPI別カウンタを加算します。
type Sink struct {
	rdb       redis.Cmdable
	namespace string
}

var _ usage.Sink = (*Sink)(nil)

// New は namespace（空なら "usage"）配下にキーを作る Sink を生成します。
func New(rdb redis.Cmdable, namespace string) *Sink {
	if namespace == "" {
		namespace = defaultNamespace
	}
	return &Sink{rdb: rdb, namespace: namespace}
}

func (s *Sink) totalKey() string { return s.namespace + ":total" }

func (s *Sink) apiKey(name usage.APIName) string {
	return fmt.Sprintf("%s:api:%s", s.namespace, name)
}

func (s *Sink) Record(ctx context.Context, name usage.APIName, count, cost int64) error {
	if err := s.rdb.IncrBy(ctx, s.totalKey(), cost).Err(); err != nil {
		return fmt.Errorf("redis incr total: %w", err)
	}
	if err := s.rdb.IncrBy(ctx, s.apiKey(name), count).Err(); err != nil {
		return fmt.Errorf("redis incr %s: %w", name, err)
	}
	return nil
}

// Total returns the cost aggregated by every process sharing the namespace.
func (s *Sink) Total(ctx context.Context) (int64, error) {
	n, err := s.rdb.Get(ctx, s.totalKey()).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return n, err
}

// Count returns the aggregated unit count for name.
func (s *Sink) Count(ctx context.Context, name usage.APIName) (int64, error) {
	n, err := s.rdb.Get(ctx, s.apiKey(name)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return n, err
}
