package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestNewRedisClient_NoAddress はアドレス未設定時に接続を試みずエラーを返すことを検証します。
func TestNewRedisClient_NoAddress(t *testing.T) {
	t.Parallel()

	rdb, err := NewRedisClient(context.Background(), "")
	assert.ErrorIs(t, err, ErrNoAddress)
	assert.Nil(t, rdb)
}

// TestNewRedisClient_Unreachable は到達できないアドレスで PING が失敗することを検証します。
func TestNewRedisClient_Unreachable(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	rdb, err := NewRedisClient(ctx, "127.0.0.1:1")
	assert.Error(t, err)
	assert.Nil(t, rdb)
}
