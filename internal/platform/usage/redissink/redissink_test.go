package redissink

import (
	"context"
	"errors"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"market_backend/internal/platform/usage"
)

func TestNew_DefaultNamespace(t *testing.T) {
	t.Parallel()

	rdb, _ := redismock.NewClientMock()
	s := New(rdb, "")
	assert.Equal(t, "usage", s.namespace)
	assert.Equal(t, "usage:api:quote", s.apiKey(usage.Quote))
}

// TestSink_Record は合計キーとAPI別キーが INCRBY されることを検証します。
func TestSink_Record(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	s := New(rdb, "usage")

	mock.ExpectIncrBy("usage:total", 12000).SetVal(12000)
	mock.ExpectIncrBy("usage:api:balance-sheet", 4).SetVal(4)

	require.NoError(t, s.Record(context.Background(), usage.BalanceSheet, 4, 12000))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSink_Record_Error(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	s := New(rdb, "usage")

	mock.ExpectIncrBy("usage:total", 1).SetErr(errors.New("connection refused"))

	err := s.Record(context.Background(), usage.Quote, 1, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
	require.NoError(t, mock.ExpectationsWereMet())
}

// TestSink_ThroughMeter はシンクの失敗がメーターの集計を止めないことを検証します。
func TestSink_ThroughMeter(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	m, err := usage.NewMeter(usage.DefaultCosts(), New(rdb, "usage"))
	require.NoError(t, err)

	mock.ExpectIncrBy("usage:total", 5).SetErr(errors.New("timeout"))

	m.RecordAPIUse(context.Background(), usage.Statistics)
	assert.Equal(t, int64(5), m.Total())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSink_Totals(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	s := New(rdb, "usage")

	mock.ExpectGet("usage:total").SetVal("1501")
	mock.ExpectGet("usage:api:peers").RedisNil()

	total, err := s.Total(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1501), total)

	n, err := s.Count(context.Background(), usage.Peers)
	require.NoError(t, err)
	assert.Zero(t, n)

	require.NoError(t, mock.ExpectationsWereMet())
}
