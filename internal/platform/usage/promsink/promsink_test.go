package promsink

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"market_backend/internal/platform/usage"
)

// TestSink_Record はメーター経由の記録がカウンタに反映されることを検証します。
func TestSink_Record(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	sink, err := New(reg)
	require.NoError(t, err)

	m, err := usage.NewMeter(usage.DefaultCosts(), sink)
	require.NoError(t, err)

	ctx := context.Background()
	m.RecordAPIUse(ctx, usage.Quote)
	m.RecordAPIUse(ctx, usage.Quote)
	m.RecordAPIUsage(ctx, usage.News, 5)
	m.RecordAPIUse(ctx, usage.Peers)

	assert.Equal(t, 2.0, testutil.ToFloat64(sink.calls.WithLabelValues("quote")))
	assert.Equal(t, 5.0, testutil.ToFloat64(sink.calls.WithLabelValues("news")))
	assert.Equal(t, 1.0, testutil.ToFloat64(sink.calls.WithLabelValues("peers")))
	assert.Equal(t, float64(m.Total()), testutil.ToFloat64(sink.cost))
}

func TestNew_DuplicateRegistration(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	_, err := New(reg)
	require.NoError(t, err)

	_, err = New(reg)
	assert.Error(t, err)
}
