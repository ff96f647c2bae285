package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"market_backend/internal/platform/usage"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")
	require.NoError(t, Migrate(db), "failed to migrate table")

	return db
}

func TestLedger_Record(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	l := New(db)
	fixed := time.Date(2024, 6, 3, 14, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return fixed }

	require.NoError(t, l.Record(context.Background(), usage.News, 10, 10))

	var got []UsageRecord
	require.NoError(t, db.Find(&got).Error)
	require.Len(t, got, 1)
	assert.Equal(t, "news", got[0].API)
	assert.Equal(t, int64(10), got[0].Count)
	assert.Equal(t, int64(10), got[0].Cost)
	assert.True(t, fixed.Equal(got[0].RecordedAt))
}

// TestLedger_Totals はAPI別の合計が期間で絞り込まれて集計されることを検証します。
func TestLedger_Totals(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	l := New(db)
	ctx := context.Background()

	day1 := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)

	l.now = func() time.Time { return day1 }
	require.NoError(t, l.Record(ctx, usage.Quote, 1, 1))

	l.now = func() time.Time { return day2 }
	m, err := usage.NewMeter(usage.DefaultCosts(), l)
	require.NoError(t, err)
	m.RecordAPIUse(ctx, usage.Quote)
	m.RecordAPIUse(ctx, usage.Quote)
	m.RecordAPIUse(ctx, usage.PriceTarget)

	all, err := l.Totals(ctx, day1)
	require.NoError(t, err)
	assert.Equal(t, []usage.Entry{
		{API: usage.PriceTarget, Count: 1, Cost: 500},
		{API: usage.Quote, Count: 3, Cost: 3},
	}, all)

	recent, err := l.Totals(ctx, day2)
	require.NoError(t, err)
	assert.Equal(t, []usage.Entry{
		{API: usage.PriceTarget, Count: 1, Cost: 500},
		{API: usage.Quote, Count: 2, Cost: 2},
	}, recent)
}
