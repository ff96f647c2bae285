package convert

import (
	"math"
	"testing"
	"time"
	_ "time/tzdata"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"market_backend/internal/feature/marketdata/domain"
)

func TestStringToDate(t *testing.T) {
	t.Parallel()

	d, err := StringToDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, civil.Date{Year: 2024, Month: 2, Day: 29}, d)

	for _, in := range []string{"", "2023-02-29", "2024/01/01", "20240101", "2024-1-1", "2024-01-01T00:00:00Z"} {
		in := in
		_, err := StringToDate(in)
		assert.ErrorIs(t, err, domain.ErrBadResponse, "input %q", in)
	}
}

func TestOptionalStringToDate(t *testing.T) {
	t.Parallel()

	got, err := OptionalStringToDate(nil)
	require.NoError(t, err)
	assert.Nil(t, got)

	empty := ""
	got, err = OptionalStringToDate(&empty)
	require.NoError(t, err)
	assert.Nil(t, got)

	s := "2024-05-10"
	got, err = OptionalStringToDate(&s)
	require.NoError(t, err)
	assert.Equal(t, civil.Date{Year: 2024, Month: 5, Day: 10}, *got)
}

func TestDateStringToDateTime(t *testing.T) {
	t.Parallel()

	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	got, err := DateStringToDateTime("2024-07-04", ny)
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2024, 7, 4, 0, 0, 0, 0, ny)))

	got, err = DateStringToDateTime("2024-07-04", nil)
	require.NoError(t, err)
	assert.Equal(t, time.UTC, got.Location())

	_, err = DateStringToDateTime("July 4", ny)
	assert.ErrorIs(t, err, domain.ErrBadResponse)
}

// TestDateAndTimeToDateTime は日付と時刻の組み合わせをタイムゾーン付きで解釈することを検証します。
func TestDateAndTimeToDateTime(t *testing.T) {
	t.Parallel()

	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	tests := []struct {
		name    string
		date    string
		clock   string
		want    time.Time
		wantErr bool
	}{
		{"minutes", "2024-03-15", "09:30", time.Date(2024, 3, 15, 9, 30, 0, 0, ny), false},
		{"seconds", "2024-03-15", "15:59:30", time.Date(2024, 3, 15, 15, 59, 30, 0, ny), false},
		{"bad hour", "2024-03-15", "25:00", time.Time{}, true},
		{"am/pm", "2024-03-15", "09:30 PM", time.Time{}, true},
		{"bad date", "2024-13-01", "09:30", time.Time{}, true},
		{"empty clock", "2024-03-15", "", time.Time{}, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := DateAndTimeToDateTime(tt.date, tt.clock, ny)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrBadResponse)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %v want %v", got, tt.want)
		})
	}
}

// TestEpochMillisToDateTime はミリ秒がゼロ方向に切り捨てられ UTC になることを検証します。
func TestEpochMillisToDateTime(t *testing.T) {
	t.Parallel()

	got, err := EpochMillisToDateTime(1700000000123.9)
	require.NoError(t, err)
	assert.Equal(t, time.UnixMilli(1700000000123).UTC(), got)
	assert.Equal(t, time.UTC, got.Location())

	got, err = EpochMillisToDateTime(-1.5)
	require.NoError(t, err)
	assert.Equal(t, time.UnixMilli(-1).UTC(), got)

	got, err = EpochMillisToDateTime(0)
	require.NoError(t, err)
	assert.Equal(t, time.Unix(0, 0).UTC(), got)

	for _, ms := range []float64{math.NaN(), math.Inf(1), math.Inf(-1), 1e19, -1e19} {
		ms := ms
		_, err := EpochMillisToDateTime(ms)
		assert.ErrorIs(t, err, domain.ErrBadResponse, "input %v", ms)
	}
}

func TestEpochMillisToDate(t *testing.T) {
	t.Parallel()

	// 2023-11-14T22:13:20Z
	d, err := EpochMillisToDate(1700000000000)
	require.NoError(t, err)
	assert.Equal(t, civil.Date{Year: 2023, Month: 11, Day: 14}, d)
}
