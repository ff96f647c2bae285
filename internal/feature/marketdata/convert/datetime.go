package convert

import (
	"fmt"
	"math"
	"time"

	"cloud.google.com/go/civil"

	"market_backend/internal/feature/marketdata/domain"
)

const (
	// DateLayout is the only accepted calendar date format.
	DateLayout = "2006-01-02"
	// ClockLayout is the accepted time-of-day format; ClockSecondsLayout is also accepted.
	ClockLayout        = "15:04"
	ClockSecondsLayout = "15:04:05"
)

// StringToDate parses a YYYY-MM-DD date.
func StringToDate(s string) (civil.Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return civil.Date{}, domain.NewBadResponseError(fmt.Sprintf("malformed date %q", s), err)
	}
	return civil.DateOf(t), nil
}

// OptionalStringToDate maps "" and nil to an absent date.
func OptionalStringToDate(s *string) (*civil.Date, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	d, err := StringToDate(*s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// DateStringToDateTime parses a YYYY-MM-DD date as midnight in loc (UTC when nil).
func DateStringToDateTime(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(DateLayout, s, loc)
	if err != nil {
		return time.Time{}, domain.NewBadResponseError(fmt.Sprintf("malformed date %q", s), err)
	}
	return t, nil
}

// DateAndTimeToDateTime combines a YYYY-MM-DD date and an HH:MM or HH:MM:SS
// clock reading taken in loc (UTC when nil).
func DateAndTimeToDateTime(date, clock string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	layout := DateLayout + " " + ClockLayout
	if len(clock) == len(ClockSecondsLayout) {
		layout = DateLayout + " " + ClockSecondsLayout
	}
	t, err := time.ParseInLocation(layout, date+" "+clock, loc)
	if err != nil {
		return time.Time{}, domain.NewBadResponseError(fmt.Sprintf("malformed date and time %q %q", date, clock), err)
	}
	return t, nil
}

// EpochMillisToDateTime converts milliseconds since the Unix epoch,
// truncated toward zero, into a UTC instant.
func EpochMillisToDateTime(ms float64) (time.Time, error) {
	if math.IsNaN(ms) || math.IsInf(ms, 0) {
		return time.Time{}, domain.NewBadResponseError(fmt.Sprintf("non-finite timestamp %v", ms), nil)
	}
	whole := math.Trunc(ms)
	if whole < math.MinInt64 || whole >= math.MaxInt64 {
		return time.Time{}, domain.NewBadResponseError(fmt.Sprintf("timestamp %v out of range", ms), nil)
	}
	return time.UnixMilli(int64(whole)).UTC(), nil
}

// EpochMillisToDate is EpochMillisToDateTime reduced to its UTC calendar date.
func EpochMillisToDate(ms float64) (civil.Date, error) {
	t, err := EpochMillisToDateTime(ms)
	if err != nil {
		return civil.Date{}, err
	}
	return civil.DateOf(t), nil
}
