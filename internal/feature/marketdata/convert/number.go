package convert

import (
	"fmt"
	"math"
	"strconv"

	"market_backend/internal/feature/marketdata/domain"
)

// IntFromFloat accepts only finite, integral JSON numbers (counts, volumes).
func IntFromFloat(f float64) (int64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, domain.NewBadResponseError(fmt.Sprintf("expected an integer, got %v", f), nil)
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, domain.NewBadResponseError(fmt.Sprintf("integer %v out of range", f), nil)
	}
	return int64(f), nil
}

// OptionalIntFromFloat maps null to nil.
func OptionalIntFromFloat(f *float64) (*int64, error) {
	if f == nil {
		return nil, nil
	}
	n, err := IntFromFloat(*f)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// OptionalFloat copies a nullable ratio, rejecting non-finite values.
func OptionalFloat(f *float64) (*float64, error) {
	if f == nil {
		return nil, nil
	}
	if math.IsNaN(*f) || math.IsInf(*f, 0) {
		return nil, domain.NewBadResponseError(fmt.Sprintf("non-finite value %v", *f), nil)
	}
	v := *f
	return &v, nil
}

// IntFromString parses a base-10 integer sent as a JSON string ("121664700").
func IntFromString(s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, domain.NewBadResponseError(fmt.Sprintf("malformed integer %q", s), err)
	}
	return n, nil
}

// OptionalFloatFromString parses a ratio sent as a JSON string; "" maps to nil.
func OptionalFloatFromString(s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, domain.NewBadResponseError(fmt.Sprintf("malformed number %q", s), err)
	}
	return &f, nil
}
