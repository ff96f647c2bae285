package convert

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"market_backend/internal/feature/marketdata/domain"
)

func TestIntFromFloat(t *testing.T) {
	t.Parallel()

	n, err := IntFromFloat(52345678)
	require.NoError(t, err)
	assert.Equal(t, int64(52345678), n)

	n, err = IntFromFloat(-3)
	require.NoError(t, err)
	assert.Equal(t, int64(-3), n)

	for _, f := range []float64{1.5, math.NaN(), math.Inf(1), 1e19} {
		f := f
		_, err := IntFromFloat(f)
		assert.ErrorIs(t, err, domain.ErrBadResponse, "input %v", f)
	}
}

func TestOptionalIntFromFloat(t *testing.T) {
	t.Parallel()

	got, err := OptionalIntFromFloat(nil)
	require.NoError(t, err)
	assert.Nil(t, got)

	v := 10.0
	got, err = OptionalIntFromFloat(&v)
	require.NoError(t, err)
	assert.Equal(t, int64(10), *got)
}

func TestOptionalFloat(t *testing.T) {
	t.Parallel()

	got, err := OptionalFloat(nil)
	require.NoError(t, err)
	assert.Nil(t, got)

	v := 0.0123
	got, err = OptionalFloat(&v)
	require.NoError(t, err)
	assert.Equal(t, 0.0123, *got)

	inf := math.Inf(1)
	_, err = OptionalFloat(&inf)
	assert.ErrorIs(t, err, domain.ErrBadResponse)
}

func TestIntFromString(t *testing.T) {
	t.Parallel()

	n, err := IntFromString("121664700")
	require.NoError(t, err)
	assert.Equal(t, int64(121664700), n)

	for _, s := range []string{"", "1.5", "1,000", " 7", "abc"} {
		s := s
		_, err := IntFromString(s)
		assert.ErrorIs(t, err, domain.ErrBadResponse, "input %q", s)
	}
}

func TestOptionalFloatFromString(t *testing.T) {
	t.Parallel()

	got, err := OptionalFloatFromString("")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = OptionalFloatFromString("-0.22")
	require.NoError(t, err)
	assert.Equal(t, -0.22, *got)

	for _, s := range []string{"x", "NaN", "Inf"} {
		s := s
		_, err := OptionalFloatFromString(s)
		assert.ErrorIs(t, err, domain.ErrBadResponse, "input %q", s)
	}
}
