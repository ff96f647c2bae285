package convert

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"

	"market_backend/internal/feature/marketdata/domain"
)

// TestDecimalToMoney は文法に合う文字列だけが Money に変換されることを検証します。
func TestDecimalToMoney(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		in         string
		wantAmount string
		wantErr    bool
	}{
		{"integer", "12", "12", false},
		{"fraction", "12.34", "12.34", false},
		{"explicit plus", "+7.5", "7.5", false},
		{"negative", "-0.01", "-0.01", false},
		{"leading zeros", "007.10", "7.1", false},
		{"empty", "", "", true},
		{"thousands separator", "1,000", "", true},
		{"exponent", "1e5", "", true},
		{"bare leading dot", ".5", "", true},
		{"bare trailing dot", "5.", "", true},
		{"surrounding whitespace", " 5 ", "", true},
		{"sign only", "-", "", true},
		{"double sign", "--1", "", true},
		{"two dots", "1.2.3", "", true},
		{"letters", "abc", "", true},
		{"nan", "NaN", "", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m, err := DecimalToMoney(tt.in, "USD")
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrBadResponse)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantAmount, m.Amount().String())
			assert.Equal(t, currency.USD, m.Currency())
		})
	}
}

// TestDecimalToMoney_UnknownCurrency は不明な通貨コードが BadResponse になることを検証します。
func TestDecimalToMoney_UnknownCurrency(t *testing.T) {
	t.Parallel()

	for _, code := range []string{"", "DOLLARS", "US", "QQQ"} {
		code := code
		_, err := DecimalToMoney("1.00", code)
		assert.ErrorIs(t, err, domain.ErrBadResponse, "code %q", code)
	}
}

// TestFloatToMoney は float が最短の往復表現で Money になることを検証します。
func TestFloatToMoney(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		in         float64
		wantAmount string
	}{
		{"one tenth stays one tenth", 0.1, "0.1"},
		{"price", 189.84, "189.84"},
		{"negative", -0.5, "-0.5"},
		{"large integral", 1e21, "1000000000000000000000"},
		{"zero", 0, "0"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m, err := FloatToMoney(tt.in, "USD")
			require.NoError(t, err)
			assert.Equal(t, tt.wantAmount, m.Amount().String())
		})
	}

	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		f := f
		_, err := FloatToMoney(f, "USD")
		assert.ErrorIs(t, err, domain.ErrBadResponse)
	}
}

func TestOptionalFloatToMoney(t *testing.T) {
	t.Parallel()

	got, err := OptionalFloatToMoney(nil, "USD")
	require.NoError(t, err)
	assert.Nil(t, got)

	v := 3.25
	got, err = OptionalFloatToMoney(&v, "EUR")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "3.25 EUR", got.String())

	nan := math.NaN()
	_, err = OptionalFloatToMoney(&nan, "USD")
	assert.ErrorIs(t, err, domain.ErrBadResponse)
}

func TestOptionalDecimalToMoney(t *testing.T) {
	t.Parallel()

	got, err := OptionalDecimalToMoney("", "USD")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = OptionalDecimalToMoney("42.10", "USD")
	require.NoError(t, err)
	assert.Equal(t, int64(42), got.Major())
	assert.Equal(t, int64(10), got.Minor())
}
