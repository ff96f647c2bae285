// Package convert is the only boundary between untyped provider payloads
// and the marketdata domain model. Every function is total: malformed input
// yields a BadResponseError, never a panic.
package convert

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"

	"market_backend/internal/feature/marketdata/domain"
	"market_backend/internal/feature/marketdata/domain/entity"
)

// ResolveCurrency resolves an ISO 4217 code such as "USD".
func ResolveCurrency(code string) (currency.Unit, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return currency.Unit{}, domain.NewBadResponseError(fmt.Sprintf("unknown currency code %q", code), err)
	}
	return unit, nil
}

// DecimalToMoney parses a signed decimal of the exact form [+-]?digits(.digits)?.
// Empty strings, thousands separators, exponents, bare dots and surrounding
// whitespace are all rejected.
func DecimalToMoney(s, currencyCode string) (entity.Money, error) {
	if !isPlainDecimal(s) {
		return entity.Money{}, domain.NewBadResponseError(fmt.Sprintf("malformed decimal %q", s), nil)
	}
	unit, err := ResolveCurrency(currencyCode)
	if err != nil {
		return entity.Money{}, err
	}
	amount, err := decimal.NewFromString(strings.TrimPrefix(s, "+"))
	if err != nil {
		return entity.Money{}, domain.NewBadResponseError(fmt.Sprintf("malformed decimal %q", s), err)
	}
	return entity.NewMoney(amount, unit), nil
}

// FloatToMoney formats f as the shortest decimal string that parses back to
// the same float64 and hands it to DecimalToMoney.
//
// Precision: a float64 holds 15 to 17 significant decimal digits, so the
// result is exact only up to that. A provider that sent 0.1 gets back
// "0.1"; one that sent 12345678901234567.89 gets back 12345678901234568.
// NaN and infinities are rejected.
func FloatToMoney(f float64, currencyCode string) (entity.Money, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return entity.Money{}, domain.NewBadResponseError(fmt.Sprintf("non-finite amount %v", f), nil)
	}
	return DecimalToMoney(strconv.FormatFloat(f, 'f', -1, 64), currencyCode)
}

// OptionalFloatToMoney maps an absent (null) amount to nil.
func OptionalFloatToMoney(f *float64, currencyCode string) (*entity.Money, error) {
	if f == nil {
		return nil, nil
	}
	m, err := FloatToMoney(*f, currencyCode)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// OptionalDecimalToMoney maps an empty string to nil.
func OptionalDecimalToMoney(s, currencyCode string) (*entity.Money, error) {
	if s == "" {
		return nil, nil
	}
	m, err := DecimalToMoney(s, currencyCode)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func isPlainDecimal(s string) bool {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	intStart := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i == intStart {
		return false
	}
	if i == len(s) {
		return true
	}
	if s[i] != '.' {
		return false
	}
	i++
	fracStart := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	return i > fracStart && i == len(s)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
