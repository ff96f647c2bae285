package entity

import (
	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// Money is an exact decimal amount bound to an ISO 4217 currency.
// Values come out of the convert package; there is deliberately no
// constructor taking a float.
type Money struct {
	amount decimal.Decimal
	unit   currency.Unit
}

// NewMoney binds an exact amount to an already resolved currency unit.
func NewMoney(amount decimal.Decimal, unit currency.Unit) Money {
	return Money{amount: amount, unit: unit}
}

func (m Money) Amount() decimal.Decimal { return m.amount }

func (m Money) Currency() currency.Unit { return m.unit }

// CurrencyCode returns the three letter ISO code, e.g. "USD".
func (m Money) CurrencyCode() string { return m.unit.String() }

// Major returns the whole units of the amount, truncated toward zero.
func (m Money) Major() int64 { return m.amount.IntPart() }

// Minor returns the fractional part expressed in the currency's minor units
// (cents for USD, none for JPY). It carries the same sign as the amount.
func (m Money) Minor() int64 {
	scale, _ := currency.Standard.Rounding(m.unit)
	frac := m.amount.Sub(m.amount.Truncate(0))
	return frac.Shift(int32(scale)).Truncate(0).IntPart()
}

func (m Money) IsZero() bool { return m.amount.IsZero() }

func (m Money) String() string {
	return m.amount.String() + " " + m.unit.String()
}

type moneyJSON struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

// MarshalJSON keeps the amount as a string so no precision is lost on the wire.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(moneyJSON{Amount: m.amount.String(), Currency: m.unit.String()})
}
