package iexcloud

import (
	"cloud.google.com/go/civil"

	"market_backend/internal/feature/marketdata/convert"
	"market_backend/internal/feature/marketdata/domain/entity"
)

// fields は DTO から entity への写像で最初のエラーを保持します。
// 一度失敗すると以降の変換は何もしません。
type fields struct {
	currency string
	err      error
}

func newFields(currency string) *fields {
	return &fields{currency: currencyOr(currency)}
}

func (f *fields) money(v *float64) *entity.Money {
	if f.err != nil {
		return nil
	}
	m, err := convert.OptionalFloatToMoney(v, f.currency)
	f.err = err
	return m
}

func (f *fields) ratio(v *float64) *float64 {
	if f.err != nil {
		return nil
	}
	r, err := convert.OptionalFloat(v)
	f.err = err
	return r
}

func (f *fields) integer(v *float64) *int64 {
	if f.err != nil {
		return nil
	}
	n, err := convert.OptionalIntFromFloat(v)
	f.err = err
	return n
}

func (f *fields) count(v float64) int {
	if f.err != nil {
		return 0
	}
	n, err := convert.IntFromFloat(v)
	f.err = err
	return int(n)
}

func (f *fields) date(s string) civil.Date {
	if f.err != nil {
		return civil.Date{}
	}
	d, err := convert.StringToDate(s)
	f.err = err
	return d
}

func (f *fields) optionalDate(s *string) *civil.Date {
	if f.err != nil {
		return nil
	}
	d, err := convert.OptionalStringToDate(s)
	f.err = err
	return d
}
