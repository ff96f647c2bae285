package entity

import "time"

// Quote is the full latest quote of an instrument.
// Pointer fields are absent when the provider does not report them
// (outside market hours, for instance).
type Quote struct {
	Symbol         Symbol    `json:"symbol"`
	CompanyName    string    `json:"company_name"`
	LatestPrice    Money     `json:"latest_price"`
	LatestSource   string    `json:"latest_source,omitempty"`
	LatestUpdate   time.Time `json:"latest_update"`
	Open           *Money    `json:"open,omitempty"`
	Close          *Money    `json:"close,omitempty"`
	High           *Money    `json:"high,omitempty"`
	Low            *Money    `json:"low,omitempty"`
	PreviousClose  *Money    `json:"previous_close,omitempty"`
	Change         *Money    `json:"change,omitempty"`
	ChangePercent  *float64  `json:"change_percent,omitempty"`
	Volume         *int64    `json:"volume,omitempty"`
	MarketCap      *Money    `json:"market_cap,omitempty"`
	PERatio        *float64  `json:"pe_ratio,omitempty"`
	Week52High     *Money    `json:"week52_high,omitempty"`
	Week52Low      *Money    `json:"week52_low,omitempty"`
	IsUSMarketOpen bool      `json:"is_us_market_open"`
}

// IntradayQuote is one bar of an intraday series.
type IntradayQuote struct {
	Time           time.Time `json:"time"`
	Open           *Money    `json:"open,omitempty"`
	High           *Money    `json:"high,omitempty"`
	Low            *Money    `json:"low,omitempty"`
	Close          *Money    `json:"close,omitempty"`
	Average        *Money    `json:"average,omitempty"`
	Volume         int64     `json:"volume"`
	NumberOfTrades int64     `json:"number_of_trades"`
}
