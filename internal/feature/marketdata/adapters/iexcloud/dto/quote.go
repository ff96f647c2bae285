// Package dto は IEX Cloud のレスポンス形状を表します。
// 数値は JSON の number をそのまま受け、null は nil になります。
package dto

// QuoteResponse は /stock/{symbol}/quote のレスポンスです。
type QuoteResponse struct {
	Symbol         string   `json:"symbol"`
	CompanyName    string   `json:"companyName"`
	Currency       string   `json:"currency"`
	LatestPrice    *float64 `json:"latestPrice"`
	LatestSource   string   `json:"latestSource"`
	LatestUpdate   *float64 `json:"latestUpdate"`
	Open           *float64 `json:"open"`
	Close          *float64 `json:"close"`
	High           *float64 `json:"high"`
	Low            *float64 `json:"low"`
	PreviousClose  *float64 `json:"previousClose"`
	Change         *float64 `json:"change"`
	ChangePercent  *float64 `json:"changePercent"`
	LatestVolume   *float64 `json:"latestVolume"`
	MarketCap      *float64 `json:"marketCap"`
	PERatio        *float64 `json:"peRatio"`
	Week52High     *float64 `json:"week52High"`
	Week52Low      *float64 `json:"week52Low"`
	IsUSMarketOpen bool     `json:"isUSMarketOpen"`
}

// DelayedQuoteResponse は /stock/{symbol}/delayed-quote のレスポンスです。
type DelayedQuoteResponse struct {
	Symbol           string   `json:"symbol"`
	DelayedPrice     *float64 `json:"delayedPrice"`
	DelayedSize      *float64 `json:"delayedSize"`
	DelayedPriceTime *float64 `json:"delayedPriceTime"`
	High             *float64 `json:"high"`
	Low              *float64 `json:"low"`
	TotalVolume      *float64 `json:"totalVolume"`
	ProcessedTime    *float64 `json:"processedTime"`
}

// IntradayPrice は /stock/{symbol}/intraday-prices の1要素です。
type IntradayPrice struct {
	Date           string   `json:"date"`
	Minute         string   `json:"minute"`
	Label          string   `json:"label"`
	High           *float64 `json:"high"`
	Low            *float64 `json:"low"`
	Open           *float64 `json:"open"`
	Close          *float64 `json:"close"`
	Average        *float64 `json:"average"`
	Volume         *float64 `json:"volume"`
	Notional       *float64 `json:"notional"`
	NumberOfTrades *float64 `json:"numberOfTrades"`
}
