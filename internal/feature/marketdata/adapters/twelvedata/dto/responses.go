// Package dto はTwelve Data APIレスポンスのデータ転送オブジェクトを定義します。
// 数値はすべて文字列で返されます。
package dto

// Status は全レスポンス共通のエラー表現です。
// HTTP 200 のまま status が "error" になり、code に本来のHTTPステータスが入ります。
type Status struct {
	Status  string `json:"status"`
	Code    int    `json:"code"`
	Message string `json:"message,omitempty"`
}

// PriceResponse は /price のレスポンスです。
type PriceResponse struct {
	Status
	Price string `json:"price"`
}

// QuoteResponse は /quote のレスポンスです。
type QuoteResponse struct {
	Status
	Symbol        string `json:"symbol"`
	Name          string `json:"name"`
	Exchange      string `json:"exchange"`
	Currency      string `json:"currency"`
	Datetime      string `json:"datetime"`
	Timestamp     *int64 `json:"timestamp"`
	Open          string `json:"open"`
	High          string `json:"high"`
	Low           string `json:"low"`
	Close         string `json:"close"`
	Volume        string `json:"volume"`
	PreviousClose string `json:"previous_close"`
	Change        string `json:"change"`
	PercentChange string `json:"percent_change"`
	IsMarketOpen  bool   `json:"is_market_open"`
	FiftyTwoWeek  struct {
		Low  string `json:"low"`
		High string `json:"high"`
	} `json:"fifty_two_week"`
}

// TimeSeriesResponse はTwelve Data time_seriesエンドポイントからのJSONレスポンスを表します。
type TimeSeriesResponse struct {
	Status
	Meta struct {
		Symbol           string `json:"symbol"`
		Interval         string `json:"interval"`
		Currency         string `json:"currency"`
		ExchangeTimezone string `json:"exchange_timezone"`
	} `json:"meta"`
	Values []struct {
		Datetime string `json:"datetime"`
		Open     string `json:"open"`
		High     string `json:"high"`
		Low      string `json:"low"`
		Close    string `json:"close"`
		Volume   string `json:"volume"`
	} `json:"values"`
}
