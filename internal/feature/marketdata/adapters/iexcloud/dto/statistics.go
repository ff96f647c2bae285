package dto

// StatsResponse は /stock/{symbol}/stats のレスポンスです。
// 日付項目は未定の場合に空文字または null になります。
type StatsResponse struct {
	CompanyName         string   `json:"companyName"`
	MarketCap           *float64 `json:"marketcap"`
	Week52High          *float64 `json:"week52high"`
	Week52Low           *float64 `json:"week52low"`
	Week52Change        *float64 `json:"week52change"`
	Day50MovingAvg      *float64 `json:"day50MovingAvg"`
	Day200MovingAvg     *float64 `json:"day200MovingAvg"`
	SharesOutstanding   *float64 `json:"sharesOutstanding"`
	Float               *float64 `json:"float"`
	Employees           *float64 `json:"employees"`
	TTMEPS              *float64 `json:"ttmEPS"`
	TTMDividendRate     *float64 `json:"ttmDividendRate"`
	DividendYield       *float64 `json:"dividendYield"`
	NextDividendDate    *string  `json:"nextDividendDate"`
	ExDividendDate      *string  `json:"exDividendDate"`
	NextEarningsDate    *string  `json:"nextEarningsDate"`
	PERatio             *float64 `json:"peRatio"`
	Beta                *float64 `json:"beta"`
	Day5ChangePercent   *float64 `json:"day5ChangePercent"`
	Day30ChangePercent  *float64 `json:"day30ChangePercent"`
	Month1ChangePercent *float64 `json:"month1ChangePercent"`
	Month3ChangePercent *float64 `json:"month3ChangePercent"`
	Month6ChangePercent *float64 `json:"month6ChangePercent"`
	YTDChangePercent    *float64 `json:"ytdChangePercent"`
	Year1ChangePercent  *float64 `json:"year1ChangePercent"`
	Year2ChangePercent  *float64 `json:"year2ChangePercent"`
	Year5ChangePercent  *float64 `json:"year5ChangePercent"`
	MaxChangePercent    *float64 `json:"maxChangePercent"`
}
