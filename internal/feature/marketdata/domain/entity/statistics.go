package entity

import "cloud.google.com/go/civil"

// ChangePercents holds price change ratios over the usual lookback windows.
type ChangePercents struct {
	Day5   *float64 `json:"day5,omitempty"`
	Day30  *float64 `json:"day30,omitempty"`
	Month1 *float64 `json:"month1,omitempty"`
	Month3 *float64 `json:"month3,omitempty"`
	Month6 *float64 `json:"month6,omitempty"`
	YTD    *float64 `json:"ytd,omitempty"`
	Year1  *float64 `json:"year1,omitempty"`
	Year2  *float64 `json:"year2,omitempty"`
	Year5  *float64 `json:"year5,omitempty"`
	Max    *float64 `json:"max,omitempty"`
}

// CompanyStatistics is a set of derived key statistics.
type CompanyStatistics struct {
	CompanyName       string         `json:"company_name"`
	MarketCap         *Money         `json:"market_cap,omitempty"`
	Week52High        *Money         `json:"week52_high,omitempty"`
	Week52Low         *Money         `json:"week52_low,omitempty"`
	Week52Change      *float64       `json:"week52_change,omitempty"`
	Day50MovingAvg    *Money         `json:"day50_moving_avg,omitempty"`
	Day200MovingAvg   *Money         `json:"day200_moving_avg,omitempty"`
	SharesOutstanding *int64         `json:"shares_outstanding,omitempty"`
	Float             *int64         `json:"float,omitempty"`
	Employees         *int64         `json:"employees,omitempty"`
	TTMEPS            *Money         `json:"ttm_eps,omitempty"`
	TTMDividendRate   *Money         `json:"ttm_dividend_rate,omitempty"`
	DividendYield     *float64       `json:"dividend_yield,omitempty"`
	NextDividendDate  *civil.Date    `json:"next_dividend_date,omitempty"`
	ExDividendDate    *civil.Date    `json:"ex_dividend_date,omitempty"`
	NextEarningsDate  *civil.Date    `json:"next_earnings_date,omitempty"`
	PERatio           *float64       `json:"pe_ratio,omitempty"`
	Beta              *float64       `json:"beta,omitempty"`
	Changes           ChangePercents `json:"change_percents"`
}
