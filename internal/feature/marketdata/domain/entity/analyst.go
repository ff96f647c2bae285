package entity

import "cloud.google.com/go/civil"

// PriceTarget is the analyst consensus price target.
type PriceTarget struct {
	High             Money `json:"high"`
	Low              Money `json:"low"`
	Average          Money `json:"average"`
	NumberOfAnalysts int   `json:"number_of_analysts"`
}

// RatingDistribution counts analyst ratings over one consensus window.
// ScaleMark is the provider's weighted score (1 = buy .. 5 = sell).
type RatingDistribution struct {
	Buy         int     `json:"buy"`
	Overweight  int     `json:"overweight"`
	Hold        int     `json:"hold"`
	Underweight int     `json:"underweight"`
	Sell        int     `json:"sell"`
	None        int     `json:"none"`
	ScaleMark   float64 `json:"scale_mark"`
}

// Total returns the number of ratings that took a position.
func (r RatingDistribution) Total() int {
	return r.Buy + r.Overweight + r.Hold + r.Underweight + r.Sell
}

// EpsEstimate is a consensus earnings-per-share estimate for one fiscal period.
type EpsEstimate struct {
	Value             Money       `json:"value"`
	NumberOfEstimates int         `json:"number_of_estimates"`
	FiscalPeriod      string      `json:"fiscal_period"`
	FiscalEndDate     civil.Date  `json:"fiscal_end_date"`
	ReportDate        *civil.Date `json:"report_date,omitempty"`
}
