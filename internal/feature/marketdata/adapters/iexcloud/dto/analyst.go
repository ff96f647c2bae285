package dto

// PriceTargetResponse は /stock/{symbol}/price-target のレスポンスです。
type PriceTargetResponse struct {
	Symbol             string   `json:"symbol"`
	UpdatedDate        string   `json:"updatedDate"`
	PriceTargetAverage *float64 `json:"priceTargetAverage"`
	PriceTargetHigh    *float64 `json:"priceTargetHigh"`
	PriceTargetLow     *float64 `json:"priceTargetLow"`
	NumberOfAnalysts   *float64 `json:"numberOfAnalysts"`
	Currency           string   `json:"currency"`
}

// RecommendationTrend は /stock/{symbol}/recommendation-trends の1要素です。
// 日付はエポックミリ秒で、進行中の期間は consensusEndDate が null です。
type RecommendationTrend struct {
	ConsensusStartDate float64  `json:"consensusStartDate"`
	ConsensusEndDate   *float64 `json:"consensusEndDate"`
	RatingBuy          float64  `json:"ratingBuy"`
	RatingOverweight   float64  `json:"ratingOverweight"`
	RatingHold         float64  `json:"ratingHold"`
	RatingUnderweight  float64  `json:"ratingUnderweight"`
	RatingSell         float64  `json:"ratingSell"`
	RatingNone         float64  `json:"ratingNone"`
	RatingScaleMark    float64  `json:"ratingScaleMark"`
}

// EstimatesResponse は /stock/{symbol}/estimates のレスポンスです。
type EstimatesResponse struct {
	Symbol    string     `json:"symbol"`
	Estimates []Estimate `json:"estimates"`
}

type Estimate struct {
	ConsensusEPS      *float64 `json:"consensusEPS"`
	NumberOfEstimates float64  `json:"numberOfEstimates"`
	FiscalPeriod      string   `json:"fiscalPeriod"`
	FiscalEndDate     string   `json:"fiscalEndDate"`
	ReportDate        *string  `json:"reportDate"`
	Currency          string   `json:"currency"`
}
