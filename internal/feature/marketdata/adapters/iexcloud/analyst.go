package iexcloud

import (
	"context"

	"market_backend/internal/feature/marketdata/adapters/iexcloud/dto"
	"market_backend/internal/feature/marketdata/convert"
	"market_backend/internal/feature/marketdata/domain"
	"market_backend/internal/feature/marketdata/domain/entity"
	"market_backend/internal/platform/usage"
)

func (p *Provider) PriceTarget(ctx context.Context, symbol entity.Symbol) (entity.Snapshot[entity.PriceTarget], error) {
	res, err := fetch[dto.PriceTargetResponse](ctx, p, symbol, "price-target", nil)
	if err != nil {
		return entity.Snapshot[entity.PriceTarget]{}, err
	}
	if res.PriceTargetAverage == nil || res.PriceTargetHigh == nil || res.PriceTargetLow == nil {
		return entity.Snapshot[entity.PriceTarget]{}, domain.NewBadResponseError("price target without values", nil)
	}
	f := newFields(res.Currency)
	high, low, avg := f.money(res.PriceTargetHigh), f.money(res.PriceTargetLow), f.money(res.PriceTargetAverage)
	var analysts int
	if n := f.integer(res.NumberOfAnalysts); n != nil {
		analysts = int(*n)
	}
	updated := f.date(res.UpdatedDate)
	if f.err != nil {
		return entity.Snapshot[entity.PriceTarget]{}, f.err
	}
	p.meter.RecordAPIUse(ctx, usage.PriceTarget)
	return entity.NewSnapshot(entity.PriceTarget{
		High:             *high,
		Low:              *low,
		Average:          *avg,
		NumberOfAnalysts: analysts,
	}, updated), nil
}

// RecommendationTrends は合意期間ごとのレーティング分布を返します。
// 進行中の期間の終了日は今日になります。
func (p *Provider) RecommendationTrends(ctx context.Context, symbol entity.Symbol) ([]entity.Bounded[entity.RatingDistribution], error) {
	res, err := fetch[[]dto.RecommendationTrend](ctx, p, symbol, "recommendation-trends", nil)
	if err != nil {
		return nil, err
	}
	out := make([]entity.Bounded[entity.RatingDistribution], 0, len(res))
	for _, r := range res {
		start, err := convert.EpochMillisToDate(r.ConsensusStartDate)
		if err != nil {
			return nil, err
		}
		end := p.today()
		if r.ConsensusEndDate != nil {
			if end, err = convert.EpochMillisToDate(*r.ConsensusEndDate); err != nil {
				return nil, err
			}
		}
		f := newFields("")
		dist := entity.RatingDistribution{
			Buy:         f.count(r.RatingBuy),
			Overweight:  f.count(r.RatingOverweight),
			Hold:        f.count(r.RatingHold),
			Underweight: f.count(r.RatingUnderweight),
			Sell:        f.count(r.RatingSell),
			None:        f.count(r.RatingNone),
			ScaleMark:   r.RatingScaleMark,
		}
		if f.err != nil {
			return nil, f.err
		}
		b, err := entity.NewBounded(dist, start, end)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	p.meter.RecordAPIUse(ctx, usage.RecommendationTrends)
	return out, nil
}

func (p *Provider) EpsEstimates(ctx context.Context, symbol entity.Symbol) ([]entity.EpsEstimate, error) {
	res, err := fetch[dto.EstimatesResponse](ctx, p, symbol, "estimates", nil)
	if err != nil {
		return nil, err
	}
	out := make([]entity.EpsEstimate, 0, len(res.Estimates))
	for _, e := range res.Estimates {
		if e.ConsensusEPS == nil {
			return nil, domain.NewBadResponseError("estimate without consensusEPS", nil)
		}
		f := newFields(e.Currency)
		value := f.money(e.ConsensusEPS)
		est := entity.EpsEstimate{
			NumberOfEstimates: f.count(e.NumberOfEstimates),
			FiscalPeriod:      e.FiscalPeriod,
			FiscalEndDate:     f.date(e.FiscalEndDate),
			ReportDate:        f.optionalDate(e.ReportDate),
		}
		if f.err != nil {
			return nil, f.err
		}
		est.Value = *value
		out = append(out, est)
	}
	p.meter.RecordAPIUse(ctx, usage.Estimates)
	return out, nil
}

