package iexcloud

import (
	"context"

	"market_backend/internal/feature/marketdata/adapters/iexcloud/dto"
	"market_backend/internal/feature/marketdata/domain/entity"
	"market_backend/internal/platform/usage"
)

// Statistics は主要指標を、取得した取引所日付のスナップショットとして返します。
func (p *Provider) Statistics(ctx context.Context, symbol entity.Symbol) (entity.Snapshot[entity.CompanyStatistics], error) {
	res, err := fetch[dto.StatsResponse](ctx, p, symbol, "stats", nil)
	if err != nil {
		return entity.Snapshot[entity.CompanyStatistics]{}, err
	}
	f := newFields("")
	stats := entity.CompanyStatistics{
		CompanyName:       res.CompanyName,
		MarketCap:         f.money(res.MarketCap),
		Week52High:        f.money(res.Week52High),
		Week52Low:         f.money(res.Week52Low),
		Week52Change:      f.ratio(res.Week52Change),
		Day50MovingAvg:    f.money(res.Day50MovingAvg),
		Day200MovingAvg:   f.money(res.Day200MovingAvg),
		SharesOutstanding: f.integer(res.SharesOutstanding),
		Float:             f.integer(res.Float),
		Employees:         f.integer(res.Employees),
		TTMEPS:            f.money(res.TTMEPS),
		TTMDividendRate:   f.money(res.TTMDividendRate),
		DividendYield:     f.ratio(res.DividendYield),
		NextDividendDate:  f.optionalDate(res.NextDividendDate),
		ExDividendDate:    f.optionalDate(res.ExDividendDate),
		NextEarningsDate:  f.optionalDate(res.NextEarningsDate),
		PERatio:           f.ratio(res.PERatio),
		Beta:              f.ratio(res.Beta),
		Changes: entity.ChangePercents{
			Day5:   f.ratio(res.Day5ChangePercent),
			Day30:  f.ratio(res.Day30ChangePercent),
			Month1: f.ratio(res.Month1ChangePercent),
			Month3: f.ratio(res.Month3ChangePercent),
			Month6: f.ratio(res.Month6ChangePercent),
			YTD:    f.ratio(res.YTDChangePercent),
			Year1:  f.ratio(res.Year1ChangePercent),
			Year2:  f.ratio(res.Year2ChangePercent),
			Year5:  f.ratio(res.Year5ChangePercent),
			Max:    f.ratio(res.MaxChangePercent),
		},
	}
	if f.err != nil {
		return entity.Snapshot[entity.CompanyStatistics]{}, f.err
	}
	p.meter.RecordAPIUse(ctx, usage.Statistics)
	return entity.NewSnapshot(stats, p.today()), nil
}
