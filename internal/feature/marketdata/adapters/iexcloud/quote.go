package iexcloud

import (
	"context"

	"cloud.google.com/go/civil"

	"market_backend/internal/feature/marketdata/adapters/iexcloud/dto"
	"market_backend/internal/feature/marketdata/convert"
	"market_backend/internal/feature/marketdata/domain"
	"market_backend/internal/feature/marketdata/domain/entity"
	"market_backend/internal/platform/usage"
)

// LatestPrice は /price の数値を返します。
func (p *Provider) LatestPrice(ctx context.Context, symbol entity.Symbol) (entity.Money, error) {
	price, err := fetch[float64](ctx, p, symbol, "price", nil)
	if err != nil {
		return entity.Money{}, err
	}
	m, err := convert.FloatToMoney(price, defaultCurrency)
	if err != nil {
		return entity.Money{}, err
	}
	p.meter.RecordAPIUse(ctx, usage.Price)
	return m, nil
}

func (p *Provider) Quote(ctx context.Context, symbol entity.Symbol) (entity.Quote, error) {
	res, err := fetch[dto.QuoteResponse](ctx, p, symbol, "quote", nil)
	if err != nil {
		return entity.Quote{}, err
	}
	q, err := toQuote(res)
	if err != nil {
		return entity.Quote{}, err
	}
	p.meter.RecordAPIUse(ctx, usage.Quote)
	return q, nil
}

func toQuote(res dto.QuoteResponse) (entity.Quote, error) {
	if res.LatestPrice == nil {
		return entity.Quote{}, domain.NewBadResponseError("quote without latestPrice", nil)
	}
	f := newFields(res.Currency)
	q := entity.Quote{
		Symbol:         entity.Symbol(res.Symbol),
		CompanyName:    res.CompanyName,
		LatestSource:   res.LatestSource,
		Open:           f.money(res.Open),
		Close:          f.money(res.Close),
		High:           f.money(res.High),
		Low:            f.money(res.Low),
		PreviousClose:  f.money(res.PreviousClose),
		Change:         f.money(res.Change),
		ChangePercent:  f.ratio(res.ChangePercent),
		Volume:         f.integer(res.LatestVolume),
		MarketCap:      f.money(res.MarketCap),
		PERatio:        f.ratio(res.PERatio),
		Week52High:     f.money(res.Week52High),
		Week52Low:      f.money(res.Week52Low),
		IsUSMarketOpen: res.IsUSMarketOpen,
	}
	if f.err != nil {
		return entity.Quote{}, f.err
	}

	latest, err := convert.FloatToMoney(*res.LatestPrice, currencyOr(res.Currency))
	if err != nil {
		return entity.Quote{}, err
	}
	q.LatestPrice = latest

	if res.LatestUpdate != nil {
		t, err := convert.EpochMillisToDateTime(*res.LatestUpdate)
		if err != nil {
			return entity.Quote{}, err
		}
		q.LatestUpdate = t
	}
	return q, nil
}

// DelayedQuote は15分遅延価格を、その価格時刻の取引所日付付きで返します。
func (p *Provider) DelayedQuote(ctx context.Context, symbol entity.Symbol) (entity.Snapshot[entity.Money], error) {
	res, err := fetch[dto.DelayedQuoteResponse](ctx, p, symbol, "delayed-quote", nil)
	if err != nil {
		return entity.Snapshot[entity.Money]{}, err
	}
	if res.DelayedPrice == nil || res.DelayedPriceTime == nil {
		return entity.Snapshot[entity.Money]{}, domain.NewBadResponseError("delayed quote without price or time", nil)
	}
	price, err := convert.FloatToMoney(*res.DelayedPrice, defaultCurrency)
	if err != nil {
		return entity.Snapshot[entity.Money]{}, err
	}
	at, err := convert.EpochMillisToDateTime(*res.DelayedPriceTime)
	if err != nil {
		return entity.Snapshot[entity.Money]{}, err
	}
	p.meter.RecordAPIUse(ctx, usage.DelayedQuote)
	return entity.NewSnapshot(price, civil.DateOf(at.In(p.loc))), nil
}

// IntradayQuotes は当日の分足を返します。取引のなかった分は価格が nil になります。
func (p *Provider) IntradayQuotes(ctx context.Context, symbol entity.Symbol) ([]entity.IntradayQuote, error) {
	res, err := fetch[[]dto.IntradayPrice](ctx, p, symbol, "intraday-prices", nil)
	if err != nil {
		return nil, err
	}
	out := make([]entity.IntradayQuote, 0, len(res))
	for _, bar := range res {
		at, err := convert.DateAndTimeToDateTime(bar.Date, bar.Minute, p.loc)
		if err != nil {
			return nil, err
		}
		f := newFields(defaultCurrency)
		q := entity.IntradayQuote{
			Time:    at,
			Open:    f.money(bar.Open),
			High:    f.money(bar.High),
			Low:     f.money(bar.Low),
			Close:   f.money(bar.Close),
			Average: f.money(bar.Average),
		}
		if v := f.integer(bar.Volume); v != nil {
			q.Volume = *v
		}
		if n := f.integer(bar.NumberOfTrades); n != nil {
			q.NumberOfTrades = *n
		}
		if f.err != nil {
			return nil, f.err
		}
		out = append(out, q)
	}
	p.meter.RecordAPIUse(ctx, usage.IntradayPrices)
	return out, nil
}

// Peers は同業他社のシンボルを返します。不正なシンボルが含まれる場合は BadResponseError です。
func (p *Provider) Peers(ctx context.Context, symbol entity.Symbol) ([]entity.Symbol, error) {
	res, err := fetch[[]string](ctx, p, symbol, "peers", nil)
	if err != nil {
		return nil, err
	}
	out := make([]entity.Symbol, 0, len(res))
	for _, s := range res {
		peer := entity.Symbol(s)
		if !peer.IsValid() {
			return nil, domain.NewBadResponseError("invalid peer symbol "+s, nil)
		}
		out = append(out, peer)
	}
	p.meter.RecordAPIUse(ctx, usage.Peers)
	return out, nil
}
