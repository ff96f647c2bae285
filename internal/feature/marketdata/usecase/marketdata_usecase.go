package usecase

import (
	"context"

	"cloud.google.com/go/civil"

	"market_backend/internal/feature/marketdata/domain"
	"market_backend/internal/feature/marketdata/domain/entity"
)

const (
	// DefaultNewsItems は件数未指定時のニュース件数です。
	DefaultNewsItems = 10
	// DefaultStatementPeriods は期数未指定時の財務諸表の期数です。
	DefaultStatementPeriods = 4
)

// Source is one attribution line for the data served.
type Source struct {
	Attribution string `json:"attribution"`
	URL         string `json:"url"`
}

// MarketDataUsecase routes each request to the provider holding the capability.
type MarketDataUsecase struct {
	p Providers
}

// NewMarketDataUsecase はMarketDataUsecaseの新しいインスタンスを生成します。
func NewMarketDataUsecase(p Providers) *MarketDataUsecase {
	return &MarketDataUsecase{p: p}
}

func (u *MarketDataUsecase) LatestPrice(ctx context.Context, symbol entity.Symbol) (entity.Money, error) {
	if u.p.Quotes == nil {
		return entity.Money{}, domain.NewUnsupportedError("latest price")
	}
	return u.p.Quotes.LatestPrice(ctx, symbol)
}

func (u *MarketDataUsecase) Quote(ctx context.Context, symbol entity.Symbol) (entity.Quote, error) {
	if u.p.Quotes == nil {
		return entity.Quote{}, domain.NewUnsupportedError("quote")
	}
	return u.p.Quotes.Quote(ctx, symbol)
}

func (u *MarketDataUsecase) DelayedQuote(ctx context.Context, symbol entity.Symbol) (entity.Snapshot[entity.Money], error) {
	if u.p.Quotes == nil {
		return entity.Snapshot[entity.Money]{}, domain.NewUnsupportedError("delayed quote")
	}
	return u.p.Quotes.DelayedQuote(ctx, symbol)
}

func (u *MarketDataUsecase) IntradayQuotes(ctx context.Context, symbol entity.Symbol) ([]entity.IntradayQuote, error) {
	if u.p.Series == nil {
		return nil, domain.NewUnsupportedError("intraday quotes")
	}
	return u.p.Series.IntradayQuotes(ctx, symbol)
}

func (u *MarketDataUsecase) Peers(ctx context.Context, symbol entity.Symbol) ([]entity.Symbol, error) {
	if u.p.Peers == nil {
		return nil, domain.NewUnsupportedError("peers")
	}
	return u.p.Peers.Peers(ctx, symbol)
}

func (u *MarketDataUsecase) PriceTarget(ctx context.Context, symbol entity.Symbol) (entity.Snapshot[entity.PriceTarget], error) {
	if u.p.Analysts == nil {
		return entity.Snapshot[entity.PriceTarget]{}, domain.NewUnsupportedError("price target")
	}
	return u.p.Analysts.PriceTarget(ctx, symbol)
}

func (u *MarketDataUsecase) RecommendationTrends(ctx context.Context, symbol entity.Symbol) ([]entity.Bounded[entity.RatingDistribution], error) {
	if u.p.Analysts == nil {
		return nil, domain.NewUnsupportedError("recommendation trends")
	}
	return u.p.Analysts.RecommendationTrends(ctx, symbol)
}

func (u *MarketDataUsecase) EpsEstimates(ctx context.Context, symbol entity.Symbol) ([]entity.EpsEstimate, error) {
	if u.p.Analysts == nil {
		return nil, domain.NewUnsupportedError("eps estimates")
	}
	return u.p.Analysts.EpsEstimates(ctx, symbol)
}

// LatestNews は最新 n 件のニュースを返します。n が 0 の場合は DefaultNewsItems を使います。
// 範囲外の n はプロバイダが BadRequestError として拒否します。
func (u *MarketDataUsecase) LatestNews(ctx context.Context, symbol entity.Symbol, n int) ([]entity.NewsItem, error) {
	if u.p.News == nil {
		return nil, domain.NewUnsupportedError("news")
	}
	if n == 0 {
		n = DefaultNewsItems
	}
	return u.p.News.LatestNews(ctx, symbol, n)
}

func (u *MarketDataUsecase) NewsSince(ctx context.Context, symbol entity.Symbol, from civil.Date) ([]entity.NewsItem, error) {
	if u.p.News == nil {
		return nil, domain.NewUnsupportedError("news since")
	}
	return u.p.News.NewsSince(ctx, symbol, from)
}

func (u *MarketDataUsecase) Profile(ctx context.Context, symbol entity.Symbol) (entity.CompanyProfile, error) {
	if u.p.Company == nil {
		return entity.CompanyProfile{}, domain.NewUnsupportedError("company profile")
	}
	return u.p.Company.Profile(ctx, symbol)
}

func (u *MarketDataUsecase) Filings(ctx context.Context, symbol entity.Symbol, filter entity.FilingFilter) ([]entity.Filing, error) {
	if u.p.Company == nil {
		return nil, domain.NewUnsupportedError("filings")
	}
	return u.p.Company.Filings(ctx, symbol, filter)
}

// IncomeStatements は last が 0 なら DefaultStatementPeriods、period が 0 なら四半期を使います。
func (u *MarketDataUsecase) IncomeStatements(ctx context.Context, symbol entity.Symbol, last int, period entity.Period) ([]entity.IncomeStatement, error) {
	if u.p.Financials == nil {
		return nil, domain.NewUnsupportedError("income statements")
	}
	last, period = statementDefaults(last, period)
	return u.p.Financials.IncomeStatements(ctx, symbol, last, period)
}

func (u *MarketDataUsecase) BalanceSheets(ctx context.Context, symbol entity.Symbol, last int, period entity.Period) ([]entity.BalanceSheet, error) {
	if u.p.Financials == nil {
		return nil, domain.NewUnsupportedError("balance sheets")
	}
	last, period = statementDefaults(last, period)
	return u.p.Financials.BalanceSheets(ctx, symbol, last, period)
}

func (u *MarketDataUsecase) Statistics(ctx context.Context, symbol entity.Symbol) (entity.Snapshot[entity.CompanyStatistics], error) {
	if u.p.Statistics == nil {
		return entity.Snapshot[entity.CompanyStatistics]{}, domain.NewUnsupportedError("statistics")
	}
	return u.p.Statistics.Statistics(ctx, symbol)
}

// Sources は設定済みプロバイダの帰属表示を重複なしで返します。
func (u *MarketDataUsecase) Sources() []Source {
	var out []Source
	seen := map[Source]bool{}
	for _, p := range u.p.all() {
		a, ok := p.(Attributed)
		if !ok {
			continue
		}
		s := Source{Attribution: a.Attribution(), URL: a.URL()}
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

func statementDefaults(last int, period entity.Period) (int, entity.Period) {
	if last == 0 {
		last = DefaultStatementPeriods
	}
	if period == 0 {
		period = entity.Quarterly
	}
	return last, period
}
