// Package usecase はマーケットデータ取得のユースケースと、
// プロバイダが満たすべき能力インターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
package usecase

import (
	"context"

	"cloud.google.com/go/civil"

	"market_backend/internal/feature/marketdata/domain/entity"
)

// QuoteProvider は最新価格と気配値を返します。
type QuoteProvider interface {
	LatestPrice(ctx context.Context, symbol entity.Symbol) (entity.Money, error)
	Quote(ctx context.Context, symbol entity.Symbol) (entity.Quote, error)
	DelayedQuote(ctx context.Context, symbol entity.Symbol) (entity.Snapshot[entity.Money], error)
}

// QuotesSeriesProvider は当日の分足系列を返します。
type QuotesSeriesProvider interface {
	IntradayQuotes(ctx context.Context, symbol entity.Symbol) ([]entity.IntradayQuote, error)
}

// PeersProvider は同業他社のシンボルを返します。
type PeersProvider interface {
	Peers(ctx context.Context, symbol entity.Symbol) ([]entity.Symbol, error)
}

// AnalystRecommendationsProvider はアナリスト予想を返します。
type AnalystRecommendationsProvider interface {
	PriceTarget(ctx context.Context, symbol entity.Symbol) (entity.Snapshot[entity.PriceTarget], error)
	RecommendationTrends(ctx context.Context, symbol entity.Symbol) ([]entity.Bounded[entity.RatingDistribution], error)
	EpsEstimates(ctx context.Context, symbol entity.Symbol) ([]entity.EpsEstimate, error)
}

// NewsProvider はニュースを返します。
// LatestNews の n は [entity.MinNewsItems, entity.MaxNewsItems] でなければなりません。
// NewsSince を提供しないプロバイダは domain.ErrUnsupported を包んだ BadRequestError を返します。
type NewsProvider interface {
	LatestNews(ctx context.Context, symbol entity.Symbol, n int) ([]entity.NewsItem, error)
	NewsSince(ctx context.Context, symbol entity.Symbol, from civil.Date) ([]entity.NewsItem, error)
}

// CompanyInfoProvider は企業概要と開示書類を返します。
type CompanyInfoProvider interface {
	Profile(ctx context.Context, symbol entity.Symbol) (entity.CompanyProfile, error)
	Filings(ctx context.Context, symbol entity.Symbol, filter entity.FilingFilter) ([]entity.Filing, error)
}

// CompanyFinancialsProvider は財務諸表を返します。
// last は [entity.MinStatementPeriods, entity.MaxStatementPeriods] でなければなりません。
type CompanyFinancialsProvider interface {
	IncomeStatements(ctx context.Context, symbol entity.Symbol, last int, period entity.Period) ([]entity.IncomeStatement, error)
	BalanceSheets(ctx context.Context, symbol entity.Symbol, last int, period entity.Period) ([]entity.BalanceSheet, error)
}

// CompanyStatisticsProvider は主要指標を返します。
type CompanyStatisticsProvider interface {
	Statistics(ctx context.Context, symbol entity.Symbol) (entity.Snapshot[entity.CompanyStatistics], error)
}

// Attributed はデータ提供元の表示文言とURLを返します。
type Attributed interface {
	Attribution() string
	URL() string
}

// Providers は能力ごとのプロバイダの組です。nil の能力は未対応として扱われます。
type Providers struct {
	Quotes     QuoteProvider
	Series     QuotesSeriesProvider
	Peers      PeersProvider
	Analysts   AnalystRecommendationsProvider
	News       NewsProvider
	Company    CompanyInfoProvider
	Financials CompanyFinancialsProvider
	Statistics CompanyStatisticsProvider
}

// ProvidersFrom は各能力について、それを実装する最初の source を割り当てます。
func ProvidersFrom(sources ...any) Providers {
	var p Providers
	for _, s := range sources {
		if s == nil {
			continue
		}
		if v, ok := s.(QuoteProvider); ok && p.Quotes == nil {
			p.Quotes = v
		}
		if v, ok := s.(QuotesSeriesProvider); ok && p.Series == nil {
			p.Series = v
		}
		if v, ok := s.(PeersProvider); ok && p.Peers == nil {
			p.Peers = v
		}
		if v, ok := s.(AnalystRecommendationsProvider); ok && p.Analysts == nil {
			p.Analysts = v
		}
		if v, ok := s.(NewsProvider); ok && p.News == nil {
			p.News = v
		}
		if v, ok := s.(CompanyInfoProvider); ok && p.Company == nil {
			p.Company = v
		}
		if v, ok := s.(CompanyFinancialsProvider); ok && p.Financials == nil {
			p.Financials = v
		}
		if v, ok := s.(CompanyStatisticsProvider); ok && p.Statistics == nil {
			p.Statistics = v
		}
	}
	return p
}

func (p Providers) all() []any {
	return []any{p.Quotes, p.Series, p.Peers, p.Analysts, p.News, p.Company, p.Financials, p.Statistics}
}
