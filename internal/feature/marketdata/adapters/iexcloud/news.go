package iexcloud

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"cloud.google.com/go/civil"

	"market_backend/internal/feature/marketdata/adapters/iexcloud/dto"
	"market_backend/internal/feature/marketdata/convert"
	"market_backend/internal/feature/marketdata/domain"
	"market_backend/internal/feature/marketdata/domain/entity"
	"market_backend/internal/platform/usage"
)

// LatestNews は最新 n 件のニュースを返します。n が範囲外なら通信前に BadRequestError を返します。
// 使用量は返却件数で記録されます。
func (p *Provider) LatestNews(ctx context.Context, symbol entity.Symbol, n int) ([]entity.NewsItem, error) {
	if !symbol.IsValid() {
		return nil, domain.NewBadSymbolError(string(symbol))
	}
	if n < entity.MinNewsItems || n > entity.MaxNewsItems {
		return nil, domain.NewBadRequestError(fmt.Sprintf("news count must be between %d and %d, got %d", entity.MinNewsItems, entity.MaxNewsItems, n))
	}
	res, err := fetch[[]dto.NewsItem](ctx, p, symbol, "news/last/"+strconv.Itoa(n), nil)
	if err != nil {
		return nil, err
	}
	out := make([]entity.NewsItem, 0, len(res))
	for _, item := range res {
		at, err := convert.EpochMillisToDateTime(item.Datetime)
		if err != nil {
			return nil, err
		}
		out = append(out, entity.NewsItem{
			Time:       at,
			Headline:   item.Headline,
			Source:     item.Source,
			URL:        item.URL,
			Summary:    item.Summary,
			Related:    relatedSymbols(item.Related),
			Image:      item.Image,
			Language:   item.Lang,
			HasPaywall: item.HasPaywall,
		})
	}
	if len(out) > 0 {
		p.meter.RecordAPIUsage(ctx, usage.News, int64(len(out)))
	}
	return out, nil
}

// NewsSince は IEX Cloud では提供されません。
func (p *Provider) NewsSince(_ context.Context, symbol entity.Symbol, _ civil.Date) ([]entity.NewsItem, error) {
	if !symbol.IsValid() {
		return nil, domain.NewBadSymbolError(string(symbol))
	}
	return nil, domain.NewUnsupportedError("news since a date")
}

// relatedSymbols splits "AAPL,MSFT" and drops entries that are not valid symbols.
func relatedSymbols(s string) []entity.Symbol {
	out := []entity.Symbol{}
	for _, part := range strings.Split(s, ",") {
		sym := entity.Symbol(strings.TrimSpace(part))
		if sym.IsValid() {
			out = append(out, sym)
		}
	}
	return out
}
