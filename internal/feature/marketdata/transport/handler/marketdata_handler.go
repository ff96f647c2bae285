// Package handler はmarketdataフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/gin-gonic/gin"

	"market_backend/internal/feature/marketdata/domain"
	"market_backend/internal/feature/marketdata/domain/entity"
	"market_backend/internal/feature/marketdata/transport/http/dto"
	"market_backend/internal/feature/marketdata/usecase"
	"market_backend/internal/platform/usage"
)

// MarketDataUsecase は市場データ取得のユースケースインターフェースです。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type MarketDataUsecase interface {
	LatestPrice(ctx context.Context, symbol entity.Symbol) (entity.Money, error)
	Quote(ctx context.Context, symbol entity.Symbol) (entity.Quote, error)
	DelayedQuote(ctx context.Context, symbol entity.Symbol) (entity.Snapshot[entity.Money], error)
	IntradayQuotes(ctx context.Context, symbol entity.Symbol) ([]entity.IntradayQuote, error)
	Peers(ctx context.Context, symbol entity.Symbol) ([]entity.Symbol, error)
	PriceTarget(ctx context.Context, symbol entity.Symbol) (entity.Snapshot[entity.PriceTarget], error)
	RecommendationTrends(ctx context.Context, symbol entity.Symbol) ([]entity.Bounded[entity.RatingDistribution], error)
	EpsEstimates(ctx context.Context, symbol entity.Symbol) ([]entity.EpsEstimate, error)
	LatestNews(ctx context.Context, symbol entity.Symbol, n int) ([]entity.NewsItem, error)
	NewsSince(ctx context.Context, symbol entity.Symbol, from civil.Date) ([]entity.NewsItem, error)
	Profile(ctx context.Context, symbol entity.Symbol) (entity.CompanyProfile, error)
	Filings(ctx context.Context, symbol entity.Symbol, filter entity.FilingFilter) ([]entity.Filing, error)
	IncomeStatements(ctx context.Context, symbol entity.Symbol, last int, period entity.Period) ([]entity.IncomeStatement, error)
	BalanceSheets(ctx context.Context, symbol entity.Symbol, last int, period entity.Period) ([]entity.BalanceSheet, error)
	Statistics(ctx context.Context, symbol entity.Symbol) (entity.Snapshot[entity.CompanyStatistics], error)
	Sources() []usecase.Source
}

// UsageReporter は API 利用量の集計値を返します。
type UsageReporter interface {
	Snapshot() usage.Snapshot
}

// MarketDataHandler は市場データのHTTPリクエストを処理します。
type MarketDataHandler struct {
	uc    MarketDataUsecase
	meter UsageReporter
}

// NewMarketDataHandler は新しい MarketDataHandler を作成します。
func NewMarketDataHandler(uc MarketDataUsecase, meter UsageReporter) *MarketDataHandler {
	return &MarketDataHandler{uc: uc, meter: meter}
}

// Usage は API 利用量とデータの帰属表示を返します。
//
// エンドポイント例:
// GET /usage
func (h *MarketDataHandler) Usage(c *gin.Context) {
	snap := h.meter.Snapshot()
	if snap.Entries == nil {
		snap.Entries = []usage.Entry{}
	}
	sources := h.uc.Sources()
	if sources == nil {
		sources = []usecase.Source{}
	}
	c.JSON(http.StatusOK, dto.UsageResponse{
		Total:   snap.Total,
		Entries: snap.Entries,
		Sources: sources,
	})
}

// symbolParam はパスパラメータの銘柄コードを大文字に揃えて返します。
// 長さの検証はプロバイダが行います。
func symbolParam(c *gin.Context) entity.Symbol {
	return entity.Symbol(strings.ToUpper(strings.TrimSpace(c.Param("symbol"))))
}

// intQuery は整数クエリを読みます。未指定なら 0 を返します。
func intQuery(c *gin.Context, key string) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.NewBadRequestError(key + " must be an integer")
	}
	return n, nil
}

// dateQuery は YYYY-MM-DD 形式の日付クエリを読みます。未指定なら nil を返します。
func dateQuery(c *gin.Context, key string) (*civil.Date, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	d, err := civil.ParseDate(raw)
	if err != nil {
		return nil, domain.NewBadRequestError(key + " must be a date (YYYY-MM-DD)")
	}
	return &d, nil
}

// periodQuery は period クエリを読みます。未指定なら 0 を返し、既定値はユースケースが決めます。
func periodQuery(c *gin.Context) (entity.Period, error) {
	raw := c.Query("period")
	if raw == "" {
		return 0, nil
	}
	p, ok := entity.ParsePeriod(strings.ToLower(raw))
	if !ok {
		return 0, domain.NewBadRequestError("period must be quarter or annual")
	}
	return p, nil
}

// StatusOf は RequestError の種別を HTTP ステータスへ対応付けます。
func StatusOf(err error) int {
	kind, ok := domain.KindOf(err)
	if !ok {
		return http.StatusInternalServerError
	}
	switch kind {
	case domain.KindBadSymbol, domain.KindBadRequest:
		return http.StatusBadRequest
	case domain.KindAuthentication:
		return http.StatusUnauthorized
	case domain.KindAuthorization:
		return http.StatusForbidden
	case domain.KindThrottled:
		return http.StatusTooManyRequests
	case domain.KindBadResponse, domain.KindCommunication:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeError(c *gin.Context, err error) {
	status := StatusOf(err)
	resp := dto.ErrorResponse{Error: err.Error()}
	var re *domain.RequestError
	if errors.As(err, &re) {
		resp.Kind = re.Kind.String()
	}
	if status >= http.StatusInternalServerError {
		slog.Error("market data request failed", "path", c.FullPath(), "status", status, "error", err)
	}
	c.JSON(status, resp)
}
