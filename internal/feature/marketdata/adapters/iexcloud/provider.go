package iexcloud

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"
	_ "time/tzdata"

	"cloud.google.com/go/civil"

	"market_backend/internal/feature/marketdata/domain"
	"market_backend/internal/feature/marketdata/domain/entity"
	"market_backend/internal/feature/marketdata/usecase"
	platformhttp "market_backend/internal/platform/http"
	"market_backend/internal/platform/usage"
)

const (
	attribution = "Data provided by IEX Cloud"
	homepage    = "https://iexcloud.io"
	// marketTimeZone は IEX が日付と分足を報告するタイムゾーンです。
	marketTimeZone  = "America/New_York"
	defaultCurrency = "USD"
	userAgent       = "market-backend/iexcloud"
)

// JSONGetter は platformhttp.JSONClient が満たす転送層インターフェースです。
type JSONGetter interface {
	GetJSON(ctx context.Context, rawURL string, out any) error
}

// Provider は IEX Cloud を使ってすべての能力インターフェースを実装します。
// 構築後は不変で、並行利用できます。
type Provider struct {
	cfg     Config
	baseURL string
	client  JSONGetter
	meter   usage.Recorder
	loc     *time.Location
	now     func() time.Time
}

// Providerが能力インターフェースを実装していることをコンパイル時に検証します。
var (
	_ usecase.QuoteProvider                  = (*Provider)(nil)
	_ usecase.QuotesSeriesProvider           = (*Provider)(nil)
	_ usecase.PeersProvider                  = (*Provider)(nil)
	_ usecase.AnalystRecommendationsProvider = (*Provider)(nil)
	_ usecase.NewsProvider                   = (*Provider)(nil)
	_ usecase.CompanyInfoProvider            = (*Provider)(nil)
	_ usecase.CompanyFinancialsProvider      = (*Provider)(nil)
	_ usecase.CompanyStatisticsProvider      = (*Provider)(nil)
	_ usecase.Attributed                     = (*Provider)(nil)
)

// Option は Provider の生成オプションです。
type Option func(*Provider)

// WithHTTPClient は転送に使う HTTP クライアントを指定します。
func WithHTTPClient(doer platformhttp.Doer) Option {
	return func(p *Provider) { p.client = platformhttp.NewJSONClient(doer, userAgent) }
}

// WithJSONGetter は転送層そのものを差し替えます。
func WithJSONGetter(g JSONGetter) Option {
	return func(p *Provider) { p.client = g }
}

// WithUsageRecorder は成功した呼び出しを記録するメーターを指定します。
func WithUsageRecorder(r usage.Recorder) Option {
	return func(p *Provider) {
		if r != nil {
			p.meter = r
		}
	}
}

// WithBaseURL は接続先を上書きします（テスト用）。
func WithBaseURL(u string) Option {
	return func(p *Provider) { p.baseURL = strings.TrimRight(u, "/") }
}

// WithClock は「今日」の判定に使う時計を指定します。
func WithClock(now func() time.Time) Option {
	return func(p *Provider) { p.now = now }
}

// New は設定を検証して Provider を生成します。ネットワークには接続しません。
func New(cfg Config, opts ...Option) (*Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()

	loc, err := time.LoadLocation(marketTimeZone)
	if err != nil {
		return nil, domain.NewConfigurationError(fmt.Sprintf("load time zone %s: %v", marketTimeZone, err))
	}

	p := &Provider{
		cfg:     cfg,
		baseURL: cfg.BaseURL(),
		client:  platformhttp.NewJSONClient(nil, userAgent),
		meter:   noopRecorder{},
		loc:     loc,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

func (p *Provider) Attribution() string { return attribution }

func (p *Provider) URL() string { return homepage }

// today は取引所タイムゾーンでの今日の日付です。
func (p *Provider) today() civil.Date {
	return civil.DateOf(p.now().In(p.loc))
}

// stockURL builds {base}/stock/{symbol}/{path}?{query}&token=...
func (p *Provider) stockURL(symbol entity.Symbol, path string, q url.Values) string {
	return p.endpoint("stock/"+url.PathEscape(string(symbol))+"/"+path, q)
}

func (p *Provider) endpoint(path string, q url.Values) string {
	if q == nil {
		q = url.Values{}
	}
	q.Set("token", p.cfg.Token)
	return p.baseURL + "/" + path + "?" + q.Encode()
}

// fetch はシンボル検証、取得、デコードをまとめて行います。
func fetch[T any](ctx context.Context, p *Provider, symbol entity.Symbol, path string, q url.Values) (T, error) {
	var out T
	if !symbol.IsValid() {
		return out, domain.NewBadSymbolError(string(symbol))
	}
	if err := p.client.GetJSON(ctx, p.stockURL(symbol, path, q), &out); err != nil {
		return out, err
	}
	return out, nil
}

type noopRecorder struct{}

func (noopRecorder) RecordAPIUse(context.Context, usage.APIName)          {}
func (noopRecorder) RecordAPIUsage(context.Context, usage.APIName, int64) {}

func currencyOr(code string) string {
	if code == "" {
		return defaultCurrency
	}
	return code
}
