package iexcloud

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"market_backend/internal/feature/marketdata/domain"
	"market_backend/internal/feature/marketdata/domain/entity"
	"market_backend/internal/platform/usage"
)

const testToken = "pk_test"

// mockGetter は JSONGetter のモック実装です。
type mockGetter struct {
	getJSONFn func(ctx context.Context, rawURL string, out any) error
	calls     int
}

func (m *mockGetter) GetJSON(ctx context.Context, rawURL string, out any) error {
	m.calls++
	if m.getJSONFn != nil {
		return m.getJSONFn(ctx, rawURL, out)
	}
	return nil
}

// fixedNow は 2024-03-15 12:00 (America/New_York) です。
var fixedNow = time.Date(2024, 3, 15, 16, 0, 0, 0, time.UTC)

// newTestProvider はレスポンスを routes から返す httptest サーバーに接続した Provider を作ります。
func newTestProvider(t *testing.T, routes map[string]string) (*Provider, *usage.Meter) {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, testToken, r.URL.Query().Get("token"))
		body, ok := routes[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte("Unknown symbol"))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	meter, err := usage.NewMeter(usage.DefaultCosts())
	require.NoError(t, err)

	p, err := New(Config{Token: testToken},
		WithHTTPClient(server.Client()),
		WithBaseURL(server.URL+"/stable/"),
		WithUsageRecorder(meter),
		WithClock(func() time.Time { return fixedNow }),
	)
	require.NoError(t, err)
	return p, meter
}

// TestNew_ConfigurationError は不正な設定で通信前に ConfigurationError を返すことを検証します。
func TestNew_ConfigurationError(t *testing.T) {
	t.Parallel()

	getter := &mockGetter{}
	p, err := New(Config{Host: "prod", Token: testToken}, WithJSONGetter(getter))
	require.Error(t, err)
	assert.Nil(t, p)
	assert.ErrorIs(t, err, domain.ErrConfiguration)
	assert.Zero(t, getter.calls)
}

func TestProvider_Attribution(t *testing.T) {
	t.Parallel()

	p, err := New(Config{Token: testToken})
	require.NoError(t, err)
	assert.Equal(t, "Data provided by IEX Cloud", p.Attribution())
	assert.Equal(t, "https://iexcloud.io", p.URL())
	assert.Equal(t, "https://cloud.iexapis.com/stable", p.baseURL)
}

func TestProvider_URL(t *testing.T) {
	t.Parallel()

	p, err := New(Config{Host: HostSandbox, Version: VersionBeta, Token: "Tpk_abc"})
	require.NoError(t, err)
	assert.Equal(t, "https://sandbox.iexapis.com/beta/stock/BRK.B/quote?token=Tpk_abc", p.stockURL("BRK.B", "quote", nil))
}

// TestProvider_BadSymbol はすべての操作が不正シンボルを通信前に拒否することを検証します。
func TestProvider_BadSymbol(t *testing.T) {
	t.Parallel()

	getter := &mockGetter{}
	p, err := New(Config{Token: testToken}, WithJSONGetter(getter))
	require.NoError(t, err)

	ctx := context.Background()
	day := civil.Date{Year: 2024, Month: 1, Day: 1}

	for _, sym := range []entity.Symbol{"", "TOOLONGSY"} {
		sym := sym
		calls := map[string]func() error{
			"latest price": func() error { _, err := p.LatestPrice(ctx, sym); return err },
			"quote":        func() error { _, err := p.Quote(ctx, sym); return err },
			"delayed":      func() error { _, err := p.DelayedQuote(ctx, sym); return err },
			"intraday":     func() error { _, err := p.IntradayQuotes(ctx, sym); return err },
			"peers":        func() error { _, err := p.Peers(ctx, sym); return err },
			"price target": func() error { _, err := p.PriceTarget(ctx, sym); return err },
			"trends":       func() error { _, err := p.RecommendationTrends(ctx, sym); return err },
			"estimates":    func() error { _, err := p.EpsEstimates(ctx, sym); return err },
			"news":         func() error { _, err := p.LatestNews(ctx, sym, 5); return err },
			"news since":   func() error { _, err := p.NewsSince(ctx, sym, day); return err },
			"profile":      func() error { _, err := p.Profile(ctx, sym); return err },
			"filings":      func() error { _, err := p.Filings(ctx, sym, entity.FilingFilter{}); return err },
			"income":       func() error { _, err := p.IncomeStatements(ctx, sym, 1, entity.Annual); return err },
			"balance":      func() error { _, err := p.BalanceSheets(ctx, sym, 1, entity.Annual); return err },
			"stats":        func() error { _, err := p.Statistics(ctx, sym); return err },
		}
		for name, call := range calls {
			name := name
			call := call
			err := call()
			assert.ErrorIs(t, err, domain.ErrBadSymbol, "%s with %q", name, sym)
		}
	}
	assert.Zero(t, getter.calls)
}

// TestProvider_LatestNews_Range は件数の境界値を検証します。
func TestProvider_LatestNews_Range(t *testing.T) {
	t.Parallel()

	getter := &mockGetter{}
	p, err := New(Config{Token: testToken}, WithJSONGetter(getter))
	require.NoError(t, err)

	for _, n := range []int{0, -1, 51} {
		n := n
		_, err := p.LatestNews(context.Background(), "AAPL", n)
		assert.ErrorIs(t, err, domain.ErrBadRequest, "n=%d", n)
	}
	assert.Zero(t, getter.calls)

	for _, n := range []int{1, 50} {
		n := n
		_, err := p.LatestNews(context.Background(), "AAPL", n)
		assert.NoError(t, err, "n=%d", n)
	}
	assert.Equal(t, 2, getter.calls)
}

func TestProvider_NewsSince_Unsupported(t *testing.T) {
	t.Parallel()

	getter := &mockGetter{}
	p, err := New(Config{Token: testToken}, WithJSONGetter(getter))
	require.NoError(t, err)

	_, err = p.NewsSince(context.Background(), "AAPL", civil.Date{Year: 2024, Month: 1, Day: 1})
	assert.ErrorIs(t, err, domain.ErrBadRequest)
	assert.ErrorIs(t, err, domain.ErrUnsupported)
	assert.Zero(t, getter.calls)
}

// TestProvider_TransportErrorPropagates は転送層のエラーがそのまま返り、使用量が記録されないことを検証します。
func TestProvider_TransportErrorPropagates(t *testing.T) {
	t.Parallel()

	want := domain.NewThrottledError("HTTP 429")
	getter := &mockGetter{getJSONFn: func(ctx context.Context, rawURL string, out any) error { return want }}
	meter, err := usage.NewMeter(usage.DefaultCosts())
	require.NoError(t, err)
	p, err := New(Config{Token: testToken}, WithJSONGetter(getter), WithUsageRecorder(meter))
	require.NoError(t, err)

	_, err = p.Quote(context.Background(), "AAPL")
	assert.Same(t, want, err)
	assert.Zero(t, meter.Total())
}

func TestProvider_NotFoundIsBadRequest(t *testing.T) {
	t.Parallel()

	p, meter := newTestProvider(t, nil)

	_, err := p.LatestPrice(context.Background(), "ZZZZ")
	assert.ErrorIs(t, err, domain.ErrBadRequest)
	assert.Zero(t, meter.Total())
}
