package iexcloud

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"market_backend/internal/feature/marketdata/domain"
	"market_backend/internal/feature/marketdata/domain/entity"
	"market_backend/internal/platform/usage"
)

// TestProvider_Statements_RangeCheck は期数と期間が通信前に検証されることを検証します。
func TestProvider_Statements_RangeCheck(t *testing.T) {
	t.Parallel()

	getter := &mockGetter{}
	p, err := New(Config{Token: testToken}, WithJSONGetter(getter))
	require.NoError(t, err)
	ctx := context.Background()

	tests := []struct {
		name   string
		last   int
		period entity.Period
	}{
		{"zero periods", 0, entity.Annual},
		{"too many periods", 13, entity.Quarterly},
		{"unknown period", 4, entity.Period(9)},
	}
	for _, tt := range tests {
		tt := tt
		_, err := p.IncomeStatements(ctx, "AAPL", tt.last, tt.period)
		assert.ErrorIs(t, err, domain.ErrBadRequest, tt.name)
		_, err = p.BalanceSheets(ctx, "AAPL", tt.last, tt.period)
		assert.ErrorIs(t, err, domain.ErrBadRequest, tt.name)
	}
	assert.Zero(t, getter.calls)
}

func TestProvider_IncomeStatements(t *testing.T) {
	t.Parallel()

	var gotLast, gotPeriod string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/stable/stock/AAPL/income", r.URL.Path)
		gotLast, gotPeriod = r.URL.Query().Get("last"), r.URL.Query().Get("period")
		_, _ = w.Write([]byte(`{"symbol": "AAPL", "income": [
			{"reportDate": "2023-11-03", "fiscalDate": "2023-09-30", "fiscalQuarter": 4, "fiscalYear": 2023,
			 "currency": "USD", "totalRevenue": 383285000000, "costOfRevenue": 214137000000,
			 "grossProfit": 169148000000, "netIncome": 96995000000, "researchAndDevelopment": null},
			{"reportDate": "2022-10-28", "fiscalDate": "2022-09-24", "fiscalQuarter": 4, "fiscalYear": 2022,
			 "totalRevenue": 394328000000}
		]}`))
	}))
	t.Cleanup(server.Close)

	meter, err := usage.NewMeter(usage.DefaultCosts())
	require.NoError(t, err)
	p, err := New(Config{Token: testToken}, WithHTTPClient(server.Client()), WithBaseURL(server.URL+"/stable"), WithUsageRecorder(meter))
	require.NoError(t, err)

	got, err := p.IncomeStatements(context.Background(), "AAPL", 2, entity.Annual)
	require.NoError(t, err)
	assert.Equal(t, "2", gotLast)
	assert.Equal(t, "annual", gotPeriod)

	require.Len(t, got, 2)
	assert.Equal(t, civil.Date{Year: 2023, Month: 9, Day: 30}, got[0].FiscalDate)
	assert.Equal(t, 2023, got[0].FiscalYear)
	assert.Equal(t, entity.Annual, got[0].Period)
	assert.Equal(t, "383285000000 USD", got[0].TotalRevenue.String())
	assert.Nil(t, got[0].ResearchAndDevelopment)
	assert.Equal(t, "394328000000 USD", got[1].TotalRevenue.String())

	assert.Equal(t, int64(2), meter.Count(usage.IncomeStatement))
	assert.Equal(t, int64(2000), meter.Total())
}

func TestProvider_BalanceSheets(t *testing.T) {
	t.Parallel()

	p, meter := newTestProvider(t, map[string]string{"/stable/stock/AAPL/balance-sheet": `{"symbol": "AAPL", "balancesheet": [
		{"reportDate": "2024-02-02", "fiscalDate": "2023-12-30", "fiscalQuarter": 1, "fiscalYear": 2024,
		 "currency": "USD", "currentCash": 40760000000, "totalAssets": 353514000000,
		 "totalLiabilities": 279414000000, "shareholderEquity": 74100000000}
	]}`})

	got, err := p.BalanceSheets(context.Background(), "AAPL", 1, entity.Quarterly)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "353514000000 USD", got[0].TotalAssets.String())
	assert.Equal(t, "74100000000", got[0].ShareholderEquity.Amount().String())
	assert.Nil(t, got[0].Goodwill)
	assert.Equal(t, entity.Quarterly, got[0].Period)
	assert.Equal(t, int64(3000), meter.Total())
}

func TestProvider_BalanceSheets_BadFiscalDate(t *testing.T) {
	t.Parallel()

	p, meter := newTestProvider(t, map[string]string{"/stable/stock/AAPL/balance-sheet": `{"balancesheet": [
		{"reportDate": "2024-02-02", "fiscalDate": "", "fiscalQuarter": 1, "fiscalYear": 2024}
	]}`})

	_, err := p.BalanceSheets(context.Background(), "AAPL", 1, entity.Quarterly)
	assert.ErrorIs(t, err, domain.ErrBadResponse)
	assert.Zero(t, meter.Total())
}
