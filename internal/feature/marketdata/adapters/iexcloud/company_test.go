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

func TestProvider_Profile(t *testing.T) {
	t.Parallel()

	p, meter := newTestProvider(t, map[string]string{"/stable/stock/AAPL/company": `{
		"symbol": "AAPL", "companyName": "Apple Inc", "exchange": "NASDAQ",
		"industry": "Electronic Computers", "website": "https://www.apple.com",
		"description": "Designs phones.", "CEO": "Timothy Cook", "securityName": "Apple Inc",
		"issueType": "cs", "sector": "Manufacturing", "primarySicCode": 3571, "employees": 161000,
		"tags": ["Electronic Technology"], "address": "One Apple Park Way", "state": "CA",
		"city": "Cupertino", "zip": "95014", "country": "US", "phone": "14089961010"
	}`})

	c, err := p.Profile(context.Background(), "AAPL")
	require.NoError(t, err)
	assert.Equal(t, "Apple Inc", c.Name)
	assert.Equal(t, "Timothy Cook", c.CEO)
	require.NotNil(t, c.SICCode)
	assert.Equal(t, uint16(3571), *c.SICCode)
	require.NotNil(t, c.Employees)
	assert.Equal(t, int64(161000), *c.Employees)
	assert.Equal(t, []string{"Electronic Technology"}, c.Tags)
	assert.Equal(t, int64(1), meter.Count(usage.Company))
}

func TestProvider_Profile_SICOutOfRange(t *testing.T) {
	t.Parallel()

	p, _ := newTestProvider(t, map[string]string{"/stable/stock/AAPL/company": `{"primarySicCode": 70000}`})

	_, err := p.Profile(context.Background(), "AAPL")
	assert.ErrorIs(t, err, domain.ErrBadResponse)
}

func TestProvider_Profile_NullSIC(t *testing.T) {
	t.Parallel()

	p, _ := newTestProvider(t, map[string]string{"/stable/stock/AAPL/company": `{"companyName": "Apple Inc", "primarySicCode": null, "tags": null}`})

	c, err := p.Profile(context.Background(), "AAPL")
	require.NoError(t, err)
	assert.Nil(t, c.SICCode)
	assert.NotNil(t, c.Tags)
}

// TestProvider_Filings は様式と開始日がURLに反映されることを検証します。
func TestProvider_Filings(t *testing.T) {
	t.Parallel()

	var gotPath, gotFrom string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotFrom = r.URL.Query().Get("from")
		_, _ = w.Write([]byte(`[
			{"formType": "10-K", "filingDate": "2023-11-03", "periodEnd": "2023-09-30",
			 "accessionNumber": "0000320193-23-000106", "url": "https://sec.example/1"},
			{"formType": "10-K", "filingDate": "2022-10-28", "periodEnd": null,
			 "accessionNumber": "0000320193-22-000108", "url": "https://sec.example/2"}
		]`))
	}))
	t.Cleanup(server.Close)

	meter, err := usage.NewMeter(usage.DefaultCosts())
	require.NoError(t, err)
	p, err := New(Config{Token: testToken}, WithHTTPClient(server.Client()), WithBaseURL(server.URL+"/stable"), WithUsageRecorder(meter))
	require.NoError(t, err)

	from := civil.Date{Year: 2022, Month: 1, Day: 1}
	filings, err := p.Filings(context.Background(), "AAPL", entity.FilingFilter{From: &from, FormType: "10-K"})
	require.NoError(t, err)

	assert.Equal(t, "/stable/time-series/reported_financials/AAPL/10-K", gotPath)
	assert.Equal(t, "2022-01-01", gotFrom)
	require.Len(t, filings, 2)
	assert.Equal(t, civil.Date{Year: 2023, Month: 11, Day: 3}, filings[0].FiledDate)
	require.NotNil(t, filings[0].PeriodEnd)
	assert.Equal(t, civil.Date{Year: 2023, Month: 9, Day: 30}, *filings[0].PeriodEnd)
	assert.Nil(t, filings[1].PeriodEnd)
	assert.Equal(t, int64(2), meter.Count(usage.Filings))
}
