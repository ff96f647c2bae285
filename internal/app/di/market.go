// Package di provides dependency injection factories for creating application components.
package di

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"market_backend/internal/feature/marketdata/adapters/iexcloud"
	"market_backend/internal/feature/marketdata/adapters/twelvedata"
	"market_backend/internal/feature/marketdata/domain"
	"market_backend/internal/feature/marketdata/usecase"
	platformhttp "market_backend/internal/platform/http"
	"market_backend/internal/platform/usage"
)

// EnvKeyQuotesProvider selects which provider answers quote requests when both are configured.
// Accepted values are "iexcloud" (default) and "twelvedata".
const EnvKeyQuotesProvider = "MARKET_QUOTES_PROVIDER"

// NewMarketDataUsecase creates the usecase from every provider whose credentials are present.
// At least one provider must be configured.
func NewMarketDataUsecase(timeout time.Duration, meter usage.Recorder) (*usecase.MarketDataUsecase, error) {
	httpClient := platformhttp.NewHTTPClient(timeout)

	var iex, td any
	if cfg := iexcloud.LoadConfig(); cfg.Token != "" {
		p, err := iexcloud.New(cfg, iexcloud.WithHTTPClient(httpClient), iexcloud.WithUsageRecorder(meter))
		if err != nil {
			return nil, err
		}
		iex = p
	} else {
		slog.Warn("IEX Cloud disabled", "reason", iexcloud.EnvKeyToken+" is not set")
	}

	if cfg := twelvedata.LoadConfig(); cfg.Enabled() {
		m, err := twelvedata.New(cfg, httpClient, meter)
		if err != nil {
			return nil, err
		}
		td = m
	}

	sources := orderSources(os.Getenv(EnvKeyQuotesProvider), iex, td)
	if len(sources) == 0 {
		return nil, domain.NewConfigurationError("no market data provider configured")
	}
	return usecase.NewMarketDataUsecase(usecase.ProvidersFrom(sources...)), nil
}

// orderSources は優先プロバイダを先頭に並べ、未設定 (nil) のものを除きます。
func orderSources(preferred string, iex, td any) []any {
	ordered := []any{iex, td}
	if strings.EqualFold(preferred, "twelvedata") {
		ordered = []any{td, iex}
	}
	out := make([]any, 0, len(ordered))
	for _, s := range ordered {
		if s != nil {
			out = append(out, s)
		}
	}
	return out
}
