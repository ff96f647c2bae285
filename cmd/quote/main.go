// Command quote は設定済みプロバイダから最新価格を取得して表示します。
//
// 使い方:
//
//	quote AAPL [MSFT ...]
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"market_backend/internal/app/di"
	"market_backend/internal/feature/marketdata/domain"
	"market_backend/internal/feature/marketdata/domain/entity"
	"market_backend/internal/platform/usage"
)

// PriceSource は最新価格の取得元です。
type PriceSource interface {
	LatestPrice(ctx context.Context, symbol entity.Symbol) (entity.Money, error)
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: quote <symbol> [symbol ...]")
		os.Exit(2)
	}

	meter, err := usage.NewMeter(usage.DefaultCosts())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	uc, err := di.NewMarketDataUsecase(10*time.Second, meter)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	code := run(context.Background(), uc, os.Args[1:], os.Stdout, os.Stderr)
	fmt.Fprintf(os.Stderr, "api cost: %d\n", meter.Total())
	os.Exit(code)
}

// run は各銘柄の価格を 1 行ずつ出力します。1 件でも失敗すれば 1 を返します。
func run(ctx context.Context, src PriceSource, symbols []string, stdout, stderr io.Writer) int {
	code := 0
	for _, s := range symbols {
		sym := entity.Symbol(strings.ToUpper(s))
		price, err := src.LatestPrice(ctx, sym)
		if err != nil {
			code = 1
			fmt.Fprintf(stderr, "%s: %v\n", sym, err)
			if errors.Is(err, domain.ErrAuthentication) || errors.Is(err, domain.ErrConfiguration) {
				return code
			}
			continue
		}
		fmt.Fprintf(stdout, "%s\t%s\n", sym, price)
	}
	return code
}
