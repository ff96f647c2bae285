package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	classificationhandler "market_backend/internal/feature/classification/transport/handler"
	marketdatahandler "market_backend/internal/feature/marketdata/transport/handler"
	platformhandler "market_backend/internal/platform/http/handler"
	jwtmw "market_backend/internal/platform/jwt"
)

// Deps はルータが公開するハンドラ群です。
type Deps struct {
	JWTSecret      string
	Health         *platformhandler.HealthHandler
	MarketData     *marketdatahandler.MarketDataHandler
	Classification *classificationhandler.ClassificationHandler
	Metrics        prometheus.Gatherer
}

func NewRouter(d Deps) *gin.Engine {
	r := gin.Default()

	// 認証不要
	// 導通確認用
	r.GET("/healthz", d.Health.Health)
	r.HEAD("/healthz", d.Health.Health)
	// Prometheus のスクレイプ用
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.Metrics, promhttp.HandlerOpts{})))

	// 認証必須のルート
	auth := r.Group("/")
	// → リクエストヘッダーに JWT が必要になる
	auth.Use(jwtmw.AuthRequired(d.JWTSecret))
	{
		md := d.MarketData
		auth.GET("/quotes/:symbol", md.Quote)
		auth.GET("/quotes/:symbol/price", md.LatestPrice)
		auth.GET("/quotes/:symbol/delayed", md.DelayedQuote)
		auth.GET("/quotes/:symbol/intraday", md.IntradayQuotes)
		auth.GET("/peers/:symbol", md.Peers)

		auth.GET("/analysts/:symbol/price-target", md.PriceTarget)
		auth.GET("/analysts/:symbol/recommendations", md.RecommendationTrends)
		auth.GET("/analysts/:symbol/estimates", md.EpsEstimates)

		auth.GET("/news/:symbol", md.News)

		auth.GET("/companies/:symbol", md.Profile)
		auth.GET("/companies/:symbol/filings", md.Filings)
		auth.GET("/companies/:symbol/income", md.IncomeStatements)
		auth.GET("/companies/:symbol/balance-sheet", md.BalanceSheets)
		auth.GET("/companies/:symbol/stats", md.Statistics)

		auth.GET("/classifications/:scheme/:code", d.Classification.Get)
		auth.GET("/classifications/:scheme/:code/children", d.Classification.Children)

		auth.GET("/usage", md.Usage)
	}

	return r
}
