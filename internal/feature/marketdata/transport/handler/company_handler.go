package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"market_backend/internal/feature/marketdata/domain/entity"
)

// News は銘柄のニュースを返します。
// since を指定するとその日以降のニュースを、指定しなければ最新 last 件を返します。
//
// エンドポイント例:
// GET /news/AAPL?last=5
// GET /news/AAPL?since=2024-03-01
func (h *MarketDataHandler) News(c *gin.Context) {
	sym := symbolParam(c)
	since, err := dateQuery(c, "since")
	if err != nil {
		writeError(c, err)
		return
	}

	var items []entity.NewsItem
	if since != nil {
		items, err = h.uc.NewsSince(c.Request.Context(), sym, *since)
	} else {
		var last int
		if last, err = intQuery(c, "last"); err == nil {
			items, err = h.uc.LatestNews(c.Request.Context(), sym, last)
		}
	}
	if err != nil {
		writeError(c, err)
		return
	}
	if items == nil {
		items = []entity.NewsItem{}
	}
	c.JSON(http.StatusOK, items)
}

// Profile は企業プロフィールを返します。
//
// エンドポイント例:
// GET /companies/AAPL
func (h *MarketDataHandler) Profile(c *gin.Context) {
	p, err := h.uc.Profile(c.Request.Context(), symbolParam(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// Filings は開示書類の一覧を返します。
//
// エンドポイント例:
// GET /companies/AAPL/filings?form=10-K&from=2023-01-01
func (h *MarketDataHandler) Filings(c *gin.Context) {
	from, err := dateQuery(c, "from")
	if err != nil {
		writeError(c, err)
		return
	}
	filter := entity.FilingFilter{From: from, FormType: c.Query("form")}

	filings, err := h.uc.Filings(c.Request.Context(), symbolParam(c), filter)
	if err != nil {
		writeError(c, err)
		return
	}
	if filings == nil {
		filings = []entity.Filing{}
	}
	c.JSON(http.StatusOK, filings)
}

// IncomeStatements は損益計算書を新しい順に返します。
//
// エンドポイント例:
// GET /companies/AAPL/income?last=4&period=annual
func (h *MarketDataHandler) IncomeStatements(c *gin.Context) {
	last, period, err := statementQuery(c)
	if err != nil {
		writeError(c, err)
		return
	}
	out, err := h.uc.IncomeStatements(c.Request.Context(), symbolParam(c), last, period)
	if err != nil {
		writeError(c, err)
		return
	}
	if out == nil {
		out = []entity.IncomeStatement{}
	}
	c.JSON(http.StatusOK, out)
}

// BalanceSheets は貸借対照表を新しい順に返します。
func (h *MarketDataHandler) BalanceSheets(c *gin.Context) {
	last, period, err := statementQuery(c)
	if err != nil {
		writeError(c, err)
		return
	}
	out, err := h.uc.BalanceSheets(c.Request.Context(), symbolParam(c), last, period)
	if err != nil {
		writeError(c, err)
		return
	}
	if out == nil {
		out = []entity.BalanceSheet{}
	}
	c.JSON(http.StatusOK, out)
}

// Statistics は主要指標を基準日付きで返します。
func (h *MarketDataHandler) Statistics(c *gin.Context) {
	snap, err := h.uc.Statistics(c.Request.Context(), symbolParam(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

func statementQuery(c *gin.Context) (int, entity.Period, error) {
	last, err := intQuery(c, "last")
	if err != nil {
		return 0, 0, err
	}
	period, err := periodQuery(c)
	if err != nil {
		return 0, 0, err
	}
	return last, period, nil
}
