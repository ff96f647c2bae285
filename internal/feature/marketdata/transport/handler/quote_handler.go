package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"market_backend/internal/feature/marketdata/domain/entity"
	"market_backend/internal/feature/marketdata/transport/http/dto"
)

// Quote は銘柄の最新クォートを返します。
//
// エンドポイント例:
// GET /quotes/AAPL
func (h *MarketDataHandler) Quote(c *gin.Context) {
	q, err := h.uc.Quote(c.Request.Context(), symbolParam(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, q)
}

// LatestPrice は銘柄の最新価格のみを返します。
//
// エンドポイント例:
// GET /quotes/AAPL/price
func (h *MarketDataHandler) LatestPrice(c *gin.Context) {
	sym := symbolParam(c)
	price, err := h.uc.LatestPrice(c.Request.Context(), sym)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.PriceResponse{Symbol: sym.String(), Price: price})
}

// DelayedQuote は遅延クォートを基準日付きで返します。
func (h *MarketDataHandler) DelayedQuote(c *gin.Context) {
	snap, err := h.uc.DelayedQuote(c.Request.Context(), symbolParam(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// IntradayQuotes は当日の分足を古い順に返します。
func (h *MarketDataHandler) IntradayQuotes(c *gin.Context) {
	bars, err := h.uc.IntradayQuotes(c.Request.Context(), symbolParam(c))
	if err != nil {
		writeError(c, err)
		return
	}
	if bars == nil {
		bars = []entity.IntradayQuote{}
	}
	c.JSON(http.StatusOK, bars)
}

// Peers は同業他社の銘柄コードを返します。
//
// エンドポイント例:
// GET /peers/AAPL
func (h *MarketDataHandler) Peers(c *gin.Context) {
	sym := symbolParam(c)
	peers, err := h.uc.Peers(c.Request.Context(), sym)
	if err != nil {
		writeError(c, err)
		return
	}
	if peers == nil {
		peers = []entity.Symbol{}
	}
	c.JSON(http.StatusOK, dto.PeersResponse{Symbol: sym.String(), Peers: peers})
}
