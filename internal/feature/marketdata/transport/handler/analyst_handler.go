package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"market_backend/internal/feature/marketdata/domain/entity"
)

// PriceTarget はアナリスト目標株価を返します。
//
// エンドポイント例:
// GET /analysts/AAPL/price-target
func (h *MarketDataHandler) PriceTarget(c *gin.Context) {
	snap, err := h.uc.PriceTarget(c.Request.Context(), symbolParam(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// RecommendationTrends は期間ごとのレーティング分布を返します。
func (h *MarketDataHandler) RecommendationTrends(c *gin.Context) {
	trends, err := h.uc.RecommendationTrends(c.Request.Context(), symbolParam(c))
	if err != nil {
		writeError(c, err)
		return
	}
	if trends == nil {
		trends = []entity.Bounded[entity.RatingDistribution]{}
	}
	c.JSON(http.StatusOK, trends)
}

// EpsEstimates は EPS 予想を返します。
func (h *MarketDataHandler) EpsEstimates(c *gin.Context) {
	est, err := h.uc.EpsEstimates(c.Request.Context(), symbolParam(c))
	if err != nil {
		writeError(c, err)
		return
	}
	if est == nil {
		est = []entity.EpsEstimate{}
	}
	c.JSON(http.StatusOK, est)
}
