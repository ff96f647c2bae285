// Package dto defines data transfer objects for the marketdata HTTP API.
package dto

import (
	"market_backend/internal/feature/marketdata/domain/entity"
	"market_backend/internal/feature/marketdata/usecase"
	"market_backend/internal/platform/usage"
)

// ErrorResponse はエラー時のレスポンスDTOです。
// Kind は RequestError の種別名で、種別を持たないエラーでは省略されます。
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

// PriceResponse は最新価格のレスポンスDTOです。
type PriceResponse struct {
	Symbol string       `json:"symbol"`
	Price  entity.Money `json:"price"`
}

// PeersResponse は同業他社一覧のレスポンスDTOです。
type PeersResponse struct {
	Symbol string          `json:"symbol"`
	Peers  []entity.Symbol `json:"peers"`
}

// UsageResponse は API 利用量と帰属表示のレスポンスDTOです。
type UsageResponse struct {
	Total   int64            `json:"total"`
	Entries []usage.Entry    `json:"entries"`
	Sources []usecase.Source `json:"sources"`
}
