// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
)

// CheckFunc は依存先 1 つの疎通確認です。nil を返せば正常です。
type CheckFunc func(ctx context.Context) error

// HealthHandler はサービスヘルスチェック用の /healthz エンドポイントを処理します。
type HealthHandler struct {
	names  []string
	checks map[string]CheckFunc
}

// NewHealthHandler は名前付きの疎通確認を持つ HealthHandler を作成します。
// checks が空なら常に ok を返します。
func NewHealthHandler(checks map[string]CheckFunc) *HealthHandler {
	names := make([]string, 0, len(checks))
	for n := range checks {
		names = append(names, n)
	}
	sort.Strings(names)
	return &HealthHandler{names: names, checks: checks}
}

// Health はHTTPメソッドに応じて適切にレスポンスし、キャッシュを防止します。
// GET 等では各依存先を確認し、1 つでも失敗すれば 503 と degraded を返します。
func (h *HealthHandler) Health(c *gin.Context) {
	// 明示的にキャッシュを防止
	c.Header("Cache-Control", "no-store")

	switch c.Request.Method {
	case http.MethodHead:
		c.Status(http.StatusOK)
		return
	case http.MethodOptions:
		c.Status(http.StatusNoContent)
		return
	}

	if len(h.names) == 0 {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
		return
	}

	status, code := "ok", http.StatusOK
	results := make(map[string]string, len(h.names))
	for _, n := range h.names {
		if err := h.checks[n](c.Request.Context()); err != nil {
			results[n] = err.Error()
			status, code = "degraded", http.StatusServiceUnavailable
			continue
		}
		results[n] = "ok"
	}
	c.JSON(code, gin.H{"status": status, "checks": results})
}
