// Package handler はclassificationフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"market_backend/internal/feature/classification/schemes"
	"market_backend/internal/feature/classification/transport/http/dto"
)

// Catalog は分類表の選択インターフェースです。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type Catalog interface {
	Scheme(name string) (schemes.Scheme, error)
}

// ClassificationHandler は業種分類コードのHTTPリクエストを処理します。
type ClassificationHandler struct {
	catalog Catalog
}

// NewClassificationHandler は新しい ClassificationHandler を作成します。
func NewClassificationHandler(catalog Catalog) *ClassificationHandler {
	return &ClassificationHandler{catalog: catalog}
}

// Get は分類コードの説明と祖先を返します。
//
// エンドポイント例:
// GET /classifications/sic/3571
func (h *ClassificationHandler) Get(c *gin.Context) {
	name := strings.ToLower(c.Param("scheme"))
	s, err := h.catalog.Scheme(name)
	if err != nil {
		writeError(c, err)
		return
	}

	code := c.Param("code")
	entry, ok, err := s.Describe(code)
	if err != nil {
		writeError(c, err)
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "classification code not found"})
		return
	}
	ancestors, _, err := s.Ancestors(code)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ClassificationResponse{
		Scheme:    name,
		Acronym:   s.Metadata().Acronym,
		Item:      toItem(entry),
		Ancestors: toItems(ancestors),
	})
}

// Children は分類コード直下の子コードを表の順序で返します。
//
// エンドポイント例:
// GET /classifications/naics/5415/children
func (h *ClassificationHandler) Children(c *gin.Context) {
	name := strings.ToLower(c.Param("scheme"))
	s, err := h.catalog.Scheme(name)
	if err != nil {
		writeError(c, err)
		return
	}

	code := c.Param("code")
	children, ok, err := s.Children(code)
	if err != nil {
		writeError(c, err)
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "classification code not found"})
		return
	}

	c.JSON(http.StatusOK, dto.ChildrenResponse{
		Scheme:   name,
		Code:     code,
		Children: toItems(children),
	})
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, schemes.ErrUnknownScheme):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, schemes.ErrInvalidCode):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func toItem(e schemes.Entry) dto.ClassificationItem {
	return dto.ClassificationItem{Code: e.Code, Parent: e.Parent, Description: e.Description}
}

func toItems(entries []schemes.Entry) []dto.ClassificationItem {
	out := make([]dto.ClassificationItem, 0, len(entries))
	for _, e := range entries {
		out = append(out, toItem(e))
	}
	return out
}
