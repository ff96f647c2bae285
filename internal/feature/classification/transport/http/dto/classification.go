// Package dto defines data transfer objects for the classification HTTP API.
package dto

// ClassificationItem は分類コード 1 件のレスポンスDTOです。
type ClassificationItem struct {
	Code        string `json:"code"`
	Parent      string `json:"parent,omitempty"`
	Description string `json:"description"`
}

// ClassificationResponse は分類コード参照のレスポンスDTOです。
type ClassificationResponse struct {
	Scheme    string               `json:"scheme"`
	Acronym   string               `json:"acronym"`
	Item      ClassificationItem   `json:"item"`
	Ancestors []ClassificationItem `json:"ancestors"` // 親から根の順
}

// ChildrenResponse は直下の子コード一覧のレスポンスDTOです。
type ChildrenResponse struct {
	Scheme   string               `json:"scheme"`
	Code     string               `json:"code"`
	Children []ClassificationItem `json:"children"`
}
