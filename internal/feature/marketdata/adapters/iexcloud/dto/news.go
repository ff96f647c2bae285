package dto

// NewsItem は /stock/{symbol}/news/last/{n} の1要素です。
// related はカンマ区切りのシンボル列です。
type NewsItem struct {
	Datetime   float64 `json:"datetime"`
	Headline   string  `json:"headline"`
	Source     string  `json:"source"`
	URL        string  `json:"url"`
	Summary    string  `json:"summary"`
	Related    string  `json:"related"`
	Image      string  `json:"image"`
	Lang       string  `json:"lang"`
	HasPaywall bool    `json:"hasPaywall"`
}
