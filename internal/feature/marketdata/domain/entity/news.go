package entity

import "time"

const (
	// MinNewsItems is the smallest accepted "latest N" news request.
	MinNewsItems = 1
	// MaxNewsItems is the largest accepted "latest N" news request.
	MaxNewsItems = 50
)

// NewsItem is one news article related to a symbol.
type NewsItem struct {
	Time       time.Time `json:"time"`
	Headline   string    `json:"headline"`
	Source     string    `json:"source"`
	URL        string    `json:"url"`
	Summary    string    `json:"summary"`
	Related    []Symbol  `json:"related"`
	Image      string    `json:"image,omitempty"`
	Language   string    `json:"language"`
	HasPaywall bool      `json:"has_paywall"`
}
