// Package twelvedata はTwelve Data株式市場APIを使って価格系の能力を提供します。
package twelvedata

import (
	"net/url"
	"os"
	"strings"

	"market_backend/internal/feature/marketdata/domain"
)

// DefaultBaseURL は Twelve Data API の既定の接続先です。
const DefaultBaseURL = "https://api.twelvedata.com"

const (
	EnvKeyAPIKey  = "TWELVE_DATA_API_KEY"
	EnvKeyBaseURL = "TWELVE_DATA_BASE_URL"
)

// Config はTwelve Data APIクライアントの設定を保持します。
type Config struct {
	APIKey  string // 認証用APIキー
	BaseURL string // APIのベースURL（空なら DefaultBaseURL）
}

// LoadConfig は環境変数からTwelve Dataの設定を読み込みます。
func LoadConfig() Config {
	return Config{
		APIKey:  strings.TrimSpace(os.Getenv(EnvKeyAPIKey)),
		BaseURL: strings.TrimSpace(os.Getenv(EnvKeyBaseURL)),
	}
}

// Enabled reports whether an API key is configured at all.
func (c Config) Enabled() bool { return c.APIKey != "" }

// Validate は設定値を検証し、不正な場合は ConfigurationError を返します。
func (c Config) Validate() error {
	if c.APIKey == "" {
		return domain.NewConfigurationError(EnvKeyAPIKey + " is required")
	}
	base := c.baseURL()
	u, err := url.Parse(base)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return domain.NewConfigurationError(EnvKeyBaseURL + " must be an http(s) URL, got " + base)
	}
	return nil
}

func (c Config) baseURL() string {
	if c.BaseURL == "" {
		return DefaultBaseURL
	}
	return strings.TrimRight(c.BaseURL, "/")
}
