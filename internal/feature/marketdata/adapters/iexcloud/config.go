// Package iexcloud implements the marketdata capabilities on top of the IEX Cloud REST API.
package iexcloud

import (
	"fmt"
	"os"
	"strings"

	"market_backend/internal/feature/marketdata/domain"
)

// Host selects the IEX Cloud environment.
type Host string

const (
	HostCloud   Host = "cloud"
	HostSandbox Host = "sandbox"
)

// Version selects the API version.
type Version string

const (
	VersionStable Version = "stable"
	VersionBeta   Version = "beta"
)

const (
	EnvKeyHost    = "IEX_HOST"
	EnvKeyVersion = "IEX_VERSION"
	EnvKeyToken   = "IEX_TOKEN"
)

// tokenPrefixes は受け付けるトークンの接頭辞です（公開鍵、秘密鍵、サンドボックス公開鍵）。
var tokenPrefixes = []string{"pk_", "sk_", "Tpk_"}

// Config holds the IEX Cloud connection settings.
type Config struct {
	Host    Host
	Version Version
	Token   string
}

// LoadConfig は環境変数から IEX Cloud の設定を読み込みます。
// 検証は New で行われます。
func LoadConfig() Config {
	return Config{
		Host:    Host(strings.TrimSpace(os.Getenv(EnvKeyHost))),
		Version: Version(strings.TrimSpace(os.Getenv(EnvKeyVersion))),
		Token:   strings.TrimSpace(os.Getenv(EnvKeyToken)),
	}
}

// withDefaults fills in the cloud host and stable version.
func (c Config) withDefaults() Config {
	if c.Host == "" {
		c.Host = HostCloud
	}
	if c.Version == "" {
		c.Version = VersionStable
	}
	return c
}

// Validate は設定値を検証し、不正な場合は ConfigurationError を返します。
func (c Config) Validate() error {
	c = c.withDefaults()
	switch c.Host {
	case HostCloud, HostSandbox:
	default:
		return domain.NewConfigurationError(fmt.Sprintf("%s must be %q or %q, got %q", EnvKeyHost, HostCloud, HostSandbox, c.Host))
	}
	switch c.Version {
	case VersionStable, VersionBeta:
	default:
		return domain.NewConfigurationError(fmt.Sprintf("%s must be %q or %q, got %q", EnvKeyVersion, VersionStable, VersionBeta, c.Version))
	}
	if c.Token == "" {
		return domain.NewConfigurationError(EnvKeyToken + " is required")
	}
	for _, p := range tokenPrefixes {
		if strings.HasPrefix(c.Token, p) && len(c.Token) > len(p) {
			return nil
		}
	}
	return domain.NewConfigurationError(fmt.Sprintf("%s must start with one of %s", EnvKeyToken, strings.Join(tokenPrefixes, ", ")))
}

// BaseURL returns e.g. https://cloud.iexapis.com/stable.
func (c Config) BaseURL() string {
	c = c.withDefaults()
	return fmt.Sprintf("https://%s.iexapis.com/%s", c.Host, c.Version)
}
