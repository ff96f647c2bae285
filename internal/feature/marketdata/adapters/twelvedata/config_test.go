package twelvedata

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"market_backend/internal/feature/marketdata/domain"
)

// TestLoadConfig は環境変数から設定が読み込まれることを検証します。
func TestLoadConfig(t *testing.T) {
	t.Setenv(EnvKeyAPIKey, "test-key")
	t.Setenv(EnvKeyBaseURL, "https://api.test.com/")

	cfg := LoadConfig()
	assert.Equal(t, "test-key", cfg.APIKey)
	assert.True(t, cfg.Enabled())
	assert.Equal(t, "https://api.test.com", cfg.baseURL())
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"default base url", Config{APIKey: "k"}, false},
		{"custom base url", Config{APIKey: "k", BaseURL: "http://localhost:8080"}, false},
		{"missing key", Config{BaseURL: DefaultBaseURL}, true},
		{"not a url", Config{APIKey: "k", BaseURL: "api.twelvedata.com"}, true},
		{"wrong scheme", Config{APIKey: "k", BaseURL: "ftp://api.twelvedata.com"}, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrConfiguration)
				return
			}
			assert.NoError(t, err)
		})
	}
}
