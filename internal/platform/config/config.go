// Package config はサーバー設定を環境変数と任意の設定ファイルから読み込みます。
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// 環境変数名
const (
	EnvKeyServerPort  = "SERVER_PORT"
	EnvKeyLogLevel    = "LOG_LEVEL"
	EnvKeyLogFormat   = "LOG_FORMAT"
	EnvKeyLogFile     = "LOG_FILE"
	EnvKeyDatabaseDSN = "DATABASE_DSN"
	EnvKeyRedisAddr   = "REDIS_ADDR"
	EnvKeyJWTSecret   = "JWT_SECRET"
	EnvKeyHTTPTimeout = "HTTP_TIMEOUT"
)

// Config はサーバープロセスの設定です。
// プロバイダの認証情報は各プロバイダの LoadConfig が読み込みます。
type Config struct {
	ServerPort  int
	LogLevel    string
	LogFormat   string
	LogFile     string
	DatabaseDSN string // 空なら利用量台帳を使わない
	RedisAddr   string // 空なら Redis 集計を使わない
	JWTSecret   string
	HTTPTimeout time.Duration
}

// Addr は gin の Run に渡す待ち受けアドレスを返します。
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.ServerPort)
}

// Validate は設定値の範囲を検証します。
func (c Config) Validate() error {
	if c.ServerPort <= 0 || c.ServerPort > 65535 {
		return fmt.Errorf("%s out of range: %d", EnvKeyServerPort, c.ServerPort)
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("%s must be positive: %s", EnvKeyHTTPTimeout, c.HTTPTimeout)
	}
	switch c.LogFormat {
	case "json", "text":
	default:
		return fmt.Errorf("%s must be json or text: %q", EnvKeyLogFormat, c.LogFormat)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(EnvKeyServerPort, 8080)
	v.SetDefault(EnvKeyLogLevel, "info")
	v.SetDefault(EnvKeyLogFormat, "json")
	v.SetDefault(EnvKeyLogFile, "")
	v.SetDefault(EnvKeyDatabaseDSN, "")
	v.SetDefault(EnvKeyRedisAddr, "")
	v.SetDefault(EnvKeyJWTSecret, "")
	v.SetDefault(EnvKeyHTTPTimeout, 10*time.Second)
}

// Load は設定を読み込みます。環境変数が設定ファイルより優先されます。
// path が空の場合はカレントディレクトリの config.yaml を探し、無ければ環境変数と既定値だけを使います。
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := Config{
		ServerPort:  v.GetInt(EnvKeyServerPort),
		LogLevel:    strings.ToLower(v.GetString(EnvKeyLogLevel)),
		LogFormat:   strings.ToLower(v.GetString(EnvKeyLogFormat)),
		LogFile:     v.GetString(EnvKeyLogFile),
		DatabaseDSN: v.GetString(EnvKeyDatabaseDSN),
		RedisAddr:   v.GetString(EnvKeyRedisAddr),
		JWTSecret:   v.GetString(EnvKeyJWTSecret),
		HTTPTimeout: v.GetDuration(EnvKeyHTTPTimeout),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}
