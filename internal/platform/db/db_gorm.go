// Package db は利用量台帳用の PostgreSQL 接続を提供します。
package db

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"market_backend/internal/platform/usage/ledger"
)

const retryInterval = 3 * time.Second

// Config は DATABASE_DSN を使わない場合の個別接続設定です。
type Config struct {
	User     string
	Password string
	Name     string
	Host     string
	Port     string
	SSLMode  string
}

// Opener は DSN から gorm.DB を開く関数です。テストで差し替えます。
type Opener func(dsn string) (*gorm.DB, error)

// LoadConfigFromEnv は DB_* 環境変数から接続設定を読み込みます。
func LoadConfigFromEnv() Config {
	return Config{
		User:     os.Getenv("DB_USER"),
		Password: os.Getenv("DB_PASSWORD"),
		Name:     os.Getenv("DB_NAME"),
		Host:     os.Getenv("DB_HOST"),
		Port:     os.Getenv("DB_PORT"),
		SSLMode:  os.Getenv("DB_SSLMODE"),
	}
}

// BuildDSN は PostgreSQL のキーワード形式 DSN を組み立てます。
// Port と SSLMode は未設定ならそれぞれ 5432 と disable を使います。
func BuildDSN(cfg Config) string {
	port := cfg.Port
	if port == "" {
		port = "5432"
	}
	sslmode := cfg.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	parts := []string{
		"host=" + cfg.Host,
		"port=" + port,
		"user=" + cfg.User,
		"password=" + cfg.Password,
		"dbname=" + cfg.Name,
		"sslmode=" + sslmode,
		"TimeZone=UTC",
	}
	return strings.Join(parts, " ")
}

// PostgresOpener は gorm の postgres ドライバで接続を開きます。
func PostgresOpener(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}

// ConnectWithRetry は timeout に達するまで retryInterval 間隔で接続を試みます。
func ConnectWithRetry(dsn string, timeout time.Duration, open Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := open(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().Add(retryInterval).After(deadline) {
			return nil, fmt.Errorf("DB connect failed after %s: %w", timeout, err)
		}
		slog.Warn("DB connect failed, retrying", "error", err)
		time.Sleep(retryInterval)
	}
}

// ValidateDSN は接続前に DSN の書式を検証します。
func ValidateDSN(dsn string) error {
	if _, err := pgx.ParseConfig(dsn); err != nil {
		return fmt.Errorf("invalid database DSN: %w", err)
	}
	return nil
}

// OpenDB は dsn (空なら DB_* 環境変数) で PostgreSQL に接続し、
// RUN_MIGRATIONS=true の場合は利用量台帳のテーブルを作成します。
func OpenDB(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		dsn = BuildDSN(LoadConfigFromEnv())
	}
	if err := ValidateDSN(dsn); err != nil {
		return nil, err
	}
	db, err := ConnectWithRetry(dsn, 60*time.Second, PostgresOpener)
	if err != nil {
		return nil, err
	}
	if os.Getenv("RUN_MIGRATIONS") == "true" {
		if err := ledger.Migrate(db); err != nil {
			return nil, fmt.Errorf("failed to migrate: %w", err)
		}
	}
	return db, nil
}
