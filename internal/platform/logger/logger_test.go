package logger

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseLevel はログレベル名の変換を検証します。
func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

// TestNewHandler_JSON は JSON 形式の出力とレベルによる抑制を検証します。
func TestNewHandler_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := slog.New(NewHandler(&buf, Config{Level: "warn", Format: "json"}))

	l.Info("dropped")
	l.Warn("unknown api name", "api", "foo")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "WARN", rec["level"])
	assert.Equal(t, "unknown api name", rec["msg"])
	assert.Equal(t, "foo", rec["api"])
}

// TestNewHandler_Text はテキスト形式が選択されることを検証します。
func TestNewHandler_Text(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := slog.New(NewHandler(&buf, Config{Format: "TEXT"}))
	l.Info("hello", "k", "v")

	assert.Contains(t, buf.String(), "msg=hello")
	assert.Contains(t, buf.String(), "k=v")
}

// TestInit_File はファイル出力が有効な場合にログがファイルへ書かれることを検証します。
func TestInit_File(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	path := filepath.Join(t.TempDir(), "market.log")
	l, closer := Init(Config{Level: "info", Format: "json", File: path})
	l.Info("written to file")
	require.NoError(t, closer.Close())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "written to file")
	assert.Same(t, l, slog.Default())
}
