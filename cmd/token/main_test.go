package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRun_IssuesVerifiableToken は発行したトークンが同じ鍵で検証できることを検証します。
func TestRun_IssuesVerifiableToken(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	code := run([]string{"-sub", "dashboard", "-ttl", "1h"}, "cli-secret", &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(strings.TrimSpace(stdout.String()), claims, func(*jwt.Token) (any, error) {
		return []byte("cli-secret"), nil
	})
	require.NoError(t, err)
	assert.Equal(t, "dashboard", claims.Subject)
}

// TestRun_Errors は引数や鍵の不足が使用法エラーになることを検証します。
func TestRun_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		args   []string
		secret string
		want   string
	}{
		{"missing secret", []string{"-sub", "x"}, "", "JWT_SECRET is not set"},
		{"missing subject", nil, "s", "-sub is required"},
		{"non positive ttl", []string{"-sub", "x", "-ttl", "0s"}, "s", "ttl must be positive"},
		{"unknown flag", []string{"-nope"}, "s", "flag provided but not defined"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var stdout, stderr bytes.Buffer
			code := run(tt.args, tt.secret, &stdout, &stderr)

			assert.Equal(t, 2, code)
			assert.Contains(t, stderr.String(), tt.want)
			assert.Empty(t, stdout.String())
		})
	}
}
