// Command token は API 用の JWT を発行します。署名鍵は JWT_SECRET から読み込みます。
//
// 使い方:
//
//	token -sub dashboard -ttl 24h
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"market_backend/internal/platform/config"
	jwtmw "market_backend/internal/platform/jwt"
)

func main() {
	os.Exit(run(os.Args[1:], os.Getenv(config.EnvKeyJWTSecret), os.Stdout, os.Stderr))
}

func run(args []string, secret string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("token", flag.ContinueOnError)
	fs.SetOutput(stderr)
	sub := fs.String("sub", "", "API client name stored in the sub claim")
	ttl := fs.Duration("ttl", 24*time.Hour, "token lifetime")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if secret == "" {
		fmt.Fprintln(stderr, config.EnvKeyJWTSecret+" is not set")
		return 2
	}
	if *ttl <= 0 {
		fmt.Fprintln(stderr, "ttl must be positive")
		return 2
	}

	token, err := jwtmw.NewGenerator(secret, *ttl).GenerateToken(*sub)
	if errors.Is(err, jwtmw.ErrEmptySubject) {
		fmt.Fprintln(stderr, "-sub is required")
		return 2
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	fmt.Fprintln(stdout, token)
	return 0
}
