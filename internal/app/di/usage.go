package di

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"market_backend/internal/platform/usage"
	"market_backend/internal/platform/usage/ledger"
	"market_backend/internal/platform/usage/promsink"
	"market_backend/internal/platform/usage/redissink"
)

// NewMeter creates a usage meter with the IEX cost table.
// Prometheus counters are always exported; the Redis and SQL sinks are
// attached only when rdb or db is non-nil.
func NewMeter(reg prometheus.Registerer, rdb *redis.Client, db *gorm.DB) (*usage.Meter, error) {
	prom, err := promsink.New(reg)
	if err != nil {
		return nil, err
	}
	sinks := []usage.Sink{prom}
	if rdb != nil {
		sinks = append(sinks, redissink.New(rdb, "usage"))
	}
	if db != nil {
		sinks = append(sinks, ledger.New(db))
	}
	return usage.NewMeter(usage.DefaultCosts(), sinks...)
}
