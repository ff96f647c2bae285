// Package promsink exports usage deltas as Prometheus counters.
package promsink

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"market_backend/internal/platform/usage"
)

// Sink は usage.Sink の Prometheus 実装です。
type Sink struct {
	calls *prometheus.CounterVec
	cost  prometheus.Counter
}

var _ usage.Sink = (*Sink)(nil)

// New はカウンタを生成して reg に登録します。
func New(reg prometheus.Registerer) (*Sink, error) {
	s := &Sink{
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "market_api_calls_total",
			Help: "Units of provider API usage, by endpoint.",
		}, []string{"api"}),
		cost: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "market_api_cost_total",
			Help: "Accumulated provider API cost.",
		}),
	}
	for _, c := range []prometheus.Collector{s.calls, s.cost} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Sink) Record(_ context.Context, name usage.APIName, count, cost int64) error {
	s.calls.WithLabelValues(string(name)).Add(float64(count))
	s.cost.Add(float64(cost))
	return nil
}
