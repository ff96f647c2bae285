// Package usage meters provider API consumption against a fixed cost table.
package usage

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync/atomic"
)

// APIName identifies one metered provider endpoint.
type APIName string

const (
	Price                APIName = "price"
	Quote                APIName = "quote"
	DelayedQuote         APIName = "delayed-quote"
	IntradayPrices       APIName = "intraday-prices"
	Peers                APIName = "peers"
	PriceTarget          APIName = "price-target"
	RecommendationTrends APIName = "recommendation-trends"
	Estimates            APIName = "estimates"
	News                 APIName = "news"
	Company              APIName = "company"
	Filings              APIName = "filings"
	IncomeStatement      APIName = "income"
	BalanceSheet         APIName = "balance-sheet"
	Statistics           APIName = "stats"
)

// DefaultCosts はIEX Cloudのクレジット重みです。
// news, income, balance-sheet は返却件数あたりの重みです。
func DefaultCosts() map[APIName]int64 {
	return map[APIName]int64{
		Price:                1,
		Quote:                1,
		DelayedQuote:         1,
		IntradayPrices:       1,
		Peers:                500,
		PriceTarget:          500,
		RecommendationTrends: 1000,
		Estimates:            10000,
		News:                 1,
		Company:              1,
		Filings:              1,
		IncomeStatement:      1000,
		BalanceSheet:         3000,
		Statistics:           5,
	}
}

// Sink receives every recorded usage delta.
// cost is the cost added by this delta (count * unit cost).
type Sink interface {
	Record(ctx context.Context, name APIName, count, cost int64) error
}

// Recorder is what providers depend on.
type Recorder interface {
	RecordAPIUse(ctx context.Context, name APIName)
	RecordAPIUsage(ctx context.Context, name APIName, count int64)
}

// Meter accumulates API calls and their cost. Safe for concurrent use.
// The cost table is fixed at construction.
type Meter struct {
	costs  map[APIName]int64
	counts map[APIName]*atomic.Int64
	total  atomic.Int64
	sinks  []Sink
}

var _ Recorder = (*Meter)(nil)

// NewMeter はコスト表とシンクから Meter を生成します。
// コストは正の値でなければなりません。
func NewMeter(costs map[APIName]int64, sinks ...Sink) (*Meter, error) {
	if len(costs) == 0 {
		return nil, fmt.Errorf("usage: empty cost table")
	}
	m := &Meter{
		costs:  make(map[APIName]int64, len(costs)),
		counts: make(map[APIName]*atomic.Int64, len(costs)),
		sinks:  sinks,
	}
	for name, cost := range costs {
		if cost <= 0 {
			return nil, fmt.Errorf("usage: cost for %q must be positive, got %d", name, cost)
		}
		m.costs[name] = cost
		m.counts[name] = new(atomic.Int64)
	}
	return m, nil
}

// RecordAPIUse records a single call.
func (m *Meter) RecordAPIUse(ctx context.Context, name APIName) {
	m.RecordAPIUsage(ctx, name, 1)
}

// RecordAPIUsage records count units of name. Unknown names and
// non-positive counts are ignored with a warning.
func (m *Meter) RecordAPIUsage(ctx context.Context, name APIName, count int64) {
	cost, ok := m.costs[name]
	if !ok {
		slog.Warn("usage: unknown api name", "api", name)
		return
	}
	if count <= 0 {
		slog.Warn("usage: non-positive count ignored", "api", name, "count", count)
		return
	}
	delta := count * cost
	m.counts[name].Add(count)
	m.total.Add(delta)

	for _, s := range m.sinks {
		if err := s.Record(ctx, name, count, delta); err != nil {
			slog.Error("usage: sink failed", "api", name, "count", count, "error", err)
		}
	}
}

// Total returns the accumulated cost.
func (m *Meter) Total() int64 { return m.total.Load() }

// Count returns the number of units recorded for name.
func (m *Meter) Count(name APIName) int64 {
	c, ok := m.counts[name]
	if !ok {
		return 0
	}
	return c.Load()
}

// Cost returns the unit cost of name.
func (m *Meter) Cost(name APIName) (int64, bool) {
	c, ok := m.costs[name]
	return c, ok
}

// Entry is one line of a Snapshot.
type Entry struct {
	API   APIName `json:"api"`
	Count int64   `json:"count"`
	Cost  int64   `json:"cost"`
}

// Snapshot is a point-in-time view of the meter.
type Snapshot struct {
	Total   int64   `json:"total"`
	Entries []Entry `json:"entries"`
}

// Snapshot returns the counters sorted by API name.
// Entries are read one by one, so under concurrent writes the sum of
// entry costs may briefly differ from Total.
func (m *Meter) Snapshot() Snapshot {
	s := Snapshot{Total: m.Total(), Entries: make([]Entry, 0, len(m.counts))}
	for name, c := range m.counts {
		n := c.Load()
		s.Entries = append(s.Entries, Entry{API: name, Count: n, Cost: n * m.costs[name]})
	}
	sort.Slice(s.Entries, func(i, j int) bool { return s.Entries[i].API < s.Entries[j].API })
	return s
}
