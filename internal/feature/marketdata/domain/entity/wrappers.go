package entity

import (
	"fmt"

	"cloud.google.com/go/civil"
	"github.com/goccy/go-json"

	"market_backend/internal/feature/marketdata/domain"
)

// Snapshot pairs a value with the date it was observed or last updated.
type Snapshot[T any] struct {
	value T
	date  civil.Date
}

func NewSnapshot[T any](value T, date civil.Date) Snapshot[T] {
	return Snapshot[T]{value: value, date: date}
}

func (s Snapshot[T]) Value() T { return s.value }

func (s Snapshot[T]) Date() civil.Date { return s.date }

func (s Snapshot[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Value T      `json:"value"`
		Date  string `json:"date"`
	}{Value: s.value, Date: s.date.String()})
}

// Bounded pairs a value with the closed interval [Start, End] it is valid for.
type Bounded[T any] struct {
	value T
	start civil.Date
	end   civil.Date
}

// NewBounded fails with a BadResponseError when start is after end.
func NewBounded[T any](value T, start, end civil.Date) (Bounded[T], error) {
	if end.Before(start) {
		return Bounded[T]{}, domain.NewBadResponseError(
			fmt.Sprintf("validity interval start %s is after end %s", start, end), nil)
	}
	return Bounded[T]{value: value, start: start, end: end}, nil
}

func (b Bounded[T]) Value() T { return b.value }

func (b Bounded[T]) Start() civil.Date { return b.start }

func (b Bounded[T]) End() civil.Date { return b.end }

// Contains reports whether d falls inside the validity interval.
func (b Bounded[T]) Contains(d civil.Date) bool {
	return !d.Before(b.start) && !d.After(b.end)
}

func (b Bounded[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Value T      `json:"value"`
		Start string `json:"start_date"`
		End   string `json:"end_date"`
	}{Value: b.value, Start: b.start.String(), End: b.end.String()})
}
