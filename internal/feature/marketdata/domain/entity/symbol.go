// Package entity defines the domain models for the marketdata feature.
package entity

const (
	// MinSymbolLength is the shortest accepted instrument identifier.
	MinSymbolLength = 1
	// MaxSymbolLength is the longest accepted instrument identifier.
	MaxSymbolLength = 8
)

// Symbol is a short identifier for a tradable instrument (e.g. "AAPL", "BRK.B").
type Symbol string

// IsValid reports whether the symbol length is within [MinSymbolLength, MaxSymbolLength].
func (s Symbol) IsValid() bool {
	n := len(s)
	return n >= MinSymbolLength && n <= MaxSymbolLength
}

func (s Symbol) String() string { return string(s) }
