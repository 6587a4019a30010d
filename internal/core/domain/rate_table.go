package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// RateTable is an immutable snapshot of directed exchange rates, keyed by
// currency pair. Conversion strategies do all their lookups against one
// snapshot so a batch never observes two different rate sets.
type RateTable struct {
	rates    map[string]decimal.Decimal
	Stale    bool
	LoadedAt time.Time
}

// NewRateTable creates an empty snapshot stamped with the current time.
func NewRateTable() *RateTable {
	return &RateTable{
		rates:    make(map[string]decimal.Decimal),
		LoadedAt: time.Now(),
	}
}

func pairKey(from, to string) string {
	return strings.ToUpper(from) + ":" + strings.ToUpper(to)
}

// Set records the rate for a directed pair. Non-positive rates are ignored.
func (t *RateTable) Set(from, to string, rate decimal.Decimal) {
	if rate.LessThanOrEqual(decimal.Zero) {
		return
	}
	t.rates[pairKey(from, to)] = rate
}

// Get returns the rate for a directed pair. Identity pairs always resolve to 1.
func (t *RateTable) Get(from, to string) (decimal.Decimal, bool) {
	if strings.EqualFold(from, to) {
		return decimal.NewFromInt(1), true
	}
	rate, ok := t.rates[pairKey(from, to)]
	return rate, ok
}

// Has reports whether a directed pair is present.
func (t *RateTable) Has(from, to string) bool {
	_, ok := t.Get(from, to)
	return ok
}

// Len returns the number of stored pairs.
func (t *RateTable) Len() int {
	return len(t.rates)
}

// Merge copies every pair from other that is not already present.
// Existing entries win, which gives earlier sources precedence when
// composing snapshots.
func (t *RateTable) Merge(other *RateTable) {
	if other == nil {
		return
	}
	for key, rate := range other.rates {
		if _, ok := t.rates[key]; !ok {
			t.rates[key] = rate
		}
	}
	t.Stale = t.Stale || other.Stale
}
