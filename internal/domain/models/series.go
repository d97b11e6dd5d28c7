package models

import "time"

// RawColumn is one column label of a provider table. Providers sometimes emit
// multi-level labels (e.g. ["Close", "AAPL"]); Labels holds one entry per level.
type RawColumn struct {
	Labels []string
}

// RawTable is the unprocessed tabular payload returned by a data provider.
// Column names are not guaranteed stable across calls or instruments, and cell
// values may be strings, numbers, timestamps, or nil.
type RawTable struct {
	Columns []RawColumn
	Rows    [][]any
}

// PricePoint is one observation of a canonical price series.
type PricePoint struct {
	Timestamp time.Time `json:"timestamp"`
	Price     float64   `json:"price"`
}

// PriceSeries is an ordered sequence of price observations. Timestamps are
// strictly increasing and unique, prices finite. An empty series means
// "no usable data" and is not an error by itself.
type PriceSeries []PricePoint

// Last returns the final point of the series. Callers must check IsEmpty first.
func (s PriceSeries) Last() PricePoint {
	return s[len(s)-1]
}

// IsEmpty reports whether the series has no observations.
func (s PriceSeries) IsEmpty() bool {
	return len(s) == 0
}
