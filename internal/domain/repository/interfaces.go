package repository

import (
	"context"

	"StockCast/internal/domain/models"
)

// DataProvider fetches a raw historical price table for an instrument over a
// fixed lookback window. One network call per invocation, no retry. A failed
// or empty fetch is reported as models.ErrDataUnavailable.
type DataProvider interface {
	Fetch(ctx context.Context, instrument string) (*models.RawTable, error)
}

// Catalog is the injected, read-only set of selectable instruments. Never
// mutated at request time; the only state shared across sessions.
type Catalog interface {
	Instruments() []models.Instrument
	Label(symbol string) string
}

type Metrics interface {
	RecordFetch(symbol string, seconds float64)
	RecordForecast(symbol string, seconds float64)
	RecordFailure(kind string)
	RecordCacheHit(outcome string)
	RecordViewRendered(view string)
}
