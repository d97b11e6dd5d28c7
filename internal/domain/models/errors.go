package models

import (
	"errors"
	"fmt"
)

// Pipeline stage failures. Each stage catches its own internal failures and
// returns one of these; nothing propagates past a stage boundary.
var (
	// ErrDataUnavailable covers provider network errors, provider-side
	// rejections, and empty result sets.
	ErrDataUnavailable = errors.New("data unavailable")

	// ErrInvalidSchema means no column of the raw table could be resolved to
	// the canonical schema.
	ErrInvalidSchema = errors.New("invalid schema")
)

// FitError reports a model fit/predict failure or an out-of-range horizon.
type FitError struct {
	Reason string
	Err    error
}

func (e *FitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fit: %s: %v", e.Reason, e.Err)
	}
	return "fit: " + e.Reason
}

func (e *FitError) Unwrap() error {
	return e.Err
}

// NewFitError creates a FitError with an optional underlying cause.
func NewFitError(reason string, err error) *FitError {
	return &FitError{Reason: reason, Err: err}
}

// IsNoData reports whether err belongs to the "no data" failure category
// surfaced to the user (unavailable data or an unusable schema).
func IsNoData(err error) bool {
	return errors.Is(err, ErrDataUnavailable) || errors.Is(err, ErrInvalidSchema)
}

// IsFitError reports whether err belongs to the "forecast failed" category.
func IsFitError(err error) bool {
	var fe *FitError
	return errors.As(err, &fe)
}
