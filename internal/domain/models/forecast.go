package models

import "time"

// ForecastPoint is one row of a forecast: a point estimate with its
// uncertainty band at a given timestamp.
type ForecastPoint struct {
	Timestamp     time.Time `json:"timestamp"`
	PointEstimate float64   `json:"point_estimate"`
	LowerBound    float64   `json:"lower_bound"`
	UpperBound    float64   `json:"upper_bound"`
}

// ForecastResult covers the full historical domain plus the forward horizon.
// Length is len(series)+horizonDays; the first len(series) timestamps match the
// input series, the trailing horizonDays timestamps step one trading day past
// the last observation. LowerBound <= PointEstimate <= UpperBound on every row.
type ForecastResult []ForecastPoint

// IsEmpty reports whether the forecast has no rows.
func (r ForecastResult) IsEmpty() bool {
	return len(r) == 0
}
