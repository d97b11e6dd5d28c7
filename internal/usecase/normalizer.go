package usecase

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"StockCast/internal/domain/models"
	"StockCast/pkg/util"
)

// Normalizer coerces raw provider tables into canonical price series. It is
// tolerant of provider-side schema drift: multi-level column labels, unstable
// column names, and unparseable cells.
type Normalizer struct{}

func NewNormalizer() *Normalizer { return &Normalizer{} }

// Normalize resolves the date and close-price columns of a raw table and
// returns the cleaned, ordered series. Rows whose date or price cannot be
// coerced are dropped; an empty result is valid and means "no usable data".
// A table with no close-like column at all is models.ErrInvalidSchema.
func (n *Normalizer) Normalize(raw *models.RawTable) (models.PriceSeries, error) {
	if raw == nil || len(raw.Columns) == 0 {
		return nil, fmt.Errorf("%w: table has no columns", models.ErrInvalidSchema)
	}

	names := flattenColumns(raw.Columns)
	dateIdx := resolveDateColumn(names)
	priceIdx, err := resolveCloseColumn(names)
	if err != nil {
		return nil, err
	}

	series := make(models.PriceSeries, 0, len(raw.Rows))
	for i, row := range raw.Rows {
		if priceIdx >= len(row) {
			continue
		}

		var ts time.Time
		if dateIdx >= 0 {
			if dateIdx >= len(row) {
				continue
			}
			t, ok := coerceTimestamp(row[dateIdx])
			if !ok {
				continue
			}
			ts = t
		} else {
			// No date-like column anywhere: fall back to the row index as a
			// synthetic daily clock.
			ts = time.Unix(0, 0).UTC().AddDate(0, 0, i)
		}

		price, ok := coercePrice(row[priceIdx])
		if !ok {
			continue
		}

		series = append(series, models.PricePoint{Timestamp: ts, Price: price})
	}

	sort.SliceStable(series, func(a, b int) bool { return series[a].Timestamp.Before(series[b].Timestamp) })

	// Enforce unique timestamps, keeping the first occurrence.
	out := series[:0]
	for _, p := range series {
		if len(out) > 0 && !p.Timestamp.After(out[len(out)-1].Timestamp) {
			continue
		}
		out = append(out, p)
	}

	return out, nil
}

// flattenColumns joins multi-level labels into single flat names.
func flattenColumns(cols []models.RawColumn) []string {
	names := make([]string, len(cols))
	for i, col := range cols {
		parts := make([]string, 0, len(col.Labels))
		for _, l := range col.Labels {
			if s := strings.TrimSpace(l); s != "" {
				parts = append(parts, s)
			}
		}
		names[i] = strings.Join(parts, "_")
	}
	return names
}

// resolveDateColumn prefers an explicit date field, then a datetime-like
// field. Returns -1 when neither exists.
func resolveDateColumn(names []string) int {
	for i, name := range names {
		if strings.EqualFold(name, "Date") {
			return i
		}
	}
	for i, name := range names {
		if strings.Contains(strings.ToLower(name), "datetime") {
			return i
		}
	}
	return -1
}

// resolveCloseColumn prefers the canonical close field, then the first column
// whose name matches the close-price pattern.
func resolveCloseColumn(names []string) (int, error) {
	for i, name := range names {
		if strings.EqualFold(name, "Close") {
			return i, nil
		}
	}
	for i, name := range names {
		if strings.Contains(strings.ToLower(name), "close") {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: no close-like column in %v", models.ErrInvalidSchema, names)
}

func coerceTimestamp(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case string:
		return util.ParseTime(t)
	case int64:
		if t <= 0 {
			return time.Time{}, false
		}
		return time.Unix(t, 0).UTC(), true
	case float64:
		if t <= 0 || math.IsNaN(t) || math.IsInf(t, 0) {
			return time.Time{}, false
		}
		return time.Unix(int64(t), 0).UTC(), true
	default:
		return time.Time{}, false
	}
}

func coercePrice(v any) (float64, bool) {
	var f float64
	switch p := v.(type) {
	case float64:
		f = p
	case float32:
		f = float64(p)
	case int:
		f = float64(p)
	case int64:
		f = float64(p)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
