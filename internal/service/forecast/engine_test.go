package forecast

import (
	"context"
	"math"
	"testing"
	"time"

	"StockCast/internal/domain/models"
	"StockCast/pkg/util"
)

// tradingSeries builds n weekday observations ending before today.
func tradingSeries(n int, f func(i int) float64) models.PriceSeries {
	series := make(models.PriceSeries, 0, n)
	ts := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC) // a Monday
	for i := 0; i < n; i++ {
		series = append(series, models.PricePoint{Timestamp: ts, Price: f(i)})
		ts = util.NextTradingDay(ts)
	}
	return series
}

func TestForecastLengthAndDomain(t *testing.T) {
	series := tradingSeries(60, func(i int) float64 { return 100 + 0.5*float64(i) })
	e := New(0, 0.8)

	h := 30
	res, err := e.Forecast(context.Background(), series, h)
	if err != nil {
		t.Fatalf("forecast: %v", err)
	}
	if len(res) != len(series)+h {
		t.Fatalf("expected %d rows, got %d", len(series)+h, len(res))
	}
	for i := range series {
		if !res[i].Timestamp.Equal(series[i].Timestamp) {
			t.Fatalf("row %d timestamp mismatch", i)
		}
	}
	last := series.Last().Timestamp
	prev := last
	for i := len(series); i < len(res); i++ {
		ts := res[i].Timestamp
		if !ts.After(prev) {
			t.Fatalf("horizon timestamps must be strictly increasing")
		}
		if !ts.After(last) {
			t.Fatalf("horizon timestamps must exceed last observation")
		}
		if !util.IsTradingDay(ts) {
			t.Fatalf("horizon timestamp %v falls on a weekend", ts)
		}
		prev = ts
	}
}

func TestForecastBoundsOrdered(t *testing.T) {
	series := tradingSeries(80, func(i int) float64 {
		return 50 + 2*float64(i) + 3*math.Sin(float64(i)/5)
	})
	e := New(0, 0.8)

	res, err := e.Forecast(context.Background(), series, 45)
	if err != nil {
		t.Fatalf("forecast: %v", err)
	}
	for i, p := range res {
		if !(p.LowerBound <= p.PointEstimate && p.PointEstimate <= p.UpperBound) {
			t.Fatalf("row %d bounds out of order: %v", i, p)
		}
	}
}

func TestForecastBandWidensWithHorizon(t *testing.T) {
	series := tradingSeries(80, func(i int) float64 {
		return 50 + 2*float64(i) + 3*math.Sin(float64(i)/5)
	})
	e := New(0, 0.8)

	h := 40
	res, err := e.Forecast(context.Background(), series, h)
	if err != nil {
		t.Fatalf("forecast: %v", err)
	}
	prevWidth := -1.0
	for i := len(series); i < len(res); i++ {
		width := res[i].UpperBound - res[i].LowerBound
		if width < prevWidth {
			t.Fatalf("band width decreased at horizon step %d: %f < %f", i-len(series)+1, width, prevWidth)
		}
		prevWidth = width
	}
	if prevWidth <= res[len(series)].UpperBound-res[len(series)].LowerBound {
		t.Fatalf("band did not widen over the horizon")
	}
}

func TestForecastRejectsNonPositiveHorizon(t *testing.T) {
	series := tradingSeries(30, func(i int) float64 { return 100 })
	e := New(0, 0.8)

	for _, h := range []int{0, -1, -30} {
		res, err := e.Forecast(context.Background(), series, h)
		if res != nil {
			t.Fatalf("expected no partial result for h=%d", h)
		}
		if !models.IsFitError(err) {
			t.Fatalf("expected FitError for h=%d, got %v", h, err)
		}
	}
}

func TestForecastRejectsShortSeries(t *testing.T) {
	series := tradingSeries(5, func(i int) float64 { return 100 })
	e := New(0, 0.8)

	_, err := e.Forecast(context.Background(), series, 7)
	if !models.IsFitError(err) {
		t.Fatalf("expected FitError, got %v", err)
	}
}

func TestForecastRejectsNonFinitePrices(t *testing.T) {
	series := tradingSeries(30, func(i int) float64 { return 100 })
	series[10].Price = math.NaN()
	e := New(0, 0.8)

	_, err := e.Forecast(context.Background(), series, 7)
	if !models.IsFitError(err) {
		t.Fatalf("expected FitError, got %v", err)
	}
}

func TestForecastDeterministic(t *testing.T) {
	series := tradingSeries(60, func(i int) float64 {
		return 200 + float64(i%7) - 0.3*float64(i)
	})
	e := New(0, 0.8)

	a, err := e.Forecast(context.Background(), series, 14)
	if err != nil {
		t.Fatalf("forecast: %v", err)
	}
	b, err := e.Forecast(context.Background(), series, 14)
	if err != nil {
		t.Fatalf("forecast: %v", err)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("row %d differs between identical runs", i)
		}
	}
}

func TestForecastTracksLinearTrend(t *testing.T) {
	series := tradingSeries(120, func(i int) float64 { return 10 + float64(i) })
	e := New(0, 0.8)

	res, err := e.Forecast(context.Background(), series, 20)
	if err != nil {
		t.Fatalf("forecast: %v", err)
	}
	lastActual := series.Last().Price
	final := res[len(res)-1].PointEstimate
	if final <= lastActual {
		t.Fatalf("projection of an increasing series should keep rising: %f <= %f", final, lastActual)
	}
}

func TestForecastCancelledContext(t *testing.T) {
	series := tradingSeries(60, func(i int) float64 { return 100 })
	e := New(0, 0.8)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := e.Forecast(ctx, series, 30)
	if err == nil {
		t.Fatalf("expected error from cancelled context")
	}
}
