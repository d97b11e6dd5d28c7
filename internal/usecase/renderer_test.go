package usecase

import (
	"testing"
	"time"

	"StockCast/internal/domain/models"
)

func sampleSeries(n int) models.PriceSeries {
	series := make(models.PriceSeries, n)
	for i := range series {
		series[i] = models.PricePoint{
			Timestamp: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i),
			Price:     100 + float64(i),
		}
	}
	return series
}

func sampleForecast(series models.PriceSeries, h int) models.ForecastResult {
	res := make(models.ForecastResult, 0, len(series)+h)
	for _, p := range series {
		res = append(res, models.ForecastPoint{
			Timestamp: p.Timestamp, PointEstimate: p.Price, LowerBound: p.Price - 1, UpperBound: p.Price + 1,
		})
	}
	ts := series.Last().Timestamp
	for k := 1; k <= h; k++ {
		ts = ts.AddDate(0, 0, 1)
		v := series.Last().Price + float64(k)
		res = append(res, models.ForecastPoint{
			Timestamp: ts, PointEstimate: v, LowerBound: v - 2, UpperBound: v + 2,
		})
	}
	return res
}

func TestRenderHistoricalSingleTrace(t *testing.T) {
	series := sampleSeries(10)
	spec := NewRenderer().RenderHistorical("Apple (AAPL)", series)

	if len(spec.Traces) != 1 {
		t.Fatalf("expected 1 trace, got %d", len(spec.Traces))
	}
	tr := spec.Traces[0]
	if len(tr.X) != len(series) || len(tr.Y) != len(series) {
		t.Fatalf("trace must span full history")
	}
	if !tr.X[0].Equal(series[0].Timestamp) || !tr.X[len(tr.X)-1].Equal(series.Last().Timestamp) {
		t.Fatalf("trace domain mismatch")
	}
	if spec.Title != "Apple (AAPL) - Historical Price" {
		t.Fatalf("unexpected title %q", spec.Title)
	}
}

func TestRenderForecastThreeTraces(t *testing.T) {
	series := sampleSeries(10)
	h := 30
	result := sampleForecast(series, h)
	spec := NewRenderer().RenderForecast("Apple (AAPL)", series, result, h)

	if len(spec.Traces) != 3 {
		t.Fatalf("expected 3 traces, got %d", len(spec.Traces))
	}
	actual, forecast, band := spec.Traces[0], spec.Traces[1], spec.Traces[2]

	if len(actual.X) != len(series) {
		t.Fatalf("actual trace must span the historical domain only")
	}
	if len(forecast.X) != len(series)+h {
		t.Fatalf("forecast trace must span the full domain")
	}
	if !forecast.X[len(forecast.X)-1].Equal(result[len(result)-1].Timestamp) {
		t.Fatalf("forecast trace must extend to the horizon end")
	}
	if band.Fill != "tonexty" {
		t.Fatalf("band trace must shade down to the forecast trace")
	}
	// one-sided band: the shaded trace follows the upper bound
	for i, p := range result {
		if band.Y[i] != p.UpperBound {
			t.Fatalf("band row %d should be the upper bound", i)
		}
	}
	if spec.Title != "Apple (AAPL) - 30-Day Forecast" {
		t.Fatalf("unexpected title %q", spec.Title)
	}
}
