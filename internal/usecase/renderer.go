package usecase

import (
	"fmt"
	"time"

	"StockCast/internal/domain/models"
)

// Renderer turns canonical series and forecasts into chart descriptions.
// Both render paths are pure functions of their inputs.
type Renderer struct{}

func NewRenderer() *Renderer { return &Renderer{} }

// RenderHistorical produces the single-trace price chart.
func (r *Renderer) RenderHistorical(label string, series models.PriceSeries) *models.ChartSpec {
	x := make([]time.Time, len(series))
	y := make([]float64, len(series))
	for i, p := range series {
		x[i] = p.Timestamp
		y[i] = p.Price
	}

	return &models.ChartSpec{
		Title: fmt.Sprintf("%s - Historical Price", label),
		XAxis: "Date",
		YAxis: "Price",
		Traces: []models.Trace{
			{Name: "Close Price", Mode: "lines", X: x, Y: y},
		},
	}
}

// RenderForecast produces the three-trace forecast chart: actual history, the
// point estimate over the full domain, and the confidence area shaded between
// the point estimate and the upper bound. The lower bound is carried in the
// forecast but not drawn, matching the dashboard's one-sided band.
func (r *Renderer) RenderForecast(label string, series models.PriceSeries, result models.ForecastResult, horizonDays int) *models.ChartSpec {
	ax := make([]time.Time, len(series))
	ay := make([]float64, len(series))
	for i, p := range series {
		ax[i] = p.Timestamp
		ay[i] = p.Price
	}

	fx := make([]time.Time, len(result))
	fy := make([]float64, len(result))
	uy := make([]float64, len(result))
	for i, p := range result {
		fx[i] = p.Timestamp
		fy[i] = p.PointEstimate
		uy[i] = p.UpperBound
	}

	return &models.ChartSpec{
		Title: fmt.Sprintf("%s - %d-Day Forecast", label, horizonDays),
		XAxis: "Date",
		YAxis: "Predicted Price",
		Traces: []models.Trace{
			{Name: "Actual", Mode: "lines", X: ax, Y: ay},
			{Name: "Forecast", Mode: "lines", X: fx, Y: fy},
			{Name: "Confidence Interval", Mode: "lines", X: fx, Y: uy, Fill: "tonexty"},
		},
	}
}
