package forecast

import (
	"context"
	"fmt"
	"math"

	"StockCast/internal/domain/models"
	domsvc "StockCast/internal/domain/service"
	"StockCast/pkg/util"
)

const (
	defaultMinPoints = 14 // two weekly cycles

	// Holt damped-trend smoothing parameters. Damping keeps long projections
	// from running away while still adapting the trend after a changepoint.
	smoothLevel = 0.5
	smoothTrend = 0.1
	dampTrend   = 0.98
)

// Engine fits an additive trend/seasonality model: a damped linear trend via
// exponential smoothing plus an additive day-of-week component, with the
// residual spread driving the uncertainty band.
type Engine struct {
	minPoints int
	z         float64
}

// New creates a forecast engine. minPoints <= 0 selects the default;
// intervalWidth is the nominal band coverage (e.g. 0.8 for an 80% band).
func New(minPoints int, intervalWidth float64) *Engine {
	if minPoints <= 0 {
		minPoints = defaultMinPoints
	}
	return &Engine{
		minPoints: minPoints,
		z:         zScore(intervalWidth),
	}
}

// Forecast fits on series and projects horizonDays trading days forward.
// The result covers the full historical domain plus the horizon. All internal
// failures come back as *models.FitError; nothing propagates.
func (e *Engine) Forecast(ctx context.Context, series models.PriceSeries, horizonDays int) (result models.ForecastResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = models.NewFitError("model panic", fmt.Errorf("%v", r))
		}
	}()

	if horizonDays <= 0 {
		return nil, models.NewFitError(fmt.Sprintf("horizon must be positive, got %d", horizonDays), nil)
	}
	if len(series) < e.minPoints {
		return nil, models.NewFitError(fmt.Sprintf("need at least %d points, got %d", e.minPoints, len(series)), nil)
	}
	for _, p := range series {
		if math.IsNaN(p.Price) || math.IsInf(p.Price, 0) {
			return nil, models.NewFitError("non-finite price in series", nil)
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fit := fitAdditive(series)

	n := len(series)
	result = make(models.ForecastResult, 0, n+horizonDays)

	// Historical domain: fitted values with a constant band.
	for i, p := range series {
		point := fit.fitted[i] + fit.seasonal[p.Timestamp.Weekday()]
		width := e.z * fit.sigma
		result = append(result, models.ForecastPoint{
			Timestamp:     p.Timestamp,
			PointEstimate: point,
			LowerBound:    point - width,
			UpperBound:    point + width,
		})
	}

	// Forward horizon: damped trend extrapolation, band widening with distance.
	ts := series.Last().Timestamp
	trend := 0.0
	damp := 1.0
	for k := 1; k <= horizonDays; k++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		ts = util.NextTradingDay(ts)
		damp *= dampTrend
		trend += damp * fit.slope
		point := fit.level + trend + fit.seasonal[ts.Weekday()]
		width := e.z * fit.sigma * math.Sqrt(float64(k))
		result = append(result, models.ForecastPoint{
			Timestamp:     ts,
			PointEstimate: point,
			LowerBound:    point - width,
			UpperBound:    point + width,
		})
	}

	return result, nil
}

// additiveFit holds the fitted model state.
type additiveFit struct {
	fitted   []float64 // one-step-ahead trend predictions per observation
	seasonal [7]float64
	sigma    float64
	level    float64
	slope    float64
}

// fitAdditive runs damped Holt smoothing over the series, then estimates the
// day-of-week component and residual spread from the smoothing residuals.
func fitAdditive(series models.PriceSeries) *additiveFit {
	n := len(series)
	fit := &additiveFit{fitted: make([]float64, n)}

	level := series[0].Price
	slope := series[1].Price - series[0].Price
	fit.fitted[0] = level
	for i := 1; i < n; i++ {
		pred := level + dampTrend*slope
		fit.fitted[i] = pred
		y := series[i].Price
		prevLevel := level
		level = smoothLevel*y + (1-smoothLevel)*pred
		slope = smoothTrend*(level-prevLevel) + (1-smoothTrend)*dampTrend*slope
	}
	fit.level = level
	fit.slope = slope

	// Per-weekday mean residual, centered so the component carries no bias.
	var sums, counts [7]float64
	for i, p := range series {
		wd := p.Timestamp.Weekday()
		sums[wd] += p.Price - fit.fitted[i]
		counts[wd]++
	}
	var total, present float64
	for wd := 0; wd < 7; wd++ {
		if counts[wd] > 0 {
			fit.seasonal[wd] = sums[wd] / counts[wd]
			total += fit.seasonal[wd]
			present++
		}
	}
	if present > 0 {
		mean := total / present
		for wd := 0; wd < 7; wd++ {
			if counts[wd] > 0 {
				fit.seasonal[wd] -= mean
			}
		}
	}

	var sq float64
	for i, p := range series {
		r := p.Price - fit.fitted[i] - fit.seasonal[p.Timestamp.Weekday()]
		sq += r * r
	}
	fit.sigma = math.Sqrt(sq / float64(n))

	return fit
}

// zScore maps a nominal band coverage to a normal quantile.
func zScore(intervalWidth float64) float64 {
	switch {
	case intervalWidth >= 0.99:
		return 2.5758
	case intervalWidth >= 0.95:
		return 1.9600
	case intervalWidth >= 0.90:
		return 1.6449
	case intervalWidth >= 0.80:
		return 1.2816
	default:
		return 1.2816
	}
}

var _ domsvc.Forecaster = (*Engine)(nil)
