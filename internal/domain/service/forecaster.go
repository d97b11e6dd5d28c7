package service

import (
	"context"

	"StockCast/internal/domain/models"
)

// Forecaster fits a trend/seasonality model on a canonical price series and
// projects it forward. Any implementation satisfying the structural contract of
// models.ForecastResult is substitutable; the engine must not add
// nondeterminism beyond what its model provides.
type Forecaster interface {
	Forecast(ctx context.Context, series models.PriceSeries, horizonDays int) (models.ForecastResult, error)
}
