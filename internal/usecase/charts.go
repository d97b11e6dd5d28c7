package usecase

import (
	"context"
	"time"

	"StockCast/internal/domain/models"
	drepo "StockCast/internal/domain/repository"
	domsvc "StockCast/internal/domain/service"
	"StockCast/pkg/cache"
	"StockCast/pkg/logger"
)

// Fixed user-facing messages. The surface discriminates only these two
// categories; underlying causes go to the log.
const (
	MsgNoData         = "No data found for selected asset or data fetch failed."
	MsgForecastFailed = "Forecasting failed. Check data format."
)

// pipelineEntry is the memoized unit keyed on (instrument, horizonDays). A
// pure view toggle re-renders from this without re-fetching or re-fitting.
type pipelineEntry struct {
	Series   models.PriceSeries    `json:"series"`
	Forecast models.ForecastResult `json:"forecast"`
}

// ChartService runs the fetch -> normalize -> forecast -> render pipeline for
// one view-state and yields exactly one of a ChartSpec or a fixed message.
type ChartService struct {
	provider   drepo.DataProvider
	normalizer *Normalizer
	forecaster domsvc.Forecaster
	renderer   *Renderer
	catalog    drepo.Catalog
	cache      cache.Service
	cacheTTL   time.Duration
	metrics    drepo.Metrics
	log        *logger.Logger
}

func NewChartService(
	provider drepo.DataProvider,
	forecaster domsvc.Forecaster,
	catalog drepo.Catalog,
	cacheSvc cache.Service,
	cacheTTL time.Duration,
	metrics drepo.Metrics,
	log *logger.Logger,
) *ChartService {
	if cacheTTL <= 0 {
		cacheTTL = 5 * time.Minute
	}
	return &ChartService{
		provider:   provider,
		normalizer: NewNormalizer(),
		forecaster: forecaster,
		renderer:   NewRenderer(),
		catalog:    catalog,
		cache:      cacheSvc,
		cacheTTL:   cacheTTL,
		metrics:    metrics,
		log:        log,
	}
}

// Resolve computes the outcome for state. Every stage failure is contained
// here: the returned snapshot carries either a spec or a message, never both.
func (s *ChartService) Resolve(ctx context.Context, state models.ViewState) models.Snapshot {
	snap := models.Snapshot{State: state}

	entry, msg := s.acquire(ctx, state.Instrument, state.HorizonDays)
	if msg != "" {
		snap.Message = msg
		return snap
	}

	label := s.catalog.Label(state.Instrument)
	switch state.ActiveView {
	case models.ViewForecast:
		snap.Spec = s.renderer.RenderForecast(label, entry.Series, entry.Forecast, state.HorizonDays)
	default:
		snap.Spec = s.renderer.RenderHistorical(label, entry.Series)
	}
	s.metrics.RecordViewRendered(state.ActiveView)

	return snap
}

// acquire returns the memoized series+forecast for (instrument, horizon),
// running the fetch/normalize/forecast stages on a miss.
func (s *ChartService) acquire(ctx context.Context, instrument string, horizonDays int) (*pipelineEntry, string) {
	key := cache.GenerateKeyWithParams("pipeline", instrument, horizonDays)

	var entry pipelineEntry
	if err := s.cache.Get(ctx, key, &entry); err == nil {
		s.metrics.RecordCacheHit("hit")
		return &entry, ""
	}
	s.metrics.RecordCacheHit("miss")

	start := time.Now()
	raw, err := s.provider.Fetch(ctx, instrument)
	s.metrics.RecordFetch(instrument, time.Since(start).Seconds())
	if err != nil {
		s.metrics.RecordFailure("fetch")
		s.log.Warn("provider fetch failed",
			logger.String("symbol", instrument),
			logger.Error(err),
		)
		return nil, MsgNoData
	}

	series, err := s.normalizer.Normalize(raw)
	if err != nil {
		s.metrics.RecordFailure("normalize")
		s.log.Warn("normalization failed",
			logger.String("symbol", instrument),
			logger.Error(err),
		)
		return nil, MsgNoData
	}
	if series.IsEmpty() {
		s.metrics.RecordFailure("empty_series")
		s.log.Warn("no usable rows after cleaning", logger.String("symbol", instrument))
		return nil, MsgNoData
	}

	start = time.Now()
	result, err := s.forecaster.Forecast(ctx, series, horizonDays)
	s.metrics.RecordForecast(instrument, time.Since(start).Seconds())
	if err != nil {
		s.metrics.RecordFailure("forecast")
		s.log.Warn("forecast failed",
			logger.String("symbol", instrument),
			logger.Int("horizon", horizonDays),
			logger.Error(err),
		)
		return nil, MsgForecastFailed
	}
	if result.IsEmpty() {
		s.metrics.RecordFailure("empty_forecast")
		return nil, MsgForecastFailed
	}

	entry = pipelineEntry{Series: series, Forecast: result}
	if err := s.cache.Set(ctx, key, &entry, s.cacheTTL); err != nil {
		// memoization is best-effort
		s.log.Warn("cache set failed", logger.Error(err))
	}

	return &entry, ""
}
