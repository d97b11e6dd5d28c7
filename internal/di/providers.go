package di

import (
	"fmt"

	"StockCast/internal/domain/repository"
	domservice "StockCast/internal/domain/service"
	"StockCast/internal/handler/api"
	"StockCast/internal/handler/ws"
	"StockCast/internal/service/catalog"
	"StockCast/internal/service/forecast"
	"StockCast/internal/service/ratelimit"
	"StockCast/internal/service/yahoo"
	"StockCast/internal/usecase"
	"StockCast/pkg/cache"
	"StockCast/pkg/config"
	xhttp "StockCast/pkg/http"
	"StockCast/pkg/logger"
	"StockCast/pkg/metrics"
	"StockCast/pkg/server"
)

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*logger.Logger, error) {
	l, err := logger.New(&logger.Config{
		Level:  cfg.Logger.Level,
		Format: cfg.Logger.Format,
		Output: cfg.Logger.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideCache selects the memoization backend from config. The in-process
// backend is the default; Redis serves multi-replica deployments.
func ProvideCache(cfg *config.Config) (cache.Service, error) {
	if cfg.Cache.Backend == "redis" {
		c, err := cache.NewRedisCache(
			cache.WithRedisHost(cfg.Cache.Redis.Host),
			cache.WithRedisPort(cfg.Cache.Redis.Port),
			cache.WithRedisPassword(cfg.Cache.Redis.Password),
			cache.WithRedisDB(cfg.Cache.Redis.DB),
		)
		if err != nil {
			return nil, fmt.Errorf("redis cache: %w", err)
		}
		return c, nil
	}
	return cache.NewMemoryCache(cache.WithMemoryMaxSize(cfg.Cache.MaxSize)), nil
}

// ProvideCatalog creates the instrument catalog from config.
func ProvideCatalog(cfg *config.Config) repository.Catalog {
	return catalog.New(cfg.Catalog)
}

// ProvideDataProvider creates the Yahoo chart data provider.
func ProvideDataProvider(cfg *config.Config) repository.DataProvider {
	return yahoo.New(
		cfg.Provider.BaseURL,
		cfg.Provider.LookbackYears,
		cfg.Provider.Interval,
		cfg.Provider.Timeout,
		cfg.Provider.UserAgent,
	)
}

// ProvideForecaster creates the forecast engine.
func ProvideForecaster(cfg *config.Config) domservice.Forecaster {
	return forecast.New(cfg.Forecast.MinPoints, cfg.Forecast.IntervalWidth)
}

// ProvideChartService creates the chart pipeline use case.
func ProvideChartService(
	cfg *config.Config,
	provider repository.DataProvider,
	forecaster domservice.Forecaster,
	cat repository.Catalog,
	cacheSvc cache.Service,
	m repository.Metrics,
	l *logger.Logger,
) *usecase.ChartService {
	return usecase.NewChartService(provider, forecaster, cat, cacheSvc, cfg.Cache.TTL, m, l)
}

// ProvideRateLimiter creates the per-client API rate limiter.
func ProvideRateLimiter() *ratelimit.Limiter {
	return ratelimit.New()
}

// ProvideHandlers assembles the HTTP surface.
func ProvideHandlers(
	cfg *config.Config,
	l *logger.Logger,
	charts *usecase.ChartService,
	cat repository.Catalog,
	limiter *ratelimit.Limiter,
) []xhttp.Handler {
	return []xhttp.Handler{
		api.NewChartsEchoHandler(l, charts, cat, limiter, cfg.RateLimit.Capacity, cfg.RateLimit.RefillPerSec),
		ws.NewSessionHandler(l, charts, cat),
	}
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	l *logger.Logger,
	cacheSvc cache.Service,
	handlers []xhttp.Handler,
) *server.App {
	return server.New(cfg, l, cacheSvc, handlers)
}
