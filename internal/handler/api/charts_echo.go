package api

import (
	models "StockCast/internal/domain/models"
	domrepo "StockCast/internal/domain/repository"
	"StockCast/internal/service/ratelimit"
	"StockCast/internal/usecase"
	xhttp "StockCast/pkg/http"
	xlogger "StockCast/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ChartsEchoHandler serves the stateless chart API: one request carries a
// full view-state, one response carries a rendered spec or a display message.
type ChartsEchoHandler struct {
	logger  *xlogger.Logger
	charts  *usecase.ChartService
	catalog domrepo.Catalog
	limiter *ratelimit.Limiter

	rlCapacity float64
	rlRefill   float64
}

func NewChartsEchoHandler(
	logger *xlogger.Logger,
	charts *usecase.ChartService,
	catalog domrepo.Catalog,
	limiter *ratelimit.Limiter,
	rlCapacity, rlRefill float64,
) *ChartsEchoHandler {
	return &ChartsEchoHandler{
		logger:     logger,
		charts:     charts,
		catalog:    catalog,
		limiter:    limiter,
		rlCapacity: rlCapacity,
		rlRefill:   rlRefill,
	}
}

func (h *ChartsEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/chart", h.Chart)
	g.GET("/instruments", h.Instruments)
}

func (h *ChartsEchoHandler) Chart(c echo.Context) error {
	if !h.limiter.Allow(c.RealIP(), h.rlCapacity, h.rlRefill) {
		return xhttp.AppErrorResponse(c, xhttp.TooManyRequestsError("rate limit exceeded"))
	}

	req := &models.ChartRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	snap := h.charts.Resolve(c.Request().Context(), models.ViewState{
		Instrument:  req.Symbol,
		HorizonDays: req.Horizon,
		ActiveView:  req.View,
	})
	return xhttp.SuccessResponse(c, snap)
}

func (h *ChartsEchoHandler) Instruments(c echo.Context) error {
	return xhttp.SuccessResponse(c, h.catalog.Instruments())
}
