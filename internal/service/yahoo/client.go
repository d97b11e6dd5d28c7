package yahoo

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"StockCast/internal/domain/models"
	drepo "StockCast/internal/domain/repository"
	xhttp "StockCast/pkg/http"
)

// Client implements a DataProvider backed by the Yahoo Finance chart API.
type Client struct {
	baseURL       string
	lookbackYears int
	interval      string
	userAgent     string
	client        *xhttp.Client
}

// New creates a new Yahoo Finance DataProvider.
func New(baseURL string, lookbackYears int, interval string, timeout time.Duration, userAgent string) drepo.DataProvider {
	if interval == "" {
		interval = "1d"
	}
	if userAgent == "" {
		userAgent = "Mozilla/5.0"
	}
	return &Client{
		baseURL:       baseURL,
		lookbackYears: lookbackYears,
		interval:      interval,
		userAgent:     userAgent,
		client:        xhttp.NewClient(xhttp.WithTimeout(timeout)),
	}
}

// chartResponse is the response structure from the Yahoo Finance chart API.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Symbol string `json:"symbol"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []*float64 `json:"open"`
					High   []*float64 `json:"high"`
					Low    []*float64 `json:"low"`
					Close  []*float64 `json:"close"`
					Volume []*float64 `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// Fetch downloads the daily history for one instrument over the configured
// lookback window. One network call, no retry; every failure mode collapses
// into models.ErrDataUnavailable.
func (c *Client) Fetch(ctx context.Context, instrument string) (*models.RawTable, error) {
	var resp chartResponse
	err := c.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    fmt.Sprintf("%s/v8/finance/chart/%s", c.baseURL, url.PathEscape(instrument)),
		QueryParams: map[string]string{
			"range":    fmt.Sprintf("%dy", c.lookbackYears),
			"interval": c.interval,
		},
		Headers: map[string]string{
			"User-Agent": c.userAgent,
		},
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("%w: yahoo fetch %q: %v", models.ErrDataUnavailable, instrument, err)
	}

	if resp.Chart.Error != nil {
		return nil, fmt.Errorf("%w: yahoo api error: %s", models.ErrDataUnavailable, resp.Chart.Error.Description)
	}
	if len(resp.Chart.Result) == 0 || len(resp.Chart.Result[0].Timestamp) == 0 {
		return nil, fmt.Errorf("%w: yahoo returned no rows for %q", models.ErrDataUnavailable, instrument)
	}
	result := resp.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return nil, fmt.Errorf("%w: yahoo returned no quote block for %q", models.ErrDataUnavailable, instrument)
	}

	return buildTable(instrument, &resp), nil
}

// buildTable reshapes the chart payload into a provider table. Per-instrument
// column labels mirror the upstream feed: price columns carry a second label
// level with the symbol, so names are not stable across instruments.
func buildTable(instrument string, resp *chartResponse) *models.RawTable {
	result := resp.Chart.Result[0]
	quote := result.Indicators.Quote[0]

	sym := result.Meta.Symbol
	if sym == "" {
		sym = instrument
	}

	table := &models.RawTable{
		Columns: []models.RawColumn{
			{Labels: []string{"Date"}},
			{Labels: []string{"Open", sym}},
			{Labels: []string{"High", sym}},
			{Labels: []string{"Low", sym}},
			{Labels: []string{"Close", sym}},
			{Labels: []string{"Volume", sym}},
		},
	}

	table.Rows = make([][]any, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		row := []any{
			time.Unix(ts, 0).UTC(),
			cell(quote.Open, i),
			cell(quote.High, i),
			cell(quote.Low, i),
			cell(quote.Close, i),
			cell(quote.Volume, i),
		}
		table.Rows = append(table.Rows, row)
	}

	return table
}

// cell returns the i-th value or nil when the feed has a hole (holidays,
// halted sessions).
func cell(vs []*float64, i int) any {
	if i >= len(vs) || vs[i] == nil {
		return nil
	}
	return *vs[i]
}

var _ drepo.DataProvider = (*Client)(nil)
