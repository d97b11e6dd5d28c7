package yahoo

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"StockCast/internal/domain/models"
)

func chartBody(symbol string, ts []int64, closes []string) string {
	tsJSON := ""
	for i, t := range ts {
		if i > 0 {
			tsJSON += ","
		}
		tsJSON += fmt.Sprintf("%d", t)
	}
	clJSON := ""
	for i, c := range closes {
		if i > 0 {
			clJSON += ","
		}
		clJSON += c
	}
	return fmt.Sprintf(`{"chart":{"result":[{"meta":{"symbol":%q},"timestamp":[%s],
		"indicators":{"quote":[{"open":[%s],"high":[%s],"low":[%s],"close":[%s],"volume":[%s]}]}}],"error":null}}`,
		symbol, tsJSON, clJSON, clJSON, clJSON, clJSON, clJSON)
}

func TestFetchBuildsRawTable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v8/finance/chart/AAPL" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("range"); got != "5y" {
			t.Errorf("unexpected range %s", got)
		}
		if got := r.URL.Query().Get("interval"); got != "1d" {
			t.Errorf("unexpected interval %s", got)
		}
		fmt.Fprint(w, chartBody("AAPL", []int64{1700000000, 1700086400}, []string{"181.5", "183.25"}))
	}))
	defer srv.Close()

	p := New(srv.URL, 5, "1d", 5*time.Second, "")
	table, err := p.Fetch(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(table.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(table.Rows))
	}
	if len(table.Columns) != 6 {
		t.Fatalf("expected 6 columns, got %d", len(table.Columns))
	}
	// price columns carry the symbol as a second label level
	closeCol := table.Columns[4]
	if len(closeCol.Labels) != 2 || closeCol.Labels[0] != "Close" || closeCol.Labels[1] != "AAPL" {
		t.Fatalf("unexpected close column labels %v", closeCol.Labels)
	}
	ts, ok := table.Rows[0][0].(time.Time)
	if !ok || ts.Unix() != 1700000000 {
		t.Fatalf("unexpected date cell %v", table.Rows[0][0])
	}
	if v, ok := table.Rows[1][4].(float64); !ok || v != 183.25 {
		t.Fatalf("unexpected close cell %v", table.Rows[1][4])
	}
}

func TestFetchNullCellsBecomeNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, chartBody("GLD", []int64{1700000000, 1700086400}, []string{"null", "172.1"}))
	}))
	defer srv.Close()

	p := New(srv.URL, 5, "1d", 5*time.Second, "")
	table, err := p.Fetch(context.Background(), "GLD")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if table.Rows[0][4] != nil {
		t.Fatalf("expected nil close for null cell, got %v", table.Rows[0][4])
	}
}

func TestFetchProviderErrorIsDataUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found"}}}`)
	}))
	defer srv.Close()

	p := New(srv.URL, 5, "1d", 5*time.Second, "")
	_, err := p.Fetch(context.Background(), "")
	if !errors.Is(err, models.ErrDataUnavailable) {
		t.Fatalf("expected ErrDataUnavailable, got %v", err)
	}
}

func TestFetchEmptyResultIsDataUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"chart":{"result":[],"error":null}}`)
	}))
	defer srv.Close()

	p := New(srv.URL, 5, "1d", 5*time.Second, "")
	_, err := p.Fetch(context.Background(), "EMPTY")
	if !errors.Is(err, models.ErrDataUnavailable) {
		t.Fatalf("expected ErrDataUnavailable, got %v", err)
	}
}

func TestFetchNetworkErrorIsDataUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	p := New(srv.URL, 5, "1d", time.Second, "")
	_, err := p.Fetch(context.Background(), "AAPL")
	if !errors.Is(err, models.ErrDataUnavailable) {
		t.Fatalf("expected ErrDataUnavailable, got %v", err)
	}
}
