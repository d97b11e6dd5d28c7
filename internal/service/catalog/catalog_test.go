package catalog

import (
	"testing"

	"StockCast/internal/domain/models"
)

func TestLabelKnownSymbol(t *testing.T) {
	c := New([]models.Instrument{
		{Label: "Apple (AAPL)", Symbol: "AAPL"},
		{Label: "Gold ETF US (GLD)", Symbol: "GLD"},
	})
	if got := c.Label("AAPL"); got != "Apple (AAPL)" {
		t.Fatalf("unexpected label %q", got)
	}
}

func TestLabelFallsBackToSymbol(t *testing.T) {
	c := New([]models.Instrument{{Label: "Apple (AAPL)", Symbol: "AAPL"}})
	if got := c.Label("TSLA"); got != "TSLA" {
		t.Fatalf("expected symbol fallback, got %q", got)
	}
}

func TestInstrumentsCopy(t *testing.T) {
	c := New([]models.Instrument{{Label: "Apple (AAPL)", Symbol: "AAPL"}})
	list := c.Instruments()
	list[0].Symbol = "mutated"
	if c.Instruments()[0].Symbol != "AAPL" {
		t.Fatalf("catalog must be immutable")
	}
}
