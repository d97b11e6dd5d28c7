package catalog

import (
	"StockCast/internal/domain/models"
	drepo "StockCast/internal/domain/repository"
)

// Static is a read-only instrument catalog built from injected configuration.
type Static struct {
	instruments []models.Instrument
	labels      map[string]string
}

// New creates a catalog from configured instruments.
func New(instruments []models.Instrument) *Static {
	labels := make(map[string]string, len(instruments))
	for _, ins := range instruments {
		labels[ins.Symbol] = ins.Label
	}
	return &Static{instruments: instruments, labels: labels}
}

// Instruments returns the selectable instruments in configured order.
func (s *Static) Instruments() []models.Instrument {
	out := make([]models.Instrument, len(s.instruments))
	copy(out, s.instruments)
	return out
}

// Label returns the display label for a symbol, or the symbol itself when the
// catalog has no entry for it.
func (s *Static) Label(symbol string) string {
	if l, ok := s.labels[symbol]; ok && l != "" {
		return l
	}
	return symbol
}

var _ drepo.Catalog = (*Static)(nil)
