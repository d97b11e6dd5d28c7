package models

// Instrument is one selectable entry of the static catalog.
type Instrument struct {
	Label  string `json:"label" yaml:"label"`
	Symbol string `json:"symbol" yaml:"symbol"`
}
