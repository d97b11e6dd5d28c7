package models

import "time"

// Views selectable on the dashboard.
const (
	ViewHistorical = "historical"
	ViewForecast   = "forecast"
)

// ViewState is the complete reactive input of one dashboard session. Any field
// change triggers a recomputation. Not persisted beyond the session.
type ViewState struct {
	Instrument  string `json:"symbol"`
	HorizonDays int    `json:"horizon"`
	ActiveView  string `json:"view"`
}

// Trace is one labeled series of a chart.
type Trace struct {
	Name string      `json:"name"`
	Mode string      `json:"mode"`
	X    []time.Time `json:"x"`
	Y    []float64   `json:"y"`
	// Fill set to "tonexty" shades the area down to the previous trace.
	Fill string `json:"fill,omitempty"`
}

// ChartSpec is a renderable chart description. Never mutated after creation;
// the rendering surface defines its own presentation on top of it.
type ChartSpec struct {
	Title  string  `json:"title"`
	XAxis  string  `json:"xaxis_title"`
	YAxis  string  `json:"yaxis_title"`
	Traces []Trace `json:"traces"`
}

// Snapshot is one committed recomputation outcome: exactly one of Spec or
// Message is set. Seq orders snapshots by submission of their ViewState.
type Snapshot struct {
	Seq     uint64     `json:"seq"`
	State   ViewState  `json:"state"`
	Spec    *ChartSpec `json:"spec,omitempty"`
	Message string     `json:"message,omitempty"`
}
