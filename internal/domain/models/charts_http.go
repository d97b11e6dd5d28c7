package models

// Requests for chart HTTP endpoints. Defined in domain for consistency and reuse.

type ChartRequest struct {
	Symbol  string `query:"symbol" json:"symbol" validate:"required"`
	Horizon int    `query:"horizon" json:"horizon" default:"30" validate:"gte=7,lte=90"`
	View    string `query:"view" json:"view" default:"historical" validate:"oneof=historical forecast"`
}

// ViewChange is one inbound state-change message on a dashboard session.
type ViewChange struct {
	Symbol  string `json:"symbol" validate:"required"`
	Horizon int    `json:"horizon" default:"30" validate:"gte=7,lte=90"`
	View    string `json:"view" default:"historical" validate:"oneof=historical forecast"`
}
