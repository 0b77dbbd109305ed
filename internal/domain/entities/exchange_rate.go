package entities

import "time"

// ExchangeRate is a directed conversion rate: Rate units of To per unit of
// From. Pairs are not guaranteed bidirectional in storage; the reciprocal of
// the opposite entry is used when the direct one is absent.
type ExchangeRate struct {
	Pair      string    `json:"pair"`
	From      Currency  `json:"from_currency"`
	To        Currency  `json:"to_currency"`
	Rate      float64   `json:"rate"`
	CreatedAt time.Time `json:"created_at"`
}

// ResolvedRate is the outcome of the direct-or-inverse rate resolution.
// From/To are always oriented in the requested direction, regardless of how
// the backing record is stored; Inverted reports that the reciprocal of the
// opposite record was used.
type ResolvedRate struct {
	From     Currency
	To       Currency
	Rate     float64
	Inverted bool
}

// Conversion is the result of converting a monetary amount between two
// currencies.
//
// ConvertedFull keeps the unrounded product; callers that combine several
// converted sub-totals must sum full-precision values, never the rounded
// ones. ConvertedRound is for display only (2 decimals, half away from zero).
type Conversion struct {
	From           Currency
	To             Currency
	Rate           float64
	Amount         float64
	ConvertedFull  float64
	ConvertedRound float64
	Inverted       bool
}
