package entities

import "time"

// FreightRate prices a lane: one (origin, destination, method, metric)
// combination. Several records may exist for the same lane over time; the
// most recently created one is authoritative.
//
// When PerUnit is set the fees are unit prices and scale with the requested
// size; otherwise they are flat amounts and size is informational only.
type FreightRate struct {
	ID              string    `json:"id"`
	Code            string    `json:"code"`
	OriginCode      string    `json:"origin_code"`
	DestinationCode string    `json:"destination_code"`
	MethodCode      string    `json:"method_code"`
	MetricCode      string    `json:"metric_code"`
	ShippingFee     float64   `json:"shipping_fee"`
	ClearingFee     float64   `json:"clearing_fee"`
	Currency        Currency  `json:"currency"`
	PerUnit         bool      `json:"per_unit"`
	EstimatedDays   *int      `json:"estimated_days,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// FeeBreakdown is a shipping + clearing fee total in a single currency.
type FeeBreakdown struct {
	ShippingFee float64 `json:"shipping_fee"`
	ClearingFee float64 `json:"clearing_fee"`
	TotalFee    float64 `json:"total_fee"`
}

// FreightEstimate is the assembled result of a freight cost estimation.
//
// Fee is expressed in the lane's pricing currency, FeeConverted in the
// destination currency. When both currencies match, ExchangeRate is 1 and the
// two breakdowns are equal.
type FreightEstimate struct {
	Origin              Location
	Destination         Location
	Method              ShippingMethod
	Metric              Metric
	BaseCurrency        string
	DestinationCurrency string
	ExchangeRate        float64
	ShippingFee         float64
	ClearingFee         float64
	EstimatedDays       *int
	Size                *float64
	Fee                 FeeBreakdown
	FeeConverted        FeeBreakdown
}
