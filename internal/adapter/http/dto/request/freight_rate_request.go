package request

// FreightRateRequest creates one priced lane. The lane code is derived
// server-side from the four relation codes and is not accepted as input.
type FreightRateRequest struct {
	Origin        string  `json:"origin" binding:"required"`
	Destination   string  `json:"destination" binding:"required"`
	Method        string  `json:"method" binding:"required"`
	Metric        string  `json:"metric" binding:"required"`
	ShippingFee   float64 `json:"shipping_fee"`
	ClearingFee   float64 `json:"clearing_fee"`
	Currency      string  `json:"currency" binding:"required"`
	CurrencyName  string  `json:"currency_name"`
	PerUnit       bool    `json:"per_unit"`
	EstimatedDays *int    `json:"estimated_days"`
}

// BulkFreightRateRequest is the payload of POST /freight-rates/bulk.
type BulkFreightRateRequest struct {
	Rates []FreightRateRequest `json:"rates" binding:"required"`
}
