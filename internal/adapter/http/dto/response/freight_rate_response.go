package response

import (
	"time"

	"trendy_logistics/internal/domain/entities"
)

type FreightRateResponse struct {
	ID            string    `json:"id"`
	Code          string    `json:"code"`
	Origin        string    `json:"origin"`
	Destination   string    `json:"destination"`
	Method        string    `json:"method"`
	Metric        string    `json:"metric"`
	ShippingFee   float64   `json:"shipping_fee"`
	ClearingFee   float64   `json:"clearing_fee"`
	Currency      string    `json:"currency"`
	PerUnit       bool      `json:"per_unit"`
	EstimatedDays *int      `json:"estimated_days"`
	CreatedAt     time.Time `json:"created_at"`
}

func FromFreightRate(r entities.FreightRate) FreightRateResponse {
	return FreightRateResponse{
		ID:            r.ID,
		Code:          r.Code,
		Origin:        r.OriginCode,
		Destination:   r.DestinationCode,
		Method:        r.MethodCode,
		Metric:        r.MetricCode,
		ShippingFee:   r.ShippingFee,
		ClearingFee:   r.ClearingFee,
		Currency:      r.Currency.Code,
		PerUnit:       r.PerUnit,
		EstimatedDays: r.EstimatedDays,
		CreatedAt:     r.CreatedAt,
	}
}

type BulkFreightRateResponse struct {
	Created int                   `json:"created"`
	Rates   []FreightRateResponse `json:"rates"`
}

func FromFreightRates(rates []entities.FreightRate) BulkFreightRateResponse {
	out := BulkFreightRateResponse{Created: len(rates), Rates: make([]FreightRateResponse, 0, len(rates))}
	for _, r := range rates {
		out.Rates = append(out.Rates, FromFreightRate(r))
	}
	return out
}
