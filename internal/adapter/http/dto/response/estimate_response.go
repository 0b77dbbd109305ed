package response

import "trendy_logistics/internal/domain/entities"

type PlaceResponse struct {
	Code    string `json:"code"`
	City    string `json:"city"`
	Country string `json:"country"`
}

type MethodResponse struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type MetricResponse struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Unit        string  `json:"unit"`
	Description *string `json:"description"`
}

type FeeResponse struct {
	ShippingFee float64 `json:"shipping_fee"`
	ClearingFee float64 `json:"clearing_fee"`
	TotalFee    float64 `json:"total_fee"`
}

type FreightResponse struct {
	Method              MethodResponse `json:"method"`
	Metric              MetricResponse `json:"metric"`
	BaseCurrency        string         `json:"base_currency"`
	DestinationCurrency string         `json:"destination_currency"`
	ExchangeRate        float64        `json:"exchange_rate"`
	ShippingFee         float64        `json:"shipping_fee"`
	ClearingFee         float64        `json:"clearing_fee"`
	EstimatedDays       *int           `json:"estimated_days"`
}

// EstimateResponse is the body of GET /freight-rates/estimate. Fee is in the
// lane's pricing currency, FeeConverted in the destination currency.
type EstimateResponse struct {
	Origin       PlaceResponse   `json:"origin"`
	Destination  PlaceResponse   `json:"destination"`
	Freight      FreightResponse `json:"freight"`
	Size         *float64        `json:"size,omitempty"`
	Fee          FeeResponse     `json:"fee"`
	FeeConverted FeeResponse     `json:"fee_converted"`
}

func FromFreightEstimate(e entities.FreightEstimate) EstimateResponse {
	var description *string
	if e.Metric.Description != "" {
		description = &e.Metric.Description
	}

	return EstimateResponse{
		Origin:      PlaceResponse{Code: e.Origin.Code, City: e.Origin.City, Country: e.Origin.Country},
		Destination: PlaceResponse{Code: e.Destination.Code, City: e.Destination.City, Country: e.Destination.Country},
		Freight: FreightResponse{
			Method: MethodResponse{Code: e.Method.Code, Name: e.Method.Name},
			Metric: MetricResponse{
				Code:        e.Metric.Code,
				Name:        e.Metric.Name,
				Unit:        e.Metric.Unit,
				Description: description,
			},
			BaseCurrency:        e.BaseCurrency,
			DestinationCurrency: e.DestinationCurrency,
			ExchangeRate:        e.ExchangeRate,
			ShippingFee:         e.ShippingFee,
			ClearingFee:         e.ClearingFee,
			EstimatedDays:       e.EstimatedDays,
		},
		Size:         e.Size,
		Fee:          FeeResponse{ShippingFee: e.Fee.ShippingFee, ClearingFee: e.Fee.ClearingFee, TotalFee: e.Fee.TotalFee},
		FeeConverted: FeeResponse{ShippingFee: e.FeeConverted.ShippingFee, ClearingFee: e.FeeConverted.ClearingFee, TotalFee: e.FeeConverted.TotalFee},
	}
}
