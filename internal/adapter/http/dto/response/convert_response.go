package response

import "trendy_logistics/internal/domain/entities"

type CurrencyResponse struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// ConvertedAmountResponse carries both the display value and the
// full-precision value of a converted amount. Consumers chaining
// conversions must use Full.
type ConvertedAmountResponse struct {
	Round float64 `json:"round"`
	Full  float64 `json:"full"`
}

type ConvertResponse struct {
	From      CurrencyResponse        `json:"from"`
	To        CurrencyResponse        `json:"to"`
	Rate      float64                 `json:"rate"`
	Amount    float64                 `json:"amount"`
	Converted ConvertedAmountResponse `json:"converted"`
	Inverted  bool                    `json:"inverted"`
}

func FromConversion(c entities.Conversion) ConvertResponse {
	return ConvertResponse{
		From:      CurrencyResponse{Code: c.From.Code, Name: c.From.Name},
		To:        CurrencyResponse{Code: c.To.Code, Name: c.To.Name},
		Rate:      c.Rate,
		Amount:    c.Amount,
		Converted: ConvertedAmountResponse{Round: c.ConvertedRound, Full: c.ConvertedFull},
		Inverted:  c.Inverted,
	}
}
