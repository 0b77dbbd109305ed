package request

// EstimateQuery mirrors the query string of GET /freight-rates/estimate.
//
// Size stays a string on purpose: it is only required for per-unit lanes,
// which is not known until the lane is resolved, so the usecase owns parsing.
type EstimateQuery struct {
	From   string `form:"from"`
	To     string `form:"to"`
	Method string `form:"method"`
	Metric string `form:"metric"`
	Size   string `form:"size"`
}

// ConvertQuery mirrors the query string of GET /exchange-rates/convert.
type ConvertQuery struct {
	From   string `form:"from"`
	To     string `form:"to"`
	Amount string `form:"amount"`
}
