package handlers

import (
	"log"
	"net/http"

	request "trendy_logistics/internal/adapter/http/dto/request"
	response "trendy_logistics/internal/adapter/http/dto/response"
	"trendy_logistics/internal/usecase"
	"trendy_logistics/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidFreightRatePayload = pkg.NewDomainErrorSimple("INVALID_FREIGHT_RATE_INPUT", "Invalid freight rate payload", http.StatusBadRequest)
)

// FreightRateHandler handles HTTP requests for freight estimation and
// freight-rate management.

type FreightRateHandler struct {
	estimate usecase.IEstimateUseCase
	rates    usecase.IFreightRateUseCase
}

func NewFreightRateHandler(estimate usecase.IEstimateUseCase, rates usecase.IFreightRateUseCase) *FreightRateHandler {
	return &FreightRateHandler{estimate: estimate, rates: rates}
}

// Estimate resolves the newest priced lane for the requested dimensions and
// returns the fee breakdown in both the pricing and destination currencies.
func (h *FreightRateHandler) Estimate(c *gin.Context) {
	var query request.EstimateQuery
	_ = c.ShouldBindQuery(&query)
	log.Printf("[freight][handler] estimate start from=%s to=%s method=%s metric=%s", query.From, query.To, query.Method, query.Metric)

	estimate, err := h.estimate.EstimateFreight(c.Request.Context(), usecase.EstimateParams{
		From:   query.From,
		To:     query.To,
		Method: query.Method,
		Metric: query.Metric,
		Size:   query.Size,
	})
	if err != nil {
		log.Printf("[freight][handler] estimate failed from=%s to=%s err=%v", query.From, query.To, err)
		appErr := mapUseCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[freight][handler] estimate success from=%s to=%s total=%v", query.From, query.To, estimate.Fee.TotalFee)

	c.JSON(http.StatusOK, response.FromFreightEstimate(estimate))
}

// Create registers a single freight rate; the lane code is derived from the
// four relation codes and must be unique.
func (h *FreightRateHandler) Create(c *gin.Context) {
	var payload request.FreightRateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFreightRatePayload.HTTPStatus, errInvalidFreightRatePayload.ToHTTPError())
		return
	}
	log.Printf("[freight][handler] create start origin=%s destination=%s method=%s metric=%s", payload.Origin, payload.Destination, payload.Method, payload.Metric)

	created, err := h.rates.Create(c.Request.Context(), toFreightRateInput(payload))
	if err != nil {
		log.Printf("[freight][handler] create failed origin=%s destination=%s err=%v", payload.Origin, payload.Destination, err)
		appErr := mapUseCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[freight][handler] create success id=%s code=%s", created.ID, created.Code)

	c.JSON(http.StatusCreated, response.FromFreightRate(created))
}

// BulkCreate registers a batch of freight rates atomically: the first
// invalid row aborts the whole batch.
func (h *FreightRateHandler) BulkCreate(c *gin.Context) {
	var payload request.BulkFreightRateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFreightRatePayload.HTTPStatus, errInvalidFreightRatePayload.ToHTTPError())
		return
	}
	log.Printf("[freight][handler] bulk-create start rows=%d", len(payload.Rates))

	inputs := make([]usecase.FreightRateInput, 0, len(payload.Rates))
	for _, r := range payload.Rates {
		inputs = append(inputs, toFreightRateInput(r))
	}

	created, err := h.rates.BulkCreate(c.Request.Context(), inputs)
	if err != nil {
		log.Printf("[freight][handler] bulk-create failed rows=%d err=%v", len(payload.Rates), err)
		appErr := mapUseCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[freight][handler] bulk-create success created=%d", len(created))

	c.JSON(http.StatusCreated, response.FromFreightRates(created))
}

func toFreightRateInput(r request.FreightRateRequest) usecase.FreightRateInput {
	return usecase.FreightRateInput{
		Origin:        r.Origin,
		Destination:   r.Destination,
		Method:        r.Method,
		Metric:        r.Metric,
		ShippingFee:   r.ShippingFee,
		ClearingFee:   r.ClearingFee,
		CurrencyCode:  r.Currency,
		CurrencyName:  r.CurrencyName,
		PerUnit:       r.PerUnit,
		EstimatedDays: r.EstimatedDays,
	}
}
