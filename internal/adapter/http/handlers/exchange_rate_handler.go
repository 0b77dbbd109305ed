package handlers

import (
	"log"
	"net/http"

	request "trendy_logistics/internal/adapter/http/dto/request"
	response "trendy_logistics/internal/adapter/http/dto/response"
	"trendy_logistics/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ExchangeRateHandler handles HTTP requests for currency conversion.

type ExchangeRateHandler struct {
	usecase usecase.IExchangeRateUseCase
}

func NewExchangeRateHandler(uc usecase.IExchangeRateUseCase) *ExchangeRateHandler {
	return &ExchangeRateHandler{usecase: uc}
}

// Convert converts an amount between two currencies using the stored rate
// for the pair, falling back to the reciprocal of the inverse pair.
func (h *ExchangeRateHandler) Convert(c *gin.Context) {
	var query request.ConvertQuery
	_ = c.ShouldBindQuery(&query)
	log.Printf("[exchange][handler] convert start from=%s to=%s amount=%s", query.From, query.To, query.Amount)

	conversion, err := h.usecase.Convert(c.Request.Context(), query.From, query.To, query.Amount)
	if err != nil {
		log.Printf("[exchange][handler] convert failed from=%s to=%s err=%v", query.From, query.To, err)
		appErr := mapUseCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[exchange][handler] convert success from=%s to=%s rate=%v inverted=%v", query.From, query.To, conversion.Rate, conversion.Inverted)

	c.JSON(http.StatusOK, response.FromConversion(conversion))
}
