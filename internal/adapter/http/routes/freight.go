package routes

import (
	"trendy_logistics/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathFreightRates  = "/freight-rates"
	PathExchangeRates = "/exchange-rates"
)

func addFreightRoutes(rg *gin.RouterGroup, freightHandler *handlers.FreightRateHandler, exchangeHandler *handlers.ExchangeRateHandler) {
	freightRates := rg.Group(PathFreightRates)
	{
		freightRates.GET("/estimate", freightHandler.Estimate)
		freightRates.POST("", freightHandler.Create)
		freightRates.POST("/bulk", freightHandler.BulkCreate)
	}

	exchangeRates := rg.Group(PathExchangeRates)
	{
		exchangeRates.GET("/convert", exchangeHandler.Convert)
	}
}
