package routes

import (
	"trendy_logistics/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathShipments = "/shipments"
)

func addShipmentRoutes(rg *gin.RouterGroup, shipmentHandler *handlers.ShipmentHandler) {
	shipments := rg.Group(PathShipments)
	{
		shipments.GET("/track", shipmentHandler.Track)
		shipments.POST("", shipmentHandler.Create)
		shipments.POST("/:tracking_code/events", shipmentHandler.AddEvent)
	}
}
