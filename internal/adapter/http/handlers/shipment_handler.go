package handlers

import (
	"log"
	"net/http"

	request "trendy_logistics/internal/adapter/http/dto/request"
	response "trendy_logistics/internal/adapter/http/dto/response"
	"trendy_logistics/internal/domain/entities"
	"trendy_logistics/internal/usecase"
	"trendy_logistics/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidShipmentPayload = pkg.NewDomainErrorSimple("INVALID_SHIPMENT_INPUT", "Invalid shipment payload", http.StatusBadRequest)
)

// ShipmentHandler handles HTTP requests for shipment registration, status
// events and public tracking.

type ShipmentHandler struct {
	usecase usecase.IShipmentUseCase
}

func NewShipmentHandler(uc usecase.IShipmentUseCase) *ShipmentHandler {
	return &ShipmentHandler{usecase: uc}
}

// Track returns the public tracking view for a tracking code.
func (h *ShipmentHandler) Track(c *gin.Context) {
	code := c.Query("code")
	log.Printf("[shipment][handler] track start code=%s", code)

	shipment, err := h.usecase.Track(c.Request.Context(), code)
	if err != nil {
		log.Printf("[shipment][handler] track failed code=%s err=%v", code, err)
		appErr := mapUseCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[shipment][handler] track success code=%s events=%d", shipment.TrackingCode, len(shipment.Events))

	c.JSON(http.StatusOK, response.FromShipmentTrack(shipment))
}

// Create registers a new shipment and assigns its tracking code.
func (h *ShipmentHandler) Create(c *gin.Context) {
	var payload request.ShipmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidShipmentPayload.HTTPStatus, errInvalidShipmentPayload.ToHTTPError())
		return
	}
	log.Printf("[shipment][handler] create start origin=%s destination=%s pickup=%v", payload.Origin, payload.Destination, payload.IsPickup)

	created, err := h.usecase.Create(c.Request.Context(), usecase.CreateShipmentParams{
		Origin:       payload.Origin,
		Destination:  payload.Destination,
		IsPickup:     payload.IsPickup,
		PickupCenter: payload.PickupCenter,
		Receiver: entities.Receiver{
			Name:    payload.Receiver.Name,
			Phone:   payload.Receiver.Phone,
			Email:   payload.Receiver.Email,
			Address: payload.Receiver.Address,
			City:    payload.Receiver.City,
			Country: payload.Receiver.Country,
		},
	})
	if err != nil {
		log.Printf("[shipment][handler] create failed origin=%s destination=%s err=%v", payload.Origin, payload.Destination, err)
		appErr := mapUseCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[shipment][handler] create success tracking_code=%s", created.TrackingCode)

	c.JSON(http.StatusCreated, response.FromShipment(created))
}

// AddEvent records a status event for a shipment and notifies the receiver.
func (h *ShipmentHandler) AddEvent(c *gin.Context) {
	trackingCode := c.Param("tracking_code")
	var payload request.ShipmentEventRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidShipmentPayload.HTTPStatus, errInvalidShipmentPayload.ToHTTPError())
		return
	}
	log.Printf("[shipment][handler] add-event start tracking_code=%s status=%s", trackingCode, payload.Status)

	updated, err := h.usecase.AddEvent(c.Request.Context(), usecase.AddEventParams{
		TrackingCode: trackingCode,
		Status:       payload.Status,
		Message:      payload.Message,
		Location:     payload.Location,
	})
	if err != nil {
		log.Printf("[shipment][handler] add-event failed tracking_code=%s err=%v", trackingCode, err)
		appErr := mapUseCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[shipment][handler] add-event success tracking_code=%s status=%s", updated.TrackingCode, payload.Status)

	c.JSON(http.StatusOK, response.FromShipment(updated))
}
