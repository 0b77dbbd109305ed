package request

// ReceiverRequest is the delivery contact block of a new shipment.
type ReceiverRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Email   string `json:"email"`
	Address string `json:"address"`
	City    string `json:"city"`
	Country string `json:"country"`
}

// ShipmentRequest registers a new shipment. For pickup shipments
// pickup_center is required; for delivery shipments the receiver address
// fields are.
type ShipmentRequest struct {
	Origin       string          `json:"origin" binding:"required"`
	Destination  string          `json:"destination" binding:"required"`
	IsPickup     bool            `json:"is_pickup"`
	PickupCenter string          `json:"pickup_center"`
	Receiver     ReceiverRequest `json:"receiver" binding:"required"`
}

// ShipmentEventRequest records a status change for a shipment.
type ShipmentEventRequest struct {
	Status   string `json:"status" binding:"required"`
	Message  string `json:"message"`
	Location string `json:"location"`
}
