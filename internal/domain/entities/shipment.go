package entities

import "time"

// Receiver holds the delivery contact captured on a shipment.
type Receiver struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`
	Country string `json:"country,omitempty"`
}

// ShipmentEvent records one status change of a shipment.
type ShipmentEvent struct {
	ID        string            `json:"id"`
	Status    string            `json:"status"`
	Message   string            `json:"message"`
	Location  *ShipmentLocation `json:"location,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
}

// Shipment is a tracked consignment.
//
// Exactly one of the delivery modes applies:
//   - delivery: receiver address fields are set, PickupCenter is nil
//   - pickup:   PickupCenter is set, receiver address fields are cleared
type Shipment struct {
	TrackingCode string            `json:"tracking_code"`
	Origin       Location          `json:"origin"`
	Destination  Location          `json:"destination"`
	IsPickup     bool              `json:"is_pickup"`
	Receiver     Receiver          `json:"receiver"`
	PickupCenter *ShipmentLocation `json:"pickup_center,omitempty"`
	Events       []ShipmentEvent   `json:"events"`
	CreatedAt    time.Time         `json:"created_at"`
}

// CurrentEvent returns the most recent event, or nil for a fresh shipment.
// Events are kept newest first.
func (s Shipment) CurrentEvent() *ShipmentEvent {
	if len(s.Events) == 0 {
		return nil
	}
	return &s.Events[0]
}
