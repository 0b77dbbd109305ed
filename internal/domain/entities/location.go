package entities

// Location is a shipping origin or destination.
//
// Currency is the local settlement currency and is only required for
// destinations: estimates are converted into it when it differs from the
// pricing currency of the lane.
type Location struct {
	Code     string    `json:"code"`
	City     string    `json:"city"`
	Country  string    `json:"country"`
	Currency *Currency `json:"currency,omitempty"`
}

// ShipmentLocation is a physical waypoint (warehouse, port, delivery center)
// referenced by shipment events and pickup shipments.
type ShipmentLocation struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Country string `json:"country"`
	Type    string `json:"type"`
}
