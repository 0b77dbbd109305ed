package response

import (
	"time"

	"trendy_logistics/internal/domain/entities"
)

type TrackPlaceResponse struct {
	City    string `json:"city"`
	Country string `json:"country"`
}

type TrackLocationResponse struct {
	Name    string `json:"name"`
	City    string `json:"city"`
	Country string `json:"country"`
	Type    string `json:"type"`
}

type ReceiverResponse struct {
	Address string `json:"address"`
	City    string `json:"city"`
	Country string `json:"country"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

type TrackEventResponse struct {
	Progress  string                 `json:"progress"`
	Location  *TrackLocationResponse `json:"location"`
	Message   string                 `json:"message"`
	Timestamp time.Time              `json:"timestamp"`
}

// TrackResponse is the public tracking projection: the most recent event
// supplies the top-level progress and location, the full history follows
// newest first.
type TrackResponse struct {
	TrackingCode string                 `json:"tracking_code"`
	Origin       TrackPlaceResponse     `json:"origin"`
	Destination  TrackPlaceResponse     `json:"destination"`
	IsPickup     bool                   `json:"is_pickup"`
	Receiver     ReceiverResponse       `json:"receiver"`
	PickupCenter *TrackLocationResponse `json:"pickup_center"`
	Progress     string                 `json:"progress"`
	Location     *TrackLocationResponse `json:"location"`
	Events       []TrackEventResponse   `json:"events"`
}

func FromShipmentTrack(s entities.Shipment) TrackResponse {
	out := TrackResponse{
		TrackingCode: s.TrackingCode,
		Origin:       TrackPlaceResponse{City: s.Origin.City, Country: s.Origin.Country},
		Destination:  TrackPlaceResponse{City: s.Destination.City, Country: s.Destination.Country},
		IsPickup:     s.IsPickup,
		Receiver: ReceiverResponse{
			Address: s.Receiver.Address,
			City:    s.Receiver.City,
			Country: s.Receiver.Country,
			Name:    s.Receiver.Name,
			Phone:   s.Receiver.Phone,
			Email:   s.Receiver.Email,
		},
		PickupCenter: fromShipmentLocation(s.PickupCenter),
		Events:       make([]TrackEventResponse, 0, len(s.Events)),
	}

	if current := s.CurrentEvent(); current != nil {
		out.Progress = current.Status
		out.Location = fromShipmentLocation(current.Location)
	}

	for _, ev := range s.Events {
		out.Events = append(out.Events, TrackEventResponse{
			Progress:  ev.Status,
			Location:  fromShipmentLocation(ev.Location),
			Message:   ev.Message,
			Timestamp: ev.Timestamp,
		})
	}
	return out
}

// ShipmentResponse is the full aggregate returned by the management
// endpoints (create shipment, record event).
type ShipmentResponse struct {
	TrackingCode string                 `json:"tracking_code"`
	Origin       PlaceResponse          `json:"origin"`
	Destination  PlaceResponse          `json:"destination"`
	IsPickup     bool                   `json:"is_pickup"`
	Receiver     ReceiverResponse       `json:"receiver"`
	PickupCenter *TrackLocationResponse `json:"pickup_center"`
	Events       []TrackEventResponse   `json:"events"`
	CreatedAt    time.Time              `json:"created_at"`
}

func FromShipment(s entities.Shipment) ShipmentResponse {
	out := ShipmentResponse{
		TrackingCode: s.TrackingCode,
		Origin:       PlaceResponse{Code: s.Origin.Code, City: s.Origin.City, Country: s.Origin.Country},
		Destination:  PlaceResponse{Code: s.Destination.Code, City: s.Destination.City, Country: s.Destination.Country},
		IsPickup:     s.IsPickup,
		Receiver: ReceiverResponse{
			Address: s.Receiver.Address,
			City:    s.Receiver.City,
			Country: s.Receiver.Country,
			Name:    s.Receiver.Name,
			Phone:   s.Receiver.Phone,
			Email:   s.Receiver.Email,
		},
		PickupCenter: fromShipmentLocation(s.PickupCenter),
		Events:       make([]TrackEventResponse, 0, len(s.Events)),
		CreatedAt:    s.CreatedAt,
	}
	for _, ev := range s.Events {
		out.Events = append(out.Events, TrackEventResponse{
			Progress:  ev.Status,
			Location:  fromShipmentLocation(ev.Location),
			Message:   ev.Message,
			Timestamp: ev.Timestamp,
		})
	}
	return out
}

func fromShipmentLocation(loc *entities.ShipmentLocation) *TrackLocationResponse {
	if loc == nil {
		return nil
	}
	return &TrackLocationResponse{Name: loc.Name, City: loc.City, Country: loc.Country, Type: loc.Type}
}
