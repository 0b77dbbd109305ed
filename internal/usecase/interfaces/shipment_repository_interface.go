package interfaces

import (
	"context"

	"trendy_logistics/internal/domain/entities"
)

// IShipmentRepository abstracts persistence for Shipment aggregates
// (the shipment record plus its embedded event history).
type IShipmentRepository interface {
	FindByTrackingCode(ctx context.Context, code string) (entities.Shipment, error)
	Create(ctx context.Context, s entities.Shipment) (entities.Shipment, error)
	// AppendEvent stores ev for the shipment and returns the updated
	// aggregate. Zero value when the tracking code is unknown.
	AppendEvent(ctx context.Context, trackingCode string, ev entities.ShipmentEvent) (entities.Shipment, error)
	FindShipmentLocation(ctx context.Context, code string) (entities.ShipmentLocation, error)
}
