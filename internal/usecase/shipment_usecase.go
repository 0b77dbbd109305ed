package usecase

import (
	"context"
	"fmt"
	"log"
	"math/rand/v2"
	"sort"
	"strconv"
	"strings"
	"time"

	"trendy_logistics/internal/domain/entities"
	"trendy_logistics/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// CreateShipmentParams captures a new consignment. PickupCenter is required
// for pickup shipments; the receiver address block is required for delivery
// shipments.
type CreateShipmentParams struct {
	Origin       string
	Destination  string
	IsPickup     bool
	PickupCenter string
	Receiver     entities.Receiver
}

// AddEventParams records a status change for an existing shipment.
type AddEventParams struct {
	TrackingCode string
	Status       string
	Message      string
	Location     string
}

// IShipmentUseCase exposes shipment registration, status updates and public
// tracking.
type IShipmentUseCase interface {
	Track(ctx context.Context, code string) (entities.Shipment, error)
	Create(ctx context.Context, params CreateShipmentParams) (entities.Shipment, error)
	AddEvent(ctx context.Context, params AddEventParams) (entities.Shipment, error)
}

type ShipmentUseCase struct {
	shipmentRepo interfaces.IShipmentRepository
	refRepo      interfaces.IReferenceRepository
	notifier     INotificationUseCase
}

var _ IShipmentUseCase = (*ShipmentUseCase)(nil)

func NewShipmentUseCase(
	shipmentRepo interfaces.IShipmentRepository,
	refRepo interfaces.IReferenceRepository,
	notifier INotificationUseCase,
) *ShipmentUseCase {
	return &ShipmentUseCase{shipmentRepo: shipmentRepo, refRepo: refRepo, notifier: notifier}
}

// Track returns the shipment for a public tracking code, events newest first.
func (u *ShipmentUseCase) Track(ctx context.Context, code string) (entities.Shipment, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return entities.Shipment{}, newValidationError("Code is required")
	}

	shipment, err := u.shipmentRepo.FindByTrackingCode(ctx, code)
	if err != nil {
		return entities.Shipment{}, err
	}
	if shipment.TrackingCode == "" {
		return entities.Shipment{}, newNotFoundError("Shipment not found")
	}

	sort.SliceStable(shipment.Events, func(i, j int) bool {
		return shipment.Events[i].Timestamp.After(shipment.Events[j].Timestamp)
	})
	return shipment, nil
}

// Create registers a shipment, enforcing the delivery/pickup rules and
// generating a unique tracking code.
func (u *ShipmentUseCase) Create(ctx context.Context, params CreateShipmentParams) (entities.Shipment, error) {
	origin, err := u.refRepo.FindLocation(ctx, strings.TrimSpace(params.Origin))
	if err != nil {
		return entities.Shipment{}, err
	}
	if origin.Code == "" {
		return entities.Shipment{}, newNotFoundError("Origin not found")
	}
	destination, err := u.refRepo.FindLocation(ctx, strings.TrimSpace(params.Destination))
	if err != nil {
		return entities.Shipment{}, err
	}
	if destination.Code == "" {
		return entities.Shipment{}, newNotFoundError("Destination not found")
	}

	receiver := params.Receiver
	var pickupCenter *entities.ShipmentLocation

	if params.IsPickup {
		centerCode := strings.TrimSpace(params.PickupCenter)
		if centerCode == "" {
			return entities.Shipment{}, newValidationError("Pickup center is required for pickup shipments")
		}
		center, err := u.shipmentRepo.FindShipmentLocation(ctx, centerCode)
		if err != nil {
			return entities.Shipment{}, err
		}
		if center.Code == "" {
			return entities.Shipment{}, newNotFoundError("Pickup center not found")
		}
		if center.Type != "delivery" {
			return entities.Shipment{}, newValidationError("Pickup center must be of type 'delivery'")
		}
		pickupCenter = &center
		// Pickup shipments carry no delivery address.
		receiver.Address = ""
		receiver.City = ""
		receiver.Country = ""
	} else {
		if receiver.Address == "" || receiver.City == "" || receiver.Country == "" {
			return entities.Shipment{}, newValidationError("Receiver address, city, and country are required for delivery shipments")
		}
	}

	trackingCode, err := u.newUniqueTrackingCode(ctx)
	if err != nil {
		return entities.Shipment{}, err
	}

	shipment := entities.Shipment{
		TrackingCode: trackingCode,
		Origin:       origin,
		Destination:  destination,
		IsPickup:     params.IsPickup,
		Receiver:     receiver,
		PickupCenter: pickupCenter,
		Events:       []entities.ShipmentEvent{},
		CreatedAt:    time.Now().UTC(),
	}

	created, err := u.shipmentRepo.Create(ctx, shipment)
	if err != nil {
		return entities.Shipment{}, err
	}
	log.Printf("[shipment][create] tracking_code=%s pickup=%t", created.TrackingCode, created.IsPickup)
	return created, nil
}

// AddEvent appends a status-change event to a shipment and notifies the
// receiver best effort.
func (u *ShipmentUseCase) AddEvent(ctx context.Context, params AddEventParams) (entities.Shipment, error) {
	trackingCode := strings.TrimSpace(params.TrackingCode)
	if trackingCode == "" {
		return entities.Shipment{}, newValidationError("Tracking code is required")
	}
	status := strings.TrimSpace(params.Status)
	if status == "" {
		return entities.Shipment{}, newValidationError("Shipment status is required")
	}

	var location *entities.ShipmentLocation
	if code := strings.TrimSpace(params.Location); code != "" {
		loc, err := u.shipmentRepo.FindShipmentLocation(ctx, code)
		if err != nil {
			return entities.Shipment{}, err
		}
		if loc.Code == "" {
			return entities.Shipment{}, newNotFoundError("Shipment location not found")
		}
		location = &loc
	}

	event := entities.ShipmentEvent{
		ID:        uuid.NewString(),
		Status:    status,
		Message:   strings.TrimSpace(params.Message),
		Location:  location,
		Timestamp: time.Now().UTC(),
	}

	updated, err := u.shipmentRepo.AppendEvent(ctx, trackingCode, event)
	if err != nil {
		return entities.Shipment{}, err
	}
	if updated.TrackingCode == "" {
		return entities.Shipment{}, newNotFoundError("Shipment not found")
	}

	if u.notifier != nil {
		u.notifier.NotifyShipmentStatus(ctx, updated, event)
	}
	return updated, nil
}

const trackingCodeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// newUniqueTrackingCode generates TRK-{4 digits}-{4 base36 chars} codes until
// one is free. Collisions are vanishingly rare; the loop is the guarantee.
func (u *ShipmentUseCase) newUniqueTrackingCode(ctx context.Context) (string, error) {
	for {
		code := newTrackingCode()
		existing, err := u.shipmentRepo.FindByTrackingCode(ctx, code)
		if err != nil {
			return "", err
		}
		if existing.TrackingCode == "" {
			return code, nil
		}
	}
}

func newTrackingCode() string {
	stamp := strconv.FormatInt(time.Now().UnixMilli(), 10)
	stamp = stamp[len(stamp)-4:]

	suffix := make([]byte, 4)
	for i := range suffix {
		suffix[i] = trackingCodeAlphabet[rand.IntN(len(trackingCodeAlphabet))]
	}
	return fmt.Sprintf("TRK-%s-%s", stamp, suffix)
}
