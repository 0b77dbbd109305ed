package usecase

import (
	"context"
	"log"
	"regexp"
	"strings"

	"trendy_logistics/internal/domain/entities"
	"trendy_logistics/internal/usecase/interfaces"
)

const shipmentSMSTemplate = `Hello {{name}},
Shipment Status: {{status}}
Shipment Location: {{location}}
Shipment Message: {{message}}
Delivery Type: {{deliveryType}}
Delivery Address: {{deliveryAddress}}

Tracking Code: {{trackingCode}}`

const shipmentEmailTemplate = `
<p>Hello {{name}},</p>
<p>
Your shipment status has been updated:
<ul>
<li><strong>Status:</strong> {{status}}</li>
<li><strong>Location:</strong> {{location}}</li>
<li><strong>Message:</strong> {{message}}</li>
<li><strong>Delivery Type:</strong> {{deliveryType}}</li>
<li><strong>Delivery Address:</strong> {{deliveryAddress}}</li>
</ul>
</p>

<p>Tracking Code: <strong>{{trackingCode}}</strong></p>`

// INotificationUseCase notifies shipment receivers about status changes.
//
// Delivery is best effort: send failures are logged and never propagated, so
// a provider outage cannot fail the status update that triggered it.
type INotificationUseCase interface {
	NotifyShipmentStatus(ctx context.Context, shipment entities.Shipment, event entities.ShipmentEvent)
}

type NotificationUseCase struct {
	gateway interfaces.INotificationGateway
}

var _ INotificationUseCase = (*NotificationUseCase)(nil)

func NewNotificationUseCase(gateway interfaces.INotificationGateway) *NotificationUseCase {
	return &NotificationUseCase{gateway: gateway}
}

func (u *NotificationUseCase) NotifyShipmentStatus(ctx context.Context, shipment entities.Shipment, event entities.ShipmentEvent) {
	if u.gateway == nil {
		log.Printf("[notify][shipment] gateway not configured, skipping tracking_code=%s", shipment.TrackingCode)
		return
	}

	deliveryType := "Delivery"
	deliveryAddress := shipment.Receiver.Address
	if shipment.IsPickup {
		deliveryType = "Pickup"
		if shipment.PickupCenter != nil {
			deliveryAddress = joinNonEmpty(shipment.PickupCenter.Name, shipment.PickupCenter.City, shipment.PickupCenter.Country)
		}
	}

	location := ""
	if event.Location != nil {
		location = joinNonEmpty(event.Location.Name, event.Location.City, event.Location.Country)
	}

	data := map[string]string{
		"name":            shipment.Receiver.Name,
		"status":          event.Status,
		"location":        location,
		"message":         event.Message,
		"deliveryType":    deliveryType,
		"deliveryAddress": deliveryAddress,
		"trackingCode":    shipment.TrackingCode,
	}

	if phone := shipment.Receiver.Phone; phone != "" {
		if err := u.gateway.SendSMS(ctx, phone, renderTemplate(shipmentSMSTemplate, data)); err != nil {
			log.Printf("[notify][shipment] sms failed tracking_code=%s err=%v", shipment.TrackingCode, err)
		}
	}

	if email := shipment.Receiver.Email; email != "" {
		subject := "Shipment Update: " + event.Status
		if err := u.gateway.SendEmail(ctx, email, shipment.Receiver.Name, subject, renderTemplate(shipmentEmailTemplate, data)); err != nil {
			log.Printf("[notify][shipment] email failed tracking_code=%s err=%v", shipment.TrackingCode, err)
		}
	}
}

// renderTemplate substitutes every {{key}} placeholder (whitespace inside the
// braces is tolerated) with its value from data. Unknown placeholders are
// left untouched.
func renderTemplate(template string, data map[string]string) string {
	out := template
	for key, value := range data {
		re := regexp.MustCompile(`\{\{\s*` + regexp.QuoteMeta(key) + `\s*\}\}`)
		out = re.ReplaceAllLiteralString(out, value)
	}
	return out
}

func joinNonEmpty(parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, ", ")
}
