package interfaces

import "context"

// INotificationGateway abstracts the external transactional messaging
// provider (e.g. Brevo). Rendering happens in the usecases; the gateway only
// delivers final content.
type INotificationGateway interface {
	SendSMS(ctx context.Context, phone, content string) error
	SendEmail(ctx context.Context, email, name, subject, htmlContent string) error
}
