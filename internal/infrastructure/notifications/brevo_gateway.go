package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"trendy_logistics/internal/usecase/interfaces"
)

var ErrMissingBrevoAPIKey = errors.New("missing BREVO_API_KEY")
var ErrBrevoGatewayNotConfigured = errors.New("brevo gateway not configured")

const (
	defaultSMSURL   = "https://api.brevo.com/v3/transactionalSMS/sms"
	defaultEmailURL = "https://api.brevo.com/v3/smtp/email"

	defaultSMSSender    = "Trendy"
	defaultSenderName   = "Sinovx Technologies"
	defaultSenderEmail  = "noreply@sinovx.com"
	defaultHTTPTimeout  = 10 * time.Second
	maxLoggedErrorBytes = 512
)

// BrevoGateway delivers transactional SMS and email through the Brevo REST
// API.
//
// Env vars:
//   - BREVO_API_KEY (required unless mock mode)
//   - BREVO_SMS_URL, BREVO_EMAIL_URL (optional overrides for local stubs)
//   - BREVO_SENDER_NAME, BREVO_SENDER_EMAIL, BREVO_SMS_SENDER (optional)
//   - NOTIFICATION_GATEWAY_MOCK / BREVO_MOCK: log-only mode for local runs
type BrevoGateway struct {
	client      *http.Client
	apiKey      string
	smsURL      string
	emailURL    string
	smsSender   string
	senderName  string
	senderEmail string
	mockMode    bool
}

var _ interfaces.INotificationGateway = (*BrevoGateway)(nil)

func NewBrevoGateway(apiKey string) (*BrevoGateway, error) {
	if isNotificationGatewayMockEnabled() {
		log.Printf("[notify][gateway] mock mode enabled")
		return &BrevoGateway{mockMode: true}, nil
	}

	if apiKey == "" {
		log.Printf("[notify][gateway] missing BREVO_API_KEY")
		return nil, ErrMissingBrevoAPIKey
	}

	log.Printf("[notify][gateway] Brevo client initialized")
	return &BrevoGateway{
		client:      &http.Client{Timeout: defaultHTTPTimeout},
		apiKey:      apiKey,
		smsURL:      getenvDefault("BREVO_SMS_URL", defaultSMSURL),
		emailURL:    getenvDefault("BREVO_EMAIL_URL", defaultEmailURL),
		smsSender:   getenvDefault("BREVO_SMS_SENDER", defaultSMSSender),
		senderName:  getenvDefault("BREVO_SENDER_NAME", defaultSenderName),
		senderEmail: getenvDefault("BREVO_SENDER_EMAIL", defaultSenderEmail),
	}, nil
}

func (g *BrevoGateway) SendSMS(ctx context.Context, phone, content string) error {
	if g != nil && g.mockMode {
		log.Printf("[notify][gateway] mock sms to=%s content_len=%d", phone, len(content))
		return nil
	}
	if g == nil || g.client == nil {
		return ErrBrevoGatewayNotConfigured
	}

	payload := map[string]any{
		"sender":    g.smsSender,
		"recipient": phone,
		"content":   content,
		"type":      "transactional",
	}
	log.Printf("[notify][gateway] sms send start to=%s", phone)
	return g.post(ctx, g.smsURL, payload)
}

func (g *BrevoGateway) SendEmail(ctx context.Context, email, name, subject, htmlContent string) error {
	if g != nil && g.mockMode {
		log.Printf("[notify][gateway] mock email to=%s subject=%q", email, subject)
		return nil
	}
	if g == nil || g.client == nil {
		return ErrBrevoGatewayNotConfigured
	}

	payload := map[string]any{
		"sender": map[string]string{
			"name":  g.senderName,
			"email": g.senderEmail,
		},
		"to": []map[string]string{
			{"email": email, "name": name},
		},
		"subject":     subject,
		"htmlContent": htmlContent,
	}
	log.Printf("[notify][gateway] email send start to=%s subject=%q", email, subject)
	return g.post(ctx, g.emailURL, payload)
}

func (g *BrevoGateway) post(ctx context.Context, url string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, maxLoggedErrorBytes))
		log.Printf("[notify][gateway] provider rejected status=%d body=%s", resp.StatusCode, detail)
		return fmt.Errorf("brevo: unexpected status %d", resp.StatusCode)
	}
	return nil
}

func isNotificationGatewayMockEnabled() bool {
	for _, key := range []string{"NOTIFICATION_GATEWAY_MOCK", "BREVO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
