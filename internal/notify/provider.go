package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// DefaultEndpoint is the EmailJS REST send endpoint.
const DefaultEndpoint = "https://api.emailjs.com/api/v1.0/email/send"

// EmailJSProvider posts messages to the EmailJS REST API.  The three opaque
// identifiers come from the provider dashboard; a single template id serves
// every notification kind.
type EmailJSProvider struct {
	ServiceID  string
	TemplateID string
	PublicKey  string
	Endpoint   string
	Client     *http.Client
}

// NewEmailJSProvider builds a provider with a bounded-timeout HTTP client.
func NewEmailJSProvider(serviceID, templateID, publicKey string) *EmailJSProvider {
	return &EmailJSProvider{
		ServiceID:  serviceID,
		TemplateID: templateID,
		PublicKey:  publicKey,
		Endpoint:   DefaultEndpoint,
		Client:     &http.Client{Timeout: 10 * time.Second},
	}
}

func (p *EmailJSProvider) Kind() string { return "emailjs" }

// Send performs the provider call.  EmailJS expects the recipient and
// subject inside template_params alongside the caller's parameters.
func (p *EmailJSProvider) Send(ctx context.Context, msg Message) error {
	params := make(map[string]any, len(msg.Params)+2)
	for k, v := range msg.Params {
		params[k] = v
	}
	params["to_email"] = msg.To
	params["subject"] = msg.Subject

	body, err := json.Marshal(map[string]any{
		"service_id":      p.ServiceID,
		"template_id":     p.TemplateID,
		"user_id":         p.PublicKey,
		"template_params": params,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.Endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.Client.Do(req)
	if err != nil {
		return fmt.Errorf("emailjs: send failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("emailjs: unexpected status %d: %s", resp.StatusCode, snippet)
	}
	log.Info().Str("to", msg.To).Str("template", string(msg.Template)).Msg("email sent")
	return nil
}

// LogProvider is the safe no-op variant used when the provider credentials
// are absent.  It writes what would have been sent and never fails, so a
// booking flow behaves identically in environments without an email account.
type LogProvider struct{}

func (LogProvider) Kind() string { return "log" }

func (LogProvider) Send(_ context.Context, msg Message) error {
	log.Warn().Msg("email provider not configured, logging instead of sending")
	log.Info().
		Str("to", msg.To).
		Str("subject", msg.Subject).
		Str("template", string(msg.Template)).
		Interface("params", msg.Params).
		Msg("email (not sent)")
	return nil
}
