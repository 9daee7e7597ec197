// Package whatsapp provides an HTTP client for a gowa-compatible WhatsApp
// gateway. Only outbound text messages are supported; inbound traffic arrives
// through the webhook module.
package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"staysoft_backend/platform/config"
	"staysoft_backend/platform/logger"
	"staysoft_backend/platform/phone"
)

const requestTimeout = 10 * time.Second

// Client sends messages through the gateway. A nil *Client is valid and drops
// every send, so callers need no special handling when the gateway is not
// configured.
type Client struct {
	baseURL  string
	apiKey   string
	deviceID string
	http     *http.Client
	log      *logger.Logger
}

// New creates a gateway client, or nil when no gateway URL is configured.
func New(cfg config.WhatsAppConfig, log *logger.Logger) *Client {
	if cfg.GetWhatsAppURL() == "" {
		log.Warn("whatsapp gateway not configured, outbound messages disabled")
		return nil
	}
	return &Client{
		baseURL:  cfg.GetWhatsAppURL(),
		apiKey:   cfg.GetWhatsAppKey(),
		deviceID: cfg.GetWhatsAppDeviceID(),
		http:     &http.Client{Timeout: requestTimeout},
		log:      log,
	}
}

type sendMessageRequest struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
	Device  string `json:"device,omitempty"`
}

// SendMessage delivers a text message to a phone number in digit form.
func (c *Client) SendMessage(ctx context.Context, rawPhone, text string) error {
	if c == nil {
		return nil
	}

	digits := phone.NormalizeDigits(rawPhone)
	if digits == "" {
		return fmt.Errorf("send message: empty phone")
	}

	body, err := json.Marshal(sendMessageRequest{
		Phone:   digits,
		Message: text,
		Device:  c.deviceID,
	})
	if err != nil {
		return fmt.Errorf("send message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/send/message", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("send message: gateway returned %d", resp.StatusCode)
	}

	c.log.Info("whatsapp message sent", "phone", digits)
	return nil
}
