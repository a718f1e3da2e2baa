package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// WebhookSender posts the form as JSON to a form service endpoint.
type WebhookSender struct {
	url    string
	client *http.Client
}

// NewWebhookSender returns a sender that POSTs to url.
func NewWebhookSender(url string) *WebhookSender {
	return &WebhookSender{
		url: url,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Send POSTs the form. Any non-2xx response is a failure.
func (w *WebhookSender) Send(ctx context.Context, form Form) error {
	if w.url == "" {
		return fmt.Errorf("webhook url: %w", ErrNotConfigured)
	}

	payload, err := json.Marshal(form)
	if err != nil {
		return fmt.Errorf("encoding form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("creating webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}
