package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

// RelayError is a submission the relay answered but refused.
type RelayError struct {
	Status  int
	Message string
}

func (e *RelayError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("form relay rejected submission (HTTP %d)", e.Status)
	}
	return fmt.Sprintf("form relay rejected submission (HTTP %d): %s", e.Status, e.Message)
}

// Relay posts submissions to a hosted form-relay endpoint. The access key
// identifies the site to the relay.
type Relay struct {
	Endpoint  string
	AccessKey string
	Client    *http.Client
}

// NewRelay builds a relay client with the given request timeout.
func NewRelay(endpoint, accessKey string, timeout time.Duration) *Relay {
	return &Relay{
		Endpoint:  endpoint,
		AccessKey: accessKey,
		Client:    &http.Client{Timeout: timeout},
	}
}

type relayResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Send posts s once. There is no retry.
func (r *Relay) Send(ctx context.Context, s Submission) error {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	fields := [][2]string{
		{"access_key", r.AccessKey},
		{"name", s.Name},
		{"email", s.Email},
		{"message", s.Message},
		{"subject", s.Subject()},
	}
	for _, f := range fields {
		if err := w.WriteField(f[0], f[1]); err != nil {
			return fmt.Errorf("encoding form field %s: %w", f[0], err)
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("encoding form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.Endpoint, &body)
	if err != nil {
		return fmt.Errorf("building relay request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Accept", "application/json")

	client := r.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("posting to form relay: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return fmt.Errorf("reading relay response: %w", err)
	}
	var out relayResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return &RelayError{Status: resp.StatusCode, Message: "unreadable response"}
	}
	if !out.Success {
		return &RelayError{Status: resp.StatusCode, Message: out.Message}
	}
	return nil
}
