package kiosk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"arc-checkin/internal/checkin"
)

// Client speaks the kiosk wire protocol: one POST endpoint, action field in
// the body, posted as text/plain so browser deployments behind the same
// protocol never trigger a CORS preflight.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{},
	}
}

// Query looks an attendee up by phone number. The raw input is normalized
// before it goes on the wire; empty input after normalization is rejected
// locally without a network call.
func (c *Client) Query(ctx context.Context, phone string) (*checkin.Response, error) {
	normalized := checkin.NormalizePhone(phone)
	if normalized == "" {
		return nil, fmt.Errorf("phone is empty after normalization")
	}
	return c.post(ctx, checkin.Request{Action: checkin.ActionQuery, Phone: normalized})
}

// CheckIn marks the attendee with the given id as present.
func (c *Client) CheckIn(ctx context.Context, id string) (*checkin.Response, error) {
	if id == "" {
		return nil, fmt.Errorf("id is required")
	}
	return c.post(ctx, checkin.Request{Action: checkin.ActionCheckIn, ID: id})
}

func (c *Client) post(ctx context.Context, payload checkin.Request) (*checkin.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/api/v1/checkin", bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "text/plain;charset=utf-8")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 500 {
		return nil, fmt.Errorf("POST /api/v1/checkin failed with status code %d: %s", resp.StatusCode, string(data))
	}

	var out checkin.Response
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &out, nil
}
