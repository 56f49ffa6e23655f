// Package intent talks to the external payment authority. The authority's
// own logic is out of scope: this client validates nothing, exchanges an
// amount for an opaque client handle, and propagates failures untouched.
package intent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/estately/estately/core"
)

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

var _ core.IntentAuthorizer = (*Client)(nil)

func New(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type intentRequest struct {
	ID                 string   `json:"id"`
	Amount             int64    `json:"amount"`
	Currency           string   `json:"currency"`
	PaymentMethodTypes []string `json:"payment_method_types"`
}

type intentResponse struct {
	ClientSecret string `json:"client_secret"`
	Error        string `json:"error,omitempty"`
}

// CreateIntent exchanges a minor-unit amount for the authority's client
// handle. No retries: the caller surfaces any failure as an upstream error.
func (c *Client) CreateIntent(ctx context.Context, amountMinor int64, currency string) (string, error) {
	payload, err := json.Marshal(intentRequest{
		ID:                 uuid.NewString(),
		Amount:             amountMinor,
		Currency:           currency,
		PaymentMethodTypes: []string{"card"},
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode intent request: %w", err)
	}

	endpoint, err := url.JoinPath(c.baseURL, "/v1/payment_intents")
	if err != nil {
		return "", fmt.Errorf("invalid authority URL: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build intent request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("payment authority unreachable: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read authority response: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("payment authority returned %d: %s", resp.StatusCode, body)
	}

	var decoded intentResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return "", fmt.Errorf("failed to decode authority response: %w", err)
	}
	if decoded.ClientSecret == "" {
		return "", fmt.Errorf("payment authority returned no client secret")
	}
	return decoded.ClientSecret, nil
}
