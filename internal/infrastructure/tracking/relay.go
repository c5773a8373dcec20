package tracking

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// maxRelayResponseSize limits the response body size to prevent memory
// exhaustion
const maxRelayResponseSize = 1 * 1024 * 1024

// RelayConfig holds the server-side conversion relay settings
type RelayConfig struct {
	// Endpoint is the full purchase-report URL
	Endpoint string
	// AccessToken is sent as a bearer token when set
	AccessToken string
	// TimeoutSeconds bounds each relay request
	TimeoutSeconds int
}

// Validate checks the relay configuration
func (c *RelayConfig) Validate() error {
	if c.Endpoint == "" {
		return fmt.Errorf("relay endpoint is required")
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = 10
	}
	return nil
}

// RelayClient posts purchase reports to the server-side conversion
// relay over HTTP
type RelayClient struct {
	config     *RelayConfig
	httpClient *http.Client
}

// NewRelayClient creates a relay client with the given configuration
func NewRelayClient(config *RelayConfig) (*RelayClient, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &RelayClient{
		config: config,
		httpClient: &http.Client{
			Timeout: time.Duration(config.TimeoutSeconds) * time.Second,
		},
	}, nil
}

// SendPurchase posts the payload to the relay endpoint. A non-2xx
// response is an error; the response body is otherwise discarded.
func (c *RelayClient) SendPurchase(ctx context.Context, payload RelayPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal relay payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.Endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create relay request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.config.AccessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.config.AccessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send relay request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxRelayResponseSize))
		return fmt.Errorf("relay returned status %d: %s", resp.StatusCode, string(msg))
	}
	return nil
}
