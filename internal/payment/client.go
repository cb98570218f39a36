package payment

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Error is the tagged gateway failure. StatusCode is the gateway's HTTP
// status when the request reached it; Messages are the gateway's own error
// strings, safe to surface to callers.
type Error struct {
	StatusCode int
	Messages   []string
	Err        error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("payment: request failed: %v", e.Err)
	}
	return fmt.Sprintf("payment: gateway returned %d: %s", e.StatusCode, strings.Join(e.Messages, "; "))
}

func (e *Error) Unwrap() error { return e.Err }

// Client talks to the Midtrans Snap API. Small surface, one call per
// request, no retries.
type Client struct {
	httpClient *http.Client
	baseURL    string
	serverKey  string
}

func NewClient(baseURL, serverKey string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 20 * time.Second},
		baseURL:    strings.TrimRight(baseURL, "/"),
		serverKey:  serverKey,
	}
}

// CreateTransaction creates a Snap transaction and returns the token plus
// redirect URL.
func (c *Client) CreateTransaction(ctx context.Context, txn *TransactionRequest) (*TransactionResponse, error) {
	body, err := json.Marshal(txn)
	if err != nil {
		return nil, fmt.Errorf("payment: marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/transactions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("payment: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Basic "+basicAuth(c.serverKey))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &Error{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &Error{StatusCode: resp.StatusCode, Messages: readErrorMessages(resp.Body)}
	}

	var out TransactionResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, &Error{StatusCode: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}
	return &out, nil
}

// basicAuth encodes the server key the way Midtrans expects: the key as
// username with an empty password.
func basicAuth(serverKey string) string {
	return base64.StdEncoding.EncodeToString([]byte(serverKey + ":"))
}

// readErrorMessages pulls the gateway's error_messages array out of a
// failure body, falling back to the raw body text.
func readErrorMessages(r io.Reader) []string {
	b, _ := io.ReadAll(io.LimitReader(r, 4096))
	var payload struct {
		ErrorMessages []string `json:"error_messages"`
	}
	if err := json.Unmarshal(b, &payload); err == nil && len(payload.ErrorMessages) > 0 {
		return payload.ErrorMessages
	}
	if s := strings.TrimSpace(string(b)); s != "" {
		return []string{s}
	}
	return nil
}
