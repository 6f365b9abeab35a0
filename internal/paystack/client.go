// Package paystack is a minimal client for the Paystack REST API, covering
// transaction initialization and webhook signature checks.
package paystack

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const DefaultBaseURL = "https://api.paystack.co"

// APIError is a non-2xx answer from Paystack. The raw response body is kept
// so callers can forward the provider's own diagnostics.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("paystack status %d: %s", e.StatusCode, e.Body)
}

type Client struct {
	secret     string
	httpClient *http.Client

	// BaseURL may be overridden in tests.
	BaseURL string
}

// NewClient builds a client. An empty secret leaves the client in demo mode:
// Live() reports false and no request should be sent through it.
func NewClient(secret string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 20 * time.Second}
	}
	return &Client{secret: secret, httpClient: httpClient, BaseURL: DefaultBaseURL}
}

func (c *Client) Live() bool {
	return c.secret != ""
}

type InitializeRequest struct {
	Email     string `json:"email"`
	Amount    int64  `json:"amount"` // minor units (kobo)
	Currency  string `json:"currency"`
	Reference string `json:"reference,omitempty"`
}

// InitializeTransaction calls POST /transaction/initialize and returns the
// provider's response body verbatim. Non-2xx answers become *APIError;
// transport failures are returned wrapped.
func (c *Client) InitializeTransaction(ctx context.Context, in InitializeRequest) ([]byte, error) {
	body, err := json.Marshal(in)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/transaction/initialize", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.secret)
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("paystack request: %w", err)
	}
	defer res.Body.Close()

	respBody, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("paystack response: %w", err)
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, &APIError{StatusCode: res.StatusCode, Body: string(respBody)}
	}
	return respBody, nil
}

// ValidSignature reports whether signature matches the HMAC-SHA512 hex digest
// of body under the configured secret (the x-paystack-signature scheme).
func (c *Client) ValidSignature(body []byte, signature string) bool {
	mac := hmac.New(sha512.New, []byte(c.secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
