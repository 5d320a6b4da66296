package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultAPIBase = "https://api.stripe.com"

// StripeGateway is the HTTP-backed Gateway implementation against the Stripe
// customers API.
type StripeGateway struct {
	BaseURL    string
	SecretKey  string
	HTTPClient *http.Client
}

// NewStripeGateway creates a gateway client with a sane request timeout.
// baseURL may be empty to use the production API; tests point it at a local
// server.
func NewStripeGateway(baseURL, secretKey string) *StripeGateway {
	if baseURL == "" {
		baseURL = defaultAPIBase
	}
	return &StripeGateway{
		BaseURL:   strings.TrimSuffix(baseURL, "/"),
		SecretKey: secretKey,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type customerResponse struct {
	ID string `json:"id"`
}

type errorResponse struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// CreateCustomer POSTs the card token and email to /v1/customers and returns
// the new customer id.
func (g *StripeGateway) CreateCustomer(ctx context.Context, cardToken, email string) (string, error) {
	form := url.Values{}
	form.Set("source", cardToken)
	form.Set("email", email)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		g.BaseURL+"/v1/customers", strings.NewReader(form.Encode()))
	if err != nil {
		return "", &GatewayError{Reason: "failed to create request", Err: err}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+g.SecretKey)

	resp, err := g.HTTPClient.Do(req)
	if err != nil {
		return "", &GatewayError{Reason: "gateway unreachable", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &GatewayError{Reason: "failed to read response", Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		var errResp errorResponse
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error.Message != "" {
			return "", &GatewayError{
				Reason: fmt.Sprintf("%s: %s", errResp.Error.Type, errResp.Error.Message),
			}
		}
		return "", &GatewayError{
			Reason: fmt.Sprintf("unexpected status %d", resp.StatusCode),
		}
	}

	var customer customerResponse
	if err := json.Unmarshal(body, &customer); err != nil {
		return "", &GatewayError{Reason: "failed to decode response", Err: err}
	}
	if customer.ID == "" {
		return "", &GatewayError{Reason: "response missing customer id"}
	}

	return customer.ID, nil
}
