// Package authclient validates bearer tokens against a remote authentication
// service. It satisfies the same TokenValidator port as the in-process
// authenticator, so the destination service can run in its own process
// without changing any handler.
package authclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/skytrails/travel-platform/internal/core/domain"
)

const defaultTimeout = 3 * time.Second

// Client calls GET <baseURL>/auth/validate with the presented bearer token.
// Any transport failure or unexpected response maps to
// domain.ErrUpstreamUnavailable: the gate treats that as unauthenticated,
// never as a grant.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type validateResponse struct {
	Email     string `json:"email"`
	Role      string `json:"role"`
	IssuedAt  int64  `json:"issued_at"`
	ExpiresAt int64  `json:"expires_at"`
}

type errorEnvelope struct {
	Error string `json:"error"`
}

// Validate implements ports.TokenValidator over HTTP.
func (c *Client) Validate(ctx context.Context, token string) (domain.Claims, error) {
	if token == "" {
		return domain.Claims{}, domain.ErrMissingToken
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/auth/validate", nil)
	if err != nil {
		return domain.Claims{}, fmt.Errorf("authclient: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.Claims{}, domain.ErrUpstreamUnavailable
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var body validateResponse
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			return domain.Claims{}, domain.ErrUpstreamUnavailable
		}
		role, err := domain.ParseRole(body.Role)
		if err != nil {
			return domain.Claims{}, domain.ErrMalformedToken
		}
		return domain.Claims{
			Email:     body.Email,
			Role:      role,
			IssuedAt:  time.Unix(body.IssuedAt, 0).UTC(),
			ExpiresAt: time.Unix(body.ExpiresAt, 0).UTC(),
		}, nil
	case http.StatusUnauthorized:
		var body errorEnvelope
		_ = json.NewDecoder(resp.Body).Decode(&body)
		return domain.Claims{}, rejectionError(body.Error)
	default:
		return domain.Claims{}, domain.ErrUpstreamUnavailable
	}
}

// rejectionError maps the remote error message back onto the token error
// taxonomy so callers see the same sentinel regardless of deployment
// topology. Unrecognised messages stay generic but still deny access.
func rejectionError(msg string) error {
	switch msg {
	case domain.ErrTokenExpired.Error():
		return domain.ErrTokenExpired
	case domain.ErrBadSignature.Error():
		return domain.ErrBadSignature
	case domain.ErrMissingToken.Error():
		return domain.ErrMissingToken
	default:
		return domain.ErrMalformedToken
	}
}
