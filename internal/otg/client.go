// Package otg fetches short-lived bearer tokens from the OAuth token
// generator endpoint resolved per client.
package otg

import (
	"context"
	"io"
	"log"
	"net/http"
	"time"
)

const defaultTimeout = 15 * time.Second

// Client fetches bearer tokens over plain GET. The token endpoint URL is
// resolved per request, so the client carries no base URL.
type Client struct {
	HTTPClient *http.Client
}

// NewClient returns a token client with a sane request timeout.
func NewClient() *Client {
	return &Client{HTTPClient: &http.Client{Timeout: defaultTimeout}}
}

// FetchToken GETs the given token endpoint and returns the response body as
// the token. A non-200 status is logged but the body is still returned; a
// transport failure returns the empty string. Callers treat a blank token as
// unavailable.
func (c *Client) FetchToken(ctx context.Context, url string) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		log.Printf("otg: build token request: %v", err)
		return ""
	}
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		log.Printf("otg: fetch token: %v", err)
		return ""
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("otg: read token response: %v", err)
		return ""
	}
	if resp.StatusCode != http.StatusOK {
		log.Printf("otg: token endpoint returned status=%d", resp.StatusCode)
	}
	return string(body)
}
