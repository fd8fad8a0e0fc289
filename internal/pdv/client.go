// Package pdv calls the personal details validation endpoint that matches a
// person's identity against the national insurance record.
package pdv

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultTimeout = 15 * time.Second

// MatchRequest is the matching payload posted to the validation endpoint.
type MatchRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	DateOfBirth string `json:"dateOfBirth"`
	Nino        string `json:"nino"`
}

// MatchResult is whatever the validation endpoint answered. Any received
// HTTP response counts as a result; only transport failures are errors.
type MatchResult struct {
	StatusCode int
	// Body is the raw response body, persisted as the attempt record text
	// for matched and deceased outcomes.
	Body string
	// Errors carries the per-field mismatch details returned on a failed
	// match. Empty when the endpoint sent no body.
	Errors map[string]string
	// Headers are the response headers; the correlation token is read from
	// them.
	Headers http.Header
}

// Header returns the named response header, or "" when absent.
func (r *MatchResult) Header(name string) string {
	if r.Headers == nil {
		return ""
	}
	return r.Headers.Get(name)
}

// ErrorsJSON serializes the mismatch details for persistence. An absent
// details map serializes as an empty object, not null.
func (r *MatchResult) ErrorsJSON() string {
	if r.Errors == nil {
		return "{}"
	}
	raw, err := json.Marshal(r.Errors)
	if err != nil {
		return "{}"
	}
	return string(raw)
}

// Client posts matching requests. The endpoint URL is resolved per client
// registration, so it is passed per call rather than held on the struct.
type Client struct {
	UserAgent  string
	HTTPClient *http.Client
}

// NewClient returns a matching client identifying itself with the given
// user agent.
func NewClient(userAgent string) *Client {
	return &Client{
		UserAgent:  userAgent,
		HTTPClient: &http.Client{Timeout: defaultTimeout},
	}
}

// Match posts the request to the given endpoint and returns the endpoint's
// answer. The response status is reported as data, not as an error; callers
// interpret it. Returns an error when no response was received or when a
// non-blank response body cannot be decoded.
func (c *Client) Match(ctx context.Context, url string, mr MatchRequest) (*MatchResult, error) {
	raw, err := json.Marshal(mr)
	if err != nil {
		return nil, fmt.Errorf("pdv: encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("pdv: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.UserAgent)
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("pdv: call matching endpoint: %w", err)
	}
	defer resp.Body.Close()

	result := &MatchResult{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("pdv: read matching response: %w", err)
	}
	result.Body = string(body)
	if len(bytes.TrimSpace(body)) > 0 {
		var parsed struct {
			Errors map[string]string `json:"errors"`
		}
		if err := json.Unmarshal(body, &parsed); err != nil {
			return nil, fmt.Errorf("pdv: decode matching response: %w", err)
		}
		result.Errors = parsed.Errors
	}
	return result, nil
}
