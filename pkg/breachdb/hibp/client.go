// Package hibp provides a breachdb.Client implementation backed by the
// Have I Been Pwned v3 API.
package hibp

import (
	"context"
	"encoding/json"
	"exposure/pkg/breachdb"
	"exposure/pkg/domain"
	"exposure/pkg/serrors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// DefaultBaseURL is the public HIBP v3 API root.
const DefaultBaseURL = "https://haveibeenpwned.com/api/v3"

// Client talks to the HIBP REST API and fulfills the breachdb.Client
// interface. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client // httpClient performs HTTP requests to HIBP
	baseURL    string       // baseURL is the API root without a trailing slash
	apiKey     string       // apiKey is sent in the hibp-api-key header
	userAgent  string       // userAgent is required by HIBP on every request
}

// ParseRetryAfter converts a Retry-After header into a back-off duration. The
// result is never shorter than breachdb.MinRetryAfter.
func ParseRetryAfter(h http.Header) time.Duration {
	after := breachdb.MinRetryAfter
	v := strings.TrimSpace(h.Get("Retry-After"))
	if v == "" {
		return after
	}
	if secs, err := strconv.Atoi(v); err == nil {
		if d := time.Duration(secs) * time.Second; d > after {
			return d
		}

		return after
	}
	if at, err := http.ParseTime(v); err == nil {
		if d := time.Until(at); d > after {
			return d
		}
	}

	return after
}

// BreachedAccount returns the breaches the email appears in. A 404 from HIBP
// means the account is clean and yields an empty slice.
func (c *Client) BreachedAccount(ctx context.Context, email string) ([]domain.BreachRecord, error) {
	// https://haveibeenpwned.com/API/v3#BreachesForAccount
	b, status, err := c.get(ctx, "/breachedaccount/"+url.PathEscape(email))
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return []domain.BreachRecord{}, nil
	}

	var out []domain.BreachRecord
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not decode breached account response")
	}
	if out == nil {
		out = []domain.BreachRecord{}
	}

	return out, nil
}

// Breach fetches the detail record of a single breach.
func (c *Client) Breach(ctx context.Context, name string) (*domain.BreachRecord, error) {
	// https://haveibeenpwned.com/API/v3#SingleBreach
	b, status, err := c.get(ctx, "/breach/"+url.PathEscape(name))
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, serrors.With(serrors.ErrNotFound, "breach %q not found", name)
	}

	var out domain.BreachRecord
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not decode breach response")
	}
	// HIBP answers 200 with an empty body for unknown names.
	if out.Name == "" {
		return nil, serrors.With(serrors.ErrNotFound, "breach %q not found", name)
	}

	return &out, nil
}

// get performs an authenticated GET and returns the body for 2xx and 404
// responses. Every other outcome is mapped to a semantic error.
func (c *Client) get(ctx context.Context, path string) ([]byte, int, error) {
	if c.apiKey == "" {
		return nil, 0, serrors.With(serrors.ErrUnavailable, "HIBP API key not configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, 0, serrors.Wrap(serrors.ErrInternal, err, "could not create request")
	}
	req.Header.Set("hibp-api-key", c.apiKey)
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, serrors.Wrap(serrors.ErrUnavailable, err, "could not send request")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, serrors.Wrap(serrors.ErrUnavailable, err, "could not read response body")
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, resp.StatusCode, nil
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, resp.StatusCode, serrors.Wrap(serrors.ErrRateLimited,
			&breachdb.RetryAfterError{After: ParseRetryAfter(resp.Header)},
			"rate limited: %s", strings.TrimSpace(string(b)))
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, resp.StatusCode, serrors.With(serrors.ErrUnavailable,
			"HIBP request failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	return b, resp.StatusCode, nil
}

// Ensure Client conforms to the breachdb.Client interface at compile time.
var _ breachdb.Client = (*Client)(nil)

// New constructs a Client that uses the provided http.Client and API key.
// An empty baseURL selects DefaultBaseURL.
func New(httpClient *http.Client, baseURL, apiKey, userAgent string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		userAgent:  userAgent,
	}
}
