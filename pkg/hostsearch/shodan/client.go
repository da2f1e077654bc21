// Package shodan provides a hostsearch.Client implementation backed by the
// Shodan host search API.
package shodan

import (
	"context"
	"encoding/json"
	"exposure/pkg/hostsearch"
	"exposure/pkg/serrors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is the public Shodan API root.
const DefaultBaseURL = "https://api.shodan.io"

// Client talks to the Shodan REST API and fulfills the hostsearch.Client
// interface. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client // httpClient performs HTTP requests to Shodan
	baseURL    string       // baseURL is the API root without a trailing slash
	apiKey     string       // apiKey is sent as the key query parameter
}

// match mirrors the fields of a Shodan banner we copy onto a host.
type match struct {
	IPStr     string   `json:"ip_str"`
	Port      int      `json:"port"`
	Ports     []int    `json:"ports"`
	Tags      []string `json:"tags"`
	ISP       string   `json:"isp"`
	Org       string   `json:"org"`
	Timestamp string   `json:"timestamp"`
	Location  struct {
		CountryName string `json:"country_name"`
		City        string `json:"city"`
	} `json:"location"`
}

// SearchHostname runs a hostname: query against /shodan/host/search.
func (c *Client) SearchHostname(ctx context.Context, hostname string) ([]hostsearch.Host, error) {
	// https://developer.shodan.io/api
	q := url.Values{}
	q.Set("key", c.apiKey)
	q.Set("query", "hostname:"+hostname)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/shodan/host/search?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not send request")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("could not read response body: %w", err)
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, serrors.With(serrors.ErrRateLimited, "rate limited: %s", strings.TrimSpace(string(b)))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, serrors.With(serrors.ErrUnavailable, "host search failed: %s", strings.TrimSpace(string(b)))
	}

	var rs struct {
		Matches []match `json:"matches"`
	}
	if err := json.Unmarshal(b, &rs); err != nil {
		return nil, fmt.Errorf("could not decode response: %w", err)
	}

	out := make([]hostsearch.Host, 0, len(rs.Matches))
	for _, m := range rs.Matches {
		ports := m.Ports
		if len(ports) == 0 && m.Port != 0 {
			ports = []int{m.Port}
		}
		out = append(out, hostsearch.Host{
			IP:         m.IPStr,
			Ports:      ports,
			Tags:       m.Tags,
			Country:    m.Location.CountryName,
			City:       m.Location.City,
			ISP:        m.ISP,
			Org:        m.Org,
			LastUpdate: m.Timestamp,
		})
	}

	return out, nil
}

// Ensure Client conforms to the hostsearch.Client interface at compile time.
var _ hostsearch.Client = (*Client)(nil)

// New constructs a Client that uses the provided http.Client and API key.
// An empty baseURL selects DefaultBaseURL.
func New(httpClient *http.Client, baseURL, apiKey string) *Client {
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
	}
}
