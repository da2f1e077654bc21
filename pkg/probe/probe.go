// Package probe issues bounded, timeout-guarded HTTP requests against
// candidate hosts and paths and normalizes the responses.
//
// A probe never fails on an HTTP status code: every status observed within the
// redirect limit is a valid Result. Only connection failures, timeouts, TLS
// failures and redirect loops are errors, all of kind
// serrors.ErrNetworkUnreachable.
package probe

import (
	"context"
	"errors"
	"exposure/pkg/metrics"
	"exposure/pkg/serrors"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// maxDrainBytes bounds how much of a response body is read before closing it.
const maxDrainBytes = 64 << 10

// errTooManyRedirects is reported when a probe exceeds its redirect limit.
var errTooManyRedirects = errors.New("too many redirects")

// Request describes a single probe.
type Request struct {
	// URL is the absolute URL to request.
	URL string
	// Method defaults to GET.
	Method string
	// Timeout bounds the whole exchange including redirects. Zero means no
	// timeout beyond the context.
	Timeout time.Duration
	// MaxRedirects is the number of redirects followed before giving up.
	MaxRedirects int
}

// Result is the normalized outcome of a probe.
type Result struct {
	// URL is the requested URL (not the final URL after redirects).
	URL        string
	StatusCode int
	// Headers holds the final response headers.
	Headers http.Header
	// ContentType is the Content-Type header or "unknown" when absent.
	ContentType string
}

// Header returns the value of a response header, case-insensitively.
func (r Result) Header(name string) string { return r.Headers.Get(name) }

// Prober performs probes.
type Prober interface {
	Probe(ctx context.Context, req Request) (Result, error)
}

// ProberFunc adapts an ordinary function to the Prober interface.
type ProberFunc func(ctx context.Context, req Request) (Result, error)

// Probe calls f(ctx, req).
func (f ProberFunc) Probe(ctx context.Context, req Request) (Result, error) { return f(ctx, req) }

// Client is the net/http backed Prober. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	userAgent  string
	requests   metric.Int64Counter
	duration   metric.Float64Histogram
}

// Option configures a Client.
type Option func(*Client)

// WithMeterProvider records probe counts and latencies on mp.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(c *Client) {
		meter := metrics.Meter(mp)
		c.requests, _ = meter.Int64Counter("probe_requests",
			metric.WithDescription("HTTP probes issued, by outcome"))
		c.duration, _ = meter.Float64Histogram("probe_duration_seconds",
			metric.WithDescription("HTTP probe latency"),
			metric.WithUnit("s"),
			metric.WithExplicitBucketBoundaries(metrics.DefaultBuckets...))
	}
}

// Probe issues req and returns the observed status and headers.
func (c *Client) Probe(ctx context.Context, req Request) (Result, error) {
	if req.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, req.Timeout)
		defer cancel()
	}
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, req.URL, nil)
	if err != nil {
		return Result{}, serrors.Wrap(serrors.ErrBadRequest, err, "could not create probe request")
	}
	if c.userAgent != "" {
		httpReq.Header.Set("User-Agent", c.userAgent)
	}

	// copy the client so the redirect limit is per request
	client := *c.httpClient
	maxRedirects := req.MaxRedirects
	client.CheckRedirect = func(_ *http.Request, via []*http.Request) error {
		if len(via) > maxRedirects {
			return errTooManyRedirects
		}

		return nil
	}

	start := time.Now()
	resp, err := client.Do(httpReq)
	c.record(ctx, start, err)
	if err != nil {
		return Result{}, serrors.Wrap(serrors.ErrNetworkUnreachable, err, "could not probe %s", req.URL)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxDrainBytes))
		_ = resp.Body.Close()
	}()

	contentType := strings.TrimSpace(resp.Header.Get("Content-Type"))
	if contentType == "" {
		contentType = "unknown"
	}

	return Result{
		URL:         req.URL,
		StatusCode:  resp.StatusCode,
		Headers:     resp.Header,
		ContentType: contentType,
	}, nil
}

func (c *Client) record(ctx context.Context, start time.Time, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "unreachable"
	}
	attrs := metric.WithAttributes(attribute.String("outcome", outcome))
	if c.requests != nil {
		c.requests.Add(ctx, 1, attrs)
	}
	if c.duration != nil {
		c.duration.Record(ctx, time.Since(start).Seconds(), attrs)
	}
}

// Ensure Client conforms to the Prober interface at compile time.
var _ Prober = (*Client)(nil)

// New constructs a Client on top of httpClient. A nil httpClient uses a
// fresh http.Client.
func New(httpClient *http.Client, userAgent string, opts ...Option) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	c := &Client{
		httpClient: httpClient,
		userAgent:  userAgent,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}
