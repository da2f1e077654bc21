package surface

import (
	"context"
	"exposure/pkg/domain"
	"exposure/pkg/logger"
	"exposure/pkg/probe"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Options tune the wordlist probing stage.
type Options struct {
	SubdomainTimeout      time.Duration
	EndpointTimeout       time.Duration
	SubdomainMaxRedirects int
	EndpointMaxRedirects  int
	// Concurrency bounds the number of in-flight probes per stage. Values
	// below 1 probe sequentially.
	Concurrency int
	// Prefixes and Paths default to SubdomainPrefixes and EndpointPaths.
	Prefixes []string
	Paths    []string
}

// DefaultOptions mirror the probe timeouts and redirect limits used in
// production.
func DefaultOptions() Options {
	return Options{
		SubdomainTimeout:      5 * time.Second,
		EndpointTimeout:       10 * time.Second,
		SubdomainMaxRedirects: 5,
		EndpointMaxRedirects:  3,
		Concurrency:           8,
	}
}

// Discoverer enumerates subdomains and endpoints by probing wordlists. It holds
// only configuration and is safe for concurrent use.
type Discoverer struct {
	prober probe.Prober
	opts   Options
	now    func() time.Time
}

// NewDiscoverer constructs a Discoverer probing through prober.
func NewDiscoverer(prober probe.Prober, opts Options) *Discoverer {
	if len(opts.Prefixes) == 0 {
		opts.Prefixes = SubdomainPrefixes
	}
	if len(opts.Paths) == 0 {
		opts.Paths = EndpointPaths
	}
	if opts.Concurrency < 1 {
		opts.Concurrency = 1
	}

	return &Discoverer{prober: prober, opts: opts, now: time.Now}
}

// Subdomains probes every prefix of the wordlist under target and returns the
// reachable ones in wordlist order. Each candidate is tried over http and,
// only when that probe fails to connect, over https. A host is reachable when
// it answers with a status below 500. Unreachable candidates are skipped.
func (d *Discoverer) Subdomains(ctx context.Context, target string) ([]domain.DiscoveredSubdomain, error) {
	ctx = logger.Named(ctx, "discovery")

	found := make([]*domain.DiscoveredSubdomain, len(d.opts.Prefixes))
	d.fanOut(ctx, len(d.opts.Prefixes), func(i int) {
		host := strings.ToLower(d.opts.Prefixes[i] + "." + target)
		found[i] = d.probeSubdomain(ctx, host)
	})
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("subdomain discovery interrupted: %w", err)
	}

	return compact(found), nil
}

func (d *Discoverer) probeSubdomain(ctx context.Context, host string) *domain.DiscoveredSubdomain {
	for _, proto := range []domain.Protocol{domain.ProtocolHTTP, domain.ProtocolHTTPS} {
		res, err := d.prober.Probe(ctx, probe.Request{
			URL:          string(proto) + "://" + host,
			Method:       http.MethodGet,
			Timeout:      d.opts.SubdomainTimeout,
			MaxRedirects: d.opts.SubdomainMaxRedirects,
		})
		if err != nil {
			logger.Debug(ctx, "subdomain probe failed", zap.String("subdomain", host),
				zap.String("protocol", string(proto)), zap.Error(err))

			continue
		}
		if res.StatusCode >= http.StatusInternalServerError {
			return nil
		}

		return &domain.DiscoveredSubdomain{
			Subdomain:  host,
			Protocol:   proto,
			StatusCode: res.StatusCode,
			FirstSeen:  d.now().UTC(),
		}
	}

	return nil
}

// Endpoints probes every wordlist path on subdomain over https, then over
// http, and returns the endpoints that answered with a status below 500 other
// than 404. The only error is the context ending mid-run.
func (d *Discoverer) Endpoints(ctx context.Context, subdomain string) ([]domain.DiscoveredEndpoint, error) {
	ctx = logger.WithFields(logger.Named(ctx, "discovery"), zap.String("subdomain", subdomain))

	paths := d.opts.Paths
	found := make([]*domain.DiscoveredEndpoint, len(endpointProtocols)*len(paths))
	d.fanOut(ctx, len(found), func(i int) {
		proto, path := endpointProtocols[i/len(paths)], paths[i%len(paths)]
		found[i] = d.probeEndpoint(ctx, proto, subdomain, path)
	})
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("endpoint discovery interrupted for %s: %w", subdomain, err)
	}

	return compact(found), nil
}

func (d *Discoverer) probeEndpoint(ctx context.Context, proto, subdomain, path string) *domain.DiscoveredEndpoint {
	url := proto + "://" + subdomain + path
	res, err := d.prober.Probe(ctx, probe.Request{
		URL:          url,
		Method:       http.MethodGet,
		Timeout:      d.opts.EndpointTimeout,
		MaxRedirects: d.opts.EndpointMaxRedirects,
	})
	if err != nil {
		logger.Debug(ctx, "endpoint probe failed", zap.String("url", url), zap.Error(err))

		return nil
	}
	if res.StatusCode >= http.StatusInternalServerError || res.StatusCode == http.StatusNotFound {
		return nil
	}

	headers := make(map[string]string, len(recordedHeaders))
	for _, h := range recordedHeaders {
		if v := res.Header(h); v != "" {
			headers[h] = v
		}
	}

	return &domain.DiscoveredEndpoint{
		URL:          url,
		Method:       http.MethodGet,
		Subdomain:    subdomain,
		Path:         path,
		StatusCode:   res.StatusCode,
		ContentType:  res.ContentType,
		IsPublic:     res.StatusCode < http.StatusBadRequest,
		RequiresAuth: res.StatusCode == http.StatusUnauthorized || res.StatusCode == http.StatusForbidden,
		Headers:      headers,
		LastChecked:  d.now().UTC(),
	}
}

// fanOut runs fn for every index in [0, n) on at most Concurrency goroutines.
// Each fn writes only its own index, so callers collect results into a
// pre-sized slice and keep source order. Indexes not yet started when ctx ends
// are skipped.
func (d *Discoverer) fanOut(ctx context.Context, n int, fn func(i int)) {
	g := new(errgroup.Group)
	g.SetLimit(d.opts.Concurrency)
	for i := range n {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			fn(i)

			return nil
		})
	}
	_ = g.Wait()
}

func compact[T any](in []*T) []T {
	out := make([]T, 0, len(in))
	for _, v := range in {
		if v != nil {
			out = append(out, *v)
		}
	}

	return out
}
