package surface

import (
	"context"
	"exposure/pkg/domain"
	"exposure/pkg/hostsearch"
	"exposure/pkg/logger"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// toolShodan tags errors raised by the enrichment stage.
const toolShodan = "shodan"

// Enricher copies internet-scan data onto discovered subdomains. A nil
// *Enricher, or one without a client, is a no-op.
type Enricher struct {
	client hostsearch.Client
	delay  time.Duration
}

// NewEnricher constructs an Enricher that waits delay between queries. A nil
// client disables enrichment.
func NewEnricher(client hostsearch.Client, delay time.Duration) *Enricher {
	return &Enricher{client: client, delay: delay}
}

// Enabled reports whether Enrich will query the host-search service.
func (e *Enricher) Enabled() bool {
	return e != nil && e.client != nil
}

// Enrich looks up every subdomain by hostname and copies the first match onto
// it in place. Queries are serialized and paced by the configured delay. A
// failed lookup is logged, recorded as a ScanError and skipped.
func (e *Enricher) Enrich(ctx context.Context, subs []domain.DiscoveredSubdomain) (domain.HostSearchToolStats, []domain.ScanError) {
	var stats domain.HostSearchToolStats
	if !e.Enabled() {
		return stats, nil
	}
	ctx = logger.Named(ctx, "enrichment")
	stats.Used = true

	limit := rate.Inf
	if e.delay > 0 {
		limit = rate.Every(e.delay)
	}
	limiter := rate.NewLimiter(limit, 1)

	var errs []domain.ScanError
	for i := range subs {
		sub := &subs[i]
		if err := limiter.Wait(ctx); err != nil {
			errs = append(errs, domain.ScanError{
				Message: fmt.Sprintf("Shodan enrichment interrupted: %v", err),
				Tool:    toolShodan,
			})

			break
		}

		stats.QueriesUsed++
		hosts, err := e.client.SearchHostname(ctx, sub.Subdomain)
		if err != nil {
			logger.Warn(ctx, "shodan lookup failed", zap.String("subdomain", sub.Subdomain), zap.Error(err))
			errs = append(errs, domain.ScanError{
				Message: fmt.Sprintf("Shodan lookup failed for %s: %v", sub.Subdomain, err),
				Tool:    toolShodan,
			})

			continue
		}
		if len(hosts) == 0 {
			continue
		}

		applyHost(sub, hosts[0])
		stats.Results++
	}

	return stats, errs
}

func applyHost(sub *domain.DiscoveredSubdomain, h hostsearch.Host) {
	sub.IPAddress = h.IP
	sub.Ports = h.Ports
	if sub.Ports == nil {
		sub.Ports = []int{}
	}
	sub.Tags = h.Tags
	sub.Host = &domain.HostInfo{
		Country:    h.Country,
		City:       h.City,
		ISP:        h.ISP,
		Org:        h.Org,
		LastUpdate: h.LastUpdate,
	}
}
