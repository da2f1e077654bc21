package surface

import (
	"context"
	"exposure/pkg/domain"
	"exposure/pkg/logger"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// toolEndpointDiscovery tags per-subdomain endpoint discovery failures.
const toolEndpointDiscovery = "endpoint-discovery"

// Service runs the full scan pipeline. It holds only its collaborators and is
// safe for concurrent use.
type Service struct {
	discoverer *Discoverer
	enricher   *Enricher
	now        func() time.Time
}

// NewService wires a Service. enricher may be nil.
func NewService(discoverer *Discoverer, enricher *Enricher) *Service {
	return &Service{discoverer: discoverer, enricher: enricher, now: time.Now}
}

// Ensure Service conforms to the Scanner interface at compile time.
var _ Scanner = (*Service)(nil)

// QuickScan normalizes rawDomain, runs the pipeline and returns the summary.
func (s *Service) QuickScan(ctx context.Context, rawDomain string) (*domain.SurfaceReport, error) {
	dr, err := s.Discover(ctx, rawDomain)
	if err != nil {
		return nil, err
	}

	return Report(dr), nil
}

// Discover normalizes rawDomain, runs the pipeline and returns every subdomain,
// endpoint and finding. Unreachable hosts and failed lookups degrade the
// report instead of failing it. Only an invalid domain or a cancelled
// context return an error.
func (s *Service) Discover(ctx context.Context, rawDomain string) (*domain.DiscoveryReport, error) {
	target, err := NormalizeDomain(rawDomain)
	if err != nil {
		return nil, err
	}
	ctx = logger.WithFields(logger.Named(ctx, "surface"), zap.String("domain", target))

	res, err := s.Discovery(ctx, target)
	if err != nil {
		return nil, err
	}
	vulns := PerformSecurityChecks(res.Endpoints)

	logger.Info(ctx, "discovery completed",
		zap.Int("subdomains", len(res.Subdomains)),
		zap.Int("endpoints", len(res.Endpoints)),
		zap.Int("vulnerabilities", len(vulns)),
		zap.Int("errors", len(res.Errors)))

	return &domain.DiscoveryReport{
		Domain:    target,
		Discovery: *res,
		Security: domain.SecurityFindings{
			Vulnerabilities: vulns,
			Summary:         Summarize(vulns),
		},
		Timestamp: s.now().UTC(),
	}, nil
}

// Discovery runs subdomain discovery, endpoint discovery per subdomain and
// enrichment against an already normalized target.
func (s *Service) Discovery(ctx context.Context, target string) (*domain.DiscoveryResult, error) {
	start := s.now()
	res := &domain.DiscoveryResult{
		Subdomains: []domain.DiscoveredSubdomain{},
		Endpoints:  []domain.DiscoveredEndpoint{},
		Errors:     []domain.ScanError{},
	}
	res.Tools.Basic.Used = true

	subs, err := s.discoverer.Subdomains(ctx, target)
	if err != nil {
		return nil, err
	}
	res.Subdomains = append(res.Subdomains, subs...)

	for _, sub := range res.Subdomains {
		eps, err := s.discoverer.Endpoints(ctx, sub.Subdomain)
		if err != nil {
			logger.Warn(ctx, "endpoint discovery failed", zap.String("subdomain", sub.Subdomain), zap.Error(err))
			res.Errors = append(res.Errors, domain.ScanError{
				Message: fmt.Sprintf("Endpoint discovery failed for %s: %v", sub.Subdomain, err),
				Tool:    toolEndpointDiscovery,
			})

			continue
		}
		res.Endpoints = append(res.Endpoints, eps...)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("discovery interrupted: %w", err)
	}

	stats, errs := s.enricher.Enrich(ctx, res.Subdomains)
	res.Tools.Shodan = stats
	res.Errors = append(res.Errors, errs...)

	res.Tools.Basic.DurationMs = s.now().Sub(start).Milliseconds()
	res.Tools.Basic.Results = len(res.Subdomains)

	return res, nil
}
