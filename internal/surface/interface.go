// Package surface discovers the externally reachable attack surface of a
// domain and grades it with heuristic findings.
//
// The pipeline is subdomain discovery, endpoint discovery, optional
// enrichment, heuristics and scoring. Every stage takes and returns plain
// values, so a scan is a pure function of its input and the network.
package surface

import (
	"context"
	"exposure/pkg/domain"
)

// Scanner is the caller-facing surface of the package.
//
//go:generate mockgen -package mocksurface -source=interface.go -destination=mock/mocksurface.go *
type Scanner interface {
	// QuickScan returns the summarized report for rawDomain.
	QuickScan(ctx context.Context, rawDomain string) (*domain.SurfaceReport, error)
	// Discover returns the full discovery with every finding.
	Discover(ctx context.Context, rawDomain string) (*domain.DiscoveryReport, error)
}
