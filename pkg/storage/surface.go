package storage

import (
	"context"
	"exposure/pkg/domain"
	"time"
)

// SurfaceScanStorage keeps discovery snapshots so scheduled re-scans can be
// diffed against the previous run.
type SurfaceScanStorage interface {
	// StoreSurfaceScan inserts a snapshot and returns it with generated fields.
	StoreSurfaceScan(ctx context.Context, scan domain.SurfaceScan) (*domain.SurfaceScan, error)
	// LastSurfaceScan returns the newest snapshot for a domain, or nil when the
	// domain was never scanned.
	LastSurfaceScan(ctx context.Context, name string) (*domain.SurfaceScan, error)
}

// MonitorStorage manages the domains registered for scheduled re-scans.
type MonitorStorage interface {
	// AddMonitoredDomain registers a domain. Registering an existing domain is a
	// no-op that returns the stored row.
	AddMonitoredDomain(ctx context.Context, name string) (*domain.MonitoredDomain, error)
	// MonitoredDomains returns domains not scanned since scannedBefore, oldest
	// first, up to limit rows.
	MonitoredDomains(ctx context.Context, scannedBefore time.Time, limit uint) ([]domain.MonitoredDomain, error)
	// MarkDomainScanned sets the last scan time of a monitored domain.
	MarkDomainScanned(ctx context.Context, name string, at time.Time) error
}
