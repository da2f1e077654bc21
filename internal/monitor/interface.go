package monitor

import (
	"context"
	"exposure/pkg/domain"
	"exposure/pkg/notify/slack"
)

// Monitor is the caller-facing surface of the package.
//
//go:generate mockgen -package mockmonitor -source=interface.go -destination=mock/mockmonitor.go *
type Monitor interface {
	// AddDomain registers rawDomain for scheduled re-scans and queues its first
	// scan.
	AddDomain(ctx context.Context, rawDomain string) (*domain.MonitoredDomain, error)
	// Sweep queues a re-scan for every monitored domain that is due and returns
	// how many jobs were added.
	Sweep(ctx context.Context) (int, error)
	// Rescan discovers the domain again, stores the snapshot and alerts on drift
	// or high-severity findings.
	Rescan(ctx context.Context, name string) (*RescanResult, error)
}

// Notifier delivers alerts.
type Notifier interface {
	Send(ctx context.Context, msg slack.Message) error
}
