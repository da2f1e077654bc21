package monitor

import (
	"context"
	"errors"
	"exposure/internal/surface"
	"exposure/pkg/domain"
	"exposure/pkg/logger"
	"exposure/pkg/notify/slack"
	"exposure/pkg/storage"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Options configure the re-scan schedule.
type Options struct {
	// RescanInterval is how long a domain stays fresh after a scan.
	RescanInterval time.Duration
	// SweepBatchSize bounds how many domains a single sweep queues.
	SweepBatchSize uint
	// MaxAttempts is the maximum number of attempts of a re-scan job.
	MaxAttempts int
}

// RescanResult is the outcome of a re-scan.
type RescanResult struct {
	Scan *domain.SurfaceScan `json:"scan"`
	// Drift is empty on the first scan of a domain.
	Drift   Drift `json:"drift"`
	Alerted bool  `json:"alerted"`
}

// Service keeps monitored domains re-scanned and reports how their attack
// surface changes.
type Service struct {
	options  Options
	storage  storage.Storage
	scanner  surface.Scanner
	notifier Notifier
	now      func() time.Time
}

// Ensure Service conforms to the Monitor interface at compile time.
var _ Monitor = (*Service)(nil)

func (s *Service) AddDomain(ctx context.Context, rawDomain string) (*domain.MonitoredDomain, error) {
	name, err := surface.NormalizeDomain(rawDomain)
	if err != nil {
		return nil, err
	}

	var monitored *domain.MonitoredDomain
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		monitored, err = tx.AddMonitoredDomain(ctx, name)
		if err != nil {
			return fmt.Errorf("could not add monitored domain: %w", err)
		}

		if _, err := tx.AddJob(ctx, s.jobArgs(name), nil); err != nil {
			return fmt.Errorf("could not add job: %w", err)
		}

		return nil
	}); err != nil {
		return nil, err
	}

	logger.Info(ctx, "domain added to monitoring", zap.String("domain", name))

	return monitored, nil
}

func (s *Service) Sweep(ctx context.Context) (int, error) {
	due, err := s.storage.MonitoredDomains(ctx, s.now().Add(-s.options.RescanInterval), s.options.SweepBatchSize)
	if err != nil {
		return 0, fmt.Errorf("could not list monitored domains: %w", err)
	}

	queued := 0
	for _, d := range due {
		added, err := s.storage.AddJob(ctx, s.jobArgs(d.Domain), nil)
		if err != nil {
			return queued, fmt.Errorf("could not add job for %s: %w", d.Domain, err)
		}
		if added {
			queued++
		}
	}

	logger.Info(ctx, "monitor sweep completed", zap.Int("due", len(due)), zap.Int("queued", queued))

	return queued, nil
}

func (s *Service) Rescan(ctx context.Context, name string) (*RescanResult, error) {
	ctx = logger.WithFields(ctx, zap.String("domain", name))

	discovery, err := s.scanner.Discover(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("could not discover domain: %w", err)
	}
	report := surface.Report(discovery)

	previous, err := s.storage.LastSurfaceScan(ctx, discovery.Domain)
	if err != nil {
		return nil, fmt.Errorf("could not get last surface scan: %w", err)
	}

	result := &RescanResult{}
	if previous != nil {
		result.Drift = Diff(previous.Endpoints, discovery.Discovery.Endpoints)
	}

	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		result.Scan, err = tx.StoreSurfaceScan(ctx, domain.SurfaceScan{
			Domain:    discovery.Domain,
			Endpoints: discovery.Discovery.Endpoints,
			Report:    *report,
		})
		if err != nil {
			return fmt.Errorf("could not store surface scan: %w", err)
		}

		if err := tx.MarkDomainScanned(ctx, discovery.Domain, s.now().UTC()); err != nil {
			return fmt.Errorf("could not mark domain scanned: %w", err)
		}

		return nil
	}); err != nil {
		return nil, err
	}

	logger.Info(ctx, "domain re-scanned",
		zap.Int("endpoints", report.Endpoints),
		zap.Int("added", len(result.Drift.Added)),
		zap.Int("removed", len(result.Drift.Removed)),
		zap.Int("statusChanged", len(result.Drift.StatusChanged)),
		zap.Int("riskScore", report.RiskScore))

	if result.Drift.Empty() && report.SeverityBreakdown.High == 0 {
		return result, nil
	}

	// the snapshot is stored; a retry would diff against it and miss the drift
	if err := s.alert(ctx, discovery.Domain, result.Drift, report); err != nil {
		logger.Error(ctx, "could not send drift alert", zap.Error(err))
	} else {
		result.Alerted = true
	}

	return result, nil
}

func (s *Service) alert(ctx context.Context, name string, d Drift, report *domain.SurfaceReport) error {
	if s.notifier == nil {
		return errNoNotifier
	}

	text := Summary(name, d, report)

	return s.notifier.Send(ctx, slack.Message{ //nolint: wrapcheck
		Text: text,
		Blocks: []slack.Block{{
			Type: "section",
			Text: &slack.TextObject{Type: "mrkdwn", Text: text},
		}},
	})
}

var errNoNotifier = errors.New("no notifier configured")

func (s *Service) jobArgs(name string) JobArgs {
	return JobArgs{
		Domain:          name,
		maxAttempts:     s.options.MaxAttempts,
		uniqueJobPeriod: s.options.RescanInterval,
	}
}

// NewService wires a Service. notifier may be nil, in which case alerts are
// only logged.
func NewService(storage storage.Storage, scanner surface.Scanner, notifier Notifier, options Options) *Service {
	return &Service{
		options:  options,
		storage:  storage,
		scanner:  scanner,
		notifier: notifier,
		now:      time.Now,
	}
}
