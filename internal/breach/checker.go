package breach

import (
	"context"
	"exposure/pkg/breachdb"
	"exposure/pkg/domain"
	"exposure/pkg/logger"
	"fmt"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// toolBreachDB tags per-breach failures in a report.
const toolBreachDB = "hibp"

// DefaultRequestDelay is the pause HIBP requires between requests.
const DefaultRequestDelay = 1500 * time.Millisecond

// Checker correlates an email's breaches with a set of services. It holds only
// configuration and performs no persistence.
type Checker struct {
	client breachdb.Client
	delay  time.Duration
	now    func() time.Time
}

// NewChecker constructs a Checker that waits delay between breach database
// requests.
func NewChecker(client breachdb.Client, delay time.Duration) *Checker {
	return &Checker{client: client, delay: delay, now: time.Now}
}

// Check queries the breaches of email, fetches each breach's details one at a
// time and matches them against services. A breach whose details cannot be
// fetched is logged, recorded in the report errors and skipped. Errors from
// the account query (rate limiting, an unusable breach database) fail the
// whole check.
func (c *Checker) Check(ctx context.Context, email string, services []domain.UserService) (*domain.BreachReport, error) {
	ctx = logger.Named(ctx, "breach")

	limit := rate.Inf
	if c.delay > 0 {
		limit = rate.Every(c.delay)
	}
	limiter := rate.NewLimiter(limit, 1)

	if err := limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("could not wait for breach database: %w", err)
	}
	accounts, err := c.client.BreachedAccount(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("could not query breached account: %w", err)
	}

	report := &domain.BreachReport{
		BreachesFound:   len(accounts),
		TotalServices:   len(services),
		MatchedBreaches: []domain.BreachMatch{},
		BreachDetails:   []domain.BreachRecord{},
		Errors:          []domain.ScanError{},
	}
	now := c.now()

	for _, account := range accounts {
		// serialized and paced; never parallelize these fetches
		if err := limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("could not wait for breach database: %w", err)
		}

		detail, err := c.client.Breach(ctx, account.Name)
		if err != nil {
			logger.Warn(ctx, "could not fetch breach details", zap.String("breach", account.Name), zap.Error(err))
			report.Errors = append(report.Errors, domain.ScanError{
				Message: fmt.Sprintf("Could not fetch details for breach %s: %v", account.Name, err),
				Tool:    toolBreachDB,
			})

			continue
		}
		if detail.Name == "" {
			detail.Name = account.Name
		}
		report.BreachDetails = append(report.BreachDetails, *detail)

		severity := AssessSeverity(*detail, now)
		for _, svc := range MatchServices(*detail, services) {
			logger.Info(ctx, "service affected by breach",
				zap.String("service", svc.ServiceName),
				zap.String("serviceDomain", svc.Domain),
				zap.String("breach", detail.Name),
				zap.String("severity", string(severity)))
			report.MatchedBreaches = append(report.MatchedBreaches, domain.BreachMatch{
				Service:        svc,
				Breach:         *detail,
				Severity:       severity,
				ActionRequired: true,
			})
		}
	}

	report.SecurityScore = SecurityScore(report.MatchedBreaches, len(services))
	report.BreachedServices = len(lo.UniqBy(report.MatchedBreaches,
		func(m domain.BreachMatch) domain.ServiceID { return m.Service.ID }))
	report.SafeServices = report.TotalServices - report.BreachedServices
	report.Recommendations = Recommendations(report.MatchedBreaches)
	report.LastChecked = now.UTC()

	return report, nil
}
