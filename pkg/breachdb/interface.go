// Package breachdb defines the client used to query an external breach
// database for the breaches an email address appears in.
package breachdb

import (
	"context"
	"exposure/pkg/domain"
	"fmt"
	"time"
)

// MinRetryAfter is the shortest back-off callers should observe after the
// breach database rate limited a request.
const MinRetryAfter = 3 * time.Second

// RetryAfterError is wrapped into serrors.ErrRateLimited errors and carries
// how long the caller should wait before trying again.
type RetryAfterError struct {
	After time.Duration
}

func (e *RetryAfterError) Error() string {
	return fmt.Sprintf("retry after %s", e.After)
}

// Client is the abstraction for breach databases.
//
//go:generate mockgen -package mockbreachdb -source=interface.go -destination=mock/mockbreachdb.go *
type Client interface {
	// BreachedAccount returns the breaches the email appears in. An account
	// with no breaches yields an empty slice and a nil error.
	BreachedAccount(ctx context.Context, email string) ([]domain.BreachRecord, error)
	// Breach returns the detail record of a single breach by name.
	Breach(ctx context.Context, name string) (*domain.BreachRecord, error)
}
