// Package breach correlates a user's online services with the breaches their
// email appears in and grades the result as a 0..100 security score.
package breach

import (
	"context"
	"exposure/pkg/domain"
)

// Runner is the caller-facing surface of the package.
//
//go:generate mockgen -package mockbreach -source=interface.go -destination=mock/mockbreach.go *
type Runner interface {
	// RunBreachCheck checks a user's email against the breach database, stores
	// the breach status of every matched service and the user's score, and
	// returns the report.
	RunBreachCheck(ctx context.Context, userID domain.UserID) (*domain.BreachReport, error)
	// Enqueue schedules a background breach check for a user. It reports false
	// when a check for the user is already queued.
	Enqueue(ctx context.Context, userID domain.UserID) (bool, error)
	// RegisterUser stores a user by email, returning the existing user when the
	// email is already known.
	RegisterUser(ctx context.Context, email string) (*domain.User, error)
	// AddServices records services a user has an account with.
	AddServices(ctx context.Context, userID domain.UserID, services []domain.UserService) ([]domain.UserService, error)
}
