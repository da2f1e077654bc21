package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserID uniquely identifies a user within the system.
// It is a thin wrapper around uuid.UUID to provide type safety at the domain layer.
type UserID uuid.UUID

// String returns the canonical UUID representation.
func (id UserID) String() string { return uuid.UUID(id).String() }

// User is the subset of a user account the breach engine reads and updates.
type User struct {
	ID    UserID `json:"id"`
	Email string `json:"email"`
	// SecurityScore is the score of the last breach check; nil until the first check.
	SecurityScore *int `json:"securityScore,omitempty"`
	// LastBreachCheck is zero until the first check.
	LastBreachCheck time.Time `json:"lastBreachCheck,omitempty"`
}
