package storage

import (
	"context"
	"exposure/pkg/domain"
	"time"
)

// UserStorage reads and updates the user fields the breach engine owns.
type UserStorage interface {
	// StoreUser inserts a user and returns it with generated fields. Emails are
	// unique; storing an existing email returns the existing user.
	StoreUser(ctx context.Context, email string) (*domain.User, error)
	// UserByID returns the user or nil when it does not exist.
	UserByID(ctx context.Context, ID domain.UserID) (*domain.User, error)
	// UpdateUserBreachCheck records the result of a breach check on the user.
	UpdateUserBreachCheck(ctx context.Context, ID domain.UserID, securityScore int, checkedAt time.Time) error
}

// ServiceStorage manages the online services a user is known to use.
type ServiceStorage interface {
	// StoreUserServices inserts services for their users and returns the stored
	// rows including generated IDs, in input order.
	StoreUserServices(ctx context.Context, services ...domain.UserService) ([]domain.UserService, error)
	// UserServices returns the active services of a user ordered by creation.
	UserServices(ctx context.Context, userID domain.UserID) ([]domain.UserService, error)
	// UpdateBreachStatus overwrites the breach status of a single service.
	UpdateBreachStatus(ctx context.Context, ID domain.ServiceID, status domain.BreachStatus) error
	// BreachStatus returns the last stored breach status of a service, or nil
	// when the service was never matched.
	BreachStatus(ctx context.Context, ID domain.ServiceID) (*domain.BreachStatus, error)
}
