package breach

import (
	"context"
	"errors"
	"exposure/pkg/domain"
	"exposure/pkg/logger"
	"exposure/pkg/serrors"
	"exposure/pkg/storage"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Options configure how breach check jobs are enqueued.
type Options struct {
	// MaxAttempts is the maximum number of attempts of a background check.
	MaxAttempts int
	// UniqueJobPeriod is the window in which a second check for the same user
	// is dropped as a duplicate.
	UniqueJobPeriod time.Duration
}

// Service runs breach checks for stored users. It reads users and services
// through storage and commits breach statuses only after the full match list
// is known.
type Service struct {
	options Options
	storage storage.Storage
	checker *Checker
}

// Ensure Service conforms to the Runner interface at compile time.
var _ Runner = (*Service)(nil)

// RunBreachCheck loads the user and their services, runs the check and
// persists the outcome in a single transaction.
func (s *Service) RunBreachCheck(ctx context.Context, userID domain.UserID) (*domain.BreachReport, error) {
	ctx = logger.WithFields(ctx, zap.String("userID", userID.String()))

	user, err := s.storage.UserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrNotFound, "user not found")
	}

	services, err := s.storage.UserServices(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not get user services: %w", err)
	}
	logger.Info(ctx, "starting breach check", zap.Int("services", len(services)))

	report, err := s.checker.Check(ctx, user.Email, services)
	if err != nil {
		logger.Error(ctx, "breach check failed", zap.Error(err))

		return nil, err
	}

	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		for _, m := range report.MatchedBreaches {
			if err := tx.UpdateBreachStatus(ctx, m.Service.ID, domain.BreachStatus{
				IsBreached:  true,
				BreachName:  m.Breach.Name,
				BreachDate:  m.Breach.BreachDate,
				Severity:    m.Severity,
				DataClasses: m.Breach.DataClasses,
				Description: m.Breach.Description,
				LastChecked: report.LastChecked,
			}); err != nil {
				return fmt.Errorf("could not update breach status of %s: %w", m.Service.ID, err)
			}
		}

		if err := tx.UpdateUserBreachCheck(ctx, userID, report.SecurityScore, report.LastChecked); err != nil {
			return fmt.Errorf("could not update user: %w", err)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not store breach check: %w", err)
	}

	logger.Info(ctx, "breach check completed",
		zap.Int("breachesFound", report.BreachesFound),
		zap.Int("matches", len(report.MatchedBreaches)),
		zap.Int("securityScore", report.SecurityScore))

	return report, nil
}

// Enqueue adds a background breach check job for the user.
func (s *Service) Enqueue(ctx context.Context, userID domain.UserID) (bool, error) {
	user, err := s.storage.UserByID(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("could not get user: %w", err)
	}
	if user == nil {
		return false, serrors.With(serrors.ErrNotFound, "user not found")
	}

	added, err := s.storage.AddJob(ctx, JobArgs{
		UserID:          userID.String(),
		maxAttempts:     s.options.MaxAttempts,
		uniqueJobPeriod: s.options.UniqueJobPeriod,
	}, nil)
	if err != nil {
		return false, fmt.Errorf("could not add job: %w", err)
	}

	return added, nil
}

// RegisterUser validates email and stores the user.
func (s *Service) RegisterUser(ctx context.Context, email string) (*domain.User, error) {
	addr, err := mail.ParseAddress(strings.TrimSpace(email))
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid email")
	}

	user, err := s.storage.StoreUser(ctx, strings.ToLower(addr.Address))
	if err != nil {
		return nil, fmt.Errorf("could not store user: %w", err)
	}

	return user, nil
}

// AddServices validates and stores services for the user.
func (s *Service) AddServices(ctx context.Context,
	userID domain.UserID,
	services []domain.UserService) ([]domain.UserService, error) {
	if len(services) == 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "no services given")
	}
	for i := range services {
		services[i].ServiceName = strings.TrimSpace(services[i].ServiceName)
		services[i].Domain = strings.ToLower(strings.TrimSpace(services[i].Domain))
		if services[i].ServiceName == "" || services[i].Domain == "" {
			return nil, serrors.With(serrors.ErrBadRequest, "service %d needs a name and a domain", i)
		}
		services[i].UserID = userID
	}

	stored, err := s.storage.StoreUserServices(ctx, services...)
	if err != nil {
		if errors.Is(err, storage.ErrUnknownUser) {
			return nil, serrors.Wrap(serrors.ErrNotFound, err, "user not found")
		}

		return nil, fmt.Errorf("could not store services: %w", err)
	}

	return stored, nil
}

// ParseUserID parses the canonical UUID form of a user ID.
func ParseUserID(raw string) (domain.UserID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return domain.UserID{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid user ID")
	}

	return domain.UserID(id), nil
}

// NewService wires a Service.
func NewService(storage storage.Storage, checker *Checker, options Options) *Service {
	return &Service{
		options: options,
		storage: storage,
		checker: checker,
	}
}
