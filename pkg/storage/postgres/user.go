package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"exposure/pkg/domain"
	"exposure/pkg/storage"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/samber/lo"
)

const (
	usersTable        = "users"
	userServicesTable = "user_services"
)

func (p *PgSQL) StoreUser(ctx context.Context, email string) (*domain.User, error) {
	var user PgUser
	if _, err := p.Builder.Insert(usersTable).
		Rows(PgUser{Email: email}).
		OnConflict(goqu.DoUpdate("email", goqu.Record{"email": goqu.L("EXCLUDED.email")})).
		Returning(&PgUser{}).
		Executor().ScanStructContext(ctx, &user); err != nil {
		return nil, fmt.Errorf("could not store user into pg: %w", err)
	}

	return user.ToDomain(), nil
}

func (p *PgSQL) UserByID(ctx context.Context, ID domain.UserID) (*domain.User, error) {
	var user PgUser
	found, err := p.Builder.From(usersTable).
		Where(goqu.I("id").Eq(uuid.UUID(ID))).
		ScanStructContext(ctx, &user)
	if err != nil {
		return nil, fmt.Errorf("could not get user from pg: %w", err)
	}
	if !found {
		return nil, nil //nolint: nilnil
	}

	return user.ToDomain(), nil
}

func (p *PgSQL) UpdateUserBreachCheck(
	ctx context.Context,
	ID domain.UserID,
	securityScore int,
	checkedAt time.Time,
) error {
	_, err := p.Builder.Update(usersTable).
		Set(goqu.Record{
			"security_score":    securityScore,
			"last_breach_check": checkedAt,
			"updated_at":        goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(goqu.I("id").Eq(uuid.UUID(ID))).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not update user breach check in pg: %w", err)
	}

	return nil
}

func (p *PgSQL) StoreUserServices(
	ctx context.Context,
	services ...domain.UserService,
) ([]domain.UserService, error) {
	if len(services) == 0 {
		return nil, nil
	}

	rows := make([]PgUserService, len(services))
	for i := range services {
		rows[i].FromDomain(services[i])
	}

	var result []PgUserService
	if err := p.Builder.Insert(userServicesTable).
		Rows(rows).
		Returning(&PgUserService{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		if isForeignKeyViolation(err) {
			return nil, storage.ErrUnknownUser
		}

		return nil, fmt.Errorf("could not store user services into pg: %w", err)
	}

	return lo.Map(result, func(s PgUserService, _ int) domain.UserService {
		return s.ToDomain()
	}), nil
}

func (p *PgSQL) UserServices(ctx context.Context, userID domain.UserID) ([]domain.UserService, error) {
	var result []PgUserService
	if err := p.Builder.From(userServicesTable).
		Where(
			goqu.I("user_id").Eq(uuid.UUID(userID)),
			goqu.I("is_active").IsTrue(),
		).
		Order(goqu.I("created_at").Asc(), goqu.I("id").Asc()).
		ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not list user services from pg: %w", err)
	}

	return lo.Map(result, func(s PgUserService, _ int) domain.UserService {
		return s.ToDomain()
	}), nil
}

func (p *PgSQL) UpdateBreachStatus(ctx context.Context, ID domain.ServiceID, status domain.BreachStatus) error {
	raw, err := json.Marshal(status)
	if err != nil {
		return fmt.Errorf("could not marshal breach status: %w", err)
	}

	_, err = p.Builder.Update(userServicesTable).
		Set(goqu.Record{
			"breach_status": string(raw),
			"updated_at":    goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(goqu.I("id").Eq(uuid.UUID(ID))).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not update breach status in pg: %w", err)
	}

	return nil
}

func (p *PgSQL) BreachStatus(ctx context.Context, ID domain.ServiceID) (*domain.BreachStatus, error) {
	var raw []byte
	found, err := p.Builder.From(userServicesTable).
		Select("breach_status").
		Where(goqu.I("id").Eq(uuid.UUID(ID))).
		ScanValContext(ctx, &raw)
	if err != nil {
		return nil, fmt.Errorf("could not get breach status from pg: %w", err)
	}
	if !found || raw == nil {
		return nil, nil //nolint: nilnil
	}

	var status domain.BreachStatus
	if err := json.Unmarshal(raw, &status); err != nil {
		return nil, fmt.Errorf("could not unmarshal breach status: %w", err)
	}

	return &status, nil
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation
}
