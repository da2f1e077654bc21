package postgres

import (
	"database/sql"
	"encoding/json"
	"exposure/pkg/domain"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type PgUser struct {
	ID    uuid.UUID `db:"id"    goqu:"skipinsert"`
	Email string    `db:"email"`

	SecurityScore   sql.NullInt64 `db:"security_score"    goqu:"skipinsert"`
	LastBreachCheck sql.NullTime  `db:"last_breach_check" goqu:"skipinsert"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgUser) ToDomain() *domain.User {
	user := &domain.User{
		ID:              domain.UserID(p.ID),
		Email:           p.Email,
		LastBreachCheck: p.LastBreachCheck.Time,
	}
	if p.SecurityScore.Valid {
		score := int(p.SecurityScore.Int64)
		user.SecurityScore = &score
	}

	return user
}

type PgUserService struct {
	ID     uuid.UUID `db:"id"      goqu:"skipinsert"`
	UserID uuid.UUID `db:"user_id"`

	ServiceName  string          `db:"service_name"`
	Domain       string          `db:"domain"`
	IsActive     bool            `db:"is_active"     goqu:"skipinsert"`
	BreachStatus json.RawMessage `db:"breach_status" goqu:"skipinsert"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgUserService) ToDomain() domain.UserService {
	return domain.UserService{
		ID:          domain.ServiceID(p.ID),
		UserID:      domain.UserID(p.UserID),
		ServiceName: p.ServiceName,
		Domain:      p.Domain,
	}
}

func (p *PgUserService) FromDomain(service domain.UserService) {
	*p = PgUserService{
		ID:          uuid.UUID(service.ID),
		UserID:      uuid.UUID(service.UserID),
		ServiceName: service.ServiceName,
		Domain:      service.Domain,
	}
}

type PgSurfaceScan struct {
	ID     uuid.UUID `db:"id"     goqu:"skipinsert"`
	Domain string    `db:"domain"`

	Endpoints json.RawMessage `db:"endpoints"`
	Report    json.RawMessage `db:"report"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgSurfaceScan) ToDomain() (*domain.SurfaceScan, error) {
	scan := &domain.SurfaceScan{
		ID:        domain.ScanID(p.ID),
		Domain:    p.Domain,
		CreatedAt: p.CreatedAt,
	}
	if err := json.Unmarshal(p.Endpoints, &scan.Endpoints); err != nil {
		return nil, fmt.Errorf("could not unmarshal scan endpoints: %w", err)
	}
	if err := json.Unmarshal(p.Report, &scan.Report); err != nil {
		return nil, fmt.Errorf("could not unmarshal scan report: %w", err)
	}

	return scan, nil
}

func (p *PgSurfaceScan) FromDomain(scan domain.SurfaceScan) error {
	endpoints := scan.Endpoints
	if endpoints == nil {
		endpoints = []domain.DiscoveredEndpoint{}
	}
	rawEndpoints, err := json.Marshal(endpoints)
	if err != nil {
		return fmt.Errorf("could not marshal scan endpoints: %w", err)
	}
	rawReport, err := json.Marshal(scan.Report)
	if err != nil {
		return fmt.Errorf("could not marshal scan report: %w", err)
	}

	*p = PgSurfaceScan{
		ID:        uuid.UUID(scan.ID),
		Domain:    scan.Domain,
		Endpoints: rawEndpoints,
		Report:    rawReport,
	}

	return nil
}

type PgMonitoredDomain struct {
	Domain        string       `db:"domain"`
	LastScannedAt sql.NullTime `db:"last_scanned_at" goqu:"skipinsert"`
	CreatedAt     time.Time    `db:"created_at"      goqu:"skipinsert"`
}

func (p *PgMonitoredDomain) ToDomain() domain.MonitoredDomain {
	return domain.MonitoredDomain{
		Domain:        p.Domain,
		LastScannedAt: p.LastScannedAt.Time,
		CreatedAt:     p.CreatedAt,
	}
}
