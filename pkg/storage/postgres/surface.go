package postgres

import (
	"context"
	"exposure/pkg/domain"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/samber/lo"
)

const (
	surfaceScansTable     = "surface_scans"
	monitoredDomainsTable = "monitored_domains"
)

func (p *PgSQL) StoreSurfaceScan(ctx context.Context, scan domain.SurfaceScan) (*domain.SurfaceScan, error) {
	var row PgSurfaceScan
	if err := row.FromDomain(scan); err != nil {
		return nil, err
	}

	var result PgSurfaceScan
	if _, err := p.Builder.Insert(surfaceScansTable).
		Rows(goqu.Record{
			"domain":    row.Domain,
			"endpoints": string(row.Endpoints),
			"report":    string(row.Report),
		}).
		Returning(&PgSurfaceScan{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store surface scan into pg: %w", err)
	}

	return result.ToDomain()
}

func (p *PgSQL) LastSurfaceScan(ctx context.Context, name string) (*domain.SurfaceScan, error) {
	var result PgSurfaceScan
	found, err := p.Builder.From(surfaceScansTable).
		Where(goqu.I("domain").Eq(name)).
		Order(goqu.I("created_at").Desc()).
		Limit(1).
		ScanStructContext(ctx, &result)
	if err != nil {
		return nil, fmt.Errorf("could not get last surface scan from pg: %w", err)
	}
	if !found {
		return nil, nil //nolint: nilnil
	}

	return result.ToDomain()
}

func (p *PgSQL) AddMonitoredDomain(ctx context.Context, name string) (*domain.MonitoredDomain, error) {
	var result PgMonitoredDomain
	if _, err := p.Builder.Insert(monitoredDomainsTable).
		Rows(PgMonitoredDomain{Domain: name}).
		OnConflict(goqu.DoUpdate("domain", goqu.Record{"domain": goqu.L("EXCLUDED.domain")})).
		Returning(&PgMonitoredDomain{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store monitored domain into pg: %w", err)
	}

	return lo.ToPtr(result.ToDomain()), nil
}

func (p *PgSQL) MonitoredDomains(
	ctx context.Context,
	scannedBefore time.Time,
	limit uint,
) ([]domain.MonitoredDomain, error) {
	var result []PgMonitoredDomain
	if err := p.Builder.From(monitoredDomainsTable).
		Where(goqu.Or(
			goqu.I("last_scanned_at").IsNull(),
			goqu.I("last_scanned_at").Lt(scannedBefore),
		)).
		Order(goqu.I("last_scanned_at").Asc().NullsFirst(), goqu.I("created_at").Asc()).
		Limit(limit).
		ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not list monitored domains from pg: %w", err)
	}

	return lo.Map(result, func(d PgMonitoredDomain, _ int) domain.MonitoredDomain {
		return d.ToDomain()
	}), nil
}

func (p *PgSQL) MarkDomainScanned(ctx context.Context, name string, at time.Time) error {
	_, err := p.Builder.Update(monitoredDomainsTable).
		Set(goqu.Record{"last_scanned_at": at}).
		Where(goqu.I("domain").Eq(name)).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not mark domain scanned in pg: %w", err)
	}

	return nil
}
