package postgres_test

import (
	"errors"
	"exposure/pkg/storage"
	"exposure/pkg/storage/postgres"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// staleDomains lists monitored domains never scanned or scanned before now.
func staleDomains(t *testing.T, s storage.AllStorage) []string {
	t.Helper()

	domains, err := s.MonitoredDomains(t.Context(), time.Now().Add(time.Hour), 100)
	require.NoError(t, err)

	names := make([]string, 0, len(domains))
	for _, d := range domains {
		names = append(names, d.Domain)
	}

	return names
}

func TestPgSQL_Begin_AlreadyInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := t.Context()

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)

	inner, ok := txStorage.(*postgres.PgSQL)
	require.True(t, ok)

	_, err = inner.Begin(ctx)
	require.ErrorIs(t, err, storage.ErrAlreadyInTx)

	require.NoError(t, txStorage.Rollback())
}

func TestPgSQL_Commit(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := t.Context()

	require.ErrorIs(t, pg.Commit(), storage.ErrNotInTx)

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)

	_, err = txStorage.AddMonitoredDomain(ctx, "example.com")
	require.NoError(t, err)
	require.Empty(t, staleDomains(t, pg))

	require.NoError(t, txStorage.Commit())
	require.Equal(t, []string{"example.com"}, staleDomains(t, pg))
}

func TestPgSQL_Rollback(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := t.Context()

	require.ErrorIs(t, pg.Rollback(), storage.ErrNotInTx)

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)

	user, err := txStorage.StoreUser(ctx, "alice@example.com")
	require.NoError(t, err)

	require.NoError(t, txStorage.Rollback())

	stored, err := pg.UserByID(ctx, user.ID)
	require.NoError(t, err)
	require.Nil(t, stored)
}

func TestPgSQL_WithTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := t.Context()

	err := pg.WithTx(ctx, func(s storage.AllStorage) error {
		if _, err := s.AddMonitoredDomain(ctx, "example.com"); err != nil {
			return err //nolint: wrapcheck
		}

		return s.MarkDomainScanned(ctx, "example.com", time.Now().Add(-time.Minute))
	})
	require.NoError(t, err)
	require.Equal(t, []string{"example.com"}, staleDomains(t, pg))

	boom := errors.New("boom")
	err = pg.WithTx(ctx, func(s storage.AllStorage) error {
		_, _ = s.AddMonitoredDomain(ctx, "example.org")

		return boom
	})
	require.ErrorIs(t, err, boom)
	require.Equal(t, []string{"example.com"}, staleDomains(t, pg))
}
