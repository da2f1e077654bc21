package breach_test

import (
	"context"
	"errors"
	"exposure/internal/breach"
	mockbreachdb "exposure/pkg/breachdb/mock"
	"exposure/pkg/domain"
	"exposure/pkg/logger"
	"exposure/pkg/serrors"
	"exposure/pkg/storage"
	mockstorage "exposure/pkg/storage/mock"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

type fixture struct {
	store  *mockstorage.MockStorage
	tx     *mockstorage.MockAllStorage
	client *mockbreachdb.MockClient
	svc    *breach.Service
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := fixture{
		store:  mockstorage.NewMockStorage(ctrl),
		tx:     mockstorage.NewMockAllStorage(ctrl),
		client: mockbreachdb.NewMockClient(ctrl),
	}
	f.svc = breach.NewService(f.store, breach.NewChecker(f.client, 0), breach.Options{MaxAttempts: 3, UniqueJobPeriod: time.Hour})

	return f
}

func (f fixture) expectTx() {
	f.store.EXPECT().WithTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cb func(storage.AllStorage) error) error {
			return cb(f.tx)
		})
}

func TestService_RunBreachCheck_UserNotFound(t *testing.T) {
	f := newFixture(t)
	userID := domain.UserID(uuid.New())
	f.store.EXPECT().UserByID(gomock.Any(), userID).Return(nil, nil)

	_, err := f.svc.RunBreachCheck(context.Background(), userID)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestService_RunBreachCheck_PersistsAfterMatching(t *testing.T) {
	f := newFixture(t)
	userID := domain.UserID(uuid.New())
	svcs := services("Adobe", "adobe.com", "Spotify", "spotify.com")

	adobe := &domain.BreachRecord{
		Name:        "Adobe",
		Domain:      "adobe.com",
		BreachDate:  "2013-10-04",
		DataClasses: []string{"Passwords"},
		Description: "In October 2013, 153 million Adobe accounts were breached.",
	}

	gomock.InOrder(
		f.store.EXPECT().UserByID(gomock.Any(), userID).Return(&domain.User{ID: userID, Email: "jane@example.com"}, nil),
		f.store.EXPECT().UserServices(gomock.Any(), userID).Return(svcs, nil),
		f.client.EXPECT().BreachedAccount(gomock.Any(), "jane@example.com").Return([]domain.BreachRecord{{Name: "Adobe"}}, nil),
		f.client.EXPECT().Breach(gomock.Any(), "Adobe").Return(adobe, nil),
	)
	f.expectTx()

	var stored domain.BreachStatus
	f.tx.EXPECT().UpdateBreachStatus(gomock.Any(), svcs[0].ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.ServiceID, st domain.BreachStatus) error {
			stored = st

			return nil
		})
	f.tx.EXPECT().UpdateUserBreachCheck(gomock.Any(), userID, 65, gomock.Any()).Return(nil)

	report, err := f.svc.RunBreachCheck(context.Background(), userID)
	require.NoError(t, err)
	require.Equal(t, 65, report.SecurityScore)
	require.Equal(t, domain.BreachStatus{
		IsBreached:  true,
		BreachName:  "Adobe",
		BreachDate:  "2013-10-04",
		Severity:    domain.SeverityHigh,
		DataClasses: []string{"Passwords"},
		Description: adobe.Description,
		LastChecked: report.LastChecked,
	}, stored)
}

func TestService_RunBreachCheck_NoBreachesStillRecordsScore(t *testing.T) {
	f := newFixture(t)
	userID := domain.UserID(uuid.New())

	f.store.EXPECT().UserByID(gomock.Any(), userID).Return(&domain.User{ID: userID, Email: "clean@example.com"}, nil)
	f.store.EXPECT().UserServices(gomock.Any(), userID).Return(services("GitHub", "github.com"), nil)
	f.client.EXPECT().BreachedAccount(gomock.Any(), gomock.Any()).Return([]domain.BreachRecord{}, nil)
	f.expectTx()
	f.tx.EXPECT().UpdateUserBreachCheck(gomock.Any(), userID, 100, gomock.Any()).Return(nil)

	report, err := f.svc.RunBreachCheck(context.Background(), userID)
	require.NoError(t, err)
	require.Equal(t, 100, report.SecurityScore)
	require.Equal(t, 1, report.SafeServices)
}

func TestService_RunBreachCheck_BreachDBFailureWritesNothing(t *testing.T) {
	f := newFixture(t)
	userID := domain.UserID(uuid.New())

	f.store.EXPECT().UserByID(gomock.Any(), userID).Return(&domain.User{ID: userID, Email: "jane@example.com"}, nil)
	f.store.EXPECT().UserServices(gomock.Any(), userID).Return(nil, nil)
	f.client.EXPECT().BreachedAccount(gomock.Any(), gomock.Any()).
		Return(nil, serrors.With(serrors.ErrUnavailable, "down"))
	// no WithTx expected

	_, err := f.svc.RunBreachCheck(context.Background(), userID)
	require.ErrorIs(t, err, serrors.ErrUnavailable)
}

func TestService_RunBreachCheck_StoreFailure(t *testing.T) {
	f := newFixture(t)
	userID := domain.UserID(uuid.New())

	f.store.EXPECT().UserByID(gomock.Any(), userID).Return(&domain.User{ID: userID, Email: "jane@example.com"}, nil)
	f.store.EXPECT().UserServices(gomock.Any(), userID).Return(nil, nil)
	f.client.EXPECT().BreachedAccount(gomock.Any(), gomock.Any()).Return(nil, nil)
	f.expectTx()
	f.tx.EXPECT().UpdateUserBreachCheck(gomock.Any(), userID, 100, gomock.Any()).Return(errors.New("db down"))

	_, err := f.svc.RunBreachCheck(context.Background(), userID)
	require.Error(t, err)
	require.Contains(t, err.Error(), "db down")
}

func TestService_Enqueue(t *testing.T) {
	f := newFixture(t)
	userID := domain.UserID(uuid.New())

	f.store.EXPECT().UserByID(gomock.Any(), userID).Return(&domain.User{ID: userID}, nil)
	f.store.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).
		DoAndReturn(func(_ context.Context, args river.JobArgs, _ *river.InsertOpts) (bool, error) {
			ja, ok := args.(breach.JobArgs)
			require.True(t, ok)
			require.Equal(t, userID.String(), ja.UserID)
			require.Equal(t, "BreachCheckJob", ja.Kind())
			require.Equal(t, 3, ja.InsertOpts().MaxAttempts)

			return true, nil
		})

	added, err := f.svc.Enqueue(context.Background(), userID)
	require.NoError(t, err)
	require.True(t, added)
}

func TestService_RegisterUser(t *testing.T) {
	f := newFixture(t)
	id := domain.UserID(uuid.New())
	f.store.EXPECT().StoreUser(gomock.Any(), "jane@example.com").Return(&domain.User{ID: id, Email: "jane@example.com"}, nil)

	u, err := f.svc.RegisterUser(context.Background(), " Jane@Example.com ")
	require.NoError(t, err)
	require.Equal(t, id, u.ID)

	_, err = f.svc.RegisterUser(context.Background(), "not-an-email")
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestService_AddServices(t *testing.T) {
	f := newFixture(t)
	userID := domain.UserID(uuid.New())

	f.store.EXPECT().StoreUserServices(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in ...domain.UserService) ([]domain.UserService, error) {
			require.Len(t, in, 1)
			require.Equal(t, userID, in[0].UserID)
			require.Equal(t, "adobe.com", in[0].Domain)

			return in, nil
		})

	out, err := f.svc.AddServices(context.Background(), userID, []domain.UserService{{ServiceName: "Adobe", Domain: " Adobe.com"}})
	require.NoError(t, err)
	require.Len(t, out, 1)

	_, err = f.svc.AddServices(context.Background(), userID, nil)
	require.ErrorIs(t, err, serrors.ErrBadRequest)
	_, err = f.svc.AddServices(context.Background(), userID, []domain.UserService{{ServiceName: "x"}})
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	f.store.EXPECT().StoreUserServices(gomock.Any(), gomock.Any()).Return(nil, storage.ErrUnknownUser)
	_, err = f.svc.AddServices(context.Background(), userID, []domain.UserService{{ServiceName: "x", Domain: "x.com"}})
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestParseUserID(t *testing.T) {
	id := uuid.New()
	got, err := breach.ParseUserID(id.String())
	require.NoError(t, err)
	require.Equal(t, domain.UserID(id), got)

	_, err = breach.ParseUserID("nope")
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}
