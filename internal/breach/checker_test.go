package breach_test

import (
	"context"
	"errors"
	"exposure/internal/breach"
	"exposure/pkg/breachdb"
	mockbreachdb "exposure/pkg/breachdb/mock"
	"exposure/pkg/domain"
	"exposure/pkg/serrors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func services(pairs ...string) []domain.UserService {
	out := make([]domain.UserService, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, domain.UserService{
			ID:          domain.ServiceID(uuid.New()),
			ServiceName: pairs[i],
			Domain:      pairs[i+1],
		})
	}

	return out
}

func TestChecker_Check_NoBreaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mockbreachdb.NewMockClient(ctrl)
	client.EXPECT().BreachedAccount(gomock.Any(), "clean@example.com").Return([]domain.BreachRecord{}, nil)

	svcs := services("Spotify", "spotify.com", "GitHub", "github.com")
	report, err := breach.NewChecker(client, 0).Check(context.Background(), "clean@example.com", svcs)
	require.NoError(t, err)
	require.Equal(t, 0, report.BreachesFound)
	require.Equal(t, 100, report.SecurityScore)
	require.Empty(t, report.MatchedBreaches)
	require.NotNil(t, report.MatchedBreaches)
	require.Equal(t, 2, report.TotalServices)
	require.Equal(t, 0, report.BreachedServices)
	require.Equal(t, 2, report.SafeServices)
	require.Len(t, report.Recommendations, 1)
	require.Equal(t, domain.RecommendationSuccess, report.Recommendations[0].Type)
	require.False(t, report.LastChecked.IsZero())
}

func TestChecker_Check_OneHighMatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mockbreachdb.NewMockClient(ctrl)
	gomock.InOrder(
		client.EXPECT().BreachedAccount(gomock.Any(), "jane@example.com").
			Return([]domain.BreachRecord{{Name: "Adobe"}}, nil),
		client.EXPECT().Breach(gomock.Any(), "Adobe").Return(&domain.BreachRecord{
			Name:        "Adobe",
			Domain:      "adobe.com",
			BreachDate:  "2013-10-04",
			DataClasses: []string{"Email addresses", "Passwords"},
		}, nil),
	)

	svcs := services("Adobe", "adobe.com", "Spotify", "spotify.com", "GitHub", "github.com", "Slack", "slack.com")
	report, err := breach.NewChecker(client, 0).Check(context.Background(), "jane@example.com", svcs)
	require.NoError(t, err)
	require.Equal(t, 1, report.BreachesFound)
	require.Equal(t, 4, report.TotalServices)
	require.Equal(t, 65, report.SecurityScore)
	require.Equal(t, 1, report.BreachedServices)
	require.Equal(t, 3, report.SafeServices)
	require.Len(t, report.MatchedBreaches, 1)
	require.Equal(t, svcs[0], report.MatchedBreaches[0].Service)
	require.Equal(t, domain.SeverityHigh, report.MatchedBreaches[0].Severity)
	require.True(t, report.MatchedBreaches[0].ActionRequired)
	require.Len(t, report.BreachDetails, 1)
	require.Equal(t, domain.RecommendationCritical, report.Recommendations[0].Type)
}

func TestChecker_Check_DetailFailureIsSkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mockbreachdb.NewMockClient(ctrl)
	client.EXPECT().BreachedAccount(gomock.Any(), gomock.Any()).
		Return([]domain.BreachRecord{{Name: "Broken"}, {Name: "LinkedIn"}}, nil)
	client.EXPECT().Breach(gomock.Any(), "Broken").Return(nil, errors.New("timeout"))
	client.EXPECT().Breach(gomock.Any(), "LinkedIn").Return(&domain.BreachRecord{
		Name:        "LinkedIn",
		Domain:      "linkedin.com",
		BreachDate:  "2012-05-05",
		DataClasses: []string{"Usernames"},
	}, nil)

	svcs := services("LinkedIn", "linkedin.com", "LinkedIn Learning", "learning.linkedin.com", "Broken Co", "broken.example")
	report, err := breach.NewChecker(client, 0).Check(context.Background(), "jane@example.com", svcs)
	require.NoError(t, err)
	require.Equal(t, 2, report.BreachesFound)
	require.Len(t, report.BreachDetails, 1)
	require.Len(t, report.MatchedBreaches, 2)
	require.Len(t, report.Errors, 1)
	require.Equal(t, "hibp", report.Errors[0].Tool)
	require.Contains(t, report.Errors[0].Message, "Broken")
	// two medium matches: 100 - 30 - 20
	require.Equal(t, 50, report.SecurityScore)
	require.Equal(t, report.TotalServices, report.BreachedServices+report.SafeServices)
}

func TestChecker_Check_OneServiceManyBreaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mockbreachdb.NewMockClient(ctrl)
	client.EXPECT().BreachedAccount(gomock.Any(), gomock.Any()).
		Return([]domain.BreachRecord{{Name: "Yahoo"}, {Name: "Yahoo2016"}}, nil)
	client.EXPECT().Breach(gomock.Any(), "Yahoo").
		Return(&domain.BreachRecord{Name: "Yahoo", Domain: "yahoo.com", DataClasses: []string{"Passwords"}}, nil)
	client.EXPECT().Breach(gomock.Any(), "Yahoo2016").
		Return(&domain.BreachRecord{Name: "Yahoo2016", Domain: "yahoo.com", DataClasses: []string{"Names"}}, nil)

	svcs := services("Yahoo Mail", "mail.yahoo.com")
	report, err := breach.NewChecker(client, 0).Check(context.Background(), "jane@example.com", svcs)
	require.NoError(t, err)
	require.Len(t, report.MatchedBreaches, 2)
	require.Equal(t, 1, report.BreachedServices)
	require.Equal(t, 0, report.SafeServices)
}

func TestChecker_Check_RateLimited(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mockbreachdb.NewMockClient(ctrl)
	client.EXPECT().BreachedAccount(gomock.Any(), gomock.Any()).
		Return(nil, serrors.Wrap(serrors.ErrRateLimited, &breachdb.RetryAfterError{After: 4 * time.Second}, "rate limited"))

	_, err := breach.NewChecker(client, 0).Check(context.Background(), "jane@example.com", nil)
	require.ErrorIs(t, err, serrors.ErrRateLimited)

	var ra *breachdb.RetryAfterError
	require.ErrorAs(t, err, &ra)
	require.Equal(t, 4*time.Second, ra.After)
}

func TestChecker_Check_Unavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mockbreachdb.NewMockClient(ctrl)
	client.EXPECT().BreachedAccount(gomock.Any(), gomock.Any()).
		Return(nil, serrors.With(serrors.ErrUnavailable, "HIBP API key not configured"))

	_, err := breach.NewChecker(client, 0).Check(context.Background(), "jane@example.com", nil)
	require.ErrorIs(t, err, serrors.ErrUnavailable)
}

func TestChecker_Check_SerializesAndPacesDetails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	const delay = 40 * time.Millisecond
	client := mockbreachdb.NewMockClient(ctrl)
	client.EXPECT().BreachedAccount(gomock.Any(), gomock.Any()).
		Return([]domain.BreachRecord{{Name: "A"}, {Name: "B"}, {Name: "C"}}, nil)

	var calls []time.Time
	inFlight := 0
	client.EXPECT().Breach(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, name string) (*domain.BreachRecord, error) {
			inFlight++
			defer func() { inFlight-- }()
			require.Equal(t, 1, inFlight)
			calls = append(calls, time.Now())

			return &domain.BreachRecord{Name: name}, nil
		}).Times(3)

	_, err := breach.NewChecker(client, delay).Check(context.Background(), "jane@example.com", nil)
	require.NoError(t, err)
	require.Len(t, calls, 3)
	for i := 1; i < len(calls); i++ {
		require.GreaterOrEqual(t, calls[i].Sub(calls[i-1]), delay-5*time.Millisecond)
	}
}

func TestChecker_Check_CancelledWhileWaiting(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mockbreachdb.NewMockClient(ctrl)
	client.EXPECT().BreachedAccount(gomock.Any(), gomock.Any()).
		Return([]domain.BreachRecord{{Name: "A"}}, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := breach.NewChecker(client, time.Hour).Check(ctx, "jane@example.com", nil)
	require.Error(t, err)
}
