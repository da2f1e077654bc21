package v1handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"exposure/internal/api/handler/v1handler"
	mockbreach "exposure/internal/breach/mock"
	mockmonitor "exposure/internal/monitor/mock"
	mocksurface "exposure/internal/surface/mock"
	"exposure/pkg/logger"
	"exposure/pkg/serrors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

type fixture struct {
	scanner *mocksurface.MockScanner
	breach  *mockbreach.MockRunner
	monitor *mockmonitor.MockMonitor
	router  chi.Router
}

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func newFixture(t *testing.T, pinger v1handler.Pinger) fixture {
	ctrl := gomock.NewController(t)
	f := fixture{
		scanner: mocksurface.NewMockScanner(ctrl),
		breach:  mockbreach.NewMockRunner(ctrl),
		monitor: mockmonitor.NewMockMonitor(ctrl),
		router:  chi.NewRouter(),
	}
	h := v1handler.New(v1handler.Deps{Scanner: f.scanner, Breach: f.breach, Monitor: f.monitor, Pinger: pinger})
	f.router.Route("/v1", h.Routes)

	return f
}

func (f fixture) do(t *testing.T, method, path, body string) (*http.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	res := rec.Result()
	var payload map[string]any
	require.NoError(t, json.NewDecoder(res.Body).Decode(&payload))

	return res, payload
}

func TestNewError(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	ctx := context.Background()

	tests := []struct {
		name    string
		err     error
		status  int
		kind    string
		message string
	}{
		{
			name: "plain error is internal", err: errors.New("boom"),
			status: 500, kind: serrors.ErrInternal.Error(), message: "internal error",
		},
		{
			name: "kind sentinel", err: serrors.ErrNotFound,
			status: 404, kind: serrors.ErrNotFound.Error(), message: "resource not found",
		},
		{
			name: "semantic message is kept", err: serrors.With(serrors.ErrBadRequest, "invalid domain"),
			status: 400, kind: serrors.ErrBadRequest.Error(), message: "invalid domain",
		},
		{
			name: "wrapped rate limit", err: fmt.Errorf("could not query: %w", serrors.KindOnly(serrors.ErrRateLimited)),
			status: 429, kind: serrors.ErrRateLimited.Error(), message: "upstream rate limit reached, try again later",
		},
		{
			name: "unavailable", err: serrors.With(serrors.ErrUnavailable, "breach database API key is not configured"),
			status: 503, kind: serrors.ErrUnavailable.Error(), message: "breach database API key is not configured",
		},
		{
			name: "network failure is internal", err: serrors.With(serrors.ErrNetworkUnreachable, "dial tcp"),
			status: 500, kind: serrors.ErrInternal.Error(), message: "internal error",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, res := h.NewError(ctx, tt.err)
			require.Equal(t, tt.status, status)
			require.False(t, res.Success)
			require.Equal(t, tt.kind, res.Error)
			require.Equal(t, tt.message, res.Message)
		})
	}
}

func TestHealth(t *testing.T) {
	f := newFixture(t, pingerFunc(func(context.Context) error { return nil }))
	res, body := f.do(t, http.MethodGet, "/v1/health", "")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, "healthy", body["status"])
	require.Equal(t, "ok", body["database"])

	f = newFixture(t, pingerFunc(func(context.Context) error { return errors.New("down") }))
	res, body = f.do(t, http.MethodGet, "/v1/health", "")
	require.Equal(t, http.StatusServiceUnavailable, res.StatusCode)
	require.Equal(t, "unhealthy", body["status"])
}
