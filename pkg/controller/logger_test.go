package controller_test

import (
	"exposure/pkg/controller"
	"exposure/pkg/logger"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		want       string
	}{
		{name: "forwarded chain", headers: map[string]string{"X-Forwarded-For": "1.2.3.4, 5.6.7.8"}, want: "1.2.3.4"},
		{name: "real ip", headers: map[string]string{"X-Real-IP": "9.8.7.6"}, want: "9.8.7.6"},
		{name: "remote addr", remoteAddr: "10.0.0.1:12345", want: "10.0.0.1"},
		{name: "unparsable remote addr", remoteAddr: "not-an-addr", want: "not-an-addr"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			if tt.remoteAddr != "" {
				req.RemoteAddr = tt.remoteAddr
			}
			require.Equal(t, tt.want, controller.GetClientIP(req))
		})
	}
}

// serveLogged routes req through WithLogger inside a chi router and returns
// the captured log entries.
func serveLogged(t *testing.T, req *http.Request, h http.HandlerFunc) (*httptest.ResponseRecorder, *observer.ObservedLogs) {
	t.Helper()

	core, logs := observer.New(zapcore.DebugLevel)
	r := chi.NewRouter()
	r.Use(controller.WithLogger)
	r.Post("/v1/users/{userID}/breach-check", h)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req.WithContext(logger.WithLogger(req.Context(), zap.New(core))))

	return rec, logs
}

func TestWithLogger_RequestID(t *testing.T) {
	var seen string
	handler := func(w http.ResponseWriter, r *http.Request) {
		seen = controller.RequestID(r.Context())
		w.WriteHeader(http.StatusAccepted)
	}

	req := httptest.NewRequest(http.MethodPost, "/v1/users/42/breach-check", nil)
	req.Header.Set("X-Request-Id", "abc-123")
	rec, _ := serveLogged(t, req, handler)
	require.Equal(t, http.StatusAccepted, rec.Code)
	require.Equal(t, "abc-123", seen)
	require.Equal(t, "abc-123", rec.Header().Get("X-Request-Id"))

	rec, _ = serveLogged(t, httptest.NewRequest(http.MethodPost, "/v1/users/42/breach-check", nil), handler)
	require.NotEmpty(t, seen)
	require.NotEqual(t, "abc-123", seen)
	require.Equal(t, seen, rec.Header().Get("X-Request-Id"))
}

func TestWithLogger_AccessLog(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/v1/users/42/breach-check", nil)
	req.Header.Set("X-Request-Id", "req-1")

	rec, logs := serveLogged(t, req, func(w http.ResponseWriter, r *http.Request) {
		logger.Info(r.Context(), "handling")
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"success":false}`))
	})
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	require.JSONEq(t, `{"success":false}`, rec.Body.String())

	require.Equal(t, 2, logs.Len())
	handling := logs.FilterMessage("handling").All()[0].ContextMap()
	require.Equal(t, "req-1", handling["requestID"])
	require.Equal(t, "/v1/users/42/breach-check", handling["path"])

	access := logs.FilterMessage("access log").All()[0]
	require.Equal(t, zapcore.WarnLevel, access.Level)
	fields := access.ContextMap()
	require.Equal(t, "/v1/users/{userID}/breach-check", fields["route"])
	require.Equal(t, int64(http.StatusServiceUnavailable), fields["statusCode"])
	require.Equal(t, int64(len(`{"success":false}`)), fields["bytes"])
	require.Equal(t, http.MethodPost, fields["method"])
}

func TestWithLogger_InfoBelowServerErrors(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/v1/users/42/breach-check", nil)
	_, logs := serveLogged(t, req, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	require.Equal(t, zapcore.InfoLevel, logs.FilterMessage("access log").All()[0].Level)
}
