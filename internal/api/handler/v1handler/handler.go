// Package v1handler implements the v1 JSON API: surface scans, users and
// their services, breach checks and domain monitoring.
package v1handler

import (
	"context"
	"encoding/json"
	"errors"
	"exposure/internal/breach"
	"exposure/internal/monitor"
	"exposure/internal/surface"
	"exposure/pkg/logger"
	"exposure/pkg/serrors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 1 << 20

// Pinger reports whether a backing dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Deps are the collaborators the handlers call into.
type Deps struct {
	Scanner surface.Scanner
	Breach  breach.Runner
	Monitor monitor.Monitor
	// Pinger backs the health endpoint. It may be nil.
	Pinger Pinger
}

type Handler struct {
	Deps
}

func New(deps Deps) *Handler {
	return &Handler{Deps: deps}
}

// Routes mounts the v1 endpoints on r.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/health", h.Health)

	r.Route("/surface", func(r chi.Router) {
		r.Post("/scan", h.QuickScan)
		r.Post("/discover", h.Discover)
	})

	r.Route("/users", func(r chi.Router) {
		r.Post("/", h.RegisterUser)
		r.Post("/{userID}/services", h.AddServices)
		r.Post("/{userID}/breach-check", h.BreachCheck)
	})

	r.Post("/monitored-domains", h.AddMonitoredDomain)
}

// Response is the envelope of every successful response.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// ErrorResponse is the envelope of every failed response.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	// Error is the semantic kind of the failure, e.g. BAD_REQUEST.
	Error string `json:"error"`
}

// NewError maps err to an HTTP status and error envelope. Semantic kinds keep
// their message; anything else is logged and reported as an internal error.
func (h *Handler) NewError(ctx context.Context, err error) (int, ErrorResponse) {
	kind := serrors.KindOf(err)
	status := http.StatusInternalServerError
	message := "internal error"

	switch kind {
	case serrors.ErrBadRequest:
		status, message = http.StatusBadRequest, "invalid request"
	case serrors.ErrNotFound:
		status, message = http.StatusNotFound, "resource not found"
	case serrors.ErrRateLimited:
		status, message = http.StatusTooManyRequests, "upstream rate limit reached, try again later"
	case serrors.ErrUnavailable:
		status, message = http.StatusServiceUnavailable, "upstream service unavailable"
	case serrors.ErrTimeout:
		status, message = http.StatusGatewayTimeout, "request timed out"
	default:
		kind = serrors.ErrInternal
	}

	var semantic *serrors.Error
	if errors.As(err, &semantic) && semantic.Message() != "" && kind != serrors.ErrInternal {
		message = semantic.Message()
	}

	if status >= http.StatusInternalServerError {
		logger.Error(ctx, "request failed", zap.Error(err))
	} else {
		logger.Warn(ctx, "request rejected", zap.Error(err))
	}

	return status, ErrorResponse{Success: false, Message: message, Error: kind.Error()}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, body := h.NewError(r.Context(), err)
	writeJSON(r.Context(), w, status, body)
}

func (h *Handler) writeData(w http.ResponseWriter, r *http.Request, status int, message string, data any) {
	writeJSON(r.Context(), w, status, Response{Success: true, Message: message, Data: data})
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error(ctx, "could not encode response", zap.Int("status", status), zap.Error(err))
	}
}

// decodeBody decodes a single JSON object from the request body.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}
	if dec.More() {
		return serrors.With(serrors.ErrBadRequest, "request body must contain a single JSON object")
	}

	return nil
}

// HealthResponse is the payload of the health endpoint.
type HealthResponse struct {
	Status    string    `json:"status"`
	Database  string    `json:"database"`
	Timestamp time.Time `json:"timestamp"`
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	res := HealthResponse{Status: "healthy", Database: "unknown", Timestamp: time.Now().UTC()}
	status := http.StatusOK

	if h.Pinger != nil {
		if err := h.Pinger.Ping(r.Context()); err != nil {
			logger.Warn(r.Context(), "database ping failed", zap.Error(err))
			res.Status, res.Database = "unhealthy", "unreachable"
			status = http.StatusServiceUnavailable
		} else {
			res.Database = "ok"
		}
	}

	writeJSON(r.Context(), w, status, res)
}
