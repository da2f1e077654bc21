package v1handler

import (
	"exposure/internal/breach"
	"exposure/pkg/domain"
	"exposure/pkg/serrors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"
)

// RegisterUserRequest is the body of the user registration endpoint.
type RegisterUserRequest struct {
	Email string `json:"email"`
}

// ServiceRequest is one service in the body of the services endpoint.
type ServiceRequest struct {
	ServiceName string `json:"serviceName"`
	Domain      string `json:"domain"`
}

// AddServicesRequest is the body of the services endpoint.
type AddServicesRequest struct {
	Services []ServiceRequest `json:"services"`
}

// EnqueueResponse is the payload of an asynchronous breach check.
type EnqueueResponse struct {
	Queued bool `json:"queued"`
}

func (h *Handler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var req RegisterUserRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	user, err := h.Breach.RegisterUser(r.Context(), req.Email)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	h.writeData(w, r, http.StatusCreated, "User registered", user)
}

func (h *Handler) AddServices(w http.ResponseWriter, r *http.Request) {
	userID, err := breach.ParseUserID(chi.URLParam(r, "userID"))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	var req AddServicesRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	services := lo.Map(req.Services, func(s ServiceRequest, _ int) domain.UserService {
		return domain.UserService{ServiceName: s.ServiceName, Domain: s.Domain}
	})
	stored, err := h.Breach.AddServices(r.Context(), userID, services)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	h.writeData(w, r, http.StatusCreated, "Services added", stored)
}

// BreachCheck runs a breach check for the user. With async=true the check is
// queued and the response only says whether a new job was added.
func (h *Handler) BreachCheck(w http.ResponseWriter, r *http.Request) {
	userID, err := breach.ParseUserID(chi.URLParam(r, "userID"))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	async := false
	if raw := r.URL.Query().Get("async"); raw != "" {
		async, err = strconv.ParseBool(raw)
		if err != nil {
			h.writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid async flag"))

			return
		}
	}

	if async {
		queued, err := h.Breach.Enqueue(r.Context(), userID)
		if err != nil {
			h.writeError(w, r, err)

			return
		}

		h.writeData(w, r, http.StatusAccepted, "Breach check queued", EnqueueResponse{Queued: queued})

		return
	}

	report, err := h.Breach.RunBreachCheck(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	h.writeData(w, r, http.StatusOK, "Breach check completed", report)
}
