package v1handler

import (
	"exposure/pkg/serrors"
	"net/http"
	"strings"
)

// DomainRequest is the body of the surface and monitoring endpoints.
type DomainRequest struct {
	Domain string `json:"domain"`
}

func (h *Handler) domainFromBody(w http.ResponseWriter, r *http.Request) (string, error) {
	var req DomainRequest
	if err := decodeBody(w, r, &req); err != nil {
		return "", err
	}
	if strings.TrimSpace(req.Domain) == "" {
		return "", serrors.With(serrors.ErrBadRequest, "domain is required")
	}

	return req.Domain, nil
}

func (h *Handler) QuickScan(w http.ResponseWriter, r *http.Request) {
	rawDomain, err := h.domainFromBody(w, r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	report, err := h.Scanner.QuickScan(r.Context(), rawDomain)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	h.writeData(w, r, http.StatusOK, "Quick scan completed", report)
}

func (h *Handler) Discover(w http.ResponseWriter, r *http.Request) {
	rawDomain, err := h.domainFromBody(w, r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	report, err := h.Scanner.Discover(r.Context(), rawDomain)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	h.writeData(w, r, http.StatusOK, "API discovery completed", report)
}

func (h *Handler) AddMonitoredDomain(w http.ResponseWriter, r *http.Request) {
	rawDomain, err := h.domainFromBody(w, r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	monitored, err := h.Monitor.AddDomain(r.Context(), rawDomain)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	h.writeData(w, r, http.StatusCreated, "Domain added to monitoring", monitored)
}
