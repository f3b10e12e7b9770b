package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/example/launchpad/internal/config"
	"github.com/example/launchpad/internal/ctxutil"
	"github.com/example/launchpad/internal/models"
	"github.com/example/launchpad/internal/ports/primary"
)

// ReleaseHandler exposes release decision operations over HTTP.
type ReleaseHandler struct {
	releaseService primary.ReleaseService
	access         config.Access
}

// NewReleaseHandler creates a new instance of ReleaseHandler.
func NewReleaseHandler(releaseService primary.ReleaseService, access config.Access) *ReleaseHandler {
	return &ReleaseHandler{releaseService: releaseService, access: access}
}

// ListReleases processes GET /api/releases.
func (h *ReleaseHandler) ListReleases(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "INVALID_INPUT", "limit must be an integer")
			return
		}
		limit = parsed
	}

	releases, err := h.releaseService.ListReleases(r.Context(), limit)
	if err != nil {
		slog.Error("failed to list releases", "error", err)
		status, code, msg := MapDomainErrorToHTTPCode(err)
		respondWithError(w, status, code, msg)
		return
	}

	actor := ctxutil.ActorFromContext(r.Context())
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"releases":      releases,
		"is_privileged": h.access.IsPrivileged(actor),
	})
}

// CreateRelease processes POST /api/releases.
func (h *ReleaseHandler) CreateRelease(w http.ResponseWriter, r *http.Request) {
	var req primary.CreateReleaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "INVALID_INPUT", "Invalid JSON body")
		return
	}

	release, err := h.releaseService.CreateRelease(r.Context(), req)
	if err != nil {
		slog.Error("failed to create release", "error", err)
		status, code, msg := MapDomainErrorToHTTPCode(err)
		respondWithError(w, status, code, msg)
		return
	}

	respondWithJSON(w, http.StatusCreated, map[string]interface{}{"release": release})
}

// DeleteRelease processes DELETE /api/releases/{id}. Privileged users only.
func (h *ReleaseHandler) DeleteRelease(w http.ResponseWriter, r *http.Request) {
	actor := ctxutil.ActorFromContext(r.Context())
	if !h.access.IsPrivileged(actor) {
		status, code, msg := MapDomainErrorToHTTPCode(models.ErrForbidden)
		respondWithError(w, status, code, msg)
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "INVALID_INPUT", "id must be an integer")
		return
	}

	changed, err := h.releaseService.DeleteRelease(r.Context(), id)
	if err != nil {
		slog.Error("failed to delete release", "release_id", id, "error", err)
		status, code, msg := MapDomainErrorToHTTPCode(err)
		respondWithError(w, status, code, msg)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{"deleted": changed})
}

// ValidateTicket processes GET /api/validate-jira/{ticketKey}.
func (h *ReleaseHandler) ValidateTicket(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "ticketKey")
	if key == "" {
		respondWithError(w, http.StatusBadRequest, "INVALID_INPUT", "ticket key is required")
		return
	}

	respondWithJSON(w, http.StatusOK, h.releaseService.ValidateTicket(r.Context(), key))
}
