// Package handler processes incoming http requests.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/example/launchpad/internal/models"
)

// ErrorResponse standardizes error response structure.
type ErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// MapDomainErrorToHTTPCode translates domain errors to http status codes.
// Unknown errors map to a generic 500 without leaking internals.
func MapDomainErrorToHTTPCode(err error) (int, string, string) {
	if errors.Is(err, models.ErrNotFound) {
		return http.StatusNotFound, "NOT_FOUND", err.Error()
	}
	if errors.Is(err, models.ErrInvalidInput) {
		return http.StatusBadRequest, "INVALID_INPUT", err.Error()
	}
	if errors.Is(err, models.ErrForbidden) {
		return http.StatusForbidden, "FORBIDDEN", err.Error()
	}
	return http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error"
}

// respondWithError sends a json formatted error response.
func respondWithError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	resp := ErrorResponse{
		Error: struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		}{
			Code:    code,
			Message: message,
		},
	}

	_ = json.NewEncoder(w).Encode(resp)
}

// respondWithJSON sends a successful json response.
func respondWithJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
