// Package httpapi exposes the file explorer over HTTP: JSON endpoints for
// auth, directory listings, file content, and per-type metadata, plus the
// middleware (identity, rate limits) shared by those routes.
package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/fileexplorer/internal/common"
)

type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeError maps the sentinel error taxonomy onto HTTP statuses:
// AccessDenied 403, NotFound 404, Unauthorized (and bad tokens) 401,
// Conflict 400, anything else 500 with the underlying message surfaced.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, common.ErrAccessDenied):
		writeJSON(w, http.StatusForbidden, errorResponse{Error: "Access denied"})
	case errors.Is(err, common.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "File not found"})
	case errors.Is(err, common.ErrUnauthorized),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrTokenExpired):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "Invalid credentials"})
	case errors.Is(err, common.ErrConflict):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "User already exists"})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
	}
}
