// Package api provides the JSON response and request validation helpers
// shared by the HTTP handlers.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// ErrorResponse is the body written for every failed request.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// RespondJSON writes data as JSON with the given status code.
func RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// RespondError writes {"error": msg}. Server errors are logged with the
// underlying cause, which is never exposed to the client.
func RespondError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, status int, msg string, cause error) {
	if status >= http.StatusInternalServerError && logger != nil {
		logger.ErrorContext(r.Context(), msg, slog.Int("status", status), slog.Any("error", cause))
	}
	RespondJSON(w, status, ErrorResponse{Error: msg})
}

// RespondValidation writes a 400 with per-field messages.
func RespondValidation(w http.ResponseWriter, fields map[string]string) {
	RespondJSON(w, http.StatusBadRequest, ErrorResponse{
		Error:  "validation failed",
		Fields: fields,
	})
}
