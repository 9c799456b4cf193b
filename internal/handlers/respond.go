// Package handlers implements the HTTP handlers for the inkpost JSON API,
// grouped by concern: auth, public reads, admin writes, and media.
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"inkpost/internal/apperr"
)

// respondJSON marshals v and writes it with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		slog.Error("response marshal failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	respondRaw(w, status, body)
}

// respondRaw writes pre-marshaled JSON. Used for cached responses.
func respondRaw(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(body)
}

// respondError converts an error into the {status, message} JSON shape.
// Unclassified errors become 500s and are logged with their cause.
func respondError(w http.ResponseWriter, err error) {
	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		appErr = apperr.Internal(err)
	}

	status := apperr.Status(appErr)
	if status == http.StatusInternalServerError {
		slog.Error("request failed", "error", err)
	}

	respondJSON(w, status, map[string]string{"message": appErr.Message})
}

// decodeJSON decodes a request body, mapping any decode failure to a
// generic validation error.
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apperr.Validation("Invalid payload")
	}
	return nil
}
