package middleware

import (
	"encoding/json"
	"net/http"
)

// WriteError emits the {"message": ...} error body used across the API.
// Handlers build this shape through the apperr taxonomy; middleware and the
// router sit below that layer and cannot import it back, so the shape is
// written here exactly once instead of by hand at each call site.
func WriteError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}
