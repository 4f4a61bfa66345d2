// ABOUTME: JSON response helpers for middleware and raw chi handlers
// ABOUTME: Writes the {error, message} body shared by rate limiting and hero debug

package middleware

import (
	"encoding/json"
	"net/http"
)

// ErrorBody is the JSON error shape written by raw handlers
type ErrorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// WriteError writes an {error, message} JSON body with the given status
func WriteError(w http.ResponseWriter, status int, errText, message string) {
	WriteJSON(w, status, ErrorBody{Error: errText, Message: message})
}

// WriteJSON writes v as a JSON body with the given status
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
