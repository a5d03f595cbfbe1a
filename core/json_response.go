package core

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"
)

// ErrorBody is the wire shape for every error this service returns. Internal
// details (stack traces, physical database names) never appear here.
type ErrorBody struct {
	Timestamp string `json:"timestamp"`
	Status    int    `json:"status"`
	Error     string `json:"error"`
	Message   string `json:"message,omitempty"`
}

// JSON writes v as a JSON response with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes a structured JSON error body.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, ErrorBody{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Status:    status,
		Error:     http.StatusText(status),
		Message:   message,
	})
}

// RenderError maps an error to a JSON error response: HTTPError values keep
// their status, anything else becomes a 500 with a generic message.
func RenderError(w http.ResponseWriter, err error) {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		Error(w, httpErr.Code, http.StatusText(httpErr.Code))
		return
	}
	Error(w, http.StatusInternalServerError, "Unexpected error")
}
