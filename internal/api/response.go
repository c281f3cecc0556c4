// Package api is the HTTP surface over sessions, insights and project
// dashboards. Success bodies are the resource itself; failures use the
// error envelope.
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"fieldnotes/internal/domain"
	"fieldnotes/internal/logging"
)

// ErrorEnvelope is the body of every failed request:
// {"error": {"code": "...", "message": "..."}}
type ErrorEnvelope struct {
	Error ErrorPayload `json:"error"`
}

// ErrorPayload holds structured error information
type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Standard error codes mapped to HTTP status codes
const (
	ErrInternal   = "internal"         // 500
	ErrNotFound   = "not_found"        // 404
	ErrValidation = "validation_error" // 400
)

// WriteJSON writes data as a JSON body with the given status
func WriteJSON(w http.ResponseWriter, data any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logging.Logger.Error("write response", "error", err)
	}
}

// WriteError writes the error envelope
func WriteError(w http.ResponseWriter, code, message string, status int) {
	WriteJSON(w, ErrorEnvelope{Error: ErrorPayload{Code: code, Message: message}}, status)
}

// writeDomainError maps a service error to its status code
func writeDomainError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrSessionNotFound),
		errors.Is(err, domain.ErrProjectNotFound),
		errors.Is(err, domain.ErrNoRecording):
		WriteError(w, ErrNotFound, err.Error(), http.StatusNotFound)
	case domain.IsValidationError(err):
		WriteError(w, ErrValidation, err.Error(), http.StatusBadRequest)
	default:
		logging.Logger.Error(op, "error", err)
		WriteError(w, ErrInternal, op+" failed", http.StatusInternalServerError)
	}
}
