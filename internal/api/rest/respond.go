package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"sportshare-backend/internal/domain"
	"sportshare-backend/internal/logger"
)

type envelope struct {
	OK    bool       `json:"ok"`
	Data  any        `json:"data,omitempty"`
	Error *errorBody `json:"error,omitempty"`
}

type errorBody struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

func writeOK(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, envelope{OK: true, Data: data})
}

func writeCreated(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusCreated, envelope{OK: true, Data: data})
}

// writeError maps the service error taxonomy onto HTTP status codes.
// Anything unmapped is a 500 with a generic message; the cause is
// logged, not leaked.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "internal server error"

	switch {
	case domain.IsValidation(err),
		errors.Is(err, domain.ErrInvalidEquipment),
		errors.Is(err, domain.ErrInvalidSport),
		errors.Is(err, domain.ErrInvalidStatus):
		status = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, domain.ErrUnauthenticated):
		status = http.StatusUnauthorized
		message = err.Error()
	case errors.Is(err, domain.ErrNotOwner):
		status = http.StatusForbidden
		message = err.Error()
	case errors.Is(err, domain.ErrEquipmentNotFound),
		errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, domain.ErrOutsideAvailability),
		errors.Is(err, domain.ErrBookingConflict):
		status = http.StatusConflict
		message = err.Error()
	default:
		logger.Error("Unhandled request error", "error", err)
	}

	writeJSON(w, status, envelope{OK: false, Error: &errorBody{Message: message}})
}
