package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/holidays"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps domain errors onto HTTP statuses. Unknown errors are logged
// and reported as a plain 500 without leaking internals.
func writeError(w http.ResponseWriter, log *slog.Logger, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Error("request failed", slog.Any("error", err))
		writeJSON(w, status, errorResponse{Error: "internal error"})
		return
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, holidays.ErrProviderNotFound),
		errors.Is(err, holidays.ErrHolidayNotFound):
		return http.StatusNotFound
	case errors.Is(err, holidays.ErrInvalidYear),
		errors.Is(err, holidays.ErrUnknownLocale),
		errors.Is(err, holidays.ErrInvalidArgument),
		errors.Is(err, holidays.ErrMissingTranslation),
		errors.Is(err, holidays.ErrInputTypeMismatch):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
