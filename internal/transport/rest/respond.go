package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/tWoAlex/foodgram-project-react/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeValidationError includes per-field messages alongside the summary.
func writeValidationError(w http.ResponseWriter, verr *domain.ValidationError) {
	fields := make(map[string]string, len(verr.Errors))
	for _, fe := range verr.Errors {
		fields[fe.Field] = fe.Message
	}
	writeJSON(w, http.StatusBadRequest, map[string]any{
		"error":  verr.Error(),
		"fields": fields,
	})
}

// handleError maps domain errors to HTTP statuses. Unknown errors are
// logged and masked as 500.
func handleError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		writeValidationError(w, verr)
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrSelfReference):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrAlreadyExists), errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, err.Error())
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
