package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/shrimpsizemoose/skolbok/internal/registry"
	"github.com/shrimpsizemoose/skolbok/internal/report"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error.Printf("Failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]interface{}{"message": message})
}

// writeDomainError maps the error taxonomy onto HTTP statuses: missing field
// is a bad request, duplicate roll number a conflict, unresolved id a 404.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, registry.ErrMissingField):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, registry.ErrDuplicateRollNo):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, registry.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, report.ErrNotAuthorized):
		writeError(w, http.StatusForbidden, err.Error())
	default:
		logger.Error.Printf("Unexpected error: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
