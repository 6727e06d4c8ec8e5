package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	apperrors "learning-resources/pkg/errors"
)

// writeError writes an error response. The message goes through the JSON
// encoder so upstream text with quotes cannot break the payload.
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{"error": message})
}

// writeJSON writes a JSON response with the given status code
func writeJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeAppError maps a service error onto the wire: AppErrors carry their
// own status and user-facing message, anything else is a plain 500.
func writeAppError(w http.ResponseWriter, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		writeError(w, appErr.StatusCode, appErr.Message)
		return
	}
	writeError(w, http.StatusInternalServerError, "internal error")
}
