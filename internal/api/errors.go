package api

import (
	"encoding/json"
	"net/http"

	"github.com/nauticalab/paramfile/internal/log"
)

// respondJSON sends a JSON response with the given status code
func respondJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			logger := log.WithComponent("api")
			logger.Error().Err(err).Msg("error encoding JSON response")
		}
	}
}

// respondError sends an error response in JSON format
func respondError(w http.ResponseWriter, code int, message string) {
	respondJSON(w, code, ErrorResponse{
		Error:   http.StatusText(code),
		Message: message,
		Code:    code,
	})
}

// respondNotFound sends a 404 Not Found error
func respondNotFound(w http.ResponseWriter, message string) {
	respondError(w, http.StatusNotFound, message)
}

// respondConflict sends a 409 Conflict error
func respondConflict(w http.ResponseWriter, message string) {
	respondError(w, http.StatusConflict, message)
}

// respondInternalError sends a 500 Internal Server Error
func respondInternalError(w http.ResponseWriter, message string) {
	respondError(w, http.StatusInternalServerError, message)
}

// respondSuccess sends a 200 OK with payload
func respondSuccess(w http.ResponseWriter, payload interface{}) {
	respondJSON(w, http.StatusOK, payload)
}
