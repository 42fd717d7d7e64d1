package utils

import (
	"encoding/json"
	"errors"
	"net/http"

	"NUTRIPLAN_BACK-END/internal/common"
	"NUTRIPLAN_BACK-END/internal/dto"
	"NUTRIPLAN_BACK-END/internal/logger"
)

// WriteJSONResponse writes a JSON response to the HTTP response writer
func WriteJSONResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// WriteErrorResponse writes the uniform {status, message} error envelope
func WriteErrorResponse(w http.ResponseWriter, status int, message string) {
	WriteJSONResponse(w, status, dto.ErrorResponse{Status: status, Message: message})
}

// WriteError maps a typed error variant to its status code and writes the
// error envelope. Anything outside the known variants is logged server-side
// and reported to the client as a generic 500.
func WriteError(w http.ResponseWriter, err error) {
	var (
		validationErr   *common.ValidationError
		notFoundErr     *common.NotFoundError
		unauthorizedErr *common.UnauthorizedError
	)

	switch {
	case errors.As(err, &validationErr):
		WriteErrorResponse(w, http.StatusBadRequest, validationErr.Message)
	case errors.As(err, &notFoundErr):
		WriteErrorResponse(w, http.StatusNotFound, notFoundErr.Message)
	case errors.As(err, &unauthorizedErr):
		WriteErrorResponse(w, http.StatusUnauthorized, unauthorizedErr.Message)
	default:
		logger.Error("unexpected error", "error", err)
		WriteErrorResponse(w, http.StatusInternalServerError, "An unexpected error occurred")
	}
}
