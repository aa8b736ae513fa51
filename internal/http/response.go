package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"noumi/internal/analytics"
	"noumi/internal/core"
	"noumi/internal/datasource"
	"noumi/internal/log"
	"noumi/internal/middleware/trace"
)

var (
	errBadRequest    = errors.New("bad request")
	errHabitNotFound = errors.New("no incomplete habit with that name")
)

type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// statusFor maps service errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, core.ErrInvalidOccurrences),
		errors.Is(err, core.ErrInvalidCompleted),
		errors.Is(err, analytics.ErrInvalidLimit):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errHabitNotFound), errors.Is(err, datasource.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, datasource.ErrUnavailable):
		return http.StatusBadGateway
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// writeError logs err and writes a JSON error body. Internal errors are not
// echoed to the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = http.StatusText(status)
	}

	logger := log.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		logger.ErrorContext(r.Context(), "Request failed",
			log.FieldError, err,
			log.FieldStatusCode, status,
			log.FieldPath, r.URL.Path)
	} else {
		logger.DebugContext(r.Context(), "Request rejected",
			log.FieldError, err,
			log.FieldStatusCode, status)
	}

	writeJSON(w, status, errorResponse{Error: msg, RequestID: trace.GetRequestID(r.Context())})
}
