package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"noumi/internal/analytics"
	"noumi/internal/core"
)

// queryLimit reads a positive count from the query string. Absent values
// yield def; malformed values are a bad request and non-positive ones an
// invalid limit.
func queryLimit(r *http.Request, name string, def int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", errBadRequest, name)
	}
	if n < 1 {
		return 0, fmt.Errorf("%s=%d: %w", name, n, analytics.ErrInvalidLimit)
	}
	return n, nil
}

type completeHabitRequest struct {
	Name string `json:"name"`
	// Habits is the client's current list. When omitted the data source's
	// habits are used.
	Habits []core.HydratedHabit `json:"habits,omitempty"`
}

func parseCompleteHabit(w http.ResponseWriter, r *http.Request) (completeHabitRequest, error) {
	var req completeHabitRequest

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return req, fmt.Errorf("%w: body exceeds %d bytes", errBadRequest, maxErr.Limit)
		}
		return req, fmt.Errorf("%w: invalid JSON body", errBadRequest)
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return req, fmt.Errorf("%w: name is required", errBadRequest)
	}
	for _, h := range req.Habits {
		if h.Total < 1 {
			return req, fmt.Errorf("habit %q: %w", h.Name, core.ErrInvalidOccurrences)
		}
		if h.Completed < 0 {
			return req, fmt.Errorf("habit %q: %w", h.Name, core.ErrInvalidCompleted)
		}
	}
	return req, nil
}
