package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"noumi/internal/analytics"
	"noumi/internal/core"
	"noumi/internal/recap"
)

type weekView struct {
	Start core.Date `json:"start"`
	End   core.Date `json:"end"`
	Label string    `json:"label"`
}

func newWeekView(w core.WeekRange) weekView {
	return weekView{Start: core.Date{Time: w.Start}, End: core.Date{Time: w.End}, Label: w.String()}
}

func withTimeout(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), requestTimeout)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	checks := map[string]string{"service": "ok"}
	status := http.StatusOK

	if s.ready != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()
		if err := s.ready(ctx); err != nil {
			checks["data_source"] = err.Error()
			status = http.StatusServiceUnavailable
		} else {
			checks["data_source"] = "ok"
		}
	}

	overall := "ready"
	if status != http.StatusOK {
		overall = "not_ready"
	}
	writeJSON(w, status, map[string]any{"status": overall, "checks": checks})
}

func (s *Server) handleTrend(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := withTimeout(r)
	defer cancel()

	card, err := s.svc.Trend(ctx)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Trend *recap.TrendCard `json:"trend"`
	}{card})
}

func (s *Server) handleTopCategories(w http.ResponseWriter, r *http.Request) {
	n, err := queryLimit(r, "n", s.svc.Options().TopN)
	if err != nil {
		writeError(w, r, err)
		return
	}

	ctx, cancel := withTimeout(r)
	defer cancel()

	top, err := s.svc.TopCategories(ctx, n)
	if err != nil {
		writeError(w, r, err)
		return
	}
	month := ""
	if len(top) > 0 {
		month = top[0].Month
	}
	writeJSON(w, http.StatusOK, struct {
		Month      string                     `json:"month"`
		Categories []core.CategoryObservation `json:"categories"`
	}{month, top})
}

func (s *Server) handleSeries(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := withTimeout(r)
	defer cancel()

	series, err := s.svc.Series(ctx)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Categories []analytics.CategoryTimeline `json:"categories"`
	}{series})
}

func (s *Server) handleHabits(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := withTimeout(r)
	defer cancel()

	habits, err := s.svc.Habits(ctx)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Habits []core.HydratedHabit `json:"habits"`
	}{habits})
}

func (s *Server) handleCompleteHabit(w http.ResponseWriter, r *http.Request) {
	req, err := parseCompleteHabit(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	habits := req.Habits
	if habits == nil {
		ctx, cancel := withTimeout(r)
		defer cancel()
		if habits, err = s.svc.Habits(ctx); err != nil {
			writeError(w, r, err)
			return
		}
	}

	updated, ok := analytics.RecordHabitCompletion(habits, req.Name)
	if !ok {
		writeError(w, r, fmt.Errorf("%q: %w", req.Name, errHabitNotFound))
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Habits []core.HydratedHabit `json:"habits"`
	}{updated})
}

func (s *Server) handleWeeks(w http.ResponseWriter, r *http.Request) {
	n, err := queryLimit(r, "n", defaultWeeks)
	if err != nil {
		writeError(w, r, err)
		return
	}
	ranges, err := analytics.PastNWeekRanges(s.now(), n)
	if err != nil {
		writeError(w, r, err)
		return
	}
	weeks := make([]weekView, 0, len(ranges))
	for _, wr := range ranges {
		weeks = append(weeks, newWeekView(wr))
	}
	writeJSON(w, http.StatusOK, struct {
		Weeks []weekView `json:"weeks"`
	}{weeks})
}

func (s *Server) handleCurrentWeek(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, newWeekView(analytics.CurrentWeekRange(s.now())))
}

func (s *Server) handleGoal(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := withTimeout(r)
	defer cancel()

	goal, err := s.svc.Goal(ctx, s.now())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, goal)
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := withTimeout(r)
	defer cancel()

	home, err := s.svc.Home(ctx, s.now())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, home)
}

func (s *Server) handleRecap(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := withTimeout(r)
	defer cancel()

	weekly, err := s.svc.Build(ctx, s.now())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, weekly)
}
