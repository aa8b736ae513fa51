package core

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// MonthLayout is the "YYYY-MM" form used by every category observation.
const MonthLayout = "2006-01"

// SystemHabitMarker identifies habits that the app completes on the user's
// behalf. Matching is case-insensitive on the description.
const SystemHabitMarker = "noumi"

type (
	// CategoryObservation is one month of spending in one category, as
	// returned by the data source.
	CategoryObservation struct {
		CategoryName string          `json:"category_name"`
		Amount       decimal.Decimal `json:"amount"`
		Month        string          `json:"month"`
	}

	// HabitObservation is a weekly habit from the user's plan. Completed is
	// the externally tracked progress and is optional.
	HabitObservation struct {
		Description       string `json:"description"`
		WeeklyOccurrences int    `json:"weekly_occurrences"`
		Completed         *int   `json:"completed,omitempty"`
	}

	// HydratedHabit is a habit ready for display.
	HydratedHabit struct {
		Name        string `json:"name"`
		Total       int    `json:"total"`
		Completed   int    `json:"completed"`
		IsCompleted bool   `json:"isCompleted"`
	}

	// TrendResult describes the category whose spending dropped the most
	// between its two most recent months. DecreaseAmount is negative when
	// spending went up.
	TrendResult struct {
		Category       string          `json:"category"`
		DecreaseAmount decimal.Decimal `json:"decreaseAmount"`
		PercentageDrop decimal.Decimal `json:"percentageDrop"`
		PreviousAmount decimal.Decimal `json:"previousAmount"`
	}

	// WeekRange is a Monday..Sunday calendar week.
	WeekRange struct {
		Start time.Time `json:"start"`
		End   time.Time `json:"end"`
	}
)

var (
	ErrEmptyDescription   = errors.New("empty description")
	ErrInvalidOccurrences = errors.New("weekly occurrences must be at least 1")
	ErrInvalidCompleted   = errors.New("completed count cannot be negative")
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrInvalidMonth       = errors.New("invalid month, expected YYYY-MM")
	ErrEmptyCategory      = errors.New("empty category name")
)

// Validate checks the observation as stored by a backend. The analytics
// functions themselves accept any category name, including "".
func (o CategoryObservation) Validate() error {
	if strings.TrimSpace(o.CategoryName) == "" {
		return ErrEmptyCategory
	}
	if o.Amount.IsNegative() {
		return ErrInvalidAmount
	}
	if _, err := ParseMonth(o.Month); err != nil {
		return err
	}
	return nil
}

// Validate rejects habits that cannot be hydrated.
func (h HabitObservation) Validate() error {
	if strings.TrimSpace(h.Description) == "" {
		return ErrEmptyDescription
	}
	if h.WeeklyOccurrences < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidOccurrences, h.WeeklyOccurrences)
	}
	if h.Completed != nil && *h.Completed < 0 {
		return ErrInvalidCompleted
	}
	return nil
}

// CompletedOrZero returns the tracked progress, 0 when none was supplied.
func (h HabitObservation) CompletedOrZero() int {
	if h.Completed == nil {
		return 0
	}
	return *h.Completed
}

// IsSystemHabit reports whether a description names a habit the app
// completes automatically.
func IsSystemHabit(description string) bool {
	return strings.Contains(strings.ToLower(description), SystemHabitMarker)
}

// ParseMonth parses a "YYYY-MM" month key.
func ParseMonth(s string) (time.Time, error) {
	t, err := time.Parse(MonthLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidMonth, s)
	}
	return t, nil
}

// Days returns the number of calendar days in the range, always 7 for a
// range built by the analytics package.
func (w WeekRange) Days() int {
	return int(w.End.Sub(w.Start).Hours()/24+0.5) + 1
}

// Contains reports whether t falls on one of the range's calendar days.
func (w WeekRange) Contains(t time.Time) bool {
	t = t.In(w.Start.Location())
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return !day.Before(w.Start) && !day.After(w.End)
}

// String renders the range the way the recap cards show it: "MM/DD - MM/DD".
func (w WeekRange) String() string {
	return w.Start.Format("01/02") + " - " + w.End.Format("01/02")
}
