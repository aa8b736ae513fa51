// Package analytics derives the values shown on the noumi screens from raw
// data source records: the category series, the biggest month-over-month
// decrease, the top categories of the latest month, hydrated habits, goal
// progress and calendar week ranges.
//
// Every function is pure: results depend only on the arguments, nothing is
// cached and nothing is shared, so callers may invoke them concurrently.
package analytics

import (
	"errors"
	"sort"

	"github.com/shopspring/decimal"

	"noumi/internal/core"
)

// ErrInvalidLimit is returned when a count argument (top N, number of weeks)
// is not positive.
var ErrInvalidLimit = errors.New("limit must be positive")

// CategorySeries maps category name -> month -> amount. Categories keep the
// order in which they first appeared in the input.
type CategorySeries struct {
	order  []string
	byName map[string]map[string]decimal.Decimal
}

// AggregateByCategoryAndMonth groups observations by category and month.
// When the same (category, month) pair appears more than once, the later
// observation wins.
func AggregateByCategoryAndMonth(observations []core.CategoryObservation) *CategorySeries {
	s := &CategorySeries{byName: make(map[string]map[string]decimal.Decimal)}
	for _, o := range observations {
		months, ok := s.byName[o.CategoryName]
		if !ok {
			months = make(map[string]decimal.Decimal)
			s.byName[o.CategoryName] = months
			s.order = append(s.order, o.CategoryName)
		}
		months[o.Month] = o.Amount
	}
	return s
}

// Len returns the number of categories.
func (s *CategorySeries) Len() int {
	return len(s.order)
}

// Categories returns category names in first-occurrence order.
func (s *CategorySeries) Categories() []string {
	return append([]string(nil), s.order...)
}

// Months returns the months recorded for a category, oldest first.
func (s *CategorySeries) Months(category string) []string {
	months := s.byName[category]
	out := make([]string, 0, len(months))
	for m := range months {
		out = append(out, m)
	}
	sort.Strings(out)
	return out
}

// Amount returns the amount for a (category, month) pair.
func (s *CategorySeries) Amount(category, month string) (decimal.Decimal, bool) {
	amt, ok := s.byName[category][month]
	return amt, ok
}

// SeriesPoint is one month of a category's series.
type SeriesPoint struct {
	Month  string          `json:"month"`
	Amount decimal.Decimal `json:"amount"`
}

// CategoryTimeline is a category's full series, oldest month first.
type CategoryTimeline struct {
	Category string        `json:"category"`
	Points   []SeriesPoint `json:"points"`
}

// Timelines flattens the series for serialization, preserving category
// order.
func (s *CategorySeries) Timelines() []CategoryTimeline {
	out := make([]CategoryTimeline, 0, len(s.order))
	for _, name := range s.order {
		months := s.Months(name)
		points := make([]SeriesPoint, 0, len(months))
		for _, m := range months {
			points = append(points, SeriesPoint{Month: m, Amount: s.byName[name][m]})
		}
		out = append(out, CategoryTimeline{Category: name, Points: points})
	}
	return out
}
