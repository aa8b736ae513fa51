// Package fixture serves data source records from memory, seeded from JSON
// files or from the built-in demo dataset.
package fixture

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/shopspring/decimal"

	"noumi/internal/core"
	"noumi/internal/datasource"
)

// Dataset is a full set of raw records, one field per resource.
type Dataset struct {
	SpendingCategories []core.CategoryObservation `json:"spending_categories"`
	SpendingStatus     core.SpendingStatus        `json:"spending_status"`
	TotalSpending      core.TotalSpending         `json:"spending_total"`
	Habits             []core.HabitObservation    `json:"habits"`
	AccomplishedHabits []core.Accomplishment      `json:"accomplished_habits"`
	ComputedGoal       core.ComputedGoal          `json:"goal"`
	WeeklyStreak       core.WeeklyStreak          `json:"weekly_streak"`
	LongestStreak      core.LongestStreak         `json:"longest_streak"`
	WeeklySavings      core.WeeklySavings         `json:"savings"`
}

// Validate checks every spending record.
func (d Dataset) Validate() error {
	for i, o := range d.SpendingCategories {
		if err := o.Validate(); err != nil {
			return fmt.Errorf("spending category %d: %w", i, err)
		}
	}
	return nil
}

// Default returns the demo dataset the app ships with.
func Default() Dataset {
	amt := decimal.RequireFromString
	return Dataset{
		SpendingCategories: []core.CategoryObservation{
			{CategoryName: "Coffee Shops", Amount: amt("284.51"), Month: "2025-06"},
			{CategoryName: "Shopping", Amount: amt("289.24"), Month: "2025-06"},
			{CategoryName: "Delivery Services", Amount: amt("132.65"), Month: "2025-06"},
			{CategoryName: "Coffee Shops", Amount: amt("250"), Month: "2025-05"},
			{CategoryName: "Shopping", Amount: amt("1200"), Month: "2025-05"},
			{CategoryName: "Delivery Services", Amount: amt("200"), Month: "2025-05"},
		},
		SpendingStatus: core.SpendingStatus{
			Income:            amt("6000"),
			Expenses:          amt("5000"),
			AmountSafeToSpend: amt("1000"),
		},
		TotalSpending: core.TotalSpending{SpentSoFar: amt("430")},
		Habits: []core.HabitObservation{
			{Description: "Try a No-Spend-Day", WeeklyOccurrences: 1},
			{Description: "Eat at home twice", WeeklyOccurrences: 2},
			{Description: "Log in to Noumi daily", WeeklyOccurrences: 7},
		},
		AccomplishedHabits: []core.Accomplishment{
			{Description: "You bought 2 coffees instead of 7, saving $36.24.", Value: "+$36.24"},
			{Description: "You logged in to Noumi every day this week", Value: "noumi"},
		},
		ComputedGoal: core.ComputedGoal{
			GoalName:    "Emergency fund",
			TargetDate:  core.NewDate(2025, 12, 31),
			GoalAmount:  amt("5000"),
			AmountSaved: amt("1200"),
		},
		WeeklyStreak:  core.WeeklyStreak{1, 1, 1, 0, 0, 0, 0},
		LongestStreak: core.LongestStreak{LongestStreak: 3},
		WeeklySavings: core.WeeklySavings{
			ActualSavings:                amt("120"),
			SuggestedSavingsAmountWeekly: amt("150"),
		},
	}
}

// LoadDir reads "<resource>.json" files from dir on top of the default
// dataset. Missing files keep the default; malformed files are an error.
func LoadDir(dir string) (Dataset, error) {
	d := Default()
	targets := map[string]any{
		datasource.ResourceSpendingCategories: &d.SpendingCategories,
		datasource.ResourceSpendingStatus:     &d.SpendingStatus,
		datasource.ResourceTotalSpending:      &d.TotalSpending,
		datasource.ResourceHabits:             &d.Habits,
		datasource.ResourceAccomplishedHabits: &d.AccomplishedHabits,
		datasource.ResourceComputedGoal:       &d.ComputedGoal,
		datasource.ResourceWeeklyStreak:       &d.WeeklyStreak,
		datasource.ResourceLongestStreak:      &d.LongestStreak,
		datasource.ResourceWeeklySavings:      &d.WeeklySavings,
	}
	for _, resource := range datasource.Resources {
		path := filepath.Join(dir, resource+".json")
		b, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return Dataset{}, fmt.Errorf("read %s: %w", path, err)
		}
		if err := json.Unmarshal(b, targets[resource]); err != nil {
			return Dataset{}, fmt.Errorf("decode %s: %w", path, err)
		}
	}
	if err := d.Validate(); err != nil {
		return Dataset{}, fmt.Errorf("fixture %s: %w", dir, err)
	}
	return d, nil
}

// Store is an in-memory datasource.Source.
type Store struct {
	mu   sync.RWMutex
	data Dataset
}

// New creates a store holding a copy of d.
func New(d Dataset) *Store {
	s := &Store{}
	s.Replace(d)
	return s
}

// NewFromDir loads a store from a fixture directory.
func NewFromDir(dir string) (*Store, error) {
	d, err := LoadDir(dir)
	if err != nil {
		return nil, err
	}
	return New(d), nil
}

// Replace swaps the whole dataset.
func (s *Store) Replace(d Dataset) {
	d.SpendingCategories = append([]core.CategoryObservation(nil), d.SpendingCategories...)
	d.Habits = append([]core.HabitObservation(nil), d.Habits...)
	d.AccomplishedHabits = append([]core.Accomplishment(nil), d.AccomplishedHabits...)
	d.WeeklyStreak = append(core.WeeklyStreak(nil), d.WeeklyStreak...)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = d
}

// Snapshot returns a copy of the current dataset.
func (s *Store) Snapshot() Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d := s.data
	d.SpendingCategories = append([]core.CategoryObservation(nil), d.SpendingCategories...)
	d.Habits = append([]core.HabitObservation(nil), d.Habits...)
	d.AccomplishedHabits = append([]core.Accomplishment(nil), d.AccomplishedHabits...)
	d.WeeklyStreak = append(core.WeeklyStreak(nil), d.WeeklyStreak...)
	return d
}

func (s *Store) SpendingCategories(_ context.Context) ([]core.CategoryObservation, error) {
	return s.Snapshot().SpendingCategories, nil
}

func (s *Store) SpendingStatus(_ context.Context) (core.SpendingStatus, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.SpendingStatus, nil
}

func (s *Store) TotalSpending(_ context.Context) (core.TotalSpending, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.TotalSpending, nil
}

func (s *Store) Habits(_ context.Context) ([]core.HabitObservation, error) {
	return s.Snapshot().Habits, nil
}

func (s *Store) AccomplishedHabits(_ context.Context) ([]core.Accomplishment, error) {
	return s.Snapshot().AccomplishedHabits, nil
}

func (s *Store) ComputedGoal(_ context.Context) (core.ComputedGoal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.ComputedGoal, nil
}

func (s *Store) WeeklyStreak(_ context.Context) (core.WeeklyStreak, error) {
	return s.Snapshot().WeeklyStreak, nil
}

func (s *Store) LongestStreak(_ context.Context) (core.LongestStreak, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.LongestStreak, nil
}

func (s *Store) WeeklySavings(_ context.Context) (core.WeeklySavings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.WeeklySavings, nil
}

var _ datasource.Source = (*Store)(nil)
