// Package datasource defines the read ports the analytics service pulls raw
// records from, plus decorators that route and cache them. Concrete
// backends live in subpackages and in internal/storage.
package datasource

//go:generate go run go.uber.org/mock/mockgen -source=ports.go -destination=mock_source.go -package=datasource

import (
	"context"
	"errors"

	"noumi/internal/core"
)

var (
	// ErrUnavailable marks a failure to reach or decode a backend. Handlers
	// map it to 502.
	ErrUnavailable = errors.New("data source unavailable")
	// ErrNotFound means the backend holds no record for the resource.
	ErrNotFound = errors.New("data source record not found")
)

// Resource names used for per-resource backend overrides and cache keys.
const (
	ResourceSpendingCategories = "spending_categories"
	ResourceSpendingStatus     = "spending_status"
	ResourceTotalSpending      = "spending_total"
	ResourceHabits             = "habits"
	ResourceAccomplishedHabits = "accomplished_habits"
	ResourceComputedGoal       = "goal"
	ResourceWeeklyStreak       = "weekly_streak"
	ResourceLongestStreak      = "longest_streak"
	ResourceWeeklySavings      = "savings"
)

// Resources lists every resource name in a stable order.
var Resources = []string{
	ResourceSpendingCategories,
	ResourceSpendingStatus,
	ResourceTotalSpending,
	ResourceHabits,
	ResourceAccomplishedHabits,
	ResourceComputedGoal,
	ResourceWeeklyStreak,
	ResourceLongestStreak,
	ResourceWeeklySavings,
}

// IsResource reports whether name is a known resource.
func IsResource(name string) bool {
	for _, r := range Resources {
		if r == name {
			return true
		}
	}
	return false
}

// Ports for outbound adapters.
type (
	SpendingReader interface {
		SpendingCategories(ctx context.Context) ([]core.CategoryObservation, error)
		SpendingStatus(ctx context.Context) (core.SpendingStatus, error)
		TotalSpending(ctx context.Context) (core.TotalSpending, error)
	}

	HabitReader interface {
		// Habits returns this week's plan habits, in display order.
		Habits(ctx context.Context) ([]core.HabitObservation, error)
		AccomplishedHabits(ctx context.Context) ([]core.Accomplishment, error)
	}

	GoalReader interface {
		ComputedGoal(ctx context.Context) (core.ComputedGoal, error)
	}

	StreakReader interface {
		WeeklyStreak(ctx context.Context) (core.WeeklyStreak, error)
		LongestStreak(ctx context.Context) (core.LongestStreak, error)
	}

	SavingsReader interface {
		WeeklySavings(ctx context.Context) (core.WeeklySavings, error)
	}

	// Source is everything the service reads.
	Source interface {
		SpendingReader
		HabitReader
		GoalReader
		StreakReader
		SavingsReader
	}
)
