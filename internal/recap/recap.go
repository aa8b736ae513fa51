// Package recap assembles the weekly recap and the home dashboard from a
// data source.
package recap

import (
	"time"

	"github.com/shopspring/decimal"

	"noumi/internal/analytics"
	"noumi/internal/core"
)

// WeeklyRecap is the end-of-week narrative. Optional sections are nil when
// their data could not be read; the reason is listed in Warnings.
type WeeklyRecap struct {
	ID              string                     `json:"id"`
	GeneratedAt     time.Time                  `json:"generated_at"`
	Week            core.WeekRange             `json:"week"`
	WeekLabel       string                     `json:"week_label"`
	Goal            *GoalProgress              `json:"goal,omitempty"`
	Savings         *core.WeeklySavings        `json:"savings,omitempty"`
	Trend           *TrendCard                 `json:"trend,omitempty"`
	LongestStreak   *int                       `json:"longest_streak,omitempty"`
	Accomplishments []core.Accomplishment      `json:"accomplishments"`
	TopCategories   []core.CategoryObservation `json:"top_categories"`
	SuggestedHabits []core.HabitObservation    `json:"suggested_habits"`
	Warnings        []string                   `json:"warnings,omitempty"`
}

// GoalProgress is the goal card.
type GoalProgress struct {
	Name        string          `json:"name"`
	TargetDate  core.Date       `json:"target_date"`
	GoalAmount  decimal.Decimal `json:"goal_amount"`
	AmountSaved decimal.Decimal `json:"amount_saved"`
	Percentage  int             `json:"percentage"`
	DaysLeft    int             `json:"days_left"`
}

// TrendCard is the biggest decrease with its display label.
type TrendCard struct {
	core.TrendResult
	Unit  analytics.Unit `json:"unit"`
	Label string         `json:"label"`
}

// Home is the home dashboard.
type Home struct {
	Status       core.SpendingStatus  `json:"status"`
	Total        core.TotalSpending   `json:"total"`
	Week         core.WeekRange       `json:"week"`
	WeekLabel    string               `json:"week_label"`
	Habits       []core.HydratedHabit `json:"habits"`
	WeeklyStreak core.WeeklyStreak    `json:"weekly_streak"`
	StreakDays   int                  `json:"streak_days"`
}

// NewGoalProgress derives the goal card as of now.
func NewGoalProgress(goal core.ComputedGoal, now time.Time) GoalProgress {
	return GoalProgress{
		Name:        goal.GoalName,
		TargetDate:  goal.TargetDate,
		GoalAmount:  goal.GoalAmount,
		AmountSaved: goal.AmountSaved,
		Percentage:  analytics.GoalPercentage(goal.AmountSaved, goal.GoalAmount),
		DaysLeft:    analytics.DaysLeft(now, goal.TargetDate.Time),
	}
}

func newTrendCard(t *core.TrendResult, unit analytics.Unit) *TrendCard {
	if t == nil {
		return nil
	}
	return &TrendCard{
		TrendResult: *t,
		Unit:        unit,
		Label:       analytics.FormatTrendAmount(t.DecreaseAmount),
	}
}
