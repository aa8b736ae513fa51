package datasource

import (
	"context"
	"fmt"

	"noumi/internal/core"
)

// Composite routes each resource to an override source when one is
// registered, otherwise to the default source.
type Composite struct {
	def       Source
	overrides map[string]Source
}

// NewComposite builds a router. Override keys must be known resource names.
func NewComposite(def Source, overrides map[string]Source) (*Composite, error) {
	if def == nil {
		return nil, fmt.Errorf("composite: default source is required")
	}
	routed := make(map[string]Source, len(overrides))
	for name, src := range overrides {
		if !IsResource(name) {
			return nil, fmt.Errorf("composite: unknown resource %q", name)
		}
		if src == nil {
			return nil, fmt.Errorf("composite: nil source for resource %q", name)
		}
		routed[name] = src
	}
	return &Composite{def: def, overrides: routed}, nil
}

func (c *Composite) pick(resource string) Source {
	if src, ok := c.overrides[resource]; ok {
		return src
	}
	return c.def
}

func (c *Composite) SpendingCategories(ctx context.Context) ([]core.CategoryObservation, error) {
	return c.pick(ResourceSpendingCategories).SpendingCategories(ctx)
}

func (c *Composite) SpendingStatus(ctx context.Context) (core.SpendingStatus, error) {
	return c.pick(ResourceSpendingStatus).SpendingStatus(ctx)
}

func (c *Composite) TotalSpending(ctx context.Context) (core.TotalSpending, error) {
	return c.pick(ResourceTotalSpending).TotalSpending(ctx)
}

func (c *Composite) Habits(ctx context.Context) ([]core.HabitObservation, error) {
	return c.pick(ResourceHabits).Habits(ctx)
}

func (c *Composite) AccomplishedHabits(ctx context.Context) ([]core.Accomplishment, error) {
	return c.pick(ResourceAccomplishedHabits).AccomplishedHabits(ctx)
}

func (c *Composite) ComputedGoal(ctx context.Context) (core.ComputedGoal, error) {
	return c.pick(ResourceComputedGoal).ComputedGoal(ctx)
}

func (c *Composite) WeeklyStreak(ctx context.Context) (core.WeeklyStreak, error) {
	return c.pick(ResourceWeeklyStreak).WeeklyStreak(ctx)
}

func (c *Composite) LongestStreak(ctx context.Context) (core.LongestStreak, error) {
	return c.pick(ResourceLongestStreak).LongestStreak(ctx)
}

func (c *Composite) WeeklySavings(ctx context.Context) (core.WeeklySavings, error) {
	return c.pick(ResourceWeeklySavings).WeeklySavings(ctx)
}
