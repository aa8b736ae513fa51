package datasource

import (
	"context"

	"noumi/internal/cache"
	"noumi/internal/core"
	"noumi/internal/log"
)

// Cached keeps the raw records of each resource for the cache TTL. Errors
// are never cached and derived values never pass through here.
type Cached struct {
	next   Source
	cache  *cache.LRUCache[any]
	logger *log.Logger
}

// NewCached wraps next with the given cache.
func NewCached(next Source, c *cache.LRUCache[any], logger *log.Logger) *Cached {
	if logger == nil {
		logger = log.Discard()
	}
	return &Cached{next: next, cache: c, logger: logger.WithComponent(log.ComponentCache)}
}

// Invalidate drops the cached records of one resource.
func (c *Cached) Invalidate(resource string) {
	c.cache.Delete(resource)
}

// Stats reports cache hits, misses and current entries.
func (c *Cached) Stats() (hits, misses uint64, entries int) {
	hits, misses = c.cache.Stats()
	return hits, misses, c.cache.Size()
}

func load[T any](ctx context.Context, c *Cached, resource string, fetch func(context.Context) (T, error)) (T, error) {
	if v, ok := c.cache.Get(resource); ok {
		if typed, ok := v.(T); ok {
			c.logger.DebugContext(ctx, "Cache hit", log.FieldResource, resource, log.FieldCacheHit, true)
			return typed, nil
		}
	}
	v, err := fetch(ctx)
	if err != nil {
		return v, err
	}
	c.cache.Set(resource, v)
	return v, nil
}

func (c *Cached) SpendingCategories(ctx context.Context) ([]core.CategoryObservation, error) {
	obs, err := load(ctx, c, ResourceSpendingCategories, c.next.SpendingCategories)
	return append([]core.CategoryObservation(nil), obs...), err
}

func (c *Cached) SpendingStatus(ctx context.Context) (core.SpendingStatus, error) {
	return load(ctx, c, ResourceSpendingStatus, c.next.SpendingStatus)
}

func (c *Cached) TotalSpending(ctx context.Context) (core.TotalSpending, error) {
	return load(ctx, c, ResourceTotalSpending, c.next.TotalSpending)
}

func (c *Cached) Habits(ctx context.Context) ([]core.HabitObservation, error) {
	habits, err := load(ctx, c, ResourceHabits, c.next.Habits)
	return append([]core.HabitObservation(nil), habits...), err
}

func (c *Cached) AccomplishedHabits(ctx context.Context) ([]core.Accomplishment, error) {
	acc, err := load(ctx, c, ResourceAccomplishedHabits, c.next.AccomplishedHabits)
	return append([]core.Accomplishment(nil), acc...), err
}

func (c *Cached) ComputedGoal(ctx context.Context) (core.ComputedGoal, error) {
	return load(ctx, c, ResourceComputedGoal, c.next.ComputedGoal)
}

func (c *Cached) WeeklyStreak(ctx context.Context) (core.WeeklyStreak, error) {
	days, err := load(ctx, c, ResourceWeeklyStreak, c.next.WeeklyStreak)
	return append(core.WeeklyStreak(nil), days...), err
}

func (c *Cached) LongestStreak(ctx context.Context) (core.LongestStreak, error) {
	return load(ctx, c, ResourceLongestStreak, c.next.LongestStreak)
}

func (c *Cached) WeeklySavings(ctx context.Context) (core.WeeklySavings, error) {
	return load(ctx, c, ResourceWeeklySavings, c.next.WeeklySavings)
}
