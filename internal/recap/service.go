package recap

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"noumi/internal/analytics"
	"noumi/internal/core"
	"noumi/internal/datasource"
	"noumi/internal/log"
)

// Options tunes the derived values.
type Options struct {
	Unit analytics.Unit
	TopN int
}

// DefaultOptions reports monthly amounts and the top three categories.
func DefaultOptions() Options {
	return Options{Unit: analytics.UnitMonthly, TopN: 3}
}

// Service derives views from raw records. It holds no state between calls.
type Service struct {
	src    datasource.Source
	opts   Options
	logger *log.Logger
	events *log.StructuredLogger
	newID  func() string
}

func NewService(src datasource.Source, opts Options, logger *log.Logger) (*Service, error) {
	if src == nil {
		return nil, fmt.Errorf("recap: source is required")
	}
	if !opts.Unit.IsValid() {
		return nil, fmt.Errorf("recap: unknown unit %q", opts.Unit)
	}
	if opts.TopN < 1 {
		return nil, fmt.Errorf("recap: %w: top n = %d", analytics.ErrInvalidLimit, opts.TopN)
	}
	if logger == nil {
		logger = log.Discard()
	}
	logger = logger.WithComponent(log.ComponentRecap)
	return &Service{
		src:    src,
		opts:   opts,
		logger: logger,
		events: log.NewStructuredLogger(logger),
		newID:  func() string { return uuid.NewString() },
	}, nil
}

// Options returns the options the service was built with.
func (s *Service) Options() Options {
	return s.opts
}

// warnings collects section failures from concurrent fetches.
type warnings struct {
	mu   sync.Mutex
	list []string
}

func (w *warnings) add(section string, err error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.list = append(w.list, fmt.Sprintf("%s: %v", section, err))
}

// Build assembles the recap for the week containing now. Only a failure to
// read spending categories fails the recap; other sections are dropped
// with a warning.
func (s *Service) Build(ctx context.Context, now time.Time) (*WeeklyRecap, error) {
	week := analytics.CurrentWeekRange(now)
	recap := &WeeklyRecap{
		ID:          s.newID(),
		GeneratedAt: now,
		Week:        week,
		WeekLabel:   week.String(),
	}

	var (
		warn           warnings
		observations   []core.CategoryObservation
		goal           core.ComputedGoal
		goalOK         bool
		savings        core.WeeklySavings
		savingsOK      bool
		longest        core.LongestStreak
		longestOK      bool
		accomplishment []core.Accomplishment
		habits         []core.HabitObservation
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		observations, err = s.src.SpendingCategories(gctx)
		return wrapRead(datasource.ResourceSpendingCategories, err)
	})
	g.Go(func() error {
		var err error
		if goal, err = s.src.ComputedGoal(gctx); err != nil {
			warn.add(datasource.ResourceComputedGoal, err)
			return nil
		}
		goalOK = true
		return nil
	})
	g.Go(func() error {
		var err error
		if savings, err = s.src.WeeklySavings(gctx); err != nil {
			warn.add(datasource.ResourceWeeklySavings, err)
			return nil
		}
		savingsOK = true
		return nil
	})
	g.Go(func() error {
		var err error
		if longest, err = s.src.LongestStreak(gctx); err != nil {
			warn.add(datasource.ResourceLongestStreak, err)
			return nil
		}
		longestOK = true
		return nil
	})
	g.Go(func() error {
		var err error
		if accomplishment, err = s.src.AccomplishedHabits(gctx); err != nil {
			warn.add(datasource.ResourceAccomplishedHabits, err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if habits, err = s.src.Habits(gctx); err != nil {
			warn.add(datasource.ResourceHabits, err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		s.events.LogError(ctx, "Weekly recap failed", err, log.OpBuild,
			log.NewFields().WithResource(datasource.ResourceSpendingCategories, ""))
		return nil, err
	}

	trend, err := analytics.ExtractCategoryWithHighestDecreaseIn(observations, s.opts.Unit)
	if err != nil {
		return nil, err
	}
	recap.Trend = newTrendCard(trend, s.opts.Unit)

	if recap.TopCategories, err = analytics.TopNCategoriesForLatestMonth(observations, s.opts.TopN); err != nil {
		return nil, err
	}

	if goalOK {
		progress := NewGoalProgress(goal, now)
		recap.Goal = &progress
	}
	if savingsOK {
		recap.Savings = &savings
	}
	if longestOK {
		n := longest.LongestStreak
		recap.LongestStreak = &n
	}

	recap.Accomplishments = make([]core.Accomplishment, 0, len(accomplishment))
	for _, a := range accomplishment {
		a.Description = analytics.FormatDollarAmountsInText(a.Description)
		recap.Accomplishments = append(recap.Accomplishments, a)
	}
	recap.SuggestedHabits = analytics.SuggestedHabits(habits)
	recap.Warnings = warn.list

	s.events.LogRecapBuilt(ctx, recap.ID, recap.WeekLabel, len(recap.Warnings))
	return recap, nil
}

// Home builds the home dashboard. Any failing read fails the view.
func (s *Service) Home(ctx context.Context, now time.Time) (*Home, error) {
	week := analytics.CurrentWeekRange(now)
	home := &Home{Week: week, WeekLabel: week.String()}

	var habits []core.HabitObservation
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		home.Status, err = s.src.SpendingStatus(gctx)
		return wrapRead(datasource.ResourceSpendingStatus, err)
	})
	g.Go(func() error {
		var err error
		home.Total, err = s.src.TotalSpending(gctx)
		return wrapRead(datasource.ResourceTotalSpending, err)
	})
	g.Go(func() error {
		var err error
		habits, err = s.src.Habits(gctx)
		return wrapRead(datasource.ResourceHabits, err)
	})
	g.Go(func() error {
		var err error
		home.WeeklyStreak, err = s.src.WeeklyStreak(gctx)
		return wrapRead(datasource.ResourceWeeklyStreak, err)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	hydrated, err := analytics.HydrateHabits(habits)
	if err != nil {
		return nil, err
	}
	home.Habits = analytics.SortHabits(hydrated)
	home.StreakDays = home.WeeklyStreak.Count()
	return home, nil
}

// Trend returns the biggest decrease in the configured unit, or nil.
func (s *Service) Trend(ctx context.Context) (*TrendCard, error) {
	obs, err := s.src.SpendingCategories(ctx)
	if err != nil {
		return nil, wrapRead(datasource.ResourceSpendingCategories, err)
	}
	trend, err := analytics.ExtractCategoryWithHighestDecreaseIn(obs, s.opts.Unit)
	if err != nil {
		return nil, err
	}
	if trend != nil {
		s.logger.DebugContext(ctx, "Trend extracted",
			log.NewFields().WithTrend(trend.Category, analytics.LatestMonth(obs)).ToSlice()...)
	}
	return newTrendCard(trend, s.opts.Unit), nil
}

// TopCategories returns the n largest categories of the latest month. Zero
// uses the configured default.
func (s *Service) TopCategories(ctx context.Context, n int) ([]core.CategoryObservation, error) {
	if n == 0 {
		n = s.opts.TopN
	}
	obs, err := s.src.SpendingCategories(ctx)
	if err != nil {
		return nil, wrapRead(datasource.ResourceSpendingCategories, err)
	}
	return analytics.TopNCategoriesForLatestMonth(obs, n)
}

// Series returns every category's monthly amounts.
func (s *Service) Series(ctx context.Context) ([]analytics.CategoryTimeline, error) {
	obs, err := s.src.SpendingCategories(ctx)
	if err != nil {
		return nil, wrapRead(datasource.ResourceSpendingCategories, err)
	}
	return analytics.AggregateByCategoryAndMonth(obs).Timelines(), nil
}

// Habits returns the hydrated habits, incomplete first.
func (s *Service) Habits(ctx context.Context) ([]core.HydratedHabit, error) {
	habits, err := s.src.Habits(ctx)
	if err != nil {
		return nil, wrapRead(datasource.ResourceHabits, err)
	}
	hydrated, err := analytics.HydrateHabits(habits)
	if err != nil {
		return nil, err
	}
	return analytics.SortHabits(hydrated), nil
}

// Goal returns the goal card as of now.
func (s *Service) Goal(ctx context.Context, now time.Time) (*GoalProgress, error) {
	goal, err := s.src.ComputedGoal(ctx)
	if err != nil {
		return nil, wrapRead(datasource.ResourceComputedGoal, err)
	}
	progress := NewGoalProgress(goal, now)
	return &progress, nil
}

func wrapRead(resource string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("read %s: %w", resource, err)
}
