package recap

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"noumi/internal/analytics"
	"noumi/internal/core"
	"noumi/internal/datasource"
	"noumi/internal/datasource/fixture"
)

var wednesday = time.Date(2025, time.June, 11, 15, 0, 0, 0, time.UTC)

func newFixtureService(t *testing.T, opts Options) *Service {
	t.Helper()
	svc, err := NewService(fixture.New(fixture.Default()), opts, nil)
	require.NoError(t, err)
	svc.newID = func() string { return "recap-1" }
	return svc
}

func TestNewService_Validation(t *testing.T) {
	src := fixture.New(fixture.Default())

	_, err := NewService(nil, DefaultOptions(), nil)
	assert.Error(t, err)

	_, err = NewService(src, Options{Unit: "daily", TopN: 3}, nil)
	assert.ErrorContains(t, err, "unknown unit")

	_, err = NewService(src, Options{Unit: analytics.UnitMonthly}, nil)
	assert.ErrorIs(t, err, analytics.ErrInvalidLimit)
}

func TestBuild_FromFixtures(t *testing.T) {
	svc := newFixtureService(t, DefaultOptions())

	r, err := svc.Build(context.Background(), wednesday)
	require.NoError(t, err)

	assert.Equal(t, "recap-1", r.ID)
	assert.Equal(t, "06/09 - 06/15", r.WeekLabel)
	assert.Empty(t, r.Warnings)

	require.NotNil(t, r.Trend)
	assert.Equal(t, "Shopping", r.Trend.Category)
	assert.Equal(t, "910.76", r.Trend.DecreaseAmount.String())
	assert.Equal(t, "-$910.76", r.Trend.Label)
	assert.Equal(t, analytics.UnitMonthly, r.Trend.Unit)

	require.Len(t, r.TopCategories, 3)
	assert.Equal(t, "Shopping", r.TopCategories[0].CategoryName)
	assert.Equal(t, "Coffee Shops", r.TopCategories[1].CategoryName)

	require.NotNil(t, r.Goal)
	assert.Equal(t, 24, r.Goal.Percentage)
	assert.Equal(t, 203, r.Goal.DaysLeft)

	require.NotNil(t, r.LongestStreak)
	assert.Equal(t, 3, *r.LongestStreak)
	require.NotNil(t, r.Savings)
	assert.Equal(t, "120", r.Savings.ActualSavings.String())

	require.Len(t, r.Accomplishments, 2)
	assert.Equal(t, "You bought 2 coffees instead of 7, saving $36.24.", r.Accomplishments[0].Description)

	require.Len(t, r.SuggestedHabits, 2)
	for _, h := range r.SuggestedHabits {
		assert.False(t, core.IsSystemHabit(h.Description))
	}
}

func TestBuild_WeeklyUnit(t *testing.T) {
	svc := newFixtureService(t, Options{Unit: analytics.UnitWeekly, TopN: 1})

	r, err := svc.Build(context.Background(), wednesday)
	require.NoError(t, err)
	require.NotNil(t, r.Trend)
	assert.Equal(t, "227.69", r.Trend.DecreaseAmount.String())
	assert.Equal(t, "300", r.Trend.PreviousAmount.String())
	assert.Len(t, r.TopCategories, 1)
}

func TestBuild_SectionFailuresBecomeWarnings(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := datasource.NewMockSource(ctrl)
	upstream := errors.New("connection refused")

	src.EXPECT().SpendingCategories(gomock.Any()).Return([]core.CategoryObservation{
		{CategoryName: "Coffee", Amount: decimal.NewFromInt(100), Month: "2025-05"},
		{CategoryName: "Coffee", Amount: decimal.NewFromInt(70), Month: "2025-06"},
	}, nil)
	src.EXPECT().ComputedGoal(gomock.Any()).Return(core.ComputedGoal{}, upstream)
	src.EXPECT().WeeklySavings(gomock.Any()).Return(core.WeeklySavings{}, upstream)
	src.EXPECT().LongestStreak(gomock.Any()).Return(core.LongestStreak{LongestStreak: 2}, nil)
	src.EXPECT().AccomplishedHabits(gomock.Any()).Return(nil, nil)
	src.EXPECT().Habits(gomock.Any()).Return(nil, upstream)

	svc, err := NewService(src, DefaultOptions(), nil)
	require.NoError(t, err)

	r, err := svc.Build(context.Background(), wednesday)
	require.NoError(t, err)
	assert.Len(t, r.Warnings, 3)
	assert.Nil(t, r.Goal)
	assert.Nil(t, r.Savings)
	assert.NotNil(t, r.LongestStreak)
	assert.NotNil(t, r.Accomplishments)
	assert.NotNil(t, r.SuggestedHabits)
	require.NotNil(t, r.Trend)
	assert.Equal(t, "30", r.Trend.PercentageDrop.String())
	assert.NotEmpty(t, r.ID)
}

func TestBuild_FailsWithoutCategories(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := datasource.NewMockSource(ctrl)

	src.EXPECT().SpendingCategories(gomock.Any()).Return(nil, datasource.ErrUnavailable)
	src.EXPECT().ComputedGoal(gomock.Any()).Return(core.ComputedGoal{}, nil).AnyTimes()
	src.EXPECT().WeeklySavings(gomock.Any()).Return(core.WeeklySavings{}, nil).AnyTimes()
	src.EXPECT().LongestStreak(gomock.Any()).Return(core.LongestStreak{}, nil).AnyTimes()
	src.EXPECT().AccomplishedHabits(gomock.Any()).Return(nil, nil).AnyTimes()
	src.EXPECT().Habits(gomock.Any()).Return(nil, nil).AnyTimes()

	svc, err := NewService(src, DefaultOptions(), nil)
	require.NoError(t, err)

	_, err = svc.Build(context.Background(), wednesday)
	assert.ErrorIs(t, err, datasource.ErrUnavailable)
}

func TestBuild_NoTrendWithSingleMonth(t *testing.T) {
	d := fixture.Default()
	d.SpendingCategories = d.SpendingCategories[:3]
	svc, err := NewService(fixture.New(d), DefaultOptions(), nil)
	require.NoError(t, err)

	r, err := svc.Build(context.Background(), wednesday)
	require.NoError(t, err)
	assert.Nil(t, r.Trend)
	assert.Len(t, r.TopCategories, 3)
}

func TestHome(t *testing.T) {
	svc := newFixtureService(t, DefaultOptions())

	h, err := svc.Home(context.Background(), wednesday)
	require.NoError(t, err)
	assert.Equal(t, "06/09 - 06/15", h.WeekLabel)
	assert.Equal(t, 3, h.StreakDays)
	assert.Equal(t, "1000", h.Status.AmountSafeToSpend.String())

	require.Len(t, h.Habits, 3)
	assert.Equal(t, "Try a No-Spend-Day", h.Habits[0].Name)
	assert.Equal(t, "Log in to Noumi daily", h.Habits[2].Name)
	assert.True(t, h.Habits[2].IsCompleted)
}

func TestHome_InvalidHabit(t *testing.T) {
	d := fixture.Default()
	d.Habits = append(d.Habits, core.HabitObservation{Description: "Broken", WeeklyOccurrences: 0})
	svc, err := NewService(fixture.New(d), DefaultOptions(), nil)
	require.NoError(t, err)

	_, err = svc.Home(context.Background(), wednesday)
	assert.ErrorIs(t, err, core.ErrInvalidOccurrences)

	_, err = svc.Habits(context.Background())
	assert.ErrorIs(t, err, core.ErrInvalidOccurrences)
}

func TestViews(t *testing.T) {
	svc := newFixtureService(t, DefaultOptions())
	ctx := context.Background()

	top, err := svc.TopCategories(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, top, 3)

	top, err = svc.TopCategories(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Shopping", top[0].CategoryName)

	_, err = svc.TopCategories(ctx, -1)
	assert.ErrorIs(t, err, analytics.ErrInvalidLimit)

	series, err := svc.Series(ctx)
	require.NoError(t, err)
	require.Len(t, series, 3)
	assert.Equal(t, "Coffee Shops", series[0].Category)
	assert.Equal(t, "2025-05", series[0].Points[0].Month)

	trend, err := svc.Trend(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Shopping", trend.Category)

	goal, err := svc.Goal(ctx, wednesday)
	require.NoError(t, err)
	assert.Equal(t, "Emergency fund", goal.Name)
}
