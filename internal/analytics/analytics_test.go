package analytics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"noumi/internal/core"
)

func obs(category string, amount string, month string) core.CategoryObservation {
	return core.CategoryObservation{
		CategoryName: category,
		Amount:       decimal.RequireFromString(amount),
		Month:        month,
	}
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(want).Equal(got), append([]interface{}{"want %s, got %s", want, got.String()}, msgAndArgs...)...)
}

// mockSpendingCategories mirrors the fixture the screens were built against.
var mockSpendingCategories = []core.CategoryObservation{
	obs("Coffee Shops", "284.51", "2025-06"),
	obs("Shopping", "289.24", "2025-06"),
	obs("Delivery Services", "132.65", "2025-06"),
	obs("Coffee Shops", "250", "2025-05"),
	obs("Shopping", "1200", "2025-05"),
	obs("Delivery Services", "200", "2025-05"),
}

func TestAggregateByCategoryAndMonth(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		s := AggregateByCategoryAndMonth(nil)
		assert.Equal(t, 0, s.Len())
		assert.Empty(t, s.Categories())
		assert.Empty(t, s.Timelines())
	})

	t.Run("last write wins", func(t *testing.T) {
		s := AggregateByCategoryAndMonth([]core.CategoryObservation{
			obs("C", "100", "2025-05"),
			obs("C", "150", "2025-05"),
		})
		amt, ok := s.Amount("C", "2025-05")
		require.True(t, ok)
		assertDecimal(t, "150", amt)
		assert.Equal(t, []string{"2025-05"}, s.Months("C"))
	})

	t.Run("first occurrence order and sorted months", func(t *testing.T) {
		s := AggregateByCategoryAndMonth(mockSpendingCategories)
		assert.Equal(t, []string{"Coffee Shops", "Shopping", "Delivery Services"}, s.Categories())
		assert.Equal(t, []string{"2025-05", "2025-06"}, s.Months("Shopping"))
		_, ok := s.Amount("Shopping", "2025-04")
		assert.False(t, ok)
	})

	t.Run("any string is a key", func(t *testing.T) {
		s := AggregateByCategoryAndMonth([]core.CategoryObservation{obs("", "1", "2025-01")})
		assert.Equal(t, []string{""}, s.Categories())
	})

	t.Run("deterministic", func(t *testing.T) {
		a := AggregateByCategoryAndMonth(mockSpendingCategories).Timelines()
		b := AggregateByCategoryAndMonth(mockSpendingCategories).Timelines()
		assert.Equal(t, a, b)
	})
}

func TestExtractCategoryWithHighestDecrease(t *testing.T) {
	t.Run("two months simple drop", func(t *testing.T) {
		got := ExtractCategoryWithHighestDecrease([]core.CategoryObservation{
			obs("Coffee", "100", "2025-05"),
			obs("Coffee", "70", "2025-06"),
			obs("Rent", "1000", "2025-05"),
			obs("Rent", "1000", "2025-06"),
		})
		require.NotNil(t, got)
		assert.Equal(t, "Coffee", got.Category)
		assertDecimal(t, "30", got.DecreaseAmount)
		assertDecimal(t, "30", got.PercentageDrop)
		assertDecimal(t, "100", got.PreviousAmount)
	})

	t.Run("zero previous amount", func(t *testing.T) {
		got := ExtractCategoryWithHighestDecrease([]core.CategoryObservation{
			obs("X", "0", "2025-05"),
			obs("X", "0", "2025-06"),
		})
		require.NotNil(t, got)
		assertDecimal(t, "0", got.DecreaseAmount)
		assertDecimal(t, "0", got.PercentageDrop)
	})

	t.Run("zero previous amount with increase", func(t *testing.T) {
		got := ExtractCategoryWithHighestDecrease([]core.CategoryObservation{
			obs("X", "0", "2025-05"),
			obs("X", "40", "2025-06"),
		})
		require.NotNil(t, got)
		assertDecimal(t, "-40", got.DecreaseAmount)
		assertDecimal(t, "0", got.PercentageDrop)
	})

	t.Run("no category with two months", func(t *testing.T) {
		assert.Nil(t, ExtractCategoryWithHighestDecrease([]core.CategoryObservation{
			obs("A", "10", "2025-05"),
			obs("B", "20", "2025-06"),
		}))
		assert.Nil(t, ExtractCategoryWithHighestDecrease(nil))
	})

	t.Run("compares the two most recent months", func(t *testing.T) {
		got := ExtractCategoryWithHighestDecrease([]core.CategoryObservation{
			obs("A", "100", "2025-05"),
			obs("A", "200", "2025-06"),
			obs("A", "50", "2025-07"),
			obs("B", "500", "2025-05"),
			obs("B", "100", "2025-06"),
			obs("B", "100", "2025-07"),
		})
		require.NotNil(t, got)
		assert.Equal(t, "A", got.Category)
		assertDecimal(t, "150", got.DecreaseAmount)
		assertDecimal(t, "75", got.PercentageDrop)
		assertDecimal(t, "200", got.PreviousAmount)
	})

	t.Run("months out of input order", func(t *testing.T) {
		got := ExtractCategoryWithHighestDecrease([]core.CategoryObservation{
			obs("A", "80", "2025-06"),
			obs("A", "10", "2024-12"),
			obs("A", "100", "2025-05"),
		})
		require.NotNil(t, got)
		assertDecimal(t, "20", got.DecreaseAmount)
		assertDecimal(t, "100", got.PreviousAmount)
	})

	t.Run("tie keeps first category", func(t *testing.T) {
		input := []core.CategoryObservation{
			obs("B", "100", "2025-05"),
			obs("A", "100", "2025-05"),
			obs("A", "50", "2025-06"),
			obs("B", "50", "2025-06"),
		}
		got := ExtractCategoryWithHighestDecrease(input)
		require.NotNil(t, got)
		assert.Equal(t, "B", got.Category)
	})

	t.Run("increase only is reported unclamped", func(t *testing.T) {
		got := ExtractCategoryWithHighestDecrease([]core.CategoryObservation{
			obs("A", "50", "2025-05"),
			obs("A", "80", "2025-06"),
		})
		require.NotNil(t, got)
		assertDecimal(t, "-30", got.DecreaseAmount)
		assertDecimal(t, "-60", got.PercentageDrop)
	})

	t.Run("fixture data", func(t *testing.T) {
		got := ExtractCategoryWithHighestDecrease(mockSpendingCategories)
		require.NotNil(t, got)
		assert.Equal(t, "Shopping", got.Category)
		assertDecimal(t, "910.76", got.DecreaseAmount)
		assertDecimal(t, "75.9", got.PercentageDrop)
		assertDecimal(t, "1200", got.PreviousAmount)
	})

	t.Run("rounds to two places", func(t *testing.T) {
		got := ExtractCategoryWithHighestDecrease([]core.CategoryObservation{
			obs("A", "3", "2025-05"),
			obs("A", "2", "2025-06"),
		})
		require.NotNil(t, got)
		assertDecimal(t, "33.33", got.PercentageDrop)
	})
}

func TestExtractCategoryWithHighestDecreaseIn(t *testing.T) {
	input := []core.CategoryObservation{
		obs("Coffee", "100", "2025-05"),
		obs("Coffee", "70", "2025-06"),
	}

	monthly, err := ExtractCategoryWithHighestDecreaseIn(input, UnitMonthly)
	require.NoError(t, err)
	assert.Equal(t, ExtractCategoryWithHighestDecrease(input), monthly)

	weekly, err := ExtractCategoryWithHighestDecreaseIn(input, UnitWeekly)
	require.NoError(t, err)
	require.NotNil(t, weekly)
	assertDecimal(t, "7.5", weekly.DecreaseAmount)
	assertDecimal(t, "25", weekly.PreviousAmount)
	assertDecimal(t, "30", weekly.PercentageDrop)

	t.Run("percentage uses monthly amounts", func(t *testing.T) {
		in := []core.CategoryObservation{
			obs("A", "10.03", "2025-05"),
			obs("A", "10.01", "2025-06"),
		}
		monthly := ExtractCategoryWithHighestDecrease(in)
		weekly, err := ExtractCategoryWithHighestDecreaseIn(in, UnitWeekly)
		require.NoError(t, err)
		require.NotNil(t, weekly)
		assertDecimal(t, "0.2", monthly.PercentageDrop)
		assertDecimal(t, "0.2", weekly.PercentageDrop)
		assertDecimal(t, "2.51", weekly.PreviousAmount)
	})

	t.Run("leader matches monthly", func(t *testing.T) {
		in := []core.CategoryObservation{
			obs("A", "10.02", "2025-05"),
			obs("B", "10.03", "2025-05"),
			obs("A", "10.00", "2025-06"),
			obs("B", "10.00", "2025-06"),
		}
		weekly, err := ExtractCategoryWithHighestDecreaseIn(in, UnitWeekly)
		require.NoError(t, err)
		require.NotNil(t, weekly)
		assert.Equal(t, "B", ExtractCategoryWithHighestDecrease(in).Category)
		assert.Equal(t, "B", weekly.Category)
		assertDecimal(t, "0.01", weekly.DecreaseAmount)
	})

	_, err = ExtractCategoryWithHighestDecreaseIn(input, Unit("daily"))
	assert.Error(t, err)
	assert.False(t, Unit("daily").IsValid())
	assert.True(t, UnitWeekly.IsValid())
}

func TestTopNCategoriesForLatestMonth(t *testing.T) {
	t.Run("fixture data top 3", func(t *testing.T) {
		got, err := TopNCategoriesForLatestMonth(mockSpendingCategories, 3)
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "Shopping", got[0].CategoryName)
		assert.Equal(t, "Coffee Shops", got[1].CategoryName)
		assert.Equal(t, "Delivery Services", got[2].CategoryName)
		for _, o := range got {
			assert.Equal(t, "2025-06", o.Month)
		}
	})

	t.Run("fewer than n available", func(t *testing.T) {
		got, err := TopNCategoriesForLatestMonth([]core.CategoryObservation{
			obs("A", "10", "2025-06"),
			obs("B", "30", "2025-06"),
			obs("C", "99", "2025-05"),
		}, 3)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "B", got[0].CategoryName)
		assert.Equal(t, "A", got[1].CategoryName)
	})

	t.Run("ties keep input order", func(t *testing.T) {
		got, err := TopNCategoriesForLatestMonth([]core.CategoryObservation{
			obs("First", "50", "2025-06"),
			obs("Big", "90", "2025-06"),
			obs("Second", "50", "2025-06"),
		}, 3)
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, []string{"Big", "First", "Second"}, []string{got[0].CategoryName, got[1].CategoryName, got[2].CategoryName})
	})

	t.Run("truncates to n", func(t *testing.T) {
		got, err := TopNCategoriesForLatestMonth(mockSpendingCategories, 1)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Shopping", got[0].CategoryName)
	})

	t.Run("empty input", func(t *testing.T) {
		got, err := TopNCategoriesForLatestMonth(nil, 3)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("non-positive n", func(t *testing.T) {
		_, err := TopNCategoriesForLatestMonth(mockSpendingCategories, 0)
		assert.ErrorIs(t, err, ErrInvalidLimit)
	})

	t.Run("input untouched", func(t *testing.T) {
		input := []core.CategoryObservation{obs("A", "1", "2025-06"), obs("B", "2", "2025-06")}
		_, err := TopNCategoriesForLatestMonth(input, 2)
		require.NoError(t, err)
		assert.Equal(t, "A", input[0].CategoryName)
	})
}

func TestLatestMonth(t *testing.T) {
	assert.Equal(t, "", LatestMonth(nil))
	assert.Equal(t, "2025-06", LatestMonth(mockSpendingCategories))
	assert.Equal(t, "2026-01", LatestMonth([]core.CategoryObservation{obs("A", "1", "2025-12"), obs("A", "1", "2026-01")}))
}

func TestDaysLeft(t *testing.T) {
	now := time.Date(2025, 6, 11, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		target time.Time
		want   int
	}{
		{"partial day rounds up", now.Add(36 * time.Hour), 2},
		{"whole days", now.AddDate(0, 0, 14), 14},
		{"same instant", now, 0},
		{"past target", now.AddDate(0, 0, -3), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysLeft(now, tt.target))
		})
	}
}
