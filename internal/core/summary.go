package core

import (
	"time"

	"github.com/shopspring/decimal"
)

// ComputedGoal is the savings goal with the amount saved so far.
type ComputedGoal struct {
	GoalName    string          `json:"goal_name"`
	TargetDate  Date            `json:"target_date"`
	GoalAmount  decimal.Decimal `json:"goal_amount"`
	AmountSaved decimal.Decimal `json:"amount_saved"`
}

// SpendingStatus is the income/expense snapshot on the home screen.
type SpendingStatus struct {
	Income            decimal.Decimal `json:"income"`
	Expenses          decimal.Decimal `json:"expenses"`
	AmountSafeToSpend decimal.Decimal `json:"amount_safe_to_spend"`
}

// TotalSpending is the year-to-date spend.
type TotalSpending struct {
	SpentSoFar decimal.Decimal `json:"spent_so_far"`
}

// WeeklySavings compares what was saved with the plan's suggestion.
type WeeklySavings struct {
	ActualSavings                decimal.Decimal `json:"actual_savings"`
	SuggestedSavingsAmountWeekly decimal.Decimal `json:"suggested_savings_amount_weekly"`
}

// Accomplishment is a narrative line for the recap, e.g. "You bought 2
// coffees instead of 7, saving $36.24." with value "+$36.24".
type Accomplishment struct {
	Description string `json:"habit_description"`
	Value       string `json:"value,omitempty"`
}

// IsSystem reports whether the accomplishment refers to a system habit.
func (a Accomplishment) IsSystem() bool {
	return IsSystemHabit(a.Value)
}

// LongestStreak is the longest run of weeks without a spending anomaly.
type LongestStreak struct {
	LongestStreak int `json:"longest_streak"`
}

// WeeklyStreak holds one flag per day of the current week, Monday first;
// a non-zero entry is a day kept on track.
type WeeklyStreak []int

// Active reports whether day i (0 = Monday) is on track.
func (w WeeklyStreak) Active(i int) bool {
	return i >= 0 && i < len(w) && w[i] != 0
}

// Count is the number of on-track days.
func (w WeeklyStreak) Count() int {
	n := 0
	for _, v := range w {
		if v != 0 {
			n++
		}
	}
	return n
}

// Date is a calendar date serialized as "YYYY-MM-DD".
type Date struct {
	time.Time
}

const dateLayout = "2006-01-02"

// NewDate creates a new Date from year, month, day in UTC.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a "YYYY-MM-DD" string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return Date{Time: t}, nil
}

// String returns the "YYYY-MM-DD" form, empty for the zero date.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" || s == `""` {
		*d = Date{}
		return nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
