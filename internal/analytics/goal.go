package analytics

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// GoalPercentage is the share of the goal already saved, rounded to a whole
// percent and capped at 100. A non-positive goal reports 0.
func GoalPercentage(saved, goal decimal.Decimal) int {
	if !goal.IsPositive() || !saved.IsPositive() {
		return 0
	}
	pct := saved.Mul(decimal.NewFromInt(100)).Div(goal).Round(0).IntPart()
	if pct > 100 {
		return 100
	}
	return int(pct)
}

// DaysLeft is the number of days until target, rounded up and never
// negative.
func DaysLeft(now, target time.Time) int {
	days := math.Ceil(target.Sub(now).Hours() / 24)
	if days < 0 {
		return 0
	}
	return int(days)
}
