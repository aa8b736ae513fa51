package analytics

import (
	"fmt"
	"time"

	"noumi/internal/core"
)

// CurrentWeekRange returns the Monday..Sunday week containing now, using
// now's own location for the calendar date. Sunday closes a week.
func CurrentWeekRange(now time.Time) core.WeekRange {
	monday := weekStart(now)
	return core.WeekRange{Start: monday, End: monday.AddDate(0, 0, 6)}
}

// PastNWeekRanges returns n consecutive weeks ending with the current one,
// most recent first.
func PastNWeekRanges(now time.Time, n int) ([]core.WeekRange, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: weeks = %d", ErrInvalidLimit, n)
	}
	monday := weekStart(now)
	out := make([]core.WeekRange, 0, n)
	for i := 0; i < n; i++ {
		start := monday.AddDate(0, 0, -7*i)
		out = append(out, core.WeekRange{Start: start, End: start.AddDate(0, 0, 6)})
	}
	return out, nil
}

func weekStart(now time.Time) time.Time {
	diffToMonday := (int(now.Weekday()) + 6) % 7
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return day.AddDate(0, 0, -diffToMonday)
}
