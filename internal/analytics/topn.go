package analytics

import (
	"fmt"
	"sort"

	"noumi/internal/core"
)

// LatestMonth returns the greatest "YYYY-MM" value present, or "" for
// empty input.
func LatestMonth(observations []core.CategoryObservation) string {
	latest := ""
	for _, o := range observations {
		if o.Month > latest {
			latest = o.Month
		}
	}
	return latest
}

// TopNCategoriesForLatestMonth returns up to n observations from the latest
// month, largest amount first. Equal amounts keep their input order.
func TopNCategoriesForLatestMonth(observations []core.CategoryObservation, n int) ([]core.CategoryObservation, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: top n = %d", ErrInvalidLimit, n)
	}
	latest := LatestMonth(observations)
	if latest == "" {
		return []core.CategoryObservation{}, nil
	}

	filtered := make([]core.CategoryObservation, 0, len(observations))
	for _, o := range observations {
		if o.Month == latest {
			filtered = append(filtered, o)
		}
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Amount.GreaterThan(filtered[j].Amount)
	})

	if len(filtered) > n {
		filtered = filtered[:n]
	}
	return filtered, nil
}
