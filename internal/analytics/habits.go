package analytics

import (
	"fmt"
	"sort"

	"noumi/internal/core"
)

// HydrateHabits turns plan habits into display records, preserving order.
// System habits are always complete; any other habit uses its tracked
// progress, defaulting to zero. A habit with fewer than one weekly
// occurrence is rejected rather than hydrated.
func HydrateHabits(habits []core.HabitObservation) ([]core.HydratedHabit, error) {
	out := make([]core.HydratedHabit, 0, len(habits))
	for i, h := range habits {
		if h.WeeklyOccurrences < 1 {
			return nil, fmt.Errorf("habit %d (%q): %w", i, h.Description, core.ErrInvalidOccurrences)
		}
		total := h.WeeklyOccurrences
		if core.IsSystemHabit(h.Description) {
			out = append(out, core.HydratedHabit{
				Name:        h.Description,
				Total:       total,
				Completed:   total,
				IsCompleted: true,
			})
			continue
		}
		completed := h.CompletedOrZero()
		if completed < 0 {
			return nil, fmt.Errorf("habit %d (%q): %w", i, h.Description, core.ErrInvalidCompleted)
		}
		out = append(out, core.HydratedHabit{
			Name:        h.Description,
			Total:       total,
			Completed:   completed,
			IsCompleted: completed >= total,
		})
	}
	return out, nil
}

// SortHabits returns a copy with incomplete habits first. Relative order
// within each group is kept.
func SortHabits(habits []core.HydratedHabit) []core.HydratedHabit {
	out := append([]core.HydratedHabit(nil), habits...)
	sort.SliceStable(out, func(i, j int) bool {
		return !out[i].IsCompleted && out[j].IsCompleted
	})
	return out
}

// NormalizeHabits returns a copy of already hydrated habits with the
// completion flags recomputed. System habits are forced complete.
func NormalizeHabits(habits []core.HydratedHabit) []core.HydratedHabit {
	out := append([]core.HydratedHabit(nil), habits...)
	for i := range out {
		if core.IsSystemHabit(out[i].Name) {
			out[i].Completed = out[i].Total
		}
		out[i].IsCompleted = out[i].Completed >= out[i].Total
	}
	return out
}

// RecordHabitCompletion marks one more occurrence of the named habit as
// done and returns the re-sorted list. The input is normalized first, so a
// system habit is never advanced. The second result is false when no
// incomplete habit has that name.
func RecordHabitCompletion(habits []core.HydratedHabit, name string) ([]core.HydratedHabit, bool) {
	out := NormalizeHabits(habits)
	changed := false
	for i := range out {
		if out[i].Name != name || out[i].Completed >= out[i].Total {
			continue
		}
		out[i].Completed++
		out[i].IsCompleted = out[i].Completed >= out[i].Total
		changed = true
		break
	}
	if !changed {
		return out, false
	}
	return SortHabits(out), true
}

// SuggestedHabits drops system habits, leaving the ones worth recommending
// for next week.
func SuggestedHabits(habits []core.HabitObservation) []core.HabitObservation {
	out := make([]core.HabitObservation, 0, len(habits))
	for _, h := range habits {
		if core.IsSystemHabit(h.Description) {
			continue
		}
		out = append(out, h)
	}
	return out
}
