package sheets

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"noumi/internal/core"
)

// parseCategoryRows converts a values matrix from the spending tab into
// observations. The first row is a header naming Category, Month and
// Amount in any column order; blank rows are skipped.
func parseCategoryRows(values [][]interface{}) ([]core.CategoryObservation, error) {
	if len(values) == 0 {
		return []core.CategoryObservation{}, nil
	}
	headers := toStrings(values[0])
	colCategory := indexOf(headers, "Category")
	colMonth := indexOf(headers, "Month")
	colAmount := indexOf(headers, "Amount")
	if colCategory == -1 || colMonth == -1 || colAmount == -1 {
		return nil, fmt.Errorf("unexpected spending header: want Category, Month, Amount; got headers=%v", headers)
	}

	out := make([]core.CategoryObservation, 0, len(values)-1)
	for i := 1; i < len(values); i++ {
		row := toStrings(values[i])
		name := safeGet(row, colCategory)
		if name == "" || strings.HasPrefix(name, "#") {
			continue
		}
		month, err := normalizeMonth(safeGet(row, colMonth))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		amount, err := core.ParseAmount(safeGet(row, colAmount))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		out = append(out, core.CategoryObservation{CategoryName: name, Amount: amount, Month: month})
	}
	return out, nil
}

// parseHabitRows converts the habits tab. Description and Weekly
// Occurrences are required headers; Completed is optional. Occurrence
// counts are passed through untouched so the hydrator can reject bad ones.
func parseHabitRows(values [][]interface{}) ([]core.HabitObservation, error) {
	if len(values) == 0 {
		return []core.HabitObservation{}, nil
	}
	headers := toStrings(values[0])
	colDesc := indexOf(headers, "Description")
	colOcc := indexOf(headers, "Weekly Occurrences")
	colDone := indexOf(headers, "Completed")
	if colDesc == -1 || colOcc == -1 {
		return nil, fmt.Errorf("unexpected habits header: want Description, Weekly Occurrences; got headers=%v", headers)
	}

	out := make([]core.HabitObservation, 0, len(values)-1)
	for i := 1; i < len(values); i++ {
		row := toStrings(values[i])
		desc := safeGet(row, colDesc)
		if desc == "" {
			continue
		}
		occ, err := strconv.Atoi(safeGet(row, colOcc))
		if err != nil {
			return nil, fmt.Errorf("row %d: weekly occurrences %q: %w", i+1, safeGet(row, colOcc), err)
		}
		h := core.HabitObservation{Description: desc, WeeklyOccurrences: occ}
		if s := safeGet(row, colDone); s != "" {
			done, err := strconv.Atoi(s)
			if err != nil {
				return nil, fmt.Errorf("row %d: completed %q: %w", i+1, s, err)
			}
			h.Completed = &done
		}
		out = append(out, h)
	}
	return out, nil
}

// normalizeMonth accepts "2025-06" or a full "2025-06-15" date.
func normalizeMonth(s string) (string, error) {
	if _, err := core.ParseMonth(s); err == nil {
		return s, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.Format(core.MonthLayout), nil
	}
	return "", fmt.Errorf("%w: %q", core.ErrInvalidMonth, s)
}

func toStrings(in []interface{}) []string {
	out := make([]string, len(in))
	for i, v := range in {
		out[i] = strings.TrimSpace(fmt.Sprint(v))
	}
	return out
}

func indexOf(arr []string, target string) int {
	for i, v := range arr {
		if strings.EqualFold(strings.TrimSpace(v), strings.TrimSpace(target)) {
			return i
		}
	}
	return -1
}

func safeGet(arr []string, idx int) string {
	if idx < 0 || idx >= len(arr) {
		return ""
	}
	return arr[idx]
}
