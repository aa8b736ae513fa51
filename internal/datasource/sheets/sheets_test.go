package sheets

import (
	"context"
	"errors"
	"strings"
	"testing"

	"noumi/internal/datasource"
	"noumi/internal/datasource/fixture"
)

type fakeReader struct {
	ranges map[string][][]interface{}
	err    error
	calls  []string
}

func (f *fakeReader) Values(_ context.Context, rng string) ([][]interface{}, error) {
	f.calls = append(f.calls, rng)
	if f.err != nil {
		return nil, f.err
	}
	return f.ranges[rng], nil
}

func TestParseCategoryRows(t *testing.T) {
	values := [][]interface{}{
		{"Month", "Category", "Amount"},
		{"2025-05", "Coffee Shops", 250.0},
		{"2025-06", "Coffee Shops", "$284.51"},
		{"", "", ""},
		{"2025-06-01", "Shopping", "1,289.24"},
		{"2025-06", "# note", "1"},
	}
	got, err := parseCategoryRows(values)
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 rows, got %d: %+v", len(got), got)
	}
	if got[1].Amount.String() != "284.51" {
		t.Fatalf("amount: got %s", got[1].Amount)
	}
	if got[2].Month != "2025-06" || got[2].Amount.String() != "1289.24" {
		t.Fatalf("unexpected row %+v", got[2])
	}
}

func TestParseCategoryRows_Errors(t *testing.T) {
	tests := []struct {
		name   string
		values [][]interface{}
		want   string
	}{
		{"missing header", [][]interface{}{{"Category", "Amount"}}, "unexpected spending header"},
		{"bad month", [][]interface{}{{"Category", "Month", "Amount"}, {"A", "June", "1"}}, "row 2"},
		{"bad amount", [][]interface{}{{"Category", "Month", "Amount"}, {"A", "2025-06", "lots"}}, "row 2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseCategoryRows(tt.values)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestParseHabitRows(t *testing.T) {
	values := [][]interface{}{
		{"Description", "Weekly Occurrences", "Completed"},
		{"Eat at home twice", "2", "1"},
		{"Log in to Noumi daily", 7},
		{"Broken habit", "0"},
	}
	got, err := parseHabitRows(values)
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 habits, got %d", len(got))
	}
	if got[0].CompletedOrZero() != 1 || got[1].Completed != nil {
		t.Fatalf("unexpected completion %+v", got)
	}
	if got[2].WeeklyOccurrences != 0 {
		t.Fatal("zero occurrences should pass through to the hydrator")
	}

	if _, err := parseHabitRows([][]interface{}{{"Description", "Weekly Occurrences"}, {"x", "many"}}); err == nil {
		t.Fatal("expected error for non-numeric occurrences")
	}
	if got, err := parseHabitRows(nil); err != nil || len(got) != 0 {
		t.Fatalf("expected empty result, got %v %v", got, err)
	}
}

func TestClient_ReadsSheetsAndFallsBack(t *testing.T) {
	reader := &fakeReader{ranges: map[string][][]interface{}{
		"Spending!A:Z": {{"Category", "Month", "Amount"}, {"Rent", "2025-06", "1000"}},
		"Habits!A:Z":   {{"Description", "Weekly Occurrences"}, {"Walk", "3"}},
	}}
	c := newClient(reader, Config{}, fixture.New(fixture.Default()), nil)
	ctx := context.Background()

	obs, err := c.SpendingCategories(ctx)
	if err != nil || len(obs) != 1 || obs[0].CategoryName != "Rent" {
		t.Fatalf("unexpected categories %+v, %v", obs, err)
	}
	habits, err := c.Habits(ctx)
	if err != nil || len(habits) != 1 || habits[0].Description != "Walk" {
		t.Fatalf("unexpected habits %+v, %v", habits, err)
	}

	status, err := c.SpendingStatus(ctx)
	if err != nil || status.Income.String() != "6000" {
		t.Fatalf("expected fallback status, got %+v, %v", status, err)
	}
	if len(reader.calls) != 2 {
		t.Fatalf("expected 2 sheet reads, got %v", reader.calls)
	}
}

func TestClient_ReadError(t *testing.T) {
	reader := &fakeReader{err: errors.New("quota exceeded")}
	c := newClient(reader, Config{SpendingSheet: "2025 Spending"}, fixture.New(fixture.Default()), nil)

	_, err := c.SpendingCategories(context.Background())
	if !errors.Is(err, datasource.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	if reader.calls[0] != "2025 Spending!A:Z" {
		t.Fatalf("unexpected range %q", reader.calls[0])
	}
}

func TestCredentials(t *testing.T) {
	if _, err := credentials(Config{}); err == nil {
		t.Fatal("expected error without credentials")
	}
	b, err := credentials(Config{CredentialsJSON: `{"type":"service_account"}`})
	if err != nil || !strings.Contains(string(b), "service_account") {
		t.Fatalf("unexpected credentials %s, %v", b, err)
	}
}
