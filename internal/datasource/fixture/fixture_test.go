package fixture

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestDefaultDataset(t *testing.T) {
	d := Default()
	if err := d.Validate(); err != nil {
		t.Fatalf("default dataset invalid: %v", err)
	}
	if len(d.SpendingCategories) != 6 || len(d.Habits) != 3 || len(d.AccomplishedHabits) != 2 {
		t.Fatalf("unexpected default sizes: %d categories, %d habits, %d accomplishments",
			len(d.SpendingCategories), len(d.Habits), len(d.AccomplishedHabits))
	}
}

func TestLoadDirOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "spending_categories.json", `[
		{"category_name": "Groceries", "amount": 410.5, "month": "2025-07"},
		{"category_name": "Groceries", "amount": "380", "month": "2025-08"}
	]`)
	writeFile(t, dir, "habits.json", `[{"description": "Walk to work", "weekly_occurrences": 3, "completed": 1}]`)

	d, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	if len(d.SpendingCategories) != 2 || d.SpendingCategories[1].Amount.String() != "380" {
		t.Fatalf("unexpected categories %+v", d.SpendingCategories)
	}
	if len(d.Habits) != 1 || d.Habits[0].CompletedOrZero() != 1 {
		t.Fatalf("unexpected habits %+v", d.Habits)
	}
	if d.SpendingStatus.Income.String() != "6000" {
		t.Fatalf("expected default status to remain, got %s", d.SpendingStatus.Income)
	}
}

func TestLoadDirMissingDirectoryUsesDefaults(t *testing.T) {
	d, err := LoadDir(filepath.Join(t.TempDir(), "absent"))
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	if len(d.SpendingCategories) != len(Default().SpendingCategories) {
		t.Fatal("expected default dataset")
	}
}

func TestLoadDirErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		want    string
	}{
		{"malformed json", "goal.json", `{"goal_name":`, "decode"},
		{"bad month", "spending_categories.json", `[{"category_name":"A","amount":1,"month":"June"}]`, "spending category 0"},
		{"negative amount", "spending_categories.json", `[{"category_name":"A","amount":-1,"month":"2025-06"}]`, "spending category 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, tt.file, tt.content)
			_, err := LoadDir(dir)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestStoreReturnsCopies(t *testing.T) {
	s := New(Default())
	ctx := context.Background()

	habits, _ := s.Habits(ctx)
	habits[0].Description = "changed"

	again, _ := s.Habits(ctx)
	if again[0].Description != "Try a No-Spend-Day" {
		t.Fatalf("store was mutated through returned slice: %q", again[0].Description)
	}

	goal, err := s.ComputedGoal(ctx)
	if err != nil || goal.GoalName == "" {
		t.Fatalf("unexpected goal %+v, %v", goal, err)
	}
	streak, _ := s.WeeklyStreak(ctx)
	if streak.Count() != 3 {
		t.Fatalf("expected 3 active days, got %d", streak.Count())
	}
}
