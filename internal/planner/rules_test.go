package planner

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/yearpeer/yearpeer-api/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func validGoalInput() models.GoalInput {
	return models.GoalInput{
		Title:     "Learn X",
		Color:     "#888FFF",
		Impact:    3,
		StartDate: date(2025, time.January, 1),
		EndDate:   date(2025, time.January, 31),
	}
}

func TestValidateGoalFields(t *testing.T) {
	longTitle := make([]byte, 256)
	for i := range longTitle {
		longTitle[i] = 'x'
	}

	tests := []struct {
		name      string
		mutate    func(*models.GoalInput)
		wantField string
	}{
		{"valid", func(g *models.GoalInput) {}, ""},
		{"empty title", func(g *models.GoalInput) { g.Title = "" }, "title"},
		{"title too long", func(g *models.GoalInput) { g.Title = string(longTitle) }, "title"},
		{"title at limit", func(g *models.GoalInput) { g.Title = string(longTitle[:255]) }, ""},
		{"bad color no hash", func(g *models.GoalInput) { g.Color = "888FFF" }, "color"},
		{"bad color short", func(g *models.GoalInput) { g.Color = "#88F" }, "color"},
		{"bad color non-hex", func(g *models.GoalInput) { g.Color = "#88GFFZ" }, "color"},
		{"lowercase hex ok", func(g *models.GoalInput) { g.Color = "#aabbcc" }, ""},
		{"impact zero", func(g *models.GoalInput) { g.Impact = 0 }, "impact"},
		{"impact six", func(g *models.GoalInput) { g.Impact = 6 }, "impact"},
		{"impact five ok", func(g *models.GoalInput) { g.Impact = 5 }, ""},
		{"missing dates", func(g *models.GoalInput) { g.StartDate, g.EndDate = time.Time{}, time.Time{} }, "startDate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validGoalInput()
			tt.mutate(&input)
			err := ValidateGoalFields(input)
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected a field error")
			}
			if err.Field != tt.wantField {
				t.Errorf("field = %q, want %q", err.Field, tt.wantField)
			}
			if err.Message == "" {
				t.Error("expected a user-facing message")
			}
		})
	}
}

func TestValidateDateOrder(t *testing.T) {
	if err := ValidateDateOrder(date(2025, time.January, 10), date(2025, time.January, 5)); err != ErrEndBeforeStart {
		t.Errorf("got %v, want ErrEndBeforeStart", err)
	}
	if err := ValidateDateOrder(date(2025, time.January, 5), date(2025, time.January, 5)); err != nil {
		t.Errorf("single-day goal should be valid, got %v", err)
	}
	if err := ValidateDateOrder(date(2025, time.January, 5), date(2025, time.January, 10)); err != nil {
		t.Errorf("got %v, want nil", err)
	}
	// Times-of-day on the same calendar day must not trip the check.
	start := time.Date(2025, time.January, 5, 15, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.January, 5, 9, 0, 0, 0, time.UTC)
	if err := ValidateDateOrder(start, end); err != nil {
		t.Errorf("same-day with earlier end time should be valid, got %v", err)
	}
}

func existingGoal(id uuid.UUID, start, end time.Time) models.Goal {
	return models.Goal{ID: id, Title: "existing", Color: "#BF76DE", Impact: 2, StartDate: start, EndDate: end}
}

func TestHasOverlap(t *testing.T) {
	id := uuid.New()
	existing := []models.Goal{existingGoal(id, date(2025, time.January, 1), date(2025, time.January, 10))}

	tests := []struct {
		name       string
		start, end time.Time
		exclude    uuid.UUID
		want       bool
	}{
		{"disjoint after", date(2025, time.January, 11), date(2025, time.January, 20), uuid.Nil, false},
		{"disjoint before", date(2024, time.December, 1), date(2024, time.December, 31), uuid.Nil, false},
		{"inside", date(2025, time.January, 3), date(2025, time.January, 7), uuid.Nil, true},
		{"contains", date(2024, time.December, 1), date(2025, time.February, 1), uuid.Nil, true},
		{"shared boundary day", date(2025, time.January, 10), date(2025, time.January, 20), uuid.Nil, true},
		{"touching start boundary", date(2024, time.December, 20), date(2025, time.January, 1), uuid.Nil, true},
		{"self excluded", date(2025, time.January, 5), date(2025, time.January, 15), id, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasOverlap(existing, tt.start, tt.end, tt.exclude); got != tt.want {
				t.Errorf("HasOverlap = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidateTaskFields(t *testing.T) {
	if err := ValidateTaskFields(models.TaskInput{Title: "Buy milk", Date: date(2025, time.January, 5)}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := ValidateTaskFields(models.TaskInput{Date: date(2025, time.January, 5)})
	if err == nil || err.Field != "title" {
		t.Fatalf("expected title field error, got %v", err)
	}

	err = ValidateTaskFields(models.TaskInput{Title: "Buy milk"})
	if err == nil || err.Field != "date" {
		t.Fatalf("expected date field error, got %v", err)
	}
}

func TestCountTasksOnDate(t *testing.T) {
	target := date(2025, time.January, 5)
	skip := uuid.New()
	tasks := []models.Task{
		{ID: uuid.New(), Title: "a", Date: target},
		{ID: skip, Title: "b", Date: target},
		{ID: uuid.New(), Title: "c", Date: time.Date(2025, time.January, 5, 18, 30, 0, 0, time.UTC)},
		{ID: uuid.New(), Title: "d", Date: date(2025, time.January, 6)},
	}

	if got := CountTasksOnDate(tasks, target, uuid.Nil); got != 3 {
		t.Errorf("count = %d, want 3", got)
	}
	if got := CountTasksOnDate(tasks, target, skip); got != 2 {
		t.Errorf("count with exclusion = %d, want 2", got)
	}
}

func TestWithinQuota(t *testing.T) {
	target := date(2025, time.January, 5)
	var tasks []models.Task
	for i := 0; i < DefaultDailyTaskLimit-1; i++ {
		tasks = append(tasks, models.Task{ID: uuid.New(), Title: "t", Date: target})
	}

	if !WithinQuota(tasks, target, uuid.Nil, DefaultDailyTaskLimit) {
		t.Error("one slot left, expected within quota")
	}
	tasks = append(tasks, models.Task{ID: uuid.New(), Title: "t", Date: target})
	if WithinQuota(tasks, target, uuid.Nil, DefaultDailyTaskLimit) {
		t.Error("day full, expected quota exceeded")
	}
	// Excluding one of the day's tasks frees its slot.
	if !WithinQuota(tasks, target, tasks[0].ID, DefaultDailyTaskLimit) {
		t.Error("self-exclusion should free a slot")
	}
}
