package calendar

import (
	"testing"
	"time"

	"github.com/yearpeer/yearpeer-api/internal/models"
)

func goalSpan(start, end time.Time) models.Goal {
	return models.Goal{Title: "span", Color: "#888FFF", Impact: 3, StartDate: start, EndDate: end}
}

func TestActiveOnDate(t *testing.T) {
	g := goalSpan(date(2025, time.March, 10), date(2025, time.March, 20))

	tests := []struct {
		name string
		d    time.Time
		want bool
	}{
		{"first day", date(2025, time.March, 10), true},
		{"last day", date(2025, time.March, 20), true},
		{"middle", date(2025, time.March, 15), true},
		{"day before", date(2025, time.March, 9), false},
		{"day after", date(2025, time.March, 21), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ActiveOnDate(g, tt.d); got != tt.want {
				t.Errorf("ActiveOnDate(%v) = %v, want %v", tt.d, got, tt.want)
			}
		})
	}
}

func TestActiveOnDateStrayTimes(t *testing.T) {
	// Bounds carrying times-of-day must not shift the covered days.
	g := goalSpan(
		time.Date(2025, time.March, 10, 22, 0, 0, 0, time.UTC),
		time.Date(2025, time.March, 20, 1, 0, 0, 0, time.UTC),
	)
	if !ActiveOnDate(g, date(2025, time.March, 10)) {
		t.Error("start day should be covered despite late start time")
	}
	if !ActiveOnDate(g, date(2025, time.March, 20)) {
		t.Error("end day should be covered despite early end time")
	}
}

func TestGoalsOnDate(t *testing.T) {
	goals := []models.Goal{
		goalSpan(date(2025, time.January, 1), date(2025, time.January, 31)),
		goalSpan(date(2025, time.February, 1), date(2025, time.February, 28)),
	}

	active := GoalsOnDate(goals, date(2025, time.January, 15))
	if len(active) != 1 {
		t.Fatalf("got %d active goals, want 1", len(active))
	}
	if none := GoalsOnDate(goals, date(2025, time.March, 1)); len(none) != 0 {
		t.Fatalf("got %d active goals, want 0", len(none))
	}
}

func TestGoalStatus(t *testing.T) {
	g := goalSpan(date(2025, time.June, 1), date(2025, time.June, 30))

	if s := GoalStatus(g, date(2025, time.May, 20)); s != "upcoming" {
		t.Errorf("status = %q, want upcoming", s)
	}
	if s := GoalStatus(g, date(2025, time.June, 15)); s != "active" {
		t.Errorf("status = %q, want active", s)
	}
	if s := GoalStatus(g, date(2025, time.June, 30)); s != "active" {
		t.Errorf("status = %q, want active on last day", s)
	}
	if s := GoalStatus(g, date(2025, time.July, 1)); s != "completed" {
		t.Errorf("status = %q, want completed", s)
	}
}
