// Package planner decides whether goal and task writes may proceed. The
// rules here are pure functions over snapshots of a user's existing
// goals and tasks; Service wires them to the repositories so that every
// create, update, and toggle goes through the same checks.
package planner

import (
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/yearpeer/yearpeer-api/internal/calendar"
	"github.com/yearpeer/yearpeer-api/internal/models"
)

// DefaultDailyTaskLimit caps the number of tasks a user may place on a
// single calendar day.
const DefaultDailyTaskLimit = 5

const maxTitleLength = 255

var colorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// ValidateGoalFields checks the format rules for a candidate goal:
// title present and within length, color a #RRGGBB hex string, impact
// in 1..5. Returns nil when everything passes.
func ValidateGoalFields(input models.GoalInput) *FieldError {
	if input.Title == "" {
		return &FieldError{Field: "title", Message: "Title is required"}
	}
	if len(input.Title) > maxTitleLength {
		return &FieldError{Field: "title", Message: "Title is too long"}
	}
	if !colorPattern.MatchString(input.Color) {
		return &FieldError{Field: "color", Message: "Invalid color format"}
	}
	if input.Impact < 1 || input.Impact > 5 {
		return &FieldError{Field: "impact", Message: "Impact must be between 1 and 5"}
	}
	if input.StartDate.IsZero() || input.EndDate.IsZero() {
		return &FieldError{Field: "startDate", Message: "Start and end dates are required"}
	}
	return nil
}

// ValidateDateOrder rejects ranges whose end precedes their start.
// Comparison is on calendar dates, so times-of-day cannot flip it.
func ValidateDateOrder(start, end time.Time) error {
	if calendar.Midnight(end).Before(calendar.Midnight(start)) {
		return ErrEndBeforeStart
	}
	return nil
}

// HasOverlap reports whether any existing goal's closed [start, end]
// interval intersects the candidate interval. Goals touching at a
// boundary day count as overlapping. The goal matching exclude (its own
// prior record during an edit) is skipped.
func HasOverlap(existing []models.Goal, start, end time.Time, exclude uuid.UUID) bool {
	cs, ce := calendar.Midnight(start), calendar.Midnight(end)
	for _, g := range existing {
		if g.ID == exclude {
			continue
		}
		gs, ge := calendar.Midnight(g.StartDate), calendar.Midnight(g.EndDate)
		if !gs.After(ce) && !ge.Before(cs) {
			return true
		}
	}
	return false
}

// ValidateTaskFields checks the format rules for a candidate task.
func ValidateTaskFields(input models.TaskInput) *FieldError {
	if input.Title == "" {
		return &FieldError{Field: "title", Message: "Title is required"}
	}
	if len(input.Title) > maxTitleLength {
		return &FieldError{Field: "title", Message: "Title is too long"}
	}
	if input.Date.IsZero() {
		return &FieldError{Field: "date", Message: "Date is required"}
	}
	return nil
}

// CountTasksOnDate counts the tasks falling on the given calendar day,
// skipping the task matching exclude.
func CountTasksOnDate(existing []models.Task, date time.Time, exclude uuid.UUID) int {
	day := calendar.Midnight(date)
	count := 0
	for _, t := range existing {
		if t.ID == exclude {
			continue
		}
		if calendar.Midnight(t.Date).Equal(day) {
			count++
		}
	}
	return count
}

// WithinQuota reports whether one more task fits on the given day.
func WithinQuota(existing []models.Task, date time.Time, exclude uuid.UUID, quota int) bool {
	return CountTasksOnDate(existing, date, exclude) < quota
}
