package planner

import (
	"errors"
	"fmt"
)

var (
	ErrEndBeforeStart = errors.New("end date cannot be before start date")
	ErrOverlap        = errors.New("a goal already exists during this time period")
	ErrNotFound       = errors.New("not found")
	ErrUnauthorized   = errors.New("unauthorized")
)

// FieldError reports a single field failing a format, length, or range
// rule. The message is safe to show to the user.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Message
}

// QuotaExceededError is returned when a day already holds the maximum
// number of tasks.
type QuotaExceededError struct {
	Limit int
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("cannot exceed %d tasks per day", e.Limit)
}
