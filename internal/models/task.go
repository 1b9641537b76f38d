package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Task is a single-day to-do item, optionally linked to one of the
// owner's goals. At most the configured daily limit of tasks may exist
// per user per calendar day.
type Task struct {
	ID          uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID      `json:"userId" gorm:"type:uuid;index;not null"`
	GoalID      *uuid.UUID     `json:"goalId" gorm:"type:uuid;index"`
	Title       string         `json:"title" gorm:"not null"`
	Description *string        `json:"description"`
	Date        time.Time      `json:"date" gorm:"index;not null"`
	Completed   bool           `json:"completed" gorm:"default:false"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
	Goal        *Goal          `json:"goal,omitempty" gorm:"foreignKey:GoalID"`
}

func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TaskInput is the payload for creating a task.
type TaskInput struct {
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Date        time.Time  `json:"date"`
	GoalID      *uuid.UUID `json:"goalId"`
	Completed   bool       `json:"completed"`
}

// UpdateTaskRequest carries a partial update; nil fields are left as-is.
type UpdateTaskRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Date        *time.Time `json:"date"`
	GoalID      *uuid.UUID `json:"goalId"`
	Completed   *bool      `json:"completed"`
}

type ToggleTaskRequest struct {
	Completed bool `json:"completed"`
}
