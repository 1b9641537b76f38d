package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Goal is a time-bounded objective. A user's goals may never overlap:
// the [StartDate, EndDate] intervals are closed, so two goals sharing a
// boundary day conflict.
type Goal struct {
	ID          uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID      `json:"userId" gorm:"type:uuid;index;not null"`
	Title       string         `json:"title" gorm:"not null"`
	Description *string        `json:"description"`
	Color       string         `json:"color" gorm:"not null"`
	Impact      int            `json:"impact" gorm:"not null"`
	StartDate   time.Time      `json:"startDate" gorm:"index;not null"`
	EndDate     time.Time      `json:"endDate" gorm:"index;not null"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
	Tasks       []Task         `json:"tasks" gorm:"foreignKey:GoalID"`
}

func (g *Goal) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}

// GoalInput is the payload for creating or replacing a goal.
type GoalInput struct {
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Color       string    `json:"color"`
	Impact      int       `json:"impact"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
}
