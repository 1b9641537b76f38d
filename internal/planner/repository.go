package planner

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/yearpeer/yearpeer-api/internal/models"
)

// GoalRepository is the persistence surface the planner needs for
// goals. All reads and writes are scoped to a single owning user;
// lookups for ids outside that scope report ErrNotFound.
type GoalRepository interface {
	ByYear(ctx context.Context, userID uuid.UUID, year int) ([]models.Goal, error)
	ByRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]models.Goal, error)
	ByID(ctx context.Context, id, userID uuid.UUID) (*models.Goal, error)
	Create(ctx context.Context, goal *models.Goal) error
	Update(ctx context.Context, goal *models.Goal) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

// TaskRepository is the persistence surface the planner needs for tasks.
type TaskRepository interface {
	ByDate(ctx context.Context, userID uuid.UUID, date time.Time) ([]models.Task, error)
	ByRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]models.Task, error)
	ByID(ctx context.Context, id, userID uuid.UUID) (*models.Task, error)
	Create(ctx context.Context, task *models.Task) error
	Update(ctx context.Context, task *models.Task) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
