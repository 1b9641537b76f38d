// Package repository implements the planner's persistence interfaces on
// GORM. Every query is scoped by user id; ids outside that scope come
// back as planner.ErrNotFound.
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yearpeer/yearpeer-api/internal/calendar"
	"github.com/yearpeer/yearpeer-api/internal/models"
	"github.com/yearpeer/yearpeer-api/internal/planner"
)

type GoalRepository struct {
	db *gorm.DB
}

func NewGoalRepository(db *gorm.DB) *GoalRepository {
	return &GoalRepository{db: db}
}

// ByYear returns the user's goals intersecting the calendar year:
// starting in it, ending in it, or spanning it entirely.
func (r *GoalRepository) ByYear(ctx context.Context, userID uuid.UUID, year int) ([]models.Goal, error) {
	yearStart := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := calendar.EndOfDay(time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC))

	var goals []models.Goal
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where(
			r.db.Where("start_date BETWEEN ? AND ?", yearStart, yearEnd).
				Or("end_date BETWEEN ? AND ?", yearStart, yearEnd).
				Or("start_date <= ? AND end_date >= ?", yearStart, yearEnd),
		).
		Preload("Tasks").
		Order("start_date ASC").
		Find(&goals).Error
	if err != nil {
		return nil, err
	}
	return goals, nil
}

// ByRange returns the user's goals whose closed interval intersects
// [start, end].
func (r *GoalRepository) ByRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]models.Goal, error) {
	var goals []models.Goal
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("start_date <= ? AND end_date >= ?", calendar.EndOfDay(end), calendar.Midnight(start)).
		Order("start_date ASC").
		Find(&goals).Error
	if err != nil {
		return nil, err
	}
	return goals, nil
}

func (r *GoalRepository) ByID(ctx context.Context, id, userID uuid.UUID) (*models.Goal, error) {
	var goal models.Goal
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Preload("Tasks").
		First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, planner.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

func (r *GoalRepository) Create(ctx context.Context, goal *models.Goal) error {
	return r.db.WithContext(ctx).Create(goal).Error
}

func (r *GoalRepository) Update(ctx context.Context, goal *models.Goal) error {
	// Tasks ride along from Preload; saving them again here would upsert
	// the association.
	return r.db.WithContext(ctx).Omit("Tasks").Save(goal).Error
}

// Delete removes the goal and cascades to its tasks.
func (r *GoalRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("goal_id = ? AND user_id = ?", id, userID).Delete(&models.Task{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Goal{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return planner.ErrNotFound
		}
		return nil
	})
}
