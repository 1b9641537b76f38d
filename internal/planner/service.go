package planner

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/yearpeer/yearpeer-api/internal/calendar"
	"github.com/yearpeer/yearpeer-api/internal/models"
)

// Service is the single entry point for goal and task writes. Handlers
// never touch the repositories directly, so the overlap and quota
// invariants hold no matter which endpoint initiated the change.
type Service struct {
	goals GoalRepository
	tasks TaskRepository
	limit int
}

func NewService(goals GoalRepository, tasks TaskRepository, dailyTaskLimit int) *Service {
	if dailyTaskLimit <= 0 {
		dailyTaskLimit = DefaultDailyTaskLimit
	}
	return &Service{goals: goals, tasks: tasks, limit: dailyTaskLimit}
}

// DailyTaskLimit returns the configured per-day task cap.
func (s *Service) DailyTaskLimit() int {
	return s.limit
}

// CreateGoal validates field formats, date order, and overlap against
// the user's existing goals, in that order, then persists. The returned
// goal carries its (empty) task list.
func (s *Service) CreateGoal(ctx context.Context, userID uuid.UUID, input models.GoalInput) (*models.Goal, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	if ferr := ValidateGoalFields(input); ferr != nil {
		return nil, ferr
	}
	if err := ValidateDateOrder(input.StartDate, input.EndDate); err != nil {
		return nil, err
	}

	existing, err := s.goals.ByRange(ctx, userID, input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
	}
	if HasOverlap(existing, input.StartDate, input.EndDate, uuid.Nil) {
		return nil, ErrOverlap
	}

	goal := models.Goal{
		UserID:      userID,
		Title:       input.Title,
		Description: input.Description,
		Color:       input.Color,
		Impact:      input.Impact,
		StartDate:   calendar.Midnight(input.StartDate),
		EndDate:     calendar.Midnight(input.EndDate),
	}
	if err := s.goals.Create(ctx, &goal); err != nil {
		return nil, err
	}
	return s.goals.ByID(ctx, goal.ID, userID)
}

// UpdateGoal re-runs the same checks as CreateGoal against the user's
// other goals, excluding the goal's own prior record from the overlap
// test.
func (s *Service) UpdateGoal(ctx context.Context, userID, id uuid.UUID, input models.GoalInput) (*models.Goal, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	goal, err := s.goals.ByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if ferr := ValidateGoalFields(input); ferr != nil {
		return nil, ferr
	}
	if err := ValidateDateOrder(input.StartDate, input.EndDate); err != nil {
		return nil, err
	}

	existing, err := s.goals.ByRange(ctx, userID, input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
	}
	if HasOverlap(existing, input.StartDate, input.EndDate, id) {
		return nil, ErrOverlap
	}

	goal.Title = input.Title
	goal.Description = input.Description
	goal.Color = input.Color
	goal.Impact = input.Impact
	goal.StartDate = calendar.Midnight(input.StartDate)
	goal.EndDate = calendar.Midnight(input.EndDate)

	if err := s.goals.Update(ctx, goal); err != nil {
		return nil, err
	}
	return s.goals.ByID(ctx, id, userID)
}

// DeleteGoal removes the goal and, through the repository, its tasks.
func (s *Service) DeleteGoal(ctx context.Context, userID, id uuid.UUID) error {
	if userID == uuid.Nil {
		return ErrUnauthorized
	}
	if _, err := s.goals.ByID(ctx, id, userID); err != nil {
		return err
	}
	return s.goals.Delete(ctx, id, userID)
}

func (s *Service) GoalsByYear(ctx context.Context, userID uuid.UUID, year int) ([]models.Goal, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	return s.goals.ByYear(ctx, userID, year)
}

func (s *Service) GoalsByRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]models.Goal, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	return s.goals.ByRange(ctx, userID, start, end)
}

func (s *Service) GoalByID(ctx context.Context, userID, id uuid.UUID) (*models.Goal, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	return s.goals.ByID(ctx, id, userID)
}

// CreateTask validates fields and the daily quota on the task's date.
// A goal link must point at a goal owned by the same user.
func (s *Service) CreateTask(ctx context.Context, userID uuid.UUID, input models.TaskInput) (*models.Task, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	if ferr := ValidateTaskFields(input); ferr != nil {
		return nil, ferr
	}
	if input.GoalID != nil {
		if _, err := s.goals.ByID(ctx, *input.GoalID, userID); err != nil {
			return nil, &FieldError{Field: "goalId", Message: "Goal not found"}
		}
	}

	existing, err := s.tasks.ByDate(ctx, userID, input.Date)
	if err != nil {
		return nil, err
	}
	if !WithinQuota(existing, input.Date, uuid.Nil, s.limit) {
		return nil, &QuotaExceededError{Limit: s.limit}
	}

	task := models.Task{
		UserID:      userID,
		GoalID:      input.GoalID,
		Title:       input.Title,
		Description: input.Description,
		Date:        calendar.Midnight(input.Date),
		Completed:   input.Completed,
	}
	if err := s.tasks.Create(ctx, &task); err != nil {
		return nil, err
	}
	return s.tasks.ByID(ctx, task.ID, userID)
}

// UpdateTask applies a partial update. The quota is re-checked only when
// the date actually changes, against the target date and excluding the
// task's own prior record.
func (s *Service) UpdateTask(ctx context.Context, userID, id uuid.UUID, req models.UpdateTaskRequest) (*models.Task, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	task, err := s.tasks.ByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		if ferr := ValidateTaskFields(models.TaskInput{Title: *req.Title, Date: task.Date}); ferr != nil {
			return nil, ferr
		}
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = req.Description
	}
	if req.GoalID != nil {
		if _, err := s.goals.ByID(ctx, *req.GoalID, userID); err != nil {
			return nil, &FieldError{Field: "goalId", Message: "Goal not found"}
		}
		task.GoalID = req.GoalID
	}
	if req.Date != nil && !calendar.SameDay(task.Date, *req.Date) {
		existing, err := s.tasks.ByDate(ctx, userID, *req.Date)
		if err != nil {
			return nil, err
		}
		if !WithinQuota(existing, *req.Date, id, s.limit) {
			return nil, &QuotaExceededError{Limit: s.limit}
		}
		task.Date = calendar.Midnight(*req.Date)
	}
	if req.Completed != nil {
		task.Completed = *req.Completed
	}

	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, err
	}
	return s.tasks.ByID(ctx, id, userID)
}

// ToggleTask flips completion without any field or quota validation.
// Both directions are always legal and repeating a direction is not an
// error.
func (s *Service) ToggleTask(ctx context.Context, userID, id uuid.UUID, completed bool) (*models.Task, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	task, err := s.tasks.ByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	task.Completed = completed
	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// DeleteTask removes a task; tasks may always be deleted.
func (s *Service) DeleteTask(ctx context.Context, userID, id uuid.UUID) error {
	if userID == uuid.Nil {
		return ErrUnauthorized
	}
	if _, err := s.tasks.ByID(ctx, id, userID); err != nil {
		return err
	}
	return s.tasks.Delete(ctx, id, userID)
}

func (s *Service) TasksByDate(ctx context.Context, userID uuid.UUID, date time.Time) ([]models.Task, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	return s.tasks.ByDate(ctx, userID, date)
}

func (s *Service) TaskByID(ctx context.Context, userID, id uuid.UUID) (*models.Task, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	return s.tasks.ByID(ctx, id, userID)
}

// TasksByRange returns the user's tasks between start and end inclusive,
// grouped by YYYY-MM-DD day key for calendar rendering.
func (s *Service) TasksByRange(ctx context.Context, userID uuid.UUID, start, end time.Time) (map[string][]models.Task, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	tasks, err := s.tasks.ByRange(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	byDay := make(map[string][]models.Task)
	for _, t := range tasks {
		key := calendar.DateKey(t.Date)
		byDay[key] = append(byDay[key], t)
	}
	return byDay, nil
}
