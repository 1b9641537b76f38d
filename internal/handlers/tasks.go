package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/yearpeer/yearpeer-api/internal/middleware"
	"github.com/yearpeer/yearpeer-api/internal/models"
)

// GetTasks lists the caller's tasks for one day (?date=YYYY-MM-DD) or,
// with ?start= and ?end=, a range grouped by day.
func (a *API) GetTasks(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	if raw := c.Query("date"); raw != "" {
		date, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid date, expected YYYY-MM-DD",
			})
		}
		tasks, err := a.Planner.TasksByDate(c.UserContext(), userID, date)
		if err != nil {
			return fail(c, err, "Failed to fetch tasks")
		}
		return c.JSON(tasks)
	}

	start, err := time.Parse(time.DateOnly, c.Query("start"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid start date, expected YYYY-MM-DD",
		})
	}
	end, err := time.Parse(time.DateOnly, c.Query("end"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid end date, expected YYYY-MM-DD",
		})
	}

	byDay, err := a.Planner.TasksByRange(c.UserContext(), userID, start, end)
	if err != nil {
		return fail(c, err, "Failed to fetch tasks")
	}
	return c.JSON(byDay)
}

func (a *API) GetTask(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid task ID",
		})
	}

	task, err := a.Planner.TaskByID(c.UserContext(), userID, taskID)
	if err != nil {
		return fail(c, err, "Failed to fetch task")
	}
	return c.JSON(task)
}

func (a *API) CreateTask(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	var input models.TaskInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	task, err := a.Planner.CreateTask(c.UserContext(), userID, input)
	if err != nil {
		return fail(c, err, "Failed to create task")
	}
	return c.Status(fiber.StatusCreated).JSON(task)
}

func (a *API) UpdateTask(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid task ID",
		})
	}

	var req models.UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	task, err := a.Planner.UpdateTask(c.UserContext(), userID, taskID, req)
	if err != nil {
		return fail(c, err, "Failed to update task")
	}
	return c.JSON(task)
}

// ToggleTask flips completion only. It never runs field or quota
// validation, so a full day can still be checked off.
func (a *API) ToggleTask(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid task ID",
		})
	}

	var req models.ToggleTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	task, err := a.Planner.ToggleTask(c.UserContext(), userID, taskID, req.Completed)
	if err != nil {
		return fail(c, err, "Failed to update task")
	}
	return c.JSON(task)
}

func (a *API) DeleteTask(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid task ID",
		})
	}

	if err := a.Planner.DeleteTask(c.UserContext(), userID, taskID); err != nil {
		return fail(c, err, "Failed to delete task")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
