package handlers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/yearpeer/yearpeer-api/internal/middleware"
	"github.com/yearpeer/yearpeer-api/internal/models"
)

// GetGoals lists the caller's goals intersecting a year (default: the
// current year), each with its tasks.
func (a *API) GetGoals(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	year := time.Now().Year()
	if raw := c.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid year",
			})
		}
		year = parsed
	}

	goals, err := a.Planner.GoalsByYear(c.UserContext(), userID, year)
	if err != nil {
		return fail(c, err, "Failed to fetch goals")
	}
	return c.JSON(goals)
}

func (a *API) GetGoal(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	goalID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid goal ID",
		})
	}

	goal, err := a.Planner.GoalByID(c.UserContext(), userID, goalID)
	if err != nil {
		return fail(c, err, "Failed to fetch goal")
	}
	return c.JSON(goal)
}

func (a *API) CreateGoal(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	var input models.GoalInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	goal, err := a.Planner.CreateGoal(c.UserContext(), userID, input)
	if err != nil {
		return fail(c, err, "Failed to create goal")
	}
	return c.Status(fiber.StatusCreated).JSON(goal)
}

func (a *API) UpdateGoal(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	goalID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid goal ID",
		})
	}

	var input models.GoalInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	goal, err := a.Planner.UpdateGoal(c.UserContext(), userID, goalID, input)
	if err != nil {
		return fail(c, err, "Failed to update goal")
	}
	return c.JSON(goal)
}

func (a *API) DeleteGoal(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	goalID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid goal ID",
		})
	}

	if err := a.Planner.DeleteGoal(c.UserContext(), userID, goalID); err != nil {
		return fail(c, err, "Failed to delete goal")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
