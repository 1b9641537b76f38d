package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/yearpeer/yearpeer-api/internal/logger"
	"github.com/yearpeer/yearpeer-api/internal/planner"
)

// API carries the planner service into the goal, task, and calendar
// handlers. Auth handlers work straight against the database and stay
// package-level.
type API struct {
	Planner *planner.Service
}

func NewAPI(svc *planner.Service) *API {
	return &API{Planner: svc}
}

// fail translates planner errors into HTTP responses. Validation
// failures keep their user-facing messages; anything unexpected is
// logged and replaced with a safe fallback.
func fail(c *fiber.Ctx, err error, fallback string) error {
	var fieldErr *planner.FieldError
	var quotaErr *planner.QuotaExceededError

	switch {
	case errors.As(err, &fieldErr):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": fieldErr.Message,
			"field": fieldErr.Field,
		})
	case errors.Is(err, planner.ErrEndBeforeStart):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": err.Error(),
		})
	case errors.Is(err, planner.ErrOverlap):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": err.Error(),
		})
	case errors.As(err, &quotaErr):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": quotaErr.Error(),
			"limit": quotaErr.Limit,
		})
	case errors.Is(err, planner.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Not found",
		})
	case errors.Is(err, planner.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	default:
		logger.Log.WithError(err).WithField("path", c.Path()).Error(fallback)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fallback,
		})
	}
}
