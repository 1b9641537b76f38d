package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/yearpeer/yearpeer-api/internal/handlers"
	"github.com/yearpeer/yearpeer-api/internal/middleware"
)

func Setup(app *fiber.App, api *handlers.API) {
	app.Use(middleware.Metrics())
	app.Get("/metrics", middleware.MetricsHandler())

	root := app.Group("/api")

	auth := root.Group("/auth")
	auth.Post("/register", handlers.Register)
	auth.Post("/login", handlers.Login)

	protected := root.Group("/", middleware.Protected())

	protected.Get("/me", handlers.GetMe)

	goals := protected.Group("/goals")
	goals.Get("/", api.GetGoals)
	goals.Post("/", api.CreateGoal)
	goals.Get("/:id", api.GetGoal)
	goals.Put("/:id", api.UpdateGoal)
	goals.Delete("/:id", api.DeleteGoal)

	tasks := protected.Group("/tasks")
	tasks.Get("/", api.GetTasks)
	tasks.Post("/", api.CreateTask)
	tasks.Get("/:id", api.GetTask)
	tasks.Put("/:id", api.UpdateTask)
	tasks.Delete("/:id", api.DeleteTask)
	tasks.Post("/:id/toggle", api.ToggleTask)

	cal := protected.Group("/calendar")
	cal.Get("/:year", api.GetYearView)
	cal.Get("/:year/:month", api.GetMonthView)
}
