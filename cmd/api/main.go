package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"

	"github.com/yearpeer/yearpeer-api/internal/config"
	"github.com/yearpeer/yearpeer-api/internal/database"
	"github.com/yearpeer/yearpeer-api/internal/handlers"
	"github.com/yearpeer/yearpeer-api/internal/logger"
	"github.com/yearpeer/yearpeer-api/internal/planner"
	"github.com/yearpeer/yearpeer-api/internal/repository"
	"github.com/yearpeer/yearpeer-api/internal/routes"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(cfg.LogLevel)

	if err := database.Connect(cfg); err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}
	if err := database.Migrate(); err != nil {
		log.WithError(err).Fatal("failed to run migrations")
	}

	svc := planner.NewService(
		repository.NewGoalRepository(database.DB),
		repository.NewTaskRepository(database.DB),
		cfg.DailyTaskLimit,
	)

	app := fiber.New()
	routes.Setup(app, handlers.NewAPI(svc))

	log.WithField("port", cfg.Port).Info("starting yearpeer api")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
