package api

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/logger"

	"github.com/SamuelLeutner/student-risk-dashboard/api/handlers"
	"github.com/SamuelLeutner/student-risk-dashboard/config"
	"github.com/SamuelLeutner/student-risk-dashboard/dashboard"
	"github.com/SamuelLeutner/student-risk-dashboard/storage"
)

func SetupRouter(pipeline *dashboard.Pipeline, store storage.PageStore, appConfig *config.Config) *fiber.App {
	r := fiber.New()
	r.Use(logger.New())

	r.Get("/", handlers.CreateDashboardHTMLHandler(pipeline, store, appConfig))

	api := r.Group("/api/v1")
	api.Get("/ping", handlers.HandlePing)
	api.Post("/pages", handlers.CreateLoadPageHandler(pipeline, store, appConfig))
	api.Get("/pages/:id", handlers.CreateGetPageHandler(store))
	api.Post("/pages/:id/click", handlers.CreateClickHandler(store))
	api.Delete("/pages/:id", handlers.CreateDeletePageHandler(store))

	return r
}
