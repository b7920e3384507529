package http

import (
	"github.com/bytebury/ctrunner/config"
	"github.com/bytebury/ctrunner/internal/delivery/http/middleware"
	raceHandler "github.com/bytebury/ctrunner/internal/domains/races/handler"
	townHandler "github.com/bytebury/ctrunner/internal/domains/towns/handler"
	userHandler "github.com/bytebury/ctrunner/internal/domains/users/handler"
	"github.com/bytebury/ctrunner/pkg/logger"
	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	User *userHandler.Handler
	Town *townHandler.Handler
	Race *raceHandler.Handler
}

// NewRouter initializes the HTTP router and registers the routes for the application.
func NewRouter(
	app *fiber.App,
	cfg *config.Config,
	l logger.Interface,
	handlers Handlers,
) {
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(l))
	app.Use(middleware.Recovery(l))
	app.Use(middleware.CORS(cfg))

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	apiV1Group := app.Group("/v1")
	{
		handlers.User.RegisterRoutes(apiV1Group)
		handlers.Town.RegisterRoutes(apiV1Group)
		handlers.Race.RegisterRoutes(apiV1Group)
	}

	app.Use("*", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "route not found",
		})
	})
}
