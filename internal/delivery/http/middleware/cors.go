package middleware

import (
	"github.com/bytebury/ctrunner/config"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

const defaultAllowedMethods = "GET,POST,PATCH,OPTIONS"

func CORS(cfg *config.Config) fiber.Handler {
	if !cfg.CORS.Enable {
		return func(c *fiber.Ctx) error {
			return c.Next()
		}
	}

	methods := cfg.CORS.AllowedMethods
	if methods == "" {
		methods = defaultAllowedMethods
	}

	return cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     methods,
		AllowHeaders:     cfg.CORS.AllowedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		ExposeHeaders:    HeaderRequestID,
		MaxAge:           cfg.CORS.MaxAgeSeconds,
	})
}
