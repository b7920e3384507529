package middleware

import (
	"github.com/bytebury/ctrunner/pkg/constant"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const HeaderRequestID = "X-Request-ID"

func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set(HeaderRequestID, requestID)
		c.Locals(constant.LocalsRequestID, requestID)

		return c.Next()
	}
}

// GetRequestID returns "unknown" outside of the RequestID middleware.
func GetRequestID(c *fiber.Ctx) string {
	if id, ok := c.Locals(constant.LocalsRequestID).(string); ok {
		return id
	}

	return "unknown"
}
