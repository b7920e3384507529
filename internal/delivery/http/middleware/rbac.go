package middleware

import (
	"github.com/bytebury/ctrunner/internal/delivery/http/response"
	"github.com/bytebury/ctrunner/pkg/constant"
	"github.com/bytebury/ctrunner/pkg/failure"
	"github.com/gofiber/fiber/v2"
)

// CheckRole must run after Auth.Required.
func CheckRole(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := CurrentUser(c)
		if err != nil {
			return response.WithError(c, err)
		}

		for _, allowedRole := range allowedRoles {
			if user.Role == allowedRole {
				return c.Next()
			}
		}

		return response.WithError(c, failure.Forbidden("insufficient permissions"))
	}
}

func AdminOnly() fiber.Handler {
	return CheckRole(constant.UserRoleAdmin)
}

// OrphanOnly lets through users who have not linked a runner id yet.
func OrphanOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := CurrentUser(c)
		if err != nil {
			return response.WithError(c, err)
		}

		if !user.IsOrphan() {
			return response.WithError(c, failure.Forbidden("runner info is already set"))
		}

		return c.Next()
	}
}
