package middleware

import (
	"context"
	"strings"

	"github.com/bytebury/ctrunner/internal/delivery/http/response"
	"github.com/bytebury/ctrunner/internal/domains/users/repository"
	"github.com/bytebury/ctrunner/pkg/constant"
	"github.com/bytebury/ctrunner/pkg/failure"
	"github.com/bytebury/ctrunner/pkg/jwt"
	"github.com/bytebury/ctrunner/pkg/logger"
	"github.com/gofiber/fiber/v2"
)

// UserResolver maps validated token claims onto a stored user.
type UserResolver interface {
	Resolve(ctx context.Context, claims *jwt.Claims) (repository.UserView, error)
}

type Auth struct {
	resolver UserResolver
	logger   logger.Interface
}

func NewAuth(r UserResolver, l logger.Interface) *Auth {
	return &Auth{
		resolver: r,
		logger:   l,
	}
}

func bearerToken(c *fiber.Ctx) (string, error) {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return "", failure.Unauthorized("missing authorization header")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", failure.Unauthorized("invalid authorization header format")
	}

	return parts[1], nil
}

// Required rejects the request unless it carries a valid token for an
// unlocked user.
func (a *Auth) Required() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, err := bearerToken(c)
		if err != nil {
			return response.WithError(c, err)
		}

		if err := a.resolve(c, token); err != nil {
			return response.WithError(c, err)
		}

		return c.Next()
	}
}

// Optional resolves the user when a valid token is present and carries on
// anonymously otherwise.
func (a *Auth) Optional() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, err := bearerToken(c)
		if err != nil {
			return c.Next()
		}

		if err := a.resolve(c, token); err != nil {
			a.logger.Debug("http - middleware - optional auth - %v", err)
		}

		return c.Next()
	}
}

func (a *Auth) resolve(c *fiber.Ctx, token string) error {
	claims, err := jwt.ValidateToken(token)
	if err != nil {
		return failure.Unauthorized("invalid token")
	}

	user, err := a.resolver.Resolve(c.UserContext(), claims)
	if err != nil {
		return err
	}

	c.Locals(constant.LocalsClaims, claims)
	c.Locals(constant.LocalsEmail, claims.Email)
	c.Locals(constant.LocalsUser, user)

	return nil
}

func CurrentUser(c *fiber.Ctx) (repository.UserView, error) {
	local := c.Locals(constant.LocalsUser)
	if local == nil {
		return repository.UserView{}, failure.Unauthorized(constant.ErrMissingContextUser.Error())
	}

	user, ok := local.(repository.UserView)
	if !ok {
		return repository.UserView{}, failure.InternalError(constant.ErrInvalidContextUserType)
	}

	return user, nil
}

func MaybeCurrentUser(c *fiber.Ctx) *repository.UserView {
	user, err := CurrentUser(c)
	if err != nil {
		return nil
	}

	return &user
}
