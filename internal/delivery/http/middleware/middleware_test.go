package middleware_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytebury/ctrunner/internal/delivery/http/middleware"
	"github.com/bytebury/ctrunner/internal/domains/users/repository"
	"github.com/bytebury/ctrunner/pkg/constant"
	"github.com/bytebury/ctrunner/pkg/failure"
	"github.com/bytebury/ctrunner/pkg/jwt"
	"github.com/bytebury/ctrunner/pkg/logger"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type resolverStub struct {
	user repository.UserView
	err  error
}

func (r resolverStub) Resolve(_ context.Context, claims *jwt.Claims) (repository.UserView, error) {
	if r.err != nil {
		return repository.UserView{}, r.err
	}

	user := r.user
	user.Email = claims.Email

	return user, nil
}

func TestMain(m *testing.M) {
	jwt.Initialize("ctrunner", "middleware-secret", time.Hour)

	m.Run()
}

func newApp(r middleware.UserResolver, chain ...fiber.Handler) *fiber.App {
	auth := middleware.NewAuth(r, logger.NewWithWriter(io.Discard, "error"))

	app := fiber.New()
	app.Use(middleware.RequestID())

	handlers := append([]fiber.Handler{auth.Required()}, chain...)
	handlers = append(handlers, func(c *fiber.Ctx) error {
		user, err := middleware.CurrentUser(c)
		if err != nil {
			return err
		}

		return c.SendString(user.Email)
	})
	app.Get("/private", handlers...)

	app.Get("/public", auth.Optional(), func(c *fiber.Ctx) error {
		if user := middleware.MaybeCurrentUser(c); user != nil {
			return c.SendString(user.Email)
		}

		return c.SendString("anonymous")
	})

	return app
}

func do(t *testing.T, app *fiber.App, path, authHeader string) (int, string) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set(fiber.HeaderAuthorization, authHeader)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, string(body)
}

func bearer(t *testing.T, email string) string {
	t.Helper()

	token, err := jwt.GenerateAccessToken(email, "Jane Runner", "")
	require.NoError(t, err)

	return "Bearer " + token
}

func TestAuth_Required(t *testing.T) {
	member := repository.UserView{ID: 1, Role: constant.UserRoleUser, RunnerID: pgtype.Int8{Int64: 42, Valid: true}}

	tests := []struct {
		name     string
		resolver resolverStub
		header   string
		code     int
		contains string
	}{
		{"missing header", resolverStub{user: member}, "", fiber.StatusUnauthorized, "missing authorization header"},
		{"wrong scheme", resolverStub{user: member}, "Basic abc", fiber.StatusUnauthorized, "invalid authorization header format"},
		{"bad token", resolverStub{user: member}, "Bearer not-a-token", fiber.StatusUnauthorized, "invalid token"},
		{"locked user", resolverStub{err: failure.Forbidden("account is locked")}, "", fiber.StatusForbidden, "account is locked"},
		{"ok", resolverStub{user: member}, "", fiber.StatusOK, "jane@example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := tt.header
			if header == "" && tt.name != "missing header" {
				header = bearer(t, "Jane@Example.com")
			}

			code, body := do(t, newApp(tt.resolver), "/private", header)

			assert.Equal(t, tt.code, code)
			assert.Contains(t, body, tt.contains)
		})
	}
}

func TestAuth_Optional(t *testing.T) {
	app := newApp(resolverStub{user: repository.UserView{ID: 1}})

	t.Run("anonymous", func(t *testing.T) {
		code, body := do(t, app, "/public", "")

		assert.Equal(t, fiber.StatusOK, code)
		assert.Equal(t, "anonymous", body)
	})

	t.Run("bad token is ignored", func(t *testing.T) {
		code, body := do(t, app, "/public", "Bearer nope")

		assert.Equal(t, fiber.StatusOK, code)
		assert.Equal(t, "anonymous", body)
	})

	t.Run("signed in", func(t *testing.T) {
		code, body := do(t, app, "/public", bearer(t, "jane@example.com"))

		assert.Equal(t, fiber.StatusOK, code)
		assert.Equal(t, "jane@example.com", body)
	})
}

func TestRoles(t *testing.T) {
	orphan := repository.UserView{ID: 1, Role: constant.UserRoleUser}
	admin := repository.UserView{ID: 2, Role: constant.UserRoleAdmin, RunnerID: pgtype.Int8{Int64: 7, Valid: true}}

	t.Run("admin only rejects members", func(t *testing.T) {
		code, _ := do(t, newApp(resolverStub{user: orphan}, middleware.AdminOnly()), "/private", bearer(t, "jane@example.com"))

		assert.Equal(t, fiber.StatusForbidden, code)
	})

	t.Run("admin only lets admins through", func(t *testing.T) {
		code, _ := do(t, newApp(resolverStub{user: admin}, middleware.AdminOnly()), "/private", bearer(t, "admin@example.com"))

		assert.Equal(t, fiber.StatusOK, code)
	})

	t.Run("orphan only rejects linked runners", func(t *testing.T) {
		code, body := do(t, newApp(resolverStub{user: admin}, middleware.OrphanOnly()), "/private", bearer(t, "admin@example.com"))

		assert.Equal(t, fiber.StatusForbidden, code)
		assert.Contains(t, body, "runner info is already set")
	})

	t.Run("orphan only lets orphans through", func(t *testing.T) {
		code, _ := do(t, newApp(resolverStub{user: orphan}, middleware.OrphanOnly()), "/private", bearer(t, "jane@example.com"))

		assert.Equal(t, fiber.StatusOK, code)
	})
}

func TestRequestID(t *testing.T) {
	app := fiber.New()
	app.Use(middleware.RequestID())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(middleware.GetRequestID(c))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(middleware.HeaderRequestID, "req-123")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, "req-123", string(body))
	assert.Equal(t, "req-123", resp.Header.Get(middleware.HeaderRequestID))
}
