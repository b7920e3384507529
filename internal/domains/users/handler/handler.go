package handler

import (
	"github.com/bytebury/ctrunner/internal/delivery/http/middleware"
	"github.com/bytebury/ctrunner/internal/delivery/http/response"
	"github.com/bytebury/ctrunner/internal/domains/users/dto"
	"github.com/bytebury/ctrunner/internal/domains/users/service"
	"github.com/bytebury/ctrunner/pkg/constant"
	"github.com/bytebury/ctrunner/pkg/failure"
	"github.com/bytebury/ctrunner/pkg/logger"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service   service.UserService
	auth      *middleware.Auth
	logger    logger.Interface
	validator *validator.Validate
}

func New(s service.UserService, a *middleware.Auth, l logger.Interface, v *validator.Validate) *Handler {
	return &Handler{
		service:   s,
		auth:      a,
		logger:    l,
		validator: v,
	}
}

func (h *Handler) RegisterRoutes(r fiber.Router) {
	r.Get("/members", h.auth.Required(), h.SearchMembers)

	users := r.Group("/users", h.auth.Required())
	users.Get("/me", h.Profile)
	users.Patch("/me/runner-info", middleware.OrphanOnly(), h.UpdateRunnerInfo)

	admin := r.Group("/admin/users", h.auth.Required(), middleware.AdminOnly())
	admin.Get("/", h.SearchAll)
	admin.Get("/:"+constant.RequestParamID, h.GetUserByID)
	admin.Patch("/:"+constant.RequestParamID, h.UpdateUser)
}

// SearchMembers godoc
// @Summary Search members by name or email
// @Tags users
// @Param search query string false "Name or email contains"
// @Param pagination query gdto.PaginationRequest false "Pagination request"
// @Router /members [get]
func (h *Handler) SearchMembers(ctx *fiber.Ctx) error {
	req, err := h.parseSearch(ctx, "SearchMembers")
	if err != nil {
		return response.WithError(ctx, err)
	}

	data, err := h.service.SearchMembers(ctx.UserContext(), req)
	if err != nil {
		h.logger.Error("http - user - SearchMembers - request_id: " + middleware.GetRequestID(ctx) + " - " + err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithPage(ctx, data)
}

// Profile godoc
// @Summary Current user profile
// @Tags users
// @Router /users/me [get]
func (h *Handler) Profile(ctx *fiber.Ctx) error {
	user, err := middleware.CurrentUser(ctx)
	if err != nil {
		h.logger.Error("http - user - Profile - %v", err)

		return response.WithError(ctx, err)
	}

	data, err := h.service.Profile(ctx.UserContext(), user.ID)
	if err != nil {
		h.logger.Error("http - user - Profile - request_id: " + middleware.GetRequestID(ctx) + " - " + err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}

// UpdateRunnerInfo godoc
// @Summary Link a runner id to the current user
// @Tags users
// @Param body body dto.UpdateRunnerInfoRequest true "Runner info"
// @Router /users/me/runner-info [patch]
func (h *Handler) UpdateRunnerInfo(ctx *fiber.Ctx) error {
	user, err := middleware.CurrentUser(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	var req dto.UpdateRunnerInfoRequest
	if err := ctx.BodyParser(&req); err != nil {
		h.logger.Error("http - user - UpdateRunnerInfo - body parser error: %v", err)

		return response.WithError(ctx, failure.BadRequestFromString(err.Error()))
	}

	if err := h.validator.Struct(req); err != nil {
		h.logger.Error("http - user - UpdateRunnerInfo - validation error: %v", err)

		return response.WithError(ctx, failure.BadRequest(err))
	}

	data, err := h.service.UpdateRunnerInfo(ctx.UserContext(), user, req)
	if err != nil {
		h.logger.Error("http - user - UpdateRunnerInfo - request_id: " + middleware.GetRequestID(ctx) + " - " + err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}

// SearchAll godoc
// @Summary Search all users (Admin only)
// @Tags users
// @Router /admin/users [get]
func (h *Handler) SearchAll(ctx *fiber.Ctx) error {
	req, err := h.parseSearch(ctx, "SearchAll")
	if err != nil {
		return response.WithError(ctx, err)
	}

	data, err := h.service.SearchAll(ctx.UserContext(), req)
	if err != nil {
		h.logger.Error("http - user - SearchAll - service error: %v", err)

		return response.WithError(ctx, err)
	}

	return response.WithPage(ctx, data)
}

// GetUserByID godoc
// @Summary Get user by ID (Admin only)
// @Tags users
// @Router /admin/users/{id} [get]
func (h *Handler) GetUserByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt(constant.RequestParamID)
	if err != nil || id < 1 {
		return response.WithError(ctx, failure.BadRequestFromString("user id must be a positive number"))
	}

	data, err := h.service.GetUserByID(ctx.UserContext(), int64(id))
	if err != nil {
		h.logger.Error("http - user - GetUserByID - service error: %v", err)

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}

// UpdateUser godoc
// @Summary Change a user's role or lock the account (Admin only)
// @Tags users
// @Router /admin/users/{id} [patch]
func (h *Handler) UpdateUser(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt(constant.RequestParamID)
	if err != nil || id < 1 {
		return response.WithError(ctx, failure.BadRequestFromString("user id must be a positive number"))
	}

	var req dto.UpdateUserRequest
	if err := ctx.BodyParser(&req); err != nil {
		h.logger.Error("http - user - UpdateUser - body parser error: %v", err)

		return response.WithError(ctx, failure.BadRequestFromString(err.Error()))
	}

	if err := h.validator.Struct(req); err != nil {
		h.logger.Error("http - user - UpdateUser - validation error: %v", err)

		return response.WithError(ctx, failure.BadRequest(err))
	}

	data, err := h.service.UpdateUser(ctx.UserContext(), int64(id), req)
	if err != nil {
		h.logger.Error("http - user - UpdateUser - service error: %v", err)

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}

func (h *Handler) parseSearch(ctx *fiber.Ctx, op string) (dto.SearchUsersRequest, error) {
	var req dto.SearchUsersRequest
	if err := ctx.QueryParser(&req); err != nil {
		h.logger.Error("http - user - %s - query parser error: %v", op, err)

		return req, failure.BadRequestFromString(err.Error())
	}

	if err := h.validator.Struct(req); err != nil {
		h.logger.Error("http - user - %s - validation error: %v", op, err)

		return req, failure.BadRequest(err)
	}

	return req, nil
}
