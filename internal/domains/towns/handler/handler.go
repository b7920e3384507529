package handler

import (
	"github.com/bytebury/ctrunner/internal/delivery/http/middleware"
	"github.com/bytebury/ctrunner/internal/delivery/http/response"
	"github.com/bytebury/ctrunner/internal/domains/towns/dto"
	"github.com/bytebury/ctrunner/internal/domains/towns/service"
	"github.com/bytebury/ctrunner/pkg/constant"
	"github.com/bytebury/ctrunner/pkg/failure"
	"github.com/bytebury/ctrunner/pkg/gdto"
	"github.com/bytebury/ctrunner/pkg/logger"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service   service.TownService
	auth      *middleware.Auth
	logger    logger.Interface
	validator *validator.Validate
}

func New(s service.TownService, a *middleware.Auth, l logger.Interface, v *validator.Validate) *Handler {
	return &Handler{
		service:   s,
		auth:      a,
		logger:    l,
		validator: v,
	}
}

func (h *Handler) RegisterRoutes(r fiber.Router) {
	towns := r.Group("/towns")

	towns.Get("/", h.auth.Optional(), h.FindAll)
	towns.Get("/completed/:"+constant.RequestParamUserID, h.FindCompleted)
	towns.Get("/completed/:"+constant.RequestParamUserID+"/page", h.CompletedPage)
	towns.Post("/submit", h.auth.Required(), h.Submit)
}

// FindAll godoc
// @Summary List every town, flagging the caller's completed towns when signed in
// @Tags towns
// @Router /towns [get]
func (h *Handler) FindAll(ctx *fiber.Ctx) error {
	data, err := h.service.FindAll(ctx.UserContext())
	if err != nil {
		h.logger.Error("http - town - FindAll - request_id: " + middleware.GetRequestID(ctx) + " - " + err.Error())

		return response.WithError(ctx, err)
	}

	if user := middleware.MaybeCurrentUser(ctx); user != nil {
		completed, err := h.service.FindCompleted(ctx.UserContext(), user.ID)
		if err != nil {
			h.logger.Error("http - town - FindAll - request_id: " + middleware.GetRequestID(ctx) + " - " + err.Error())

			return response.WithError(ctx, err)
		}

		data = dto.MarkCompleted(data, completed)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}

// FindCompleted godoc
// @Summary Towns a user has completed, for the map
// @Tags towns
// @Router /towns/completed/{userID} [get]
func (h *Handler) FindCompleted(ctx *fiber.Ctx) error {
	userID, err := ctx.ParamsInt(constant.RequestParamUserID)
	if err != nil || userID < 1 {
		return response.WithError(ctx, failure.BadRequestFromString("user id must be a positive number"))
	}

	data, err := h.service.FindCompleted(ctx.UserContext(), int64(userID))
	if err != nil {
		h.logger.Error("http - town - FindCompleted - request_id: " + middleware.GetRequestID(ctx) + " - " + err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}

// CompletedPage godoc
// @Summary Towns a user has completed, newest first
// @Tags towns
// @Param pagination query gdto.PaginationRequest false "Pagination request"
// @Router /towns/completed/{userID}/page [get]
func (h *Handler) CompletedPage(ctx *fiber.Ctx) error {
	userID, err := ctx.ParamsInt(constant.RequestParamUserID)
	if err != nil || userID < 1 {
		return response.WithError(ctx, failure.BadRequestFromString("user id must be a positive number"))
	}

	var req gdto.PaginationRequest
	if err := ctx.QueryParser(&req); err != nil {
		h.logger.Error("http - town - CompletedPage - query parser error: %v", err)

		return response.WithError(ctx, failure.BadRequestFromString(err.Error()))
	}

	if err := h.validator.Struct(req); err != nil {
		h.logger.Error("http - town - CompletedPage - validation error: %v", err)

		return response.WithError(ctx, failure.BadRequest(err))
	}

	data, err := h.service.CompletedPage(ctx.UserContext(), int64(userID), req)
	if err != nil {
		h.logger.Error("http - town - CompletedPage - request_id: " + middleware.GetRequestID(ctx) + " - " + err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithPage(ctx, data)
}

// Submit godoc
// @Summary Record a completed town and get the prefilled society form
// @Tags towns
// @Param body body dto.SubmitTownRequest true "Completed town"
// @Router /towns/submit [post]
func (h *Handler) Submit(ctx *fiber.Ctx) error {
	user, err := middleware.CurrentUser(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	var req dto.SubmitTownRequest
	if err := ctx.BodyParser(&req); err != nil {
		h.logger.Error("http - town - Submit - body parser error: %v", err)

		return response.WithError(ctx, failure.BadRequestFromString(err.Error()))
	}

	if err := h.validator.Struct(req); err != nil {
		h.logger.Error("http - town - Submit - validation error: %v", err)

		return response.WithError(ctx, failure.BadRequest(err))
	}

	data, err := h.service.SubmitCompletedTown(ctx.UserContext(), user, req)
	if err != nil {
		h.logger.Error("http - town - Submit - request_id: " + middleware.GetRequestID(ctx) + " - " + err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusCreated, data)
}
