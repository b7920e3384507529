package handler

import (
	"github.com/bytebury/ctrunner/internal/delivery/http/middleware"
	"github.com/bytebury/ctrunner/internal/delivery/http/response"
	"github.com/bytebury/ctrunner/internal/domains/races/dto"
	"github.com/bytebury/ctrunner/internal/domains/races/service"
	"github.com/bytebury/ctrunner/pkg/constant"
	"github.com/bytebury/ctrunner/pkg/failure"
	"github.com/bytebury/ctrunner/pkg/logger"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service   service.RaceService
	auth      *middleware.Auth
	logger    logger.Interface
	validator *validator.Validate
}

func New(s service.RaceService, a *middleware.Auth, l logger.Interface, v *validator.Validate) *Handler {
	return &Handler{
		service:   s,
		auth:      a,
		logger:    l,
		validator: v,
	}
}

func (h *Handler) RegisterRoutes(r fiber.Router) {
	races := r.Group("/races")

	races.Get("/", h.SearchUpcoming)
	races.Get("/search", h.auth.Required(), h.SubmitTownSearch)
	races.Get("/:"+constant.RequestParamID, h.GetRace)

	admin := r.Group("/admin/races", h.auth.Required(), middleware.AdminOnly())
	admin.Post("/", h.CreateRace)
	admin.Post("/import", h.ImportUpcoming)
}

// SearchUpcoming godoc
// @Summary Upcoming races, soonest first
// @Tags races
// @Param race_name query string false "Race name contains"
// @Param town_id query int false "Town"
// @Router /races [get]
func (h *Handler) SearchUpcoming(ctx *fiber.Ctx) error {
	var req dto.SearchRacesRequest
	if err := h.parseQuery(ctx, "SearchUpcoming", &req); err != nil {
		return response.WithError(ctx, err)
	}

	data, err := h.service.SearchUpcoming(ctx.UserContext(), req)
	if err != nil {
		h.logger.Error("http - race - SearchUpcoming - request_id: " + middleware.GetRequestID(ctx) + " - " + err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithPage(ctx, data)
}

// SubmitTownSearch godoc
// @Summary Past races in a town, for the submit town form
// @Tags races
// @Router /races/search [get]
func (h *Handler) SubmitTownSearch(ctx *fiber.Ctx) error {
	var req dto.SubmitTownSearchRequest
	if err := h.parseQuery(ctx, "SubmitTownSearch", &req); err != nil {
		return response.WithError(ctx, err)
	}

	data, err := h.service.SubmitTownSearch(ctx.UserContext(), req)
	if err != nil {
		h.logger.Error("http - race - SubmitTownSearch - request_id: " + middleware.GetRequestID(ctx) + " - " + err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithPage(ctx, data)
}

// GetRace godoc
// @Summary Get race by ID
// @Tags races
// @Router /races/{id} [get]
func (h *Handler) GetRace(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt(constant.RequestParamID)
	if err != nil || id < 1 {
		return response.WithError(ctx, failure.BadRequestFromString("race id must be a positive number"))
	}

	data, err := h.service.GetRace(ctx.UserContext(), int64(id))
	if err != nil {
		h.logger.Error("http - race - GetRace - service error: %v", err)

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}

// CreateRace godoc
// @Summary Create a race (Admin only)
// @Tags races
// @Param body body dto.CreateRaceRequest true "Race"
// @Router /admin/races [post]
func (h *Handler) CreateRace(ctx *fiber.Ctx) error {
	var req dto.CreateRaceRequest
	if err := ctx.BodyParser(&req); err != nil {
		h.logger.Error("http - race - CreateRace - body parser error: %v", err)

		return response.WithError(ctx, failure.BadRequestFromString(err.Error()))
	}

	if err := h.validator.Struct(req); err != nil {
		h.logger.Error("http - race - CreateRace - validation error: %v", err)

		return response.WithError(ctx, failure.BadRequest(err))
	}

	data, err := h.service.CreateRace(ctx.UserContext(), req)
	if err != nil {
		h.logger.Error("http - race - CreateRace - service error: %v", err)

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusCreated, data)
}

// ImportUpcoming godoc
// @Summary Import upcoming races from a published sheet (Admin only)
// @Description The body is the raw gviz response of the sheet.
// @Tags races
// @Router /admin/races/import [post]
func (h *Handler) ImportUpcoming(ctx *fiber.Ctx) error {
	body := ctx.Body()
	if len(body) == 0 {
		return response.WithError(ctx, failure.BadRequestFromString("sheet payload is required"))
	}

	data, err := h.service.ImportUpcoming(ctx.UserContext(), body)
	if err != nil {
		h.logger.Error("http - race - ImportUpcoming - request_id: " + middleware.GetRequestID(ctx) + " - " + err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}

func (h *Handler) parseQuery(ctx *fiber.Ctx, op string, out any) error {
	if err := ctx.QueryParser(out); err != nil {
		h.logger.Error("http - race - %s - query parser error: %v", op, err)

		return failure.BadRequestFromString(err.Error())
	}

	if err := h.validator.Struct(out); err != nil {
		h.logger.Error("http - race - %s - validation error: %v", op, err)

		return failure.BadRequest(err)
	}

	return nil
}
