package response

import (
	"errors"

	"github.com/bytebury/ctrunner/pkg/failure"
	"github.com/bytebury/ctrunner/pkg/gdto"
	"github.com/bytebury/ctrunner/pkg/pagination"
	"github.com/gofiber/fiber/v2"
)

type Data[T any] struct {
	Data T `json:"data,omitempty"`
}

type Error struct {
	Error *string `json:"error,omitempty"`
}

const internalErrorMessage = "internal server error"

func WithJSON(ctx *fiber.Ctx, code int, payload any) error {
	return response(ctx, code, Data[any]{Data: payload})
}

// WithPage writes a page as is. The page already has a data field.
func WithPage[T any](ctx *fiber.Ctx, page pagination.Response[T]) error {
	return response(ctx, fiber.StatusOK, page)
}

func WithMessage(ctx *fiber.Ctx, code int, message string) error {
	return response(ctx, code, Data[gdto.MessageResponse]{Data: gdto.MessageResponse{Message: message}})
}

func WithError(ctx *fiber.Ctx, err error) error {
	code := failure.GetCode(err)

	errMsg := err.Error()
	if code >= fiber.StatusInternalServerError {
		errMsg = internalErrorMessage
	}

	return response(ctx, code, Error{Error: &errMsg})
}

// ErrorHandler renders errors returned by fiber itself, such as a bad body.
func ErrorHandler(ctx *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		msg := fiberErr.Message

		return response(ctx, fiberErr.Code, Error{Error: &msg})
	}

	return WithError(ctx, err)
}

func response(ctx *fiber.Ctx, code int, payload any) error {
	if payload == nil {
		return ctx.SendStatus(code)
	}

	ctx.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)

	return ctx.Status(code).JSON(payload)
}
