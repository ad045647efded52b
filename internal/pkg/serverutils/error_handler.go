package serverutils

import (
	"errors"

	"craftguide-be/internal/pkg/logger"
	"craftguide-be/pkg/knowledge"
	"craftguide-be/pkg/rag/search"

	"github.com/gofiber/fiber/v2"
)

const internalErrorMessage = "Something went wrong, please try again later"

// ErrorHandlerMiddleware turns errors returned by later handlers into the
// standard envelope. Unknown errors are logged and answered with a generic
// 500.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	if log == nil {
		log = logger.NewNopLogger()
	}
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}
		return WriteError(ctx, log, err)
	}
}

// WriteError maps err to a status code and writes the error envelope.
func WriteError(ctx *fiber.Ctx, log logger.ILogger, err error) error {
	var verr *ValidationError
	var ferr *fiber.Error

	switch {
	case errors.As(err, &verr):
		resp := ErrorResponse(fiber.StatusBadRequest, "Validation failed")
		resp.Errors = verr.Fields
		return ctx.Status(fiber.StatusBadRequest).JSON(resp)
	case errors.Is(err, search.ErrInvalidQuery), errors.Is(err, knowledge.ErrInvalidArticle):
		return ctx.Status(fiber.StatusBadRequest).JSON(ErrorResponse(fiber.StatusBadRequest, err.Error()))
	case errors.As(err, &ferr):
		return ctx.Status(ferr.Code).JSON(ErrorResponse(ferr.Code, ferr.Message))
	default:
		log.Error("HTTP", "Unhandled request error", map[string]interface{}{
			"error":  err.Error(),
			"method": ctx.Method(),
			"path":   ctx.Path(),
		})
		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(fiber.StatusInternalServerError, internalErrorMessage))
	}
}
