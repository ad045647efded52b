package serverutils

import "github.com/gofiber/fiber/v2"

var (
	ErrNotFound     = fiber.NewError(fiber.StatusNotFound, "Resource not found")
	ErrUnauthorized = fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
)

func BadRequest(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusBadRequest, message)
}

func NotFound(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusNotFound, message)
}
