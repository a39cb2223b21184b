package handler

import (
	"errors"
	"log"
	"strconv"

	"github.com/EliseyAgustin/Sistema-de-Inventario/internal/service"

	"github.com/gofiber/fiber/v2"
)

// fail maps a service error to its HTTP status. Domain errors surface their
// message; anything unrecognized is logged and returned as a generic 500.
func fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, service.ErrInsufficientStock),
		errors.Is(err, service.ErrCategoryExists),
		errors.Is(err, service.ErrUsernameTaken):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	case errors.Is(err, service.ErrProductNotFound),
		errors.Is(err, service.ErrCategoryNotFound),
		errors.Is(err, service.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": err.Error()})
	default:
		log.Printf("internal error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}
}

// parseID parses a numeric path parameter
func parseID(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// actorID returns the authenticated user's id from the request context,
// or nil for system-originated writes
func actorID(c *fiber.Ctx) *uint {
	if id, ok := c.Locals("user_id").(uint); ok {
		return &id
	}
	return nil
}
