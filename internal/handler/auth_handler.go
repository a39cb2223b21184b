package handler

import (
	"github.com/EliseyAgustin/Sistema-de-Inventario/internal/model"
	"github.com/EliseyAgustin/Sistema-de-Inventario/internal/service"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles user authentication
// POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req model.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid JSON"})
	}

	if req.Username == "" || req.Password == "" {
		return c.Status(400).JSON(fiber.Map{"message": "Username and password are required"})
	}

	response, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(response)
}

// Register creates a new user account
// POST /api/auth/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req model.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid JSON"})
	}

	userID, err := h.authService.Register(&req)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "User registered successfully",
		"userId":  userID,
	})
}

// Profile returns the authenticated user's public fields
// GET /api/auth/profile
func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	id := actorID(c)
	if id == nil {
		return c.Status(401).JSON(fiber.Map{"message": "Authentication required"})
	}

	user, err := h.authService.Profile(*id)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(user)
}
