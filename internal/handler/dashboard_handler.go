package handler

import (
	"github.com/EliseyAgustin/Sistema-de-Inventario/internal/service"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	service service.DashboardService
}

func NewDashboardHandler(s service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: s}
}

// GET /api/inventory/dashboard
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	dash, err := h.service.GetDashboard()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dash)
}
