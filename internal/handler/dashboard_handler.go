package handler

import (
	"go-wholesale-console/internal/middleware"
	"go-wholesale-console/internal/service"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	service service.DashboardService
}

func NewDashboardHandler(s service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: s}
}

// GetDashboard returns the dashboard of the signed-in role
// GET /api/v1/dashboard
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	sess := middleware.CurrentSession(c)
	return c.JSON(h.service.ForRole(effectiveRole(sess)))
}
