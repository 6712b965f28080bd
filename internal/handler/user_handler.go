package handler

import (
	"strings"

	"go-wholesale-console/internal/middleware"
	"go-wholesale-console/internal/model"
	"go-wholesale-console/internal/service"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// userQuery reads ?search= and ?role=. "all" or an empty role matches every role.
func userQuery(c *fiber.Ctx) (service.UserQuery, bool) {
	q := service.UserQuery{Search: c.Query("search")}
	raw := strings.TrimSpace(c.Query("role"))
	if raw == "" || strings.EqualFold(raw, "all") {
		return q, true
	}
	role, ok := model.ParseRole(raw)
	if !ok {
		return q, false
	}
	q.Role = role
	return q, true
}

// GetUsers lists users filtered by search and role
// GET /api/v1/users
func (h *UserHandler) GetUsers(c *fiber.Ctx) error {
	q, ok := userQuery(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown role filter"})
	}

	listing, err := h.userService.ListUsers(c.UserContext(), middleware.CurrentSession(c), q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(listing)
}

// CreateUser handles user creation
// POST /api/v1/users
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var req model.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidJSON(c)
	}

	user, err := h.userService.CreateUser(c.UserContext(), middleware.CurrentSession(c), &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User created successfully",
		"user":    user,
	})
}

// GetRoles returns the roles the signed-in user can give to a new user
// GET /api/v1/users/roles
func (h *UserHandler) GetRoles(c *fiber.Ctx) error {
	return c.JSON(h.userService.Roles(effectiveRole(middleware.CurrentSession(c))))
}
