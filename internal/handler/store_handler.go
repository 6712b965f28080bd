package handler

import (
	"go-wholesale-console/internal/middleware"
	"go-wholesale-console/internal/model"
	"go-wholesale-console/internal/service"

	"github.com/gofiber/fiber/v2"
)

type StoreHandler struct {
	storeService service.StoreService
}

func NewStoreHandler(storeService service.StoreService) *StoreHandler {
	return &StoreHandler{storeService: storeService}
}

// storeQuery reads ?search= and ?status= (all|active|inactive).
func storeQuery(c *fiber.Ctx) service.StoreQuery {
	return service.StoreQuery{
		Search: c.Query("search"),
		Status: model.ParseStoreStatus(c.Query("status", string(model.StoreStatusAll))),
	}
}

// GetStores lists stores filtered by search and status
// GET /api/v1/stores
func (h *StoreHandler) GetStores(c *fiber.Ctx) error {
	listing, err := h.storeService.ListStores(c.UserContext(), middleware.CurrentSession(c), storeQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(listing)
}

// CreateStore handles store creation
// POST /api/v1/stores
func (h *StoreHandler) CreateStore(c *fiber.Ctx) error {
	var req model.CreateStoreRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidJSON(c)
	}

	store, err := h.storeService.CreateStore(c.UserContext(), middleware.CurrentSession(c), &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Store created successfully",
		"store":   store,
	})
}

// UpdateStore replaces a store
// PUT /api/v1/stores/:id
func (h *StoreHandler) UpdateStore(c *fiber.Ctx) error {
	var req model.UpdateStoreRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidJSON(c)
	}

	store, err := h.storeService.UpdateStore(c.UserContext(), middleware.CurrentSession(c), c.Params("id"), &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Store updated successfully",
		"store":   store,
	})
}

// ToggleStatus flips isActive. The body is the store as the table currently shows it.
// POST /api/v1/stores/:id/toggle-status
func (h *StoreHandler) ToggleStatus(c *fiber.Ctx) error {
	var snapshot model.Store
	if err := c.BodyParser(&snapshot); err != nil {
		return invalidJSON(c)
	}

	store, err := h.storeService.ToggleStatus(c.UserContext(), middleware.CurrentSession(c), c.Params("id"), snapshot)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Store status updated",
		"store":   store,
	})
}
