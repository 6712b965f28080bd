package handler

import (
	"errors"

	"go-wholesale-console/internal/apiclient"
	"go-wholesale-console/internal/repository"
	"go-wholesale-console/internal/service"
	"go-wholesale-console/pkg/validator"

	"github.com/gofiber/fiber/v2"
)

// respondError maps service and API errors to the console's {"error": ...} responses.
// Messages from the API are passed through unchanged.
func respondError(c *fiber.Ctx, err error) error {
	var verr *validator.ValidationError
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "Validation failed",
			"fields": verr.Fields,
		})
	}

	var apiErr *apiclient.APIError
	if errors.As(err, &apiErr) {
		status := apiErr.Status
		if status < 400 || status > 599 {
			status = fiber.StatusBadGateway
		}
		return c.Status(status).JSON(fiber.Map{"error": apiErr.Message})
	}

	switch {
	case errors.Is(err, apiclient.ErrMalformedResponse):
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": apiclient.ErrMalformedResponse.Error()})
	case errors.Is(err, apiclient.ErrUnreachable):
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": apiclient.ErrUnreachable.Error()})
	case errors.Is(err, service.ErrToggleInFlight):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, service.ErrNotAuthenticated):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, service.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, service.ErrSnapshotMismatch), errors.Is(err, service.ErrInvalidPreference):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, repository.ErrPreferenceNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Something went wrong"})
}

func invalidJSON(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
}
