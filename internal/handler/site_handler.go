package handler

import (
	"go-wholesale-console/internal/i18n"
	"go-wholesale-console/internal/middleware"
	"go-wholesale-console/internal/model"
	"go-wholesale-console/internal/service"

	"github.com/gofiber/fiber/v2"
)

type SiteHandler struct {
	site   service.SiteService
	bundle *i18n.Bundle
}

func NewSiteHandler(site service.SiteService, bundle *i18n.Bundle) *SiteHandler {
	return &SiteHandler{site: site, bundle: bundle}
}

// GetCategories returns the storefront categories
// GET /api/v1/site/categories
func (h *SiteHandler) GetCategories(c *fiber.Ctx) error {
	lang := middleware.CurrentSession(c).Language
	categories := h.site.Categories()

	out := make([]fiber.Map, len(categories))
	for i, cat := range categories {
		out[i] = fiber.Map{
			"slug":        cat.Slug,
			"name":        h.bundle.Translate(lang, cat.NameKey),
			"nameKey":     cat.NameKey,
			"description": cat.Description,
			"imageKey":    cat.ImageKey,
		}
	}
	return c.JSON(out)
}

// GetAbout returns the about page
// GET /api/v1/site/about
func (h *SiteHandler) GetAbout(c *fiber.Ctx) error {
	lang := middleware.CurrentSession(c).Language
	about := h.site.About()

	highlights := make([]string, len(about.Highlights))
	for i, key := range about.Highlights {
		highlights[i] = h.bundle.Translate(lang, key)
	}
	return c.JSON(fiber.Map{
		"title":      h.bundle.Translate(lang, about.TitleKey),
		"summary":    h.bundle.Translate(lang, about.SummaryKey),
		"highlights": highlights,
	})
}

// SubmitContact forwards the contact form
// POST /api/v1/site/contact
func (h *SiteHandler) SubmitContact(c *fiber.Ctx) error {
	var msg model.ContactMessage
	if err := c.BodyParser(&msg); err != nil {
		return invalidJSON(c)
	}

	if err := h.site.SubmitContact(c.UserContext(), &msg); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"message": "Thanks, we will get back to you soon"})
}
