package handler

import (
	"go-wholesale-console/internal/middleware"
	"go-wholesale-console/internal/service"

	"github.com/gofiber/fiber/v2"
)

type PreferenceHandler struct {
	prefs   service.PreferenceService
	cookies CookieConfig
}

func NewPreferenceHandler(prefs service.PreferenceService, cookies CookieConfig) *PreferenceHandler {
	return &PreferenceHandler{prefs: prefs, cookies: cookies}
}

// GetPreferences returns the language and theme in effect
// GET /api/v1/preferences
func (h *PreferenceHandler) GetPreferences(c *fiber.Ctx) error {
	sess := middleware.CurrentSession(c)
	return c.JSON(fiber.Map{
		"language": sess.Language,
		"theme":    sess.Theme,
		"stored":   sess.Authenticated(),
	})
}

// UpdatePreferences changes language and/or theme
// PUT /api/v1/preferences
func (h *PreferenceHandler) UpdatePreferences(c *fiber.Ctx) error {
	var in service.PreferenceInput
	if err := c.BodyParser(&in); err != nil {
		return invalidJSON(c)
	}

	sess := middleware.CurrentSession(c)
	lang, theme, err := h.prefs.Save(c.UserContext(), sess, in)
	if err != nil {
		return respondError(c, err)
	}

	h.cookies.setPreferences(c, lang, theme)
	sess.Language, sess.Theme = lang, theme

	return c.JSON(fiber.Map{
		"language": lang,
		"theme":    theme,
		"stored":   sess.Authenticated(),
	})
}
