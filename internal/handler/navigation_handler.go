package handler

import (
	"strings"

	"go-wholesale-console/internal/i18n"
	"go-wholesale-console/internal/middleware"
	"go-wholesale-console/internal/model"
	"go-wholesale-console/internal/service"

	"github.com/gofiber/fiber/v2"
)

// NavigationItem is a navigation entry with its label translated for the session.
type NavigationItem struct {
	Label    string `json:"label"`
	LabelKey string `json:"labelKey"`
	IconKey  string `json:"iconKey"`
	Route    string `json:"route"`
	ColorTag string `json:"colorTag"`
}

type NavigationHandler struct {
	nav    *service.NavigationService
	bundle *i18n.Bundle
}

func NewNavigationHandler(nav *service.NavigationService, bundle *i18n.Bundle) *NavigationHandler {
	return &NavigationHandler{nav: nav, bundle: bundle}
}

// GetNavigation returns the menu of the current role. Anonymous visitors get the
// default role's menu.
// GET /api/v1/navigation
func (h *NavigationHandler) GetNavigation(c *fiber.Ctx) error {
	sess := middleware.CurrentSession(c)
	role := effectiveRole(sess)

	return c.JSON(fiber.Map{
		"authenticated": sess.Authenticated(),
		"role":          role,
		"roleLabel":     roleLabel(h.bundle, sess.Language, role),
		"roleStyle":     h.nav.ResolveRoleStyle(role),
		"language":      sess.Language,
		"theme":         sess.Theme,
		"items":         navigationItems(h.nav, h.bundle, sess.Language, role),
	})
}

func navigationItems(nav *service.NavigationService, bundle *i18n.Bundle, lang string, role model.Role) []NavigationItem {
	entries := nav.ResolveNavigation(role)
	items := make([]NavigationItem, len(entries))
	for i, e := range entries {
		items[i] = NavigationItem{
			Label:    bundle.Translate(lang, e.Label),
			LabelKey: e.Label,
			IconKey:  e.IconKey,
			Route:    e.Route,
			ColorTag: e.ColorTag,
		}
	}
	return items
}

// effectiveRole is the role navigation and dashboards are resolved for.
func effectiveRole(sess *service.Session) model.Role {
	role := sess.Role()
	if !role.Valid() {
		return model.DefaultRole
	}
	return role
}

func roleLabel(bundle *i18n.Bundle, lang string, role model.Role) string {
	return bundle.Translate(lang, "role."+strings.ToLower(string(role)))
}
