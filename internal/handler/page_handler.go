package handler

import (
	"go-wholesale-console/internal/i18n"
	"go-wholesale-console/internal/middleware"
	"go-wholesale-console/internal/model"
	"go-wholesale-console/internal/service"

	"github.com/gofiber/fiber/v2"
)

// PageRoutes are the console pages served under /app. Navigation entries may only point
// at these.
var PageRoutes = []string{
	model.RouteDashboard,
	model.RouteStores,
	model.RouteUsers,
	model.RouteReports,
	model.RouteSettings,
	model.RouteOrders,
	model.RouteInventory,
	model.RouteCustomers,
	model.RouteTargets,
	model.RoutePurchases,
	model.RouteSuppliers,
	model.RouteCategories,
	model.RouteProfile,
}

// PagePanel is a static panel with its texts translated.
type PagePanel struct {
	Title string   `json:"title"`
	Items []string `json:"items"`
}

type PageHandler struct {
	nav        *service.NavigationService
	dashboards service.DashboardService
	stores     service.StoreService
	users      service.UserService
	bundle     *i18n.Bundle
}

func NewPageHandler(
	nav *service.NavigationService,
	dashboards service.DashboardService,
	stores service.StoreService,
	users service.UserService,
	bundle *i18n.Bundle,
) *PageHandler {
	return &PageHandler{nav: nav, dashboards: dashboards, stores: stores, users: users, bundle: bundle}
}

// Page returns the handler for one console page. The shell renders the payload:
// navigation and role style for the frame, plus the page content.
// GET /app/...
func (h *PageHandler) Page(route string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := middleware.CurrentSession(c)
		role := effectiveRole(sess)
		items := navigationItems(h.nav, h.bundle, sess.Language, role)

		content := fiber.Map{}
		switch route {
		case model.RouteDashboard:
			content["dashboard"] = h.dashboards.ForRole(role)
		case model.RouteStores:
			listing, err := h.stores.ListStores(c.UserContext(), sess, storeQuery(c))
			if err != nil {
				return respondError(c, err)
			}
			content["stores"] = listing
		case model.RouteUsers:
			q, ok := userQuery(c)
			if !ok {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown role filter"})
			}
			listing, err := h.users.ListUsers(c.UserContext(), sess, q)
			if err != nil {
				return respondError(c, err)
			}
			content["users"] = listing
			content["roles"] = h.users.Roles(role)
		default:
			content["panels"] = h.panels(sess.Language, route)
		}

		return c.JSON(fiber.Map{
			"route":      route,
			"title":      pageTitle(items, route),
			"role":       role,
			"roleLabel":  roleLabel(h.bundle, sess.Language, role),
			"roleStyle":  h.nav.ResolveRoleStyle(role),
			"language":   sess.Language,
			"theme":      sess.Theme,
			"navigation": items,
			"page":       content,
		})
	}
}

func (h *PageHandler) panels(lang, route string) []PagePanel {
	panels := h.dashboards.Panels(route)
	out := make([]PagePanel, len(panels))
	for i, p := range panels {
		texts := make([]string, len(p.Items))
		for j, item := range p.Items {
			texts[j] = h.bundle.Translate(lang, item)
		}
		out[i] = PagePanel{Title: h.bundle.Translate(lang, p.Title), Items: texts}
	}
	return out
}

// pageTitle uses the role's own label for route ("Staff" for managers, "Users" for admins).
func pageTitle(items []NavigationItem, route string) string {
	for _, item := range items {
		if item.Route == route {
			return item.Label
		}
	}
	return route
}
