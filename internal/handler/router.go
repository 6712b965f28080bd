package handler

import (
	"strings"

	"go-wholesale-console/internal/middleware"
	"go-wholesale-console/internal/model"
	"go-wholesale-console/internal/service"
	"go-wholesale-console/internal/ws"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Router holds everything the console routes are built from.
type Router struct {
	Nav      *service.NavigationService
	Sessions service.SessionService
	Hub      *ws.Hub

	Auth        *AuthHandler
	Navigation  *NavigationHandler
	Dashboard   *DashboardHandler
	Stores      *StoreHandler
	Users       *UserHandler
	Preferences *PreferenceHandler
	Site        *SiteHandler
	Pages       *PageHandler
}

// Register mounts every console route on app.
func (r *Router) Register(app *fiber.App) {
	loadSession := middleware.LoadSession(r.Sessions)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api/v1", loadSession)

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/login", r.Auth.Login)
	auth.Post("/logout", r.Auth.Logout)
	auth.Get("/me", r.Auth.Me)

	api.Get("/navigation", r.Navigation.GetNavigation)
	api.Get("/preferences", r.Preferences.GetPreferences)
	api.Put("/preferences", r.Preferences.UpdatePreferences)

	site := api.Group("/site")
	site.Get("/categories", r.Site.GetCategories)
	site.Get("/about", r.Site.GetAbout)
	site.Post("/contact", r.Site.SubmitContact)

	// ============ PROTECTED ROUTES ============
	// Access follows the navigation table: an endpoint is open to the roles whose menu
	// has the page it belongs to.
	api.Get("/dashboard", middleware.RequireRoute(r.Nav, model.RouteDashboard), r.Dashboard.GetDashboard)

	stores := api.Group("/stores", middleware.RequireRoute(r.Nav, model.RouteStores))
	stores.Get("/", r.Stores.GetStores)
	stores.Post("/", r.Stores.CreateStore)
	stores.Put("/:id", r.Stores.UpdateStore)
	stores.Post("/:id/toggle-status", r.Stores.ToggleStatus)

	users := api.Group("/users", middleware.RequireRoute(r.Nav, model.RouteUsers))
	users.Get("/", r.Users.GetUsers)
	users.Get("/roles", r.Users.GetRoles)
	users.Post("/", r.Users.CreateUser)

	// Console pages
	pages := app.Group("/app", loadSession)
	for _, route := range PageRoutes {
		pages.Get(strings.TrimPrefix(route, "/app"), middleware.RequireRoute(r.Nav, route), r.Pages.Page(route))
	}

	// WebSocket Route
	if r.Hub != nil {
		app.Use("/ws", loadSession, func(c *fiber.Ctx) error {
			if !websocket.IsWebSocketUpgrade(c) {
				return c.SendStatus(fiber.StatusUpgradeRequired)
			}
			if !middleware.CurrentSession(c).Authenticated() {
				return c.SendStatus(fiber.StatusUnauthorized)
			}
			return c.Next()
		})
		app.Get("/ws", websocket.New(r.Hub.Serve))
	}
}

// RegisteredPages lists the GET routes mounted under /app.
func RegisteredPages(app *fiber.App) []string {
	var pages []string
	for _, route := range app.GetRoutes(true) {
		if route.Method == fiber.MethodGet && strings.HasPrefix(route.Path, "/app/") {
			pages = append(pages, route.Path)
		}
	}
	return pages
}
