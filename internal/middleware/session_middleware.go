package middleware

import (
	"go-wholesale-console/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Cookie names shared with the browser shell.
const (
	SessionCookie = "console_session"
	LangCookie    = "lang"
	ThemeCookie   = "theme"
)

const sessionKey = "session"

// LoadSession resolves the session cookie into a *service.Session and stores it for the
// rest of the chain. A missing or unusable cookie gives an anonymous session; it never
// fails the request. Language and theme come from the request only.
func LoadSession(sessions service.SessionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := &service.Session{}
		if state := sessions.Read(c.Cookies(SessionCookie)); state != nil {
			identity := state.Identity
			sess.Identity = &identity
			sess.UpstreamToken = state.UpstreamToken
		}

		sess.Language, sess.Theme = service.ResolvePresentation(service.PreferenceHints{
			CookieLanguage: c.Cookies(LangCookie),
			CookieTheme:    c.Cookies(ThemeCookie),
			AcceptLanguage: c.Get(fiber.HeaderAcceptLanguage),
		})

		c.Locals(sessionKey, sess)
		return c.Next()
	}
}

// CurrentSession returns the session set by LoadSession, or an anonymous one.
func CurrentSession(c *fiber.Ctx) *service.Session {
	if sess, ok := c.Locals(sessionKey).(*service.Session); ok && sess != nil {
		return sess
	}
	return service.AnonymousSession()
}

// RequireSession rejects anonymous requests with 401.
func RequireSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !CurrentSession(c).Authenticated() {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": service.ErrNotAuthenticated.Error()})
		}
		return c.Next()
	}
}

// RequireRoute lets a request through only when the session's role has route in its
// navigation.
func RequireRoute(nav *service.NavigationService, route string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := CurrentSession(c)
		if !sess.Authenticated() {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": service.ErrNotAuthenticated.Error()})
		}
		if !nav.CanAccess(sess.Role(), route) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": service.ErrForbidden.Error(),
				"route": route,
			})
		}
		return c.Next()
	}
}

// RequireAnyRoute is RequireRoute for endpoints shared by several pages.
func RequireAnyRoute(nav *service.NavigationService, routes ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := CurrentSession(c)
		if !sess.Authenticated() {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": service.ErrNotAuthenticated.Error()})
		}
		role := sess.Role()
		for _, route := range routes {
			if nav.CanAccess(role, route) {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": service.ErrForbidden.Error()})
	}
}
