package handler

import (
	"go-wholesale-console/internal/middleware"
	"go-wholesale-console/internal/model"
	"go-wholesale-console/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

type AuthHandler struct {
	authService service.AuthService
	sessions    service.SessionService
	prefs       service.PreferenceService
	nav         *service.NavigationService
	cookies     CookieConfig
	logger      zerolog.Logger
}

func NewAuthHandler(
	authService service.AuthService,
	sessions service.SessionService,
	prefs service.PreferenceService,
	nav *service.NavigationService,
	cookies CookieConfig,
	logger zerolog.Logger,
) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		sessions:    sessions,
		prefs:       prefs,
		nav:         nav,
		cookies:     cookies,
		logger:      logger,
	}
}

// Login checks the credentials with the API and starts a console session
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req model.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidJSON(c)
	}

	resp, err := h.authService.Login(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err)
	}

	h.cookies.setSession(c, resp.Blob, h.sessions.TTL())

	// Stored preferences win over whatever the anonymous shell had picked
	lang, theme := h.prefs.Resolve(c.UserContext(), &resp.Identity, service.PreferenceHints{
		AcceptLanguage: c.Get(fiber.HeaderAcceptLanguage),
	})
	h.cookies.setPreferences(c, lang, theme)

	return c.JSON(fiber.Map{
		"user":      resp.Identity,
		"roleStyle": h.nav.ResolveRoleStyle(resp.Identity.Role),
		"language":  lang,
		"theme":     theme,
	})
}

// Logout ends the console session. Language and theme cookies are kept.
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sess := middleware.CurrentSession(c)
	h.cookies.clearSession(c)
	if sess.Authenticated() {
		h.logger.Info().Str("email", sess.Identity.Email).Msg("signed out")
	}
	return c.JSON(fiber.Map{"message": "Signed out"})
}

// Me returns the signed-in identity
// GET /api/v1/auth/me
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	sess := middleware.CurrentSession(c)
	if !sess.Authenticated() {
		return respondError(c, service.ErrNotAuthenticated)
	}
	return c.JSON(fiber.Map{
		"user":      sess.Identity,
		"roleStyle": h.nav.ResolveRoleStyle(sess.Role()),
		"language":  sess.Language,
		"theme":     sess.Theme,
	})
}
