package handler

import (
	"time"

	"go-wholesale-console/internal/middleware"
	"go-wholesale-console/internal/model"

	"github.com/gofiber/fiber/v2"
)

// preferenceCookieTTL keeps language and theme across sign-outs.
const preferenceCookieTTL = 365 * 24 * time.Hour

// CookieConfig controls the cookies the console sets.
type CookieConfig struct {
	Secure bool
}

func (cc CookieConfig) setSession(c *fiber.Ctx, blob string, ttl time.Duration) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    blob,
		Path:     "/",
		Expires:  time.Now().Add(ttl),
		HTTPOnly: true,
		Secure:   cc.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func (cc CookieConfig) clearSession(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   cc.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func (cc CookieConfig) setPreferences(c *fiber.Ctx, lang string, theme model.Theme) {
	expires := time.Now().Add(preferenceCookieTTL)
	for name, value := range map[string]string{
		middleware.LangCookie:  lang,
		middleware.ThemeCookie: string(theme),
	} {
		c.Cookie(&fiber.Cookie{
			Name:     name,
			Value:    value,
			Path:     "/",
			Expires:  expires,
			Secure:   cc.Secure,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
	}
}
