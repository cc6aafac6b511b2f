package session

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
)

// CSRFContextKey is the Locals key under which the csrf middleware
// exposes the per-session token to handlers and views.
const CSRFContextKey = "csrf"

// LoginRequired returns a Fiber middleware guarding authenticated routes.
// Anonymous requests are flashed a message and redirected to the login
// page, never answered with a hard error.
func (m *Manager) LoginRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := m.CurrentUser(c); !ok {
			if err := m.Flash(c, FlashErrors, "You need to log in."); err != nil {
				return c.Status(fiber.StatusNotFound).Render("404", fiber.Map{})
			}
			return c.Redirect("/login")
		}
		return c.Next()
	}
}

// CSRF returns the CSRF middleware bound to the session store. Every
// state-changing request must echo the token through the _csrf form
// field; a mismatch renders the generic 404 page rather than a 403.
func (m *Manager) CSRF(ttl time.Duration) fiber.Handler {
	return csrf.New(csrf.Config{
		KeyLookup:      "form:_csrf",
		CookieName:     "agenda_csrf",
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
		Expiration:     ttl,
		Session:        m.store,
		ContextKey:     CSRFContextKey,
		ErrorHandler: func(c *fiber.Ctx, _ error) error {
			return c.Status(fiber.StatusNotFound).Render("404", fiber.Map{})
		},
	})
}
