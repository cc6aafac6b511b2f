package presenter

import (
	"github.com/gofiber/fiber/v2"

	sessions "github.com/artem13815/agenda/pkg/security/session"
)

// Bind merges the session-derived view values (flash messages, signed-in
// user, CSRF token) into the page data. Flash queues are consumed here,
// so each staged message renders exactly once.
func Bind(c *fiber.Ctx, m *sessions.Manager, data fiber.Map) fiber.Map {
	if data == nil {
		data = fiber.Map{}
	}
	data["errors"] = m.ConsumeFlash(c, sessions.FlashErrors)
	data["success"] = m.ConsumeFlash(c, sessions.FlashSuccess)
	if user, ok := m.CurrentUser(c); ok {
		data["user"] = user
	}
	token, _ := c.Locals(sessions.CSRFContextKey).(string)
	data["csrfToken"] = token
	return data
}

// NotFound renders the generic not-found page. Missing entities, CSRF
// mismatches and unexpected failures all answer through here, so no
// internal detail reaches the client.
func NotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).Render("404", fiber.Map{})
}
