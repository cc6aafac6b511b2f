package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/agenda/api/http/presenter"
	"github.com/artem13815/agenda/pkg/contact"
	sessions "github.com/artem13815/agenda/pkg/security/session"
)

// HomeHandler renders the contact list, newest first. The same view
// serves the public home page and the authenticated agenda page.
type HomeHandler struct {
	contacts contact.UseCase
	sessions *sessions.Manager
	log      *slog.Logger
}

func NewHomeHandler(contacts contact.UseCase, sessions *sessions.Manager, log *slog.Logger) *HomeHandler {
	return &HomeHandler{contacts: contacts, sessions: sessions, log: log}
}

func (h *HomeHandler) Index(c *fiber.Ctx) error {
	list, err := h.contacts.List(c.Context())
	if err != nil {
		h.log.Error("list contacts", "err", err)
		return presenter.NotFound(c)
	}
	return c.Render("index", presenter.Bind(c, h.sessions, fiber.Map{
		"contacts": list,
	}))
}
