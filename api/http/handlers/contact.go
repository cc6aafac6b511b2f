package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/agenda/api/http/presenter"
	"github.com/artem13815/agenda/pkg/contact"
	sessions "github.com/artem13815/agenda/pkg/security/session"
)

// ContactHandler orchestrates the contact CRUD flows. All routes behind
// it require an authenticated session.
type ContactHandler struct {
	useCase  contact.UseCase
	sessions *sessions.Manager
	log      *slog.Logger
}

func NewContactHandler(useCase contact.UseCase, sessions *sessions.Manager, log *slog.Logger) *ContactHandler {
	return &ContactHandler{useCase: useCase, sessions: sessions, log: log}
}

type contactRequest struct {
	Name     string `form:"name"`
	Lastname string `form:"lastname"`
	Email    string `form:"email"`
	Phone    string `form:"phone"`
}

func (r contactRequest) form() contact.Form {
	return contact.Form{
		Name:     r.Name,
		Lastname: r.Lastname,
		Email:    r.Email,
		Phone:    r.Phone,
	}
}

// New shows the empty contact form.
func (h *ContactHandler) New(c *fiber.Ctx) error {
	return c.Render("contact", presenter.Bind(c, h.sessions, fiber.Map{
		"action":  "/contact/create",
		"contact": contact.Form{},
	}))
}

func (h *ContactHandler) Create(c *fiber.Ctx) error {
	var req contactRequest
	if err := c.BodyParser(&req); err != nil {
		h.log.Error("parse contact form", "err", err)
		return presenter.NotFound(c)
	}

	created, msgs, err := h.useCase.Create(c.Context(), req.form())
	if err != nil {
		h.log.Error("create contact", "err", err)
		return presenter.NotFound(c)
	}
	if len(msgs) > 0 {
		if err := h.sessions.Flash(c, sessions.FlashErrors, msgs...); err != nil {
			h.log.Error("save session", "err", err)
			return presenter.NotFound(c)
		}
		return c.Redirect("/contact")
	}

	if err := h.sessions.Flash(c, sessions.FlashSuccess, "Contact registered successfully."); err != nil {
		h.log.Error("save session", "err", err)
		return presenter.NotFound(c)
	}
	return c.Redirect("/contact/" + created.ID.String())
}

// Show renders the edit form for an existing contact.
func (h *ContactHandler) Show(c *fiber.Ctx) error {
	ct, err := h.useCase.Get(c.Context(), c.Params("id"))
	if err != nil {
		if !errors.Is(err, contact.ErrNotFound) {
			h.log.Error("load contact", "err", err)
		}
		return presenter.NotFound(c)
	}
	return c.Render("contact", presenter.Bind(c, h.sessions, fiber.Map{
		"action":  "/contact/edit/" + ct.ID.String(),
		"contact": ct,
	}))
}

func (h *ContactHandler) Edit(c *fiber.Ctx) error {
	id := c.Params("id")
	var req contactRequest
	if err := c.BodyParser(&req); err != nil {
		h.log.Error("parse contact form", "err", err)
		return presenter.NotFound(c)
	}

	updated, msgs, err := h.useCase.Update(c.Context(), id, req.form())
	if err != nil {
		if !errors.Is(err, contact.ErrNotFound) {
			h.log.Error("update contact", "err", err)
		}
		return presenter.NotFound(c)
	}
	if len(msgs) > 0 {
		if err := h.sessions.Flash(c, sessions.FlashErrors, msgs...); err != nil {
			h.log.Error("save session", "err", err)
			return presenter.NotFound(c)
		}
		// Edit keeps the target id in the URL.
		return c.Redirect("/contact/" + id)
	}

	if err := h.sessions.Flash(c, sessions.FlashSuccess, "Contact updated successfully."); err != nil {
		h.log.Error("save session", "err", err)
		return presenter.NotFound(c)
	}
	return c.Redirect("/contact/" + updated.ID.String())
}

func (h *ContactHandler) Delete(c *fiber.Ctx) error {
	if err := h.useCase.Delete(c.Context(), c.Params("id")); err != nil {
		if !errors.Is(err, contact.ErrNotFound) {
			h.log.Error("delete contact", "err", err)
		}
		return presenter.NotFound(c)
	}

	if err := h.sessions.Flash(c, sessions.FlashSuccess, "Contact deleted successfully."); err != nil {
		h.log.Error("save session", "err", err)
		return presenter.NotFound(c)
	}
	return c.Redirect("/")
}
