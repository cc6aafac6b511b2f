package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/agenda/api/http/presenter"
	"github.com/artem13815/agenda/pkg/auth"
	sessions "github.com/artem13815/agenda/pkg/security/session"
)

// AuthHandler orchestrates the register, login and logout flows.
type AuthHandler struct {
	useCase  auth.UseCase
	sessions *sessions.Manager
	log      *slog.Logger
}

func NewAuthHandler(useCase auth.UseCase, sessions *sessions.Manager, log *slog.Logger) *AuthHandler {
	return &AuthHandler{useCase: useCase, sessions: sessions, log: log}
}

type credentialsRequest struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}

func (h *AuthHandler) ShowRegister(c *fiber.Ctx) error {
	return c.Render("register", presenter.Bind(c, h.sessions, nil))
}

// Register handles the registration form: validation or conflict errors
// flash back to the form, success flashes and redirects to login.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		h.log.Error("parse register form", "err", err)
		return presenter.NotFound(c)
	}

	_, msgs, err := h.useCase.Register(c.Context(), auth.Credentials{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.log.Error("register user", "err", err)
		return presenter.NotFound(c)
	}
	if len(msgs) > 0 {
		if err := h.sessions.Flash(c, sessions.FlashErrors, msgs...); err != nil {
			h.log.Error("save session", "err", err)
			return presenter.NotFound(c)
		}
		return c.Redirect("/register")
	}

	if err := h.sessions.Flash(c, sessions.FlashSuccess, "Your user was created successfully!"); err != nil {
		h.log.Error("save session", "err", err)
		return presenter.NotFound(c)
	}
	return c.Redirect("/login")
}

func (h *AuthHandler) ShowLogin(c *fiber.Ctx) error {
	return c.Render("login", presenter.Bind(c, h.sessions, nil))
}

// Login verifies credentials and attaches the user snapshot to the
// session before redirecting, so the next request is authenticated.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		h.log.Error("parse login form", "err", err)
		return presenter.NotFound(c)
	}

	user, msgs, err := h.useCase.Login(c.Context(), auth.Credentials{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.log.Error("login user", "err", err)
		return presenter.NotFound(c)
	}
	if len(msgs) > 0 {
		if err := h.sessions.Flash(c, sessions.FlashErrors, msgs...); err != nil {
			h.log.Error("save session", "err", err)
			return presenter.NotFound(c)
		}
		return c.Redirect("/login")
	}

	if err := h.sessions.SignIn(c, user.Snapshot()); err != nil {
		h.log.Error("sign in session", "err", err)
		return presenter.NotFound(c)
	}
	if err := h.sessions.Flash(c, sessions.FlashSuccess, "You are now logged in."); err != nil {
		h.log.Error("save session", "err", err)
		return presenter.NotFound(c)
	}
	return c.Redirect("/agenda")
}

// Logout destroys the whole session unconditionally.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.sessions.SignOut(c); err != nil {
		h.log.Error("destroy session", "err", err)
	}
	return c.Redirect("/login")
}
