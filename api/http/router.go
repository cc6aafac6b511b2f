package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/agenda/api/http/handlers"
)

// Register wires all HTTP routes onto the given Fiber app. The route
// table mirrors the application surface: public home/auth pages and the
// session-gated contact book. Deleting through GET is deliberate.
func Register(app *fiber.App, home *handlers.HomeHandler, auth *handlers.AuthHandler, contacts *handlers.ContactHandler, health *handlers.HealthHandler, loginRequired fiber.Handler) {
	// Health and readiness endpoints for probes/monitoring
	app.Get("/health", health.Health)
	app.Get("/ready", health.Ready)

	// The home list is public; /agenda serves the same view behind the
	// auth gate.
	app.Get("/", home.Index)
	app.Get("/agenda", loginRequired, home.Index)

	app.Get("/register", auth.ShowRegister)
	app.Post("/register", auth.Register)
	app.Get("/login", auth.ShowLogin)
	app.Post("/login", auth.Login)
	app.Get("/logout", auth.Logout)

	app.Get("/contact", loginRequired, contacts.New)
	app.Post("/contact/create", loginRequired, contacts.Create)
	app.Get("/contact/:id", loginRequired, contacts.Show)
	app.Post("/contact/edit/:id", loginRequired, contacts.Edit)
	app.Get("/contact/delete/:id", loginRequired, contacts.Delete)
}
