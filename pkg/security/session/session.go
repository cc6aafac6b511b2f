package session

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/artem13815/agenda/pkg/auth"
)

// Flash categories. Each staged message is delivered to exactly one
// subsequent render, then cleared.
const (
	FlashErrors  = "errors"
	FlashSuccess = "success"
)

const (
	keyUserID    = "user_id"
	keyUserEmail = "user_email"
	flashPrefix  = "flash:"
)

// Manager owns the cookie-backed server-side session: the authenticated
// user snapshot and the flash queues. Every mutation saves the session
// before the handler writes its redirect, so a client following the
// redirect observes the updated state.
type Manager struct {
	store *session.Store
}

// NewManager builds a session store with an httpOnly cookie and sliding
// expiration. A nil storage falls back to the in-memory backend, which
// is what the tests use.
func NewManager(cookieName string, ttl time.Duration, storage fiber.Storage) *Manager {
	store := session.New(session.Config{
		Storage:        storage,
		Expiration:     ttl,
		KeyLookup:      "cookie:" + cookieName,
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})
	return &Manager{store: store}
}

// Store exposes the underlying fiber store for middleware that needs to
// share session state (CSRF).
func (m *Manager) Store() *session.Store { return m.store }

// SignIn attaches the user snapshot to the session.
func (m *Manager) SignIn(c *fiber.Ctx, user auth.Snapshot) error {
	sess, err := m.store.Get(c)
	if err != nil {
		return err
	}
	sess.Set(keyUserID, user.ID)
	sess.Set(keyUserEmail, user.Email)
	return sess.Save()
}

// CurrentUser returns the snapshot attached by SignIn, if any.
func (m *Manager) CurrentUser(c *fiber.Ctx) (auth.Snapshot, bool) {
	sess, err := m.store.Get(c)
	if err != nil {
		return auth.Snapshot{}, false
	}
	id, _ := sess.Get(keyUserID).(string)
	if id == "" {
		return auth.Snapshot{}, false
	}
	email, _ := sess.Get(keyUserEmail).(string)
	return auth.Snapshot{ID: id, Email: email}, true
}

// SignOut destroys the whole session, flash queues and CSRF state
// included, not just the user snapshot.
func (m *Manager) SignOut(c *fiber.Ctx) error {
	sess, err := m.store.Get(c)
	if err != nil {
		return err
	}
	return sess.Destroy()
}

// Flash stages messages under the given category.
func (m *Manager) Flash(c *fiber.Ctx, category string, msgs ...string) error {
	if len(msgs) == 0 {
		return nil
	}
	sess, err := m.store.Get(c)
	if err != nil {
		return err
	}
	key := flashPrefix + category
	queue := append(decodeFlash(sess.Get(key)), msgs...)
	encoded, err := json.Marshal(queue)
	if err != nil {
		return err
	}
	sess.Set(key, string(encoded))
	return sess.Save()
}

// ConsumeFlash returns the staged messages for the category and clears
// them.
func (m *Manager) ConsumeFlash(c *fiber.Ctx, category string) []string {
	sess, err := m.store.Get(c)
	if err != nil {
		return nil
	}
	key := flashPrefix + category
	queue := decodeFlash(sess.Get(key))
	if len(queue) == 0 {
		return nil
	}
	sess.Delete(key)
	_ = sess.Save()
	return queue
}

// Flash queues are JSON-encoded strings so any fiber.Storage backend can
// hold them without gob type registration.
func decodeFlash(v any) []string {
	s, _ := v.(string)
	if s == "" {
		return nil
	}
	var queue []string
	if err := json.Unmarshal([]byte(s), &queue); err != nil {
		return nil
	}
	return queue
}
