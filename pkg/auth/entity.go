package auth

import (
	"time"

	"github.com/google/uuid"
)

// User is a domain entity representing a registered account.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Snapshot is the subset of User kept in the session: identity only,
// never the password hash.
type Snapshot struct {
	ID    string
	Email string
}

// Snapshot returns the session-safe view of the user.
func (u User) Snapshot() Snapshot {
	return Snapshot{ID: u.ID.String(), Email: u.Email}
}
