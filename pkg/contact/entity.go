package contact

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Contact is an address-book entry. Only Name is mandatory; the
// validation layer additionally requires at least one of Email or Phone.
type Contact struct {
	ID        uuid.UUID
	Name      string
	Lastname  string
	Email     string
	Phone     string
	CreatedAt time.Time
}

// ErrNotFound is returned when no contact matches the given id. A
// malformed id maps to the same error, never to a hard failure.
var ErrNotFound = errors.New("contact not found")

// Repository is the persistence port for contacts.
type Repository interface {
	Create(ctx context.Context, c Contact) error
	GetByID(ctx context.Context, id uuid.UUID) (Contact, error)
	// Update rewrites the editable fields; CreatedAt is immutable.
	Update(ctx context.Context, c Contact) error
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns every contact, newest first.
	List(ctx context.Context) ([]Contact, error)
}
