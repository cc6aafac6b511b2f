package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/agenda/pkg/contact"
)

// ContactRepository implements contact.Repository backed by PostgreSQL (pgx).
type ContactRepository struct {
	pool *pgxpool.Pool
}

func NewContactRepository(pool *pgxpool.Pool) (*ContactRepository, error) {
	r := &ContactRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *ContactRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS contacts (
	id UUID PRIMARY KEY,
	name TEXT NOT NULL,
	lastname TEXT NOT NULL DEFAULT '',
	email TEXT NOT NULL DEFAULT '',
	phone TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_contacts_created_at ON contacts(created_at DESC);
`)
	return err
}

func (r *ContactRepository) Create(ctx context.Context, c contact.Contact) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO contacts (id, name, lastname, email, phone, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
`, c.ID, c.Name, c.Lastname, c.Email, c.Phone, c.CreatedAt)
	return err
}

func (r *ContactRepository) GetByID(ctx context.Context, id uuid.UUID) (contact.Contact, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, name, lastname, email, phone, created_at FROM contacts WHERE id = $1
`, id)
	var c contact.Contact
	var created time.Time
	if err := row.Scan(&c.ID, &c.Name, &c.Lastname, &c.Email, &c.Phone, &created); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return contact.Contact{}, contact.ErrNotFound
		}
		return contact.Contact{}, err
	}
	c.CreatedAt = created.UTC()
	return c, nil
}

func (r *ContactRepository) Update(ctx context.Context, c contact.Contact) error {
	cmd, err := r.pool.Exec(ctx, `
UPDATE contacts SET name = $2, lastname = $3, email = $4, phone = $5
WHERE id = $1
`, c.ID, c.Name, c.Lastname, c.Email, c.Phone)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return contact.ErrNotFound
	}
	return nil
}

func (r *ContactRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return contact.ErrNotFound
	}
	return nil
}

func (r *ContactRepository) List(ctx context.Context) ([]contact.Contact, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, name, lastname, email, phone, created_at
FROM contacts
ORDER BY created_at DESC
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []contact.Contact
	for rows.Next() {
		var c contact.Contact
		var created time.Time
		if err := rows.Scan(&c.ID, &c.Name, &c.Lastname, &c.Email, &c.Phone, &created); err != nil {
			return nil, err
		}
		c.CreatedAt = created.UTC()
		res = append(res, c)
	}
	return res, rows.Err()
}
