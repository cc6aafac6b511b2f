package contact

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UseCase encapsulates the contact-book operations. As in the auth use
// case, a non-empty []string means the input was rejected with
// user-facing messages; the error result is for missing records and
// unexpected failures only.
type UseCase interface {
	Create(ctx context.Context, f Form) (Contact, []string, error)
	Get(ctx context.Context, id string) (Contact, error)
	Update(ctx context.Context, id string, f Form) (Contact, []string, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]Contact, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) UseCase { return &service{repo: repo} }

func (s *service) Create(ctx context.Context, f Form) (Contact, []string, error) {
	f.Normalize()
	if errs := f.Validate(); len(errs) > 0 {
		return Contact{}, errs, nil
	}
	c := Contact{
		ID:        uuid.New(),
		Name:      f.Name,
		Lastname:  f.Lastname,
		Email:     f.Email,
		Phone:     f.Phone,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return Contact{}, nil, err
	}
	return c, nil, nil
}

func (s *service) Get(ctx context.Context, id string) (Contact, error) {
	cid, err := parseID(id)
	if err != nil {
		return Contact{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, cid)
}

func (s *service) Update(ctx context.Context, id string, f Form) (Contact, []string, error) {
	cid, err := parseID(id)
	if err != nil {
		return Contact{}, nil, ErrNotFound
	}
	f.Normalize()
	if errs := f.Validate(); len(errs) > 0 {
		return Contact{}, errs, nil
	}
	c := Contact{
		ID:       cid,
		Name:     f.Name,
		Lastname: f.Lastname,
		Email:    f.Email,
		Phone:    f.Phone,
	}
	if err := s.repo.Update(ctx, c); err != nil {
		return Contact{}, nil, err
	}
	return c, nil, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	cid, err := parseID(id)
	if err != nil {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, cid)
}

func (s *service) List(ctx context.Context) ([]Contact, error) {
	return s.repo.List(ctx)
}

// parseID treats anything that is not a well-formed UUID as "no such
// contact", mirroring the validate-before-query discipline upstream.
func parseID(id string) (uuid.UUID, error) {
	return uuid.Parse(id)
}
