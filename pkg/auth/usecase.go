package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// UseCase describes registration and login behavior. The []string result
// carries user-facing validation messages: a non-empty list means the
// request was well-formed but rejected, and the caller should send the
// messages back to the form. The error result is reserved for unexpected
// failures (storage, hashing).
type UseCase interface {
	Register(ctx context.Context, cr Credentials) (User, []string, error)
	Login(ctx context.Context, cr Credentials) (User, []string, error)
}

type service struct {
	repo UserRepository
}

// NewService returns the default implementation of UseCase.
func NewService(repo UserRepository) UseCase {
	return &service{repo: repo}
}

func (s *service) Register(ctx context.Context, cr Credentials) (User, []string, error) {
	cr.Normalize()
	if errs := cr.Validate(); len(errs) > 0 {
		return User{}, errs, nil
	}

	// Friendly pre-check; the unique index on email is the real guarantee.
	if _, err := s.repo.GetByEmail(ctx, cr.Email); err == nil {
		return User{}, []string{"User already exists."}, nil
	} else if !errors.Is(err, ErrNotFound) {
		return User{}, nil, err
	}

	passwordHash, err := HashPassword(cr.Password)
	if err != nil {
		return User{}, nil, err
	}

	user := User{
		ID:           uuid.New(),
		Email:        cr.Email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, ErrUserAlreadyExists) {
			return User{}, []string{"User already exists."}, nil
		}
		return User{}, nil, err
	}
	return user, nil, nil
}

func (s *service) Login(ctx context.Context, cr Credentials) (User, []string, error) {
	cr.Normalize()
	if errs := cr.Validate(); len(errs) > 0 {
		return User{}, errs, nil
	}

	user, err := s.repo.GetByEmail(ctx, cr.Email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, []string{"User not registered."}, nil
		}
		return User{}, nil, err
	}
	if !CheckPassword(cr.Password, user.PasswordHash) {
		return User{}, []string{"Invalid password."}, nil
	}
	return user, nil, nil
}
