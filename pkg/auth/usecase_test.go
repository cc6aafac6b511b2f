package auth

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type userRepoStub struct {
	mu      sync.Mutex
	byEmail map[string]User
}

func newUserRepoStub() *userRepoStub {
	return &userRepoStub{byEmail: map[string]User{}}
}

func (s *userRepoStub) Create(_ context.Context, user User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := strings.ToLower(user.Email)
	if _, ok := s.byEmail[key]; ok {
		return ErrUserAlreadyExists
	}
	s.byEmail[key] = user
	return nil
}

func (s *userRepoStub) GetByEmail(_ context.Context, email string) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.byEmail[strings.ToLower(email)]
	if !ok {
		return User{}, ErrNotFound
	}
	return user, nil
}

func TestRegister_Success(t *testing.T) {
	t.Parallel()

	svc := NewService(newUserRepoStub())
	user, msgs, err := svc.Register(context.Background(), Credentials{Email: "a@b.com", Password: "secret"})
	require.NoError(t, err)
	require.Empty(t, msgs)
	assert.Equal(t, "a@b.com", user.Email)
	assert.NotEqual(t, "secret", user.PasswordHash)
	assert.True(t, CheckPassword("secret", user.PasswordHash))
	assert.False(t, user.CreatedAt.IsZero())
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()

	repo := newUserRepoStub()
	svc := NewService(repo)
	ctx := context.Background()

	_, msgs, err := svc.Register(ctx, Credentials{Email: "a@b.com", Password: "secret"})
	require.NoError(t, err)
	require.Empty(t, msgs)

	_, msgs, err = svc.Register(ctx, Credentials{Email: "a@b.com", Password: "other"})
	require.NoError(t, err)
	assert.Equal(t, []string{"User already exists."}, msgs)
	assert.Len(t, repo.byEmail, 1)
}

func TestRegister_ValidationErrors(t *testing.T) {
	t.Parallel()

	repo := newUserRepoStub()
	svc := NewService(repo)
	_, msgs, err := svc.Register(context.Background(), Credentials{Email: "nope", Password: "x"})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Invalid email.",
		"Password must be between 3 and 50 characters.",
	}, msgs)
	assert.Empty(t, repo.byEmail)
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()

	svc := NewService(newUserRepoStub())
	ctx := context.Background()
	_, _, err := svc.Register(ctx, Credentials{Email: "a@b.com", Password: "secret"})
	require.NoError(t, err)

	user, msgs, err := svc.Login(ctx, Credentials{Email: "a@b.com", Password: "secret"})
	require.NoError(t, err)
	require.Empty(t, msgs)
	assert.Equal(t, "a@b.com", user.Email)

	snap := user.Snapshot()
	assert.Equal(t, user.ID.String(), snap.ID)
	assert.Equal(t, "a@b.com", snap.Email)
}

func TestLogin_UnknownUser(t *testing.T) {
	t.Parallel()

	svc := NewService(newUserRepoStub())
	user, msgs, err := svc.Login(context.Background(), Credentials{Email: "a@b.com", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, []string{"User not registered."}, msgs)
	assert.Zero(t, user)
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Parallel()

	svc := NewService(newUserRepoStub())
	ctx := context.Background()
	_, _, err := svc.Register(ctx, Credentials{Email: "a@b.com", Password: "secret"})
	require.NoError(t, err)

	user, msgs, err := svc.Login(ctx, Credentials{Email: "a@b.com", Password: "wrong"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Invalid password."}, msgs)
	assert.Zero(t, user)
}
