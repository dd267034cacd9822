package services

import (
	"context"
	"fmt"
	"log/slog"

	"minhasfinancas/internal/core"
)

// UserService implements registration and authentication rules.
//
// Password comparison is plain equality against the stored value,
// reproducing the documented contract of the original system. See
// DESIGN.md for the note on substituting a salted hash.
type UserService struct {
	store UserStore
}

func NewUserService(store UserStore) *UserService {
	return &UserService{store: store}
}

// Authenticate looks the user up by email and compares passwords.
// Unknown email and wrong password fail with distinct messages but the
// same error family.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (core.User, error) {
	u, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		return core.User{}, fmt.Errorf("find user by email: %w", err)
	}
	if u == nil {
		return core.User{}, core.ErrUserNotFound
	}
	if u.Password != password {
		return core.User{}, core.ErrInvalidPassword
	}

	slog.InfoContext(ctx, "User authenticated", "id", u.ID, "email", u.Email)
	return *u, nil
}

// Save validates email uniqueness and persists a new user. No insert
// happens when the email is already registered.
func (s *UserService) Save(ctx context.Context, u core.User) (core.User, error) {
	if err := s.ValidateEmail(ctx, u.Email); err != nil {
		return core.User{}, err
	}

	saved, err := s.store.Create(ctx, u)
	if err != nil {
		return core.User{}, fmt.Errorf("create user: %w", err)
	}

	slog.InfoContext(ctx, "User registered", "id", saved.ID, "email", saved.Email)
	return saved, nil
}

// ValidateEmail fails when another user already holds the email.
func (s *UserService) ValidateEmail(ctx context.Context, email string) error {
	exists, err := s.store.ExistsByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("check email: %w", err)
	}
	if exists {
		return core.ErrEmailTaken
	}
	return nil
}

// FindByID returns the user, or (nil, nil) when it does not exist.
func (s *UserService) FindByID(ctx context.Context, id int64) (*core.User, error) {
	u, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return u, nil
}
