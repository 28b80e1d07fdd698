package content

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/gokler/sitecms/model"
)

// MinPasswordLength is the shortest password CreateUser accepts.
const MinPasswordLength = 8

// RoleAdmin is the role given to accounts created by this package.
const RoleAdmin = "admin"

// dummyHash is compared against when the email is unknown so a failed
// lookup costs about as much as a wrong password.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("not-a-real-password"), bcrypt.MinCost)

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Authenticate checks email and password and returns the matching user.
func (s *Service) Authenticate(ctx context.Context, email, password string) (model.User, error) {
	u, err := s.store.GetUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(notFound(err), ErrNotFound) {
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return model.User{}, ErrInvalidCredentials
		}
		return model.User{}, fmt.Errorf("load user: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return model.User{}, ErrInvalidCredentials
	}
	return u, nil
}

// CallerFor returns the Caller that represents an authenticated user.
func CallerFor(u model.User) Caller {
	return Caller{UserID: u.ID, Email: u.Email, Role: u.Role}
}

// Resolve returns the Caller for a session's user id. Unknown or empty ids
// resolve to Anonymous, so deleting a user ends their sessions.
func (s *Service) Resolve(ctx context.Context, userID string) (Caller, error) {
	if userID == "" {
		return Anonymous, nil
	}
	u, err := s.store.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(notFound(err), ErrNotFound) {
			return Anonymous, nil
		}
		return Anonymous, fmt.Errorf("load session user: %w", err)
	}
	return CallerFor(u), nil
}

// ChangePassword replaces the password of the user with email.
func (s *Service) ChangePassword(ctx context.Context, email, password string) error {
	if len(password) < MinPasswordLength {
		return invalid("password", fmt.Sprintf("must be at least %d characters", MinPasswordLength))
	}
	u, err := s.store.GetUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return notFound(err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return notFound(s.store.UpdateUserPassword(ctx, u.ID, string(hash)))
}

// CreateUser stores a new admin account with a bcrypt-hashed password.
func (s *Service) CreateUser(ctx context.Context, email, name, password string) (model.User, error) {
	if len(password) < MinPasswordLength {
		return model.User{}, invalid("password", fmt.Sprintf("must be at least %d characters", MinPasswordLength))
	}
	u := model.User{
		ID:        s.newID(),
		Email:     normalizeEmail(email),
		Name:      strings.TrimSpace(name),
		Role:      RoleAdmin,
		CreatedAt: s.timestamp(),
	}
	if err := s.check(u); err != nil {
		return model.User{}, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return model.User{}, fmt.Errorf("hash password: %w", err)
	}
	u.Password = string(hash)
	if err := s.store.InsertUser(ctx, u); err != nil {
		return model.User{}, fmt.Errorf("create user: %w", conflict(err))
	}
	return u, nil
}

// EnsureAdmin creates the first admin account when no user exists yet. It
// reports whether an account was created.
func (s *Service) EnsureAdmin(ctx context.Context, email, password string) (bool, error) {
	n, err := s.store.CountUsers(ctx)
	if err != nil {
		return false, fmt.Errorf("count users: %w", err)
	}
	if n > 0 {
		return false, nil
	}
	if email == "" || password == "" {
		return false, errors.New("no admin account exists and no bootstrap credentials were given")
	}
	if _, err := s.CreateUser(ctx, email, "Admin", password); err != nil {
		return false, err
	}
	return true, nil
}
