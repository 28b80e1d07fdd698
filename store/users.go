package store

import (
	"context"

	"github.com/gokler/sitecms/model"
)

// GetUserByEmail returns the user with email.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	return getOne[model.User](ctx, s.db, `SELECT * FROM users WHERE email = ?`, email)
}

// GetUser returns the user with id.
func (s *Store) GetUser(ctx context.Context, id string) (model.User, error) {
	return getOne[model.User](ctx, s.db, `SELECT * FROM users WHERE id = ?`, id)
}

// CountUsers returns the number of user accounts.
func (s *Store) CountUsers(ctx context.Context) (int, error) {
	return getOne[int](ctx, s.db, `SELECT COUNT(*) FROM users`)
}

// InsertUser stores a new user. u.Password must already be hashed.
func (s *Store) InsertUser(ctx context.Context, u model.User) error {
	_, err := s.db.NamedExecContext(ctx, `INSERT INTO users (id, email, name, password, role, created_at)
		VALUES (:id, :email, :name, :password, :role, :created_at)`, u)
	return err
}

// UpdateUserPassword replaces the stored hash of the user with id.
func (s *Store) UpdateUserPassword(ctx context.Context, id, hash string) error {
	return affectedOne(s.db.ExecContext(ctx, `UPDATE users SET password = ? WHERE id = ?`, hash, id))
}
