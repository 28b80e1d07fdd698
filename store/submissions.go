package store

import (
	"context"

	"github.com/gokler/sitecms/model"
)

// ListQuotes returns quote requests, newest first, optionally by status.
func (s *Store) ListQuotes(ctx context.Context, f model.Filter) ([]model.Quote, error) {
	var w where
	if f.Status != "" {
		w.eq("status", f.Status)
	}
	return selectAll[model.Quote](ctx, s.db, `SELECT * FROM quotes`+w.String()+` ORDER BY created_at DESC, rowid DESC`, w.args...)
}

// GetQuote returns a quote request by id.
func (s *Store) GetQuote(ctx context.Context, id string) (model.Quote, error) {
	return getOne[model.Quote](ctx, s.db, `SELECT * FROM quotes WHERE id = ?`, id)
}

// InsertQuote stores a new quote request.
func (s *Store) InsertQuote(ctx context.Context, q model.Quote) error {
	_, err := s.db.NamedExecContext(ctx, `INSERT INTO quotes
		(id, name, email, phone, company, project_type, budget, location, timeline, message, status, notes, created_at, updated_at)
		VALUES (:id, :name, :email, :phone, :company, :project_type, :budget, :location, :timeline, :message, :status, :notes, :created_at, :updated_at)`, q)
	return err
}

// UpdateQuote overwrites every mutable column of the quote with id q.ID.
func (s *Store) UpdateQuote(ctx context.Context, q model.Quote) error {
	return affectedOne(s.db.NamedExecContext(ctx, `UPDATE quotes SET
		name = :name, email = :email, phone = :phone, company = :company, project_type = :project_type,
		budget = :budget, location = :location, timeline = :timeline, message = :message,
		status = :status, notes = :notes, updated_at = :updated_at
		WHERE id = :id`, q))
}

// DeleteQuote removes a quote request by id.
func (s *Store) DeleteQuote(ctx context.Context, id string) error {
	return affectedOne(s.db.ExecContext(ctx, `DELETE FROM quotes WHERE id = ?`, id))
}

// ListContacts returns contact messages, newest first, optionally by status.
func (s *Store) ListContacts(ctx context.Context, f model.Filter) ([]model.Contact, error) {
	var w where
	if f.Status != "" {
		w.eq("status", f.Status)
	}
	return selectAll[model.Contact](ctx, s.db, `SELECT * FROM contacts`+w.String()+` ORDER BY created_at DESC, rowid DESC`, w.args...)
}

// GetContact returns a contact message by id.
func (s *Store) GetContact(ctx context.Context, id string) (model.Contact, error) {
	return getOne[model.Contact](ctx, s.db, `SELECT * FROM contacts WHERE id = ?`, id)
}

// InsertContact stores a new contact message.
func (s *Store) InsertContact(ctx context.Context, c model.Contact) error {
	_, err := s.db.NamedExecContext(ctx, `INSERT INTO contacts
		(id, name, email, phone, subject, message, status, created_at, updated_at)
		VALUES (:id, :name, :email, :phone, :subject, :message, :status, :created_at, :updated_at)`, c)
	return err
}

// UpdateContact overwrites every mutable column of the message with id c.ID.
func (s *Store) UpdateContact(ctx context.Context, c model.Contact) error {
	return affectedOne(s.db.NamedExecContext(ctx, `UPDATE contacts SET
		name = :name, email = :email, phone = :phone, subject = :subject, message = :message,
		status = :status, updated_at = :updated_at
		WHERE id = :id`, c))
}

// DeleteContact removes a contact message by id.
func (s *Store) DeleteContact(ctx context.Context, id string) error {
	return affectedOne(s.db.ExecContext(ctx, `DELETE FROM contacts WHERE id = ?`, id))
}
