package content

import (
	"context"
	"fmt"

	"github.com/gokler/sitecms/model"
)

// Quote requests and contact messages are the only records anonymous
// callers may create. Their status is owned by the server on create; after
// that an admin may set any status of the enum in any order.

// SubmitQuote stores a quote request from the public form. Status is
// always "new" whatever patch carries.
func (s *Service) SubmitQuote(ctx context.Context, patch Patch) (model.Quote, error) {
	var q model.Quote
	if err := patch(&q); err != nil {
		return model.Quote{}, err
	}
	now := s.timestamp()
	q.ID = s.newID()
	q.Status = model.QuoteNew
	q.Notes = nil
	q.CreatedAt, q.UpdatedAt = now, now
	if err := s.check(q); err != nil {
		return model.Quote{}, err
	}
	if err := s.store.InsertQuote(ctx, q); err != nil {
		return model.Quote{}, fmt.Errorf("create quote: %w", err)
	}
	return q, nil
}

// ListQuotes returns quote requests newest first, optionally by status.
func (s *Service) ListQuotes(ctx context.Context, who Caller, f model.Filter) ([]model.Quote, error) {
	if err := who.require(); err != nil {
		return nil, err
	}
	quotes, err := s.store.ListQuotes(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}
	return search(quotes, f.Query, func(q model.Quote) []string {
		return []string{q.Name, q.Email, q.Phone, q.ProjectType, q.Location, model.Deref(q.Company)}
	}), nil
}

// GetQuote returns a quote request by id.
func (s *Service) GetQuote(ctx context.Context, who Caller, id string) (model.Quote, error) {
	if err := who.require(); err != nil {
		return model.Quote{}, err
	}
	q, err := s.store.GetQuote(ctx, id)
	return q, notFound(err)
}

// UpdateQuote applies patch to the quote with id, typically a status or
// notes change.
func (s *Service) UpdateQuote(ctx context.Context, who Caller, id string, patch Patch) (model.Quote, error) {
	if err := who.require(); err != nil {
		return model.Quote{}, err
	}
	cur, err := s.store.GetQuote(ctx, id)
	if err != nil {
		return model.Quote{}, notFound(err)
	}
	q := cur
	if err := patch(&q); err != nil {
		return model.Quote{}, err
	}
	q.ID, q.CreatedAt, q.UpdatedAt = cur.ID, cur.CreatedAt, s.timestamp()
	if err := s.check(q); err != nil {
		return model.Quote{}, err
	}
	if err := s.store.UpdateQuote(ctx, q); err != nil {
		return model.Quote{}, fmt.Errorf("update quote: %w", notFound(err))
	}
	return q, nil
}

// DeleteQuote removes the quote with id.
func (s *Service) DeleteQuote(ctx context.Context, who Caller, id string) error {
	if err := who.require(); err != nil {
		return err
	}
	return notFound(s.store.DeleteQuote(ctx, id))
}

// SubmitContact stores a message from the contact form. Status is always
// "unread".
func (s *Service) SubmitContact(ctx context.Context, patch Patch) (model.Contact, error) {
	var c model.Contact
	if err := patch(&c); err != nil {
		return model.Contact{}, err
	}
	now := s.timestamp()
	c.ID = s.newID()
	c.Status = model.ContactUnread
	c.CreatedAt, c.UpdatedAt = now, now
	if err := s.check(c); err != nil {
		return model.Contact{}, err
	}
	if err := s.store.InsertContact(ctx, c); err != nil {
		return model.Contact{}, fmt.Errorf("create contact: %w", err)
	}
	return c, nil
}

// ListContacts returns contact messages newest first, optionally by status.
func (s *Service) ListContacts(ctx context.Context, who Caller, f model.Filter) ([]model.Contact, error) {
	if err := who.require(); err != nil {
		return nil, err
	}
	contacts, err := s.store.ListContacts(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	return search(contacts, f.Query, func(c model.Contact) []string {
		return []string{c.Name, c.Email, c.Subject, c.Message}
	}), nil
}

// GetContact returns a contact message by id.
func (s *Service) GetContact(ctx context.Context, who Caller, id string) (model.Contact, error) {
	if err := who.require(); err != nil {
		return model.Contact{}, err
	}
	c, err := s.store.GetContact(ctx, id)
	return c, notFound(err)
}

// UpdateContact applies patch to the message with id.
func (s *Service) UpdateContact(ctx context.Context, who Caller, id string, patch Patch) (model.Contact, error) {
	if err := who.require(); err != nil {
		return model.Contact{}, err
	}
	cur, err := s.store.GetContact(ctx, id)
	if err != nil {
		return model.Contact{}, notFound(err)
	}
	c := cur
	if err := patch(&c); err != nil {
		return model.Contact{}, err
	}
	c.ID, c.CreatedAt, c.UpdatedAt = cur.ID, cur.CreatedAt, s.timestamp()
	if err := s.check(c); err != nil {
		return model.Contact{}, err
	}
	if err := s.store.UpdateContact(ctx, c); err != nil {
		return model.Contact{}, fmt.Errorf("update contact: %w", notFound(err))
	}
	return c, nil
}

// DeleteContact removes the message with id.
func (s *Service) DeleteContact(ctx context.Context, who Caller, id string) error {
	if err := who.require(); err != nil {
		return err
	}
	return notFound(s.store.DeleteContact(ctx, id))
}
