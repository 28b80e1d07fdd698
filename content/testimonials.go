package content

import (
	"context"
	"fmt"

	"github.com/gokler/sitecms/model"
)

const defaultRating = 5

// ListTestimonials returns testimonials newest first.
func (s *Service) ListTestimonials(ctx context.Context, who Caller, f model.Filter) ([]model.Testimonial, error) {
	f = visible(who, f)
	items, err := s.store.ListTestimonials(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list testimonials: %w", err)
	}
	return search(items, f.Query, func(t model.Testimonial) []string {
		return []string{t.Name, t.Role, model.Deref(t.Company), t.Content}
	}), nil
}

// GetTestimonial returns a testimonial by id.
func (s *Service) GetTestimonial(ctx context.Context, who Caller, id string) (model.Testimonial, error) {
	t, err := s.store.GetTestimonial(ctx, id)
	if err != nil {
		return model.Testimonial{}, notFound(err)
	}
	if !t.Published && !who.Admin() {
		return model.Testimonial{}, ErrNotFound
	}
	return t, nil
}

// CreateTestimonial stores a new testimonial. Rating defaults to 5.
func (s *Service) CreateTestimonial(ctx context.Context, who Caller, patch Patch) (model.Testimonial, error) {
	if err := who.require(); err != nil {
		return model.Testimonial{}, err
	}
	t := model.Testimonial{Rating: defaultRating}
	if err := patch(&t); err != nil {
		return model.Testimonial{}, err
	}
	now := s.timestamp()
	t.ID = s.newID()
	t.CreatedAt, t.UpdatedAt = now, now
	if t.Rating == 0 {
		t.Rating = defaultRating
	}
	if err := s.check(t); err != nil {
		return model.Testimonial{}, err
	}
	if err := s.store.InsertTestimonial(ctx, t); err != nil {
		return model.Testimonial{}, fmt.Errorf("create testimonial: %w", err)
	}
	return t, nil
}

// UpdateTestimonial applies patch to the testimonial with id.
func (s *Service) UpdateTestimonial(ctx context.Context, who Caller, id string, patch Patch) (model.Testimonial, error) {
	if err := who.require(); err != nil {
		return model.Testimonial{}, err
	}
	cur, err := s.store.GetTestimonial(ctx, id)
	if err != nil {
		return model.Testimonial{}, notFound(err)
	}
	t := cur
	if err := patch(&t); err != nil {
		return model.Testimonial{}, err
	}
	t.ID, t.CreatedAt, t.UpdatedAt = cur.ID, cur.CreatedAt, s.timestamp()
	if err := s.check(t); err != nil {
		return model.Testimonial{}, err
	}
	if err := s.store.UpdateTestimonial(ctx, t); err != nil {
		return model.Testimonial{}, fmt.Errorf("update testimonial: %w", notFound(err))
	}
	return t, nil
}

// DeleteTestimonial removes the testimonial with id.
func (s *Service) DeleteTestimonial(ctx context.Context, who Caller, id string) error {
	if err := who.require(); err != nil {
		return err
	}
	return notFound(s.store.DeleteTestimonial(ctx, id))
}
