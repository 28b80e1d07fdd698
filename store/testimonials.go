package store

import (
	"context"

	"github.com/gokler/sitecms/model"
)

// ListTestimonials returns testimonials, newest first.
func (s *Store) ListTestimonials(ctx context.Context, f model.Filter) ([]model.Testimonial, error) {
	var w where
	if f.Published != nil {
		w.eq("published", *f.Published)
	}
	return selectAll[model.Testimonial](ctx, s.db, `SELECT * FROM testimonials`+w.String()+` ORDER BY created_at DESC, rowid DESC`, w.args...)
}

// GetTestimonial returns a testimonial by id.
func (s *Store) GetTestimonial(ctx context.Context, id string) (model.Testimonial, error) {
	return getOne[model.Testimonial](ctx, s.db, `SELECT * FROM testimonials WHERE id = ?`, id)
}

// InsertTestimonial stores a new testimonial.
func (s *Store) InsertTestimonial(ctx context.Context, t model.Testimonial) error {
	_, err := s.db.NamedExecContext(ctx, `INSERT INTO testimonials
		(id, name, role, company, content, image, rating, published, created_at, updated_at)
		VALUES (:id, :name, :role, :company, :content, :image, :rating, :published, :created_at, :updated_at)`, t)
	return err
}

// UpdateTestimonial overwrites every mutable column of the testimonial with id t.ID.
func (s *Store) UpdateTestimonial(ctx context.Context, t model.Testimonial) error {
	return affectedOne(s.db.NamedExecContext(ctx, `UPDATE testimonials SET
		name = :name, role = :role, company = :company, content = :content, image = :image,
		rating = :rating, published = :published, updated_at = :updated_at
		WHERE id = :id`, t))
}

// DeleteTestimonial removes a testimonial by id.
func (s *Store) DeleteTestimonial(ctx context.Context, id string) error {
	return affectedOne(s.db.ExecContext(ctx, `DELETE FROM testimonials WHERE id = ?`, id))
}
