package store

import (
	"context"

	"github.com/gokler/sitecms/model"
)

const blogOrder = " ORDER BY created_at DESC, rowid DESC"

// ListBlogPosts returns posts matching the equality parts of f, newest first.
func (s *Store) ListBlogPosts(ctx context.Context, f model.Filter) ([]model.BlogPost, error) {
	var w where
	if f.Published != nil {
		w.eq("published", *f.Published)
	}
	if f.Category != "" {
		w.eq("category", f.Category)
	}
	return selectAll[model.BlogPost](ctx, s.db, `SELECT * FROM blog_posts`+w.String()+blogOrder, w.args...)
}

// GetBlogPost returns a post by id regardless of published status.
func (s *Store) GetBlogPost(ctx context.Context, id string) (model.BlogPost, error) {
	return getOne[model.BlogPost](ctx, s.db, `SELECT * FROM blog_posts WHERE id = ?`, id)
}

// GetBlogPostBySlug returns a post by slug regardless of published status.
func (s *Store) GetBlogPostBySlug(ctx context.Context, slug string) (model.BlogPost, error) {
	return getOne[model.BlogPost](ctx, s.db, `SELECT * FROM blog_posts WHERE slug = ?`, slug)
}

// BlogSlugTaken reports whether another post than exceptID uses slug.
func (s *Store) BlogSlugTaken(ctx context.Context, slug, exceptID string) (bool, error) {
	return exists(ctx, s.db, `SELECT 1 FROM blog_posts WHERE slug = ? AND id != ?`, slug, exceptID)
}

// InsertBlogPost stores a new post.
func (s *Store) InsertBlogPost(ctx context.Context, p model.BlogPost) error {
	_, err := s.db.NamedExecContext(ctx, `INSERT INTO blog_posts
		(id, slug, title, excerpt, content, image, author, category, read_time, published, created_at, updated_at)
		VALUES (:id, :slug, :title, :excerpt, :content, :image, :author, :category, :read_time, :published, :created_at, :updated_at)`, p)
	return err
}

// UpdateBlogPost overwrites every mutable column of the post with id p.ID.
func (s *Store) UpdateBlogPost(ctx context.Context, p model.BlogPost) error {
	return affectedOne(s.db.NamedExecContext(ctx, `UPDATE blog_posts SET
		slug = :slug, title = :title, excerpt = :excerpt, content = :content, image = :image,
		author = :author, category = :category, read_time = :read_time, published = :published,
		updated_at = :updated_at
		WHERE id = :id`, p))
}

// DeleteBlogPost removes a post by id.
func (s *Store) DeleteBlogPost(ctx context.Context, id string) error {
	return affectedOne(s.db.ExecContext(ctx, `DELETE FROM blog_posts WHERE id = ?`, id))
}
