package store

import (
	"context"

	"github.com/gokler/sitecms/model"
)

// ListProjects returns projects matching the equality parts of f, newest first.
func (s *Store) ListProjects(ctx context.Context, f model.Filter) ([]model.Project, error) {
	var w where
	if f.Published != nil {
		w.eq("published", *f.Published)
	}
	if f.Category != "" {
		w.eq("category", f.Category)
	}
	if f.Status != "" {
		w.eq("status", f.Status)
	}
	return selectAll[model.Project](ctx, s.db, `SELECT * FROM projects`+w.String()+` ORDER BY created_at DESC, rowid DESC`, w.args...)
}

// ListProjectCategories returns the distinct categories of published projects.
func (s *Store) ListProjectCategories(ctx context.Context) ([]string, error) {
	return selectAll[string](ctx, s.db, `SELECT DISTINCT category FROM projects WHERE published = 1 ORDER BY category`)
}

// GetProject returns a project by id regardless of published status.
func (s *Store) GetProject(ctx context.Context, id string) (model.Project, error) {
	return getOne[model.Project](ctx, s.db, `SELECT * FROM projects WHERE id = ?`, id)
}

// GetProjectBySlug returns a project by slug regardless of published status.
func (s *Store) GetProjectBySlug(ctx context.Context, slug string) (model.Project, error) {
	return getOne[model.Project](ctx, s.db, `SELECT * FROM projects WHERE slug = ?`, slug)
}

// ProjectSlugTaken reports whether another project than exceptID uses slug.
func (s *Store) ProjectSlugTaken(ctx context.Context, slug, exceptID string) (bool, error) {
	return exists(ctx, s.db, `SELECT 1 FROM projects WHERE slug = ? AND id != ?`, slug, exceptID)
}

// InsertProject stores a new project.
func (s *Store) InsertProject(ctx context.Context, p model.Project) error {
	_, err := s.db.NamedExecContext(ctx, `INSERT INTO projects
		(id, slug, title, category, location, year, area, client, status, image, gallery,
		 description, features, tags, published, created_at, updated_at)
		VALUES (:id, :slug, :title, :category, :location, :year, :area, :client, :status, :image, :gallery,
		 :description, :features, :tags, :published, :created_at, :updated_at)`, p)
	return err
}

// UpdateProject overwrites every mutable column of the project with id p.ID.
func (s *Store) UpdateProject(ctx context.Context, p model.Project) error {
	return affectedOne(s.db.NamedExecContext(ctx, `UPDATE projects SET
		slug = :slug, title = :title, category = :category, location = :location, year = :year,
		area = :area, client = :client, status = :status, image = :image, gallery = :gallery,
		description = :description, features = :features, tags = :tags, published = :published,
		updated_at = :updated_at
		WHERE id = :id`, p))
}

// DeleteProject removes a project by id.
func (s *Store) DeleteProject(ctx context.Context, id string) error {
	return affectedOne(s.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id))
}
