package store

import (
	"context"

	"github.com/gokler/sitecms/model"
)

// ListGalleryItems returns gallery items by display order, then newest first.
func (s *Store) ListGalleryItems(ctx context.Context, f model.Filter) ([]model.GalleryItem, error) {
	var w where
	if f.Published != nil {
		w.eq("published", *f.Published)
	}
	if f.Category != "" {
		w.eq("category", f.Category)
	}
	return selectAll[model.GalleryItem](ctx, s.db, `SELECT * FROM gallery_items`+w.String()+` ORDER BY sort_order ASC, created_at DESC, rowid DESC`, w.args...)
}

// GetGalleryItem returns a gallery item by id.
func (s *Store) GetGalleryItem(ctx context.Context, id string) (model.GalleryItem, error) {
	return getOne[model.GalleryItem](ctx, s.db, `SELECT * FROM gallery_items WHERE id = ?`, id)
}

// InsertGalleryItem stores a new gallery item.
func (s *Store) InsertGalleryItem(ctx context.Context, g model.GalleryItem) error {
	_, err := s.db.NamedExecContext(ctx, `INSERT INTO gallery_items
		(id, title, category, image, published, sort_order, created_at, updated_at)
		VALUES (:id, :title, :category, :image, :published, :sort_order, :created_at, :updated_at)`, g)
	return err
}

// UpdateGalleryItem overwrites every mutable column of the item with id g.ID.
func (s *Store) UpdateGalleryItem(ctx context.Context, g model.GalleryItem) error {
	return affectedOne(s.db.NamedExecContext(ctx, `UPDATE gallery_items SET
		title = :title, category = :category, image = :image, published = :published,
		sort_order = :sort_order, updated_at = :updated_at
		WHERE id = :id`, g))
}

// DeleteGalleryItem removes a gallery item by id.
func (s *Store) DeleteGalleryItem(ctx context.Context, id string) error {
	return affectedOne(s.db.ExecContext(ctx, `DELETE FROM gallery_items WHERE id = ?`, id))
}
