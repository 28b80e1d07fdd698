package content

import (
	"context"
	"fmt"

	"github.com/gokler/sitecms/model"
)

// ListGalleryItems returns items by display order, then newest first.
func (s *Service) ListGalleryItems(ctx context.Context, who Caller, f model.Filter) ([]model.GalleryItem, error) {
	f = visible(who, f)
	items, err := s.store.ListGalleryItems(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list gallery: %w", err)
	}
	return search(items, f.Query, func(g model.GalleryItem) []string {
		return []string{g.Title, g.Category}
	}), nil
}

// GetGalleryItem returns an item by id.
func (s *Service) GetGalleryItem(ctx context.Context, who Caller, id string) (model.GalleryItem, error) {
	g, err := s.store.GetGalleryItem(ctx, id)
	if err != nil {
		return model.GalleryItem{}, notFound(err)
	}
	if !g.Published && !who.Admin() {
		return model.GalleryItem{}, ErrNotFound
	}
	return g, nil
}

// CreateGalleryItem stores a new item. Items are published unless patch
// says otherwise.
func (s *Service) CreateGalleryItem(ctx context.Context, who Caller, patch Patch) (model.GalleryItem, error) {
	if err := who.require(); err != nil {
		return model.GalleryItem{}, err
	}
	g := model.GalleryItem{Published: true}
	if err := patch(&g); err != nil {
		return model.GalleryItem{}, err
	}
	now := s.timestamp()
	g.ID = s.newID()
	g.CreatedAt, g.UpdatedAt = now, now
	if err := s.check(g); err != nil {
		return model.GalleryItem{}, err
	}
	if err := s.store.InsertGalleryItem(ctx, g); err != nil {
		return model.GalleryItem{}, fmt.Errorf("create gallery item: %w", err)
	}
	return g, nil
}

// UpdateGalleryItem applies patch to the item with id.
func (s *Service) UpdateGalleryItem(ctx context.Context, who Caller, id string, patch Patch) (model.GalleryItem, error) {
	if err := who.require(); err != nil {
		return model.GalleryItem{}, err
	}
	cur, err := s.store.GetGalleryItem(ctx, id)
	if err != nil {
		return model.GalleryItem{}, notFound(err)
	}
	g := cur
	if err := patch(&g); err != nil {
		return model.GalleryItem{}, err
	}
	g.ID, g.CreatedAt, g.UpdatedAt = cur.ID, cur.CreatedAt, s.timestamp()
	if err := s.check(g); err != nil {
		return model.GalleryItem{}, err
	}
	if err := s.store.UpdateGalleryItem(ctx, g); err != nil {
		return model.GalleryItem{}, fmt.Errorf("update gallery item: %w", notFound(err))
	}
	return g, nil
}

// DeleteGalleryItem removes the item with id.
func (s *Service) DeleteGalleryItem(ctx context.Context, who Caller, id string) error {
	if err := who.require(); err != nil {
		return err
	}
	return notFound(s.store.DeleteGalleryItem(ctx, id))
}
