package store

import (
	"context"

	"github.com/gokler/sitecms/model"
)

// ListSeoSettings returns every page's SEO row ordered by page.
func (s *Store) ListSeoSettings(ctx context.Context) ([]model.SeoSetting, error) {
	return selectAll[model.SeoSetting](ctx, s.db, `SELECT * FROM seo_settings ORDER BY page`)
}

// GetSeoSetting returns the SEO row of page.
func (s *Store) GetSeoSetting(ctx context.Context, page string) (model.SeoSetting, error) {
	return getOne[model.SeoSetting](ctx, s.db, `SELECT * FROM seo_settings WHERE page = ?`, page)
}

// UpsertSeoSetting inserts or replaces the row keyed by st.Page. An existing
// row keeps its id.
func (s *Store) UpsertSeoSetting(ctx context.Context, st model.SeoSetting) error {
	_, err := s.db.NamedExecContext(ctx, `INSERT INTO seo_settings
		(id, page, title, description, keywords, og_image, updated_at)
		VALUES (:id, :page, :title, :description, :keywords, :og_image, :updated_at)
		ON CONFLICT(page) DO UPDATE SET
		 title = excluded.title, description = excluded.description,
		 keywords = excluded.keywords, og_image = excluded.og_image,
		 updated_at = excluded.updated_at`, st)
	return err
}

// DeleteSeoSetting removes the SEO row of page.
func (s *Store) DeleteSeoSetting(ctx context.Context, page string) error {
	return affectedOne(s.db.ExecContext(ctx, `DELETE FROM seo_settings WHERE page = ?`, page))
}
