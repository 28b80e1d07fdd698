package store

import (
	"context"

	"github.com/gokler/sitecms/model"
)

// GetSiteSettings returns the settings row, or sql.ErrNoRows if none was saved yet.
func (s *Store) GetSiteSettings(ctx context.Context) (model.SiteSettings, error) {
	return getOne[model.SiteSettings](ctx, s.db, `SELECT * FROM site_settings WHERE id = ?`, model.SettingsID)
}

// SaveSiteSettings writes the single settings row in one statement, so two
// first saves cannot produce two rows.
func (s *Store) SaveSiteSettings(ctx context.Context, st model.SiteSettings) error {
	st.ID = model.SettingsID
	_, err := s.db.NamedExecContext(ctx, `INSERT INTO site_settings
		(id, company_name, phone, phone2, email, email2, address, map_url,
		 facebook, instagram, twitter, linkedin, youtube, updated_at)
		VALUES (:id, :company_name, :phone, :phone2, :email, :email2, :address, :map_url,
		 :facebook, :instagram, :twitter, :linkedin, :youtube, :updated_at)
		ON CONFLICT(id) DO UPDATE SET
		 company_name = excluded.company_name, phone = excluded.phone, phone2 = excluded.phone2,
		 email = excluded.email, email2 = excluded.email2, address = excluded.address,
		 map_url = excluded.map_url, facebook = excluded.facebook, instagram = excluded.instagram,
		 twitter = excluded.twitter, linkedin = excluded.linkedin, youtube = excluded.youtube,
		 updated_at = excluded.updated_at`, st)
	return err
}

// CountSiteSettings returns the number of settings rows.
func (s *Store) CountSiteSettings(ctx context.Context) (int, error) {
	return getOne[int](ctx, s.db, `SELECT COUNT(*) FROM site_settings`)
}
