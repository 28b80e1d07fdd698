package content

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/gokler/sitecms/model"
)

// GetSettings returns the site settings, or ErrNotFound before the first save.
func (s *Service) GetSettings(ctx context.Context) (model.SiteSettings, error) {
	st, err := s.store.GetSiteSettings(ctx)
	return st, notFound(err)
}

// SaveSettings merges patch into the current settings (or an empty record
// on first save) and writes the single row.
func (s *Service) SaveSettings(ctx context.Context, who Caller, patch Patch) (model.SiteSettings, error) {
	if err := who.require(); err != nil {
		return model.SiteSettings{}, err
	}
	st, err := s.store.GetSiteSettings(ctx)
	switch {
	case err == nil:
	case errors.Is(notFound(err), ErrNotFound):
		st = model.SiteSettings{}
	default:
		return model.SiteSettings{}, fmt.Errorf("load settings: %w", err)
	}
	if err := patch(&st); err != nil {
		return model.SiteSettings{}, err
	}
	st.ID = model.SettingsID
	st.UpdatedAt = s.timestamp()
	if err := s.check(st); err != nil {
		return model.SiteSettings{}, err
	}
	if err := s.store.SaveSiteSettings(ctx, st); err != nil {
		return model.SiteSettings{}, fmt.Errorf("save settings: %w", err)
	}
	return st, nil
}

// ListSeo returns the SEO rows of every page that has one.
func (s *Service) ListSeo(ctx context.Context) ([]model.SeoSetting, error) {
	rows, err := s.store.ListSeoSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("list seo settings: %w", err)
	}
	return rows, nil
}

// GetSeo returns the SEO row of page.
func (s *Service) GetSeo(ctx context.Context, page string) (model.SeoSetting, error) {
	st, err := s.store.GetSeoSetting(ctx, page)
	return st, notFound(err)
}

// SaveSeo upserts the SEO row of the page named in patch. Fields patch
// leaves out keep their stored values.
func (s *Service) SaveSeo(ctx context.Context, who Caller, patch Patch) (model.SeoSetting, error) {
	if err := who.require(); err != nil {
		return model.SeoSetting{}, err
	}
	var probe model.SeoSetting
	if err := patch(&probe); err != nil {
		return model.SeoSetting{}, err
	}
	if !slices.Contains(model.SeoPages, probe.Page) {
		return model.SeoSetting{}, invalid("page", "must be one of the site pages")
	}
	st, err := s.store.GetSeoSetting(ctx, probe.Page)
	switch {
	case err == nil:
	case errors.Is(notFound(err), ErrNotFound):
		st = model.SeoSetting{ID: s.newID(), Page: probe.Page}
	default:
		return model.SeoSetting{}, fmt.Errorf("load seo setting: %w", err)
	}
	id := st.ID
	if err := patch(&st); err != nil {
		return model.SeoSetting{}, err
	}
	st.ID, st.UpdatedAt = id, s.timestamp()
	if err := s.check(st); err != nil {
		return model.SeoSetting{}, err
	}
	if err := s.store.UpsertSeoSetting(ctx, st); err != nil {
		return model.SeoSetting{}, fmt.Errorf("save seo setting: %w", err)
	}
	return st, nil
}

// DeleteSeo removes the SEO row of page.
func (s *Service) DeleteSeo(ctx context.Context, who Caller, page string) error {
	if err := who.require(); err != nil {
		return err
	}
	return notFound(s.store.DeleteSeoSetting(ctx, page))
}

// Dashboard returns the counters and recent submissions for the admin
// landing page.
func (s *Service) Dashboard(ctx context.Context, who Caller) (model.Dashboard, error) {
	if err := who.require(); err != nil {
		return model.Dashboard{}, err
	}
	stats, err := s.store.DashboardStats(ctx)
	if err != nil {
		return model.Dashboard{}, fmt.Errorf("dashboard stats: %w", err)
	}
	quotes, err := s.store.RecentQuotes(ctx, 5)
	if err != nil {
		return model.Dashboard{}, fmt.Errorf("recent quotes: %w", err)
	}
	contacts, err := s.store.RecentContacts(ctx, 5)
	if err != nil {
		return model.Dashboard{}, fmt.Errorf("recent contacts: %w", err)
	}
	return model.Dashboard{Stats: stats, RecentQuotes: quotes, RecentContacts: contacts}, nil
}
