package store

import (
	"context"

	"github.com/gokler/sitecms/model"
)

// DashboardStats counts the records the admin landing page reports on.
func (s *Store) DashboardStats(ctx context.Context) (model.DashboardStats, error) {
	return getOne[model.DashboardStats](ctx, s.db, `SELECT
		(SELECT COUNT(*) FROM quotes WHERE status = 'new') AS new_quotes,
		(SELECT COUNT(*) FROM contacts WHERE status = 'unread') AS unread_contacts,
		(SELECT COUNT(*) FROM projects) AS total_projects,
		(SELECT COUNT(*) FROM blog_posts) AS total_blog_posts,
		(SELECT COUNT(*) FROM projects WHERE published = 1) AS published_projects,
		(SELECT COUNT(*) FROM blog_posts WHERE published = 1) AS published_blog_posts`)
}

// RecentQuotes returns the newest limit quote requests.
func (s *Store) RecentQuotes(ctx context.Context, limit int) ([]model.Quote, error) {
	return selectAll[model.Quote](ctx, s.db, `SELECT * FROM quotes ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
}

// RecentContacts returns the newest limit contact messages.
func (s *Store) RecentContacts(ctx context.Context, limit int) ([]model.Contact, error) {
	return selectAll[model.Contact](ctx, s.db, `SELECT * FROM contacts ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
}
