package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/gokler/sitecms/model"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "data", "test.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testPost(id, slug string, published bool, created time.Time) model.BlogPost {
	return model.BlogPost{
		ID:        id,
		Slug:      slug,
		Title:     "Title " + id,
		Excerpt:   "Excerpt",
		Content:   "## Heading\n\nBody",
		Author:    "Mehmet",
		Category:  "Sektör",
		ReadTime:  "5 dk",
		Published: published,
		CreatedAt: created,
		UpdatedAt: created,
	}
}

func TestOpen(t *testing.T) {
	s := setupTestStore(t)
	if s.db == nil {
		t.Fatal("db should not be nil")
	}
	if err := s.Ping(context.Background()); err != nil {
		t.Fatalf("Ping failed: %v", err)
	}
}

func TestInsertAndGetBlogPost(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	post := testPost("p1", "first-post", true, now)
	if err := s.InsertBlogPost(ctx, post); err != nil {
		t.Fatalf("InsertBlogPost failed: %v", err)
	}

	got, err := s.GetBlogPost(ctx, "p1")
	if err != nil {
		t.Fatalf("GetBlogPost failed: %v", err)
	}
	if got.Slug != post.Slug || got.Title != post.Title || got.Content != post.Content {
		t.Errorf("got %+v, want %+v", got, post)
	}
	if !got.Published {
		t.Error("Published should be true")
	}
	if !got.CreatedAt.Equal(now) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, now)
	}

	bySlug, err := s.GetBlogPostBySlug(ctx, "first-post")
	if err != nil {
		t.Fatalf("GetBlogPostBySlug failed: %v", err)
	}
	if bySlug.ID != "p1" {
		t.Errorf("ID = %q, want p1", bySlug.ID)
	}
}

func TestGetBlogPostNotFound(t *testing.T) {
	s := setupTestStore(t)
	_, err := s.GetBlogPost(context.Background(), "missing")
	if err != sql.ErrNoRows {
		t.Errorf("expected sql.ErrNoRows, got %v", err)
	}
}

func TestListBlogPostsFilterAndOrder(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	posts := []model.BlogPost{
		testPost("a", "a", true, base),
		testPost("b", "b", false, base.Add(time.Hour)),
		testPost("c", "c", true, base.Add(2*time.Hour)),
	}
	posts[2].Category = "Teknoloji"
	for _, p := range posts {
		if err := s.InsertBlogPost(ctx, p); err != nil {
			t.Fatalf("InsertBlogPost failed: %v", err)
		}
	}

	all, err := s.ListBlogPosts(ctx, model.Filter{})
	if err != nil {
		t.Fatalf("ListBlogPosts failed: %v", err)
	}
	if ids := blogIDs(all); !reflect.DeepEqual(ids, []string{"c", "b", "a"}) {
		t.Errorf("order = %v, want [c b a]", ids)
	}

	published, err := s.ListBlogPosts(ctx, model.Filter{Published: model.Ptr(true)})
	if err != nil {
		t.Fatalf("ListBlogPosts failed: %v", err)
	}
	if ids := blogIDs(published); !reflect.DeepEqual(ids, []string{"c", "a"}) {
		t.Errorf("published = %v, want [c a]", ids)
	}

	byCategory, err := s.ListBlogPosts(ctx, model.Filter{Category: "Teknoloji"})
	if err != nil {
		t.Fatalf("ListBlogPosts failed: %v", err)
	}
	if ids := blogIDs(byCategory); !reflect.DeepEqual(ids, []string{"c"}) {
		t.Errorf("by category = %v, want [c]", ids)
	}

	none, err := s.ListBlogPosts(ctx, model.Filter{Category: "missing"})
	if err != nil {
		t.Fatalf("ListBlogPosts failed: %v", err)
	}
	if none == nil || len(none) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", none)
	}
}

func blogIDs(posts []model.BlogPost) []string {
	ids := make([]string, len(posts))
	for i, p := range posts {
		ids[i] = p.ID
	}
	return ids
}

func TestDuplicateSlugIsUniqueViolation(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	if err := s.InsertBlogPost(ctx, testPost("p1", "same", true, now)); err != nil {
		t.Fatalf("InsertBlogPost failed: %v", err)
	}
	err := s.InsertBlogPost(ctx, testPost("p2", "same", true, now))
	if !IsUniqueViolation(err) {
		t.Fatalf("expected unique violation, got %v", err)
	}

	taken, err := s.BlogSlugTaken(ctx, "same", "p2")
	if err != nil {
		t.Fatalf("BlogSlugTaken failed: %v", err)
	}
	if !taken {
		t.Error("slug should be taken by p1")
	}
	taken, err = s.BlogSlugTaken(ctx, "same", "p1")
	if err != nil {
		t.Fatalf("BlogSlugTaken failed: %v", err)
	}
	if taken {
		t.Error("slug should not count as taken by its own post")
	}
}

func TestUpdateAndDeleteMissingRow(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	if err := s.UpdateBlogPost(ctx, testPost("ghost", "ghost", true, time.Now())); err != sql.ErrNoRows {
		t.Errorf("UpdateBlogPost on missing row = %v, want sql.ErrNoRows", err)
	}
	if err := s.DeleteQuote(ctx, "ghost"); err != sql.ErrNoRows {
		t.Errorf("DeleteQuote on missing row = %v, want sql.ErrNoRows", err)
	}
}

func TestProjectArrayColumnsRoundTrip(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	p := model.Project{
		ID: "pr1", Slug: "villa", Title: "Villa", Category: "Konut", Location: "Konya",
		Status: model.ProjectOngoing, Description: "d",
		Gallery:  model.StringList{"/a.jpg", "/b.jpg"},
		Features: model.StringList{"Havuz"},
		Tags:     model.StringList{"A", "B"},
		CreatedAt: now, UpdatedAt: now,
	}
	if err := s.InsertProject(ctx, p); err != nil {
		t.Fatalf("InsertProject failed: %v", err)
	}
	got, err := s.GetProject(ctx, "pr1")
	if err != nil {
		t.Fatalf("GetProject failed: %v", err)
	}
	if !reflect.DeepEqual(got.Tags, p.Tags) || !reflect.DeepEqual(got.Gallery, p.Gallery) || !reflect.DeepEqual(got.Features, p.Features) {
		t.Errorf("arrays = %v %v %v, want %v %v %v", got.Gallery, got.Features, got.Tags, p.Gallery, p.Features, p.Tags)
	}

	// A corrupted column must not break reads.
	if _, err := s.db.Exec(`UPDATE projects SET tags = 'not json' WHERE id = 'pr1'`); err != nil {
		t.Fatalf("corrupt tags: %v", err)
	}
	got, err = s.GetProject(ctx, "pr1")
	if err != nil {
		t.Fatalf("GetProject after corruption failed: %v", err)
	}
	if len(got.Tags) != 0 {
		t.Errorf("Tags = %v, want empty", got.Tags)
	}
}

func TestGalleryOrdering(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	items := []model.GalleryItem{
		{ID: "g1", Title: "1", Category: "c", Image: "i", Published: true, Order: 2, CreatedAt: base, UpdatedAt: base},
		{ID: "g2", Title: "2", Category: "c", Image: "i", Published: true, Order: 1, CreatedAt: base, UpdatedAt: base},
		{ID: "g3", Title: "3", Category: "c", Image: "i", Published: true, Order: 1, CreatedAt: base.Add(time.Minute), UpdatedAt: base},
	}
	for _, g := range items {
		if err := s.InsertGalleryItem(ctx, g); err != nil {
			t.Fatalf("InsertGalleryItem failed: %v", err)
		}
	}
	got, err := s.ListGalleryItems(ctx, model.Filter{})
	if err != nil {
		t.Fatalf("ListGalleryItems failed: %v", err)
	}
	var ids []string
	for _, g := range got {
		ids = append(ids, g.ID)
	}
	if !reflect.DeepEqual(ids, []string{"g3", "g2", "g1"}) {
		t.Errorf("order = %v, want [g3 g2 g1]", ids)
	}
}

func TestSaveSiteSettingsKeepsOneRow(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	if _, err := s.GetSiteSettings(ctx); err != sql.ErrNoRows {
		t.Fatalf("expected sql.ErrNoRows before first save, got %v", err)
	}

	first := model.SiteSettings{CompanyName: "Gökler", Phone: "1", Email: "a@b.com", Address: "Konya", UpdatedAt: time.Now()}
	second := model.SiteSettings{CompanyName: "Gökler İnşaat", Phone: "2", Email: "c@d.com", Address: "Ankara", Facebook: model.Ptr("fb"), UpdatedAt: time.Now()}
	if err := s.SaveSiteSettings(ctx, first); err != nil {
		t.Fatalf("SaveSiteSettings failed: %v", err)
	}
	if err := s.SaveSiteSettings(ctx, second); err != nil {
		t.Fatalf("SaveSiteSettings failed: %v", err)
	}

	n, err := s.CountSiteSettings(ctx)
	if err != nil {
		t.Fatalf("CountSiteSettings failed: %v", err)
	}
	if n != 1 {
		t.Errorf("row count = %d, want 1", n)
	}
	got, err := s.GetSiteSettings(ctx)
	if err != nil {
		t.Fatalf("GetSiteSettings failed: %v", err)
	}
	if got.CompanyName != "Gökler İnşaat" || got.Address != "Ankara" || model.Deref(got.Facebook) != "fb" {
		t.Errorf("settings = %+v, want second payload", got)
	}
}

func TestGetSiteSettingsNotFoundIsZero(t *testing.T) {
	s := setupTestStore(t)

	got, err := s.GetSiteSettings(context.Background())
	if err != sql.ErrNoRows {
		t.Fatalf("expected sql.ErrNoRows, got %v", err)
	}
	if !reflect.DeepEqual(got, model.SiteSettings{}) {
		t.Errorf("settings = %+v, want zero value", got)
	}
	if got.Email2 != nil || got.Phone2 != nil || got.MapURL != nil {
		t.Errorf("optional fields allocated on a missing row: %+v", got)
	}
}

func TestUpsertSeoSettingKeepsID(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	if err := s.UpsertSeoSetting(ctx, model.SeoSetting{ID: "s1", Page: "home", Title: "T1", Description: "D1", UpdatedAt: time.Now()}); err != nil {
		t.Fatalf("UpsertSeoSetting failed: %v", err)
	}
	if err := s.UpsertSeoSetting(ctx, model.SeoSetting{ID: "s2", Page: "home", Title: "T2", Description: "D2", UpdatedAt: time.Now()}); err != nil {
		t.Fatalf("UpsertSeoSetting failed: %v", err)
	}
	all, err := s.ListSeoSettings(ctx)
	if err != nil {
		t.Fatalf("ListSeoSettings failed: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("rows = %d, want 1", len(all))
	}
	if all[0].ID != "s1" || all[0].Title != "T2" {
		t.Errorf("row = %+v, want id s1 with title T2", all[0])
	}
}

func TestDashboardStats(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	if err := s.InsertBlogPost(ctx, testPost("p1", "p1", true, now)); err != nil {
		t.Fatal(err)
	}
	if err := s.InsertBlogPost(ctx, testPost("p2", "p2", false, now)); err != nil {
		t.Fatal(err)
	}
	q := model.Quote{ID: "q1", Name: "Ali", Email: "ali@x.com", Phone: "555", ProjectType: "Konut", Budget: "1M", Location: "Konya", Status: model.QuoteNew, CreatedAt: now, UpdatedAt: now}
	if err := s.InsertQuote(ctx, q); err != nil {
		t.Fatal(err)
	}

	stats, err := s.DashboardStats(ctx)
	if err != nil {
		t.Fatalf("DashboardStats failed: %v", err)
	}
	want := model.DashboardStats{NewQuotes: 1, TotalBlogPosts: 2, PublishedBlogPosts: 1}
	if stats != want {
		t.Errorf("stats = %+v, want %+v", stats, want)
	}
	recent, err := s.RecentQuotes(ctx, 5)
	if err != nil {
		t.Fatalf("RecentQuotes failed: %v", err)
	}
	if len(recent) != 1 || recent[0].ID != "q1" {
		t.Errorf("recent = %+v", recent)
	}
}
