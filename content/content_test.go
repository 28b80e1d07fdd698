package content

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/gokler/sitecms/model"
	"github.com/gokler/sitecms/store"
)

var admin = Caller{UserID: "u1", Email: "admin@example.com", Role: RoleAdmin}

func setupService(t *testing.T) *Service {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "site.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	// Strictly increasing clock so ordering by creation time is stable.
	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	tick := 0
	clock := func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}
	return New(st, WithClock(clock), WithBcryptCost(bcrypt.MinCost))
}

func fields(kv map[string]any) Patch { return FieldsPatch(kv) }

func blogFields(title string, published bool) Patch {
	return fields(map[string]any{
		"title":     title,
		"excerpt":   "Kısa özet",
		"content":   "## Başlık\n\nMetin",
		"author":    "Mehmet Gökler",
		"category":  "Sektör",
		"published": published,
	})
}

func projectFields(title string, published bool) Patch {
	return fields(map[string]any{
		"title":       title,
		"category":    "Konut",
		"location":    "Konya",
		"description": "Açıklama",
		"published":   published,
		"tags":        []string{"A", "B"},
	})
}

func TestAnonymousListSeesOnlyPublished(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	for i, pub := range []bool{true, false, true} {
		if _, err := svc.CreateBlogPost(ctx, admin, blogFields("Yazı "+string(rune('A'+i)), pub)); err != nil {
			t.Fatalf("CreateBlogPost failed: %v", err)
		}
		if _, err := svc.CreateProject(ctx, admin, projectFields("Proje "+string(rune('A'+i)), pub)); err != nil {
			t.Fatalf("CreateProject failed: %v", err)
		}
		if _, err := svc.CreateTestimonial(ctx, admin, fields(map[string]any{
			"name": "Ayşe", "role": "Ev sahibi", "content": "Harika", "published": pub,
		})); err != nil {
			t.Fatalf("CreateTestimonial failed: %v", err)
		}
		if _, err := svc.CreateGalleryItem(ctx, admin, fields(map[string]any{
			"title": "Foto", "category": "Konut", "image": "/x.jpg", "published": pub,
		})); err != nil {
			t.Fatalf("CreateGalleryItem failed: %v", err)
		}
	}

	// Even an explicit published=false filter cannot widen an anonymous list.
	hidden := model.Filter{Published: model.Ptr(false)}

	posts, err := svc.ListBlogPosts(ctx, Anonymous, hidden)
	if err != nil {
		t.Fatalf("ListBlogPosts failed: %v", err)
	}
	projects, err := svc.ListProjects(ctx, Anonymous, hidden)
	if err != nil {
		t.Fatalf("ListProjects failed: %v", err)
	}
	testimonials, err := svc.ListTestimonials(ctx, Anonymous, hidden)
	if err != nil {
		t.Fatalf("ListTestimonials failed: %v", err)
	}
	gallery, err := svc.ListGalleryItems(ctx, Anonymous, hidden)
	if err != nil {
		t.Fatalf("ListGalleryItems failed: %v", err)
	}
	for name, n := range map[string]int{"blog": len(posts), "projects": len(projects), "testimonials": len(testimonials), "gallery": len(gallery)} {
		if n != 2 {
			t.Errorf("anonymous %s count = %d, want 2", name, n)
		}
	}

	allPosts, err := svc.ListBlogPosts(ctx, admin, model.Filter{})
	if err != nil {
		t.Fatalf("ListBlogPosts failed: %v", err)
	}
	if len(allPosts) != 3 {
		t.Errorf("admin count = %d, want 3", len(allPosts))
	}
	drafts, err := svc.ListBlogPosts(ctx, admin, hidden)
	if err != nil {
		t.Fatalf("ListBlogPosts failed: %v", err)
	}
	if len(drafts) != 1 || drafts[0].Published {
		t.Errorf("admin drafts = %+v, want one draft", drafts)
	}
	if allPosts[0].Title != "Yazı C" {
		t.Errorf("first post = %q, want newest (Yazı C)", allPosts[0].Title)
	}
}

func TestCreateDerivesSlug(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	p, err := svc.CreateBlogPost(ctx, admin, blogFields("2024 İnşaat Sektörü Trendleri", true))
	if err != nil {
		t.Fatalf("CreateBlogPost failed: %v", err)
	}
	if p.Slug != "2024-insaat-sektoru-trendleri" {
		t.Errorf("Slug = %q", p.Slug)
	}
	if p.ReadTime != "5 dk" {
		t.Errorf("ReadTime = %q, want default", p.ReadTime)
	}

	again, err := svc.CreateBlogPost(ctx, admin, blogFields("2024 İnşaat Sektörü Trendleri", true))
	if err != nil {
		t.Fatalf("CreateBlogPost failed: %v", err)
	}
	if again.Slug != "2024-insaat-sektoru-trendleri-2" {
		t.Errorf("Slug = %q, want suffixed", again.Slug)
	}

	pr, err := svc.CreateProject(ctx, admin, fields(map[string]any{
		"slug": "Custom_Slug", "title": "Başka", "category": "Ofis", "location": "Konya", "description": "d",
	}))
	if err != nil {
		t.Fatalf("CreateProject failed: %v", err)
	}
	if pr.Slug != "Custom_Slug" {
		t.Errorf("explicit slug = %q, want verbatim", pr.Slug)
	}
	if pr.Status != model.ProjectOngoing || pr.Published {
		t.Errorf("defaults = status %q published %v", pr.Status, pr.Published)
	}
}

func TestExplicitSlugCollisionConflicts(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	if _, err := svc.CreateProject(ctx, admin, fields(map[string]any{
		"slug": "villa", "title": "Villa", "category": "Konut", "location": "Konya", "description": "d",
	})); err != nil {
		t.Fatalf("CreateProject failed: %v", err)
	}
	_, err := svc.CreateProject(ctx, admin, fields(map[string]any{
		"slug": "villa", "title": "Villa 2", "category": "Konut", "location": "Konya", "description": "d",
	}))
	if !errors.Is(err, ErrConflict) {
		t.Errorf("err = %v, want ErrConflict", err)
	}
}

func TestUpdateChangesOnlyGivenField(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	orig, err := svc.CreateProject(ctx, admin, projectFields("Yeşil Vadi Evleri", false))
	if err != nil {
		t.Fatalf("CreateProject failed: %v", err)
	}
	if _, err := svc.UpdateProject(ctx, admin, orig.ID, JSONPatch([]byte(`{"location":"Ankara"}`))); err != nil {
		t.Fatalf("UpdateProject failed: %v", err)
	}
	got, err := svc.GetProject(ctx, admin, orig.ID)
	if err != nil {
		t.Fatalf("GetProject failed: %v", err)
	}
	if got.Location != "Ankara" {
		t.Errorf("Location = %q, want Ankara", got.Location)
	}
	want := orig
	want.Location = "Ankara"
	want.UpdatedAt, got.UpdatedAt = time.Time{}, time.Time{}
	if !want.CreatedAt.Equal(got.CreatedAt) {
		t.Errorf("CreatedAt changed: %v -> %v", want.CreatedAt, got.CreatedAt)
	}
	want.CreatedAt, got.CreatedAt = time.Time{}, time.Time{}
	if !reflect.DeepEqual(want, got) {
		t.Errorf("after update\n got %+v\nwant %+v", got, want)
	}
}

func TestUpdateCannotRewriteServerFields(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	orig, err := svc.CreateBlogPost(ctx, admin, blogFields("Başlık", true))
	if err != nil {
		t.Fatalf("CreateBlogPost failed: %v", err)
	}
	got, err := svc.UpdateBlogPost(ctx, admin, orig.ID, JSONPatch([]byte(`{"id":"other","createdAt":"2000-01-01T00:00:00Z"}`)))
	if err != nil {
		t.Fatalf("UpdateBlogPost failed: %v", err)
	}
	if got.ID != orig.ID || !got.CreatedAt.Equal(orig.CreatedAt) {
		t.Errorf("server fields changed: %+v", got)
	}
}

func TestDeleteThenGetIsNotFound(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	g, err := svc.CreateGalleryItem(ctx, admin, fields(map[string]any{"title": "t", "category": "c", "image": "/i.jpg"}))
	if err != nil {
		t.Fatalf("CreateGalleryItem failed: %v", err)
	}
	if !g.Published {
		t.Error("gallery items should default to published")
	}
	if err := svc.DeleteGalleryItem(ctx, admin, g.ID); err != nil {
		t.Fatalf("DeleteGalleryItem failed: %v", err)
	}
	if _, err := svc.GetGalleryItem(ctx, admin, g.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("get after delete = %v, want ErrNotFound", err)
	}
	if err := svc.DeleteGalleryItem(ctx, admin, g.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete = %v, want ErrNotFound", err)
	}
}

func TestTagsRoundTrip(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	p, err := svc.CreateProject(ctx, admin, projectFields("Etiketli", true))
	if err != nil {
		t.Fatalf("CreateProject failed: %v", err)
	}
	got, err := svc.GetProject(ctx, Anonymous, p.Slug)
	if err != nil {
		t.Fatalf("GetProject by slug failed: %v", err)
	}
	if !reflect.DeepEqual([]string(got.Tags), []string{"A", "B"}) {
		t.Errorf("Tags = %v, want [A B]", got.Tags)
	}
	if got.Gallery == nil || got.Features == nil {
		t.Error("absent lists should read back as empty, not nil")
	}
}

func TestQuoteIntakeAndStatusChange(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	q, err := svc.SubmitQuote(ctx, JSONPatch([]byte(`{
		"name":"Ali","email":"ali@x.com","phone":"555","projectType":"Konut İnşaatı",
		"budget":"1-2M","location":"Konya","status":"closed","notes":"sneaky"}`)))
	if err != nil {
		t.Fatalf("SubmitQuote failed: %v", err)
	}
	if q.Status != model.QuoteNew {
		t.Errorf("Status = %q, want new", q.Status)
	}
	if q.Notes != nil {
		t.Errorf("Notes = %q, want nil", *q.Notes)
	}

	if _, err := svc.UpdateQuote(ctx, admin, q.ID, JSONPatch([]byte(`{"status":"closed"}`))); err != nil {
		t.Fatalf("UpdateQuote failed: %v", err)
	}
	got, err := svc.GetQuote(ctx, admin, q.ID)
	if err != nil {
		t.Fatalf("GetQuote failed: %v", err)
	}
	if got.Status != model.QuoteClosed {
		t.Errorf("Status = %q, want closed", got.Status)
	}

	if _, err := svc.UpdateQuote(ctx, admin, q.ID, JSONPatch([]byte(`{"status":"archived"}`))); err == nil {
		t.Error("expected validation error for unknown status")
	}
}

func TestContactIntakeForcesUnread(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	c, err := svc.SubmitContact(ctx, fields(map[string]any{
		"name": "Zeynep", "email": "z@example.com", "subject": "Bilgi", "message": "Merhaba", "status": "replied",
	}))
	if err != nil {
		t.Fatalf("SubmitContact failed: %v", err)
	}
	if c.Status != model.ContactUnread {
		t.Errorf("Status = %q, want unread", c.Status)
	}
	if _, err := svc.ListContacts(ctx, Anonymous, model.Filter{}); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("anonymous ListContacts = %v, want ErrUnauthorized", err)
	}
}

func TestSubmitQuoteValidates(t *testing.T) {
	svc := setupService(t)
	_, err := svc.SubmitQuote(context.Background(), fields(map[string]any{"name": "Ali", "email": "not-an-email"}))
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
	for _, f := range []string{"email", "phone", "projectType", "budget", "location"} {
		if _, ok := verr.Fields[f]; !ok {
			t.Errorf("missing validation message for %s in %v", f, verr.Fields)
		}
	}
}

func TestSaveSettingsTwiceKeepsOneRow(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	if _, err := svc.GetSettings(ctx); !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetSettings before save = %v, want ErrNotFound", err)
	}
	if _, err := svc.SaveSettings(ctx, admin, fields(map[string]any{
		"companyName": "Gökler", "phone": "1", "email": "a@b.com", "address": "Konya",
	})); err != nil {
		t.Fatalf("SaveSettings failed: %v", err)
	}
	if _, err := svc.SaveSettings(ctx, admin, fields(map[string]any{
		"companyName": "Gökler İnşaat", "phone": "2", "email": "c@d.com", "address": "Ankara",
	})); err != nil {
		t.Fatalf("SaveSettings failed: %v", err)
	}
	n, err := svc.store.CountSiteSettings(ctx)
	if err != nil {
		t.Fatalf("CountSiteSettings failed: %v", err)
	}
	if n != 1 {
		t.Errorf("rows = %d, want 1", n)
	}
	got, err := svc.GetSettings(ctx)
	if err != nil {
		t.Fatalf("GetSettings failed: %v", err)
	}
	if got.CompanyName != "Gökler İnşaat" || got.Phone != "2" || got.Email != "c@d.com" || got.Address != "Ankara" {
		t.Errorf("settings = %+v, want second payload", got)
	}
	if got.Email2 != nil || got.Phone2 != nil || got.MapURL != nil || got.Facebook != nil {
		t.Errorf("fields left out of the payload should stay null: %+v", got)
	}
}

func TestAnonymousMutationsAreRejected(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	p, err := svc.CreateBlogPost(ctx, admin, blogFields("Korunan", true))
	if err != nil {
		t.Fatalf("CreateBlogPost failed: %v", err)
	}

	checks := map[string]error{}
	_, checks["create blog"] = svc.CreateBlogPost(ctx, Anonymous, blogFields("x", true))
	_, checks["update blog"] = svc.UpdateBlogPost(ctx, Anonymous, p.ID, fields(map[string]any{"title": "hacked"}))
	checks["delete blog"] = svc.DeleteBlogPost(ctx, Anonymous, p.ID)
	_, checks["create project"] = svc.CreateProject(ctx, Anonymous, projectFields("x", true))
	_, checks["save settings"] = svc.SaveSettings(ctx, Anonymous, fields(map[string]any{"companyName": "x"}))
	_, checks["save seo"] = svc.SaveSeo(ctx, Anonymous, fields(map[string]any{"page": "home", "title": "t", "description": "d"}))
	_, checks["dashboard"] = svc.Dashboard(ctx, Anonymous)
	for name, err := range checks {
		if !errors.Is(err, ErrUnauthorized) {
			t.Errorf("%s: err = %v, want ErrUnauthorized", name, err)
		}
	}

	got, err := svc.GetBlogPost(ctx, admin, p.ID)
	if err != nil {
		t.Fatalf("GetBlogPost failed: %v", err)
	}
	if got.Title != "Korunan" {
		t.Errorf("Title = %q, store was mutated", got.Title)
	}
	all, err := svc.ListBlogPosts(ctx, admin, model.Filter{})
	if err != nil {
		t.Fatalf("ListBlogPosts failed: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("posts = %d, want 1", len(all))
	}
}

func TestSearchWithNoMatchesIsEmpty(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	if _, err := svc.CreateProject(ctx, admin, projectFields("Şehir Konutları", true)); err != nil {
		t.Fatalf("CreateProject failed: %v", err)
	}
	none, err := svc.ListProjects(ctx, admin, model.Filter{Query: "zzz-nothing"})
	if err != nil {
		t.Fatalf("ListProjects failed: %v", err)
	}
	if none == nil || len(none) != 0 {
		t.Errorf("got %#v, want empty non-nil slice", none)
	}

	hits, err := svc.ListProjects(ctx, admin, model.Filter{Query: "sehir"})
	if err != nil {
		t.Fatalf("ListProjects failed: %v", err)
	}
	if len(hits) != 1 {
		t.Errorf("diacritic-insensitive search hits = %d, want 1", len(hits))
	}
}

func TestDraftHiddenFromAnonymousGet(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	p, err := svc.CreateBlogPost(ctx, admin, blogFields("Taslak", false))
	if err != nil {
		t.Fatalf("CreateBlogPost failed: %v", err)
	}
	if _, err := svc.GetBlogPost(ctx, Anonymous, p.Slug); !errors.Is(err, ErrNotFound) {
		t.Errorf("anonymous get draft = %v, want ErrNotFound", err)
	}
	if _, err := svc.GetBlogPost(ctx, admin, p.Slug); err != nil {
		t.Errorf("admin get draft failed: %v", err)
	}
}

func TestSaveSeoUpsertsByPage(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	first, err := svc.SaveSeo(ctx, admin, fields(map[string]any{"page": "home", "title": "Ana Sayfa", "description": "d1", "keywords": "inşaat"}))
	if err != nil {
		t.Fatalf("SaveSeo failed: %v", err)
	}
	second, err := svc.SaveSeo(ctx, admin, fields(map[string]any{"page": "home", "title": "Yeni"}))
	if err != nil {
		t.Fatalf("SaveSeo failed: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("ID changed: %q -> %q", first.ID, second.ID)
	}
	if second.Description != "d1" || model.Deref(second.Keywords) != "inşaat" {
		t.Errorf("unmentioned fields lost: %+v", second)
	}
	if _, err := svc.SaveSeo(ctx, admin, fields(map[string]any{"page": "nope", "title": "t", "description": "d"})); err == nil {
		t.Error("expected validation error for unknown page")
	}
}

func TestAuthenticate(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	created, err := svc.EnsureAdmin(ctx, "Admin@Example.com", "correct-horse")
	if err != nil {
		t.Fatalf("EnsureAdmin failed: %v", err)
	}
	if !created {
		t.Fatal("EnsureAdmin should create the first account")
	}
	if created, _ := svc.EnsureAdmin(ctx, "other@example.com", "whatever-pass"); created {
		t.Error("EnsureAdmin should not create a second account")
	}

	u, err := svc.Authenticate(ctx, "admin@example.com", "correct-horse")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	if u.Password == "correct-horse" {
		t.Error("password stored in clear text")
	}
	if !CallerFor(u).Admin() {
		t.Error("caller for user should be admin")
	}
	if _, err := svc.Authenticate(ctx, "admin@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password = %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.Authenticate(ctx, "nobody@example.com", "x"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown user = %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.CreateUser(ctx, "admin@example.com", "Dup", "long-enough"); !errors.Is(err, ErrConflict) {
		t.Errorf("duplicate email = %v, want ErrConflict", err)
	}
}

func TestDashboard(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	if _, err := svc.SubmitQuote(ctx, fields(map[string]any{
		"name": "Ali", "email": "ali@x.com", "phone": "555", "projectType": "Konut", "budget": "b", "location": "Konya",
	})); err != nil {
		t.Fatalf("SubmitQuote failed: %v", err)
	}
	d, err := svc.Dashboard(ctx, admin)
	if err != nil {
		t.Fatalf("Dashboard failed: %v", err)
	}
	if d.Stats.NewQuotes != 1 || len(d.RecentQuotes) != 1 {
		t.Errorf("dashboard = %+v", d)
	}
	if d.RecentContacts == nil {
		t.Error("RecentContacts should be an empty slice")
	}
}

func TestTogglePublished(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	p, err := svc.CreateBlogPost(ctx, admin, blogFields("Taslak", false))
	if err != nil {
		t.Fatalf("CreateBlogPost failed: %v", err)
	}
	toggled, err := svc.ToggleBlogPost(ctx, admin, p.ID)
	if err != nil {
		t.Fatalf("ToggleBlogPost failed: %v", err)
	}
	if !toggled.Published || toggled.Title != p.Title || toggled.Slug != p.Slug {
		t.Errorf("toggled = %+v", toggled)
	}
	if _, err := svc.GetBlogPost(ctx, Anonymous, p.Slug); err != nil {
		t.Errorf("published post should be visible: %v", err)
	}
	if _, err := svc.ToggleBlogPost(ctx, Anonymous, p.ID); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("anonymous toggle = %v, want ErrUnauthorized", err)
	}
	if _, err := svc.ToggleProject(ctx, admin, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing project toggle = %v, want ErrNotFound", err)
	}
}

func TestResolveCaller(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	u, err := svc.CreateUser(ctx, "editor@example.com", "Editor", "long-enough")
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	who, err := svc.Resolve(ctx, u.ID)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if !who.Admin() || who.Email != "editor@example.com" {
		t.Errorf("caller = %+v", who)
	}
	if who, _ := svc.Resolve(ctx, "gone"); who.Admin() {
		t.Error("unknown user id should resolve to anonymous")
	}
	if who, _ := svc.Resolve(ctx, ""); who.Admin() {
		t.Error("empty user id should resolve to anonymous")
	}
}

func TestChangePassword(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	if _, err := svc.CreateUser(ctx, "a@example.com", "A", "first-password"); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if err := svc.ChangePassword(ctx, "A@example.com", "second-password"); err != nil {
		t.Fatalf("ChangePassword failed: %v", err)
	}
	if _, err := svc.Authenticate(ctx, "a@example.com", "second-password"); err != nil {
		t.Errorf("new password rejected: %v", err)
	}
	if err := svc.ChangePassword(ctx, "nobody@example.com", "long-enough"); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown user = %v, want ErrNotFound", err)
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	if _, err := svc.Seed(ctx, Anonymous); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("anonymous Seed = %v, want ErrUnauthorized", err)
	}

	first, err := svc.Seed(ctx, admin)
	if err != nil {
		t.Fatalf("Seed failed: %v", err)
	}
	want := SeedResult{Posts: 2, Projects: 2, Testimonials: 3, Seo: 3, Settings: true}
	if first != want {
		t.Errorf("first Seed = %+v, want %+v", first, want)
	}

	second, err := svc.Seed(ctx, admin)
	if err != nil {
		t.Fatalf("second Seed failed: %v", err)
	}
	if second != (SeedResult{}) {
		t.Errorf("second Seed = %+v, want nothing created", second)
	}

	post, err := svc.GetBlogPost(ctx, Anonymous, "2024-insaat-trendleri")
	if err != nil {
		t.Fatalf("seeded post: %v", err)
	}
	if !post.Published || post.ReadTime != "5 dk" {
		t.Errorf("post = %+v", post)
	}
	pr, err := svc.GetProject(ctx, Anonymous, "park-rezidans")
	if err != nil {
		t.Fatalf("seeded project: %v", err)
	}
	if len(pr.Features) != 4 || len(pr.Gallery) != 2 {
		t.Errorf("project lists = %v / %v", pr.Features, pr.Gallery)
	}
	st, err := svc.GetSettings(ctx)
	if err != nil {
		t.Fatalf("seeded settings: %v", err)
	}
	if st.Email2 != nil || model.Deref(st.Instagram) == "" {
		t.Errorf("settings = %+v", st)
	}
	seo, err := svc.ListSeo(ctx)
	if err != nil {
		t.Fatalf("ListSeo failed: %v", err)
	}
	if len(seo) != 3 {
		t.Errorf("seo rows = %d, want 3", len(seo))
	}
}
