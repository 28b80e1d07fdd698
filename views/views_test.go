package views

import (
	"bytes"
	"context"
	"net/url"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/a-h/templ"

	"github.com/gokler/sitecms/model"
)

func renderString(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	if err := c.Render(context.Background(), &buf); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	return buf.String()
}

func testPage() Page {
	return Page{
		Site: Site{Name: "Gökler İnşaat", URL: "https://example.com", Description: "Güvenilir inşaat"},
		Meta: Meta{Title: "Projeler", Description: "Tüm projeler", Canonical: "https://example.com/projeler/"},
		Path: "/projeler/",
		CSRF: "tok",
	}
}

func TestLayoutRendersMetaAndEscapes(t *testing.T) {
	pg := testPage()
	pg.Meta.Description = `"quoted" <desc>`
	html := renderString(t, Projects(pg, []model.Project{{Title: "<b>Kule</b>", Slug: "kule", Category: "Konut"}}, []string{"Konut"}, ""))

	for _, want := range []string{
		"<title>Projeler | Gökler İnşaat</title>",
		`<link rel="canonical" href="https://example.com/projeler/">`,
		`content="&#34;quoted&#34; &lt;desc&gt;"`,
		`href="/projeler/kule/"`,
		"&lt;b&gt;Kule&lt;/b&gt;",
		`class="active" aria-current="page"`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if strings.Contains(html, "<b>Kule</b>") {
		t.Error("title was not escaped")
	}
}

func TestImageURLEscapedOnce(t *testing.T) {
	pr := model.Project{Title: "Kule", Slug: "kule", Category: "Konut", Image: "https://cdn.example.com/a.jpg?w=800&q=80"}
	html := renderString(t, Projects(testPage(), []model.Project{pr}, []string{"Konut"}, ""))

	if !strings.Contains(html, `src="https://cdn.example.com/a.jpg?w=800&amp;q=80"`) {
		t.Errorf("image src not escaped once:\n%s", html)
	}
	if strings.Contains(html, "&amp;amp;") {
		t.Error("image src escaped twice")
	}
}

func TestFooterUsesSettings(t *testing.T) {
	pg := testPage()
	pg.Settings = &model.SiteSettings{
		CompanyName: "Gökler Yapı",
		Phone:       "0332 000 00 00",
		Email:       "info@example.com",
		Address:     "Konya",
		Instagram:   model.Ptr("https://instagram.com/gokler"),
		Facebook:    model.Ptr("javascript:alert(1)"),
	}
	html := renderString(t, About(pg))
	if !strings.Contains(html, "Gökler Yapı") || !strings.Contains(html, `href="mailto:info@example.com"`) {
		t.Error("settings not rendered in footer")
	}
	if !strings.Contains(html, `href="https://instagram.com/gokler"`) {
		t.Error("social link missing")
	}
	if strings.Contains(html, "javascript:") {
		t.Error("unsafe URL rendered")
	}
}

func TestBlogPostRendersMarkdownAndTOC(t *testing.T) {
	post := model.BlogPost{
		Title:     "Enerji",
		Slug:      "enerji",
		Content:   "## Giriş\nmetin\n\n## Sonuç\n**son**",
		Category:  "Sektör",
		ReadTime:  "5 dk",
		CreatedAt: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	}
	html := renderString(t, BlogPost(testPage(), post, nil))
	for _, want := range []string{`<h2 id="giris">Giriş</h2>`, `href="#sonuc"`, "<strong>son</strong>", "15 Ocak 2024"} {
		if !strings.Contains(html, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestContactFormKeepsValuesAndErrors(t *testing.T) {
	f := FormState{
		Values: map[string]string{"name": "Ali <x>", "subject": "İş Birliği"},
		Errors: map[string]string{"email": "is required"},
	}
	html := renderString(t, Contact(testPage(), f))
	for _, want := range []string{
		`name="_csrf" value="tok"`,
		`value="Ali &lt;x&gt;"`,
		`<option value="İş Birliği" selected>`,
		`<p class="field-error">is required</p>`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestAdminListActions(t *testing.T) {
	ls := ListScreen{
		Title:     "Blog",
		Base:      "/admin/blog/",
		Columns:   []string{"Başlık"},
		Rows:      []Row{{ID: "p1", Cells: []string{"Yazı"}, Published: model.Ptr(false)}},
		CanCreate: true,
		CanToggle: true,
	}
	html := renderString(t, AdminList(testPage(), ls))
	for _, want := range []string{
		`action="/admin/blog/p1/toggle/"`,
		`action="/admin/blog/p1/delete/"`,
		`href="/admin/blog/yeni/"`,
		"Taslak",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestFormDecode(t *testing.T) {
	vals := url.Values{
		"title":     {"  Yeni Proje "},
		"tags":      {"a\r\n\r\n b \n"},
		"published": {"true"},
		"company":   {""},
		"order":     {"x"},
	}
	form := Form{
		{Name: "title"},
		{Name: "tags", Kind: KindList},
		{Name: "published", Kind: KindCheckbox},
		{Name: "company", Nullable: true},
		{Name: "order", Kind: KindNumber},
		{Name: "name", ReadOnly: true},
	}
	got, errs := form.Decode(vals)
	want := map[string]any{
		"title":     "Yeni Proje",
		"tags":      []string{"a", "b"},
		"published": true,
		"company":   nil,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Decode = %#v, want %#v", got, want)
	}
	if errs["order"] == "" {
		t.Error("expected error for non-numeric order")
	}
}

func TestValues(t *testing.T) {
	got := Values(model.Project{
		Title:     "Kule",
		Tags:      model.StringList{"a", "b"},
		Published: true,
	})
	if got["title"] != "Kule" || got["tags"] != "a\nb" || got["published"] != "true" || got["gallery"] != "" {
		t.Errorf("Values = %v", got)
	}
	tm := Values(model.Testimonial{Rating: 4})
	if tm["rating"] != "4" || tm["company"] != "" {
		t.Errorf("Values = %v", tm)
	}
}

func TestViewsEscapeStoredText(t *testing.T) {
	const evil = `"><script>alert(1)</script>`
	pg := testPage()
	pg.Message = evil
	pg.Meta.Title = evil
	pg.Meta.Description = evil
	pg.Settings = &model.SiteSettings{
		CompanyName: evil, Phone: evil, Email: evil, Address: evil,
		MapURL: model.Ptr(evil), Instagram: model.Ptr(evil),
	}
	post := model.BlogPost{Slug: "x", Title: evil, Excerpt: evil, Content: "## " + evil + "\n\n" + evil,
		Image: evil, Author: evil, Category: evil}
	pr := model.Project{Slug: "x", Title: evil, Category: evil, Location: evil, Client: evil,
		Image: evil, Description: evil, Gallery: []string{evil}, Features: []string{evil}, Tags: []string{evil}}
	item := model.GalleryItem{Title: evil, Category: evil, Image: evil}
	tm := model.Testimonial{Name: evil, Role: evil, Content: evil, Company: model.Ptr(evil), Rating: 5}
	state := FormState{Values: map[string]string{"name": evil, "email": evil}, Errors: map[string]string{"name": evil}, Notice: evil}

	pages := map[string]templ.Component{
		"home":      Home(pg, HomeData{Projects: []model.Project{pr}, Posts: []model.BlogPost{post}, Testimonials: []model.Testimonial{tm}}),
		"projects":  Projects(pg, []model.Project{pr}, []string{evil}, evil),
		"project":   ProjectDetail(pg, pr, []model.Project{pr}),
		"blog":      Blog(pg, []model.BlogPost{post}, []string{evil}, evil),
		"post":      BlogPost(pg, post, []model.BlogPost{post}),
		"gallery":   Gallery(pg, []model.GalleryItem{item}, []string{evil}, evil),
		"contact":   Contact(pg, state),
		"quote":     Quote(pg, state),
		"login":     AdminLogin(pg, evil, evil),
		"list":      AdminList(pg, ListScreen{Title: evil, Base: "/admin/blog/", Columns: []string{evil}, Rows: []Row{{ID: "p1", Cells: []string{evil}}}, Query: evil, Categories: []string{evil}}),
		"form":      AdminForm(pg, FormScreen{Title: evil, Action: "/admin/blog/yeni/", Back: "/admin/blog/", Form: BlogForm, State: state}),
		"dashboard": AdminDashboard(pg, model.Dashboard{RecentQuotes: []model.Quote{{Name: evil, ProjectType: evil}}, RecentContacts: []model.Contact{{Name: evil, Subject: evil}}}),
	}
	for name, c := range pages {
		if html := renderString(t, c); strings.Contains(html, "<script>alert") {
			t.Errorf("%s: stored text rendered unescaped", name)
		}
	}
}
