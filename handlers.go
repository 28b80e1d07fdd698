package sitecms

import (
	"errors"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/gokler/sitecms/content"
	"github.com/gokler/sitecms/model"
	"github.com/gokler/sitecms/views"
)

func (a *App) handleHome(c echo.Context) error {
	ctx := c.Request().Context()
	projects, err := a.Content.ListProjects(ctx, content.Anonymous, model.Filter{})
	if err != nil {
		return err
	}
	posts, err := a.Content.ListBlogPosts(ctx, content.Anonymous, model.Filter{})
	if err != nil {
		return err
	}
	testimonials, err := a.Content.ListTestimonials(ctx, content.Anonymous, model.Filter{})
	if err != nil {
		return err
	}
	pg := a.page(c, "home", views.Meta{})
	pg.Meta.JSONLD = []string{OrganizationJsonLD(a.Config, pg.Settings)}
	return Render(c, views.Home(pg, views.HomeData{
		Projects:     firstN(projects, 6),
		Posts:        firstN(posts, 3),
		Testimonials: firstN(testimonials, 6),
	}))
}

func (a *App) handleAbout(c echo.Context) error {
	return Render(c, views.About(a.page(c, "about", views.Meta{Title: "Hakkımızda"})))
}

func (a *App) handleServices(c echo.Context) error {
	return Render(c, views.Services(a.page(c, "services", views.Meta{Title: "Hizmetlerimiz"})))
}

func (a *App) handleProjects(c echo.Context) error {
	ctx := c.Request().Context()
	cat := c.QueryParam("kategori")
	projects, err := a.Content.ListProjects(ctx, content.Anonymous, model.Filter{Category: cat})
	if err != nil {
		return err
	}
	categories, err := a.Content.ProjectCategories(ctx)
	if err != nil {
		return err
	}
	pg := a.page(c, "projects", views.Meta{Title: "Projelerimiz"})
	return Render(c, views.Projects(pg, projects, categories, cat))
}

// handleProject shows one project. Admins can preview drafts.
func (a *App) handleProject(c echo.Context) error {
	ctx := c.Request().Context()
	pr, err := a.Content.GetProject(ctx, a.caller(c), c.Param("slug"))
	if err != nil {
		return pageError(err)
	}
	if pr.Slug != c.Param("slug") {
		return c.Redirect(http.StatusMovedPermanently, pr.Link())
	}
	all, err := a.Content.ListProjects(ctx, content.Anonymous, model.Filter{})
	if err != nil {
		return err
	}
	pg := a.page(c, "", views.Meta{
		Title:       pr.Title,
		Description: firstLine(pr.Description),
		Image:       a.absURL(pr.Image),
	})
	return Render(c, views.ProjectDetail(pg, pr, relatedProjects(pr, all, 3)))
}

func (a *App) handleBlog(c echo.Context) error {
	ctx := c.Request().Context()
	posts, err := a.Content.ListBlogPosts(ctx, content.Anonymous, model.Filter{})
	if err != nil {
		return err
	}
	category := func(p model.BlogPost) string { return p.Category }
	cat := c.QueryParam("kategori")
	pg := a.page(c, "blog", views.Meta{Title: "Blog"})
	return Render(c, views.Blog(pg, filterCategory(posts, cat, category), categoriesOf(posts, category), cat))
}

// handleBlogPost shows one post. Admins can preview drafts.
func (a *App) handleBlogPost(c echo.Context) error {
	ctx := c.Request().Context()
	post, err := a.Content.GetBlogPost(ctx, a.caller(c), c.Param("slug"))
	if err != nil {
		return pageError(err)
	}
	if post.Slug != c.Param("slug") {
		return c.Redirect(http.StatusMovedPermanently, post.Link())
	}
	posts, err := a.Content.ListBlogPosts(ctx, content.Anonymous, model.Filter{})
	if err != nil {
		return err
	}
	recent := make([]model.BlogPost, 0, 3)
	for _, p := range posts {
		if p.ID != post.ID && len(recent) < 3 {
			recent = append(recent, p)
		}
	}
	pg := a.page(c, "", views.Meta{
		Title:       post.Title,
		Description: post.Excerpt,
		Image:       a.absURL(post.Image),
		OGType:      "article",
	})
	pg.Meta.JSONLD = []string{BlogPostingJsonLD(post, a.Config, pg.CompanyName())}
	return Render(c, views.BlogPost(pg, post, recent))
}

func (a *App) handleGallery(c echo.Context) error {
	items, err := a.Content.ListGalleryItems(c.Request().Context(), content.Anonymous, model.Filter{})
	if err != nil {
		return err
	}
	category := func(g model.GalleryItem) string { return g.Category }
	cat := c.QueryParam("kategori")
	pg := a.page(c, "gallery", views.Meta{Title: "Galeri"})
	return Render(c, views.Gallery(pg, filterCategory(items, cat, category), categoriesOf(items, category), cat))
}

// Public intake forms, decoded with the same descriptors as admin forms.
var (
	contactIntake = views.Form{
		{Name: "name"},
		{Name: "email"},
		{Name: "phone", Nullable: true},
		{Name: "subject"},
		{Name: "message", Kind: views.KindTextArea},
	}
	quoteIntake = views.Form{
		{Name: "name"},
		{Name: "email"},
		{Name: "phone"},
		{Name: "company", Nullable: true},
		{Name: "projectType"},
		{Name: "budget"},
		{Name: "location"},
		{Name: "timeline", Nullable: true},
		{Name: "message", Kind: views.KindTextArea, Nullable: true},
	}
)

const (
	sentParam     = "gonderildi"
	tooManyNotice = "Çok fazla gönderim yaptınız. Lütfen daha sonra tekrar deneyin."
	invalidNotice = "Lütfen işaretli alanları kontrol edin."
)

func (a *App) handleContact(c echo.Context) error {
	pg := a.page(c, "contact", views.Meta{Title: "İletişim"})
	return Render(c, views.Contact(pg, views.FormState{Sent: c.QueryParam(sentParam) == "1"}))
}

func (a *App) handleContactSubmit(c echo.Context) error {
	return a.handleIntake(c, contactIntake, "contact", views.Contact, func(p content.Patch) error {
		_, err := a.Content.SubmitContact(c.Request().Context(), p)
		return err
	})
}

func (a *App) handleQuote(c echo.Context) error {
	pg := a.page(c, "quote", views.Meta{Title: "Teklif Al"})
	return Render(c, views.Quote(pg, views.FormState{Sent: c.QueryParam(sentParam) == "1"}))
}

func (a *App) handleQuoteSubmit(c echo.Context) error {
	return a.handleIntake(c, quoteIntake, "quote", views.Quote, func(p content.Patch) error {
		_, err := a.Content.SubmitQuote(c.Request().Context(), p)
		return err
	})
}

// handleIntake runs a public form submission: rate limit, decode, submit,
// then redirect on success or redisplay the form with errors.
func (a *App) handleIntake(c echo.Context, form views.Form, seoPage string,
	render func(views.Page, views.FormState) templ.Component, submit func(content.Patch) error) error {
	vals, err := c.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}
	state := views.FormState{Values: map[string]string{}}
	for _, f := range form {
		state.Values[f.Name] = vals.Get(f.Name)
	}
	pg := a.page(c, seoPage, views.Meta{})

	if !a.intakeLimiter.Allow(c.RealIP()) {
		state.Notice = tooManyNotice
		return RenderStatus(c, http.StatusTooManyRequests, render(pg, state))
	}
	fields, errs := form.Decode(vals)
	if len(errs) > 0 {
		state.Errors = localize(errs)
		state.Notice = invalidNotice
		return RenderStatus(c, http.StatusBadRequest, render(pg, state))
	}
	if err := submit(content.FieldsPatch(fields)); err != nil {
		var verr *content.ValidationError
		if errors.As(err, &verr) {
			state.Errors = localize(verr.Fields)
			state.Notice = invalidNotice
			return RenderStatus(c, http.StatusBadRequest, render(pg, state))
		}
		return err
	}
	return c.Redirect(http.StatusSeeOther, c.Request().URL.Path+"?"+sentParam+"=1")
}

var fieldMessages = map[string]string{
	"is required":                   "Bu alan zorunludur.",
	"must be a valid email address": "Geçerli bir e-posta adresi girin.",
}

// localize translates validation messages shown on public pages.
func localize(fields map[string]string) map[string]string {
	out := make(map[string]string, len(fields))
	for k, v := range fields {
		if tr, ok := fieldMessages[v]; ok {
			v = tr
		}
		out[k] = v
	}
	return out
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return s
}

func (a *App) handleRobots(c echo.Context) error {
	body := "User-agent: *\nAllow: /\nDisallow: /admin/\nDisallow: /api/\n\nSitemap: " +
		strings.TrimRight(a.Config.URL, "/") + "/sitemap.xml\n"
	return c.String(http.StatusOK, body)
}

func (a *App) handleHealth(c echo.Context) error {
	if err := a.Store.Ping(c.Request().Context()); err != nil {
		c.Logger().Errorf("health check: %v", err)
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// pageError maps a content error from a page handler to an HTTP error the
// error handler renders.
func pageError(err error) error {
	if errors.Is(err, content.ErrNotFound) {
		return echo.ErrNotFound
	}
	return err
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	if isAPI(c) {
		a.apiErrorHandler(err, c)
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, views.NotFound(a.page(c, "", views.Meta{Title: "Sayfa bulunamadı"})))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, views.ServerError(a.page(c, "", views.Meta{Title: "Hata"})))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
