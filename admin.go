package sitecms

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/gokler/sitecms/content"
	"github.com/gokler/sitecms/model"
	"github.com/gokler/sitecms/views"
)

const (
	loginFailed     = "E-posta veya şifre hatalı."
	loginThrottled  = "Çok fazla başarısız deneme. Lütfen biraz sonra tekrar deneyin."
	slugTakenNotice = "Bu slug başka bir kayıtta kullanılıyor."
)

// entity describes how one record type is listed and edited in the admin.
// create and toggle are nil for types the admin cannot create or publish.
type entity[T any] struct {
	title    string
	singular string
	base     string
	form     views.Form
	columns  []string
	statuses []string
	row      func(T) views.Row
	// category, when set, adds a category filter to the list.
	category func(T) string

	list   func(context.Context, content.Caller, model.Filter) ([]T, error)
	get    func(context.Context, content.Caller, string) (T, error)
	create func(context.Context, content.Caller, content.Patch) (T, error)
	update func(context.Context, content.Caller, string, content.Patch) (T, error)
	toggle func(context.Context, content.Caller, string) (T, error)
	remove func(context.Context, content.Caller, string) error
}

func (a *App) registerAdmin(g *echo.Group) {
	g.GET("/", a.handleAdmin)
	g.POST("/login/", a.handleAdminLogin)
	g.POST("/logout/", a.handleAdminLogout)

	svc := a.Content
	registerEntity(a, g, entity[model.BlogPost]{
		title: "Blog yazıları", singular: "Blog yazısı", base: "/admin/blog/",
		form: views.BlogForm, columns: []string{"Başlık", "Kategori", "Tarih"},
		row: func(p model.BlogPost) views.Row {
			return views.Row{ID: p.ID, Cells: []string{p.Title, p.Category, views.FormatDate(p.CreatedAt)},
				Published: model.Ptr(p.Published), Link: p.Link()}
		},
		category: func(p model.BlogPost) string { return p.Category },
		list: svc.ListBlogPosts, get: svc.GetBlogPost, create: svc.CreateBlogPost,
		update: svc.UpdateBlogPost, toggle: svc.ToggleBlogPost, remove: svc.DeleteBlogPost,
	})
	registerEntity(a, g, entity[model.Project]{
		title: "Projeler", singular: "Proje", base: "/admin/projeler/",
		form: views.ProjectForm, columns: []string{"Proje", "Kategori", "Konum", "Durum"},
		row: func(p model.Project) views.Row {
			return views.Row{ID: p.ID, Cells: []string{p.Title, p.Category, p.Location, views.StatusLabel(p.Status)},
				Published: model.Ptr(p.Published), Link: p.Link()}
		},
		category: func(p model.Project) string { return p.Category },
		list: svc.ListProjects, get: svc.GetProject, create: svc.CreateProject,
		update: svc.UpdateProject, toggle: svc.ToggleProject, remove: svc.DeleteProject,
	})
	registerEntity(a, g, entity[model.GalleryItem]{
		title: "Galeri", singular: "Galeri görseli", base: "/admin/galeri/",
		form: views.GalleryForm, columns: []string{"Başlık", "Kategori", "Sıra"},
		row: func(it model.GalleryItem) views.Row {
			return views.Row{ID: it.ID, Cells: []string{it.Title, it.Category, strconv.Itoa(it.Order)},
				Published: model.Ptr(it.Published)}
		},
		category: func(it model.GalleryItem) string { return it.Category },
		list: svc.ListGalleryItems, get: svc.GetGalleryItem, create: svc.CreateGalleryItem,
		update: svc.UpdateGalleryItem, toggle: svc.ToggleGalleryItem, remove: svc.DeleteGalleryItem,
	})
	registerEntity(a, g, entity[model.Testimonial]{
		title: "Müşteri yorumları", singular: "Yorum", base: "/admin/yorumlar/",
		form: views.TestimonialForm, columns: []string{"Ad", "Unvan", "Puan"},
		row: func(t model.Testimonial) views.Row {
			return views.Row{ID: t.ID, Cells: []string{t.Name, t.Role, strconv.Itoa(t.Rating)},
				Published: model.Ptr(t.Published)}
		},
		list: svc.ListTestimonials, get: svc.GetTestimonial, create: svc.CreateTestimonial,
		update: svc.UpdateTestimonial, toggle: svc.ToggleTestimonial, remove: svc.DeleteTestimonial,
	})
	registerEntity(a, g, entity[model.Quote]{
		title: "Teklif talepleri", singular: "Teklif talebi", base: "/admin/teklifler/",
		form: views.QuoteForm, columns: []string{"Ad", "Proje tipi", "Bütçe", "Tarih"},
		statuses: model.QuoteStatuses,
		row: func(q model.Quote) views.Row {
			return views.Row{ID: q.ID, Cells: []string{q.Name, q.ProjectType, q.Budget, views.FormatDateTime(q.CreatedAt)},
				Status: q.Status}
		},
		list: svc.ListQuotes, get: svc.GetQuote, update: svc.UpdateQuote, remove: svc.DeleteQuote,
	})
	registerEntity(a, g, entity[model.Contact]{
		title: "Mesajlar", singular: "Mesaj", base: "/admin/mesajlar/",
		form: views.ContactForm, columns: []string{"Ad", "Konu", "E-posta", "Tarih"},
		statuses: model.ContactStatuses,
		row: func(m model.Contact) views.Row {
			return views.Row{ID: m.ID, Cells: []string{m.Name, m.Subject, m.Email, views.FormatDateTime(m.CreatedAt)},
				Status: m.Status}
		},
		list: svc.ListContacts, get: svc.GetContact, update: svc.UpdateContact, remove: svc.DeleteContact,
	})

	g.GET("/seo/", a.handleAdminSeoList, a.adminOnly)
	g.GET("/seo/:page/", a.handleAdminSeoEdit, a.adminOnly)
	g.POST("/seo/:page/", a.handleAdminSeoSave, a.adminOnly)
	g.POST("/seo/:page/delete/", a.handleAdminSeoDelete, a.adminOnly)

	g.GET("/ayarlar/", a.handleAdminSettings, a.adminOnly)
	g.POST("/ayarlar/", a.handleAdminSettingsSave, a.adminOnly)

	g.GET("/gorseller/", a.handleAdminUploads, a.adminOnly)
	g.POST("/gorseller/", a.handleAdminUpload, a.adminOnly)
	g.POST("/gorseller/:filename/delete/", a.handleAdminUploadDelete, a.adminOnly)
}

// handleAdmin shows the dashboard, or the login form without a session.
func (a *App) handleAdmin(c echo.Context) error {
	if !a.IsAdmin(c) {
		return Render(c, views.AdminLogin(a.adminPage(c, ""), "", ""))
	}
	d, err := a.Content.Dashboard(c.Request().Context(), a.caller(c))
	if err != nil {
		return err
	}
	return Render(c, views.AdminDashboard(a.adminPage(c, c.QueryParam("msg")), d))
}

// handleAdminLogin checks the credentials. Only failed attempts count
// against the client's login limit.
func (a *App) handleAdminLogin(c echo.Context) error {
	ip := c.RealIP()
	email := strings.TrimSpace(c.FormValue("email"))
	if !a.loginLimiter.Check(ip) {
		return RenderStatus(c, http.StatusTooManyRequests, views.AdminLogin(a.adminPage(c, ""), email, loginThrottled))
	}
	u, err := a.Content.Authenticate(c.Request().Context(), email, c.FormValue("password"))
	if errors.Is(err, content.ErrInvalidCredentials) {
		a.loginLimiter.Record(ip)
		c.Logger().Warnf("failed admin login for %q from %s", email, ip)
		return RenderStatus(c, http.StatusUnauthorized, views.AdminLogin(a.adminPage(c, ""), email, loginFailed))
	}
	if err != nil {
		return err
	}
	if err := setAdminSession(c, u); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/")
}

func (a *App) handleAdminLogout(c echo.Context) error {
	if err := clearAdminSession(c); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/")
}

// distinct returns the sorted non-empty values key yields for items.
func distinct[T any](items []T, key func(T) string) []string {
	var out []string
	for _, it := range items {
		if v := key(it); v != "" {
			out = append(out, v)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}

func registerEntity[T any](a *App, g *echo.Group, e entity[T]) {
	path := strings.TrimPrefix(e.base, "/admin")
	guard := a.adminOnly

	g.GET(path, func(c echo.Context) error {
		ctx, who := c.Request().Context(), a.caller(c)
		f := model.Filter{Query: c.QueryParam("q"), Status: c.QueryParam("status")}
		if e.category != nil {
			f.Category = c.QueryParam("category")
		}
		items, err := e.list(ctx, who, f)
		if err != nil {
			return err
		}
		var categories []string
		if e.category != nil {
			// Offer every category the other filters allow, not only the selected one.
			all := items
			if f.Category != "" {
				if all, err = e.list(ctx, who, model.Filter{Query: f.Query, Status: f.Status}); err != nil {
					return err
				}
			}
			categories = distinct(all, e.category)
		}
		rows := make([]views.Row, len(items))
		for i, it := range items {
			rows[i] = e.row(it)
		}
		return Render(c, views.AdminList(a.adminPage(c, c.QueryParam("msg")), views.ListScreen{
			Title:      e.title,
			Base:       e.base,
			Columns:    e.columns,
			Rows:       rows,
			Query:      f.Query,
			Status:     f.Status,
			Statuses:   e.statuses,
			Category:   f.Category,
			Categories: categories,
			CanCreate:  e.create != nil,
			CanToggle:  e.toggle != nil,
		}))
	}, guard)

	if e.create != nil {
		g.GET(path+"yeni/", func(c echo.Context) error {
			return Render(c, views.AdminForm(a.adminPage(c, ""), e.screen("Yeni "+strings.ToLower(e.singular), e.base+"yeni/", views.FormState{})))
		}, guard)
		g.POST(path+"yeni/", func(c echo.Context) error {
			return e.save(a, c, "Yeni "+strings.ToLower(e.singular), e.base+"yeni/", nil, func(p content.Patch) error {
				_, err := e.create(c.Request().Context(), a.caller(c), p)
				return err
			})
		}, guard)
	}

	g.GET(path+":id/", func(c echo.Context) error {
		rec, err := e.get(c.Request().Context(), a.caller(c), c.Param("id"))
		if err != nil {
			return pageError(err)
		}
		action := e.base + c.Param("id") + "/"
		return Render(c, views.AdminForm(a.adminPage(c, ""), e.screen(e.singular+" düzenle", action, views.FormState{Values: views.Values(rec)})))
	}, guard)

	g.POST(path+":id/", func(c echo.Context) error {
		ctx := c.Request().Context()
		rec, err := e.get(ctx, a.caller(c), c.Param("id"))
		if err != nil {
			return pageError(err)
		}
		action := e.base + c.Param("id") + "/"
		return e.save(a, c, e.singular+" düzenle", action, views.Values(rec), func(p content.Patch) error {
			_, err := e.update(ctx, a.caller(c), c.Param("id"), p)
			return err
		})
	}, guard)

	if e.toggle != nil {
		g.POST(path+":id/toggle/", func(c echo.Context) error {
			if _, err := e.toggle(c.Request().Context(), a.caller(c), c.Param("id")); err != nil {
				return pageError(err)
			}
			return c.Redirect(http.StatusSeeOther, e.base)
		}, guard)
	}

	g.POST(path+":id/delete/", func(c echo.Context) error {
		if err := e.remove(c.Request().Context(), a.caller(c), c.Param("id")); err != nil {
			return pageError(err)
		}
		return c.Redirect(http.StatusSeeOther, e.base+"?msg="+url.QueryEscape(e.singular+" silindi."))
	}, guard)
}

func (e entity[T]) screen(title, action string, st views.FormState) views.FormScreen {
	return views.FormScreen{Title: title, Action: action, Back: e.base, Form: e.form, State: st}
}

// save decodes the posted form, runs submit and redirects to the list, or
// redisplays the form with its errors. current holds the stored values
// shown for read-only fields.
func (e entity[T]) save(a *App, c echo.Context, title, action string, current map[string]string, submit func(content.Patch) error) error {
	st, fields, ok, err := decodeAdminForm(c, e.form, current)
	if err != nil {
		return err
	}
	if ok {
		err = submit(content.FieldsPatch(fields))
		if err == nil {
			return c.Redirect(http.StatusSeeOther, e.base+"?msg="+url.QueryEscape(e.singular+" kaydedildi."))
		}
		if !formError(err, &st) {
			return pageError(err)
		}
	}
	return RenderStatus(c, http.StatusBadRequest, views.AdminForm(a.adminPage(c, ""), e.screen(title, action, st)))
}

// decodeAdminForm parses the posted values of form. ok is false when a
// field could not be parsed; st then carries the field errors.
func decodeAdminForm(c echo.Context, form views.Form, current map[string]string) (st views.FormState, fields map[string]any, ok bool, err error) {
	vals, err := c.FormParams()
	if err != nil {
		return st, nil, false, echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}
	st.Values = map[string]string{}
	for k, v := range current {
		st.Values[k] = v
	}
	for _, f := range form {
		if f.ReadOnly {
			continue
		}
		if f.Kind == views.KindCheckbox {
			st.Values[f.Name] = "false"
			if vals.Get(f.Name) != "" {
				st.Values[f.Name] = "true"
			}
			continue
		}
		st.Values[f.Name] = vals.Get(f.Name)
	}
	fields, errs := form.Decode(vals)
	if len(errs) > 0 {
		st.Errors = errs
		return st, nil, false, nil
	}
	return st, fields, true, nil
}

// formError copies a validation or slug conflict error onto st. It reports
// false for any other error.
func formError(err error, st *views.FormState) bool {
	var verr *content.ValidationError
	switch {
	case errors.As(err, &verr):
		st.Errors = localize(verr.Fields)
		st.Errors["form"] = invalidNotice
		return true
	case errors.Is(err, content.ErrConflict):
		st.Errors = map[string]string{"slug": slugTakenNotice, "form": invalidNotice}
		return true
	}
	return false
}

func (a *App) handleAdminSeoList(c echo.Context) error {
	rows, err := a.Content.ListSeo(c.Request().Context())
	if err != nil {
		return err
	}
	byPage := make(map[string]model.SeoSetting, len(rows))
	for _, r := range rows {
		byPage[r.Page] = r
	}
	list := make([]views.Row, 0, len(model.SeoPages))
	for _, page := range model.SeoPages {
		title := "Varsayılan"
		if r, ok := byPage[page]; ok {
			title = r.Title
		}
		list = append(list, views.Row{ID: page, Cells: []string{views.StatusLabel(page), title}})
	}
	return Render(c, views.AdminList(a.adminPage(c, c.QueryParam("msg")), views.ListScreen{
		Title:   "SEO ayarları",
		Base:    "/admin/seo/",
		Columns: []string{"Sayfa", "Başlık"},
		Rows:    list,
	}))
}

func seoScreen(page string, st views.FormState) views.FormScreen {
	return views.FormScreen{
		Title:  "SEO: " + views.StatusLabel(page),
		Action: "/admin/seo/" + page + "/",
		Back:   "/admin/seo/",
		Form:   views.SeoForm,
		State:  st,
	}
}

func (a *App) handleAdminSeoEdit(c echo.Context) error {
	page := c.Param("page")
	if !validSeoPage(page) {
		return echo.ErrNotFound
	}
	st := views.FormState{Values: map[string]string{"page": page}}
	seo, err := a.Content.GetSeo(c.Request().Context(), page)
	switch {
	case err == nil:
		st.Values = views.Values(seo)
	case !errors.Is(err, content.ErrNotFound):
		return err
	}
	return Render(c, views.AdminForm(a.adminPage(c, ""), seoScreen(page, st)))
}

func (a *App) handleAdminSeoSave(c echo.Context) error {
	page := c.Param("page")
	if !validSeoPage(page) {
		return echo.ErrNotFound
	}
	st, fields, ok, err := decodeAdminForm(c, views.SeoForm, nil)
	if err != nil {
		return err
	}
	if ok {
		// The page comes from the URL, not from the form.
		fields["page"] = page
		st.Values["page"] = page
		_, err = a.Content.SaveSeo(c.Request().Context(), a.caller(c), content.FieldsPatch(fields))
		if err == nil {
			return c.Redirect(http.StatusSeeOther, "/admin/seo/?msg="+url.QueryEscape("SEO ayarları kaydedildi."))
		}
		if !formError(err, &st) {
			return err
		}
	}
	return RenderStatus(c, http.StatusBadRequest, views.AdminForm(a.adminPage(c, ""), seoScreen(page, st)))
}

func (a *App) handleAdminSeoDelete(c echo.Context) error {
	err := a.Content.DeleteSeo(c.Request().Context(), a.caller(c), c.Param("page"))
	if err != nil && !errors.Is(err, content.ErrNotFound) {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/seo/?msg="+url.QueryEscape("Varsayılan değerlere dönüldü."))
}

func validSeoPage(page string) bool {
	for _, p := range model.SeoPages {
		if p == page {
			return true
		}
	}
	return false
}

func settingsScreen(st views.FormState) views.FormScreen {
	return views.FormScreen{Title: "Site ayarları", Action: "/admin/ayarlar/", Form: views.SettingsForm, State: st}
}

func (a *App) handleAdminSettings(c echo.Context) error {
	var st views.FormState
	settings, err := a.Content.GetSettings(c.Request().Context())
	switch {
	case err == nil:
		st.Values = views.Values(settings)
	case !errors.Is(err, content.ErrNotFound):
		return err
	}
	return Render(c, views.AdminForm(a.adminPage(c, c.QueryParam("msg")), settingsScreen(st)))
}

func (a *App) handleAdminSettingsSave(c echo.Context) error {
	st, fields, ok, err := decodeAdminForm(c, views.SettingsForm, nil)
	if err != nil {
		return err
	}
	if ok {
		_, err = a.Content.SaveSettings(c.Request().Context(), a.caller(c), content.FieldsPatch(fields))
		if err == nil {
			return c.Redirect(http.StatusSeeOther, "/admin/ayarlar/?msg="+url.QueryEscape("Ayarlar kaydedildi."))
		}
		if !formError(err, &st) {
			return err
		}
	}
	return RenderStatus(c, http.StatusBadRequest, views.AdminForm(a.adminPage(c, ""), settingsScreen(st)))
}
