package sitecms

import (
	"errors"
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/gokler/sitecms/content"
	"github.com/gokler/sitecms/model"
	"github.com/gokler/sitecms/views"
)

// Render writes a templ component as an HTTP 200 HTML response.
func Render(c echo.Context, cmp templ.Component) error {
	return RenderStatus(c, http.StatusOK, cmp)
}

// RenderStatus writes a templ component with a specific HTTP status code.
func RenderStatus(c echo.Context, code int, cmp templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(code)
	return cmp.Render(c.Request().Context(), c.Response().Writer)
}

// page builds the data every page component needs. seoPage names the row
// of SEO settings that overrides meta; "" skips the lookup.
func (a *App) page(c echo.Context, seoPage string, meta views.Meta) views.Page {
	ctx := c.Request().Context()
	pg := views.Page{
		Site: views.Site{
			Name:        a.Config.Name,
			URL:         a.Config.URL,
			Description: a.Config.Description,
		},
		Meta: meta,
		Path: c.Request().URL.Path,
		CSRF: CsrfToken(c),
	}
	if st, err := a.Content.GetSettings(ctx); err == nil {
		pg.Settings = &st
	} else if !errors.Is(err, content.ErrNotFound) {
		c.Logger().Errorf("load settings: %v", err)
	}
	if seoPage != "" {
		seo, err := a.Content.GetSeo(ctx, seoPage)
		switch {
		case err == nil:
			pg.Meta.Title = seo.Title
			pg.Meta.Description = seo.Description
			pg.Meta.Keywords = model.Deref(seo.Keywords)
			if img := model.Deref(seo.OGImage); img != "" {
				pg.Meta.Image = a.absURL(img)
			}
		case !errors.Is(err, content.ErrNotFound):
			c.Logger().Errorf("load seo %s: %v", seoPage, err)
		}
	}
	if pg.Meta.Description == "" {
		pg.Meta.Description = a.Config.Description
	}
	if pg.Meta.Canonical == "" {
		pg.Meta.Canonical = BuildURL(a.Config.URL, c.Request().URL.Path)
	}
	return pg
}

// adminPage builds page data for admin screens. msg is shown as a notice.
func (a *App) adminPage(c echo.Context, msg string) views.Page {
	pg := a.page(c, "", views.Meta{})
	pg.Message = msg
	return pg
}
