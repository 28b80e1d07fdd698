package sitecms

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/gokler/sitecms/content"
	"github.com/gokler/sitecms/model"
)

// maxJSONBody caps API request bodies; uploads have their own limit.
const maxJSONBody = 1 << 20

// crud binds the service operations of one record type to the JSON API.
// A nil operation is not routed.
type crud[T any] struct {
	list   func(context.Context, content.Caller, model.Filter) ([]T, error)
	get    func(context.Context, content.Caller, string) (T, error)
	create func(context.Context, content.Caller, content.Patch) (T, error)
	update func(context.Context, content.Caller, string, content.Patch) (T, error)
	remove func(context.Context, content.Caller, string) error

	// limited rate limits create per client IP.
	limited bool
}

func (a *App) registerAPI(g *echo.Group) {
	svc := a.Content
	registerCRUD(a, g, "/blog", crud[model.BlogPost]{
		list: svc.ListBlogPosts, get: svc.GetBlogPost, create: svc.CreateBlogPost,
		update: svc.UpdateBlogPost, remove: svc.DeleteBlogPost,
	})
	registerCRUD(a, g, "/projects", crud[model.Project]{
		list: svc.ListProjects, get: svc.GetProject, create: svc.CreateProject,
		update: svc.UpdateProject, remove: svc.DeleteProject,
	})
	registerCRUD(a, g, "/gallery", crud[model.GalleryItem]{
		list: svc.ListGalleryItems, get: svc.GetGalleryItem, create: svc.CreateGalleryItem,
		update: svc.UpdateGalleryItem, remove: svc.DeleteGalleryItem,
	})
	registerCRUD(a, g, "/testimonials", crud[model.Testimonial]{
		list: svc.ListTestimonials, get: svc.GetTestimonial, create: svc.CreateTestimonial,
		update: svc.UpdateTestimonial, remove: svc.DeleteTestimonial,
	})
	registerCRUD(a, g, "/quotes", crud[model.Quote]{
		list: svc.ListQuotes, get: svc.GetQuote,
		create: func(ctx context.Context, _ content.Caller, p content.Patch) (model.Quote, error) {
			return svc.SubmitQuote(ctx, p)
		},
		update: svc.UpdateQuote, remove: svc.DeleteQuote,
		limited: true,
	})
	registerCRUD(a, g, "/contacts", crud[model.Contact]{
		list: svc.ListContacts, get: svc.GetContact,
		create: func(ctx context.Context, _ content.Caller, p content.Patch) (model.Contact, error) {
			return svc.SubmitContact(ctx, p)
		},
		update: svc.UpdateContact, remove: svc.DeleteContact,
		limited: true,
	})

	g.GET("/seo", a.apiListSeo)
	g.GET("/seo/:page", a.apiGetSeo)
	g.POST("/seo", a.apiSaveSeo)
	g.DELETE("/seo/:page", a.apiDeleteSeo)

	g.GET("/settings", a.apiGetSettings)
	g.POST("/settings", a.apiSaveSettings)
	g.PUT("/settings", a.apiSaveSettings)

	g.GET("/dashboard", a.apiDashboard)

	g.GET("/uploads", a.apiListUploads)
	g.POST("/uploads", a.apiUpload)
	g.DELETE("/uploads/:filename", a.apiDeleteUpload)

	g.Any("/*", func(c echo.Context) error { return echo.ErrNotFound })
}

func registerCRUD[T any](a *App, g *echo.Group, path string, r crud[T]) {
	g.GET(path, func(c echo.Context) error {
		items, err := r.list(c.Request().Context(), a.caller(c), filterFrom(c))
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, items)
	})
	g.GET(path+"/:id", func(c echo.Context) error {
		item, err := r.get(c.Request().Context(), a.caller(c), c.Param("id"))
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, item)
	})
	g.POST(path, func(c echo.Context) error {
		if r.limited && !a.intakeLimiter.Allow(c.RealIP()) {
			return echo.NewHTTPError(http.StatusTooManyRequests, "too many submissions, try again later")
		}
		patch, err := readPatch(c)
		if err != nil {
			return err
		}
		item, err := r.create(c.Request().Context(), a.caller(c), patch)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusCreated, item)
	})
	g.PUT(path+"/:id", func(c echo.Context) error {
		patch, err := readPatch(c)
		if err != nil {
			return err
		}
		item, err := r.update(c.Request().Context(), a.caller(c), c.Param("id"), patch)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, item)
	})
	g.DELETE(path+"/:id", func(c echo.Context) error {
		if err := r.remove(c.Request().Context(), a.caller(c), c.Param("id")); err != nil {
			return err
		}
		return c.JSON(http.StatusOK, map[string]bool{"success": true})
	})
}

// filterFrom reads the list query parameters. The service ignores
// published=false for anonymous callers.
func filterFrom(c echo.Context) model.Filter {
	f := model.Filter{
		Category: c.QueryParam("category"),
		Status:   c.QueryParam("status"),
		Query:    c.QueryParam("q"),
	}
	if v, err := strconv.ParseBool(c.QueryParam("published")); err == nil {
		f.Published = &v
	}
	return f
}

func readPatch(c echo.Context) (content.Patch, error) {
	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxJSONBody))
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "could not read body")
	}
	return content.JSONPatch(body), nil
}

func (a *App) apiListSeo(c echo.Context) error {
	rows, err := a.Content.ListSeo(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rows)
}

func (a *App) apiGetSeo(c echo.Context) error {
	row, err := a.Content.GetSeo(c.Request().Context(), c.Param("page"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, row)
}

func (a *App) apiSaveSeo(c echo.Context) error {
	patch, err := readPatch(c)
	if err != nil {
		return err
	}
	row, err := a.Content.SaveSeo(c.Request().Context(), a.caller(c), patch)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, row)
}

func (a *App) apiDeleteSeo(c echo.Context) error {
	if err := a.Content.DeleteSeo(c.Request().Context(), a.caller(c), c.Param("page")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

// apiGetSettings answers null before the first save.
func (a *App) apiGetSettings(c echo.Context) error {
	st, err := a.Content.GetSettings(c.Request().Context())
	if errors.Is(err, content.ErrNotFound) {
		return c.JSON(http.StatusOK, nil)
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, st)
}

func (a *App) apiSaveSettings(c echo.Context) error {
	patch, err := readPatch(c)
	if err != nil {
		return err
	}
	st, err := a.Content.SaveSettings(c.Request().Context(), a.caller(c), patch)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, st)
}

func (a *App) apiDashboard(c echo.Context) error {
	d, err := a.Content.Dashboard(c.Request().Context(), a.caller(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, d)
}

// apiErrorHandler writes err as {"error": "..."} with the matching status.
func (a *App) apiErrorHandler(err error, c echo.Context) {
	code, body := apiStatus(err)
	if code >= http.StatusInternalServerError {
		c.Logger().Errorf("api error: %s %s: %v", c.Request().Method, c.Request().URL.Path, err)
	}
	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	_ = c.JSON(code, body)
}

func apiStatus(err error) (int, map[string]any) {
	var (
		verr *content.ValidationError
		he   *echo.HTTPError
	)
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest, map[string]any{"error": "validation failed", "fields": verr.Fields}
	case errors.Is(err, content.ErrUnauthorized):
		return http.StatusUnauthorized, map[string]any{"error": "Unauthorized"}
	case errors.Is(err, content.ErrNotFound):
		return http.StatusNotFound, map[string]any{"error": "not found"}
	case errors.Is(err, content.ErrConflict):
		return http.StatusConflict, map[string]any{"error": "slug already in use"}
	case errors.As(err, &he):
		if he.Code >= http.StatusInternalServerError {
			return he.Code, map[string]any{"error": http.StatusText(he.Code)}
		}
		msg := http.StatusText(he.Code)
		if s, ok := he.Message.(string); ok && s != "" {
			msg = s
		}
		return he.Code, map[string]any{"error": msg}
	default:
		return http.StatusInternalServerError, map[string]any{"error": "internal error"}
	}
}
