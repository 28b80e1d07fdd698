// Package sitecms serves a construction company website: public pages for
// projects, blog posts and the gallery, quote and contact intake, an admin
// panel, and a JSON API over the same records. It is built with Echo,
// templ and SQLite.
package sitecms

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	glog "github.com/labstack/gommon/log"

	"github.com/gokler/sitecms/content"
	"github.com/gokler/sitecms/store"
)

// App wires together the store, content service, handlers and middleware.
type App struct {
	Config  SiteConfig
	Echo    *echo.Echo
	Store   *store.Store
	Content *content.Service

	loginLimiter  *Limiter
	intakeLimiter *Limiter
	customRoutes  []func(*App)
	serviceOpts   []content.Option
	staticDir     string
	ready         bool
}

// New creates an App with the given configuration.
func New(cfg SiteConfig, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		staticDir: "public",
	}
	a.Echo.HideBanner = true

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Init opens the database, bootstraps the first admin account and
// registers middleware and routes. Start calls it when needed; tests call
// it directly and drive a.Echo with httptest.
func (a *App) Init() error {
	if a.ready {
		return nil
	}
	if a.Config.SessionSecret == "" {
		return fmt.Errorf("sitecms: SessionSecret is required")
	}
	a.Echo.Logger.SetLevel(ParseLevel(a.Config.LogLevel))

	st, err := store.Open(a.Config.DatabasePath)
	if err != nil {
		return fmt.Errorf("sitecms: init store: %w", err)
	}
	a.Store = st

	opts := append([]content.Option{content.WithUploadDir(filepath.Join(a.staticDir, uploadsSubdir))}, a.serviceOpts...)
	a.Content = content.New(st, opts...)

	if a.Config.AdminEmail != "" && a.Config.AdminPassword != "" {
		created, err := a.Content.EnsureAdmin(context.Background(), a.Config.AdminEmail, a.Config.AdminPassword)
		if err != nil {
			return fmt.Errorf("sitecms: bootstrap admin: %w", err)
		}
		if created {
			a.Echo.Logger.Infof("created admin account %s", a.Config.AdminEmail)
		}
	}

	a.loginLimiter = NewLimiter(a.Config.LoginAttempts, a.Config.LoginWindow)
	a.intakeLimiter = NewLimiter(a.Config.IntakeLimitPerHour, time.Hour)

	a.setupMiddleware()
	a.setupRoutes()
	for _, fn := range a.customRoutes {
		fn(a)
	}
	a.ready = true
	return nil
}

// Start initializes the app if needed and starts the server.
func (a *App) Start() error {
	if err := a.Init(); err != nil {
		return err
	}
	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops the server gracefully.
func (a *App) Shutdown(ctx context.Context) error {
	return a.Echo.Shutdown(ctx)
}

func (a *App) setupRoutes() {
	e := a.Echo

	// The stylesheet ships inside the binary; everything else under
	// /public/ (uploads included) comes from the static dir.
	embeddedFS, _ := fs.Sub(EmbeddedAssets, "embedded")
	embeddedHandler := http.FileServer(http.FS(embeddedFS))
	e.GET("/public/site.css", echo.WrapHandler(http.StripPrefix("/public/", embeddedHandler)))
	e.Static("/public", a.staticDir)

	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)
	e.GET("/healthz", a.handleHealth)

	e.GET("/", a.handleHome)
	e.GET("/hakkimizda/", a.handleAbout)
	e.GET("/hizmetler/", a.handleServices)
	e.GET("/projeler/", a.handleProjects)
	e.GET("/projeler/:slug/", a.handleProject)
	e.GET("/blog/", a.handleBlog)
	e.GET("/blog/:slug/", a.handleBlogPost)
	e.GET("/galeri/", a.handleGallery)
	e.GET("/iletisim/", a.handleContact)
	e.POST("/iletisim/", a.handleContactSubmit)
	e.GET("/teklif-al/", a.handleQuote)
	e.POST("/teklif-al/", a.handleQuoteSubmit)

	a.registerAPI(e.Group("/api"))
	a.registerAdmin(e.Group("/admin"))
}

// Close releases the database and stops background work.
func (a *App) Close() error {
	if a.loginLimiter != nil {
		a.loginLimiter.Stop()
	}
	if a.intakeLimiter != nil {
		a.intakeLimiter.Stop()
	}
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}

// ParseLevel maps a LOG_LEVEL value to a gommon log level. Unknown values
// mean INFO.
func ParseLevel(s string) glog.Lvl {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return glog.DEBUG
	case "warn", "warning":
		return glog.WARN
	case "error":
		return glog.ERROR
	case "off":
		return glog.OFF
	default:
		return glog.INFO
	}
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// MustEnv returns the value of the environment variable key, or fatally exits if empty.
func MustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("sitecms: required environment variable %s is not set", key)
	}
	return v
}
