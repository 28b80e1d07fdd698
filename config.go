package sitecms

import (
	"time"

	"github.com/gokler/sitecms/content"
)

// SiteConfig holds all configuration for the site.
type SiteConfig struct {
	Name        string // Site name, used until settings are saved (default "Gökler İnşaat")
	URL         string // Canonical URL (default "http://localhost:3000")
	Description string // Default meta description

	Addr         string // Listen address (default ":3000")
	LogLevel     string // debug, info, warn, error or off (default info)
	DatabasePath string // SQLite path (default "data/site.db")

	SessionSecret string // Required: session signing secret
	CookieSecure  bool   // Set true for HTTPS

	// First admin account, created when the user table is empty.
	AdminEmail    string
	AdminPassword string

	LoginAttempts      int           // Failed logins allowed per IP per LoginWindow (default 5)
	LoginWindow        time.Duration // default 1 minute
	IntakeLimitPerHour int           // Quote/contact submissions per IP per hour (default 10)
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Gökler İnşaat"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Description == "" {
		c.Description = "Güvenilir, modern ve deprem yönetmeliğine uygun konut ve ticari yapılar."
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.DatabasePath == "" {
		c.DatabasePath = "data/site.db"
	}
	if c.LoginAttempts == 0 {
		c.LoginAttempts = 5
	}
	if c.LoginWindow == 0 {
		c.LoginWindow = time.Minute
	}
	if c.IntakeLimitPerHour == 0 {
		c.IntakeLimitPerHour = 10
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback runs after the built-in routes are registered.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir sets the directory for static assets and uploads (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}

// WithServiceOptions passes options through to the content service.
func WithServiceOptions(opts ...content.Option) Option {
	return func(a *App) {
		a.serviceOpts = append(a.serviceOpts, opts...)
	}
}
