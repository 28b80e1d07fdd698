package views

import "github.com/gokler/sitecms/model"

// Site carries the values from configuration every page needs.
type Site struct {
	Name        string
	URL         string
	Description string
}

// Meta is the per-page SEO metadata rendered into <head>.
type Meta struct {
	Title       string
	Description string
	Keywords    string
	Image       string
	Canonical   string
	OGType      string // "website" or "article"
	JSONLD      []string
}

// Page is passed to every page component.
type Page struct {
	Site     Site
	Settings *model.SiteSettings
	Meta     Meta
	Path     string
	CSRF     string
	Message  string
}

// CompanyName returns the company name from settings, falling back to the
// configured site name.
func (p Page) CompanyName() string {
	if p.Settings != nil && p.Settings.CompanyName != "" {
		return p.Settings.CompanyName
	}
	return p.Site.Name
}

// FormState is the state of a public or admin form being redisplayed.
type FormState struct {
	Values map[string]string
	Errors map[string]string
	Sent   bool
	Notice string
}

// Value returns the submitted value of field.
func (f FormState) Value(field string) string {
	return f.Values[field]
}
