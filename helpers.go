package sitecms

import (
	"encoding/json"
	"net/url"
	"path"
	"strings"

	"github.com/gokler/sitecms/model"
)

// BuildURL joins a base URL with path segments, ensuring a trailing slash.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if len(pathSegments) > 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// absURL makes a site-relative path absolute; other values are returned
// unchanged.
func (a *App) absURL(p string) string {
	if !strings.HasPrefix(p, "/") || strings.HasPrefix(p, "//") {
		return p
	}
	return strings.TrimRight(a.Config.URL, "/") + p
}

func jsonLD(data map[string]any) string {
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// OrganizationJsonLD returns a JSON-LD string for a GeneralContractor
// schema built from the site settings.
func OrganizationJsonLD(cfg SiteConfig, st *model.SiteSettings) string {
	data := map[string]any{
		"@context":    "https://schema.org",
		"@type":       "GeneralContractor",
		"name":        cfg.Name,
		"url":         BuildURL(cfg.URL),
		"description": cfg.Description,
	}
	if st != nil {
		data["name"] = st.CompanyName
		data["telephone"] = st.Phone
		data["email"] = st.Email
		data["address"] = st.Address
		var sameAs []string
		for _, p := range []*string{st.Facebook, st.Instagram, st.Twitter, st.LinkedIn, st.YouTube} {
			if v := model.Deref(p); v != "" {
				sameAs = append(sameAs, v)
			}
		}
		if len(sameAs) > 0 {
			data["sameAs"] = sameAs
		}
	}
	return jsonLD(data)
}

// BlogPostingJsonLD returns a JSON-LD string for a BlogPosting schema.
func BlogPostingJsonLD(post model.BlogPost, cfg SiteConfig, publisher string) string {
	postURL := BuildURL(cfg.URL, "blog", post.Slug)
	data := map[string]any{
		"@context":      "https://schema.org",
		"@type":         "BlogPosting",
		"headline":      post.Title,
		"description":   post.Excerpt,
		"datePublished": post.CreatedAt.Format("2006-01-02"),
		"dateModified":  post.UpdatedAt.Format("2006-01-02"),
		"url":           postURL,
		"author": map[string]string{
			"@type": "Person",
			"name":  post.Author,
		},
		"publisher": map[string]string{
			"@type": "Organization",
			"name":  publisher,
		},
		"mainEntityOfPage": map[string]string{
			"@type": "WebPage",
			"@id":   postURL,
		},
	}
	if post.Category != "" {
		data["articleSection"] = post.Category
	}
	if post.Image != "" {
		data["image"] = post.Image
	}
	return jsonLD(data)
}

// categoriesOf returns the distinct categories in order of first use.
func categoriesOf[T any](items []T, category func(T) string) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, it := range items {
		c := category(it)
		if c != "" && !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}

// filterCategory keeps the items in category cat; "" keeps all.
func filterCategory[T any](items []T, cat string, category func(T) string) []T {
	if cat == "" {
		return items
	}
	out := []T{}
	for _, it := range items {
		if category(it) == cat {
			out = append(out, it)
		}
	}
	return out
}

// relatedProjects returns up to n other projects, same category first.
func relatedProjects(current model.Project, all []model.Project, n int) []model.Project {
	var same, other []model.Project
	for _, p := range all {
		if p.ID == current.ID {
			continue
		}
		if p.Category == current.Category {
			same = append(same, p)
		} else {
			other = append(other, p)
		}
	}
	out := append(same, other...)
	if len(out) > n {
		out = out[:n]
	}
	return out
}

func firstN[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}
