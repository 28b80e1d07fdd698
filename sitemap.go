package sitecms

import (
	"encoding/xml"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gokler/sitecms/content"
	"github.com/gokler/sitecms/model"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// staticPages are listed in the sitemap with their change frequency and
// priority.
var staticPages = []sitemapURL{
	{Loc: "/", ChangeFreq: "weekly", Priority: "1.0"},
	{Loc: "/hakkimizda/", ChangeFreq: "monthly", Priority: "0.8"},
	{Loc: "/hizmetler/", ChangeFreq: "monthly", Priority: "0.8"},
	{Loc: "/projeler/", ChangeFreq: "weekly", Priority: "0.9"},
	{Loc: "/blog/", ChangeFreq: "weekly", Priority: "0.8"},
	{Loc: "/galeri/", ChangeFreq: "weekly", Priority: "0.7"},
	{Loc: "/iletisim/", ChangeFreq: "yearly", Priority: "0.7"},
	{Loc: "/teklif-al/", ChangeFreq: "yearly", Priority: "0.9"},
}

func (a *App) handleSitemap(c echo.Context) error {
	ctx := c.Request().Context()
	projects, err := a.Content.ListProjects(ctx, content.Anonymous, model.Filter{})
	if err != nil {
		return err
	}
	posts, err := a.Content.ListBlogPosts(ctx, content.Anonymous, model.Filter{})
	if err != nil {
		return err
	}
	return a.renderSitemap(c, projects, posts)
}

func (a *App) renderSitemap(c echo.Context, projects []model.Project, posts []model.BlogPost) error {
	base := a.Config.URL
	urls := make([]sitemapURL, 0, len(staticPages)+len(projects)+len(posts))
	for _, p := range staticPages {
		p.Loc = BuildURL(base, p.Loc)
		urls = append(urls, p)
	}
	for _, p := range projects {
		urls = append(urls, sitemapURL{
			Loc:        BuildURL(base, "projeler", p.Slug),
			LastMod:    p.UpdatedAt.Format("2006-01-02"),
			ChangeFreq: "monthly",
			Priority:   "0.7",
		})
	}
	for _, p := range posts {
		urls = append(urls, sitemapURL{
			Loc:        BuildURL(base, "blog", p.Slug),
			LastMod:    p.UpdatedAt.Format("2006-01-02"),
			ChangeFreq: "monthly",
			Priority:   "0.6",
		})
	}
	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(sitemap)
}
