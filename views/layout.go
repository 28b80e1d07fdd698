package views

import (
	"strings"

	"github.com/a-h/templ"

	"github.com/gokler/sitecms/model"
)

type navItem struct {
	Label string
	Href  string
}

var mainNav = []navItem{
	{"Ana Sayfa", "/"},
	{"Hakkımızda", "/hakkimizda/"},
	{"Projeler", "/projeler/"},
	{"Hizmetler", "/hizmetler/"},
	{"Galeri", "/galeri/"},
	{"Blog", "/blog/"},
}

func active(current, href string) bool {
	if href == "/" {
		return current == "/"
	}
	return strings.HasPrefix(current, href)
}

// Layout wraps body in the public page chrome: head with SEO tags, header
// navigation and footer with the company contact details.
func Layout(pg Page, body templ.Component) templ.Component {
	return component(func(p *printer) {
		title := pg.Meta.Title
		if title == "" {
			title = pg.CompanyName()
		} else if !strings.Contains(title, pg.CompanyName()) {
			title += " | " + pg.CompanyName()
		}
		p.raw(`<!doctype html><html lang="tr"><head><meta charset="utf-8">`)
		p.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		p.raw(`<title>`)
		p.text(title)
		p.raw(`</title>`)
		if pg.Meta.Description != "" {
			p.raw(`<meta name="description"`)
			p.attr("content", pg.Meta.Description)
			p.raw(`>`)
		}
		if pg.Meta.Keywords != "" {
			p.raw(`<meta name="keywords"`)
			p.attr("content", pg.Meta.Keywords)
			p.raw(`>`)
		}
		if pg.Meta.Canonical != "" {
			p.raw(`<link rel="canonical"`)
			p.attr("href", pg.Meta.Canonical)
			p.raw(`>`)
			p.raw(`<meta property="og:url"`)
			p.attr("content", pg.Meta.Canonical)
			p.raw(`>`)
		}
		ogType := pg.Meta.OGType
		if ogType == "" {
			ogType = "website"
		}
		p.raw(`<meta property="og:type"`)
		p.attr("content", ogType)
		p.raw(`><meta property="og:title"`)
		p.attr("content", title)
		p.raw(`>`)
		if pg.Meta.Description != "" {
			p.raw(`<meta property="og:description"`)
			p.attr("content", pg.Meta.Description)
			p.raw(`>`)
		}
		if pg.Meta.Image != "" {
			p.raw(`<meta property="og:image"`)
			p.attr("content", pg.Meta.Image)
			p.raw(`>`)
		}
		p.raw(`<link rel="alternate" type="application/rss+xml" href="/feed.xml"`)
		p.attr("title", pg.CompanyName()+" Blog")
		p.raw(`><link rel="stylesheet" href="/public/site.css">`)
		for _, ld := range pg.Meta.JSONLD {
			// JSON-LD is produced by encoding/json, which escapes <, > and &.
			p.raw(`<script type="application/ld+json">`, ld, `</script>`)
		}
		p.raw(`</head><body>`)
		header(p, pg)
		p.raw(`<main>`)
		p.render(body)
		p.raw(`</main>`)
		footer(p, pg)
		p.raw(`</body></html>`)
	})
}

func header(p *printer, pg Page) {
	p.raw(`<header class="site-header"><div class="container"><a class="brand" href="/">`)
	p.text(pg.CompanyName())
	p.raw(`</a><nav>`)
	for _, item := range mainNav {
		p.raw(`<a`)
		p.attr("href", item.Href)
		if active(pg.Path, item.Href) {
			p.raw(` class="active" aria-current="page"`)
		}
		p.raw(`>`)
		p.text(item.Label)
		p.raw(`</a>`)
	}
	p.raw(`<a class="button" href="/iletisim/">İletişim</a>`)
	p.raw(`<a class="button primary" href="/teklif-al/">Teklif Al</a>`)
	p.raw(`</nav></div></header>`)
}

func footer(p *printer, pg Page) {
	p.raw(`<footer class="site-footer"><div class="container grid">`)
	p.raw(`<div><strong>`)
	p.text(pg.CompanyName())
	p.raw(`</strong>`)
	if pg.Site.Description != "" {
		p.raw(`<p>`)
		p.text(pg.Site.Description)
		p.raw(`</p>`)
	}
	p.raw(`</div><div><h4>Sayfalar</h4><ul>`)
	for _, item := range mainNav {
		p.raw(`<li><a`)
		p.attr("href", item.Href)
		p.raw(`>`)
		p.text(item.Label)
		p.raw(`</a></li>`)
	}
	p.raw(`</ul></div>`)
	if s := pg.Settings; s != nil {
		p.raw(`<div><h4>İletişim</h4><address>`)
		p.text(s.Address)
		p.raw(`<br><a`)
		p.href("tel:" + strings.ReplaceAll(s.Phone, " ", ""))
		p.raw(`>`)
		p.text(s.Phone)
		p.raw(`</a>`)
		if phone2 := model.Deref(s.Phone2); phone2 != "" {
			p.raw(`<br>`)
			p.text(phone2)
		}
		p.raw(`<br><a`)
		p.href("mailto:" + s.Email)
		p.raw(`>`)
		p.text(s.Email)
		p.raw(`</a></address>`)
		socials(p, s)
		p.raw(`</div>`)
	}
	p.raw(`</div><p class="container copyright">© `)
	p.text(pg.CompanyName())
	p.raw(`. Tüm hakları saklıdır.</p></footer>`)
}

func socials(p *printer, s *model.SiteSettings) {
	links := []struct {
		label string
		url   *string
	}{
		{"Facebook", s.Facebook},
		{"Instagram", s.Instagram},
		{"X", s.Twitter},
		{"LinkedIn", s.LinkedIn},
		{"YouTube", s.YouTube},
	}
	p.raw(`<ul class="socials">`)
	for _, l := range links {
		if u := model.Deref(l.url); u != "" {
			p.raw(`<li><a rel="noopener" target="_blank"`)
			p.href(u)
			p.raw(`>`)
			p.text(l.label)
			p.raw(`</a></li>`)
		}
	}
	p.raw(`</ul>`)
}
