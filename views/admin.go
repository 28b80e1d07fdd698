package views

import (
	"strings"

	"github.com/a-h/templ"

	"github.com/gokler/sitecms/model"
)

var adminNav = []navItem{
	{"Panel", "/admin/"},
	{"Blog", "/admin/blog/"},
	{"Projeler", "/admin/projeler/"},
	{"Galeri", "/admin/galeri/"},
	{"Yorumlar", "/admin/yorumlar/"},
	{"Teklifler", "/admin/teklifler/"},
	{"Mesajlar", "/admin/mesajlar/"},
	{"SEO", "/admin/seo/"},
	{"Görseller", "/admin/gorseller/"},
	{"Ayarlar", "/admin/ayarlar/"},
}

func adminLayout(pg Page, title string, body templ.Component) templ.Component {
	return component(func(p *printer) {
		p.raw(`<!doctype html><html lang="tr"><head><meta charset="utf-8"><meta name="robots" content="noindex">`)
		p.raw(`<meta name="viewport" content="width=device-width, initial-scale=1"><title>`)
		p.text(title + " | Yönetim")
		p.raw(`</title><link rel="stylesheet" href="/public/site.css"></head><body class="admin"><aside class="sidebar"><a class="brand" href="/admin/">`)
		p.text(pg.CompanyName())
		p.raw(`</a><nav>`)
		for _, item := range adminNav {
			p.raw(`<a`)
			p.attr("href", item.Href)
			if pg.Path == item.Href || (item.Href != "/admin/" && strings.HasPrefix(pg.Path, item.Href)) {
				p.raw(` class="active"`)
			}
			p.raw(`>`)
			p.text(item.Label)
			p.raw(`</a>`)
		}
		p.raw(`</nav><a href="/" target="_blank">Siteyi görüntüle</a><form method="post" action="/admin/logout/">`)
		p.csrfField(pg.CSRF)
		p.raw(`<button type="submit" class="link">Çıkış</button></form></aside><main class="admin-main"><h1>`)
		p.text(title)
		p.raw(`</h1>`)
		if pg.Message != "" {
			p.raw(`<p class="notice">`)
			p.text(pg.Message)
			p.raw(`</p>`)
		}
		p.render(body)
		p.raw(`</main></body></html>`)
	})
}

// AdminLogin renders the login form. errMsg is shown above it when set.
func AdminLogin(pg Page, email, errMsg string) templ.Component {
	return component(func(p *printer) {
		p.raw(`<!doctype html><html lang="tr"><head><meta charset="utf-8"><meta name="robots" content="noindex">`)
		p.raw(`<meta name="viewport" content="width=device-width, initial-scale=1"><title>Giriş</title><link rel="stylesheet" href="/public/site.css"></head>`)
		p.raw(`<body class="admin login"><form class="card form" method="post" action="/admin/login/"><h1>`)
		p.text(pg.CompanyName())
		p.raw(`</h1>`)
		if errMsg != "" {
			p.raw(`<p class="notice error">`)
			p.text(errMsg)
			p.raw(`</p>`)
		}
		p.csrfField(pg.CSRF)
		p.raw(`<label for="email">E-posta</label><input id="email" name="email" type="email" required autocomplete="username"`)
		p.attr("value", email)
		p.raw(`><label for="password">Şifre</label><input id="password" name="password" type="password" required autocomplete="current-password">`)
		p.raw(`<button class="button primary" type="submit">Giriş yap</button></form></body></html>`)
	})
}

// AdminDashboard renders counters and the latest submissions.
func AdminDashboard(pg Page, d model.Dashboard) templ.Component {
	return adminLayout(pg, "Panel", component(func(p *printer) {
		cards := []struct {
			label string
			value int
			total int // -1 hides the total
			href  string
		}{
			{"Yeni teklif", d.Stats.NewQuotes, -1, "/admin/teklifler/?status=new"},
			{"Okunmamış mesaj", d.Stats.UnreadContacts, -1, "/admin/mesajlar/?status=unread"},
			{"Proje (yayında / toplam)", d.Stats.PublishedProjects, d.Stats.TotalProjects, "/admin/projeler/"},
			{"Blog yazısı (yayında / toplam)", d.Stats.PublishedBlogPosts, d.Stats.TotalBlogPosts, "/admin/blog/"},
		}
		p.raw(`<div class="grid stats">`)
		for _, c := range cards {
			p.raw(`<a class="card"`)
			p.attr("href", c.href)
			p.raw(`><strong>`)
			p.text(itoa(c.value))
			if c.total >= 0 {
				p.text(" / " + itoa(c.total))
			}
			p.raw(`</strong><span>`)
			p.text(c.label)
			p.raw(`</span></a>`)
		}
		p.raw(`</div><div class="grid two"><section><h2>Son teklifler</h2>`)
		if len(d.RecentQuotes) == 0 {
			p.raw(`<p class="empty">Teklif yok.</p>`)
		}
		p.raw(`<ul class="recent">`)
		for _, q := range d.RecentQuotes {
			p.raw(`<li><a`)
			p.attr("href", "/admin/teklifler/"+q.ID+"/")
			p.raw(`>`)
			p.text(q.Name + " · " + q.ProjectType)
			p.raw(`</a> <span class="badge">`)
			p.text(StatusLabel(q.Status))
			p.raw(`</span> <small>`)
			p.text(FormatDateTime(q.CreatedAt))
			p.raw(`</small></li>`)
		}
		p.raw(`</ul></section><section><h2>Son mesajlar</h2>`)
		if len(d.RecentContacts) == 0 {
			p.raw(`<p class="empty">Mesaj yok.</p>`)
		}
		p.raw(`<ul class="recent">`)
		for _, c := range d.RecentContacts {
			p.raw(`<li><a`)
			p.attr("href", "/admin/mesajlar/"+c.ID+"/")
			p.raw(`>`)
			p.text(c.Name + " · " + c.Subject)
			p.raw(`</a> <span class="badge">`)
			p.text(StatusLabel(c.Status))
			p.raw(`</span> <small>`)
			p.text(FormatDateTime(c.CreatedAt))
			p.raw(`</small></li>`)
		}
		p.raw(`</ul></section></div>`)
	}))
}

// Row is one record in an admin list.
type Row struct {
	ID        string
	Cells     []string
	Published *bool
	Status    string
	// Link is the public URL of the record, if it has one.
	Link string
}

// ListScreen describes an admin list page.
type ListScreen struct {
	Title      string
	Base       string // e.g. "/admin/blog/"
	Columns    []string
	Rows       []Row
	Query      string
	Status     string
	Statuses   []string
	Category   string
	Categories []string
	// CanCreate shows the "new" button; CanToggle the publish switch.
	CanCreate bool
	CanToggle bool
}

// AdminList renders a searchable table of records with edit, publish and
// delete actions.
func AdminList(pg Page, ls ListScreen) templ.Component {
	return adminLayout(pg, ls.Title, component(func(p *printer) {
		p.raw(`<form class="toolbar" method="get"`)
		p.attr("action", ls.Base)
		p.raw(`><input type="search" name="q" placeholder="Ara"`)
		p.attr("value", ls.Query)
		p.raw(`>`)
		if len(ls.Statuses) > 0 {
			p.raw(`<select name="status"><option value="">Tüm durumlar</option>`)
			for _, s := range ls.Statuses {
				p.raw(`<option`)
				p.attr("value", s)
				if s == ls.Status {
					p.raw(` selected`)
				}
				p.raw(`>`)
				p.text(StatusLabel(s))
				p.raw(`</option>`)
			}
			p.raw(`</select>`)
		}
		if len(ls.Categories) > 0 {
			p.raw(`<select name="category"><option value="">Tüm kategoriler</option>`)
			for _, cat := range ls.Categories {
				p.raw(`<option`)
				p.attr("value", cat)
				if cat == ls.Category {
					p.raw(` selected`)
				}
				p.raw(`>`)
				p.text(cat)
				p.raw(`</option>`)
			}
			p.raw(`</select>`)
		}
		p.raw(`<button type="submit" class="button">Filtrele</button>`)
		if ls.CanCreate {
			p.raw(`<a class="button primary"`)
			p.attr("href", ls.Base+"yeni/")
			p.raw(`>Yeni ekle</a>`)
		}
		p.raw(`</form>`)
		if len(ls.Rows) == 0 {
			p.raw(`<p class="empty">Kayıt bulunamadı.</p>`)
			return
		}
		p.raw(`<table class="list"><thead><tr>`)
		for _, c := range ls.Columns {
			p.raw(`<th>`)
			p.text(c)
			p.raw(`</th>`)
		}
		if ls.CanToggle {
			p.raw(`<th>Yayın</th>`)
		}
		if len(ls.Statuses) > 0 {
			p.raw(`<th>Durum</th>`)
		}
		p.raw(`<th></th></tr></thead><tbody>`)
		for _, r := range ls.Rows {
			edit := ls.Base + r.ID + "/"
			p.raw(`<tr>`)
			for i, c := range r.Cells {
				p.raw(`<td>`)
				if i == 0 {
					p.raw(`<a`)
					p.attr("href", edit)
					p.raw(`>`)
					p.text(c)
					p.raw(`</a>`)
				} else {
					p.text(c)
				}
				p.raw(`</td>`)
			}
			if ls.CanToggle {
				p.raw(`<td><form method="post"`)
				p.attr("action", edit+"toggle/")
				p.raw(`>`)
				p.csrfField(pg.CSRF)
				if r.Published != nil && *r.Published {
					p.raw(`<button type="submit" class="badge on">Yayında</button>`)
				} else {
					p.raw(`<button type="submit" class="badge off">Taslak</button>`)
				}
				p.raw(`</form></td>`)
			}
			if len(ls.Statuses) > 0 {
				p.raw(`<td><span class="badge">`)
				p.text(StatusLabel(r.Status))
				p.raw(`</span></td>`)
			}
			p.raw(`<td class="actions">`)
			if r.Link != "" {
				p.raw(`<a target="_blank"`)
				p.attr("href", r.Link)
				p.raw(`>Görüntüle</a> `)
			}
			p.raw(`<a`)
			p.attr("href", edit)
			p.raw(`>Düzenle</a> <form method="post" onsubmit="return confirm('Silinsin mi?')"`)
			p.attr("action", edit+"delete/")
			p.raw(`>`)
			p.csrfField(pg.CSRF)
			p.raw(`<button type="submit" class="link danger">Sil</button></form></td></tr>`)
		}
		p.raw(`</tbody></table>`)
	}))
}

// FormScreen describes an admin create or edit page.
type FormScreen struct {
	Title  string
	Action string
	Back   string
	Form   Form
	State  FormState
}

// AdminForm renders an edit form from its field descriptors.
func AdminForm(pg Page, fs FormScreen) templ.Component {
	return adminLayout(pg, fs.Title, component(func(p *printer) {
		p.raw(`<form class="form admin-form" method="post"`)
		p.attr("action", fs.Action)
		p.raw(`>`)
		p.csrfField(pg.CSRF)
		if msg := fs.State.Errors["form"]; msg != "" {
			p.raw(`<p class="notice error">`)
			p.text(msg)
			p.raw(`</p>`)
		}
		for _, fd := range fs.Form {
			renderField(p, fd, fs.State)
		}
		p.raw(`<div class="form-actions"><button type="submit" class="button primary">Kaydet</button>`)
		if fs.Back != "" {
			p.raw(` <a class="button"`)
			p.attr("href", fs.Back)
			p.raw(`>Geri</a>`)
		}
		p.raw(`</div></form>`)
	}))
}

func renderField(p *printer, fd Field, st FormState) {
	val := st.Value(fd.Name)
	p.raw(`<div class="field">`)
	if fd.Kind == KindCheckbox {
		p.raw(`<label><input type="checkbox" value="true"`)
		p.attr("name", fd.Name)
		if val == "true" {
			p.raw(` checked`)
		}
		if fd.ReadOnly {
			p.raw(` disabled`)
		}
		p.raw(`> `)
		p.text(fd.Label)
		p.raw(`</label>`)
		fieldError(p, st.Errors[fd.Name])
		p.raw(`</div>`)
		return
	}
	p.raw(`<label`)
	p.attr("for", "f-"+fd.Name)
	p.raw(`>`)
	p.text(fd.Label)
	if fd.Required {
		p.raw(` *`)
	}
	p.raw(`</label>`)
	switch {
	case fd.ReadOnly:
		p.raw(`<div class="readonly">`)
		p.text(val)
		p.raw(`</div>`)
	case len(fd.Options) > 0:
		p.raw(`<select`)
		p.attr("id", "f-"+fd.Name)
		p.attr("name", fd.Name)
		p.raw(`>`)
		for _, o := range fd.Options {
			p.raw(`<option`)
			p.attr("value", o)
			if o == val {
				p.raw(` selected`)
			}
			p.raw(`>`)
			p.text(StatusLabel(o))
			p.raw(`</option>`)
		}
		p.raw(`</select>`)
	case fd.Kind == KindTextArea || fd.Kind == KindMarkdown || fd.Kind == KindList:
		rows := "4"
		if fd.Kind == KindMarkdown {
			rows = "18"
		}
		p.raw(`<textarea`)
		p.attr("id", "f-"+fd.Name)
		p.attr("name", fd.Name)
		p.attr("rows", rows)
		p.raw(`>`)
		p.text(val)
		p.raw(`</textarea>`)
	default:
		typ := "text"
		switch fd.Kind {
		case KindEmail:
			typ = "email"
		case KindURL:
			// Relative upload paths are valid too, so not type=url.
			typ = "text"
		case KindNumber:
			typ = "number"
		}
		p.raw(`<input`)
		p.attr("id", "f-"+fd.Name)
		p.attr("name", fd.Name)
		p.attr("type", typ)
		p.attr("value", val)
		p.raw(`>`)
	}
	if fd.Help != "" {
		p.raw(`<small>`)
		p.text(fd.Help)
		p.raw(`</small>`)
	}
	fieldError(p, st.Errors[fd.Name])
	p.raw(`</div>`)
}

// AdminUploads renders the image library with its upload form.
func AdminUploads(pg Page, uploads []model.Upload) templ.Component {
	return adminLayout(pg, "Görseller", component(func(p *printer) {
		p.raw(`<form class="toolbar" method="post" enctype="multipart/form-data" action="/admin/gorseller/">`)
		p.csrfField(pg.CSRF)
		p.raw(`<input type="file" name="image" accept="image/*" required><button type="submit" class="button primary">Yükle</button></form>`)
		if len(uploads) == 0 {
			p.raw(`<p class="empty">Henüz görsel yüklenmedi.</p>`)
			return
		}
		p.raw(`<div class="grid gallery">`)
		for _, u := range uploads {
			p.raw(`<figure>`)
			image(p, u.URL(), u.OriginalName)
			p.raw(`<figcaption><code>`)
			p.text(u.URL())
			p.raw(`</code><br><small>`)
			p.text(itoa(u.Width) + "×" + itoa(u.Height) + " · " + itoa(u.Size/1024) + " KB")
			p.raw(`</small><form method="post" onsubmit="return confirm('Silinsin mi?')"`)
			p.attr("action", "/admin/gorseller/"+u.Filename+"/delete/")
			p.raw(`>`)
			p.csrfField(pg.CSRF)
			p.raw(`<button type="submit" class="link danger">Sil</button></form></figcaption></figure>`)
		}
		p.raw(`</div>`)
	}))
}
