package views

import (
	"strings"

	"github.com/a-h/templ"

	"github.com/gokler/sitecms/markdown"
	"github.com/gokler/sitecms/model"
)

type service struct {
	Anchor      string
	Title       string
	Description string
	Features    []string
}

var services = []service{
	{"konut-site", "Konut Site Projeleri", "Ailelere özel, güvenlikli ve sosyal alanlarıyla modern yaşam alanları inşa ediyoruz.",
		[]string{"Kapalı Site Projeleri", "Sosyal Tesisler", "7/24 Güvenlik"}},
	{"lokasyon", "Prestijli Lokasyonlar", "Şehir Hastanesi ve ana ulaşım akslarına yakın, her geçen gün değer kazanan projeler geliştiriyoruz.",
		[]string{"Stratejik Konumlar", "Ulaşım Avantajı", "Değer Artışı"}},
	{"yapi", "Güçlü Yapı & Mühendislik", "Güncel deprem yönetmeliklerine uygun, uzun ömürlü malzemelerle sağlam yapılar üretiyoruz.",
		[]string{"Deprem Yönetmeliği", "Kaliteli Malzeme", "Uzman Ekip"}},
	{"destek", "Yatırım ve Satış Sonrası Destek", "Satın alma sürecinden teslimata, kiralama ve değer artışı konusunda uzman ekibimizle yanınızdayız.",
		[]string{"Yatırım Danışmanlığı", "Kiralama Desteği", "Sürekli İletişim"}},
}

var stats = []struct{ Value, Label string }{
	{"25+", "Yıllık Deneyim"},
	{"150+", "Tamamlanan Proje"},
	{"500K", "Toplam m²"},
	{"1200+", "Mutlu Müşteri"},
}

var values = []struct{ Title, Description string }{
	{"Vizyon", "Türkiye'nin önde gelen inşaat firmalarından biri olmak ve sektörde yenilikçi uygulamalarla öncü rol üstlenmek."},
	{"Misyon", "Müşterilerimize kaliteli, güvenli ve zamanında teslim edilen projelerle değer katmak ve güvenilir bir iş ortağı olmak."},
	{"Değerlerimiz", "Dürüstlük, kalite, güvenilirlik ve müşteri memnuniyeti iş yapış şeklimizin temel taşlarıdır."},
	{"Ekibimiz", "Deneyimli mühendisler, mimarlar ve ustalardan oluşan profesyonel ekibimizle hizmet veriyoruz."},
}

var milestones = []struct{ Year, Title, Description string }{
	{"1999", "Kuruluş", "Firmamız kuruldu"},
	{"2005", "İlk Büyük Proje", "100+ daire projesini tamamladık"},
	{"2010", "Ticari İnşaat", "Ticari projelere adım attık"},
	{"2015", "ISO Sertifikası", "ISO 9001 kalite belgesi aldık"},
	{"2020", "Endüstriyel", "Fabrika projelerine başladık"},
	{"2024", "Günümüz", "150+ proje tamamlandı"},
}

// Options of the public quote form.
var (
	ProjectTypes = []string{"Konut İnşaatı", "Ticari İnşaat", "Tadilat & Renovasyon", "Proje Yönetimi", "Mimari Tasarım", "İç Mimarlık"}
	BudgetRanges = []string{"500.000 TL - 1.000.000 TL", "1.000.000 TL - 2.500.000 TL", "2.500.000 TL - 5.000.000 TL", "5.000.000 TL - 10.000.000 TL", "10.000.000 TL ve üzeri"}
	Subjects     = []string{"Genel Bilgi", "Teklif Talebi", "İş Birliği"}
)

func pageHeader(p *printer, title, lead string) {
	p.raw(`<section class="page-header"><div class="container"><h1>`)
	p.text(title)
	p.raw(`</h1>`)
	if lead != "" {
		p.raw(`<p class="lead">`)
		p.text(lead)
		p.raw(`</p>`)
	}
	p.raw(`</div></section>`)
}

func image(p *printer, src, alt string) {
	if src == "" {
		p.raw(`<div class="placeholder"></div>`)
		return
	}
	p.raw(`<img loading="lazy"`)
	p.urlAttr("src", src)
	p.attr("alt", alt)
	p.raw(`>`)
}

func date(p *printer, pg model.BlogPost) {
	p.raw(`<time`)
	p.attr("datetime", pg.CreatedAt.Format("2006-01-02"))
	p.raw(`>`)
	p.text(FormatDate(pg.CreatedAt))
	p.raw(`</time>`)
}

func projectCard(p *printer, pr model.Project) {
	p.raw(`<article class="card"><a`)
	p.attr("href", pr.Link())
	p.raw(`>`)
	image(p, pr.Image, pr.Title)
	p.raw(`<div class="card-body"><span class="badge">`)
	p.text(pr.Category)
	p.raw(`</span><h3>`)
	p.text(pr.Title)
	p.raw(`</h3><p class="muted">`)
	p.text(pr.Location)
	if pr.Year != "" {
		p.raw(` · `)
		p.text(pr.Year)
	}
	p.raw(`</p></div></a></article>`)
}

func postCard(p *printer, post model.BlogPost) {
	p.raw(`<article class="card"><a`)
	p.attr("href", post.Link())
	p.raw(`>`)
	image(p, post.Image, post.Title)
	p.raw(`<div class="card-body"><span class="badge">`)
	p.text(post.Category)
	p.raw(`</span><h3>`)
	p.text(post.Title)
	p.raw(`</h3><p>`)
	p.text(post.Excerpt)
	p.raw(`</p><p class="muted">`)
	date(p, post)
	p.raw(` · `)
	p.text(post.ReadTime)
	p.raw(`</p></div></a></article>`)
}

func stars(n int) string {
	if n < 0 {
		n = 0
	}
	if n > 5 {
		n = 5
	}
	return strings.Repeat("★", n) + strings.Repeat("☆", 5-n)
}

// categoryFilter renders links that narrow a list page to one category.
func categoryFilter(p *printer, base string, categories []string, activeCat string) {
	if len(categories) == 0 {
		return
	}
	p.raw(`<nav class="filters"><a`)
	p.attr("href", base)
	if activeCat == "" {
		p.raw(` class="active"`)
	}
	p.raw(`>Tümü</a>`)
	for _, c := range categories {
		p.raw(`<a`)
		p.attr("href", base+"?kategori="+urlQueryEscape(c))
		if c == activeCat {
			p.raw(` class="active"`)
		}
		p.raw(`>`)
		p.text(c)
		p.raw(`</a>`)
	}
	p.raw(`</nav>`)
}

// HomeData is what the home page shows besides static copy.
type HomeData struct {
	Projects     []model.Project
	Posts        []model.BlogPost
	Testimonials []model.Testimonial
}

// Home renders the landing page.
func Home(pg Page, d HomeData) templ.Component {
	return Layout(pg, component(func(p *printer) {
		p.raw(`<section class="hero"><div class="container"><h1>`)
		p.text(pg.CompanyName())
		p.raw(`</h1><p class="lead">`)
		p.text(pg.Site.Description)
		p.raw(`</p><p><a class="button primary" href="/projeler/">Projelerimiz</a> <a class="button" href="/teklif-al/">Teklif Al</a></p></div></section>`)

		p.raw(`<section class="stats"><div class="container grid">`)
		for _, s := range stats {
			p.raw(`<div><strong>`)
			p.text(s.Value)
			p.raw(`</strong><span>`)
			p.text(s.Label)
			p.raw(`</span></div>`)
		}
		p.raw(`</div></section>`)

		if len(d.Projects) > 0 {
			p.raw(`<section><div class="container"><h2>Öne Çıkan Projeler</h2><div class="grid cards">`)
			for _, pr := range d.Projects {
				projectCard(p, pr)
			}
			p.raw(`</div><p><a href="/projeler/">Tüm projeler →</a></p></div></section>`)
		}

		p.raw(`<section><div class="container"><h2>Hizmetlerimiz</h2><div class="grid cards">`)
		for _, s := range services {
			p.raw(`<a class="card service"`)
			p.attr("href", "/hizmetler/#"+s.Anchor)
			p.raw(`><h3>`)
			p.text(s.Title)
			p.raw(`</h3><p>`)
			p.text(s.Description)
			p.raw(`</p></a>`)
		}
		p.raw(`</div></div></section>`)

		if len(d.Testimonials) > 0 {
			p.raw(`<section class="testimonials"><div class="container"><h2>Müşterilerimiz Ne Diyor?</h2><div class="grid cards">`)
			for _, t := range d.Testimonials {
				p.raw(`<blockquote class="card"><p class="stars"`)
				p.attr("aria-label", itoa(t.Rating)+"/5")
				p.raw(`>`)
				p.text(stars(t.Rating))
				p.raw(`</p><p>`)
				p.text(t.Content)
				p.raw(`</p><footer><strong>`)
				p.text(t.Name)
				p.raw(`</strong> `)
				p.text(t.Role)
				if c := model.Deref(t.Company); c != "" {
					p.raw(`, `)
					p.text(c)
				}
				p.raw(`</footer></blockquote>`)
			}
			p.raw(`</div></div></section>`)
		}

		if len(d.Posts) > 0 {
			p.raw(`<section><div class="container"><h2>Blog</h2><div class="grid cards">`)
			for _, post := range d.Posts {
				postCard(p, post)
			}
			p.raw(`</div></div></section>`)
		}

		p.raw(`<section class="cta"><div class="container"><h2>Projeniz için teklif alın</h2><p>Hayalinizdeki yapıyı birlikte planlayalım.</p><a class="button primary" href="/teklif-al/">Teklif Al</a></div></section>`)
	}))
}

// About renders the company page.
func About(pg Page) templ.Component {
	return Layout(pg, component(func(p *printer) {
		pageHeader(p, "Hakkımızda", pg.Meta.Description)
		p.raw(`<section><div class="container grid cards">`)
		for _, v := range values {
			p.raw(`<div class="card"><h3>`)
			p.text(v.Title)
			p.raw(`</h3><p>`)
			p.text(v.Description)
			p.raw(`</p></div>`)
		}
		p.raw(`</div></section><section><div class="container"><h2>Tarihçe</h2><ol class="timeline">`)
		for _, m := range milestones {
			p.raw(`<li><span class="year">`)
			p.text(m.Year)
			p.raw(`</span><h3>`)
			p.text(m.Title)
			p.raw(`</h3><p>`)
			p.text(m.Description)
			p.raw(`</p></li>`)
		}
		p.raw(`</ol></div></section>`)
	}))
}

// Services renders the services page.
func Services(pg Page) templ.Component {
	return Layout(pg, component(func(p *printer) {
		pageHeader(p, "Hizmetlerimiz", "Geniş hizmet yelpazemizle inşaat ihtiyaçlarınızın tamamını karşılıyoruz.")
		p.raw(`<div class="container">`)
		for _, s := range services {
			p.raw(`<section class="service-detail"`)
			p.attr("id", s.Anchor)
			p.raw(`><h2>`)
			p.text(s.Title)
			p.raw(`</h2><p>`)
			p.text(s.Description)
			p.raw(`</p><ul>`)
			for _, f := range s.Features {
				p.raw(`<li>`)
				p.text(f)
				p.raw(`</li>`)
			}
			p.raw(`</ul></section>`)
		}
		p.raw(`</div>`)
	}))
}

// Projects renders the portfolio list.
func Projects(pg Page, projects []model.Project, categories []string, activeCat string) templ.Component {
	return Layout(pg, component(func(p *printer) {
		pageHeader(p, "Projelerimiz", pg.Meta.Description)
		p.raw(`<div class="container">`)
		categoryFilter(p, "/projeler/", categories, activeCat)
		if len(projects) == 0 {
			p.raw(`<p class="empty">Bu kategoride henüz proje yok.</p>`)
		}
		p.raw(`<div class="grid cards">`)
		for _, pr := range projects {
			projectCard(p, pr)
		}
		p.raw(`</div></div>`)
	}))
}

// ProjectDetail renders one project with its gallery and related projects.
func ProjectDetail(pg Page, pr model.Project, related []model.Project) templ.Component {
	return Layout(pg, component(func(p *printer) {
		p.raw(`<article class="container project"><p><a href="/projeler/">← Projeler</a></p><h1>`)
		p.text(pr.Title)
		p.raw(`</h1>`)
		image(p, pr.Image, pr.Title)
		p.raw(`<dl class="facts">`)
		facts := [][2]string{
			{"Kategori", pr.Category},
			{"Konum", pr.Location},
			{"Yıl", pr.Year},
			{"Alan", pr.Area},
			{"İşveren", pr.Client},
			{"Durum", StatusLabel(pr.Status)},
		}
		for _, f := range facts {
			if f[1] == "" {
				continue
			}
			p.raw(`<dt>`)
			p.text(f[0])
			p.raw(`</dt><dd>`)
			p.text(f[1])
			p.raw(`</dd>`)
		}
		p.raw(`</dl><div class="prose">`)
		for _, para := range strings.Split(pr.Description, "\n\n") {
			p.raw(`<p>`)
			p.text(para)
			p.raw(`</p>`)
		}
		p.raw(`</div>`)
		if len(pr.Features) > 0 {
			p.raw(`<h2>Özellikler</h2><ul class="features">`)
			for _, f := range pr.Features {
				p.raw(`<li>`)
				p.text(f)
				p.raw(`</li>`)
			}
			p.raw(`</ul>`)
		}
		if len(pr.Gallery) > 0 {
			p.raw(`<h2>Galeri</h2><div class="grid gallery">`)
			for _, src := range pr.Gallery {
				image(p, src, pr.Title)
			}
			p.raw(`</div>`)
		}
		if len(pr.Tags) > 0 {
			p.raw(`<p class="tags">`)
			for _, t := range pr.Tags {
				p.raw(`<span class="badge">`)
				p.text(t)
				p.raw(`</span> `)
			}
			p.raw(`</p>`)
		}
		if len(related) > 0 {
			p.raw(`<h2>Benzer Projeler</h2><div class="grid cards">`)
			for _, r := range related {
				projectCard(p, r)
			}
			p.raw(`</div>`)
		}
		p.raw(`</article>`)
	}))
}

// Blog renders the post list.
func Blog(pg Page, posts []model.BlogPost, categories []string, activeCat string) templ.Component {
	return Layout(pg, component(func(p *printer) {
		pageHeader(p, "Blog", pg.Meta.Description)
		p.raw(`<div class="container">`)
		categoryFilter(p, "/blog/", categories, activeCat)
		if len(posts) == 0 {
			p.raw(`<p class="empty">Henüz yazı yok.</p>`)
		}
		p.raw(`<div class="grid cards">`)
		for _, post := range posts {
			postCard(p, post)
		}
		p.raw(`</div></div>`)
	}))
}

// BlogPost renders one article with a table of contents and recent posts.
func BlogPost(pg Page, post model.BlogPost, recent []model.BlogPost) templ.Component {
	return Layout(pg, component(func(p *printer) {
		p.raw(`<article class="container post"><p><a href="/blog/">← Blog</a></p><span class="badge">`)
		p.text(post.Category)
		p.raw(`</span><h1>`)
		p.text(post.Title)
		p.raw(`</h1><p class="muted">`)
		p.text(post.Author)
		p.raw(` · `)
		date(p, post)
		p.raw(` · `)
		p.text(post.ReadTime)
		p.raw(`</p>`)
		image(p, post.Image, post.Title)
		if hs := markdown.Headings(post.Content); len(hs) > 1 {
			p.raw(`<nav class="toc"><h2>İçindekiler</h2><ul>`)
			for _, h := range hs {
				p.raw(`<li`)
				p.attr("class", "level-"+itoa(h.Level))
				p.raw(`><a`)
				p.attr("href", "#"+h.Anchor)
				p.raw(`>`)
				p.text(h.Text)
				p.raw(`</a></li>`)
			}
			p.raw(`</ul></nav>`)
		}
		p.raw(`<div class="prose">`)
		p.render(markdown.Markdown(post.Content))
		p.raw(`</div>`)
		if len(recent) > 0 {
			p.raw(`<aside><h2>Diğer Yazılar</h2><div class="grid cards">`)
			for _, r := range recent {
				postCard(p, r)
			}
			p.raw(`</div></aside>`)
		}
		p.raw(`</article>`)
	}))
}

// Gallery renders the image gallery.
func Gallery(pg Page, items []model.GalleryItem, categories []string, activeCat string) templ.Component {
	return Layout(pg, component(func(p *printer) {
		pageHeader(p, "Galeri", pg.Meta.Description)
		p.raw(`<div class="container">`)
		categoryFilter(p, "/galeri/", categories, activeCat)
		if len(items) == 0 {
			p.raw(`<p class="empty">Henüz görsel yok.</p>`)
		}
		p.raw(`<div class="grid gallery">`)
		for _, it := range items {
			p.raw(`<figure>`)
			image(p, it.Image, it.Title)
			p.raw(`<figcaption>`)
			p.text(it.Title)
			p.raw(`</figcaption></figure>`)
		}
		p.raw(`</div></div>`)
	}))
}
