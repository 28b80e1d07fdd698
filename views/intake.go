package views

import "github.com/a-h/templ"

// inputField renders a labelled input of a public form.
func inputField(p *printer, f FormState, name, label, typ string, required bool) {
	p.raw(`<label`)
	p.attr("for", name)
	p.raw(`>`)
	p.text(label)
	if required {
		p.raw(` *`)
	}
	p.raw(`</label><input`)
	p.attr("id", name)
	p.attr("name", name)
	p.attr("type", typ)
	p.attr("value", f.Value(name))
	if required {
		p.raw(` required`)
	}
	p.raw(`>`)
	fieldError(p, f.Errors[name])
}

func selectField(p *printer, f FormState, name, label string, options []string, required bool) {
	p.raw(`<label`)
	p.attr("for", name)
	p.raw(`>`)
	p.text(label)
	if required {
		p.raw(` *`)
	}
	p.raw(`</label><select`)
	p.attr("id", name)
	p.attr("name", name)
	if required {
		p.raw(` required`)
	}
	p.raw(`><option value="">Seçiniz</option>`)
	for _, o := range options {
		p.raw(`<option`)
		p.attr("value", o)
		if o == f.Value(name) {
			p.raw(` selected`)
		}
		p.raw(`>`)
		p.text(o)
		p.raw(`</option>`)
	}
	p.raw(`</select>`)
	fieldError(p, f.Errors[name])
}

func textareaField(p *printer, f FormState, name, label string, required bool) {
	p.raw(`<label`)
	p.attr("for", name)
	p.raw(`>`)
	p.text(label)
	if required {
		p.raw(` *`)
	}
	p.raw(`</label><textarea rows="5"`)
	p.attr("id", name)
	p.attr("name", name)
	if required {
		p.raw(` required`)
	}
	p.raw(`>`)
	p.text(f.Value(name))
	p.raw(`</textarea>`)
	fieldError(p, f.Errors[name])
}

func fieldError(p *printer, msg string) {
	if msg != "" {
		p.raw(`<p class="field-error">`)
		p.text(msg)
		p.raw(`</p>`)
	}
}

func formNotice(p *printer, f FormState, success string) {
	switch {
	case f.Sent:
		p.raw(`<p class="notice success">`)
		p.text(success)
		p.raw(`</p>`)
	case f.Notice != "":
		p.raw(`<p class="notice error">`)
		p.text(f.Notice)
		p.raw(`</p>`)
	}
}

// Contact renders the contact page and its message form.
func Contact(pg Page, f FormState) templ.Component {
	return Layout(pg, component(func(p *printer) {
		pageHeader(p, "İletişim", "Sorularınız için bize ulaşın, en kısa sürede dönüş yapalım.")
		p.raw(`<div class="container grid two">`)
		if s := pg.Settings; s != nil {
			p.raw(`<div class="card"><h2>İletişim Bilgileri</h2><p>`)
			p.text(s.Address)
			p.raw(`</p><p>`)
			p.text(s.Phone)
			p.raw(`<br>`)
			p.text(s.Email)
			p.raw(`</p>`)
			if mapURL := s.MapURL; mapURL != nil && *mapURL != "" {
				p.raw(`<p><a target="_blank" rel="noopener"`)
				p.href(*mapURL)
				p.raw(`>Haritada göster</a></p>`)
			}
			p.raw(`</div>`)
		}
		p.raw(`<form class="card form" method="post" action="/iletisim/">`)
		formNotice(p, f, "Mesajınız alındı. En kısa sürede size dönüş yapacağız.")
		p.csrfField(pg.CSRF)
		inputField(p, f, "name", "Ad Soyad", "text", true)
		inputField(p, f, "email", "E-posta", "email", true)
		inputField(p, f, "phone", "Telefon", "tel", false)
		selectField(p, f, "subject", "Konu", Subjects, true)
		textareaField(p, f, "message", "Mesajınız", true)
		p.raw(`<button class="button primary" type="submit">Gönder</button></form></div>`)
	}))
}

// Quote renders the quote request form.
func Quote(pg Page, f FormState) templ.Component {
	return Layout(pg, component(func(p *printer) {
		pageHeader(p, "Teklif Al", "Projenizi anlatın, size özel teklifimizi hazırlayalım.")
		p.raw(`<div class="container"><form class="card form" method="post" action="/teklif-al/">`)
		formNotice(p, f, "Teklif talebiniz alındı. Uzman ekibimiz sizinle iletişime geçecek.")
		p.csrfField(pg.CSRF)
		p.raw(`<div class="grid two">`)
		inputField(p, f, "name", "Ad Soyad", "text", true)
		inputField(p, f, "email", "E-posta", "email", true)
		inputField(p, f, "phone", "Telefon", "tel", true)
		inputField(p, f, "company", "Firma", "text", false)
		selectField(p, f, "projectType", "Proje Tipi", ProjectTypes, true)
		selectField(p, f, "budget", "Bütçe Aralığı", BudgetRanges, true)
		inputField(p, f, "location", "Proje Konumu", "text", true)
		inputField(p, f, "timeline", "Zaman Planı", "text", false)
		p.raw(`</div>`)
		textareaField(p, f, "message", "Proje Detayları", false)
		p.raw(`<button class="button primary" type="submit">Teklif İste</button></form></div>`)
	}))
}

// NotFound renders the 404 page.
func NotFound(pg Page) templ.Component {
	return Layout(pg, component(func(p *printer) {
		pageHeader(p, "Sayfa bulunamadı", "Aradığınız sayfa taşınmış ya da kaldırılmış olabilir.")
		p.raw(`<div class="container"><a class="button" href="/">Ana sayfaya dön</a></div>`)
	}))
}

// ServerError renders the 500 page.
func ServerError(pg Page) templ.Component {
	return Layout(pg, component(func(p *printer) {
		pageHeader(p, "Bir hata oluştu", "Lütfen daha sonra tekrar deneyin.")
	}))
}
