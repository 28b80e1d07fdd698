package views

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/gokler/sitecms/markdown"
)

// printer writes HTML to w and keeps the first write error.
type printer struct {
	ctx context.Context
	w   io.Writer
	err error
}

func (p *printer) raw(parts ...string) {
	for _, s := range parts {
		if p.err != nil {
			return
		}
		_, p.err = io.WriteString(p.w, s)
	}
}

// text writes s escaped.
func (p *printer) text(s string) {
	p.raw(templ.EscapeString(s))
}

// attr writes ` name="value"` with value escaped.
func (p *printer) attr(name, value string) {
	p.raw(" ", name, `="`, templ.EscapeString(value), `"`)
}

// href writes an href attribute, dropping URLs with unsafe schemes.
func (p *printer) href(u string) {
	p.urlAttr("href", u)
}

// urlAttr writes a URL attribute. SafeURL already escapes the value.
func (p *printer) urlAttr(name, u string) {
	p.raw(" ", name, `="`, markdown.SafeURL(u), `"`)
}

func (p *printer) render(c templ.Component) {
	if p.err == nil && c != nil {
		p.err = c.Render(p.ctx, p.w)
	}
}

// component adapts fn to templ.Component.
func component(fn func(p *printer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &printer{ctx: ctx, w: w}
		fn(p)
		return p.err
	})
}

// csrfField writes the hidden CSRF input every unsafe form carries.
func (p *printer) csrfField(token string) {
	p.raw(`<input type="hidden" name="_csrf"`)
	p.attr("value", token)
	p.raw(`>`)
}

func itoa(n int) string { return strconv.Itoa(n) }
