// Package markdown renders the lightly structured Markdown used in blog
// posts (headings, lists, quotes, code fences, bold, italic, links) as HTML.
package markdown

import (
	"bytes"
	"context"
	"html"
	"io"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/gokler/sitecms/slug"
)

var (
	reBold        = regexp.MustCompile(`\*\*(.+?)\*\*`)
	reItalic      = regexp.MustCompile(`\*([^*]+)\*`)
	reInlineCode  = regexp.MustCompile("`([^`]+)`")
	reLink        = regexp.MustCompile(`\[(.*?)\]\((.*?)\)`)
	reOrderedItem = regexp.MustCompile(`^\d+\.\s`)
	reHeading     = regexp.MustCompile(`^(#{1,4})\s+(.*)$`)
)

// Heading is a section title found in a post, used for the table of contents.
type Heading struct {
	Level  int
	Text   string
	Anchor string
}

// Markdown returns a templ.Component that renders md as HTML.
func Markdown(md string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		Render(&buf, md)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

// block is the kind of multi-line element currently open.
type block int

const (
	blockNone block = iota
	blockPara
	blockList
	blockOrdered
	blockQuote
	blockCode
)

var closers = map[block]string{
	blockPara:    "</p>",
	blockList:    "</ul>",
	blockOrdered: "</ol>",
	blockQuote:   "</blockquote>",
	blockCode:    "</code></pre>",
}

type renderer struct {
	buf  *bytes.Buffer
	open block
}

func (r *renderer) close() {
	if r.open != blockNone {
		r.buf.WriteString(closers[r.open])
		r.open = blockNone
	}
}

// enter opens b, closing whatever else is open. It reports whether b was
// newly opened.
func (r *renderer) enter(b block, tag string) bool {
	if r.open == b {
		return false
	}
	r.close()
	r.buf.WriteString(tag)
	r.open = b
	return true
}

// Render writes the HTML form of md to buf. Top-level "#" headings are
// rendered as <h2> because the page title already is the <h1>.
func Render(buf *bytes.Buffer, md string) {
	r := &renderer{buf: buf}
	for _, raw := range strings.Split(md, "\n") {
		line := strings.TrimRight(raw, "\r")

		if strings.HasPrefix(line, "```") {
			if r.open == blockCode {
				r.close()
			} else {
				r.enter(blockCode, `<pre class="code-block"><code>`)
			}
			continue
		}
		if r.open == blockCode {
			buf.WriteString(html.EscapeString(line))
			buf.WriteByte('\n')
			continue
		}

		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			r.close()
		case trimmed == "---":
			r.close()
			buf.WriteString("<hr/>")
		case reHeading.MatchString(trimmed):
			r.close()
			m := reHeading.FindStringSubmatch(trimmed)
			level := len(m[1])
			if level < 2 {
				level = 2
			}
			text := strings.TrimSpace(m[2])
			tag := "h" + strconv.Itoa(level)
			buf.WriteString("<" + tag + ` id="` + html.EscapeString(slug.Make(text)) + `">`)
			buf.WriteString(FormatInline(text))
			buf.WriteString("</" + tag + ">")
		case strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* "):
			r.enter(blockList, "<ul>")
			buf.WriteString("<li>" + FormatInline(strings.TrimSpace(trimmed[2:])) + "</li>")
		case reOrderedItem.MatchString(trimmed):
			r.enter(blockOrdered, "<ol>")
			buf.WriteString("<li>" + FormatInline(strings.TrimSpace(reOrderedItem.ReplaceAllString(trimmed, ""))) + "</li>")
		case strings.HasPrefix(trimmed, "> "):
			if !r.enter(blockQuote, "<blockquote>") {
				buf.WriteByte(' ')
			}
			buf.WriteString(FormatInline(strings.TrimSpace(trimmed[2:])))
		default:
			if !r.enter(blockPara, "<p>") {
				buf.WriteByte(' ')
			}
			buf.WriteString(FormatInline(trimmed))
		}
	}
	r.close()
}

// Headings returns the section headings of md in document order.
func Headings(md string) []Heading {
	var out []Heading
	inCode := false
	for _, raw := range strings.Split(md, "\n") {
		line := strings.TrimSpace(raw)
		if strings.HasPrefix(line, "```") {
			inCode = !inCode
			continue
		}
		if inCode {
			continue
		}
		if m := reHeading.FindStringSubmatch(line); m != nil {
			text := strings.TrimSpace(m[2])
			out = append(out, Heading{Level: len(m[1]), Text: text, Anchor: slug.Make(text)})
		}
	}
	return out
}

// FormatInline escapes s and applies bold, italic, inline code and links.
func FormatInline(s string) string {
	escaped := html.EscapeString(s)

	// Inline code is swapped for placeholders so emphasis never applies
	// inside backticks.
	var codes []string
	escaped = reInlineCode.ReplaceAllStringFunc(escaped, func(m string) string {
		codes = append(codes, "<code>"+reInlineCode.FindStringSubmatch(m)[1]+"</code>")
		return "\x00C" + strconv.Itoa(len(codes)-1) + "\x00"
	})

	escaped = reLink.ReplaceAllStringFunc(escaped, func(m string) string {
		match := reLink.FindStringSubmatch(m)
		href := SafeURL(match[2])
		if href == "" {
			return match[1]
		}
		attrs := ""
		if !strings.HasPrefix(href, "/") && !strings.HasPrefix(href, "#") {
			attrs = ` target="_blank" rel="noopener noreferrer"`
		}
		return `<a href="` + href + `"` + attrs + `>` + match[1] + `</a>`
	})

	escaped = outsideTags(escaped, func(seg string) string {
		seg = reBold.ReplaceAllString(seg, "<strong>$1</strong>")
		return reItalic.ReplaceAllString(seg, "<em>$1</em>")
	})

	for i, code := range codes {
		escaped = strings.Replace(escaped, "\x00C"+strconv.Itoa(i)+"\x00", code, 1)
	}
	return escaped
}

// outsideTags applies fn to the text between HTML tags only, so emphasis
// regexes never touch attribute values.
func outsideTags(s string, fn func(string) string) string {
	var b strings.Builder
	for len(s) > 0 {
		lt := strings.IndexByte(s, '<')
		if lt < 0 {
			b.WriteString(fn(s))
			break
		}
		b.WriteString(fn(s[:lt]))
		gt := strings.IndexByte(s[lt:], '>')
		if gt < 0 {
			b.WriteString(s[lt:])
			break
		}
		b.WriteString(s[lt : lt+gt+1])
		s = s[lt+gt+1:]
	}
	return b.String()
}

// SafeURL returns raw escaped for an attribute when it is a relative path,
// a fragment, or an http(s)/mailto/tel URL; otherwise "".
func SafeURL(raw string) string {
	val := strings.TrimSpace(html.UnescapeString(raw))
	if val == "" {
		return ""
	}
	if strings.HasPrefix(val, "/") || strings.HasPrefix(val, "#") {
		if strings.HasPrefix(val, "//") {
			return ""
		}
		return html.EscapeString(val)
	}
	parsed, err := url.Parse(val)
	if err != nil {
		return ""
	}
	switch strings.ToLower(parsed.Scheme) {
	case "http", "https", "mailto", "tel":
		return html.EscapeString(val)
	default:
		return ""
	}
}
