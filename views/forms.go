package views

import (
	"encoding/json"
	"net/url"
	"strconv"
	"strings"

	"github.com/gokler/sitecms/model"
)

// FieldKind selects how a field is rendered and decoded.
type FieldKind int

const (
	KindText FieldKind = iota
	KindEmail
	KindURL
	KindTextArea
	KindMarkdown
	KindNumber
	KindCheckbox
	KindSelect
	KindList // one entry per line, decoded to []string
)

// Field describes one input of an admin form.
type Field struct {
	Name     string // JSON name of the record field
	Label    string
	Kind     FieldKind
	Options  []string
	Required bool
	// Nullable fields decode an empty input to null.
	Nullable bool
	// ReadOnly fields are shown but never decoded.
	ReadOnly bool
	Help     string
}

// Form is an ordered list of fields.
type Form []Field

// Decode turns submitted form values into a field map keyed by JSON name.
// Numbers that do not parse are reported in the second return value.
func (f Form) Decode(vals url.Values) (map[string]any, map[string]string) {
	out := make(map[string]any, len(f))
	errs := map[string]string{}
	for _, fd := range f {
		if fd.ReadOnly {
			continue
		}
		raw := vals.Get(fd.Name)
		switch fd.Kind {
		case KindCheckbox:
			out[fd.Name] = raw != ""
		case KindNumber:
			raw = strings.TrimSpace(raw)
			if raw == "" {
				out[fd.Name] = 0
				continue
			}
			n, err := strconv.Atoi(raw)
			if err != nil {
				errs[fd.Name] = "sayı olmalı"
				continue
			}
			out[fd.Name] = n
		case KindList:
			items := []string{}
			for _, line := range strings.Split(raw, "\n") {
				if s := strings.TrimSpace(line); s != "" {
					items = append(items, s)
				}
			}
			out[fd.Name] = items
		case KindTextArea, KindMarkdown:
			raw = strings.TrimRight(strings.ReplaceAll(raw, "\r\n", "\n"), " \n\t")
			if raw == "" && fd.Nullable {
				out[fd.Name] = nil
				continue
			}
			out[fd.Name] = raw
		default:
			raw = strings.TrimSpace(raw)
			if raw == "" && fd.Nullable {
				out[fd.Name] = nil
				continue
			}
			out[fd.Name] = raw
		}
	}
	return out, errs
}

// Values flattens record into the string values a form displays. Lists are
// joined with newlines, nulls become "".
func Values(record any) map[string]string {
	out := map[string]string{}
	b, err := json.Marshal(record)
	if err != nil {
		return out
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return out
	}
	for k, v := range m {
		switch v := v.(type) {
		case nil:
			out[k] = ""
		case string:
			out[k] = v
		case bool:
			out[k] = strconv.FormatBool(v)
		case float64:
			out[k] = strconv.FormatFloat(v, 'f', -1, 64)
		case []any:
			parts := make([]string, 0, len(v))
			for _, item := range v {
				if s, ok := item.(string); ok {
					parts = append(parts, s)
				}
			}
			out[k] = strings.Join(parts, "\n")
		}
	}
	return out
}

var ratings = []string{"5", "4", "3", "2", "1"}

// Admin forms, one per record type.
var (
	BlogForm = Form{
		{Name: "title", Label: "Başlık", Required: true},
		{Name: "slug", Label: "Slug", Help: "Boş bırakılırsa başlıktan üretilir."},
		{Name: "excerpt", Label: "Özet", Kind: KindTextArea, Required: true},
		{Name: "content", Label: "İçerik", Kind: KindMarkdown, Required: true},
		{Name: "image", Label: "Görsel URL", Kind: KindURL},
		{Name: "author", Label: "Yazar", Required: true},
		{Name: "category", Label: "Kategori", Required: true},
		{Name: "readTime", Label: "Okuma süresi"},
		{Name: "published", Label: "Yayında", Kind: KindCheckbox},
	}

	ProjectForm = Form{
		{Name: "title", Label: "Proje adı", Required: true},
		{Name: "slug", Label: "Slug", Help: "Boş bırakılırsa başlıktan üretilir."},
		{Name: "category", Label: "Kategori", Required: true},
		{Name: "location", Label: "Konum", Required: true},
		{Name: "year", Label: "Yıl"},
		{Name: "area", Label: "Alan"},
		{Name: "client", Label: "İşveren"},
		{Name: "status", Label: "Durum", Kind: KindSelect, Options: model.ProjectStatuses},
		{Name: "image", Label: "Kapak görseli URL", Kind: KindURL},
		{Name: "gallery", Label: "Galeri görselleri", Kind: KindList, Help: "Her satıra bir URL."},
		{Name: "description", Label: "Açıklama", Kind: KindTextArea, Required: true},
		{Name: "features", Label: "Özellikler", Kind: KindList, Help: "Her satıra bir özellik."},
		{Name: "tags", Label: "Etiketler", Kind: KindList, Help: "Her satıra bir etiket."},
		{Name: "published", Label: "Yayında", Kind: KindCheckbox},
	}

	GalleryForm = Form{
		{Name: "title", Label: "Başlık", Required: true},
		{Name: "category", Label: "Kategori", Required: true},
		{Name: "image", Label: "Görsel URL", Kind: KindURL, Required: true},
		{Name: "order", Label: "Sıra", Kind: KindNumber},
		{Name: "published", Label: "Yayında", Kind: KindCheckbox},
	}

	TestimonialForm = Form{
		{Name: "name", Label: "Ad soyad", Required: true},
		{Name: "role", Label: "Unvan", Required: true},
		{Name: "company", Label: "Firma", Nullable: true},
		{Name: "content", Label: "Yorum", Kind: KindTextArea, Required: true},
		{Name: "image", Label: "Fotoğraf URL", Kind: KindURL, Nullable: true},
		{Name: "rating", Label: "Puan", Kind: KindNumber, Options: ratings},
		{Name: "published", Label: "Yayında", Kind: KindCheckbox},
	}

	QuoteForm = Form{
		{Name: "name", Label: "Ad soyad", ReadOnly: true},
		{Name: "email", Label: "E-posta", ReadOnly: true},
		{Name: "phone", Label: "Telefon", ReadOnly: true},
		{Name: "company", Label: "Firma", ReadOnly: true},
		{Name: "projectType", Label: "Proje tipi", ReadOnly: true},
		{Name: "budget", Label: "Bütçe", ReadOnly: true},
		{Name: "location", Label: "Konum", ReadOnly: true},
		{Name: "timeline", Label: "Zaman planı", ReadOnly: true},
		{Name: "message", Label: "Mesaj", Kind: KindTextArea, ReadOnly: true},
		{Name: "status", Label: "Durum", Kind: KindSelect, Options: model.QuoteStatuses},
		{Name: "notes", Label: "Notlar", Kind: KindTextArea, Nullable: true},
	}

	ContactForm = Form{
		{Name: "name", Label: "Ad soyad", ReadOnly: true},
		{Name: "email", Label: "E-posta", ReadOnly: true},
		{Name: "phone", Label: "Telefon", ReadOnly: true},
		{Name: "subject", Label: "Konu", ReadOnly: true},
		{Name: "message", Label: "Mesaj", Kind: KindTextArea, ReadOnly: true},
		{Name: "status", Label: "Durum", Kind: KindSelect, Options: model.ContactStatuses},
	}

	SeoForm = Form{
		{Name: "page", Label: "Sayfa", Kind: KindSelect, Options: model.SeoPages},
		{Name: "title", Label: "Başlık", Required: true},
		{Name: "description", Label: "Açıklama", Kind: KindTextArea, Required: true},
		{Name: "keywords", Label: "Anahtar kelimeler", Nullable: true},
		{Name: "ogImage", Label: "OG görseli URL", Kind: KindURL, Nullable: true},
	}

	SettingsForm = Form{
		{Name: "companyName", Label: "Firma adı", Required: true},
		{Name: "phone", Label: "Telefon", Required: true},
		{Name: "phone2", Label: "Telefon 2", Nullable: true},
		{Name: "email", Label: "E-posta", Kind: KindEmail, Required: true},
		{Name: "email2", Label: "E-posta 2", Kind: KindEmail, Nullable: true},
		{Name: "address", Label: "Adres", Kind: KindTextArea, Required: true},
		{Name: "mapUrl", Label: "Harita URL", Kind: KindURL, Nullable: true},
		{Name: "facebook", Label: "Facebook", Kind: KindURL, Nullable: true},
		{Name: "instagram", Label: "Instagram", Kind: KindURL, Nullable: true},
		{Name: "twitter", Label: "X / Twitter", Kind: KindURL, Nullable: true},
		{Name: "linkedin", Label: "LinkedIn", Kind: KindURL, Nullable: true},
		{Name: "youtube", Label: "YouTube", Kind: KindURL, Nullable: true},
	}
)

// Labels for enum values shown in the admin.
var statusLabels = map[string]string{
	model.ProjectOngoing:   "Devam ediyor",
	model.ProjectCompleted: "Tamamlandı",
	model.QuoteNew:         "Yeni",
	model.QuoteContacted:   "İletişime geçildi",
	model.QuoteQuoted:      "Teklif verildi",
	model.QuoteClosed:      "Kapandı",
	model.ContactUnread:    "Okunmadı",
	model.ContactRead:      "Okundu",
	model.ContactReplied:   "Yanıtlandı",
	"home":                 "Ana sayfa",
	"about":                "Hakkımızda",
	"services":             "Hizmetler",
	"projects":             "Projeler",
	"blog":                 "Blog",
	"gallery":              "Galeri",
	"contact":              "İletişim",
	"quote":                "Teklif al",
}

// StatusLabel returns the Turkish label of an enum value.
func StatusLabel(v string) string {
	if l, ok := statusLabels[v]; ok {
		return l
	}
	return v
}
