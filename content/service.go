// Package content is the record access layer of the site. Every operation
// takes the Caller explicitly: anonymous callers only see published
// records and may only submit quotes and contact messages, everything else
// needs an admin.
package content

import (
	"database/sql"
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/gokler/sitecms/model"
	"github.com/gokler/sitecms/slug"
	"github.com/gokler/sitecms/store"
)

// Service implements list/get/create/update/delete for every record type.
type Service struct {
	store      *store.Store
	validate   *validator.Validate
	now        func() time.Time
	newID      func() string
	bcryptCost int
	uploadDir  string
}

// Option configures a Service.
type Option func(*Service)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithBcryptCost sets the cost used when hashing passwords.
func WithBcryptCost(cost int) Option {
	return func(s *Service) { s.bcryptCost = cost }
}

// WithUploadDir sets the directory processed images are written to.
func WithUploadDir(dir string) Option {
	return func(s *Service) { s.uploadDir = dir }
}

// New returns a Service backed by st.
func New(st *store.Store, opts ...Option) *Service {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their JSON name, which is what API clients send.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	s := &Service{
		store:      st,
		validate:   v,
		now:        time.Now,
		newID:      uuid.NewString,
		bcryptCost: bcrypt.DefaultCost,
		uploadDir:  "public/uploads",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) timestamp() time.Time {
	return s.now().UTC()
}

func (s *Service) check(v any) error {
	if err := s.validate.Struct(v); err != nil {
		return fromValidator(err)
	}
	return nil
}

// visible forces anonymous callers onto published records.
func visible(who Caller, f model.Filter) model.Filter {
	if !who.Admin() {
		f.Published = model.Ptr(true)
	}
	return f
}

// notFound translates a missing row into ErrNotFound.
func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// conflict translates a unique index violation into ErrConflict.
func conflict(err error) error {
	if store.IsUniqueViolation(err) {
		return ErrConflict
	}
	return err
}

// resolveSlug picks the slug of a record. An explicit slug is kept verbatim
// and must be free; a missing one is derived from title and suffixed until
// free.
func resolveSlug(explicit, title string, taken func(string) (bool, error)) (string, error) {
	explicit = strings.TrimSpace(explicit)
	if explicit != "" {
		used, err := taken(explicit)
		if err != nil {
			return "", err
		}
		if used {
			return "", ErrConflict
		}
		return explicit, nil
	}
	base := slug.Make(title)
	if base == "" {
		return "", invalid("slug", "could not be derived from title")
	}
	return slug.Unique(base, taken)
}

// search keeps the items whose text fields contain q, ignoring case and
// Turkish diacritics. An empty q keeps everything. The result is never nil.
func search[T any](items []T, q string, text func(T) []string) []T {
	q = strings.TrimSpace(q)
	if q == "" {
		if items == nil {
			return []T{}
		}
		return items
	}
	needle := slug.Fold(q)
	out := make([]T, 0, len(items))
	for _, it := range items {
		for _, field := range text(it) {
			if strings.Contains(slug.Fold(field), needle) {
				out = append(out, it)
				break
			}
		}
	}
	return out
}
