package content

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrUnauthorized is returned when a gated operation has no admin caller.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotFound is returned when a record does not exist or is hidden
	// from the caller.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when an explicit slug is already in use.
	ErrConflict = errors.New("conflict")
	// ErrInvalidCredentials is returned by Authenticate on a bad login.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// ValidationError lists the fields that failed validation, keyed by their
// JSON name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ": " + e.Fields[k]
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func invalid(field, msg string) error {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

// fromValidator converts validator output into a ValidationError.
func fromValidator(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make(map[string]string, len(verrs))
	for _, e := range verrs {
		field := e.Field()
		switch e.Tag() {
		case "required":
			fields[field] = "is required"
		case "email":
			fields[field] = "must be a valid email address"
		case "oneof":
			fields[field] = fmt.Sprintf("must be one of: %s", e.Param())
		case "min":
			fields[field] = fmt.Sprintf("must be at least %s", e.Param())
		case "max":
			fields[field] = fmt.Sprintf("must be at most %s", e.Param())
		default:
			fields[field] = "is invalid"
		}
	}
	return &ValidationError{Fields: fields}
}
