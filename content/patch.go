package content

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Patch applies caller-supplied fields onto a record. Fields it does not
// mention must be left untouched.
type Patch func(dst any) error

// JSONPatch returns a Patch that decodes body onto the record. Only keys
// present in body are written.
func JSONPatch(body []byte) Patch {
	return func(dst any) error {
		if len(bytes.TrimSpace(body)) == 0 {
			return nil
		}
		if err := json.Unmarshal(body, dst); err != nil {
			return invalid("body", fmt.Sprintf("malformed JSON: %v", err))
		}
		return nil
	}
}

// FieldsPatch returns a Patch built from a field map keyed by JSON name,
// as produced by the admin forms.
func FieldsPatch(fields map[string]any) Patch {
	return func(dst any) error {
		b, err := json.Marshal(fields)
		if err != nil {
			return fmt.Errorf("encode fields: %w", err)
		}
		return JSONPatch(b)(dst)
	}
}
