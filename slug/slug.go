// Package slug turns titles into URL path segments.
//
// There is exactly one policy: Turkish-aware lowercasing, diacritics folded
// to ASCII, anything outside [a-z0-9] dropped, whitespace turned into
// hyphens, hyphen runs collapsed and edge hyphens trimmed.
package slug

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// dotless i and the ligature-like letters have no decomposition.
var asciiFold = strings.NewReplacer("ı", "i", "ß", "ss", "æ", "ae", "ø", "o", "đ", "d", "ł", "l")

// Fold lowercases s with Turkish casing rules and strips diacritics, so
// "İnşaat" and "insaat" compare equal. Punctuation is kept.
func Fold(s string) string {
	// Casers and transformers are stateful; build them per call.
	s = cases.Lower(language.Turkish).String(s)
	s = asciiFold.Replace(s)
	if folded, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), s); err == nil {
		s = folded
	}
	return s
}

// Make returns the slug for s. It may return "" when s has no letters or
// digits at all.
func Make(s string) string {
	s = Fold(s)
	var b strings.Builder
	b.Grow(len(s))
	pendingHyphen := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		case r == '-' || unicode.IsSpace(r):
			pendingHyphen = true
		}
	}
	return b.String()
}

// Unique returns base, or base suffixed with -2, -3, ... until taken
// reports the candidate as free.
func Unique(base string, taken func(candidate string) (bool, error)) (string, error) {
	candidate := base
	for n := 2; ; n++ {
		used, err := taken(candidate)
		if err != nil {
			return "", err
		}
		if !used {
			return candidate, nil
		}
		candidate = base + "-" + strconv.Itoa(n)
	}
}
