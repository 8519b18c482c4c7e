package locale

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Tag identifies a language, an optional region, and an optional variant,
// in the canonical form "language[_REGION[_VARIANT]]".
type Tag string

// Default is the locale probed after a holiday's own locale chain is exhausted.
const Default Tag = "en_US"

// Key is the sentinel locale that resolves a holiday's name to its raw key.
// Name resolution with no explicit locale list appends it implicitly; an
// explicit locale list must include it for the key fallback to apply.
const Key = "key"

// Parse normalizes and validates a locale tag. Both "_" and "-" separators
// are accepted; the canonical form uses underscores with a lowercase language,
// an uppercase region, and an uppercase variant.
//
// A tag is rejected when its language or region subtag is not a registered
// BCP 47 subtag, or when the normalized tag is not in the supported set.
func Parse(s string) (Tag, error) {
	parts := split(s)
	if len(parts) == 0 || len(parts) > 3 || parts[0] == "" {
		return "", fmt.Errorf("%w: %q", ErrUnknownLocale, s)
	}

	lang := strings.ToLower(parts[0])
	if _, err := language.ParseBase(lang); err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnknownLocale, s)
	}

	if len(parts) > 1 {
		parts[1] = strings.ToUpper(parts[1])
		if _, err := language.ParseRegion(parts[1]); err != nil {
			return "", fmt.Errorf("%w: %q", ErrUnknownLocale, s)
		}
	}
	if len(parts) > 2 {
		parts[2] = strings.ToUpper(parts[2])
	}
	parts[0] = lang

	tag := Tag(strings.Join(parts, "_"))
	if !IsSupported(string(tag)) {
		return "", fmt.Errorf("%w: %q", ErrUnknownLocale, s)
	}

	return tag, nil
}

// String returns the canonical tag text.
func (t Tag) String() string { return string(t) }

// Language returns the language subtag.
func (t Tag) Language() string {
	parts := split(string(t))
	if len(parts) == 0 {
		return ""
	}
	return parts[0]
}

// Region returns the region subtag, or "" when absent.
func (t Tag) Region() string {
	parts := split(string(t))
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}

// Variant returns the variant subtag, or "" when absent.
func (t Tag) Variant() string {
	parts := split(string(t))
	if len(parts) < 3 {
		return ""
	}
	return parts[2]
}

// FallbackChain returns the ordered probe sequence for the tag, from the most
// specific form down to the bare language:
//
//	"ca_ES_VALENCIA" -> [ca_ES_VALENCIA, ca_ES, ca]
//	"de_DE"          -> [de_DE, de]
//	"en"             -> [en]
//
// The chain is purely structural: it depends only on which parts are present,
// never on a locale database. Tags are normalized to underscore form so that
// "de-DE" and "de_DE" produce the same chain.
func (t Tag) FallbackChain() []string {
	parts := split(string(t))
	if len(parts) == 0 {
		return nil
	}
	if len(parts) > 3 {
		parts = parts[:3]
	}

	chain := make([]string, 0, len(parts))
	for i := len(parts); i > 0; i-- {
		chain = append(chain, strings.Join(parts[:i], "_"))
	}
	return chain
}

func split(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == '-'
	})
}
