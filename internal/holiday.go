package internal

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrymomot/holidays/pkg/locale"
)

// TranslationSource supplies global holiday-name translations.
// GetTranslations returns a locale/name table for a holiday key, or nil when
// the key is unknown to the source.
type TranslationSource interface {
	GetTranslations(key string) map[string]string
}

// Holiday is a single dated holiday entry. Its key, date, and category are
// immutable after construction; the translation table can only grow, via
// MergeGlobalTranslations, and existing entries are never overwritten.
type Holiday struct {
	key          string
	date         time.Time
	category     Category
	locale       locale.Tag
	translations map[string]string
}

// HolidayOption configures a Holiday during construction.
type HolidayOption func(*Holiday) error

// WithCategory sets the holiday category. Default: CategoryOfficial.
func WithCategory(c Category) HolidayOption {
	return func(h *Holiday) error {
		if !c.valid() {
			return fmt.Errorf("%w: category %q", ErrInvalidArgument, c)
		}
		h.category = c
		return nil
	}
}

// WithLocale sets the holiday's own locale, probed first during name
// resolution with no explicit locale list. Default: locale.Default.
func WithLocale(tag string) HolidayOption {
	return func(h *Holiday) error {
		parsed, err := locale.Parse(tag)
		if err != nil {
			return err
		}
		h.locale = parsed
		return nil
	}
}

// NewHoliday creates a holiday entry.
//
// key must be non-empty, date must carry a calendar position (the zero
// time.Time is rejected), and translations maps locale tags to localized
// names. The map is copied; tag separators are normalized to underscores.
func NewHoliday(key string, translations map[string]string, date time.Time, opts ...HolidayOption) (*Holiday, error) {
	if strings.TrimSpace(key) == "" {
		return nil, fmt.Errorf("%w: holiday key is blank", ErrInvalidArgument)
	}
	if date.IsZero() {
		return nil, fmt.Errorf("%w: holiday %q", ErrInputTypeMismatch, key)
	}

	h := &Holiday{
		key:          key,
		date:         atMidnightUTC(date),
		category:     CategoryOfficial,
		locale:       locale.Default,
		translations: make(map[string]string, len(translations)),
	}
	for tag, name := range translations {
		h.translations[canonicalTag(tag)] = name
	}

	for _, opt := range opts {
		if err := opt(h); err != nil {
			return nil, err
		}
	}

	return h, nil
}

// Key returns the holiday's identity key, unique within a collection.
func (h *Holiday) Key() string { return h.key }

// Date returns the holiday's calendar date (midnight UTC).
func (h *Holiday) Date() time.Time { return h.date }

// Category returns the holiday's category.
func (h *Holiday) Category() Category { return h.category }

// Locale returns the holiday's own locale.
func (h *Holiday) Locale() locale.Tag { return h.locale }

// Translation returns the name stored for exactly the given tag, without any
// fallback.
func (h *Holiday) Translation(tag string) (string, bool) {
	name, ok := h.translations[canonicalTag(tag)]
	return name, ok
}

// Name resolves the holiday's localized name.
//
// With no arguments the probe order is the fallback chain of the holiday's
// own locale, then the chain of locale.Default, then the raw key; resolution
// therefore always succeeds. With an explicit locale list each entry is
// expanded to its fallback chain in place, and the raw key applies only when
// the caller included the locale.Key sentinel; otherwise exhausting the list
// fails with ErrMissingTranslation.
func (h *Holiday) Name(locales ...string) (string, error) {
	var probes []string
	if len(locales) == 0 {
		probes = append(probes, h.locale.FallbackChain()...)
		probes = append(probes, locale.Default.FallbackChain()...)
		probes = append(probes, locale.Key)
	} else {
		for _, l := range locales {
			if l == locale.Key {
				probes = append(probes, locale.Key)
				continue
			}
			probes = append(probes, locale.Tag(l).FallbackChain()...)
		}
	}

	for _, probe := range probes {
		if probe == locale.Key {
			return h.key, nil
		}
		if name, ok := h.translations[probe]; ok {
			return name, nil
		}
	}

	return "", fmt.Errorf("%w: holiday %q for locales %v", ErrMissingTranslation, h.key, locales)
}

// MergeGlobalTranslations copies locale entries for this holiday's key from
// src into the holiday's own table. Existing entries are never overwritten.
// The merge is a one-time, caller-driven side effect: src is queried exactly
// once per call and never during Name.
func (h *Holiday) MergeGlobalTranslations(src TranslationSource) {
	if src == nil {
		return
	}
	for tag, name := range src.GetTranslations(h.key) {
		tag = canonicalTag(tag)
		if _, exists := h.translations[tag]; !exists {
			h.translations[tag] = name
		}
	}
}

// MarshalJSON encodes the holiday as its external JSON shape:
// an ISO 8601 date, the key, the name resolved with the default probe order,
// and the category. Decoding back into a Holiday is not supported.
func (h *Holiday) MarshalJSON() ([]byte, error) {
	name, err := h.Name()
	if err != nil {
		return nil, err
	}
	return json.Marshal(struct {
		Key  string   `json:"key"`
		Date string   `json:"date"`
		Name string   `json:"name"`
		Type Category `json:"type"`
	}{
		Key:  h.key,
		Date: h.date.Format(time.DateOnly),
		Name: name,
		Type: h.category,
	})
}

func atMidnightUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func canonicalTag(tag string) string {
	return strings.ReplaceAll(strings.TrimSpace(tag), "-", "_")
}
