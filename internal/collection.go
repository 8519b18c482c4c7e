package internal

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/dmitrymomot/holidays/pkg/locale"
)

// Supported year range. Years outside it fail with ErrInvalidYear before any
// rule logic runs.
const (
	YearMin = 1000
	YearMax = 9999
)

// SubstituteKeyPrefix derives the key of a substitution entry from the key of
// the original holiday it compensates for.
const SubstituteKeyPrefix = "substituteHoliday:"

// SubstituteKey returns the derived key for a substitution of the given
// holiday key.
func SubstituteKey(key string) string {
	return SubstituteKeyPrefix + key
}

// Collection is the per-year, per-provider holiday aggregate. It owns its
// Holiday entries exclusively, keeps them uniquely keyed in insertion order,
// and answers date and navigation queries.
//
// A Collection is not safe for concurrent mutation; callers sharing one
// across goroutines must synchronize Add and Remove externally.
type Collection struct {
	year     int
	locale   locale.Tag
	entries  map[string]*Holiday
	order    []string
	weekend  map[time.Weekday]struct{}
	provider Provider
}

// CollectionOption configures a Collection during construction.
type CollectionOption func(*Collection) error

// WithWeekendDays overrides the weekdays treated as weekend by IsWorkingDay.
// Default: Saturday and Sunday.
func WithWeekendDays(days ...time.Weekday) CollectionOption {
	return func(c *Collection) error {
		weekend := make(map[time.Weekday]struct{}, len(days))
		for _, d := range days {
			weekend[d] = struct{}{}
		}
		c.weekend = weekend
		return nil
	}
}

// WithProvider attaches the provider whose rules populated the collection,
// enabling Next and Previous to rebuild neighboring years.
func WithProvider(p Provider) CollectionOption {
	return func(c *Collection) error {
		c.provider = p
		return nil
	}
}

// NewCollection creates an empty collection for the given year and default
// locale. The year must lie in [YearMin, YearMax] and the locale must be a
// supported tag.
func NewCollection(year int, loc string, opts ...CollectionOption) (*Collection, error) {
	if year < YearMin || year > YearMax {
		return nil, fmt.Errorf("%w: %d not in [%d, %d]", ErrInvalidYear, year, YearMin, YearMax)
	}

	tag, err := locale.Parse(loc)
	if err != nil {
		return nil, err
	}

	c := &Collection{
		year:    year,
		locale:  tag,
		entries: make(map[string]*Holiday),
		weekend: map[time.Weekday]struct{}{
			time.Saturday: {},
			time.Sunday:   {},
		},
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Year returns the collection's target calendar year.
func (c *Collection) Year() int { return c.year }

// Locale returns the collection's default locale.
func (c *Collection) Locale() locale.Tag { return c.locale }

// Add inserts a holiday under its key. Adding a key that already exists is a
// no-op: the first entry wins and the collection does not grow. A nil holiday
// is ignored.
func (c *Collection) Add(h *Holiday) {
	if h == nil {
		return
	}
	if _, exists := c.entries[h.key]; exists {
		return
	}
	c.entries[h.key] = h
	c.order = append(c.order, h.key)
}

// Remove deletes the entry for key. An absent key is a no-op, not an error.
// Substitution entries are plain siblings: removing an original does not
// remove its substitute, and vice versa.
func (c *Collection) Remove(key string) {
	if _, exists := c.entries[key]; !exists {
		return
	}
	delete(c.entries, key)
	if i := slices.Index(c.order, key); i >= 0 {
		c.order = slices.Delete(c.order, i, i+1)
	}
}

// Get returns the holiday stored under key. A blank key fails with
// ErrInvalidArgument; a missing key fails with ErrHolidayNotFound.
func (c *Collection) Get(key string) (*Holiday, error) {
	if strings.TrimSpace(key) == "" {
		return nil, fmt.Errorf("%w: holiday key is blank", ErrInvalidArgument)
	}
	h, ok := c.entries[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q in %d", ErrHolidayNotFound, key, c.year)
	}
	return h, nil
}

// Count returns the number of entries.
func (c *Collection) Count() int { return len(c.entries) }

// Keys returns the holiday keys in insertion order (not date order).
func (c *Collection) Keys() []string {
	return slices.Clone(c.order)
}

// Holidays returns the entries in insertion order.
func (c *Collection) Holidays() []*Holiday {
	out := make([]*Holiday, 0, len(c.order))
	for _, key := range c.order {
		out = append(out, c.entries[key])
	}
	return out
}

// IsHoliday reports whether any entry's date equals the given date. The
// entry's category is irrelevant: an observance counts as a holiday here.
func (c *Collection) IsHoliday(date time.Time) bool {
	y, m, d := date.Date()
	for _, h := range c.entries {
		hy, hm, hd := h.date.Date()
		if hy == y && hm == m && hd == d {
			return true
		}
	}
	return false
}

// IsWorkingDay reports whether the date is neither a recorded holiday nor one
// of the configured weekend days.
func (c *Collection) IsWorkingDay(date time.Time) bool {
	if _, weekend := c.weekend[date.Weekday()]; weekend {
		return false
	}
	return !c.IsHoliday(date)
}

// WhenIs returns the ISO 8601 date string of the named holiday.
func (c *Collection) WhenIs(key string) (string, error) {
	h, err := c.Get(key)
	if err != nil {
		return "", err
	}
	return h.date.Format(time.DateOnly), nil
}

// WeekdayOf returns the weekday of the named holiday's date
// (time.Sunday == 0 .. time.Saturday == 6).
func (c *Collection) WeekdayOf(key string) (time.Weekday, error) {
	h, err := c.Get(key)
	if err != nil {
		return 0, err
	}
	return h.date.Weekday(), nil
}

// Next returns the entry with the same key from the following year's
// collection, rebuilt with the same provider rules and locale. It fails with
// ErrInvalidArgument on a blank key, ErrProviderNotFound when the collection
// has no provider, ErrInvalidYear when the neighboring year leaves the
// supported range, and ErrHolidayNotFound when the rule does not produce the
// key in that year.
func (c *Collection) Next(key string) (*Holiday, error) {
	return c.neighbor(key, c.year+1)
}

// Previous returns the entry with the same key from the preceding year's
// collection. Error semantics match Next.
func (c *Collection) Previous(key string) (*Holiday, error) {
	return c.neighbor(key, c.year-1)
}

func (c *Collection) neighbor(key string, year int) (*Holiday, error) {
	if strings.TrimSpace(key) == "" {
		return nil, fmt.Errorf("%w: holiday key is blank", ErrInvalidArgument)
	}
	if c.provider == nil {
		return nil, fmt.Errorf("%w: collection has no provider", ErrProviderNotFound)
	}

	neighbor, err := Build(c.provider, year, string(c.locale))
	if err != nil {
		return nil, err
	}
	return neighbor.Get(key)
}

// MergeGlobalTranslations merges src into every entry. Each entry queries src
// exactly once; existing translations are never overwritten.
func (c *Collection) MergeGlobalTranslations(src TranslationSource) {
	for _, key := range c.order {
		c.entries[key].MergeGlobalTranslations(src)
	}
}
