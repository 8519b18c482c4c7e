package holidays

import (
	"time"

	"github.com/dmitrymomot/holidays/internal"
	"github.com/dmitrymomot/holidays/pkg/locale"
)

// Type aliases - public API
type (
	// Holiday is a single holiday entry: a key, a calendar date, a category
	// and a translation map resolved through locale fallback chains.
	Holiday = internal.Holiday

	// Collection holds the holidays of one country for one year.
	Collection = internal.Collection

	// Category classifies a holiday entry.
	Category = internal.Category

	// Provider populates a collection with the rules of one country or
	// subdivision.
	Provider = internal.Provider

	// TranslationSource supplies global translations by holiday key.
	TranslationSource = internal.TranslationSource

	// HolidayOption configures a holiday at construction time.
	HolidayOption = internal.HolidayOption

	// CollectionOption configures a collection at construction time.
	CollectionOption = internal.CollectionOption

	// Locale is a normalized locale tag such as "en_US" or "ja_JP".
	Locale = locale.Tag
)

// Holiday categories.
const (
	CategoryOfficial   = internal.CategoryOfficial
	CategoryObservance = internal.CategoryObservance
	CategorySeason     = internal.CategorySeason
	CategoryBank       = internal.CategoryBank
	CategoryOther      = internal.CategoryOther
)

// Collection year bounds.
const (
	YearMin = internal.YearMin
	YearMax = internal.YearMax
)

// Errors for checking return values.
var (
	ErrInvalidArgument    = internal.ErrInvalidArgument
	ErrUnknownLocale      = locale.ErrUnknownLocale
	ErrMissingTranslation = internal.ErrMissingTranslation
	ErrInvalidYear        = internal.ErrInvalidYear
	ErrHolidayNotFound    = internal.ErrHolidayNotFound
	ErrProviderNotFound   = internal.ErrProviderNotFound
	ErrInputTypeMismatch  = internal.ErrInputTypeMismatch
)

// NewHoliday creates a standalone holiday entry. The key must be non-empty
// and the date non-zero; translations map locale tags to display names.
//
// Example:
//
//	h, err := holidays.NewHoliday("companyDay",
//	    map[string]string{"en": "Company Day"},
//	    time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC),
//	    holidays.WithCategory(holidays.CategoryOther),
//	)
func NewHoliday(key string, translations map[string]string, date time.Time, opts ...HolidayOption) (*Holiday, error) {
	return internal.NewHoliday(key, translations, date, opts...)
}

// NewCollection creates an empty collection for the given year and locale.
// Most callers should use Create instead and let a provider populate the
// collection.
func NewCollection(year int, loc string, opts ...CollectionOption) (*Collection, error) {
	return internal.NewCollection(year, loc, opts...)
}

// SubstituteKey returns the key under which a substitute for the given
// holiday is stored, e.g. "substituteHoliday:christmasDay".
func SubstituteKey(key string) string {
	return internal.SubstituteKey(key)
}

// Holiday options

// WithCategory sets the holiday category. Defaults to CategoryOfficial.
func WithCategory(c Category) HolidayOption {
	return internal.WithCategory(c)
}

// WithLocale sets the holiday's display locale. Defaults to "en_US".
func WithLocale(loc string) HolidayOption {
	return internal.WithLocale(loc)
}

// Collection options

// WithWeekendDays overrides the days IsWorkingDay treats as weekend.
// Defaults to Saturday and Sunday.
func WithWeekendDays(days ...time.Weekday) CollectionOption {
	return internal.WithWeekendDays(days...)
}

// WithProvider attaches the provider used by Next and Previous to rebuild
// neighboring years.
func WithProvider(p Provider) CollectionOption {
	return internal.WithProvider(p)
}
