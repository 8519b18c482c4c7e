package providers

import (
	"time"

	"github.com/dmitrymomot/holidays/internal"
)

func day(year int, m time.Month, d int) time.Time {
	return time.Date(year, m, d, 0, 0, 0, 0, time.UTC)
}

// nthWeekday returns the nth occurrence of a weekday in a month. A negative
// nth counts from the end of the month (-1 = last).
func nthWeekday(year int, m time.Month, wd time.Weekday, nth int) time.Time {
	if nth > 0 {
		first := day(year, m, 1)
		offset := (int(wd) - int(first.Weekday()) + 7) % 7
		return first.AddDate(0, 0, offset+(nth-1)*7)
	}
	last := day(year, m+1, 1).AddDate(0, 0, -1)
	offset := (int(last.Weekday()) - int(wd) + 7) % 7
	return last.AddDate(0, 0, -offset+(nth+1)*7)
}

// add constructs a holiday in the collection's locale and inserts it.
func add(c *internal.Collection, key string, names map[string]string, date time.Time, opts ...internal.HolidayOption) error {
	opts = append([]internal.HolidayOption{internal.WithLocale(string(c.Locale()))}, opts...)
	h, err := internal.NewHoliday(key, names, date, opts...)
	if err != nil {
		return err
	}
	c.Add(h)
	return nil
}

// addSubstitute inserts a substitution entry for the original holiday at the
// given date, under the derived substituteHoliday:<key> key. When names lacks
// an "en" entry it is derived from the original's English name.
func addSubstitute(c *internal.Collection, original *internal.Holiday, date time.Time, names map[string]string) error {
	merged := make(map[string]string, len(names)+1)
	for tag, name := range names {
		merged[tag] = name
	}
	if _, ok := merged["en"]; !ok {
		if en, found := original.Translation("en"); found {
			merged["en"] = en + " (observed)"
		}
	}
	return add(c, internal.SubstituteKey(original.Key()), merged, date,
		internal.WithCategory(original.Category()))
}

// nextFreeDay returns the first day strictly after date that is not already a
// holiday in the collection.
func nextFreeDay(c *internal.Collection, date time.Time) time.Time {
	candidate := date.AddDate(0, 0, 1)
	for c.IsHoliday(candidate) {
		candidate = candidate.AddDate(0, 0, 1)
	}
	return candidate
}

// nextWorkingDay returns the first day strictly after date that is a working
// day in the collection (neither weekend nor an existing holiday).
func nextWorkingDay(c *internal.Collection, date time.Time) time.Time {
	candidate := date.AddDate(0, 0, 1)
	for !c.IsWorkingDay(candidate) {
		candidate = candidate.AddDate(0, 0, 1)
	}
	return candidate
}

func isWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
