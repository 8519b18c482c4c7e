package providers

import (
	"time"

	"github.com/dmitrymomot/holidays/internal"
)

// USA produces the federal holidays of the United States. Fixed-date
// holidays falling on a weekend are observed on the nearest weekday: Friday
// before a Saturday, Monday after a Sunday.
type USA struct{}

// Code implements internal.Provider.
func (USA) Code() string { return "us" }

// Populate implements internal.Provider.
func (USA) Populate(c *internal.Collection) error {
	year := c.Year()

	if err := add(c, "newYearsDay",
		map[string]string{"en": "New Year's Day"},
		day(year, time.January, 1)); err != nil {
		return err
	}

	if year >= 1986 {
		if err := add(c, "martinLutherKingDay",
			map[string]string{"en": "Martin Luther King Jr. Day"},
			nthWeekday(year, time.January, time.Monday, 3)); err != nil {
			return err
		}
	}

	if year >= 1879 {
		date := day(year, time.February, 22)
		if year >= 1971 {
			date = nthWeekday(year, time.February, time.Monday, 3)
		}
		if err := add(c, "washingtonsBirthday",
			map[string]string{"en": "Washington's Birthday"},
			date); err != nil {
			return err
		}
	}

	if year >= 1868 {
		date := day(year, time.May, 30)
		if year >= 1971 {
			date = nthWeekday(year, time.May, time.Monday, -1)
		}
		if err := add(c, "memorialDay",
			map[string]string{"en": "Memorial Day"},
			date); err != nil {
			return err
		}
	}

	if year >= 2021 {
		if err := add(c, "juneteenth",
			map[string]string{"en": "Juneteenth National Independence Day"},
			day(year, time.June, 19)); err != nil {
			return err
		}
	}

	if year >= 1776 {
		if err := add(c, "independenceDay",
			map[string]string{"en": "Independence Day"},
			day(year, time.July, 4)); err != nil {
			return err
		}
	}

	if year >= 1894 {
		if err := add(c, "labourDay",
			map[string]string{"en": "Labour Day"},
			nthWeekday(year, time.September, time.Monday, 1)); err != nil {
			return err
		}
	}

	if year >= 1937 {
		date := day(year, time.October, 12)
		if year >= 1971 {
			date = nthWeekday(year, time.October, time.Monday, 2)
		}
		if err := add(c, "columbusDay",
			map[string]string{"en": "Columbus Day"},
			date); err != nil {
			return err
		}
	}

	if year >= 1919 {
		if err := add(c, "veteransDay",
			map[string]string{"en": "Veterans Day"},
			day(year, time.November, 11)); err != nil {
			return err
		}
	}

	if year >= 1863 {
		if err := add(c, "thanksgivingDay",
			map[string]string{"en": "Thanksgiving Day"},
			nthWeekday(year, time.November, time.Thursday, 4)); err != nil {
			return err
		}
	}

	if err := add(c, "christmasDay",
		map[string]string{"en": "Christmas Day"},
		day(year, time.December, 25)); err != nil {
		return err
	}

	return substituteNearestWeekday(c,
		"newYearsDay", "juneteenth", "independenceDay", "veteransDay", "christmasDay")
}

// substituteNearestWeekday adds the federal observed-day entries: a holiday
// on Saturday is observed the Friday before, one on Sunday the Monday after.
func substituteNearestWeekday(c *internal.Collection, keys ...string) error {
	for _, key := range keys {
		h, err := c.Get(key)
		if err != nil {
			continue // rule not in force this year
		}
		var observed time.Time
		switch h.Date().Weekday() {
		case time.Saturday:
			observed = h.Date().AddDate(0, 0, -1)
		case time.Sunday:
			observed = h.Date().AddDate(0, 0, 1)
		default:
			continue
		}
		if err := addSubstitute(c, h, observed, nil); err != nil {
			return err
		}
	}
	return nil
}
