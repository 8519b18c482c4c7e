package providers

import (
	"time"

	"github.com/dmitrymomot/holidays/internal"
)

// Netherlands produces the Dutch national holidays and the common
// observances. King's Day (Queen's Day before 2014) shifts off Sunday.
type Netherlands struct{}

// Code implements internal.Provider.
func (Netherlands) Code() string { return "nl" }

// Populate implements internal.Provider.
func (Netherlands) Populate(c *internal.Collection) error {
	year := c.Year()

	if err := add(c, "newYearsDay",
		map[string]string{"en": "New Year's Day", "nl": "Nieuwjaar"},
		day(year, time.January, 1)); err != nil {
		return err
	}

	if err := add(c, "epiphany",
		map[string]string{"en": "Epiphany", "nl": "Driekoningen"},
		day(year, time.January, 6),
		internal.WithCategory(internal.CategoryObservance)); err != nil {
		return err
	}

	if err := addGoodFriday(c,
		map[string]string{"en": "Good Friday", "nl": "Goede Vrijdag"},
		internal.WithCategory(internal.CategoryObservance)); err != nil {
		return err
	}
	if err := addEaster(c,
		map[string]string{"en": "Easter Sunday", "nl": "Eerste paasdag"},
		internal.WithCategory(internal.CategoryObservance)); err != nil {
		return err
	}
	if err := addEasterMonday(c,
		map[string]string{"en": "Easter Monday", "nl": "Tweede paasdag"}); err != nil {
		return err
	}

	if err := addRoyalDay(c); err != nil {
		return err
	}

	if year >= 1947 {
		if err := add(c, "liberationDay",
			map[string]string{"en": "Liberation Day", "nl": "Bevrijdingsdag"},
			day(year, time.May, 5)); err != nil {
			return err
		}
	}

	if err := addAscensionDay(c,
		map[string]string{"en": "Ascension Day", "nl": "Hemelvaartsdag"}); err != nil {
		return err
	}
	if err := addPentecost(c,
		map[string]string{"en": "Whitsunday", "nl": "Eerste pinksterdag"}); err != nil {
		return err
	}
	if err := addPentecostMonday(c,
		map[string]string{"en": "Whitmonday", "nl": "Tweede pinksterdag"}); err != nil {
		return err
	}

	if err := add(c, "stNicholasDay",
		map[string]string{"en": "St. Nicholas' Eve", "nl": "Sinterklaasavond"},
		day(year, time.December, 5),
		internal.WithCategory(internal.CategoryObservance)); err != nil {
		return err
	}

	if err := add(c, "christmasDay",
		map[string]string{"en": "Christmas Day", "nl": "Eerste kerstdag"},
		day(year, time.December, 25)); err != nil {
		return err
	}
	return add(c, "secondChristmasDay",
		map[string]string{"en": "Boxing Day", "nl": "Tweede kerstdag"},
		day(year, time.December, 26))
}

// addRoyalDay adds King's Day (since 2014) or Queen's Day (1949-2013). The
// celebration never falls on a Sunday: King's Day moves to the Saturday
// before, Queen's Day moved to the following Monday until 1980 and to the
// Saturday before from then on.
func addRoyalDay(c *internal.Collection) error {
	year := c.Year()

	switch {
	case year >= 2014:
		date := day(year, time.April, 27)
		if date.Weekday() == time.Sunday {
			date = date.AddDate(0, 0, -1)
		}
		return add(c, "kingsDay",
			map[string]string{"en": "King's Day", "nl": "Koningsdag"},
			date)
	case year >= 1949:
		date := day(year, time.April, 30)
		if date.Weekday() == time.Sunday {
			if year < 1980 {
				date = date.AddDate(0, 0, 1)
			} else {
				date = date.AddDate(0, 0, -1)
			}
		}
		return add(c, "queensDay",
			map[string]string{"en": "Queen's Day", "nl": "Koninginnedag"},
			date)
	default:
		return nil
	}
}
