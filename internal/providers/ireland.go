package providers

import (
	"time"

	"github.com/dmitrymomot/holidays/internal"
)

// Ireland produces the public holidays of the Republic of Ireland per the
// Holidays (Employees) Act, plus the widely observed church days as
// observances. A public holiday falling on a weekend is compensated by a
// substitution entry on the next working day.
type Ireland struct{}

// Code implements internal.Provider.
func (Ireland) Code() string { return "ie" }

// Populate implements internal.Provider.
func (Ireland) Populate(c *internal.Collection) error {
	year := c.Year()

	if year >= 1975 {
		if err := add(c, "newYearsDay",
			map[string]string{"en": "New Year's Day", "ga": "Lá Caille"},
			day(year, time.January, 1)); err != nil {
			return err
		}
	}

	if year >= 1903 {
		if err := add(c, "stPatricksDay",
			map[string]string{"en": "St. Patrick's Day", "ga": "Lá Fhéile Pádraig"},
			day(year, time.March, 17)); err != nil {
			return err
		}
	}

	if err := addGoodFriday(c,
		map[string]string{"en": "Good Friday", "ga": "Aoine an Chéasta"},
		internal.WithCategory(internal.CategoryObservance)); err != nil {
		return err
	}
	if err := addEaster(c,
		map[string]string{"en": "Easter Sunday", "ga": "Domhnach Cásca"},
		internal.WithCategory(internal.CategoryObservance)); err != nil {
		return err
	}
	if err := addEasterMonday(c,
		map[string]string{"en": "Easter Monday", "ga": "Luan Cásca"}); err != nil {
		return err
	}

	if year >= 1994 {
		if err := add(c, "mayDay",
			map[string]string{"en": "May Day", "ga": "Lá Bealtaine"},
			nthWeekday(year, time.May, time.Monday, 1)); err != nil {
			return err
		}
	}

	if year >= 1973 {
		if err := add(c, "juneHoliday",
			map[string]string{"en": "June Holiday", "ga": "Lá Saoire i mí an Mheithimh"},
			nthWeekday(year, time.June, time.Monday, 1)); err != nil {
			return err
		}
	}

	if err := add(c, "augustHoliday",
		map[string]string{"en": "August Holiday", "ga": "Lá Saoire i mí Lúnasa"},
		nthWeekday(year, time.August, time.Monday, 1)); err != nil {
		return err
	}

	if year >= 1977 {
		if err := add(c, "octoberHoliday",
			map[string]string{"en": "October Holiday", "ga": "Lá Saoire i mí Dheireadh Fómhair"},
			nthWeekday(year, time.October, time.Monday, -1)); err != nil {
			return err
		}
	}

	if err := add(c, "christmasDay",
		map[string]string{"en": "Christmas Day", "ga": "Lá Nollag"},
		day(year, time.December, 25)); err != nil {
		return err
	}
	if err := add(c, "stStephensDay",
		map[string]string{"en": "St. Stephen's Day", "ga": "Lá Fhéile Stiofáin"},
		day(year, time.December, 26)); err != nil {
		return err
	}

	if err := addPentecost(c,
		map[string]string{"en": "Whitsunday", "ga": "Domhnach Cincíse"},
		internal.WithCategory(internal.CategoryObservance)); err != nil {
		return err
	}

	if year >= 1974 {
		return substituteWeekends(c,
			"newYearsDay", "stPatricksDay", "christmasDay", "stStephensDay")
	}

	return nil
}

// substituteWeekends adds a substitution on the next working day for each of
// the named holidays that falls on a Saturday or Sunday. Entries are
// processed in the given order, so stacked Christmas substitutions land on
// consecutive working days.
func substituteWeekends(c *internal.Collection, keys ...string) error {
	for _, key := range keys {
		h, err := c.Get(key)
		if err != nil {
			continue // rule not in force this year
		}
		if !isWeekend(h.Date()) {
			continue
		}
		if err := addSubstitute(c, h, nextWorkingDay(c, h.Date()), nil); err != nil {
			return err
		}
	}
	return nil
}
