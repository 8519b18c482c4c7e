package providers

import (
	"time"

	"github.com/dmitrymomot/holidays/internal"
)

// Germany produces the nationwide German public holidays. State-specific
// holidays live in subdivision providers (see Bavaria) that compose the
// nationwide rules with their own.
type Germany struct{}

// Code implements internal.Provider.
func (Germany) Code() string { return "de" }

// Populate implements internal.Provider.
func (Germany) Populate(c *internal.Collection) error {
	return populateGermanyCommon(c)
}

// Bavaria produces the public holidays of the Free State of Bavaria: the
// nationwide set plus the Catholic holidays observed statewide.
type Bavaria struct{}

// Code implements internal.Provider.
func (Bavaria) Code() string { return "de-by" }

// Populate implements internal.Provider.
func (Bavaria) Populate(c *internal.Collection) error {
	if err := populateGermanyCommon(c); err != nil {
		return err
	}

	year := c.Year()

	if err := add(c, "epiphany",
		map[string]string{"en": "Epiphany", "de": "Heilige Drei Könige"},
		day(year, time.January, 6)); err != nil {
		return err
	}
	if err := addCorpusChristi(c,
		map[string]string{"en": "Corpus Christi", "de": "Fronleichnam"}); err != nil {
		return err
	}
	if err := add(c, "assumptionOfMary",
		map[string]string{"en": "Assumption of Mary", "de": "Mariä Himmelfahrt"},
		day(year, time.August, 15)); err != nil {
		return err
	}
	return add(c, "allSaintsDay",
		map[string]string{"en": "All Saints' Day", "de": "Allerheiligen"},
		day(year, time.November, 1))
}

func populateGermanyCommon(c *internal.Collection) error {
	year := c.Year()

	if err := add(c, "newYearsDay",
		map[string]string{"en": "New Year's Day", "de": "Neujahr"},
		day(year, time.January, 1)); err != nil {
		return err
	}

	if err := addGoodFriday(c,
		map[string]string{"en": "Good Friday", "de": "Karfreitag"}); err != nil {
		return err
	}
	if err := addEasterMonday(c,
		map[string]string{"en": "Easter Monday", "de": "Ostermontag"}); err != nil {
		return err
	}

	if year >= 1919 {
		if err := add(c, "internationalWorkersDay",
			map[string]string{"en": "International Workers' Day", "de": "Tag der Arbeit"},
			day(year, time.May, 1)); err != nil {
			return err
		}
	}

	if err := addAscensionDay(c,
		map[string]string{"en": "Ascension Day", "de": "Christi Himmelfahrt"}); err != nil {
		return err
	}
	if err := addPentecostMonday(c,
		map[string]string{"en": "Whitmonday", "de": "Pfingstmontag"}); err != nil {
		return err
	}

	if year >= 1990 {
		if err := add(c, "germanUnityDay",
			map[string]string{"en": "Day of German Unity", "de": "Tag der Deutschen Einheit"},
			day(year, time.October, 3)); err != nil {
			return err
		}
	}

	// Nationwide only for the 2017 quincentenary of the Reformation.
	if year == 2017 {
		if err := add(c, "reformationDay",
			map[string]string{"en": "Reformation Day", "de": "Reformationstag"},
			day(year, time.October, 31)); err != nil {
			return err
		}
	}

	if err := add(c, "christmasDay",
		map[string]string{"en": "Christmas Day", "de": "Erster Weihnachtstag"},
		day(year, time.December, 25)); err != nil {
		return err
	}
	return add(c, "secondChristmasDay",
		map[string]string{"en": "Boxing Day", "de": "Zweiter Weihnachtstag"},
		day(year, time.December, 26))
}
