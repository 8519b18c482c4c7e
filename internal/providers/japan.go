package providers

import (
	"math"
	"time"

	"github.com/dmitrymomot/holidays/internal"
)

// Japan produces the national holidays of Japan as defined by the Public
// Holiday Law of 1948 and its amendments, including 振替休日 substitution
// entries for holidays falling on a Sunday (in force since 1973).
type Japan struct{}

// Code implements internal.Provider.
func (Japan) Code() string { return "jp" }

// Populate implements internal.Provider.
func (Japan) Populate(c *internal.Collection) error {
	year := c.Year()
	if year < 1948 {
		return nil
	}

	if err := add(c, "newYearsDay",
		map[string]string{"en": "New Year's Day", "ja": "元日"},
		day(year, time.January, 1)); err != nil {
		return err
	}

	// 1/15 until the Happy Monday reform moved it to the second Monday.
	if year >= 1949 {
		date := day(year, time.January, 15)
		if year >= 2000 {
			date = nthWeekday(year, time.January, time.Monday, 2)
		}
		if err := add(c, "comingOfAgeDay",
			map[string]string{"en": "Coming of Age Day", "ja": "成人の日"},
			date); err != nil {
			return err
		}
	}

	if year >= 1967 {
		if err := add(c, "nationalFoundationDay",
			map[string]string{"en": "National Foundation Day", "ja": "建国記念の日"},
			day(year, time.February, 11)); err != nil {
			return err
		}
	}

	if d := vernalEquinox(year); d > 0 {
		if err := add(c, "vernalEquinoxDay",
			map[string]string{"en": "Vernal Equinox Day", "ja": "春分の日"},
			day(year, time.March, d)); err != nil {
			return err
		}
	}

	if year >= 2007 {
		if err := add(c, "showaDay",
			map[string]string{"en": "Showa Day", "ja": "昭和の日"},
			day(year, time.April, 29)); err != nil {
			return err
		}
	}

	if err := add(c, "constitutionMemorialDay",
		map[string]string{"en": "Constitution Memorial Day", "ja": "憲法記念日"},
		day(year, time.May, 3)); err != nil {
		return err
	}

	// 4/29 from 1989 (the former Emperor's birthday), 5/4 since 2007.
	if year >= 1989 {
		date := day(year, time.April, 29)
		if year >= 2007 {
			date = day(year, time.May, 4)
		}
		if err := add(c, "greeneryDay",
			map[string]string{"en": "Greenery Day", "ja": "みどりの日"},
			date); err != nil {
			return err
		}
	}

	if err := add(c, "childrensDay",
		map[string]string{"en": "Children's Day", "ja": "こどもの日"},
		day(year, time.May, 5)); err != nil {
		return err
	}

	if year >= 1996 {
		date := day(year, time.July, 20)
		if year >= 2003 {
			date = nthWeekday(year, time.July, time.Monday, 3)
		}
		if err := add(c, "marineDay",
			map[string]string{"en": "Marine Day", "ja": "海の日"},
			date); err != nil {
			return err
		}
	}

	if year >= 2016 {
		if err := add(c, "mountainDay",
			map[string]string{"en": "Mountain Day", "ja": "山の日"},
			day(year, time.August, 11)); err != nil {
			return err
		}
	}

	if year >= 1966 {
		date := day(year, time.September, 15)
		if year >= 2003 {
			date = nthWeekday(year, time.September, time.Monday, 3)
		}
		if err := add(c, "respectForTheAgedDay",
			map[string]string{"en": "Respect for the Aged Day", "ja": "敬老の日"},
			date); err != nil {
			return err
		}
	}

	if d := autumnalEquinox(year); d > 0 {
		if err := add(c, "autumnalEquinoxDay",
			map[string]string{"en": "Autumnal Equinox Day", "ja": "秋分の日"},
			day(year, time.September, d)); err != nil {
			return err
		}
	}

	if year >= 1966 && year <= 2019 {
		date := day(year, time.October, 10)
		if year >= 2000 {
			date = nthWeekday(year, time.October, time.Monday, 2)
		}
		if err := add(c, "healthAndSportsDay",
			map[string]string{"en": "Health and Sports Day", "ja": "体育の日"},
			date); err != nil {
			return err
		}
	}
	if year >= 2020 {
		if err := add(c, "sportsDay",
			map[string]string{"en": "Sports Day", "ja": "スポーツの日"},
			nthWeekday(year, time.October, time.Monday, 2)); err != nil {
			return err
		}
	}

	if err := add(c, "cultureDay",
		map[string]string{"en": "Culture Day", "ja": "文化の日"},
		day(year, time.November, 3)); err != nil {
		return err
	}

	if err := add(c, "laborThanksgivingDay",
		map[string]string{"en": "Labor Thanksgiving Day", "ja": "勤労感謝の日"},
		day(year, time.November, 23)); err != nil {
		return err
	}

	// Moves with the reigning emperor; 2019 had none (the Heisei abdication).
	var birthday time.Time
	switch {
	case year >= 2020:
		birthday = day(year, time.February, 23)
	case year >= 1989 && year <= 2018:
		birthday = day(year, time.December, 23)
	case year >= 1949 && year <= 1988:
		birthday = day(year, time.April, 29)
	}
	if !birthday.IsZero() {
		if err := add(c, "emperorsBirthday",
			map[string]string{"en": "Emperor's Birthday", "ja": "天皇誕生日"},
			birthday); err != nil {
			return err
		}
	}

	if year >= 1973 {
		if err := substituteSundays(c); err != nil {
			return err
		}
	}

	return nil
}

// substituteSundays adds a 振替休日 entry for every official holiday falling
// on a Sunday, dated at the next day that is not already a holiday.
func substituteSundays(c *internal.Collection) error {
	for _, h := range c.Holidays() {
		if h.Category() != internal.CategoryOfficial || h.Date().Weekday() != time.Sunday {
			continue
		}
		if err := addSubstitute(c, h, nextFreeDay(c, h.Date()),
			map[string]string{"ja": "振替休日"}); err != nil {
			return err
		}
	}
	return nil
}

// Approximated equinox days for 1948-2150, after the almanac formulas used by
// the National Astronomical Observatory of Japan. Returns 0 outside the
// covered range.

func vernalEquinox(year int) int {
	switch {
	case year < 1948 || year > 2150:
		return 0
	case year <= 1979:
		return equinoxDay(20.8357, year)
	case year <= 2099:
		return equinoxDay(20.8431, year)
	default:
		return equinoxDay(21.8510, year)
	}
}

func autumnalEquinox(year int) int {
	switch {
	case year < 1948 || year > 2150:
		return 0
	case year <= 1979:
		return equinoxDay(23.2588, year)
	case year <= 2099:
		return equinoxDay(23.2488, year)
	default:
		return equinoxDay(24.2488, year)
	}
}

func equinoxDay(base float64, year int) int {
	shift := float64(year - 1980)
	return int(math.Floor(base + 0.242194*shift - math.Floor(shift/4)))
}
