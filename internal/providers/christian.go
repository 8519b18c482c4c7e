package providers

import (
	"time"

	"github.com/dmitrymomot/holidays/internal"
)

// easterSunday computes Gregorian Easter with the anonymous Gregorian
// (Meeus/Jones/Butcher) algorithm, valid for every year of the supported
// range.
func easterSunday(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	dayOfMonth := (h+l-7*m+114)%31 + 1

	return day(year, time.Month(month), dayOfMonth)
}

// Easter-derived rule helpers shared by the European providers. Each takes
// the collection plus per-country names and adds a single entry; country
// rule-sets call them explicitly instead of inheriting a common base.

func addGoodFriday(c *internal.Collection, names map[string]string, opts ...internal.HolidayOption) error {
	return add(c, "goodFriday", names, easterSunday(c.Year()).AddDate(0, 0, -2), opts...)
}

func addEaster(c *internal.Collection, names map[string]string, opts ...internal.HolidayOption) error {
	return add(c, "easter", names, easterSunday(c.Year()), opts...)
}

func addEasterMonday(c *internal.Collection, names map[string]string, opts ...internal.HolidayOption) error {
	return add(c, "easterMonday", names, easterSunday(c.Year()).AddDate(0, 0, 1), opts...)
}

func addAscensionDay(c *internal.Collection, names map[string]string, opts ...internal.HolidayOption) error {
	return add(c, "ascensionDay", names, easterSunday(c.Year()).AddDate(0, 0, 39), opts...)
}

func addPentecost(c *internal.Collection, names map[string]string, opts ...internal.HolidayOption) error {
	return add(c, "pentecost", names, easterSunday(c.Year()).AddDate(0, 0, 49), opts...)
}

func addPentecostMonday(c *internal.Collection, names map[string]string, opts ...internal.HolidayOption) error {
	return add(c, "pentecostMonday", names, easterSunday(c.Year()).AddDate(0, 0, 50), opts...)
}

func addCorpusChristi(c *internal.Collection, names map[string]string, opts ...internal.HolidayOption) error {
	return add(c, "corpusChristi", names, easterSunday(c.Year()).AddDate(0, 0, 60), opts...)
}
