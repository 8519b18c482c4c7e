// Package holidays computes public holidays for supported countries and
// subdivisions, with locale-aware names and weekend substitution rules.
//
// Collections are created through the provider factory:
//
//	c, err := holidays.Create("jp", 2015, "ja_JP")
//	if err != nil {
//		return err
//	}
//	when, _ := c.WhenIs("autumnalEquinoxDay") // "2015-09-23"
//
// Each collection holds the holidays of one country for one year. Entries
// are keyed by stable identifiers ("christmasDay", "stPatricksDay") and
// carry their own translation maps; Name resolves a display name through the
// collection's locale fallback chain.
package holidays
