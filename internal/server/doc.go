// Package server exposes the holiday calendar over HTTP.
//
// Routes:
//
//	GET /v1/providers                      registered providers with display names
//	GET /v1/holidays/{code}/{year}         all holidays of one provider year
//	GET /v1/holidays/{code}/{year}/{key}   one holiday by key
//	GET /v1/workday/{code}/{date}          working-day check for a date
//
// Year payloads are rendered once per (provider, year, locale) and cached in
// a yearcache.Store. Domain errors map onto 400/404; everything else is a
// logged 500.
package server
