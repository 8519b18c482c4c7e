package internal

import "errors"

var (
	// ErrInvalidArgument is returned when a blank key (or another malformed
	// caller-supplied value) is passed to a lookup or mutation operation.
	ErrInvalidArgument = errors.New("holidays: invalid argument")

	// ErrMissingTranslation is returned when name resolution exhausts its
	// probe order without a match and the raw-key sentinel was not in scope.
	ErrMissingTranslation = errors.New("holidays: missing translation")

	// ErrInvalidYear is returned when a year falls outside [YearMin, YearMax].
	ErrInvalidYear = errors.New("holidays: year out of supported range")

	// ErrHolidayNotFound is returned when a key has no entry in a collection.
	ErrHolidayNotFound = errors.New("holidays: holiday not found")

	// ErrProviderNotFound is returned when a country or region identifier does
	// not resolve to a registered provider, or when a collection without a
	// provider is asked to rebuild a neighboring year.
	ErrProviderNotFound = errors.New("holidays: provider not found")

	// ErrInputTypeMismatch is returned when a value without a calendar
	// position (the zero time.Time) is passed where a date is required.
	ErrInputTypeMismatch = errors.New("holidays: value is not a calendar date")
)
