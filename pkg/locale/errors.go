package locale

import "errors"

var (
	// ErrUnknownLocale is returned when a tag is malformed or not in the supported set.
	ErrUnknownLocale = errors.New("locale: unknown locale")
)
