package translations

import "errors"

var (
	// ErrInvalidFile is returned when a translation file cannot be parsed.
	ErrInvalidFile = errors.New("translations: invalid translation file")
)
