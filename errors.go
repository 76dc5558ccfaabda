package iconforge

import "errors"

var (
	// ErrInvalidSize is returned for non-positive edge lengths.
	ErrInvalidSize = errors.New("iconforge: size must be positive")

	// ErrInvalidLineCount is returned for a negative number of form lines.
	ErrInvalidLineCount = errors.New("iconforge: line count must not be negative")

	// ErrUnsupportedFormat is returned when no encoder is registered for the
	// requested output format.
	ErrUnsupportedFormat = errors.New("iconforge: unsupported output format")

	// ErrInvalidColor is returned by ParseColor for malformed hex colors.
	ErrInvalidColor = errors.New("iconforge: invalid hex color")
)
