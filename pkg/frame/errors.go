package frame

import "errors"

var (
	// ErrNoFormat is returned when either side of a conversion has no format.
	ErrNoFormat = errors.New("frame: no pixel format")
	// ErrUnsupportedFormat is returned for formats outside of the catalog.
	ErrUnsupportedFormat = errors.New("frame: unsupported pixel format")
	// ErrOddDimensions is returned when a 4:2:0 buffer has an odd width or height.
	ErrOddDimensions = errors.New("frame: 4:2:0 formats require even dimensions")
	// ErrEmptyCrop is returned when source and destination do not overlap.
	ErrEmptyCrop = errors.New("frame: nothing to copy")
)
