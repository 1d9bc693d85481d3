package timestamp

import "errors"

// Sentinel errors returned by conversions. Wrapped values remain checkable
// with errors.Is.
var (
	// ErrOverflow indicates a conversion or arithmetic result outside the
	// int64 nanosecond range. Values are never silently clamped.
	ErrOverflow = errors.New("timestamp: nanosecond overflow")

	// ErrParse indicates malformed calendar-text input.
	ErrParse = errors.New("timestamp: parse error")

	// ErrBinaryLength indicates a binary encoding of the wrong width.
	ErrBinaryLength = errors.New("timestamp: binary length mismatch")
)
