package packstream

import (
	"errors"
	"fmt"
)

// Sentinel errors identifying the error kinds from the PackStream wire contract.
// Use errors.Is to test for a specific kind; the concrete error returned also
// carries diagnostic context (the offending value for encode errors, the cursor
// offset and marker for decode errors) via fmt.Errorf's %w wrapping.
var (
	// ErrRange reports an integer outside the 64-bit signed range, a list/map
	// length at or beyond 2^32, or a structure field count at or beyond 2^16.
	ErrRange = errors.New("packstream: value out of range")

	// ErrUnsupported reports an encoder given a Value shape outside the closed
	// sum described by the Value interface.
	ErrUnsupported = errors.New("packstream: unsupported value")

	// ErrUnsupportedKey reports a decoded Map key that cannot be represented as
	// a Go map key (its dynamic type is not comparable).
	ErrUnsupportedKey = errors.New("packstream: unsupported map key")

	// ErrTruncated reports that decoding needs more bytes than remain in the
	// input.
	ErrTruncated = errors.New("packstream: truncated input")

	// ErrUnknownMarker reports a marker byte in one of the reserved/undefined
	// ranges of the marker table.
	ErrUnknownMarker = errors.New("packstream: unknown marker")

	// ErrEncoding reports a string payload that is not well-formed UTF-8.
	ErrEncoding = errors.New("packstream: invalid UTF-8")
)

// encodeError wraps an encode error kind (ErrUnsupported, ErrRange or
// ErrEncoding) with the offending value for diagnostics.
func encodeError(kind error, v any) error {
	return fmt.Errorf("%w: %v (%T)", kind, v, v)
}

// decodeError wraps a decode error kind with the cursor offset and marker byte
// active when the failure occurred.
func decodeError(kind error, offset int, marker byte) error {
	return fmt.Errorf("%w: offset %d, marker 0x%02X", kind, offset, marker)
}
