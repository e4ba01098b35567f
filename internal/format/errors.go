package format

import "errors"

var (
	// ErrUnknownTagType indicates a type code outside the 0..12 enumeration.
	ErrUnknownTagType = errors.New("format: unknown tag type")
	// ErrTruncated indicates the buffer lacked the bytes required for a structure.
	ErrTruncated = errors.New("format: unexpected end of buffer")
	// ErrMalformedLength indicates a negative or overflowing length field.
	ErrMalformedLength = errors.New("format: malformed length")
	// ErrPayloadMismatch indicates a tag payload variant disagreed with its declared type.
	ErrPayloadMismatch = errors.New("format: payload type mismatch")
	// ErrNameEncoding indicates a name or string failed modified-UTF-8 coding.
	ErrNameEncoding = errors.New("format: name encoding error")
)
