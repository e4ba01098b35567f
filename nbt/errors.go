package nbt

import (
	"errors"

	"github.com/joshuapare/nbtkit/internal/format"
)

// The decode/encode failure taxonomy. All errors returned by Decode and
// Encode wrap one of these sentinels, so callers can classify failures with
// errors.Is without parsing messages.
var (
	// ErrUnknownTagType reports a type code outside the 0..12 enumeration.
	ErrUnknownTagType = format.ErrUnknownTagType

	// ErrUnexpectedEOB reports a read that would run past the end of the
	// buffer.
	ErrUnexpectedEOB = format.ErrTruncated

	// ErrMalformedLength reports a negative, overflowing, or otherwise
	// impossible length field.
	ErrMalformedLength = format.ErrMalformedLength

	// ErrPayloadTypeMismatch reports a payload variant that disagrees with
	// the declared tag type, either on typed access or during encoding.
	ErrPayloadTypeMismatch = format.ErrPayloadMismatch

	// ErrNameEncoding reports a name or string payload that is not valid
	// modified UTF-8.
	ErrNameEncoding = format.ErrNameEncoding

	// ErrDepthExceeded reports a tree nested beyond MaxDepth. It exists to
	// bound recursion on hostile buffers; well-formed game saves stay far
	// below the limit.
	ErrDepthExceeded = errors.New("nbt: nesting depth exceeded")
)

// MaxDepth is the maximum container nesting the decoder and encoder accept.
// Matches the reference game implementation's limit.
const MaxDepth = 512
