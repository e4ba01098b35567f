// Package mutf8 implements the modified UTF-8 coding used by NBT names and
// string payloads. Modified UTF-8 differs from standard UTF-8 in two ways:
// U+0000 is written as the two-byte sequence 0xC0 0x80 (so encoded strings
// contain no raw zero bytes), and supplementary characters are written as
// CESU-8 style surrogate pairs (two three-byte sequences) rather than a
// single four-byte sequence.
//
// The Encoder always emits canonical modified UTF-8. The Decoder is lenient:
// it accepts both modified UTF-8 and standard UTF-8 input, so buffers written
// by either convention decode, and decode∘encode is idempotent after the
// first round trip.
package mutf8

import (
	"errors"
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// ErrInvalid is returned when input is neither valid modified UTF-8 nor
// valid standard UTF-8.
var ErrInvalid = errors.New("mutf8: invalid byte sequence")

const (
	surrSelf = 0x10000 // first supplementary code point
	surrMin  = 0xD800
	surrMax  = 0xDFFF
	lowMin   = 0xDC00
)

// Encoder transforms standard UTF-8 into modified UTF-8.
// It implements transform.Transformer and is stateless.
type Encoder struct{ transform.NopResetter }

// Transform implements transform.Transformer.
func (Encoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		r, size := utf8.DecodeRune(src[nSrc:])
		if r == utf8.RuneError && size <= 1 {
			if !atEOF && !utf8.FullRune(src[nSrc:]) {
				return nDst, nSrc, transform.ErrShortSrc
			}
			return nDst, nSrc, ErrInvalid
		}
		n := writeRune(dst[nDst:], r)
		if n == 0 {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += n
		nSrc += size
	}
	return nDst, nSrc, nil
}

// writeRune writes one rune in modified UTF-8 into b, returning the number of
// bytes written, or 0 when b is too small.
func writeRune(b []byte, r rune) int {
	switch {
	case r == 0:
		if len(b) < 2 {
			return 0
		}
		b[0], b[1] = 0xC0, 0x80
		return 2
	case r < surrSelf:
		// 1..3 byte forms are identical to standard UTF-8.
		if len(b) < utf8.RuneLen(r) {
			return 0
		}
		return utf8.EncodeRune(b, r)
	default:
		// Supplementary: surrogate pair, two 3-byte units.
		if len(b) < 6 {
			return 0
		}
		hi, lo := utf16.EncodeRune(r)
		writeBMP(b, hi)
		writeBMP(b[3:], lo)
		return 6
	}
}

// writeBMP writes a BMP code point (including surrogate halves) as a
// three-byte sequence without surrogate validation.
func writeBMP(b []byte, r rune) {
	b[0] = byte(0xE0 | (r >> 12))
	b[1] = byte(0x80 | ((r >> 6) & 0x3F))
	b[2] = byte(0x80 | (r & 0x3F))
}

// Decoder transforms modified UTF-8 (or standard UTF-8) into standard UTF-8.
// It implements transform.Transformer and is stateless.
type Decoder struct{ transform.NopResetter }

// Transform implements transform.Transformer.
func (Decoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		r, size, derr := decodeRune(src[nSrc:], atEOF)
		if derr != nil {
			return nDst, nSrc, derr
		}
		if nDst+utf8.RuneLen(r) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += utf8.EncodeRune(dst[nDst:], r)
		nSrc += size
	}
	return nDst, nSrc, nil
}

// decodeRune decodes one rune of modified or standard UTF-8 from b.
func decodeRune(b []byte, atEOF bool) (rune, int, error) {
	c := b[0]
	switch {
	case c < 0x80:
		// Raw NUL bytes are tolerated on decode; the encoder never emits them.
		return rune(c), 1, nil

	case c&0xE0 == 0xC0: // two bytes
		if len(b) < 2 {
			return 0, 0, shortOrInvalid(atEOF)
		}
		if b[1]&0xC0 != 0x80 {
			return 0, 0, ErrInvalid
		}
		r := rune(c&0x1F)<<6 | rune(b[1]&0x3F)
		// 0xC0 0x80 is the modified encoding of U+0000; other overlong
		// two-byte forms are invalid.
		if r < 0x80 && !(r == 0 && c == 0xC0 && b[1] == 0x80) {
			return 0, 0, ErrInvalid
		}
		return r, 2, nil

	case c&0xF0 == 0xE0: // three bytes, possibly a surrogate half
		if len(b) < 3 {
			return 0, 0, shortOrInvalid(atEOF)
		}
		if b[1]&0xC0 != 0x80 || b[2]&0xC0 != 0x80 {
			return 0, 0, ErrInvalid
		}
		r := rune(c&0x0F)<<12 | rune(b[1]&0x3F)<<6 | rune(b[2]&0x3F)
		if r < 0x800 {
			return 0, 0, ErrInvalid
		}
		if r < surrMin || r > surrMax {
			return r, 3, nil
		}
		// High surrogate: a low surrogate must follow.
		if r >= lowMin {
			return 0, 0, ErrInvalid // unpaired low surrogate
		}
		if len(b) < 6 {
			return 0, 0, shortOrInvalid(atEOF)
		}
		if b[3]&0xF0 != 0xE0 || b[4]&0xC0 != 0x80 || b[5]&0xC0 != 0x80 {
			return 0, 0, ErrInvalid
		}
		lo := rune(b[3]&0x0F)<<12 | rune(b[4]&0x3F)<<6 | rune(b[5]&0x3F)
		if lo < lowMin || lo > surrMax {
			return 0, 0, ErrInvalid
		}
		return utf16.DecodeRune(r, lo), 6, nil

	case c&0xF8 == 0xF0: // standard UTF-8 four-byte form, accepted leniently
		if len(b) < 4 {
			return 0, 0, shortOrInvalid(atEOF)
		}
		r, size := utf8.DecodeRune(b[:4])
		if r == utf8.RuneError && size <= 1 {
			return 0, 0, ErrInvalid
		}
		return r, size, nil

	default:
		return 0, 0, ErrInvalid
	}
}

func shortOrInvalid(atEOF bool) error {
	if atEOF {
		return ErrInvalid
	}
	return transform.ErrShortSrc
}

// Encode converts a standard UTF-8 string to modified UTF-8 bytes.
func Encode(s string) ([]byte, error) {
	out, _, err := transform.Bytes(Encoder{}, []byte(s))
	return out, err
}

// Decode converts modified UTF-8 (or standard UTF-8) bytes to a string.
func Decode(b []byte) (string, error) {
	out, _, err := transform.Bytes(Decoder{}, b)
	return string(out), err
}
