// Package buf contains helpers for endian-safe decoding and encoding routines.
package buf

import (
	"encoding/binary"
	"math"
)

// NBT is big-endian throughout. Read helpers return the zero value when b is
// too short; callers that need a hard failure bounds-check first with Has or
// Slice.

// U16BE reads a big-endian uint16 from b. Returns 0 when b is too short.
func U16BE(b []byte) uint16 {
	if len(b) < 2 {
		return 0
	}
	return binary.BigEndian.Uint16(b)
}

// I16BE reads a big-endian int16 from b. Returns 0 when b is too short.
func I16BE(b []byte) int16 {
	return int16(U16BE(b))
}

// U32BE reads a big-endian uint32 from b. Returns 0 when b is too short.
func U32BE(b []byte) uint32 {
	if len(b) < 4 {
		return 0
	}
	return binary.BigEndian.Uint32(b)
}

// I32BE reads a big-endian int32 from b. Returns 0 when b is too short.
func I32BE(b []byte) int32 {
	return int32(U32BE(b))
}

// U64BE reads a big-endian uint64 from b. Returns 0 when b is too short.
func U64BE(b []byte) uint64 {
	if len(b) < 8 {
		return 0
	}
	return binary.BigEndian.Uint64(b)
}

// I64BE reads a big-endian int64 from b. Returns 0 when b is too short.
func I64BE(b []byte) int64 {
	return int64(U64BE(b))
}

// F32BE reads a big-endian IEEE-754 float32 from b. Returns 0 when b is too short.
func F32BE(b []byte) float32 {
	return math.Float32frombits(U32BE(b))
}

// F64BE reads a big-endian IEEE-754 float64 from b. Returns 0 when b is too short.
func F64BE(b []byte) float64 {
	return math.Float64frombits(U64BE(b))
}

// AppendU16BE appends v to dst in big-endian order.
func AppendU16BE(dst []byte, v uint16) []byte {
	return binary.BigEndian.AppendUint16(dst, v)
}

// AppendI16BE appends v to dst in big-endian order.
func AppendI16BE(dst []byte, v int16) []byte {
	return binary.BigEndian.AppendUint16(dst, uint16(v))
}

// AppendU32BE appends v to dst in big-endian order.
func AppendU32BE(dst []byte, v uint32) []byte {
	return binary.BigEndian.AppendUint32(dst, v)
}

// AppendI32BE appends v to dst in big-endian order.
func AppendI32BE(dst []byte, v int32) []byte {
	return binary.BigEndian.AppendUint32(dst, uint32(v))
}

// AppendI64BE appends v to dst in big-endian order.
func AppendI64BE(dst []byte, v int64) []byte {
	return binary.BigEndian.AppendUint64(dst, uint64(v))
}

// AppendF32BE appends the IEEE-754 bits of v to dst in big-endian order.
func AppendF32BE(dst []byte, v float32) []byte {
	return binary.BigEndian.AppendUint32(dst, math.Float32bits(v))
}

// AppendF64BE appends the IEEE-754 bits of v to dst in big-endian order.
func AppendF64BE(dst []byte, v float64) []byte {
	return binary.BigEndian.AppendUint64(dst, math.Float64bits(v))
}
