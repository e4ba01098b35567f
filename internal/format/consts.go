// Package format houses the low-level constants of the NBT binary tag format.
// The goal is to keep the byte-level knowledge (type codes, payload widths,
// length-prefix shapes) in one place, independent from the public API, so
// higher-level packages can orchestrate the data in a more ergonomic form.
package format

// Tag type codes as they appear on the wire. The enumeration is closed: codes
// 0 through 12 are defined, anything above is invalid.
const (
	TagEnd       = 0x00
	TagByte      = 0x01
	TagShort     = 0x02
	TagInt       = 0x03
	TagLong      = 0x04
	TagFloat     = 0x05
	TagDouble    = 0x06
	TagByteArray = 0x07
	TagString    = 0x08
	TagList      = 0x09
	TagCompound  = 0x0A
	TagIntArray  = 0x0B
	TagLongArray = 0x0C

	// MaxTagType is the highest valid type code.
	MaxTagType = TagLongArray
)

const (
	// TypeCodeSize is the width of the one-byte tag type code.
	TypeCodeSize = 1

	// NameLenSize is the width of the unsigned name/string length prefix.
	NameLenSize = 2

	// CountSize is the width of the signed List/array count prefix.
	CountSize = 4

	// ListElemTypeSize is the width of the element type code preceding a
	// List count.
	ListElemTypeSize = 1
)

// scalarWidths maps fixed-width scalar type codes to their payload size in
// bytes. Zero means the type has no fixed payload width.
var scalarWidths = [MaxTagType + 1]int{
	TagByte:   1,
	TagShort:  2,
	TagInt:    4,
	TagLong:   8,
	TagFloat:  4,
	TagDouble: 8,
}

// ScalarWidth returns the fixed payload width of a scalar type code, or 0 if
// the type is not a fixed-width scalar.
func ScalarWidth(code byte) int {
	if int(code) >= len(scalarWidths) {
		return 0
	}
	return scalarWidths[code]
}

// ArrayElemWidth returns the element width of the three homogeneous array
// types, or 0 if code is not an array type.
func ArrayElemWidth(code byte) int {
	switch code {
	case TagByteArray:
		return 1
	case TagIntArray:
		return 4
	case TagLongArray:
		return 8
	default:
		return 0
	}
}

// ValidType reports whether code is inside the closed 0..12 enumeration.
func ValidType(code byte) bool {
	return code <= MaxTagType
}

// typeNames holds the canonical TAG_* spellings used in dumps and errors.
var typeNames = [MaxTagType + 1]string{
	TagEnd:       "TAG_End",
	TagByte:      "TAG_Byte",
	TagShort:     "TAG_Short",
	TagInt:       "TAG_Int",
	TagLong:      "TAG_Long",
	TagFloat:     "TAG_Float",
	TagDouble:    "TAG_Double",
	TagByteArray: "TAG_Byte_Array",
	TagString:    "TAG_String",
	TagList:      "TAG_List",
	TagCompound:  "TAG_Compound",
	TagIntArray:  "TAG_Int_Array",
	TagLongArray: "TAG_Long_Array",
}

// TypeName returns the canonical TAG_* name for a type code, or "TAG_Invalid"
// for codes outside the enumeration.
func TypeName(code byte) string {
	if !ValidType(code) {
		return "TAG_Invalid"
	}
	return typeNames[code]
}
