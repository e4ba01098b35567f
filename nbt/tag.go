package nbt

import (
	"fmt"

	"github.com/joshuapare/nbtkit/internal/format"
)

// TagType is the one-byte wire code identifying a tag's payload shape.
type TagType byte

// The closed tag type enumeration, codes 0 through 12.
const (
	TypeEnd       TagType = format.TagEnd
	TypeByte      TagType = format.TagByte
	TypeShort     TagType = format.TagShort
	TypeInt       TagType = format.TagInt
	TypeLong      TagType = format.TagLong
	TypeFloat     TagType = format.TagFloat
	TypeDouble    TagType = format.TagDouble
	TypeByteArray TagType = format.TagByteArray
	TypeString    TagType = format.TagString
	TypeList      TagType = format.TagList
	TypeCompound  TagType = format.TagCompound
	TypeIntArray  TagType = format.TagIntArray
	TypeLongArray TagType = format.TagLongArray
)

// Valid reports whether t is inside the closed enumeration.
func (t TagType) Valid() bool { return format.ValidType(byte(t)) }

// IsContainer reports whether tags of this type carry child tags.
func (t TagType) IsContainer() bool { return t == TypeList || t == TypeCompound }

// String returns the canonical TAG_* spelling.
func (t TagType) String() string { return format.TypeName(byte(t)) }

// Tag is one node of an NBT tree. It carries a type, an optional name, a
// payload matching the type, and a non-owning back-reference to its parent.
//
// Payload storage is a tagged union over the private fields below; the typed
// accessors and setters enforce type/payload consistency, so a Tag can never
// hold a payload that disagrees with its declared type. List and Compound
// children are owned by their container; the parent pointer exists only for
// ancestor-chain queries and never keeps a subtree alive on its own.
type Tag struct {
	name   string
	typ    TagType
	parent *Tag

	num      int64   // Byte, Short, Int, Long
	flt      float64 // Float, Double
	str      string  // String
	bytes    []int8  // ByteArray
	ints     []int32 // IntArray
	longs    []int64 // LongArray
	children []*Tag  // List elements, Compound children
	elemType TagType // List element type (TypeEnd for an empty List)
}

// ---- Constructors ----

// NewByte returns a named TAG_Byte.
func NewByte(name string, v int8) *Tag {
	return &Tag{name: name, typ: TypeByte, num: int64(v)}
}

// NewShort returns a named TAG_Short.
func NewShort(name string, v int16) *Tag {
	return &Tag{name: name, typ: TypeShort, num: int64(v)}
}

// NewInt returns a named TAG_Int.
func NewInt(name string, v int32) *Tag {
	return &Tag{name: name, typ: TypeInt, num: int64(v)}
}

// NewLong returns a named TAG_Long.
func NewLong(name string, v int64) *Tag {
	return &Tag{name: name, typ: TypeLong, num: v}
}

// NewFloat returns a named TAG_Float.
func NewFloat(name string, v float32) *Tag {
	return &Tag{name: name, typ: TypeFloat, flt: float64(v)}
}

// NewDouble returns a named TAG_Double.
func NewDouble(name string, v float64) *Tag {
	return &Tag{name: name, typ: TypeDouble, flt: v}
}

// NewString returns a named TAG_String.
func NewString(name, v string) *Tag {
	return &Tag{name: name, typ: TypeString, str: v}
}

// NewByteArray returns a named TAG_Byte_Array. The slice is not copied.
func NewByteArray(name string, v []int8) *Tag {
	return &Tag{name: name, typ: TypeByteArray, bytes: v}
}

// NewIntArray returns a named TAG_Int_Array. The slice is not copied.
func NewIntArray(name string, v []int32) *Tag {
	return &Tag{name: name, typ: TypeIntArray, ints: v}
}

// NewLongArray returns a named TAG_Long_Array. The slice is not copied.
func NewLongArray(name string, v []int64) *Tag {
	return &Tag{name: name, typ: TypeLongArray, longs: v}
}

// NewList returns a named, empty TAG_List whose elements must all be of
// elemType. An empty List conventionally declares TypeEnd.
func NewList(name string, elemType TagType) *Tag {
	return &Tag{name: name, typ: TypeList, elemType: elemType}
}

// NewCompound returns a named, empty TAG_Compound.
func NewCompound(name string) *Tag {
	return &Tag{name: name, typ: TypeCompound}
}

// ---- Identity ----

// Name returns the tag's name. List elements and the End marker are unnamed
// and report the empty string.
func (t *Tag) Name() string { return t.name }

// Type returns the tag's type code.
func (t *Tag) Type() TagType { return t.typ }

// Parent returns the enclosing container tag, or nil for the root.
func (t *Tag) Parent() *Tag { return t.parent }

// String implements fmt.Stringer for debugging output.
func (t *Tag) String() string {
	if t.name == "" {
		return t.typ.String()
	}
	return fmt.Sprintf("%s(%q)", t.typ, t.name)
}

// mismatch builds the standard wrong-variant access error.
func (t *Tag) mismatch(want TagType) error {
	return fmt.Errorf("nbt: %s is not %s: %w", t, want, ErrPayloadTypeMismatch)
}

// ---- Scalar payload access ----

// Byte returns the TAG_Byte payload.
func (t *Tag) Byte() (int8, error) {
	if t.typ != TypeByte {
		return 0, t.mismatch(TypeByte)
	}
	return int8(t.num), nil
}

// Short returns the TAG_Short payload.
func (t *Tag) Short() (int16, error) {
	if t.typ != TypeShort {
		return 0, t.mismatch(TypeShort)
	}
	return int16(t.num), nil
}

// Int returns the TAG_Int payload.
func (t *Tag) Int() (int32, error) {
	if t.typ != TypeInt {
		return 0, t.mismatch(TypeInt)
	}
	return int32(t.num), nil
}

// Long returns the TAG_Long payload.
func (t *Tag) Long() (int64, error) {
	if t.typ != TypeLong {
		return 0, t.mismatch(TypeLong)
	}
	return t.num, nil
}

// Float returns the TAG_Float payload.
func (t *Tag) Float() (float32, error) {
	if t.typ != TypeFloat {
		return 0, t.mismatch(TypeFloat)
	}
	return float32(t.flt), nil
}

// Double returns the TAG_Double payload.
func (t *Tag) Double() (float64, error) {
	if t.typ != TypeDouble {
		return 0, t.mismatch(TypeDouble)
	}
	return t.flt, nil
}

// Text returns the TAG_String payload.
func (t *Tag) Text() (string, error) {
	if t.typ != TypeString {
		return "", t.mismatch(TypeString)
	}
	return t.str, nil
}

// ByteArray returns the TAG_Byte_Array payload. The slice is shared, not copied.
func (t *Tag) ByteArray() ([]int8, error) {
	if t.typ != TypeByteArray {
		return nil, t.mismatch(TypeByteArray)
	}
	return t.bytes, nil
}

// IntArray returns the TAG_Int_Array payload. The slice is shared, not copied.
func (t *Tag) IntArray() ([]int32, error) {
	if t.typ != TypeIntArray {
		return nil, t.mismatch(TypeIntArray)
	}
	return t.ints, nil
}

// LongArray returns the TAG_Long_Array payload. The slice is shared, not copied.
func (t *Tag) LongArray() ([]int64, error) {
	if t.typ != TypeLongArray {
		return nil, t.mismatch(TypeLongArray)
	}
	return t.longs, nil
}

// Value returns the payload as a dynamically typed value: int8/int16/int32/
// int64, float32/float64, string, []int8/[]int32/[]int64, or []*Tag for the
// container types. Intended for printers and query layers; typed accessors
// are preferred in application code.
func (t *Tag) Value() any {
	switch t.typ {
	case TypeByte:
		return int8(t.num)
	case TypeShort:
		return int16(t.num)
	case TypeInt:
		return int32(t.num)
	case TypeLong:
		return t.num
	case TypeFloat:
		return float32(t.flt)
	case TypeDouble:
		return t.flt
	case TypeString:
		return t.str
	case TypeByteArray:
		return t.bytes
	case TypeIntArray:
		return t.ints
	case TypeLongArray:
		return t.longs
	case TypeList, TypeCompound:
		return t.children
	default:
		return nil
	}
}

// ---- Scalar payload mutation ----

// SetByte replaces the TAG_Byte payload.
func (t *Tag) SetByte(v int8) error {
	if t.typ != TypeByte {
		return t.mismatch(TypeByte)
	}
	t.num = int64(v)
	return nil
}

// SetShort replaces the TAG_Short payload.
func (t *Tag) SetShort(v int16) error {
	if t.typ != TypeShort {
		return t.mismatch(TypeShort)
	}
	t.num = int64(v)
	return nil
}

// SetInt replaces the TAG_Int payload.
func (t *Tag) SetInt(v int32) error {
	if t.typ != TypeInt {
		return t.mismatch(TypeInt)
	}
	t.num = int64(v)
	return nil
}

// SetLong replaces the TAG_Long payload.
func (t *Tag) SetLong(v int64) error {
	if t.typ != TypeLong {
		return t.mismatch(TypeLong)
	}
	t.num = v
	return nil
}

// SetFloat replaces the TAG_Float payload.
func (t *Tag) SetFloat(v float32) error {
	if t.typ != TypeFloat {
		return t.mismatch(TypeFloat)
	}
	t.flt = float64(v)
	return nil
}

// SetDouble replaces the TAG_Double payload.
func (t *Tag) SetDouble(v float64) error {
	if t.typ != TypeDouble {
		return t.mismatch(TypeDouble)
	}
	t.flt = v
	return nil
}

// SetText replaces the TAG_String payload.
func (t *Tag) SetText(v string) error {
	if t.typ != TypeString {
		return t.mismatch(TypeString)
	}
	t.str = v
	return nil
}

// ---- Container access ----

// ElemType returns the declared element type of a TAG_List.
func (t *Tag) ElemType() (TagType, error) {
	if t.typ != TypeList {
		return TypeEnd, t.mismatch(TypeList)
	}
	return t.elemType, nil
}

// Len returns the number of children of a List or Compound, and 0 for
// every other type.
func (t *Tag) Len() int { return len(t.children) }

// Children returns the ordered child tags of a List or Compound. The slice
// must not be reordered or mutated directly; use Append.
func (t *Tag) Children() []*Tag { return t.children }

// Child returns the Compound child with the given name. When the Compound
// holds duplicate names (both are preserved in wire order) the last one wins,
// matching the flattened lookup view. Returns nil if absent or if t is not
// a Compound.
func (t *Tag) Child(name string) *Tag {
	if t.typ != TypeCompound {
		return nil
	}
	for i := len(t.children) - 1; i >= 0; i-- {
		if t.children[i].name == name {
			return t.children[i]
		}
	}
	return nil
}

// At returns the List element at index i, or nil when out of range or when
// t is not a List.
func (t *Tag) At(i int) *Tag {
	if t.typ != TypeList || i < 0 || i >= len(t.children) {
		return nil
	}
	return t.children[i]
}

// Append attaches a child to a container tag and records the parent
// back-reference on the child.
//
// For a Compound the child keeps its name; duplicate names are preserved in
// insertion order. For a List the child must match the declared element type
// (appending to an empty TypeEnd List adopts the child's type) and its name
// is cleared, since List elements are unnamed on the wire.
func (t *Tag) Append(child *Tag) error {
	if child == nil {
		return fmt.Errorf("nbt: nil child: %w", ErrPayloadTypeMismatch)
	}
	if child.typ == TypeEnd || !child.typ.Valid() {
		return fmt.Errorf("nbt: cannot attach %s: %w", child.typ, ErrPayloadTypeMismatch)
	}
	if child.parent != nil {
		return fmt.Errorf("nbt: %s already has a parent", child)
	}

	switch t.typ {
	case TypeCompound:
	case TypeList:
		if t.elemType == TypeEnd && len(t.children) == 0 {
			t.elemType = child.typ
		}
		if child.typ != t.elemType {
			return fmt.Errorf("nbt: %s element in list of %s: %w",
				child.typ, t.elemType, ErrPayloadTypeMismatch)
		}
		child.name = ""
	default:
		return t.mismatch(TypeCompound)
	}

	child.parent = t
	t.children = append(t.children, child)
	return nil
}

// Remove detaches the first child equal to c (pointer identity) and clears
// its parent reference. Returns false when c is not a direct child.
func (t *Tag) Remove(c *Tag) bool {
	for i, child := range t.children {
		if child == c {
			t.children = append(t.children[:i], t.children[i+1:]...)
			c.parent = nil
			return true
		}
	}
	return false
}
