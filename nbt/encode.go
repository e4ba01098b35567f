package nbt

import (
	"fmt"
	"math"

	"github.com/joshuapare/nbtkit/internal/buf"
	"github.com/joshuapare/nbtkit/internal/mutf8"
)

// Encode serializes a tag tree to NBT wire bytes, the exact structural
// inverse of Decode: decode(encode(tree)) is structurally and value equal to
// tree for any tree the decoder could have produced.
//
// The tree is validated while walking: a List whose children disagree with
// its declared element type, or a stray TAG_End inside a container, fails
// with ErrPayloadTypeMismatch before any partial output escapes.
func Encode(t *Tag) ([]byte, error) {
	if t == nil {
		return nil, fmt.Errorf("nbt: nil tag: %w", ErrPayloadTypeMismatch)
	}
	e := &encoder{}
	if err := e.writeTag(t, 0); err != nil {
		return nil, err
	}
	return e.out, nil
}

type encoder struct {
	out []byte
}

// writeTag emits type code, name, and payload for a named tag.
func (e *encoder) writeTag(t *Tag, depth int) error {
	if t.typ == TypeEnd || !t.typ.Valid() {
		return fmt.Errorf("nbt: cannot encode %s tag: %w", t.typ, ErrPayloadTypeMismatch)
	}
	e.out = append(e.out, byte(t.typ))
	if err := e.writeString(t.name); err != nil {
		return fmt.Errorf("name of %s: %w", t, err)
	}
	return e.writePayload(t, depth)
}

// writeString emits a u16 length prefix and modified UTF-8 bytes.
func (e *encoder) writeString(s string) error {
	raw, err := mutf8.Encode(s)
	if err != nil {
		return fmt.Errorf("nbt: %w: %w", err, ErrNameEncoding)
	}
	if len(raw) > math.MaxUint16 {
		return fmt.Errorf("nbt: string of %d encoded bytes exceeds u16 prefix: %w",
			len(raw), ErrMalformedLength)
	}
	e.out = buf.AppendU16BE(e.out, uint16(len(raw)))
	e.out = append(e.out, raw...)
	return nil
}

// writeCount emits an i32 count prefix.
func (e *encoder) writeCount(n int) error {
	if n > math.MaxInt32 {
		return fmt.Errorf("nbt: count %d exceeds i32 prefix: %w", n, ErrMalformedLength)
	}
	e.out = buf.AppendI32BE(e.out, int32(n))
	return nil
}

func (e *encoder) writePayload(t *Tag, depth int) error {
	if depth > MaxDepth {
		return ErrDepthExceeded
	}

	switch t.typ {
	case TypeByte:
		e.out = append(e.out, byte(int8(t.num)))
	case TypeShort:
		e.out = buf.AppendI16BE(e.out, int16(t.num))
	case TypeInt:
		e.out = buf.AppendI32BE(e.out, int32(t.num))
	case TypeLong:
		e.out = buf.AppendI64BE(e.out, t.num)
	case TypeFloat:
		e.out = buf.AppendF32BE(e.out, float32(t.flt))
	case TypeDouble:
		e.out = buf.AppendF64BE(e.out, t.flt)

	case TypeString:
		return e.writeString(t.str)

	case TypeByteArray:
		if err := e.writeCount(len(t.bytes)); err != nil {
			return err
		}
		for _, v := range t.bytes {
			e.out = append(e.out, byte(v))
		}

	case TypeIntArray:
		if err := e.writeCount(len(t.ints)); err != nil {
			return err
		}
		for _, v := range t.ints {
			e.out = buf.AppendI32BE(e.out, v)
		}

	case TypeLongArray:
		if err := e.writeCount(len(t.longs)); err != nil {
			return err
		}
		for _, v := range t.longs {
			e.out = buf.AppendI64BE(e.out, v)
		}

	case TypeList:
		return e.writeList(t, depth)

	case TypeCompound:
		return e.writeCompound(t, depth)

	default:
		return fmt.Errorf("nbt: payload for %s: %w", t.typ, ErrPayloadTypeMismatch)
	}
	return nil
}

// writeList emits the element type code, the i32 count, then each child's
// payload only (no per-element name or type byte).
func (e *encoder) writeList(t *Tag, depth int) error {
	elem := t.elemType
	if len(t.children) == 0 {
		// An empty list keeps its declared element type; trees built by hand
		// default to TAG_End by convention.
		e.out = append(e.out, byte(elem))
		return e.writeCount(0)
	}
	if elem == TypeEnd {
		return fmt.Errorf("nbt: non-empty %s declares TAG_End elements: %w",
			t, ErrPayloadTypeMismatch)
	}

	e.out = append(e.out, byte(elem))
	if err := e.writeCount(len(t.children)); err != nil {
		return err
	}
	for i, child := range t.children {
		if child.typ != elem {
			return fmt.Errorf("nbt: %s[%d] is %s, list declares %s: %w",
				t, i, child.typ, elem, ErrPayloadTypeMismatch)
		}
		if err := e.writePayload(child, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// writeCompound emits each child as a full named tag in stored order and
// closes with a TAG_End byte.
func (e *encoder) writeCompound(t *Tag, depth int) error {
	for _, child := range t.children {
		if err := e.writeTag(child, depth+1); err != nil {
			return err
		}
	}
	e.out = append(e.out, byte(TypeEnd))
	return nil
}
