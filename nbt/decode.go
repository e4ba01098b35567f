package nbt

import (
	"fmt"

	"github.com/joshuapare/nbtkit/internal/buf"
	"github.com/joshuapare/nbtkit/internal/format"
	"github.com/joshuapare/nbtkit/internal/mutf8"
)

// Decode parses a fully materialized, already-decompressed NBT buffer and
// returns the root tag, conventionally a TAG_Compound. Exactly one top-level
// tag is read; trailing bytes after it are ignored (truncation policy belongs
// to the file collaborator, see nbtfile).
//
// Decoding is all-or-nothing: a malformed buffer yields a nil tree and an
// error wrapping one of the package sentinels.
func Decode(data []byte) (*Tag, error) {
	d := &decoder{data: data}

	code, err := d.readType()
	if err != nil {
		return nil, err
	}
	if code == TypeEnd {
		return nil, fmt.Errorf("nbt: root tag is TAG_End: %w", ErrUnknownTagType)
	}

	name, err := d.readString()
	if err != nil {
		return nil, fmt.Errorf("root name: %w", err)
	}

	root, err := d.readPayload(code, 0)
	if err != nil {
		return nil, err
	}
	root.name = name
	return root, nil
}

// decoder threads a cursor over the input buffer. The cursor is the sole
// state shared between recursive calls.
type decoder struct {
	data []byte
	off  int
}

// take returns the next n bytes and advances the cursor.
func (d *decoder) take(n int) ([]byte, error) {
	b, ok := buf.Slice(d.data, d.off, n)
	if !ok {
		return nil, fmt.Errorf("nbt: need %d bytes at offset %d, have %d: %w",
			n, d.off, len(d.data)-d.off, ErrUnexpectedEOB)
	}
	d.off += n
	return b, nil
}

// readType reads and validates a one-byte tag type code.
func (d *decoder) readType() (TagType, error) {
	b, err := d.take(format.TypeCodeSize)
	if err != nil {
		return TypeEnd, err
	}
	code := b[0]
	if !format.ValidType(code) {
		return TypeEnd, fmt.Errorf("nbt: type code 0x%02X at offset %d: %w",
			code, d.off-1, ErrUnknownTagType)
	}
	return TagType(code), nil
}

// readString reads a u16 length prefix followed by that many bytes of
// modified UTF-8. Used for both tag names and TAG_String payloads.
func (d *decoder) readString() (string, error) {
	b, err := d.take(format.NameLenSize)
	if err != nil {
		return "", err
	}
	length := int(buf.U16BE(b))
	if length == 0 {
		return "", nil
	}
	raw, err := d.take(length)
	if err != nil {
		return "", err
	}
	s, err := mutf8.Decode(raw)
	if err != nil {
		return "", fmt.Errorf("nbt: string at offset %d: %w: %w", d.off-length, err, ErrNameEncoding)
	}
	return s, nil
}

// readCount reads an i32 length prefix and rejects negative values.
func (d *decoder) readCount() (int, error) {
	b, err := d.take(format.CountSize)
	if err != nil {
		return 0, err
	}
	n := buf.I32BE(b)
	if n < 0 {
		return 0, fmt.Errorf("nbt: negative count %d at offset %d: %w",
			n, d.off-format.CountSize, ErrMalformedLength)
	}
	return int(n), nil
}

// readPayload reads the payload of a tag of the given type and returns an
// unnamed Tag holding it. depth counts container nesting from the root.
func (d *decoder) readPayload(code TagType, depth int) (*Tag, error) {
	if depth > MaxDepth {
		return nil, ErrDepthExceeded
	}

	t := &Tag{typ: code}
	switch code {
	case TypeByte, TypeShort, TypeInt, TypeLong:
		b, err := d.take(format.ScalarWidth(byte(code)))
		if err != nil {
			return nil, err
		}
		switch code {
		case TypeByte:
			t.num = int64(int8(b[0]))
		case TypeShort:
			t.num = int64(buf.I16BE(b))
		case TypeInt:
			t.num = int64(buf.I32BE(b))
		default:
			t.num = buf.I64BE(b)
		}

	case TypeFloat:
		b, err := d.take(format.ScalarWidth(format.TagFloat))
		if err != nil {
			return nil, err
		}
		t.flt = float64(buf.F32BE(b))

	case TypeDouble:
		b, err := d.take(format.ScalarWidth(format.TagDouble))
		if err != nil {
			return nil, err
		}
		t.flt = buf.F64BE(b)

	case TypeString:
		s, err := d.readString()
		if err != nil {
			return nil, err
		}
		t.str = s

	case TypeByteArray, TypeIntArray, TypeLongArray:
		if err := d.readArray(t); err != nil {
			return nil, err
		}

	case TypeList:
		if err := d.readList(t, depth); err != nil {
			return nil, err
		}

	case TypeCompound:
		if err := d.readCompound(t, depth); err != nil {
			return nil, err
		}

	default:
		// TypeEnd never reaches here; Decode and readCompound intercept it.
		return nil, fmt.Errorf("nbt: payload for %s: %w", code, ErrUnknownTagType)
	}
	return t, nil
}

// readArray reads the i32 count and fixed-width elements of the three
// homogeneous array types.
func (d *decoder) readArray(t *Tag) error {
	count, err := d.readCount()
	if err != nil {
		return fmt.Errorf("%s: %w", t.typ, err)
	}
	elem := format.ArrayElemWidth(byte(t.typ))
	if _, err := buf.CheckListBounds(len(d.data), d.off, count, elem); err != nil {
		return fmt.Errorf("nbt: %s of %d elements at offset %d: %w: %w",
			t.typ, count, d.off, err, ErrUnexpectedEOB)
	}

	raw, err := d.take(count * elem)
	if err != nil {
		return err
	}
	switch t.typ {
	case TypeByteArray:
		t.bytes = make([]int8, count)
		for i := 0; i < count; i++ {
			t.bytes[i] = int8(raw[i])
		}
	case TypeIntArray:
		t.ints = make([]int32, count)
		for i := 0; i < count; i++ {
			t.ints[i] = buf.I32BE(raw[i*4:])
		}
	default:
		t.longs = make([]int64, count)
		for i := 0; i < count; i++ {
			t.longs[i] = buf.I64BE(raw[i*8:])
		}
	}
	return nil
}

// readList reads the element type code, the i32 count, and count payload-only
// elements (no per-element name or type byte), wrapping each as an unnamed
// child tag.
func (d *decoder) readList(t *Tag, depth int) error {
	b, err := d.take(format.ListElemTypeSize)
	if err != nil {
		return err
	}
	if !format.ValidType(b[0]) {
		return fmt.Errorf("nbt: list element type 0x%02X at offset %d: %w",
			b[0], d.off-1, ErrUnknownTagType)
	}
	t.elemType = TagType(b[0])

	count, err := d.readCount()
	if err != nil {
		return fmt.Errorf("list: %w", err)
	}
	// A zero count decodes to an empty list whatever the declared element
	// type. A nonzero count of TAG_End elements is unrepresentable.
	if count == 0 {
		return nil
	}
	if t.elemType == TypeEnd {
		return fmt.Errorf("nbt: list of %d TAG_End elements: %w", count, ErrMalformedLength)
	}

	t.children = make([]*Tag, 0, min(count, 1024))
	for i := 0; i < count; i++ {
		child, err := d.readPayload(t.elemType, depth+1)
		if err != nil {
			return err
		}
		child.parent = t
		t.children = append(t.children, child)
	}
	return nil
}

// readCompound reads named sub-tags until a TAG_End code. Duplicate child
// names are preserved in wire order; keyed views resolve them last-write-wins.
func (d *decoder) readCompound(t *Tag, depth int) error {
	for {
		code, err := d.readType()
		if err != nil {
			return err
		}
		if code == TypeEnd {
			return nil
		}

		name, err := d.readString()
		if err != nil {
			return fmt.Errorf("name of %s child: %w", code, err)
		}
		child, err := d.readPayload(code, depth+1)
		if err != nil {
			return err
		}
		child.name = name
		child.parent = t
		t.children = append(t.children, child)
	}
}
