package printer

import (
	"fmt"
	"strings"

	"github.com/joshuapare/nbtkit/nbt"
	"github.com/joshuapare/nbtkit/nbt/walker"
)

// printText renders an indented tree, one tag per line:
//
//	TAG_Compound("level")
//	  TAG_Byte("raining"): 0
//	  TAG_List("pos"): 2 entries of TAG_Double
//	    TAG_Double: 1.5
func (p *Printer) printText(root *nbt.Tag) error {
	var werr error
	err := walker.Walk(root, func(t *nbt.Tag, depth int) error {
		if p.opts.MaxDepth > 0 && depth >= p.opts.MaxDepth {
			return walker.SkipChildren
		}
		indent := strings.Repeat(" ", depth*p.opts.IndentSize)
		if _, werr = fmt.Fprintf(p.w, "%s%s\n", indent, p.line(t)); werr != nil {
			return walker.Stop
		}
		return nil
	})
	if werr != nil {
		return werr
	}
	return err
}

// line formats a single tag without indentation.
func (p *Printer) line(t *nbt.Tag) string {
	var head string
	switch {
	case !p.opts.ShowTypes:
		if t.Name() == "" {
			head = "-"
		} else {
			head = t.Name()
		}
	case t.Name() == "":
		head = t.Type().String()
	default:
		head = fmt.Sprintf("%s(%q)", t.Type(), t.Name())
	}

	switch t.Type() {
	case nbt.TypeCompound:
		return fmt.Sprintf("%s: %d entries", head, t.Len())
	case nbt.TypeList:
		elem, _ := t.ElemType()
		return fmt.Sprintf("%s: %d entries of %s", head, t.Len(), elem)
	case nbt.TypeString:
		v, _ := t.Text()
		return fmt.Sprintf("%s: %q", head, v)
	case nbt.TypeByteArray:
		v, _ := t.ByteArray()
		return fmt.Sprintf("%s: %s", head, previewInts(v, p.opts.MaxArrayPreview))
	case nbt.TypeIntArray:
		v, _ := t.IntArray()
		return fmt.Sprintf("%s: %s", head, previewInts(v, p.opts.MaxArrayPreview))
	case nbt.TypeLongArray:
		v, _ := t.LongArray()
		return fmt.Sprintf("%s: %s", head, previewInts(v, p.opts.MaxArrayPreview))
	default:
		return fmt.Sprintf("%s: %v", head, t.Value())
	}
}

// previewInts formats an integer slice, eliding elements past limit.
func previewInts[T int8 | int32 | int64](v []T, limit int) string {
	shown := v
	elided := 0
	if limit > 0 && len(v) > limit {
		shown = v[:limit]
		elided = len(v) - limit
	}

	var b strings.Builder
	b.WriteByte('[')
	for i, x := range shown {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%d", x)
	}
	if elided > 0 {
		fmt.Fprintf(&b, ", ... %d more", elided)
	}
	b.WriteByte(']')
	return b.String()
}
