// Package gomap bridges NBT tag trees and plain Go values.
//
// FromTag is a lossy convenience projection: it flattens a Compound into a
// map[string]any, dropping parent links, element type declarations, and
// duplicate-name ordering (last write wins). It consumes only the tree's
// public read surface and adds no codec logic of its own.
//
// ToTag goes the other way, building a tag tree from nested Go maps and
// slices, which keeps test fixtures and programmatic tree construction terse.
package gomap

import (
	"fmt"
	"sort"

	"github.com/joshuapare/nbtkit/nbt"
)

// FromTag projects a tag's payload onto plain Go values: scalars stay
// scalars, arrays become slices, Lists become []any, and Compounds become
// map[string]any keyed by child name (duplicates resolve last-write-wins).
func FromTag(t *nbt.Tag) any {
	if t == nil {
		return nil
	}
	switch t.Type() {
	case nbt.TypeCompound:
		m := make(map[string]any, t.Len())
		for _, c := range t.Children() {
			m[c.Name()] = FromTag(c)
		}
		return m
	case nbt.TypeList:
		s := make([]any, 0, t.Len())
		for _, c := range t.Children() {
			s = append(s, FromTag(c))
		}
		return s
	default:
		return t.Value()
	}
}

// ToTag builds a named tag from a plain Go value. Supported inputs:
//
//	int8/int16/int32/int64  TAG_Byte/Short/Int/Long
//	int                     TAG_Int (TAG_Long when it overflows 32 bits)
//	float32/float64         TAG_Float/Double
//	string                  TAG_String
//	bool                    TAG_Byte 0/1
//	[]int8/[]int32/[]int64  TAG_Byte_Array/Int_Array/Long_Array
//	[]any                   TAG_List (homogeneous element types required)
//	map[string]any          TAG_Compound (keys sorted for determinism)
func ToTag(name string, v any) (*nbt.Tag, error) {
	switch x := v.(type) {
	case int8:
		return nbt.NewByte(name, x), nil
	case int16:
		return nbt.NewShort(name, x), nil
	case int32:
		return nbt.NewInt(name, x), nil
	case int64:
		return nbt.NewLong(name, x), nil
	case int:
		if int64(x) == int64(int32(x)) {
			return nbt.NewInt(name, int32(x)), nil
		}
		return nbt.NewLong(name, int64(x)), nil
	case float32:
		return nbt.NewFloat(name, x), nil
	case float64:
		return nbt.NewDouble(name, x), nil
	case string:
		return nbt.NewString(name, x), nil
	case bool:
		if x {
			return nbt.NewByte(name, 1), nil
		}
		return nbt.NewByte(name, 0), nil
	case []int8:
		return nbt.NewByteArray(name, x), nil
	case []int32:
		return nbt.NewIntArray(name, x), nil
	case []int64:
		return nbt.NewLongArray(name, x), nil
	case []any:
		return listToTag(name, x)
	case map[string]any:
		return mapToTag(name, x)
	case nil:
		return nil, fmt.Errorf("gomap: nil value for %q", name)
	default:
		return nil, fmt.Errorf("gomap: unsupported type %T for %q", v, name)
	}
}

func listToTag(name string, items []any) (*nbt.Tag, error) {
	list := nbt.NewList(name, nbt.TypeEnd)
	for i, item := range items {
		child, err := ToTag("", item)
		if err != nil {
			return nil, fmt.Errorf("gomap: %q[%d]: %w", name, i, err)
		}
		if err := list.Append(child); err != nil {
			return nil, fmt.Errorf("gomap: %q[%d]: %w", name, i, err)
		}
	}
	return list, nil
}

func mapToTag(name string, m map[string]any) (*nbt.Tag, error) {
	comp := nbt.NewCompound(name)

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		child, err := ToTag(k, m[k])
		if err != nil {
			return nil, err
		}
		if err := comp.Append(child); err != nil {
			return nil, fmt.Errorf("gomap: %q/%q: %w", name, k, err)
		}
	}
	return comp, nil
}
