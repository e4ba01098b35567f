// Package query evaluates compiled boolean expressions against every tag in
// a tree, layering free-form predicates over the walker's structural filter.
//
// Expressions see one tag at a time through these variables:
//
//	name   string  tag name ("" for list elements)
//	type   string  canonical TAG_* spelling
//	path   string  slash-joined lookup path
//	depth  int     0 for the root
//	len    int     child count for containers, element count for arrays
//	value  any     scalar or string payload, nil for containers
//
//	q, err := query.Compile(`type == "TAG_Byte" && name contains "rain"`)
//	tags, err := q.Select(root)
package query

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/joshuapare/nbtkit/nbt"
	"github.com/joshuapare/nbtkit/nbt/walker"
)

// Query is a compiled predicate, reusable across trees and goroutines.
type Query struct {
	src string
	prg *vm.Program
}

// Compile parses and type-checks a predicate expression. Compilation failures
// surface here, before any traversal.
func Compile(src string) (*Query, error) {
	prg, err := expr.Compile(src, expr.Env(env(nil, "", 0)), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("query: compile %q: %w", src, err)
	}
	return &Query{src: src, prg: prg}, nil
}

// String returns the source expression.
func (q *Query) String() string { return q.src }

// env builds the variable set one expression evaluation sees.
func env(t *nbt.Tag, path string, depth int) map[string]any {
	m := map[string]any{
		"name":  "",
		"type":  "",
		"path":  path,
		"depth": depth,
		"len":   0,
		"value": nil,
	}
	if t == nil {
		return m
	}
	m["name"] = t.Name()
	m["type"] = t.Type().String()

	switch t.Type() {
	case nbt.TypeList, nbt.TypeCompound:
		m["len"] = t.Len()
	case nbt.TypeByteArray:
		v, _ := t.ByteArray()
		m["len"] = len(v)
	case nbt.TypeIntArray:
		v, _ := t.IntArray()
		m["len"] = len(v)
	case nbt.TypeLongArray:
		v, _ := t.LongArray()
		m["len"] = len(v)
	default:
		m["value"] = t.Value()
	}
	return m
}

// Select returns the tags for which the predicate holds, in pre-order. An
// evaluation error on any tag aborts the traversal.
func (q *Query) Select(root *nbt.Tag) ([]*nbt.Tag, error) {
	var out []*nbt.Tag
	for _, e := range walker.BuildIndex(root).Entries() {
		ok, err := q.Match(e.Tag, e.Path, e.Depth)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, e.Tag)
		}
	}
	return out, nil
}

// Match evaluates the predicate against a single tag.
func (q *Query) Match(t *nbt.Tag, path string, depth int) (bool, error) {
	res, err := expr.Run(q.prg, env(t, path, depth))
	if err != nil {
		return false, fmt.Errorf("query: eval %q on %s: %w", q.src, t, err)
	}
	ok, isBool := res.(bool)
	if !isBool {
		return false, fmt.Errorf("query: %q yielded %T, want bool", q.src, res)
	}
	return ok, nil
}
