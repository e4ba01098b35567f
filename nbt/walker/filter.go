package walker

import (
	"fmt"
	"strings"

	"github.com/joshuapare/nbtkit/nbt"
)

// Filter describes a predicate over tags. Zero-value fields impose no
// restriction; all supplied predicates are combined with logical AND, so the
// zero Filter matches every tag.
//
// Name matching is case-sensitive. NameExact requires full equality and
// NameLike substring containment; both may be set at once (their conjunction
// rarely makes sense, but it is not an error).
type Filter struct {
	// NameExact, when non-empty, requires the tag name to equal it.
	NameExact string

	// NameLike, when non-empty, requires the tag name to contain it.
	NameLike string

	// Types, when non-empty, requires the tag type to be one of them.
	Types []nbt.TagType

	// Ancestor, when non-nil, requires at least one tag on the parent chain
	// (up to and including the root) to satisfy it. Only its name and type
	// predicates apply; a nested Ancestor field is ignored.
	Ancestor *Filter
}

// Validate reports malformed predicate construction. It runs before any
// traversal so an invalid filter never yields a partial result.
func (f *Filter) Validate() error {
	for _, typ := range f.Types {
		if !typ.Valid() {
			return fmt.Errorf("walker: filter type code 0x%02X outside enumeration", byte(typ))
		}
	}
	if f.Ancestor != nil {
		if err := f.Ancestor.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// matchesSelf applies the name and type predicates to a single tag.
func (f *Filter) matchesSelf(t *nbt.Tag) bool {
	if f.NameExact != "" && t.Name() != f.NameExact {
		return false
	}
	if f.NameLike != "" && !strings.Contains(t.Name(), f.NameLike) {
		return false
	}
	if len(f.Types) > 0 {
		found := false
		for _, typ := range f.Types {
			if t.Type() == typ {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Matches reports whether t satisfies the whole filter, ancestor constraint
// included.
func (f *Filter) Matches(t *nbt.Tag) bool {
	if !f.matchesSelf(t) {
		return false
	}
	if f.Ancestor == nil {
		return true
	}
	for p := t.Parent(); p != nil; p = p.Parent() {
		if f.Ancestor.matchesSelf(p) {
			return true
		}
	}
	return false
}

// FindTags traverses the tree rooted at root and returns the tags matching f
// in pre-order. An empty result is a normal outcome. A nil filter matches
// every tag.
func FindTags(root *nbt.Tag, f *Filter) ([]*nbt.Tag, error) {
	if f == nil {
		f = &Filter{}
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}

	var out []*nbt.Tag
	_ = Walk(root, func(t *nbt.Tag, _ int) error {
		if f.Matches(t) {
			out = append(out, t)
		}
		return nil
	})
	return out, nil
}
