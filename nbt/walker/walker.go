// Package walker provides traversal, filtering, and lookup indexing over NBT
// tag trees.
//
// Traversal is pre-order: a tag is visited before its children, Compound
// children in stored order, List children in index order. The walk is
// iterative with an explicit stack, so depth is bounded by memory rather than
// goroutine stack.
//
// All operations are read-only. Callers must not mutate the tree during a
// traversal; rebuild any Index after structural edits.
package walker

import (
	"errors"

	"github.com/joshuapare/nbtkit/nbt"
)

// Control errors a Visitor can return to steer the walk. Any other error
// aborts the walk and is returned to the caller.
var (
	// SkipChildren prunes the current tag's subtree and continues.
	SkipChildren = errors.New("walker: skip children")

	// Stop ends the walk early with a nil error.
	Stop = errors.New("walker: stop")
)

// Visitor is called for every tag in pre-order. depth is 0 for the root.
type Visitor func(t *nbt.Tag, depth int) error

// initialStackCapacity covers typical game-save nesting without reallocation.
const initialStackCapacity = 64

type stackEntry struct {
	tag   *nbt.Tag
	depth int
}

// Walk traverses the tree rooted at root in pre-order, invoking fn for each
// tag. A nil root or nil fn is a no-op.
func Walk(root *nbt.Tag, fn Visitor) error {
	if root == nil || fn == nil {
		return nil
	}

	stack := make([]stackEntry, 0, initialStackCapacity)
	stack = append(stack, stackEntry{tag: root})

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch err := fn(top.tag, top.depth); {
		case err == nil:
		case errors.Is(err, SkipChildren):
			continue
		case errors.Is(err, Stop):
			return nil
		default:
			return err
		}

		// Push children in reverse so they pop in stored order.
		children := top.tag.Children()
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, stackEntry{tag: children[i], depth: top.depth + 1})
		}
	}
	return nil
}

// Count returns the total number of tags in the tree, the root included.
func Count(root *nbt.Tag) int {
	n := 0
	_ = Walk(root, func(*nbt.Tag, int) error {
		n++
		return nil
	})
	return n
}
