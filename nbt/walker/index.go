package walker

import (
	"strconv"

	"github.com/joshuapare/nbtkit/nbt"
)

// PathSeparator joins tag names into lookup paths.
const PathSeparator = "/"

// Entry is one indexed tag: its slash-joined path and nesting depth, in
// pre-order position.
type Entry struct {
	Path  string
	Depth int
	Tag   *nbt.Tag
}

// Index is a flattened, one-shot view over a tag tree for repeated queries
// without re-walking. It reflects the tree at the time BuildIndex ran and is
// not kept in sync with later mutation; rebuild it after structural edits.
type Index struct {
	entries []Entry
	byPath  map[string]*nbt.Tag
	byName  map[string][]*nbt.Tag
}

// BuildIndex walks the tree once, in pre-order, and returns the flattened
// view. Paths are the slash-joined names of the tag and its ancestors, with
// List elements keyed by index ("pos/1"). When two tags share a full path
// (duplicate names inside one Compound) the later one wins in the path map;
// both remain visible in Entries and ByName.
func BuildIndex(root *nbt.Tag) *Index {
	idx := &Index{
		byPath: make(map[string]*nbt.Tag),
		byName: make(map[string][]*nbt.Tag),
	}
	if root != nil {
		idx.add(root, root.Name(), 0)
	}
	return idx
}

func (idx *Index) add(t *nbt.Tag, path string, depth int) {
	idx.entries = append(idx.entries, Entry{Path: path, Depth: depth, Tag: t})
	idx.byPath[path] = t
	if name := t.Name(); name != "" {
		idx.byName[name] = append(idx.byName[name], t)
	}

	isList := t.Type() == nbt.TypeList
	for i, c := range t.Children() {
		seg := c.Name()
		if isList {
			seg = strconv.Itoa(i)
		}
		// An empty-named root (files usually have one) contributes no
		// leading separator.
		child := seg
		if path != "" {
			child = path + PathSeparator + seg
		}
		idx.add(c, child, depth+1)
	}
}

// Entries returns every indexed tag in pre-order. The slice is owned by the
// index and must not be modified.
func (idx *Index) Entries() []Entry { return idx.entries }

// Len returns the number of indexed tags.
func (idx *Index) Len() int { return len(idx.entries) }

// Get returns the tag at a slash-joined path.
func (idx *Index) Get(path string) (*nbt.Tag, bool) {
	t, ok := idx.byPath[path]
	return t, ok
}

// ByName returns every tag carrying the given name, in pre-order.
func (idx *Index) ByName(name string) []*nbt.Tag { return idx.byName[name] }

// Find applies a filter to the indexed entries without re-walking the tree.
// Results come back in pre-order, the same order FindTags would produce.
func (idx *Index) Find(f *Filter) ([]*nbt.Tag, error) {
	if f == nil {
		f = &Filter{}
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}

	var out []*nbt.Tag
	for _, e := range idx.entries {
		if f.Matches(e.Tag) {
			out = append(out, e.Tag)
		}
	}
	return out, nil
}
