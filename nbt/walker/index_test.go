package walker

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/nbtkit/nbt"
)

func TestBuildIndex_Paths(t *testing.T) {
	root := sampleTree(t)
	idx := BuildIndex(root)

	require.Equal(t, Count(root), idx.Len())

	score, ok := idx.Get("root/player/score")
	require.True(t, ok)
	v, err := score.Int()
	require.NoError(t, err)
	require.Equal(t, int32(10), v)

	// List elements are keyed by index.
	elem, ok := idx.Get("root/player/pos/1")
	require.True(t, ok)
	d, err := elem.Double()
	require.NoError(t, err)
	require.Equal(t, 2.0, d)

	_, ok = idx.Get("root/missing")
	require.False(t, ok)
}

func TestBuildIndex_EntriesPreOrder(t *testing.T) {
	idx := BuildIndex(sampleTree(t))

	var paths []string
	for _, e := range idx.Entries() {
		paths = append(paths, e.Path)
	}
	require.Equal(t, []string{
		"root",
		"root/raining",
		"root/player",
		"root/player/score",
		"root/player/pos",
		"root/player/pos/0",
		"root/player/pos/1",
		"root/name",
	}, paths)
}

func TestBuildIndex_ByName(t *testing.T) {
	root := nbt.NewCompound("root")
	inner := nbt.NewCompound("inner")
	require.NoError(t, inner.Append(nbt.NewByte("flag", 1)))
	require.NoError(t, root.Append(nbt.NewByte("flag", 0)))
	require.NoError(t, root.Append(inner))

	idx := BuildIndex(root)
	flags := idx.ByName("flag")
	require.Len(t, flags, 2)
	// Pre-order: the direct child precedes the nested one.
	require.Equal(t, root, flags[0].Parent())
	require.Equal(t, inner, flags[1].Parent())
}

func TestBuildIndex_DuplicatePathLastWins(t *testing.T) {
	root := nbt.NewCompound("root")
	require.NoError(t, root.Append(nbt.NewByte("x", 1)))
	require.NoError(t, root.Append(nbt.NewByte("x", 2)))

	idx := BuildIndex(root)
	// Both entries survive; the path map resolves last-write-wins.
	require.Equal(t, 3, idx.Len())
	tag, ok := idx.Get("root/x")
	require.True(t, ok)
	v, err := tag.Byte()
	require.NoError(t, err)
	require.Equal(t, int8(2), v)
	require.Len(t, idx.ByName("x"), 2)
}

func TestIndex_Find(t *testing.T) {
	root := sampleTree(t)
	idx := BuildIndex(root)

	got, err := idx.Find(&Filter{Types: []nbt.TagType{nbt.TypeDouble}})
	require.NoError(t, err)
	want, err := FindTags(root, &Filter{Types: []nbt.TagType{nbt.TypeDouble}})
	require.NoError(t, err)
	require.Equal(t, want, got)

	_, err = idx.Find(&Filter{Types: []nbt.TagType{nbt.TagType(42)}})
	require.Error(t, err)
}

func TestIndex_StaleAfterMutation(t *testing.T) {
	root := sampleTree(t)
	idx := BuildIndex(root)

	require.NoError(t, root.Append(nbt.NewByte("new", 1)))

	// The index reflects construction time; a rebuild picks up the edit.
	_, ok := idx.Get("root/new")
	require.False(t, ok)
	_, ok = BuildIndex(root).Get("root/new")
	require.True(t, ok)
}
