package walker

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/nbtkit/nbt"
)

// sampleTree builds:
//
//	Compound "root"
//	├── Byte "raining" = 0
//	├── Compound "player"
//	│   ├── Int "score" = 10
//	│   └── List "pos" [Double 1.0, Double 2.0]
//	└── String "name" = "world"
func sampleTree(t *testing.T) *nbt.Tag {
	t.Helper()

	root := nbt.NewCompound("root")
	require.NoError(t, root.Append(nbt.NewByte("raining", 0)))

	player := nbt.NewCompound("player")
	require.NoError(t, player.Append(nbt.NewInt("score", 10)))

	pos := nbt.NewList("pos", nbt.TypeDouble)
	require.NoError(t, pos.Append(nbt.NewDouble("", 1.0)))
	require.NoError(t, pos.Append(nbt.NewDouble("", 2.0)))
	require.NoError(t, player.Append(pos))

	require.NoError(t, root.Append(player))
	require.NoError(t, root.Append(nbt.NewString("name", "world")))
	return root
}

func TestWalk_PreOrder(t *testing.T) {
	root := sampleTree(t)

	var names []string
	var depths []int
	err := Walk(root, func(tag *nbt.Tag, depth int) error {
		names = append(names, tag.Name())
		depths = append(depths, depth)
		return nil
	})
	require.NoError(t, err)

	// Pre-order: node before children, stored child order, list index order.
	require.Equal(t, []string{"root", "raining", "player", "score", "pos", "", "", "name"}, names)
	require.Equal(t, []int{0, 1, 1, 2, 2, 3, 3, 1}, depths)
}

func TestWalk_SkipChildren(t *testing.T) {
	root := sampleTree(t)

	var names []string
	err := Walk(root, func(tag *nbt.Tag, _ int) error {
		names = append(names, tag.Name())
		if tag.Name() == "player" {
			return SkipChildren
		}
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, []string{"root", "raining", "player", "name"}, names)
}

func TestWalk_Stop(t *testing.T) {
	root := sampleTree(t)

	n := 0
	err := Walk(root, func(tag *nbt.Tag, _ int) error {
		n++
		if tag.Name() == "player" {
			return Stop
		}
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, 3, n)
}

func TestWalk_ErrorAborts(t *testing.T) {
	root := sampleTree(t)
	boom := errors.New("boom")

	err := Walk(root, func(tag *nbt.Tag, _ int) error {
		if tag.Name() == "score" {
			return boom
		}
		return nil
	})
	require.ErrorIs(t, err, boom)
}

func TestWalk_NilRoot(t *testing.T) {
	require.NoError(t, Walk(nil, func(*nbt.Tag, int) error { return nil }))
}

func TestCount(t *testing.T) {
	require.Equal(t, 8, Count(sampleTree(t)))
	require.Equal(t, 0, Count(nil))
	require.Equal(t, 1, Count(nbt.NewCompound("only")))
}
