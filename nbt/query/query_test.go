package query

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/nbtkit/nbt"
)

func sampleTree(t *testing.T) *nbt.Tag {
	t.Helper()

	root := nbt.NewCompound("root")
	require.NoError(t, root.Append(nbt.NewByte("raining", 0)))
	require.NoError(t, root.Append(nbt.NewInt("time", 6000)))

	player := nbt.NewCompound("player")
	require.NoError(t, player.Append(nbt.NewInt("score", 10)))
	require.NoError(t, player.Append(nbt.NewIntArray("hotbar", []int32{1, 2, 3})))
	require.NoError(t, root.Append(player))
	return root
}

func TestCompile_Invalid(t *testing.T) {
	_, err := Compile("name ==")
	require.Error(t, err)

	// Non-boolean results are rejected at compile time.
	_, err = Compile("depth + 1")
	require.Error(t, err)
}

func TestSelect_ByType(t *testing.T) {
	q, err := Compile(`type == "TAG_Int"`)
	require.NoError(t, err)

	tags, err := q.Select(sampleTree(t))
	require.NoError(t, err)
	require.Len(t, tags, 2)
	require.Equal(t, "time", tags[0].Name())
	require.Equal(t, "score", tags[1].Name())
}

func TestSelect_NameContains(t *testing.T) {
	q, err := Compile(`name contains "rain"`)
	require.NoError(t, err)

	tags, err := q.Select(sampleTree(t))
	require.NoError(t, err)
	require.Len(t, tags, 1)
	require.Equal(t, "raining", tags[0].Name())
}

func TestSelect_ValueAndDepth(t *testing.T) {
	q, err := Compile(`type == "TAG_Int" && value > 100 && depth == 1`)
	require.NoError(t, err)

	tags, err := q.Select(sampleTree(t))
	require.NoError(t, err)
	require.Len(t, tags, 1)
	require.Equal(t, "time", tags[0].Name())
}

func TestSelect_PathPrefix(t *testing.T) {
	q, err := Compile(`path startsWith "root/player/"`)
	require.NoError(t, err)

	tags, err := q.Select(sampleTree(t))
	require.NoError(t, err)
	require.Len(t, tags, 2)
}

func TestSelect_ArrayLen(t *testing.T) {
	q, err := Compile(`type == "TAG_Int_Array" && len == 3`)
	require.NoError(t, err)

	tags, err := q.Select(sampleTree(t))
	require.NoError(t, err)
	require.Len(t, tags, 1)
	require.Equal(t, "hotbar", tags[0].Name())
}

func TestSelect_MatchesEverything(t *testing.T) {
	q, err := Compile("true")
	require.NoError(t, err)

	tags, err := q.Select(sampleTree(t))
	require.NoError(t, err)
	require.Len(t, tags, 6)
}

func TestMatch_SingleTag(t *testing.T) {
	q, err := Compile(`name == "x" && value == 1`)
	require.NoError(t, err)

	ok, err := q.Match(nbt.NewByte("x", 1), "x", 0)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = q.Match(nbt.NewByte("x", 2), "x", 0)
	require.NoError(t, err)
	require.False(t, ok)
}
