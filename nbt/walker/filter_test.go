package walker

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/nbtkit/nbt"
)

func TestFindTags_NoPredicatesMatchesAll(t *testing.T) {
	root := sampleTree(t)

	tags, err := FindTags(root, nil)
	require.NoError(t, err)
	require.Len(t, tags, Count(root))
	require.Equal(t, root, tags[0])

	// The zero filter behaves identically.
	tags2, err := FindTags(root, &Filter{})
	require.NoError(t, err)
	require.Equal(t, tags, tags2)
}

func TestFindTags_NameExact(t *testing.T) {
	root := sampleTree(t)

	tags, err := FindTags(root, &Filter{NameExact: "raining"})
	require.NoError(t, err)
	require.Len(t, tags, 1)
	require.Equal(t, nbt.TypeByte, tags[0].Type())

	// Case-sensitive: no match for different casing.
	tags, err = FindTags(root, &Filter{NameExact: "Raining"})
	require.NoError(t, err)
	require.Empty(t, tags)
}

func TestFindTags_NameLike(t *testing.T) {
	root := sampleTree(t)

	tags, err := FindTags(root, &Filter{NameLike: "ain"})
	require.NoError(t, err)
	require.Len(t, tags, 1)
	require.Equal(t, "raining", tags[0].Name())

	tags, err = FindTags(root, &Filter{NameLike: "AIN"})
	require.NoError(t, err)
	require.Empty(t, tags)
}

func TestFindTags_Types(t *testing.T) {
	root := sampleTree(t)

	tags, err := FindTags(root, &Filter{Types: []nbt.TagType{nbt.TypeDouble}})
	require.NoError(t, err)
	require.Len(t, tags, 2)

	tags, err = FindTags(root, &Filter{Types: []nbt.TagType{nbt.TypeCompound, nbt.TypeList}})
	require.NoError(t, err)
	require.Len(t, tags, 3) // root, player, pos
}

func TestFindTags_Conjunction(t *testing.T) {
	root := sampleTree(t)

	// name AND type must both hold.
	tags, err := FindTags(root, &Filter{NameExact: "raining", Types: []nbt.TagType{nbt.TypeInt}})
	require.NoError(t, err)
	require.Empty(t, tags)

	tags, err = FindTags(root, &Filter{NameLike: "rain", Types: []nbt.TagType{nbt.TypeByte}})
	require.NoError(t, err)
	require.Len(t, tags, 1)
}

func TestFindTags_AncestorConstraint(t *testing.T) {
	// Root Compound "A" containing Compound "B" containing Byte "C".
	a := nbt.NewCompound("A")
	b := nbt.NewCompound("B")
	c := nbt.NewByte("C", 1)
	require.NoError(t, b.Append(c))
	require.NoError(t, a.Append(b))

	tags, err := FindTags(a, &Filter{
		Types:    []nbt.TagType{nbt.TypeByte},
		Ancestor: &Filter{NameExact: "A"},
	})
	require.NoError(t, err)
	require.Equal(t, []*nbt.Tag{c}, tags)

	tags, err = FindTags(a, &Filter{
		Types:    []nbt.TagType{nbt.TypeByte},
		Ancestor: &Filter{NameExact: "Z"},
	})
	require.NoError(t, err)
	require.Empty(t, tags)

	// The ancestor constraint excludes the tag itself: "A" has no ancestors.
	tags, err = FindTags(a, &Filter{Ancestor: &Filter{NameExact: "A"}})
	require.NoError(t, err)
	require.Equal(t, []*nbt.Tag{b, c}, tags)
}

func TestFindTags_AncestorByType(t *testing.T) {
	root := sampleTree(t)

	// Doubles under a List ancestor.
	tags, err := FindTags(root, &Filter{
		Ancestor: &Filter{Types: []nbt.TagType{nbt.TypeList}},
	})
	require.NoError(t, err)
	require.Len(t, tags, 2)
}

func TestFindTags_InvalidFilterFailsFast(t *testing.T) {
	root := sampleTree(t)

	_, err := FindTags(root, &Filter{Types: []nbt.TagType{nbt.TagType(99)}})
	require.Error(t, err)

	_, err = FindTags(root, &Filter{Ancestor: &Filter{Types: []nbt.TagType{nbt.TagType(13)}}})
	require.Error(t, err)
}

func TestFindTags_EmptyResultIsNormal(t *testing.T) {
	tags, err := FindTags(sampleTree(t), &Filter{NameExact: "nope"})
	require.NoError(t, err)
	require.Empty(t, tags)
}
