package main

import (
	"testing"

	"github.com/joshuapare/nbtkit/nbt"
	"github.com/stretchr/testify/require"
)

func TestParseType(t *testing.T) {
	typ, err := parseType("compound")
	require.NoError(t, err)
	require.Equal(t, nbt.TypeCompound, typ)

	typ, err = parseType("INT_ARRAY")
	require.NoError(t, err)
	require.Equal(t, nbt.TypeIntArray, typ)

	_, err = parseType("bogus")
	require.Error(t, err)
}

func TestBuildFilter(t *testing.T) {
	searchName = ""
	searchLike = "pos"
	searchTypes = []string{"list", "compound"}
	searchAncestor = "Player"
	defer func() {
		searchLike = ""
		searchTypes = nil
		searchAncestor = ""
	}()

	f, err := buildFilter()
	require.NoError(t, err)
	require.Equal(t, "pos", f.NameLike)
	require.Equal(t, []nbt.TagType{nbt.TypeList, nbt.TypeCompound}, f.Types)
	require.NotNil(t, f.Ancestor)
	require.Equal(t, "Player", f.Ancestor.NameExact)

	searchTypes = []string{"bogus"}
	_, err = buildFilter()
	require.Error(t, err)
}
