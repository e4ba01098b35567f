package gomap

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/nbtkit/nbt"
)

func TestFromTag_Compound(t *testing.T) {
	root := nbt.NewCompound("level")
	require.NoError(t, root.Append(nbt.NewByte("raining", 1)))
	require.NoError(t, root.Append(nbt.NewString("name", "world")))

	inner := nbt.NewCompound("player")
	require.NoError(t, inner.Append(nbt.NewInt("score", 10)))
	require.NoError(t, root.Append(inner))

	pos := nbt.NewList("pos", nbt.TypeDouble)
	require.NoError(t, pos.Append(nbt.NewDouble("", 1.5)))
	require.NoError(t, pos.Append(nbt.NewDouble("", 2.5)))
	require.NoError(t, root.Append(pos))

	want := map[string]any{
		"raining": int8(1),
		"name":    "world",
		"player":  map[string]any{"score": int32(10)},
		"pos":     []any{1.5, 2.5},
	}
	if diff := cmp.Diff(want, FromTag(root)); diff != "" {
		t.Fatalf("projection mismatch (-want +got):\n%s", diff)
	}
}

func TestFromTag_DuplicateNamesLastWins(t *testing.T) {
	root := nbt.NewCompound("")
	require.NoError(t, root.Append(nbt.NewByte("x", 1)))
	require.NoError(t, root.Append(nbt.NewByte("x", 2)))

	m, ok := FromTag(root).(map[string]any)
	require.True(t, ok)
	require.Equal(t, int8(2), m["x"])
}

func TestFromTag_Nil(t *testing.T) {
	require.Nil(t, FromTag(nil))
}

func TestToTag_RoundTrip(t *testing.T) {
	in := map[string]any{
		"byte":   int8(-1),
		"short":  int16(300),
		"int":    int32(70000),
		"long":   int64(1) << 40,
		"float":  float32(1.5),
		"double": 2.5,
		"text":   "hello",
		"flag":   true,
		"ba":     []int8{1, 2},
		"ia":     []int32{3, 4},
		"la":     []int64{5},
		"list":   []any{"a", "b"},
		"nested": map[string]any{"k": int32(1)},
	}

	root, err := ToTag("root", in)
	require.NoError(t, err)
	require.Equal(t, nbt.TypeCompound, root.Type())

	// Projection inverts the build, modulo bool becoming TAG_Byte.
	got, ok := FromTag(root).(map[string]any)
	require.True(t, ok)
	require.Equal(t, int8(1), got["flag"])
	delete(in, "flag")
	delete(got, "flag")
	if diff := cmp.Diff(in, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}

	// The built tree encodes and decodes cleanly.
	wire, err := nbt.Encode(root)
	require.NoError(t, err)
	back, err := nbt.Decode(wire)
	require.NoError(t, err)
	require.Equal(t, root.Len(), back.Len())
}

func TestToTag_IntWidth(t *testing.T) {
	small, err := ToTag("n", 7)
	require.NoError(t, err)
	require.Equal(t, nbt.TypeInt, small.Type())

	big, err := ToTag("n", 1<<40)
	require.NoError(t, err)
	require.Equal(t, nbt.TypeLong, big.Type())
}

func TestToTag_HeterogeneousList(t *testing.T) {
	_, err := ToTag("l", []any{int32(1), "two"})
	require.Error(t, err)
}

func TestToTag_Unsupported(t *testing.T) {
	_, err := ToTag("x", struct{}{})
	require.Error(t, err)
	_, err = ToTag("x", nil)
	require.Error(t, err)
}
