package buf

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckListBounds_OK(t *testing.T) {
	end, err := CheckListBounds(100, 10, 20, 4)
	require.NoError(t, err)
	require.Equal(t, 90, end)
}

func TestCheckListBounds_Exact(t *testing.T) {
	end, err := CheckListBounds(100, 0, 25, 4)
	require.NoError(t, err)
	require.Equal(t, 100, end)
}

func TestCheckListBounds_NegativeCount(t *testing.T) {
	_, err := CheckListBounds(100, 0, -1, 4)
	require.Error(t, err)
	require.Contains(t, err.Error(), "negative count")
}

func TestCheckListBounds_Overflow(t *testing.T) {
	_, err := CheckListBounds(100, 0, math.MaxInt/2, 8)
	require.Error(t, err)
	require.Contains(t, err.Error(), "overflow")
}

func TestCheckListBounds_OutOfBounds(t *testing.T) {
	_, err := CheckListBounds(100, 90, 20, 1)
	require.Error(t, err)
	require.Contains(t, err.Error(), "bounds")
}

func TestSlice(t *testing.T) {
	b := []byte{1, 2, 3, 4}

	s, ok := Slice(b, 1, 2)
	require.True(t, ok)
	require.Equal(t, []byte{2, 3}, s)

	_, ok = Slice(b, 3, 2)
	require.False(t, ok)

	_, ok = Slice(b, -1, 1)
	require.False(t, ok)

	s, ok = Slice(b, 4, 0)
	require.True(t, ok)
	require.Empty(t, s)
}

func TestHas(t *testing.T) {
	b := make([]byte, 8)
	require.True(t, Has(b, 0, 8))
	require.False(t, Has(b, 1, 8))
	require.False(t, Has(b, 0, math.MaxInt))
}
