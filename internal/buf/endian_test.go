package buf

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadBE(t *testing.T) {
	b := []byte{0x12, 0x34, 0x56, 0x78, 0x9A, 0xBC, 0xDE, 0xF0}

	require.Equal(t, uint16(0x1234), U16BE(b))
	require.Equal(t, int16(0x1234), I16BE(b))
	require.Equal(t, uint32(0x12345678), U32BE(b))
	require.Equal(t, int32(0x12345678), I32BE(b))
	require.Equal(t, uint64(0x123456789ABCDEF0), U64BE(b))
	require.Equal(t, int64(0x123456789ABCDEF0), I64BE(b))
}

func TestReadBE_Negative(t *testing.T) {
	require.Equal(t, int16(-1), I16BE([]byte{0xFF, 0xFF}))
	require.Equal(t, int32(-1), I32BE([]byte{0xFF, 0xFF, 0xFF, 0xFF}))
	require.Equal(
		t,
		int64(math.MinInt64),
		I64BE([]byte{0x80, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}),
	)
}

func TestReadBE_Short(t *testing.T) {
	// Short buffers read as zero rather than panicking.
	require.Equal(t, uint16(0), U16BE([]byte{0x12}))
	require.Equal(t, uint32(0), U32BE([]byte{0x12, 0x34}))
	require.Equal(t, uint64(0), U64BE(nil))
	require.Equal(t, float32(0), F32BE(nil))
	require.Equal(t, float64(0), F64BE(nil))
}

func TestFloatRoundTrip(t *testing.T) {
	f32 := AppendF32BE(nil, 3.5)
	require.Len(t, f32, 4)
	require.Equal(t, float32(3.5), F32BE(f32))

	f64 := AppendF64BE(nil, -math.Pi)
	require.Len(t, f64, 8)
	require.Equal(t, -math.Pi, F64BE(f64))
}

func TestAppendRoundTrip(t *testing.T) {
	b := AppendU16BE(nil, 0xBEEF)
	b = AppendI32BE(b, -42)
	b = AppendI64BE(b, math.MinInt64)

	require.Equal(t, uint16(0xBEEF), U16BE(b))
	require.Equal(t, int32(-42), I32BE(b[2:]))
	require.Equal(t, int64(math.MinInt64), I64BE(b[6:]))
}
