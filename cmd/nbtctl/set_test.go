package main

import (
	"testing"

	"github.com/joshuapare/nbtkit/nbt"
	"github.com/stretchr/testify/require"
)

func TestSetScalar(t *testing.T) {
	tests := []struct {
		name    string
		tag     *nbt.Tag
		value   string
		wantErr bool
		check   func(t *testing.T, tag *nbt.Tag)
	}{
		{
			name:  "set byte",
			tag:   nbt.NewByte("raining", 0),
			value: "1",
			check: func(t *testing.T, tag *nbt.Tag) {
				v, err := tag.Byte()
				require.NoError(t, err)
				require.Equal(t, int8(1), v)
			},
		},
		{
			name:  "set int",
			tag:   nbt.NewInt("score", 0),
			value: "-42",
			check: func(t *testing.T, tag *nbt.Tag) {
				v, err := tag.Int()
				require.NoError(t, err)
				require.Equal(t, int32(-42), v)
			},
		},
		{
			name:  "set double",
			tag:   nbt.NewDouble("x", 0),
			value: "3.5",
			check: func(t *testing.T, tag *nbt.Tag) {
				v, err := tag.Double()
				require.NoError(t, err)
				require.Equal(t, 3.5, v)
			},
		},
		{
			name:  "set string",
			tag:   nbt.NewString("LevelName", "old"),
			value: "New World",
			check: func(t *testing.T, tag *nbt.Tag) {
				v, err := tag.Text()
				require.NoError(t, err)
				require.Equal(t, "New World", v)
			},
		},
		{
			name:    "byte out of range",
			tag:     nbt.NewByte("b", 0),
			value:   "200",
			wantErr: true,
		},
		{
			name:    "not a number",
			tag:     nbt.NewInt("n", 0),
			value:   "abc",
			wantErr: true,
		},
		{
			name:    "compound rejected",
			tag:     nbt.NewCompound("root"),
			value:   "1",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := setScalar(tt.tag, tt.value)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, tt.tag)
		})
	}
}
