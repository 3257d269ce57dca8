package format_test

import (
	"testing"

	"github.com/arloliu/dex/format"
	"github.com/stretchr/testify/require"
)

func TestSizesMatchTable(t *testing.T) {
	cases := []struct {
		f    format.Format
		size int
	}{
		{format.Format10x, 1},
		{format.Format11n, 1},
		{format.Format12x, 1},
		{format.Format21c, 2},
		{format.Format22t, 2},
		{format.Format30t, 3},
		{format.Format35c, 3},
		{format.Format45cc, 4},
		{format.Format4rcc, 4},
		{format.Format51l, 5},
	}
	for _, c := range cases {
		require.Equal(t, c.size, c.f.Size(), "%s", c.f)
	}
}

func TestOnlyThreePayloadFormats(t *testing.T) {
	payloads := []format.Format{format.ArrayPayload, format.PackedSwitchPayload, format.SparseSwitchPayload}
	for _, p := range payloads {
		require.True(t, p.IsPayload())
		require.Equal(t, -1, p.Size())
	}
	require.False(t, format.Format10x.IsPayload())
	require.False(t, format.UnresolvedOdexInstruction.IsPayload())
}

func TestStringNames(t *testing.T) {
	require.Equal(t, "35c", format.Format35c.String())
	require.Equal(t, "22t", format.Format22t.String())
	require.Equal(t, "array-payload", format.ArrayPayload.String())
}
