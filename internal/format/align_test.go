package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_AlignUp(t *testing.T) {
	cases := []struct{ in, want int }{
		{0, 0},
		{1, 4},
		{3, 4},
		{4, 4},
		{5, 8},
		{100, 100},
		{101, 104},
	}
	for _, c := range cases {
		require.Equal(t, c.want, AlignUp(c.in), "AlignUp(%d)", c.in)
	}
}

func Test_AlignDown(t *testing.T) {
	require.Equal(t, 0, AlignDown(3))
	require.Equal(t, 4, AlignDown(7))
	require.Equal(t, 1024, AlignDown(1027))
}

func Test_HeaderSize_Is_Aligned(t *testing.T) {
	// Payload offsets are chunk offset + HeaderSize, so the header itself
	// must be a multiple of the allocation unit.
	require.True(t, IsAligned(HeaderSize))
	require.True(t, IsAligned(MaxChunkSize))
}

func Test_Ref_Packing(t *testing.T) {
	ref := MakeRef(3, 0x123456)
	require.Equal(t, 3, RefRegion(ref))
	require.Equal(t, 0x123456, RefOffset(ref))

	// Region-major ordering: any ref in a later region compares higher.
	require.Less(t, MakeRef(0, OffsetMask), MakeRef(1, 0))
}
