package heap

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/heapkit/internal/format"
)

// Invalid releases are silent no-ops: nothing in the pool changes.
func Test_Release_Invalid_Refs_NoOp(t *testing.T) {
	p := newTestPool(t, 2048, nil)

	refA, bufA := mustAcquire(t, p, 100)
	refB, _ := mustAcquire(t, p, 200)
	for i := range bufA {
		bufA[i] = 0xC3
	}

	before := poolLayout(t, p)

	cases := []struct {
		name string
		ref  Ref
	}{
		{"nil ref", NilRef},
		{"misaligned", refA + 2},
		{"offset below first payload", Ref(4)},
		{"middle of a payload", refA + 16},
		{"header of a live chunk", refA - hdr},
		{"past end of region", Ref(len(p.regions[0]) + 64)},
		{"unknown region", format.MakeRef(7, 16)},
	}
	for _, tc := range cases {
		p.Release(tc.ref)
		require.Equal(t, before, poolLayout(t, p), "%s must not change the pool", tc.name)
	}

	// Payload bytes of live allocations are untouched by rejected frees.
	for i := range bufA {
		require.Equal(t, byte(0xC3), bufA[i])
	}

	p.Release(refB)
	p.Release(refA)
	require.Equal(t, 1, p.Summary().Free.Blocks)
}

// A second release of the same ref finds a free chunk and is rejected.
func Test_Release_Double_Free_NoOp(t *testing.T) {
	p := newTestPool(t, 2048, nil)

	refA, _ := mustAcquire(t, p, 100)
	refB, _ := mustAcquire(t, p, 100)

	p.Release(refA)
	after := poolLayout(t, p)
	invalid := p.Metrics().InvalidReleases

	p.Release(refA)
	require.Equal(t, after, poolLayout(t, p))
	require.Equal(t, invalid+1, p.Metrics().InvalidReleases)

	// Same once the chunk has been coalesced away entirely.
	p.Release(refB)
	merged := poolLayout(t, p)
	p.Release(refB)
	require.Equal(t, merged, poolLayout(t, p))
	require.NoError(t, p.Check())
}
