package heap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// fragmented builds [free 500][used][free 100][used][free rest] and returns
// the refs of the two freed chunks.
func fragmented(t *testing.T, strategy Strategy) (*Pool, Ref, Ref) {
	t.Helper()
	p := newTestPool(t, 8192, &Config{Strategy: strategy})

	refBig, _ := mustAcquire(t, p, 500)
	mustAcquire(t, p, 8) // pin
	refSmall, _ := mustAcquire(t, p, 100)
	mustAcquire(t, p, 8) // pin

	p.Release(refBig)
	p.Release(refSmall)
	require.NoError(t, p.Check())
	return p, refBig, refSmall
}

// FullScan passes over the first large-enough chunk when an exact fit
// exists later in the list.
func Test_FullScan_Prefers_Exact_Fit(t *testing.T) {
	p, refBig, refSmall := fragmented(t, FullScan)

	splitsBefore := p.Metrics().Splits
	ref, buf := mustAcquire(t, p, 100)
	require.Equal(t, refSmall, ref, "exact fit wins over the earlier big chunk")
	require.Len(t, buf, 100)
	require.Equal(t, splitsBefore, p.Metrics().Splits, "no split for an exact fit")

	// The big chunk is still intact and still free.
	found := false
	for _, c := range poolLayout(t, p) {
		if c.ref == refBig-hdr {
			found = true
			require.True(t, c.free)
			require.Equal(t, 500, c.size)
		}
	}
	require.True(t, found)
}

// FirstFit takes the first large-enough chunk immediately, splitting it.
func Test_FirstFit_Splits_First_Qualifying(t *testing.T) {
	p, refBig, refSmall := fragmented(t, FirstFit)

	splitsBefore := p.Metrics().Splits
	ref, buf := mustAcquire(t, p, 100)
	require.Equal(t, refBig, ref, "first-fit commits to the first qualifying chunk")
	require.Len(t, buf, 100)
	require.Equal(t, splitsBefore+1, p.Metrics().Splits)

	// The exact-fit chunk further down is untouched.
	s := p.Summary()
	require.GreaterOrEqual(t, s.Free.Blocks, 3)
	_ = refSmall
	require.NoError(t, p.Check())
}

// Both strategies accept an exact fit immediately when it is the first free
// chunk encountered.
func Test_Both_Strategies_Take_Immediate_Exact_Fit(t *testing.T) {
	for _, strategy := range []Strategy{FullScan, FirstFit} {
		p := newTestPool(t, 2*(hdr+100), &Config{Strategy: strategy})
		refA, _ := mustAcquire(t, p, 100)
		refB, _ := mustAcquire(t, p, 100)
		p.Release(refA)

		ref, _ := mustAcquire(t, p, 100)
		require.Equal(t, refA, ref)
		p.Release(ref)
		p.Release(refB)
		require.NoError(t, p.Check())
	}
}
