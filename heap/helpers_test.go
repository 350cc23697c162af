package heap

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/heapkit/internal/format"
)

const hdr = format.HeaderSize

// newTestPool builds a pool over a fresh zeroed buffer.
func newTestPool(t testing.TB, size int, cfg *Config) *Pool {
	t.Helper()
	p, err := New(make([]byte, size), cfg)
	require.NoError(t, err)
	return p
}

// chunkInfo is a snapshot of one chunk for layout assertions.
type chunkInfo struct {
	ref  Ref
	size int
	free bool
}

// poolLayout verifies the invariants and returns the chunk list in list
// order from start.
func poolLayout(t testing.TB, p *Pool) []chunkInfo {
	t.Helper()
	require.NoError(t, p.Check())

	p.lk.Lock()
	defer p.lk.Unlock()
	var out []chunkInfo
	c := p.chunk(p.start)
	for {
		out = append(out, chunkInfo{ref: c.ref, size: c.size(), free: c.free()})
		if c.next() == p.start {
			return out
		}
		c = p.chunk(c.next())
	}
}

// mustAcquire fails the test on allocation error.
func mustAcquire(t testing.TB, p *Pool, n int) (Ref, []byte) {
	t.Helper()
	ref, buf, err := p.Acquire(n)
	require.NoError(t, err)
	require.NotEqual(t, NilRef, ref)
	return ref, buf
}
