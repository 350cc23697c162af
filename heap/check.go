package heap

import (
	"fmt"

	"github.com/joshuapare/heapkit/internal/format"
)

// Check walks the pool and verifies its structural invariants: circularity
// of the next/prev links, no address-adjacent free pair, size accounting
// against the registered byte total, and reachability of the scan hint. It
// returns nil or an error naming the first violation found.
//
// Check exists for tests and for embedders that want a paranoia pass after
// handing the pool to untrusted code; it takes the guard like any other
// operation.
func (p *Pool) Check() error {
	p.lk.Lock()
	defer p.lk.Unlock()

	start := p.chunk(p.start)
	if start.prev() != p.start {
		return fmt.Errorf("start prev %#x is not a self-loop", start.prev())
	}

	// Any well-formed list has at most one chunk per header's worth of
	// registered bytes; more steps than that means the links never wrap.
	maxSteps := int(p.registered / format.HeaderSize)

	var sum int64
	hintSeen := false
	c := start
	for steps := 0; ; steps++ {
		if steps > maxSteps {
			return fmt.Errorf("list does not wrap to start within %d chunks", maxSteps)
		}
		if c.ref == p.hint {
			hintSeen = true
		}

		sz := c.size()
		if !format.IsAligned(sz) {
			return fmt.Errorf("chunk %#x size %d not aligned", c.ref, sz)
		}
		if c.off+format.HeaderSize+sz > len(c.b) {
			return fmt.Errorf("chunk %#x (size %d) overruns its region", c.ref, sz)
		}
		sum += int64(format.HeaderSize + sz)

		nref := c.next()
		if !p.refInBounds(nref) {
			return fmt.Errorf("chunk %#x next %#x out of bounds", c.ref, nref)
		}
		if nref == p.start {
			break
		}
		nc := p.chunk(nref)
		if nc.prev() != c.ref {
			return fmt.Errorf("chunk %#x prev %#x does not back-link %#x",
				nref, nc.prev(), c.ref)
		}
		if c.free() && nc.free() && adjacent(c, nc) {
			return fmt.Errorf("adjacent free pair at %#x and %#x", c.ref, nref)
		}
		c = nc
	}

	if sum != p.registered {
		return fmt.Errorf("accounting mismatch: chunks cover %d bytes, registered %d",
			sum, p.registered)
	}
	if !hintSeen {
		return fmt.Errorf("hint %#x not reachable from start", p.hint)
	}
	return nil
}
