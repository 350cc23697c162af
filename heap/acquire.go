package heap

import (
	"fmt"
	"os"

	"github.com/joshuapare/heapkit/internal/format"
)

// Acquire allocates n usable bytes and returns the payload's Ref and slice.
// On exhaustion it returns ErrNoSpace without retrying, blocking, or growing
// the pool; the caller may Extend and try again. A request too large for the
// size field is exhaustion-equivalent. n == 0 is legal and yields an empty
// payload with a unique ref.
func (p *Pool) Acquire(n int) (Ref, []byte, error) {
	if n < 0 {
		return NilRef, nil, ErrBadSize
	}
	// Reject before rounding: AlignUp on a near-MaxInt request would wrap
	// negative and slip past every size check below.
	if n > format.MaxChunkSize {
		return NilRef, nil, ErrNoSpace
	}
	asize := format.AlignUp(n)

	p.lk.Lock()
	defer p.lk.Unlock()
	p.stats.AcquireCalls++

	// A free chunk barely larger than the request is taken whole: the
	// remainder after a split could never hold a header plus one
	// allocation unit, so it is wasted into this allocation instead.
	exactCeil := asize + format.HeaderSize + format.AlignUnit

	var candidate chunk
	haveCandidate := false
	freeSeen := 0

	// The scan wraps back to its own starting chunk, not to start: once
	// Extend has spliced a region mid-list, list order and ref order
	// diverge, and a hint biased by ref comparisons may sit after a free
	// chunk in list order. Anchoring the wrap on the hint keeps the scan
	// exhaustive either way.
	begin := p.hint
	cur := p.chunk(begin)
	for {
		if cur.free() {
			freeSeen++
			sz := cur.size()
			switch {
			case sz >= asize && sz <= exactCeil:
				cur.setAllocated(sz)
				return p.finish(cur, freeSeen), cur.payload(), nil
			case sz >= asize && p.strategy == FirstFit:
				p.split(cur, asize)
				return p.finish(cur, freeSeen), cur.payload(), nil
			case sz >= asize && !haveCandidate:
				candidate, haveCandidate = cur, true
			}
		}

		nxt := cur.next()
		if nxt == begin { // wrapped exactly once
			if haveCandidate {
				p.split(candidate, asize)
				return p.finish(candidate, freeSeen), candidate.payload(), nil
			}
			p.stats.FailedAcquires++
			debugLogf("Acquire(%d): no fit after full wrap", asize)
			if logHeap {
				fmt.Fprintf(os.Stderr, "[HEAP] no space for %d bytes\n", asize)
				p.dump(os.Stderr)
			}
			return NilRef, nil, ErrNoSpace
		}
		cur = p.chunk(nxt)
	}
}

// split carves an allocated chunk of asize usable bytes off the front of c,
// leaving the remainder as a new free chunk. Only called when the remainder
// can hold its own header plus at least one allocation unit.
func (p *Pool) split(c chunk, asize int) {
	rem := c.size() - asize - format.HeaderSize

	nref := c.ref + Ref(format.HeaderSize+asize)
	nc := p.chunk(nref)
	nc.setNext(c.next())
	nc.setPrev(c.ref)
	nc.setFree(rem)

	c.setNext(nref)
	c.setAllocated(asize)

	// The remainder's successor must point back at it, unless the
	// successor is start (start's prev always self-loops).
	if nxt := nc.next(); nxt != p.start {
		p.chunk(nxt).setPrev(nref)
	}
	p.stats.Splits++
}

// finish applies the hint rule and accounting after a successful scan: when
// the winning chunk was the only free chunk inspected, the chunk after it is
// empirically closer to the next free region than the stale hint.
func (p *Pool) finish(c chunk, freeSeen int) Ref {
	if freeSeen == 1 {
		p.hint = c.next()
	}
	p.stats.BytesAllocated += int64(c.size())
	return c.payloadRef()
}
