package heap

import "github.com/joshuapare/heapkit/internal/format"

// Release returns an allocation to the pool and coalesces it with any
// address-adjacent free neighbor. Invalid input — NilRef, a misaligned ref,
// an out-of-bounds ref, or a ref whose recovered header fails the
// structural checks — is silently ignored: predictability is favored over
// diagnostics, and callers needing stronger guarantees must track their
// own allocations. The validation is best-effort, not a corruption proof.
func (p *Pool) Release(ref Ref) {
	if ref == NilRef || !format.IsAligned(format.RefOffset(ref)) {
		return
	}

	p.lk.Lock()
	defer p.lk.Unlock()
	p.stats.ReleaseCalls++

	c, ok := p.validate(ref)
	if !ok {
		p.stats.InvalidReleases++
		debugLogf("Release(%#x): rejected by validation", ref)
		return
	}

	sz := c.size()
	c.setFree(sz)
	p.stats.BytesFreed += int64(sz)

	// Coalesce forward. The list wraps at start, so a successor that is
	// start belongs to the other end of the pool no matter how close its
	// address looks.
	if nref := c.next(); nref != p.start {
		nc := p.chunk(nref)
		if nc.free() && adjacent(c, nc) {
			p.merge(c, nc)
			p.stats.CoalesceForward++
		}
	}

	// Coalesce backward, re-reading prev in case the forward merge moved
	// links around. At most two merges happen per release: entering this
	// call no two adjacent chunks were both free.
	if c.ref != p.start {
		pc := p.chunk(c.prev())
		if pc.free() && adjacent(pc, c) {
			p.merge(pc, c)
			p.stats.CoalesceBackward++
			c = pc
		}
	}

	// Bias future scans toward the lowest known free chunk. This also
	// repairs the hint when it named a header just merged away: the
	// surviving chunk is always at a lower ref than anything it absorbed.
	if c.ref < p.hint {
		p.hint = c.ref
	}
}

// validate recovers and sanity-checks the chunk owning a payload ref.
// Accepts only refs whose header sits inside a registered region, whose
// size keeps the chunk in bounds, whose prev link either self-loops (the
// start chunk) or is back-linked by its predecessor, and whose state is
// allocated. A stale ref whose chunk was merged away reads as free and is
// rejected here, though that guarantee lapses once the bytes are reused.
func (p *Pool) validate(ref Ref) (chunk, bool) {
	region := format.RefRegion(ref)
	off := format.RefOffset(ref)
	if region >= len(p.regions) || off < format.HeaderSize {
		return chunk{}, false
	}
	b := p.regions[region]
	if off > len(b) {
		return chunk{}, false
	}

	c := p.chunk(ref - format.HeaderSize)
	if c.off+format.HeaderSize+c.size() > len(b) {
		return chunk{}, false
	}
	if c.free() {
		return chunk{}, false
	}

	pv := c.prev()
	if pv == c.ref {
		return c, c.ref == p.start
	}
	if !p.refInBounds(pv) || p.chunk(pv).next() != c.ref {
		return chunk{}, false
	}
	return c, true
}

// refInBounds reports whether a header could legally live at ref. Used
// before dereferencing links read from untrusted header candidates.
func (p *Pool) refInBounds(ref Ref) bool {
	region := format.RefRegion(ref)
	off := format.RefOffset(ref)
	return region < len(p.regions) &&
		format.IsAligned(off) &&
		off+format.HeaderSize <= len(p.regions[region])
}

// merge absorbs b into a: a takes over b's bytes (header included) and b's
// successor, erasing b's header from the list.
func (p *Pool) merge(a, b chunk) {
	a.setFree(a.size() + format.HeaderSize + b.size())
	nref := b.next()
	a.setNext(nref)
	if nref != p.start {
		p.chunk(nref).setPrev(a.ref)
	}
}
