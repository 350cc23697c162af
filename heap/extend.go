package heap

// Extend splices an additional, address-disjoint region into the pool as a
// single free chunk linked right after the current hint chunk. The start
// chunk never changes. The new chunk is logically unrelated to its list
// neighbors: coalescing only ever merges address-adjacent chunks, and a
// separate region is adjacent to nothing.
//
// The same validation as New applies, plus the 256-region ceiling. The
// buffer must not be registered twice and must not overlap any registered
// region; that misuse cannot be detected and corrupts the pool.
func (p *Pool) Extend(buf []byte) error {
	p.lk.Lock()
	defer p.lk.Unlock()

	nref, err := p.addRegion(buf)
	if err != nil {
		return err
	}

	// Splice after the hint. The successor's prev must be re-established,
	// exactly as the split and merge paths do, so circularity holds no
	// matter what call ordering follows.
	h := p.chunk(p.hint)
	nc := p.chunk(nref)
	nc.setNext(h.next())
	nc.setPrev(p.hint)
	h.setNext(nref)
	if nxt := nc.next(); nxt != p.start {
		p.chunk(nxt).setPrev(nref)
	}

	p.stats.ExtendCalls++
	return nil
}
