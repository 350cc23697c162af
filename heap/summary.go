package heap

// Summary walks the whole list once, from start back to start, and
// aggregates chunk count, total usable bytes, and largest chunk per class.
// It never mutates the pool.
func (p *Pool) Summary() Summary {
	p.lk.Lock()
	defer p.lk.Unlock()

	var s Summary
	c := p.chunk(p.start)
	for {
		u := &s.Used
		if c.free() {
			u = &s.Free
		}
		u.Blocks++
		sz := c.size()
		u.TotalSize += sz
		if sz > u.MaxBlockSize {
			u.MaxBlockSize = sz
		}

		nref := c.next()
		if nref == p.start {
			return s
		}
		c = p.chunk(nref)
	}
}
