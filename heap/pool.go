package heap

import (
	"sync"

	"github.com/joshuapare/heapkit/internal/format"
)

// Pool is a fixed-pool allocator over caller-supplied memory regions. The
// zero value is not usable; construct with New.
type Pool struct {
	lk sync.Locker

	// regions holds every registered backing slice. Region 0 is installed
	// by New; Extend appends more. Regions are never removed or resized.
	regions [][]byte

	// start is the first chunk. It never moves and its prev self-loops.
	start Ref

	// hint is the first chunk most recently known free. Advisory only: it
	// must always name some reachable chunk but need not be free.
	hint Ref

	strategy Strategy

	// registered is the sum of header+usable bytes across all regions.
	// Invariant: the per-chunk sums always add back up to this.
	registered int64

	stats Metrics
}

// New constructs a pool over buf, installing a single free chunk that spans
// the whole region. A nil cfg selects DefaultConfig. Trailing bytes that do
// not fill an alignment unit are ignored.
//
// The buffer must not be handed to New twice, and the caller must not touch
// it afterwards except through refs returned by Acquire; that misuse cannot
// be detected from inside and corrupts the pool.
func New(buf []byte, cfg *Config) (*Pool, error) {
	if cfg == nil {
		cfg = &DefaultConfig
	}
	lk := cfg.Locker
	if lk == nil {
		lk = &sync.Mutex{}
	}

	p := &Pool{lk: lk, strategy: cfg.Strategy}
	ref, err := p.addRegion(buf)
	if err != nil {
		return nil, err
	}
	p.start, p.hint = ref, ref
	return p, nil
}

// addRegion validates buf, writes a single self-looped free chunk at its
// start, and registers it. The caller re-links the chunk when splicing.
func (p *Pool) addRegion(buf []byte) (Ref, error) {
	if len(buf) < format.HeaderSize+format.AlignUnit {
		return NilRef, ErrRegionTooSmall
	}
	if len(buf) > format.MaxRegionSize {
		return NilRef, ErrRegionTooLarge
	}
	if len(p.regions) >= format.MaxRegions {
		return NilRef, ErrTooManyRegions
	}

	usable := format.AlignDown(len(buf) - format.HeaderSize)
	p.regions = append(p.regions, buf[:format.HeaderSize+usable])
	p.registered += int64(format.HeaderSize + usable)

	ref := format.MakeRef(len(p.regions)-1, 0)
	c := p.chunk(ref)
	c.setNext(ref)
	c.setPrev(ref)
	c.setFree(usable)
	return ref, nil
}

// Metrics returns a copy of the pool's operation counters.
func (p *Pool) Metrics() Metrics {
	p.lk.Lock()
	defer p.lk.Unlock()
	return p.stats
}

// Capacity returns the total bytes registered with the pool, headers
// included.
func (p *Pool) Capacity() int64 {
	p.lk.Lock()
	defer p.lk.Unlock()
	return p.registered
}
