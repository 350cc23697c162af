package heap

import (
	"fmt"
	"io"
	"os"

	"github.com/joshuapare/heapkit/internal/format"
)

// Debug flag - set to true to enable verbose logging (compile-time toggle).
const debugHeap = false

// Runtime flag for state dumps on failed allocations - controlled by the
// HEAPKIT_LOG env var.
var logHeap = os.Getenv("HEAPKIT_LOG") != ""

// Dump writes a one-line-per-chunk table of the pool's current layout, in
// list order from start. Intended for debugging fragmentation; the output
// format is not stable.
func (p *Pool) Dump(w io.Writer) {
	p.lk.Lock()
	defer p.lk.Unlock()
	p.dump(w)
}

func (p *Pool) dump(w io.Writer) {
	fmt.Fprintf(w, "pool: %d region(s), %d bytes registered, hint=%#x\n",
		len(p.regions), p.registered, p.hint)
	c := p.chunk(p.start)
	for i := 0; ; i++ {
		state := "used"
		if c.free() {
			state = "free"
		}
		fmt.Fprintf(w, "  #%-4d r%d+0x%06x  %s  %8d bytes  next=%#08x prev=%#08x\n",
			i, format.RefRegion(c.ref), c.off, state, c.size(), c.next(), c.prev())
		nref := c.next()
		if nref == p.start || !p.refInBounds(nref) {
			return
		}
		c = p.chunk(nref)
	}
}

func debugLogf(msg string, args ...any) {
	if debugHeap {
		fmt.Fprintf(os.Stderr, "[HEAP] "+msg+"\n", args...)
	}
}
