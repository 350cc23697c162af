package heap

import "github.com/joshuapare/heapkit/internal/format"

// chunk is a decoded view of one control block. It carries the backing
// region slice so field accessors read and write the pool bytes directly;
// the header is never copied out.
type chunk struct {
	b   []byte // backing region
	ref Ref    // packed location of the header
	off int    // byte offset of the header within b
}

// chunk resolves a packed chunk ref to a view. The ref must name a valid
// header; callers validate untrusted refs first.
func (p *Pool) chunk(ref Ref) chunk {
	return chunk{
		b:   p.regions[format.RefRegion(ref)],
		ref: ref,
		off: format.RefOffset(ref),
	}
}

func (c chunk) next() Ref {
	return format.ReadU32(c.b, c.off+format.NextField)
}

func (c chunk) setNext(v Ref) {
	format.PutU32(c.b, c.off+format.NextField, v)
}

func (c chunk) prev() Ref {
	return format.ReadU32(c.b, c.off+format.PrevField)
}

func (c chunk) setPrev(v Ref) {
	format.PutU32(c.b, c.off+format.PrevField, v)
}

func (c chunk) size() int {
	return int(format.ReadU32(c.b, c.off+format.WordField) & format.SizeMask)
}

func (c chunk) free() bool {
	return format.ReadU32(c.b, c.off+format.WordField)>>format.StateShift == format.StateFree
}

func (c chunk) setFree(size int) {
	format.PutU32(c.b, c.off+format.WordField,
		format.StateFree<<format.StateShift|uint32(size))
}

func (c chunk) setAllocated(size int) {
	format.PutU32(c.b, c.off+format.WordField,
		format.StateAllocated<<format.StateShift|uint32(size))
}

// payloadRef is the ref handed to callers: one header past the chunk.
func (c chunk) payloadRef() Ref {
	return c.ref + format.HeaderSize
}

// payload is the usable area of the chunk.
func (c chunk) payload() []byte {
	return c.b[c.off+format.HeaderSize : c.off+format.HeaderSize+c.size()]
}

// adjacent reports whether b's header starts exactly where a's usable area
// ends. Chunks in different regions are never adjacent, regardless of how
// they are linked in the list.
func adjacent(a, b chunk) bool {
	return format.RefRegion(a.ref) == format.RefRegion(b.ref) &&
		a.off+format.HeaderSize+a.size() == b.off
}
