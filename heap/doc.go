// Package heap implements a fixed-pool, general-purpose memory allocator for
// environments without an OS-backed heap.
//
// # Overview
//
// A Pool manages one or more caller-supplied byte regions and services
// allocation requests out of them with bounded bookkeeping overhead per
// chunk. The design follows the classic embedded free-memory manager: every
// chunk is a 12-byte control block followed by its usable bytes, and all
// chunks form one circular doubly-linked list threaded through the pool's
// own memory. There is no separate metadata store; the heap's entire state
// is reconstructed from the control blocks themselves.
//
// # Pool Structure
//
//	{hdr_0:area_0}{hdr_1:area_1}...{hdr_N:area_N}
//
// The last chunk's next link always points back to the first chunk, and the
// first chunk's prev link points to itself. A free-scan hint remembers the
// first chunk most recently known free, shortening allocation scans.
//
// # Operations
//
//   - Acquire(n): find a free chunk of at least n usable bytes, splitting
//     off a free remainder when profitable, and return a Ref plus the
//     payload slice.
//   - Release(ref): validate the ref, mark its chunk free, and coalesce
//     with address-adjacent free neighbors. Invalid refs are ignored.
//   - Extend(buf): splice an additional, disjoint region into the pool.
//   - Summary(): aggregate free/used statistics from one list walk.
//   - Check(): verify the structural invariants, for tests and embedders.
//
// # Scan Strategies
//
// Two construction-time strategies are supported:
//
//   - FirstFit splits the first free chunk large enough for the request.
//   - FullScan remembers the first large-enough chunk but keeps scanning
//     the whole list for an exact fit, splitting the remembered candidate
//     only when no exact fit exists. This trades a longer scan for less
//     fragmentation and is the default.
//
// In both modes a free chunk whose size is within a header-plus-alignment
// window of the request is taken whole: splitting it would leave a
// remainder too small to ever be allocated separately.
//
// # Refs
//
// A Ref packs the payload's location into a uint32: region index in the
// high 8 bits, byte offset in the low 24 bits. This caps a single region
// at 16 MiB and a pool at 256 regions, enforced at construction and
// extension time. NilRef (zero) is never a valid payload ref.
//
// # Usage Example
//
//	backing := make([]byte, 64<<10)
//	p, err := heap.New(backing, nil)
//	if err != nil {
//	    return err
//	}
//
//	ref, buf, err := p.Acquire(256)
//	if err != nil {
//	    return err // heap.ErrNoSpace on exhaustion
//	}
//
//	// Write into buf...
//
//	p.Release(ref)
//
// # Thread Safety
//
// Every public operation runs under a single injected lock (Config.Locker,
// sync.Mutex by default) held only for the duration of the list walk. Use
// NopLocker when calls are already serialized externally, or plug in a
// lock implementation appropriate to interrupt contexts. Re-entering the
// pool while holding its lock is undefined and must be avoided by the
// caller.
package heap
