package heap

import "sync"

// Ref identifies a live allocation: the packed (region, offset) location of
// the payload bytes returned by Acquire.
type Ref = uint32

// NilRef is the zero Ref. Payload offsets always follow a header, so zero
// can never identify a valid allocation.
const NilRef Ref = 0

// Strategy selects how Acquire scans the chunk list. It is a
// construction-time choice, not a runtime one.
type Strategy uint8

const (
	// FullScan keeps scanning the whole list for an exact fit before
	// falling back to splitting the first large-enough chunk seen.
	FullScan Strategy = iota

	// FirstFit splits the first free chunk large enough for the request.
	FirstFit
)

// Config carries the pool's construction-time choices.
type Config struct {
	// Strategy selects the allocation scan mode. The zero value is
	// FullScan.
	Strategy Strategy

	// Locker guards every public operation. Nil selects a private
	// sync.Mutex. Callers in interrupt or otherwise special contexts
	// supply a lock implementation appropriate to that context.
	Locker sync.Locker
}

// DefaultConfig is used when New receives a nil config.
var DefaultConfig = Config{Strategy: FullScan}

// Usage aggregates one class of chunks (free or used) for Summary.
type Usage struct {
	Blocks       int // number of chunks
	MaxBlockSize int // largest single chunk's usable bytes
	TotalSize    int // total usable bytes
}

// Summary is a point-in-time aggregate of the whole pool.
type Summary struct {
	Used Usage
	Free Usage
}

// Metrics holds operation counters for instrumentation and tests.
type Metrics struct {
	AcquireCalls     int   // total Acquire() calls
	FailedAcquires   int   // Acquire() calls that returned ErrNoSpace
	ReleaseCalls     int   // total Release() calls
	InvalidReleases  int   // Release() calls rejected by validation
	ExtendCalls      int   // regions spliced in after construction
	Splits           int   // chunks split during allocation
	CoalesceForward  int   // forward merges during release
	CoalesceBackward int   // backward merges during release
	BytesAllocated   int64 // total usable bytes handed out
	BytesFreed       int64 // total usable bytes returned
}
