// Package format houses the low-level layout constants and encoders for the
// in-pool chunk headers. The goal is to keep byte-level concerns in one spot,
// allocation-free, and independent from the public API so the heap package can
// work with decoded fields rather than raw buffer arithmetic.
package format

const (
	// HeaderSize is the number of bytes used by the control block preceding
	// every chunk's usable area, free or allocated:
	//   [0:4)  next ref (little-endian)
	//   [4:8)  prev ref (little-endian)
	//   [8:12) state/size word: state in the high 8 bits, usable size in
	//          the low 24 bits
	HeaderSize = 12

	// AlignUnit is the allocation unit. All usable sizes and payload offsets
	// are multiples of AlignUnit, and HeaderSize is too.
	AlignUnit = 4

	// AlignMask is AlignUnit-1, for round-up/round-down arithmetic.
	AlignMask = AlignUnit - 1

	// NextField, PrevField, and WordField are the header field offsets.
	NextField = 0
	PrevField = 4
	WordField = 8
)

const (
	// StateFree and StateAllocated are the two values of the header state
	// byte. The zero value is free so a zeroed region reads as unallocated.
	StateFree      = 0
	StateAllocated = 1

	// StateShift positions the state byte above the 24-bit size field.
	StateShift = 24

	// SizeMask extracts the usable size from the state/size word. The size
	// field is 24 bits wide, which caps a single chunk's usable area.
	SizeMask = 1<<StateShift - 1
)

const (
	// RegionShift positions the region index above the 24-bit offset field
	// of a packed ref.
	RegionShift = 24

	// OffsetMask extracts the byte offset from a packed ref.
	OffsetMask = 1<<RegionShift - 1

	// MaxRegionSize is the largest region length a pool accepts. Offsets and
	// sizes must fit their 24-bit fields, so a region is at most 16 MiB.
	MaxRegionSize = 1 << RegionShift

	// MaxRegions is the number of regions addressable by the 8-bit region
	// index of a packed ref.
	MaxRegions = 1 << (32 - RegionShift)

	// MaxChunkSize is the largest usable size a single chunk can carry: a
	// maximal region minus its one header.
	MaxChunkSize = MaxRegionSize - HeaderSize
)
