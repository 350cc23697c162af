package format

// Alignment utilities for pool bookkeeping. Every chunk's usable size is kept
// a multiple of AlignUnit so payload offsets stay aligned no matter how the
// pool is split and re-merged.

// AlignUp returns n rounded up to the next AlignUnit boundary.
//
// Example:
//
//	AlignUp(1) = 4
//	AlignUp(4) = 4
//	AlignUp(5) = 8
func AlignUp(n int) int {
	return (n + AlignMask) & ^AlignMask
}

// AlignDown returns n rounded down to the previous AlignUnit boundary.
func AlignDown(n int) int {
	return n & ^AlignMask
}

// IsAligned reports whether n sits on an AlignUnit boundary.
func IsAligned(n int) bool {
	return n&AlignMask == 0
}
