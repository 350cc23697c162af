package format

// Refs pack a chunk location into a single uint32: region index in the high
// 8 bits, byte offset within the region in the low 24 bits. Packed refs
// compare region-major, offset-minor, which is the pool's "address order".

// MakeRef packs a region index and byte offset into a ref.
func MakeRef(region, off int) uint32 {
	return uint32(region)<<RegionShift | uint32(off)
}

// RefRegion returns the region index of a packed ref.
func RefRegion(ref uint32) int {
	return int(ref >> RegionShift)
}

// RefOffset returns the byte offset of a packed ref within its region.
func RefOffset(ref uint32) int {
	return int(ref & OffsetMask)
}
