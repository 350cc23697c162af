// Package region provides backing memory for heap pools.
//
// On unix platforms regions come from anonymous private mappings, keeping
// pool memory off the Go heap so the garbage collector never scans it. On
// other platforms a plain byte slice is used. Either way the returned
// cleanup function releases the region; the caller must not touch the bytes
// after calling it.
package region
