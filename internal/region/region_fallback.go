//go:build !unix

package region

import "fmt"

// Alloc returns a zeroed region of exactly size bytes from the Go heap,
// and a cleanup function that drops the reference.
func Alloc(size int) ([]byte, func() error, error) {
	if size <= 0 {
		return nil, nil, fmt.Errorf("region: invalid size %d", size)
	}
	data := make([]byte, size)
	cleanup := func() error {
		data = nil
		return nil
	}
	return data, cleanup, nil
}
