//go:build unix

package region

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Alloc returns a zeroed region of exactly size bytes backed by an
// anonymous private mapping, and a cleanup function that unmaps it.
func Alloc(size int) ([]byte, func() error, error) {
	if size <= 0 {
		return nil, nil, fmt.Errorf("region: invalid size %d", size)
	}
	data, err := unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, nil, fmt.Errorf("region: mmap %d bytes: %w", size, err)
	}
	cleanup := func() error {
		if data == nil {
			return nil
		}
		err := unix.Munmap(data)
		data = nil // double-unmap is a no-op for callers
		return err
	}
	return data, cleanup, nil
}
