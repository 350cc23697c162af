package heap

import "errors"

var (
	// ErrNoSpace indicates that no free chunk satisfies the request. It is
	// also returned for requests too large for the size field to represent.
	// The pool never grows implicitly; callers may Extend and retry.
	ErrNoSpace = errors.New("heap: no free chunk large enough")

	// ErrBadSize indicates a negative allocation size.
	ErrBadSize = errors.New("heap: negative allocation size")

	// ErrRegionTooSmall indicates a region without room for even one header
	// plus one allocation unit.
	ErrRegionTooSmall = errors.New("heap: region smaller than one chunk")

	// ErrRegionTooLarge indicates a region exceeding the 16 MiB ceiling
	// imposed by the 24-bit offset and size fields.
	ErrRegionTooLarge = errors.New("heap: region exceeds 16 MiB ceiling")

	// ErrTooManyRegions indicates the 8-bit region index is exhausted.
	ErrTooManyRegions = errors.New("heap: too many regions")
)
