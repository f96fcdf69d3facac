package column

import (
	"fmt"
	"math"
)

// MaxCells caps a single growable sequence. Growth past it reports
// ErrAllocationFailure instead of attempting the allocation.
const MaxCells = math.MaxInt32

// GrowCapacity is the capacity a full sequence of capacity c moves to.
// Doubling from max(1, c) keeps appends amortized O(1), and the sequence
// of capacities is the same for the same sequence of calls:
// 0 -> 2 -> 4 -> 8 ...
func GrowCapacity(c int) int {
	if c >= MaxCells/2 {
		return MaxCells
	}
	return max(1, c) * 2
}

// ReserveSlice returns s with room for n more elements, reallocated in
// GrowCapacity steps when needed. On error s is returned unchanged.
func ReserveSlice[T any](s []T, n int) ([]T, error) {
	size := len(s)
	if cap(s)-size >= n {
		return s, nil
	}

	newCap := cap(s)
	for newCap-size < n {
		next := GrowCapacity(newCap)
		if next <= newCap {
			return s, fmt.Errorf("%w: cannot hold %d more elements past %d", ErrAllocationFailure, n, newCap)
		}
		newCap = next
	}

	return reallocate(s, newCap)
}

// ShrinkSlice moves s into storage of capacity newCap when that is still
// large enough to hold it.
func ShrinkSlice[T any](s []T, newCap int) []T {
	if newCap >= cap(s) || newCap < len(s) {
		return s
	}
	shrunk, err := reallocate(s, newCap)
	if err != nil {
		return s
	}
	return shrunk
}

// reallocate copies s into fresh storage of capacity newCap. A runtime
// allocation panic is turned into ErrAllocationFailure and s is returned
// untouched.
func reallocate[T any](s []T, newCap int) (grown []T, err error) {
	if newCap > MaxCells || newCap < len(s) {
		return s, fmt.Errorf("%w: capacity %d outside [%d, %d]", ErrAllocationFailure, newCap, len(s), MaxCells)
	}

	defer func() {
		if r := recover(); r != nil {
			grown = s
			err = fmt.Errorf("%w: %v", ErrAllocationFailure, r)
		}
	}()

	grown = make([]T, len(s), newCap)
	copy(grown, s)

	// release references held by the old storage
	clear(s)

	return grown, nil
}
