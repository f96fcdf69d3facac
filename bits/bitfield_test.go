package bits

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitsetFromSorted(t *testing.T) {
	indices := []int{1, 2, 3, 63, 64, 127, 128, 1000}

	b := NewBitset(10)
	b.FromSorted(indices)

	assert.Equal(t, indices, b.ToIndices(nil))
	assert.Equal(t, len(indices), b.Count())
	assert.True(t, b.Any())

	var empty Bitset
	empty.FromSorted(nil)
	assert.False(t, empty.Any())
	assert.Empty(t, empty.ToIndices(nil))
}

func TestBitsetPreallocated(t *testing.T) {
	b := NewBitset(129)
	assert.Len(t, b, 3)

	b.FromSorted([]int{0, 128})
	assert.Len(t, b, 3)
	assert.Equal(t, []int{0, 128}, b.ToIndices(nil))
}

func TestMergeAND(t *testing.T) {
	var a, b Bitset
	a.FromSorted([]int{1, 5, 70, 130})
	b.FromSorted([]int{5, 70})

	merged := MergeAND(a, b)

	assert.Equal(t, []int{5, 70}, merged.ToIndices(nil))
	assert.Len(t, merged, 2)
}
