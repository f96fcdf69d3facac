package lists

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnmergedIntersection(t *testing.T) {
	m := NewUnmerged()

	assert.Nil(t, m.Indices())
	assert.False(t, m.Empty())

	m.With([]int{1, 2, 3, 100, 150})
	m.With([]int{2, 3, 150, 151})
	m.With([]int{0, 3, 150})

	assert.Equal(t, 3, m.Merges())
	assert.Equal(t, []int{3, 150}, m.Indices())
	assert.False(t, m.Empty())

	m.With([]int{4})
	assert.True(t, m.Empty())
	assert.Empty(t, m.Indices())
}

func TestUnmergedFirstEmptyInput(t *testing.T) {
	m := NewUnmerged()
	m.With(nil)

	assert.True(t, m.Empty())

	m.With([]int{1, 2})
	assert.Empty(t, m.Indices())
}
