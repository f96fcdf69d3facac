package lists

import (
	"github.com/Samy2700/CDataFrame2/bits"
)

// IndiceUnmerged intersects the row sets produced by several filter
// conditions. Until the first merge it holds no restriction.
type IndiceUnmerged struct {
	initialized bool

	merges int

	ResultBitset bits.Bitset
}

func NewUnmerged() *IndiceUnmerged {
	return &IndiceUnmerged{
		initialized: false,
	}
}

func (i *IndiceUnmerged) Merges() int {
	return i.merges
}

// Empty reports whether a merge already ruled out every row.
func (i *IndiceUnmerged) Empty() bool {
	return i.initialized && !i.ResultBitset.Any()
}

// With intersects the current result with the ascending indices in input.
func (i *IndiceUnmerged) With(input []int) {
	var bitset bits.Bitset
	if len(input) > 0 {
		bitset = bits.NewBitset(input[len(input)-1] + 1)
	}
	bitset.FromSorted(input)
	i.WithBitset(bitset)
}

func (i *IndiceUnmerged) WithBitset(other bits.Bitset) {
	i.merges += 1

	if !i.initialized {
		i.ResultBitset = other
		i.initialized = true
		return
	}

	i.ResultBitset = bits.MergeAND(i.ResultBitset, other)
}

// Indices returns the surviving rows in ascending order; an unmerged
// result yields none.
func (i *IndiceUnmerged) Indices() []int {
	if !i.initialized {
		return nil
	}
	return i.ResultBitset.ToIndices(make([]int, 0, i.ResultBitset.Count()))
}
