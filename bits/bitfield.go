package bits

import "math/bits"

// Bitset is a growable set of row indices.
type Bitset []uint64

// NewBitset returns a bitset able to hold n bits without growing.
func NewBitset(n int) Bitset {
	return make(Bitset, (n+63)>>6)
}

func (b *Bitset) ensure(bit int) {
	word := bit >> 6
	if word < len(*b) {
		return
	}
	grown := make(Bitset, word+1)
	copy(grown, *b)
	*b = grown
}

// FromSorted sets every bit listed in indices, which must be ascending.
func (b *Bitset) FromSorted(indices []int) {
	if len(indices) == 0 {
		return
	}
	b.ensure(indices[len(indices)-1])
	arr := *b

	currWord := indices[0] >> 6
	mask := uint64(0)

	for _, bit := range indices {
		w := bit >> 6
		if w != currWord {
			arr[currWord] |= mask
			currWord = w
			mask = 0
		}
		mask |= 1 << (bit & 63)
	}

	arr[currWord] |= mask
}

// ToIndices appends the set bits in ascending order to out.
func (b Bitset) ToIndices(out []int) []int {
	for wi, w := range b {
		for w != 0 {
			tz := bits.TrailingZeros64(w)
			out = append(out, wi*64+tz)
			w &= w - 1 // clear lowest set bit
		}
	}
	return out
}

func (b Bitset) Any() bool {
	for _, w := range b {
		if w != 0 {
			return true
		}
	}
	return false
}

func (b Bitset) Count() int {
	c := 0
	for _, w := range b {
		c += bits.OnesCount64(w)
	}
	return c
}

// MergeAND keeps only bits present in both sets. Words missing from the
// shorter set count as zero.
func MergeAND(a, b Bitset) Bitset {
	n := min(len(a), len(b))
	out := make(Bitset, n)
	for i := 0; i < n; i++ {
		out[i] = a[i] & b[i]
	}
	return out
}
