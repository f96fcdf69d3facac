package ops

import (
	"github.com/Samy2700/CDataFrame2/query"
	"github.com/Samy2700/CDataFrame2/schema"
)

// CountMatching counts the cells of a column of type typ that satisfy op
// against operand. Absent cells never match.
func CountMatching(cells []schema.Value, typ schema.FieldType, op query.CondOperand, operand schema.Value) int {
	match := NewMatcher(typ, op, operand)

	n := len(cells)
	count := 0
	i := 0

	for ; i+7 < n; i += 8 {
		count += b2i(match(cells[i+0]))
		count += b2i(match(cells[i+1]))
		count += b2i(match(cells[i+2]))
		count += b2i(match(cells[i+3]))
		count += b2i(match(cells[i+4]))
		count += b2i(match(cells[i+5]))
		count += b2i(match(cells[i+6]))
		count += b2i(match(cells[i+7]))
	}

	// Tail element
	for ; i < n; i++ {
		count += b2i(match(cells[i]))
	}

	return count
}

// FilterMatching writes the indices of matching cells into out and
// returns how many were written. out must be at least len(cells) long.
func FilterMatching(cells []schema.Value, typ schema.FieldType, op query.CondOperand, operand schema.Value, out []int) int {
	match := NewMatcher(typ, op, operand)

	n := len(cells)
	filled := 0
	i := 0

	for ; i+7 < n; i += 8 {
		m0 := b2i(match(cells[i+0]))
		m1 := b2i(match(cells[i+1]))
		m2 := b2i(match(cells[i+2]))
		m3 := b2i(match(cells[i+3]))
		m4 := b2i(match(cells[i+4]))
		m5 := b2i(match(cells[i+5]))
		m6 := b2i(match(cells[i+6]))
		m7 := b2i(match(cells[i+7]))

		out[filled] = i + 0
		filled += m0
		out[filled] = i + 1
		filled += m1
		out[filled] = i + 2
		filled += m2
		out[filled] = i + 3
		filled += m3
		out[filled] = i + 4
		filled += m4
		out[filled] = i + 5
		filled += m5
		out[filled] = i + 6
		filled += m6
		out[filled] = i + 7
		filled += m7
	}

	// Tail element
	for ; i < n; i++ {
		if match(cells[i]) {
			out[filled] = i
			filled++
		}
	}

	return filled
}
