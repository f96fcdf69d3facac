package column

import (
	"fmt"

	"github.com/Samy2700/CDataFrame2/ops"
	"github.com/Samy2700/CDataFrame2/query"
	"github.com/Samy2700/CDataFrame2/schema"
	"github.com/google/uuid"
)

// Column is a titled, growable sequence of optional cells of one type.
// len(cells) is the logical size, cap(cells) the physical one; capacity
// only moves through GrowCapacity.
type Column struct {
	Uid uuid.UUID

	title string
	typ   schema.FieldType
	cells []schema.Value
}

// New returns an empty column. A column created with an undeclared type
// accepts only absent cells.
func New(typ schema.FieldType, title string) *Column {
	return &Column{
		Uid:   newUid(),
		title: title,
		typ:   typ,
	}
}

// newUid prefers time-ordered ids and falls back to random ones.
func newUid() uuid.UUID {
	uid, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}
	return uid
}

func (c *Column) Title() string {
	return c.title
}

func (c *Column) Rename(title string) {
	c.title = title
}

func (c *Column) Type() schema.FieldType {
	return c.typ
}

func (c *Column) Len() int {
	return len(c.cells)
}

func (c *Column) Capacity() int {
	return cap(c.cells)
}

func (c *Column) checkType(v schema.Value) error {
	if v == nil || v.Type() == c.typ {
		return nil
	}
	return &TypeError{Expected: c.typ, Got: v.Type()}
}

// Reserve makes room for n more cells, growing capacity in GrowCapacity
// steps. On failure the column is unchanged.
func (c *Column) Reserve(n int) error {
	grown, err := ReserveSlice(c.cells, n)
	if err != nil {
		return fmt.Errorf("column %q: %w", c.title, err)
	}

	c.cells = grown
	return nil
}

// Insert appends an owned copy of v, or an absent cell when v is nil.
func (c *Column) Insert(v schema.Value) error {
	v = schema.Clone(v)

	if err := c.checkType(v); err != nil {
		return err
	}

	if err := c.Reserve(1); err != nil {
		return err
	}

	c.cells = append(c.cells, v)
	return nil
}

// DeleteAt removes the cell at index and shifts the rest down. O(size).
func (c *Column) DeleteAt(index int) error {
	size := len(c.cells)
	if index < 0 || index >= size {
		return &RangeError{Index: index, Size: size}
	}

	copy(c.cells[index:], c.cells[index+1:])
	c.cells[size-1] = nil
	c.cells = c.cells[:size-1]

	return nil
}

// Get returns the cell at index. ok is false both for an absent cell and
// for an index outside the column; use Lookup to tell them apart.
func (c *Column) Get(index int) (v schema.Value, ok bool) {
	if index < 0 || index >= len(c.cells) {
		return nil, false
	}
	v = c.cells[index]
	return v, v != nil
}

// Lookup returns (nil, nil) for an absent cell and ErrOutOfBounds for an
// index outside the column.
func (c *Column) Lookup(index int) (schema.Value, error) {
	if index < 0 || index >= len(c.cells) {
		return nil, &RangeError{Index: index, Size: len(c.cells)}
	}
	return c.cells[index], nil
}

// Set replaces the cell at index with an owned copy of v.
func (c *Column) Set(index int, v schema.Value) error {
	if index < 0 || index >= len(c.cells) {
		return &RangeError{Index: index, Size: len(c.cells)}
	}

	v = schema.Clone(v)
	if err := c.checkType(v); err != nil {
		return err
	}

	c.cells[index] = v
	return nil
}

// Clear drops every cell and the backing storage.
func (c *Column) Clear() {
	clear(c.cells)
	c.cells = nil
}

// CountMatching counts cells standing in relation op to v.
func (c *Column) CountMatching(op query.CondOperand, v schema.Value) int {
	return ops.CountMatching(c.cells, c.typ, op, v)
}

// Filter returns the ascending indices of cells matching op against v.
func (c *Column) Filter(op query.CondOperand, v schema.Value) []int {
	out := make([]int, len(c.cells))
	filled := ops.FilterMatching(c.cells, c.typ, op, v, out)
	return out[:filled]
}

func (c *Column) Contains(v schema.Value) bool {
	return c.CountMatching(query.EQ, v) > 0
}

// Bounds returns the smallest and largest comparable cells.
func (c *Column) Bounds() (minValue, maxValue schema.Value, ok bool) {
	bounds, ok := ops.GetMaxMin(c.cells, c.typ)
	return bounds.Min, bounds.Max, ok
}

// FormatRow renders the cell at index; out of range renders as NULL.
func (c *Column) FormatRow(index int) string {
	v, _ := c.Get(index)
	return schema.Format(c.typ, v)
}

// Cells returns a copy of the stored cells.
func (c *Column) Cells() []schema.Value {
	out := make([]schema.Value, len(c.cells))
	copy(out, c.cells)
	return out
}

func (c *Column) String() string {
	return fmt.Sprintf("Column(%q, %s, %d/%d)", c.title, c.typ, len(c.cells), cap(c.cells))
}
