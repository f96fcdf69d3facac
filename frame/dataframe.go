package frame

import (
	"errors"
	"fmt"

	"github.com/Samy2700/CDataFrame2/column"
	"github.com/Samy2700/CDataFrame2/query"
	"github.com/Samy2700/CDataFrame2/schema"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrNilColumn      = errors.New("nil column")
	ErrColumnAttached = errors.New("column already attached")
	ErrRowTooWide     = errors.New("row has more values than the frame has columns")
	ErrNoColumn       = errors.New("no such column")
)

// DataFrame owns an ordered set of columns. Rows are the cells sharing an
// index across columns; keeping column sizes equal is up to the caller,
// but every operation stays safe on a misaligned frame.
//
// A DataFrame is not safe for concurrent use; see Guarded.
type DataFrame struct {
	Uid uuid.UUID

	columns []*column.Column

	config Config
	log    *zap.Logger
}

func New() *DataFrame {
	return NewWithConfig(DefaultConfig())
}

func NewWithConfig(config Config) *DataFrame {
	config = config.withDefaults()
	uid, err := uuid.NewV7()
	if err != nil {
		uid = uuid.New()
	}

	return &DataFrame{
		Uid:    uid,
		config: config,
		log:    config.Logger.With(zap.Stringer("frame", uid)),
	}
}

func (df *DataFrame) ColumnCount() int {
	return len(df.columns)
}

// ColumnCapacity is the physical size of the column storage.
func (df *DataFrame) ColumnCapacity() int {
	return cap(df.columns)
}

// RowCount is the size of the first column, or 0 without columns. It does
// not check the other columns agree.
func (df *DataFrame) RowCount() int {
	if len(df.columns) == 0 {
		return 0
	}
	return df.columns[0].Len()
}

// Aligned reports whether every column has the same size.
func (df *DataFrame) Aligned() bool {
	for _, col := range df.columns {
		if col.Len() != df.RowCount() {
			return false
		}
	}
	return true
}

func (df *DataFrame) Column(index int) (*column.Column, error) {
	if index < 0 || index >= len(df.columns) {
		return nil, &column.RangeError{Index: index, Size: len(df.columns)}
	}
	return df.columns[index], nil
}

// ColumnByTitle returns the first column titled title and its index.
func (df *DataFrame) ColumnByTitle(title string) (*column.Column, int, bool) {
	for idx, col := range df.columns {
		if col.Title() == title {
			return col, idx, true
		}
	}
	return nil, -1, false
}

func (df *DataFrame) Titles() []string {
	titles := make([]string, len(df.columns))
	for idx, col := range df.columns {
		titles[idx] = col.Title()
	}
	return titles
}

// AddColumn appends col and takes ownership of it.
func (df *DataFrame) AddColumn(col *column.Column) error {
	if col == nil {
		return ErrNilColumn
	}

	for _, it := range df.columns {
		if it == col {
			return fmt.Errorf("%w: %q", ErrColumnAttached, col.Title())
		}
	}

	grown, err := column.ReserveSlice(df.columns, 1)
	if err != nil {
		return fmt.Errorf("unable to add column %q: %w", col.Title(), err)
	}

	df.columns = append(grown, col)

	df.log.Debug("column added",
		zap.Stringer("column", col.Uid),
		zap.String("title", col.Title()),
		zap.Stringer("type", col.Type()),
		zap.Int("rows", col.Len()),
		zap.Int("columns", len(df.columns)),
	)

	if col.Len() != df.RowCount() {
		df.log.Debug("frame is misaligned", zap.Int("first_column_rows", df.RowCount()), zap.Int("added_rows", col.Len()))
	}

	return nil
}

// RemoveColumn releases the column at index and shifts the following
// columns left.
func (df *DataFrame) RemoveColumn(index int) error {
	col, err := df.Column(index)
	if err != nil {
		return err
	}

	size := len(df.columns)
	copy(df.columns[index:], df.columns[index+1:])
	df.columns[size-1] = nil
	df.columns = df.columns[:size-1]

	col.Clear()

	df.log.Debug("column removed",
		zap.Stringer("column", col.Uid),
		zap.String("title", col.Title()),
		zap.Int("columns", len(df.columns)),
	)

	df.maybeShrink()

	return nil
}

func (df *DataFrame) maybeShrink() {
	capacity := cap(df.columns)
	if df.config.ShrinkRatio == 0 || capacity <= df.config.MinColumnCapacity {
		return
	}

	if float64(len(df.columns)) >= float64(capacity)*df.config.ShrinkRatio {
		return
	}

	newCap := max(capacity/2, df.config.MinColumnCapacity)
	df.columns = column.ShrinkSlice(df.columns, newCap)

	df.log.Debug("column storage shrunk", zap.Int("from", capacity), zap.Int("to", cap(df.columns)))
}

func (df *DataFrame) RenameColumn(index int, title string) error {
	col, err := df.Column(index)
	if err != nil {
		return err
	}
	col.Rename(title)
	return nil
}

// AddRow appends one cell to every column, in column order. Missing
// trailing values are stored as absent. The row is appended to all
// columns or to none.
func (df *DataFrame) AddRow(values ...schema.Value) error {
	if len(values) > len(df.columns) {
		return fmt.Errorf("%w: %d values for %d columns", ErrRowTooWide, len(values), len(df.columns))
	}

	row := make([]schema.Value, len(df.columns))
	for idx, v := range values {
		row[idx] = schema.Clone(v)

		if row[idx] == nil {
			continue
		}

		col := df.columns[idx]
		if row[idx].Type() != col.Type() {
			err := &column.TypeError{Expected: col.Type(), Got: row[idx].Type()}
			df.log.Debug("row rejected", zap.Int("column", idx), zap.Error(err))
			return fmt.Errorf("column %d (%q): %w", idx, col.Title(), err)
		}
	}

	// capacity first, so no column is appended unless all can be
	for idx, col := range df.columns {
		if err := col.Reserve(1); err != nil {
			return fmt.Errorf("column %d: %w", idx, err)
		}
	}

	for idx, col := range df.columns {
		if err := col.Insert(row[idx]); err != nil {
			// unreachable after the checks above
			panic(fmt.Sprintf("insert into column %d after reserve failed: %s", idx, err.Error()))
		}
	}

	return nil
}

// Fill appends rows one by one. It stops at the first failing row and
// reports its index; earlier rows stay appended.
func (df *DataFrame) Fill(rows [][]schema.Value) (appended int, err error) {
	for idx, row := range rows {
		if err := df.AddRow(row...); err != nil {
			return idx, fmt.Errorf("row %d: %w", idx, err)
		}
	}
	return len(rows), nil
}

// DeleteRow removes the cell at row from every column. It is rejected,
// leaving the frame unchanged, if any column is too short to have it.
func (df *DataFrame) DeleteRow(row int) error {
	if len(df.columns) == 0 {
		return &column.RangeError{Index: row, Size: 0}
	}

	for idx, col := range df.columns {
		if row < 0 || row >= col.Len() {
			return fmt.Errorf("column %d (%q): %w", idx, col.Title(), &column.RangeError{Index: row, Size: col.Len()})
		}
	}

	for _, col := range df.columns {
		if err := col.DeleteAt(row); err != nil {
			panic(fmt.Sprintf("delete after bounds check failed: %s", err.Error()))
		}
	}

	return nil
}

// GetCell returns the cell at (row, col); ok is false for an absent cell
// or any index outside the frame.
func (df *DataFrame) GetCell(row, col int) (schema.Value, bool) {
	c, err := df.Column(col)
	if err != nil {
		return nil, false
	}
	return c.Get(row)
}

// LookupCell separates absent cells (nil, nil) from bad indices.
func (df *DataFrame) LookupCell(row, col int) (schema.Value, error) {
	c, err := df.Column(col)
	if err != nil {
		return nil, err
	}

	v, err := c.Lookup(row)
	if err != nil {
		return nil, fmt.Errorf("column %d (%q): %w", col, c.Title(), err)
	}
	return v, nil
}

func (df *DataFrame) SetCell(row, col int, v schema.Value) error {
	c, err := df.Column(col)
	if err != nil {
		return err
	}

	if err := c.Set(row, v); err != nil {
		return fmt.Errorf("column %d (%q): %w", col, c.Title(), err)
	}
	return nil
}

// ContainsValue reports whether a column of v's type holds a cell equal
// to v.
func (df *DataFrame) ContainsValue(v schema.Value) bool {
	typ, ok := schema.TypeOf(v)
	if !ok {
		return false
	}

	for _, col := range df.columns {
		if col.Type() == typ && col.Contains(v) {
			return true
		}
	}
	return false
}

func (df *DataFrame) CountEqual(v schema.Value) int {
	return df.countCells(query.EQ, v)
}

func (df *DataFrame) CountGreater(v schema.Value) int {
	return df.countCells(query.GT, v)
}

func (df *DataFrame) CountLess(v schema.Value) int {
	return df.countCells(query.LT, v)
}

// countCells sums the matches of every column typed like v. Columns of
// other types are skipped, never compared.
func (df *DataFrame) countCells(op query.CondOperand, v schema.Value) int {
	typ, ok := schema.TypeOf(v)
	if !ok {
		return 0
	}

	count := 0
	for _, col := range df.columns {
		if col.Type() == typ {
			count += col.CountMatching(op, v)
		}
	}
	return count
}

// Release drops every column. The frame stays usable and empty.
func (df *DataFrame) Release() {
	for idx, col := range df.columns {
		col.Clear()
		df.columns[idx] = nil
	}
	df.columns = nil

	df.log.Debug("frame released")
}
