// Package console renders frames and columns as text for the CLI.
package console

import (
	"fmt"
	"io"
	"strconv"

	"github.com/Samy2700/CDataFrame2/column"
	"github.com/Samy2700/CDataFrame2/frame"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

var heading = color.New(color.Bold, color.FgCyan)

// DisplayFull renders every row of every column.
func DisplayFull(w io.Writer, df *frame.DataFrame) {
	render(w, df, longestColumn(df), df.ColumnCount())
}

// DisplayRows renders at most rows rows of every column.
func DisplayRows(w io.Writer, df *frame.DataFrame, rows int) {
	render(w, df, min(max(rows, 0), longestColumn(df)), df.ColumnCount())
}

// DisplayColumns renders every row of at most columns columns.
func DisplayColumns(w io.Writer, df *frame.DataFrame, columns int) {
	render(w, df, longestColumn(df), min(max(columns, 0), df.ColumnCount()))
}

// longestColumn lets a misaligned frame show every stored cell; short
// columns fill with NULL.
func longestColumn(df *frame.DataFrame) int {
	longest := 0
	for idx := 0; idx < df.ColumnCount(); idx++ {
		col, _ := df.Column(idx)
		longest = max(longest, col.Len())
	}
	return longest
}

func render(w io.Writer, df *frame.DataFrame, rows, columns int) {
	heading.Fprintf(w, "Dataframe with %d columns, %d rows:\n", df.ColumnCount(), df.RowCount())

	if columns == 0 {
		return
	}

	header := make([]string, 0, columns+1)
	header = append(header, "#")

	cols := make([]*column.Column, columns)
	for idx := range cols {
		cols[idx], _ = df.Column(idx)
		header = append(header, fmt.Sprintf("%s (%s)", cols[idx].Title(), cols[idx].Type()))
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)

	for row := 0; row < rows; row++ {
		line := make([]string, 0, columns+1)
		line = append(line, strconv.Itoa(row))
		for _, col := range cols {
			line = append(line, col.FormatRow(row))
		}
		table.Append(line)
	}

	table.Render()
}

func DisplayColumnNames(w io.Writer, df *frame.DataFrame) {
	heading.Fprintln(w, "Column names:")
	for idx, title := range df.Titles() {
		fmt.Fprintf(w, "%d. %s\n", idx, title)
	}
}

func DisplayCounts(w io.Writer, df *frame.DataFrame) {
	fmt.Fprintf(w, "Number of rows: %d\n", df.RowCount())
	fmt.Fprintf(w, "Number of columns: %d\n", df.ColumnCount())
}

// PrintColumn lists one column as "[index] value" lines.
func PrintColumn(w io.Writer, col *column.Column) {
	if col == nil {
		fmt.Fprintln(w, "Column is NULL")
		return
	}

	heading.Fprintf(w, "Column '%s':\n", col.Title())
	for idx := 0; idx < col.Len(); idx++ {
		fmt.Fprintf(w, "[%d] %s\n", idx, col.FormatRow(idx))
	}
}
