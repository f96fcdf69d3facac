package cli

import (
	"github.com/Samy2700/CDataFrame2/console"
	"github.com/spf13/cobra"
)

func (a *app) showCommand() *cobra.Command {
	var (
		file          string
		rows, columns int
		names, counts bool
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display a table file",
		RunE: func(cmd *cobra.Command, args []string) error {
			df, err := a.loadFrame(file)
			if err != nil {
				return err
			}
			defer df.Release()

			switch {
			case names:
				console.DisplayColumnNames(a.out, df)
			case counts:
				console.DisplayCounts(a.out, df)
			case rows > 0:
				console.DisplayRows(a.out, df, rows)
			case columns > 0:
				console.DisplayColumns(a.out, df, columns)
			default:
				console.DisplayFull(a.out, df)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Table file (YAML)")
	cmd.Flags().IntVar(&rows, "rows", 0, "Show only the first N rows")
	cmd.Flags().IntVar(&columns, "columns", 0, "Show only the first N columns")
	cmd.Flags().BoolVar(&names, "names", false, "List column names")
	cmd.Flags().BoolVar(&counts, "counts", false, "Print row and column counts")

	return cmd
}
