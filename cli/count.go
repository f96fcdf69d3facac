package cli

import (
	"fmt"
	"strings"

	"github.com/Samy2700/CDataFrame2/frame"
	"github.com/Samy2700/CDataFrame2/query"
	"github.com/Samy2700/CDataFrame2/schema"
	"github.com/spf13/cobra"
)

type operandFlags struct {
	file  string
	typ   string
	value string
}

func (f *operandFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "Table file (YAML)")
	cmd.Flags().StringVar(&f.typ, "type", "", "Type of the value: uint, int, char, float, double, string, struct")
	cmd.Flags().StringVar(&f.value, "value", "", "Value to compare against")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("value")
}

func (f *operandFlags) operand() (schema.Value, error) {
	typ, err := schema.ParseFieldType(f.typ)
	if err != nil {
		return nil, err
	}
	return schema.ParseValue(typ, f.value)
}

func (a *app) countCommand() *cobra.Command {
	var (
		flags operandFlags
		op    string
	)

	cmd := &cobra.Command{
		Use:   "count",
		Short: "Count cells equal to, greater or less than a value",
		RunE: func(cmd *cobra.Command, args []string) error {
			operand, err := query.ParseOperand(op)
			if err != nil {
				return err
			}

			v, err := flags.operand()
			if err != nil {
				return err
			}

			df, err := a.loadFrame(flags.file)
			if err != nil {
				return err
			}
			defer df.Release()

			var count int
			switch operand {
			case query.EQ:
				count = df.CountEqual(v)
			case query.GT:
				count = df.CountGreater(v)
			case query.LT:
				count = df.CountLess(v)
			}

			fmt.Fprintf(a.out, "Cells %s %s: %d\n", strings.ToLower(operand.String()), flags.value, count)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&op, "op", "eq", "Comparison: eq, gt or lt")

	return cmd
}

func (a *app) containsCommand() *cobra.Command {
	var flags operandFlags

	cmd := &cobra.Command{
		Use:   "contains",
		Short: "Check whether a value exists in the table",
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := flags.operand()
			if err != nil {
				return err
			}

			df, err := a.loadFrame(flags.file)
			if err != nil {
				return err
			}
			defer df.Release()

			if df.ContainsValue(v) {
				fmt.Fprintf(a.out, "Value %s exists\n", flags.value)
			} else {
				fmt.Fprintf(a.out, "Value %s not found\n", flags.value)
			}
			return nil
		},
	}

	flags.register(cmd)

	return cmd
}

func (a *app) matchCommand() *cobra.Command {
	var (
		file  string
		where []string
	)

	cmd := &cobra.Command{
		Use:     "match",
		Short:   "List rows satisfying every --where condition",
		Example: `  cdataframe match -f table.yaml --where "age gt 30" --where "name eq Bob"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			df, err := a.loadFrame(file)
			if err != nil {
				return err
			}
			defer df.Release()

			conds := make([]query.FilterCondition, 0, len(where))
			for _, clause := range where {
				cond, err := parseWhere(df, clause)
				if err != nil {
					return err
				}
				conds = append(conds, cond)
			}

			rows, err := df.MatchRows(conds...)
			if err != nil {
				return err
			}

			fmt.Fprintf(a.out, "Matching rows: %v\n", rows)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Table file (YAML)")
	cmd.Flags().StringArrayVar(&where, "where", nil, `Condition "<column> <eq|gt|lt> <value>"`)

	return cmd
}

// parseWhere reads "<column> <op> <value>"; the value is typed after the
// column it refers to.
func parseWhere(df *frame.DataFrame, clause string) (query.FilterCondition, error) {
	parts := strings.SplitN(strings.TrimSpace(clause), " ", 3)
	if len(parts) != 3 {
		return query.FilterCondition{}, fmt.Errorf("invalid condition %q: expected \"<column> <op> <value>\"", clause)
	}

	col, _, found := df.ColumnByTitle(parts[0])
	if !found {
		return query.FilterCondition{}, fmt.Errorf("%w: %q", frame.ErrNoColumn, parts[0])
	}

	op, err := query.ParseOperand(parts[1])
	if err != nil {
		return query.FilterCondition{}, err
	}

	v, err := schema.ParseValue(col.Type(), parts[2])
	if err != nil {
		return query.FilterCondition{}, err
	}

	return query.FilterCondition{Column: parts[0], Operand: op, Argument: v}, nil
}
