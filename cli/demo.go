package cli

import (
	"fmt"
	"strings"

	"github.com/Samy2700/CDataFrame2/column"
	"github.com/Samy2700/CDataFrame2/console"
	"github.com/Samy2700/CDataFrame2/frame"
	"github.com/Samy2700/CDataFrame2/schema"
	"github.com/spf13/cobra"
)

func (a *app) demoCommand() *cobra.Command {
	var chars, ints string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Build a character column and an integer column and display them",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := frame.DefaultConfig()
			config.Logger = a.log
			df := frame.NewWithConfig(config)
			defer df.Release()

			charCol := column.New(schema.CharFieldType, "Character Column")
			if err := df.AddColumn(charCol); err != nil {
				return err
			}

			if err := insertText(charCol, chars); err != nil {
				return err
			}

			fmt.Fprintln(a.out, "Contents of the dataframe:")
			console.DisplayFull(a.out, df)

			intCol := column.New(schema.IntFieldType, "Integer Column")
			if err := df.AddColumn(intCol); err != nil {
				return err
			}

			if err := insertText(intCol, ints); err != nil {
				return err
			}

			fmt.Fprintln(a.out, "Updated contents of the dataframe:")
			console.DisplayFull(a.out, df)

			return nil
		},
	}

	cmd.Flags().StringVar(&chars, "chars", "a,b", "Comma separated characters")
	cmd.Flags().StringVar(&ints, "ints", "1,2", "Comma separated integers")

	return cmd
}

func insertText(col *column.Column, list string) error {
	if list == "" {
		return nil
	}

	for _, text := range strings.Split(list, ",") {
		v, err := schema.ParseValue(col.Type(), text)
		if err != nil {
			return fmt.Errorf("failed to insert value into %q: %w", col.Title(), err)
		}
		if err := col.Insert(v); err != nil {
			return fmt.Errorf("failed to insert value into %q: %w", col.Title(), err)
		}
	}

	return nil
}
