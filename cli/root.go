// Package cli wires the cdataframe commands.
package cli

import (
	"fmt"
	"io"

	"github.com/Samy2700/CDataFrame2/frame"
	"github.com/Samy2700/CDataFrame2/loader"
	"github.com/Samy2700/CDataFrame2/logger"
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type app struct {
	out io.Writer

	logConfig logger.Config
	debug     bool

	log *zap.Logger
}

// NewRootCommand builds the command tree writing its output to out.
func NewRootCommand(out io.Writer) *cobra.Command {
	a := &app{out: out, logConfig: logger.DefaultConfig(), log: logger.Nop()}

	root := &cobra.Command{
		Use:           "cdataframe",
		Short:         "In-memory column table toolkit",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log, err := logger.New(a.logConfig)
			if err != nil {
				return err
			}
			a.log = log
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}

	root.SetOut(out)

	root.PersistentFlags().StringVar(&a.logConfig.Level, "log-level", a.logConfig.Level, "Log level (debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&a.logConfig.Development, "dev", false, "Colored development logging")
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Dump loaded tables")

	root.AddCommand(
		a.demoCommand(),
		a.showCommand(),
		a.countCommand(),
		a.containsCommand(),
		a.matchCommand(),
	)

	return root
}

// loadFrame reads a table file. Settings in the file's log section are
// ignored once the command line chose a logger.
func (a *app) loadFrame(path string) (*frame.DataFrame, error) {
	if path == "" {
		return nil, fmt.Errorf("a table file is required (--file)")
	}

	f, err := loader.Load(path)
	if err != nil {
		return nil, err
	}

	df, err := f.Build(a.log)
	if err != nil {
		return nil, err
	}

	if a.debug {
		spew.Fdump(a.out, f)
	}

	a.log.Info("table loaded", zap.String("path", path), zap.Int("columns", df.ColumnCount()), zap.Int("rows", df.RowCount()))

	return df, nil
}
