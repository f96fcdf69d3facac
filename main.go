package main

import (
	"os"

	"github.com/Samy2700/CDataFrame2/cli"
	"github.com/fatih/color"
)

func main() {
	root := cli.NewRootCommand(os.Stdout)

	if err := root.Execute(); err != nil {
		color.Red("Error: %s", err.Error())
		os.Exit(1)
	}
}
