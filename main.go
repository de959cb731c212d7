package main

import (
	"os"

	"github.com/fatih/color"

	"github.com/controlplane-com/chamados-sql/pkg/cli"
)

func main() {
	err := cli.Execute()
	if err != nil && !cli.IsReported(err) {
		errorColor := color.New(color.FgRed, color.Bold)
		_, _ = errorColor.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(cli.ExitCode(err))
}
