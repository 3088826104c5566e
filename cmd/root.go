// Package cmd provides the command-line interface for numseq.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "numseq",
	Short: "numseq demonstrates and inspects bounded numeric sequences.",
	Long: `numseq demonstrates and inspects bounded numeric sequences. ` +
		`Currently, it supports running a scripted demo session with ` +
		`optional operation logging, tracing, and live monitoring.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
