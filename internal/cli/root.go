// Package cli implements the gamecode command line tool for splitting
// combined game documents into fragments and joining them back.
package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "gamecode",
	Short:         "Split and join single-file HTML games",
	Long:          `gamecode converts between a combined HTML game document and its separate markup, style and script files.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
