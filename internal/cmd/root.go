// Package cmd implements the CLI commands for weestat.
package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "weestat",
	Short: "IRC transcript statistics generator",
	Long: `Weestat parses IRC client transcripts, classifies every line into chat
events (messages, joins, mode changes, kicks and so on), and renders
per-channel activity statistics as a text or JSON report.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)
}
