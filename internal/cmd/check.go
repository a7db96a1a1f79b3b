package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/weestat/weestat/internal/analyzer"
	"github.com/weestat/weestat/internal/stats"
)

var checkFormat string

var checkCmd = &cobra.Command{
	Use:   "check <logfile>...",
	Short: "Check transcript files for unrecognized lines",
	Long: `Check parses transcript files and prints every line that does not match
any shape of the log format, with its file-local line number. The
command fails when at least one line is unrecognized, so it can gate
scripted imports.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVarP(&checkFormat, "format", "f", "weechat", "Log format of the transcript files")
}

func runCheck(_ *cobra.Command, args []string) error {
	tracker := stats.NewTracker(stats.Options{})
	a, err := analyzer.New(checkFormat, tracker, func(format string, args ...any) {
		fmt.Printf(format+"\n", args...)
	})
	if err != nil {
		return err
	}

	for _, path := range args {
		before := a.Result()
		if err := a.AnalyzeFile(path); err != nil {
			return err
		}
		after := a.Result()
		fmt.Printf("%s: %d lines, %d unrecognized\n", path, after.Lines-before.Lines, after.Unmatched-before.Unmatched)
	}

	res := a.Result()
	t := tracker.Totals()
	fmt.Printf("Recognized: %d messages, %d actions, %d joins, %d parts, %d quits, %d modes, %d topics, %d kicks, %d nick changes\n",
		t.Messages, t.Actions, t.Joins, t.Parts, t.Quits, t.Modes, t.Topics, t.Kicks, t.Nickchanges)

	if res.Unmatched > 0 {
		return fmt.Errorf("%d of %d lines unrecognized", res.Unmatched, res.Lines)
	}
	fmt.Printf("OK: all %d lines recognized\n", res.Lines)
	return nil
}
