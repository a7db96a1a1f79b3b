package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/weestat/weestat/internal/analyzer"
	"github.com/weestat/weestat/internal/config"
	"github.com/weestat/weestat/internal/event"
	"github.com/weestat/weestat/internal/report"
	"github.com/weestat/weestat/internal/stats"
)

var (
	analyzeConfig  string
	analyzeChannel string
	analyzeFormat  string
	analyzeReport  string
	analyzeOutput  string
	analyzeTopN    int
	analyzeIgnore  []string
	analyzeRenames bool
	analyzeDebug   bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [logfile...]",
	Short: "Generate channel statistics from transcript files",
	Long: `Analyze parses transcript files and prints a statistics report.

Log files can be given as arguments or listed under log_files in a YAML
configuration file. Flags set explicitly override the config file.

Examples:
  weestat analyze irc.freenode.#chan.weechatlog
  weestat analyze -r json -o report.json irc.freenode.#chan.weechatlog
  weestat analyze -c weestat.yaml
  weestat analyze --ignore ChanServ --follow-renames irc.freenode.#chan.weechatlog`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeConfig, "config", "c", "", "Path to YAML configuration file")
	analyzeCmd.Flags().StringVar(&analyzeChannel, "channel", "", "Channel name shown in the report")
	analyzeCmd.Flags().StringVarP(&analyzeFormat, "format", "f", "weechat", "Log format of the transcript files")
	analyzeCmd.Flags().StringVarP(&analyzeReport, "report", "r", "text", "Report style: text or json")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "output", "o", "", "Write the report to a file instead of stdout")
	analyzeCmd.Flags().IntVar(&analyzeTopN, "top", 10, "How many nicks the ranking sections show")
	analyzeCmd.Flags().StringSliceVar(&analyzeIgnore, "ignore", nil, "Nicks to exclude from per-nick statistics")
	analyzeCmd.Flags().BoolVar(&analyzeRenames, "follow-renames", false, "Fold renamed nicks into their original identity")
	analyzeCmd.Flags().BoolVar(&analyzeDebug, "debug", false, "Print a diagnostic for every unrecognized line")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.Report != "text" && cfg.Report != "json" {
		return fmt.Errorf("unknown report style: %s", cfg.Report)
	}

	files := args
	if len(files) == 0 {
		files = cfg.LogFiles
	}
	if len(files) == 0 {
		return fmt.Errorf("no log files given (pass them as arguments or set log_files in the config)")
	}

	tracker := stats.NewTracker(stats.Options{
		IgnoreNicks:  cfg.IgnoreNicks,
		TrackRenames: cfg.TrackRenames,
	})

	var debug event.DebugFunc
	if cfg.Debug {
		debug = log.Printf
	}

	a, err := analyzer.New(cfg.Format, tracker, debug)
	if err != nil {
		return err
	}
	if err := a.AnalyzeAll(files); err != nil {
		return err
	}

	res := a.Result()
	sum := report.Summary{
		Channel:   cfg.Channel,
		Files:     res.Files,
		Lines:     res.Lines,
		Unmatched: res.Unmatched,
		TopN:      cfg.TopN,
	}

	var out []byte
	switch cfg.Report {
	case "text":
		out = []byte(report.Text(tracker, sum))
	case "json":
		out, err = report.JSON(tracker, sum)
		if err != nil {
			return err
		}
	}

	if analyzeOutput != "" {
		if err := os.WriteFile(analyzeOutput, out, 0644); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		return nil
	}
	_, err = os.Stdout.Write(out)
	return err
}

// loadConfig builds the effective configuration: the config file when
// one is given, with explicitly set flags layered on top.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if analyzeConfig != "" {
		loaded, err := config.Load(analyzeConfig)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("channel") {
		cfg.Channel = analyzeChannel
	}
	if flags.Changed("format") {
		cfg.Format = analyzeFormat
	}
	if flags.Changed("report") {
		cfg.Report = analyzeReport
	}
	if flags.Changed("top") {
		cfg.TopN = analyzeTopN
	}
	if flags.Changed("ignore") {
		cfg.IgnoreNicks = analyzeIgnore
	}
	if flags.Changed("follow-renames") {
		cfg.TrackRenames = analyzeRenames
	}
	if flags.Changed("debug") {
		cfg.Debug = analyzeDebug
	}
	return cfg, nil
}
