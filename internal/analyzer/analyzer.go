// Package analyzer drives a format parser over transcript files and
// feeds the decoded events into a sink.
package analyzer

import (
	"bufio"
	"fmt"
	"log"
	"os"

	"github.com/weestat/weestat/internal/event"
	"github.com/weestat/weestat/internal/format"
	"github.com/weestat/weestat/internal/normalize"
)

// Result summarizes an analysis run.
type Result struct {
	Files     int
	Lines     int
	Unmatched int
}

// Analyzer reads transcript files line by line through a format parser.
type Analyzer struct {
	parser    format.Parser
	files     int
	lines     int
	unmatched int
}

// New creates an analyzer for the named log format. Decoded events go
// to sink. debug, when non-nil, receives a diagnostic for every line
// the parser cannot classify; unrecognized lines are counted either
// way.
func New(formatName string, sink event.Sink, debug event.DebugFunc) (*Analyzer, error) {
	a := &Analyzer{}
	parser, err := format.New(formatName, sink, a.countUnmatched(debug))
	if err != nil {
		return nil, err
	}
	a.parser = parser
	return a, nil
}

// countUnmatched wraps debug so unrecognized lines are tallied even
// when diagnostics are disabled.
func (a *Analyzer) countUnmatched(debug event.DebugFunc) event.DebugFunc {
	return func(msg string, args ...any) {
		a.unmatched++
		if debug != nil {
			debug(msg, args...)
		}
	}
}

// AnalyzeFile parses one log file. Line numbers in diagnostics restart
// at 1 for each file.
func (a *Analyzer) AnalyzeFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	num := 0
	for scanner.Scan() {
		num++
		a.lines++
		a.parser.ParseLine(num, normalize.Line(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read log file: %w", err)
	}

	a.files++
	return nil
}

// AnalyzeAll parses every file, skipping (with a warning) those that
// cannot be read. It fails only when no file could be parsed at all.
func (a *Analyzer) AnalyzeAll(paths []string) error {
	for _, path := range paths {
		if err := a.AnalyzeFile(path); err != nil {
			log.Printf("Warning: skipping %s: %v", path, err)
		}
	}
	if len(paths) > 0 && a.files == 0 {
		return fmt.Errorf("no log files could be read")
	}
	return nil
}

// Result returns the run totals so far.
func (a *Analyzer) Result() Result {
	return Result{Files: a.files, Lines: a.lines, Unmatched: a.unmatched}
}
