// Package report renders accumulated channel statistics as text or JSON.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/weestat/weestat/internal/stats"
)

// Summary carries run-level context the tracker does not know about.
type Summary struct {
	Channel   string
	Files     int
	Lines     int
	Unmatched int
	// TopN limits the ranking sections of the text report; 0 means all.
	TopN int
}

// Text renders a plain-text report.
func Text(t *stats.Tracker, sum Summary) string {
	var lines []string

	title := "Channel statistics"
	if sum.Channel != "" {
		title = fmt.Sprintf("Channel statistics for %s", sum.Channel)
	}
	lines = append(lines, title)
	lines = append(lines, strings.Repeat("=", len(title)))
	lines = append(lines, fmt.Sprintf("Parsed %d lines from %d files (%d unrecognized)", sum.Lines, sum.Files, sum.Unmatched))
	if t.FirstSeen() != "" {
		lines = append(lines, fmt.Sprintf("Activity between %s and %s", t.FirstSeen(), t.LastSeen()))
	}

	totals := t.Totals()
	lines = append(lines, "", "Totals:")
	lines = append(lines, fmt.Sprintf("  Messages:     %d (%d words)", totals.Messages, totals.Words))
	lines = append(lines, fmt.Sprintf("  Actions:      %d", totals.Actions))
	lines = append(lines, fmt.Sprintf("  Slaps:        %d", totals.Slaps))
	lines = append(lines, fmt.Sprintf("  Joins:        %d", totals.Joins))
	lines = append(lines, fmt.Sprintf("  Parts:        %d", totals.Parts))
	lines = append(lines, fmt.Sprintf("  Quits:        %d", totals.Quits))
	lines = append(lines, fmt.Sprintf("  Kicks:        %d", totals.Kicks))
	lines = append(lines, fmt.Sprintf("  Mode changes: %d", totals.Modes))
	lines = append(lines, fmt.Sprintf("  Topics:       %d", totals.Topics))
	lines = append(lines, fmt.Sprintf("  Nick changes: %d", totals.Nickchanges))

	if hl := hourLines(t.Hours()); len(hl) > 0 {
		lines = append(lines, "", "Activity by hour:")
		lines = append(lines, hl...)
	}

	nicks := t.Nicks()

	talkers := topBy(nicks, sum.TopN, func(s *stats.NickStats) int { return s.Lines + s.Actions })
	if len(talkers) > 0 {
		lines = append(lines, "", "Top talkers:")
		for i, s := range talkers {
			lines = append(lines, fmt.Sprintf("  %2d. %-20s %5d lines, %6d words", i+1, s.Nick, s.Lines, s.Words))
		}
	}

	kickers := topBy(nicks, sum.TopN, func(s *stats.NickStats) int { return s.KicksGiven })
	if len(kickers) > 0 {
		lines = append(lines, "", "Kicks:")
		for _, s := range kickers {
			lines = append(lines, fmt.Sprintf("  %-20s %d given, %d taken", s.Nick, s.KicksGiven, s.KicksGot))
		}
	}

	granters := topBy(nicks, sum.TopN, func(s *stats.NickStats) int {
		return s.ModesGiven["+o"] + s.ModesGiven["+v"]
	})
	if len(granters) > 0 {
		lines = append(lines, "", "Ops and voices given:")
		for _, s := range granters {
			lines = append(lines, fmt.Sprintf("  %-20s %d +o, %d -o, %d +v", s.Nick, s.ModesGiven["+o"], s.ModesGiven["-o"], s.ModesGiven["+v"]))
		}
	}

	if top := t.LastTopic(); top != nil {
		lines = append(lines, "", "Last topic:")
		lines = append(lines, fmt.Sprintf("  %q set by %s at %s", top.Text, top.Nick, top.Time))
	}

	return strings.Join(lines, "\n") + "\n"
}

// hourLines renders the hour histogram as bars scaled to the busiest
// hour. Hours with no activity are left out.
func hourLines(hours [24]int) []string {
	max := 0
	for _, n := range hours {
		if n > max {
			max = n
		}
	}
	if max == 0 {
		return nil
	}

	var out []string
	for h, n := range hours {
		if n == 0 {
			continue
		}
		width := n * 40 / max
		if width == 0 {
			width = 1
		}
		out = append(out, fmt.Sprintf("  %02d  %-40s %d", h, strings.Repeat("#", width), n))
	}
	return out
}

// topBy returns the nicks with a positive count, highest first, at most
// topN entries (0 = all). Ties go alphabetically.
func topBy(nicks []*stats.NickStats, topN int, count func(*stats.NickStats) int) []*stats.NickStats {
	var out []*stats.NickStats
	for _, s := range nicks {
		if count(s) > 0 {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if count(out[i]) != count(out[j]) {
			return count(out[i]) > count(out[j])
		}
		return strings.ToLower(out[i].Nick) < strings.ToLower(out[j].Nick)
	})
	if topN > 0 && len(out) > topN {
		out = out[:topN]
	}
	return out
}
