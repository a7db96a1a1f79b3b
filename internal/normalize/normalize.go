// Package normalize scrubs raw transcript lines into the form the
// classifiers expect: no line terminator, no formatting codes, no
// control characters, single-space field separators, and no trailing
// whitespace.
package normalize

import (
	"strings"

	"github.com/ergochat/irc-go/ircfmt"
)

// Line scrubs one raw log line. The WeeChat logger writes three
// tab-separated fields (time, prefix, message); the first two are
// trimmed and rejoined with single spaces, while the message field keeps
// its internal spacing so free text reaches the classifier verbatim.
// Lines that already use space separators pass through unchanged apart
// from code stripping and trailing-whitespace removal.
func Line(raw string) string {
	s := strings.TrimRight(raw, "\r\n")
	s = ircfmt.Strip(s)
	if strings.Contains(s, "\t") {
		parts := strings.SplitN(s, "\t", 3)
		for i := 0; i < len(parts)-1; i++ {
			parts[i] = strings.TrimSpace(parts[i])
		}
		s = strings.Join(parts, " ")
	}
	s = strings.Map(dropControl, s)
	return strings.TrimRight(s, " ")
}

// dropControl maps tabs to spaces and removes every other control
// character the code stripper left behind.
func dropControl(r rune) rune {
	switch {
	case r == '\t':
		return ' '
	case r < 0x20 || r == 0x7f:
		return -1
	}
	return r
}
