// Package format classifies IRC chat transcript lines into typed events.
// Each supported log dialect is a Parser that recognizes one line at a
// time and forwards decoded events to an event.Sink.
package format

import (
	"fmt"

	"github.com/weestat/weestat/internal/event"
)

// Parser classifies one transcript line at a time. Implementations keep
// no state between lines; the caller owns the line counter and passes
// the current line number for diagnostics only.
type Parser interface {
	ParseLine(num int, line string)
}

// New returns the parser for the named log dialect.
func New(name string, sink event.Sink, debug event.DebugFunc) (Parser, error) {
	switch name {
	case "weechat":
		return NewWeechat(sink, debug), nil
	default:
		return nil, fmt.Errorf("unknown log format: %s", name)
	}
}
