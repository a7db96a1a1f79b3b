package format

import (
	"fmt"
	"strings"
	"testing"

	"github.com/weestat/weestat/internal/event"
)

// recordingSink records every event as one formatted string so tests can
// compare event streams directly.
type recordingSink struct {
	events []string
}

func (s *recordingSink) add(format string, args ...any) {
	s.events = append(s.events, fmt.Sprintf(format, args...))
}

func (s *recordingSink) Message(ts event.Timestamp, nick, text string) {
	s.add("message %s %s %q", ts, nick, text)
}

func (s *recordingSink) Action(ts event.Timestamp, nick, text string) {
	s.add("action %s %s %q", ts, nick, text)
}

func (s *recordingSink) Slap(ts event.Timestamp, nick, target string) {
	s.add("slap %s %s %q", ts, nick, target)
}

func (s *recordingSink) Nickchange(ts event.Timestamp, oldNick, newNick string) {
	s.add("nickchange %s %s %s", ts, oldNick, newNick)
}

func (s *recordingSink) Join(ts event.Timestamp, nick string) {
	s.add("join %s %s", ts, nick)
}

func (s *recordingSink) Part(ts event.Timestamp, nick string) {
	s.add("part %s %s", ts, nick)
}

func (s *recordingSink) Quit(ts event.Timestamp, nick string) {
	s.add("quit %s %s", ts, nick)
}

func (s *recordingSink) Mode(ts event.Timestamp, nick, target, mode string) {
	s.add("mode %s %s %s %s", ts, nick, target, mode)
}

func (s *recordingSink) Topic(ts event.Timestamp, nick, topic string) {
	s.add("topic %s %s %q", ts, nick, topic)
}

func (s *recordingSink) Kick(ts event.Timestamp, kicker, kicked, text string) {
	s.add("kick %s %s %s %q", ts, kicker, kicked, text)
}

func TestParseLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{
			name: "normal message",
			line: "2016-01-01 12:00 carol hello there",
			want: []string{`message 12:00 carol "hello there"`},
		},
		{
			name: "normal message with seconds",
			line: "2016-01-01 12:00:05 carol hello",
			want: []string{`message 12:00:05 carol "hello"`},
		},
		{
			name: "normal message with op sigil",
			line: "2016-01-01 12:00 @carol hello",
			want: []string{`message 12:00 carol "hello"`},
		},
		{
			name: "normal message with voice sigil",
			line: "2016-01-01 23:59 +bob ok",
			want: []string{`message 23:59 bob "ok"`},
		},
		{
			name: "normal message with empty text",
			line: "2016-01-01 12:00 carol",
			want: []string{`message 12:00 carol ""`},
		},
		{
			name: "join",
			line: "2016-01-01 12:01 --> carol (user@host.example) has joined #chan",
			want: []string{"join 12:01 carol"},
		},
		{
			name: "join strips nick sigil",
			line: "2016-01-01 12:01 --> @carol (u@h) has joined #chan",
			want: []string{"join 12:01 carol"},
		},
		{
			name: "quit",
			line: "2016-01-01 12:02 <-- carol (user@host) has quit (Ping timeout)",
			want: []string{"quit 12:02 carol"},
		},
		{
			name: "quit with empty reason",
			line: "2016-01-01 12:02 <-- carol (user@host) has quit ()",
			want: []string{"quit 12:02 carol"},
		},
		{
			name: "part",
			line: "2016-01-01 12:03 <-- carol (user@host) has left #chan (bye)",
			want: []string{"part 12:03 carol"},
		},
		{
			name: "single mode",
			line: "2016-01-01 12:04 -- Mode #chan [+o alice] by carol",
			want: []string{"mode 12:04 carol alice +o"},
		},
		{
			name: "mode with sign change",
			line: "2016-01-01 12:04 -- Mode #chan [+o-v alice bob] by carol",
			want: []string{
				"mode 12:04 carol alice +o",
				"mode 12:04 carol bob -v",
			},
		},
		{
			name: "mode with shared sign",
			line: "2016-01-01 12:04 -- Mode #chan [+oo alice bob] by carol",
			want: []string{
				"mode 12:04 carol alice +o",
				"mode 12:04 carol bob +o",
			},
		},
		{
			name: "mode strips target sigil",
			line: "2016-01-01 12:04 -- Mode #chan [+o @alice] by carol",
			want: []string{"mode 12:04 carol alice +o"},
		},
		{
			name: "mode keeps first performer only",
			line: "2016-01-01 12:04 -- Mode #chan [+v alice] by carol, dave",
			want: []string{"mode 12:04 carol alice +v"},
		},
		{
			name: "action",
			line: "2016-01-01 12:00 * carol waves",
			want: []string{`action 12:00 carol "waves"`},
		},
		{
			name: "slap action",
			line: "2016-01-01 12:00 * carol slaps dave with a trout",
			want: []string{
				`slap 12:00 carol "dave"`,
				`action 12:00 carol "slaps dave with a trout"`,
			},
		},
		{
			name: "slap with no target",
			line: "2016-01-01 12:06 * carol slaps",
			want: []string{
				`slap 12:06 carol ""`,
				`action 12:06 carol "slaps"`,
			},
		},
		{
			name: "slap is case insensitive",
			line: "2016-01-01 12:06 * carol Slaps dave",
			want: []string{
				`slap 12:06 carol "dave"`,
				`action 12:06 carol "Slaps dave"`,
			},
		},
		{
			name: "slapstick is not a slap",
			line: "2016-01-01 12:06 * carol slapstick routine",
			want: []string{`action 12:06 carol "slapstick routine"`},
		},
		{
			name: "nickchange",
			line: "2016-01-01 12:07 -- carol is now known as carol_away",
			want: []string{"nickchange 12:07 carol carol_away"},
		},
		{
			name: "topic",
			line: `2016-01-01 12:08 -- carol has changed topic for #chan to "welcome"`,
			want: []string{`topic 12:08 carol "welcome"`},
		},
		{
			name: "topic with previous topic",
			line: `2016-01-01 12:08 -- carol has changed topic for #chan from "old stuff" to "new stuff"`,
			want: []string{`topic 12:08 carol "new stuff"`},
		},
		{
			name: "empty topic is dropped",
			line: `2016-01-01 12:08 -- carol has changed topic for #chan to ""`,
			want: nil,
		},
		{
			name: "kick",
			line: "2016-01-01 12:09 <-- dave has kicked carol (flooding)",
			want: []string{`kick 12:09 carol dave "dave has kicked carol (flooding)"`},
		},
		{
			name: "empty line",
			line: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := &recordingSink{}
			p := NewWeechat(sink, nil)
			p.ParseLine(1, tt.line)

			got := strings.Join(sink.events, "\n")
			want := strings.Join(tt.want, "\n")
			if got != want {
				t.Errorf("Expected events:\n%s\ngot:\n%s", want, got)
			}
		})
	}
}

func TestParseLineUnmatched(t *testing.T) {
	sink := &recordingSink{}
	var diags []string
	debug := func(format string, args ...any) {
		diags = append(diags, fmt.Sprintf(format, args...))
	}
	p := NewWeechat(sink, debug)

	p.ParseLine(42, "not a log line at all")

	if len(sink.events) != 0 {
		t.Errorf("Expected no events, got %v", sink.events)
	}
	if len(diags) != 1 {
		t.Fatalf("Expected 1 diagnostic, got %d", len(diags))
	}
	want := "Debug: Weechat.ParseLine: unmatched line 42: 'not a log line at all'"
	if diags[0] != want {
		t.Errorf("Expected %q, got %q", want, diags[0])
	}
}

func TestParseLineEmpty(t *testing.T) {
	sink := &recordingSink{}
	diags := 0
	p := NewWeechat(sink, func(format string, args ...any) { diags++ })

	p.ParseLine(1, "")

	if len(sink.events) != 0 {
		t.Errorf("Expected no events for empty line, got %v", sink.events)
	}
	if diags != 0 {
		t.Errorf("Expected no diagnostics for empty line, got %d", diags)
	}
}

func TestParseLineMalformedMode(t *testing.T) {
	sink := &recordingSink{}
	diags := 0
	p := NewWeechat(sink, func(format string, args ...any) { diags++ })

	// One target short: the shape matches but expansion fails, so the
	// whole line goes down the unrecognized path with no events.
	p.ParseLine(1, "2016-01-01 12:00 -- Mode #chan [+oo alice] by carol")

	if len(sink.events) != 0 {
		t.Errorf("Expected no events, got %v", sink.events)
	}
	if diags != 1 {
		t.Errorf("Expected 1 diagnostic, got %d", diags)
	}
}

func TestParseLineIdempotent(t *testing.T) {
	sink := &recordingSink{}
	p := NewWeechat(sink, nil)

	line := "2016-01-01 12:00 * carol slaps dave with a trout"
	p.ParseLine(7, line)
	n := len(sink.events)
	p.ParseLine(7, line)

	if len(sink.events) != 2*n {
		t.Fatalf("Expected %d events after reparse, got %d", 2*n, len(sink.events))
	}
	for i := 0; i < n; i++ {
		if sink.events[i] != sink.events[n+i] {
			t.Errorf("Event %d differs between runs: %q vs %q", i, sink.events[i], sink.events[n+i])
		}
	}
}
