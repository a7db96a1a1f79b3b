package format

import (
	"regexp"
	"strings"

	"github.com/weestat/weestat/internal/event"
)

// roleSigils are the channel-role prefixes a nickname may carry in a log
// line. At most one is stripped before a nickname is reported.
const roleSigils = "~&@%+!*"

// Compiled patterns for the WeeChat log dialect. Every line starts with
// "YYYY-MM-DD HH:MM" (seconds optional); the date anchors the match and
// is discarded, the time is captured verbatim. Nickname captures may
// still carry a role sigil; decoding strips it.
var (
	// Matches: "2016-01-01 12:00 @carol hello there"
	// Captures: (1) time, (2) nick, (3) text (optional)
	// The nick must not begin with a marker character ("<", ">", "*", "-",
	// "#" or a role sigil) so join/quit/mode/action lines, which this
	// pattern is tried before, can never satisfy it. A role sigil is
	// allowed only as the first character of the capture.
	normalPattern = regexp.MustCompile(
		`^\d{4}-\d{2}-\d{2} (\d{2}:\d{2}(?::\d{2})?) ([~&@%+!*]?[^\s/<>*~&@%+!#-][^\s/]*)(?: (.*))?$`,
	)

	// Matches: "2016-01-01 12:00 --> carol (user@host) has joined #chan"
	// Captures: (1) time, (2) nick
	joinPattern = regexp.MustCompile(
		`^\d{4}-\d{2}-\d{2} (\d{2}:\d{2}(?::\d{2})?) --> ([^\s/]+) \((?:[^)]*)\) has joined [#&!+]\S+$`,
	)

	// Matches: "2016-01-01 12:00 <-- carol (user@host) has quit (Ping timeout)"
	// Captures: (1) time, (2) nick
	quitPattern = regexp.MustCompile(
		`^\d{4}-\d{2}-\d{2} (\d{2}:\d{2}(?::\d{2})?) <-- ([^\s/]+) \((?:[^)]*)\) has quit \((?:.*)\)$`,
	)

	// Matches: "2016-01-01 12:00 -- Mode #chan [+o-v alice bob] by carol"
	// Captures: (1) time, (2) flag string, (3) targets, (4) first performer
	// Extra comma-separated performers keep the shape anchored but are
	// discarded.
	modePattern = regexp.MustCompile(
		`^\d{4}-\d{2}-\d{2} (\d{2}:\d{2}(?::\d{2})?) -- Mode [#&!+]\S+ \[([-+][ov]+(?:[-+][ov]+)?)((?: [^\s\]]+)*)\] by ([^\s,/]+)(?:, ?[^\s,/]+)*$`,
	)

	// Matches: "2016-01-01 12:00 * carol slaps dave with a trout"
	// Captures: (1) time, (2) nick, (3) body (optional)
	actionPattern = regexp.MustCompile(
		`^\d{4}-\d{2}-\d{2} (\d{2}:\d{2}(?::\d{2})?) \* ([^\s/]+)(?: (.*))?$`,
	)

	// Matches action bodies like "slaps dave with a trout" or "slaps".
	// Captures: (1) the slapped token (optional)
	slapPattern = regexp.MustCompile(`(?i)^slaps(?:\s+(\S+).*)?$`)

	// Matches: "2016-01-01 12:00 -- carol is now known as carol_away"
	// Captures: (1) time, (2) old nick, (3) new nick
	nickchangePattern = regexp.MustCompile(
		`^\d{4}-\d{2}-\d{2} (\d{2}:\d{2}(?::\d{2})?) -- ([^\s/]+) is now known as ([^\s/]+)$`,
	)

	// Matches: "2016-01-01 12:00 <-- carol (user@host) has left #chan (bye)"
	// Captures: (1) time, (2) nick
	partPattern = regexp.MustCompile(
		`^\d{4}-\d{2}-\d{2} (\d{2}:\d{2}(?::\d{2})?) <-- ([^\s/]+) \((?:[^)]*)\) has left [#&!+]\S+ \((?:.*)\)$`,
	)

	// Matches: `2016-01-01 12:00 -- carol has changed topic for #chan from "old" to "new"`
	// (the from-clause is optional)
	// Captures: (1) time, (2) nick, (3) new topic
	topicPattern = regexp.MustCompile(
		`^\d{4}-\d{2}-\d{2} (\d{2}:\d{2}(?::\d{2})?) -- ([^\s/]+) has changed topic for [#&!+]\S+(?: from "(?:.*)")? to "(.*)"$`,
	)

	// Matches: "2016-01-01 12:00 <-- carol has kicked dave (flooding)"
	// The first nickname is the one removed from the channel, the second
	// is the operator who kicked it.
	// Captures: (1) time, (2) full event clause, (3) kicked nick, (4) kicker nick
	kickPattern = regexp.MustCompile(
		`^\d{4}-\d{2}-\d{2} (\d{2}:\d{2}(?::\d{2})?) <-- (([^\s/]+) has kicked ([^\s/]+) \((?:.*)\))$`,
	)
)

// weechatRule pairs a line shape with its decoder. The decoder returns
// false when the matched text is unusable (a nickname that is empty after
// sigil stripping, or a malformed mode-flag string), which sends the line
// down the unrecognized path instead.
type weechatRule struct {
	re     *regexp.Regexp
	decode func(*Weechat, []string) bool
}

// weechatRules is tried in order; the first shape that matches and
// decodes wins. Normal comes first because chat messages dominate real
// transcripts; its nick pattern cannot match the marker prefixes of the
// shapes below it.
var weechatRules = []weechatRule{
	{normalPattern, (*Weechat).decodeNormal},
	{joinPattern, (*Weechat).decodeJoin},
	{quitPattern, (*Weechat).decodeQuit},
	{modePattern, (*Weechat).decodeMode},
	{actionPattern, (*Weechat).decodeAction},
	{nickchangePattern, (*Weechat).decodeNickchange},
	{partPattern, (*Weechat).decodePart},
	{topicPattern, (*Weechat).decodeTopic},
	{kickPattern, (*Weechat).decodeKick},
}

// Weechat classifies transcript lines written by the WeeChat logger.
// It keeps no state between lines: every ParseLine call is a pure
// function of the line number and line text, forwarding decoded events
// to the sink synchronously.
type Weechat struct {
	sink  event.Sink
	debug event.DebugFunc
}

var _ Parser = (*Weechat)(nil)

// NewWeechat returns a parser for the WeeChat log dialect. Events go to
// sink; unrecognized non-empty lines are reported through debug, which
// may be nil.
func NewWeechat(sink event.Sink, debug event.DebugFunc) *Weechat {
	return &Weechat{sink: sink, debug: debug}
}

// ParseLine classifies one normalized line. Empty lines produce nothing.
// A non-empty line either produces events through the sink or exactly
// one diagnostic call carrying the line number and the raw text.
func (p *Weechat) ParseLine(num int, line string) {
	if line == "" {
		return
	}
	for _, r := range weechatRules {
		m := r.re.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		if r.decode(p, m) {
			return
		}
	}
	p.debugf("Debug: Weechat.ParseLine: unmatched line %d: '%s'", num, line)
}

func (p *Weechat) debugf(format string, args ...any) {
	if p.debug != nil {
		p.debug(format, args...)
	}
}

func (p *Weechat) decodeNormal(m []string) bool {
	nick, ok := stripSigil(m[2])
	if !ok {
		return false
	}
	p.sink.Message(event.Timestamp(m[1]), nick, m[3])
	return true
}

func (p *Weechat) decodeJoin(m []string) bool {
	nick, ok := stripSigil(m[2])
	if !ok {
		return false
	}
	p.sink.Join(event.Timestamp(m[1]), nick)
	return true
}

func (p *Weechat) decodeQuit(m []string) bool {
	nick, ok := stripSigil(m[2])
	if !ok {
		return false
	}
	p.sink.Quit(event.Timestamp(m[1]), nick)
	return true
}

// decodeMode expands the flag string into one Mode event per letter,
// pairing letters with targets positionally. All fields are validated
// before the first event is emitted, so a malformed line never emits a
// partial batch.
func (p *Weechat) decodeMode(m []string) bool {
	nick, ok := stripSigil(m[4])
	if !ok {
		return false
	}
	changes, err := ExpandModeFlags(m[2], strings.Fields(m[3]))
	if err != nil {
		return false
	}
	for i := range changes {
		target, ok := stripSigil(changes[i].Target)
		if !ok {
			return false
		}
		changes[i].Target = target
	}
	ts := event.Timestamp(m[1])
	for _, c := range changes {
		p.sink.Mode(ts, nick, c.Target, c.Flag())
	}
	return true
}

// decodeAction emits a Slap event first when the body is slap-shaped,
// then always emits the Action event for the full body.
func (p *Weechat) decodeAction(m []string) bool {
	nick, ok := stripSigil(m[2])
	if !ok {
		return false
	}
	ts := event.Timestamp(m[1])
	body := m[3]
	if sm := slapPattern.FindStringSubmatch(body); sm != nil {
		target, ok := stripSigil(sm[1])
		if !ok {
			target = ""
		}
		p.sink.Slap(ts, nick, target)
	}
	p.sink.Action(ts, nick, body)
	return true
}

func (p *Weechat) decodeNickchange(m []string) bool {
	oldNick, ok := stripSigil(m[2])
	if !ok {
		return false
	}
	newNick, ok := stripSigil(m[3])
	if !ok {
		return false
	}
	p.sink.Nickchange(event.Timestamp(m[1]), oldNick, newNick)
	return true
}

func (p *Weechat) decodePart(m []string) bool {
	nick, ok := stripSigil(m[2])
	if !ok {
		return false
	}
	p.sink.Part(event.Timestamp(m[1]), nick)
	return true
}

// decodeTopic drops topics whose text is empty; clearing a topic carries
// no information for statistics.
func (p *Weechat) decodeTopic(m []string) bool {
	nick, ok := stripSigil(m[2])
	if !ok {
		return false
	}
	if m[3] == "" {
		return true
	}
	p.sink.Topic(event.Timestamp(m[1]), nick, m[3])
	return true
}

func (p *Weechat) decodeKick(m []string) bool {
	kicked, ok := stripSigil(m[3])
	if !ok {
		return false
	}
	kicker, ok := stripSigil(m[4])
	if !ok {
		return false
	}
	p.sink.Kick(event.Timestamp(m[1]), kicker, kicked, m[2])
	return true
}

// stripSigil removes at most one leading role sigil from a nickname
// capture. The remainder must be non-empty to be usable.
func stripSigil(nick string) (string, bool) {
	if nick != "" && strings.IndexByte(roleSigils, nick[0]) >= 0 {
		nick = nick[1:]
	}
	return nick, nick != ""
}
