package event

// Timestamp is the time-of-day capture from a log line, kept exactly as
// written: "15:04" or "15:04:05". The date written before it in each line
// is only used to anchor parsing and is never retained.
type Timestamp string

// Hour returns the hour (0-23) of the timestamp for histogram bucketing,
// or -1 if the timestamp does not start with a valid two-digit hour.
func (t Timestamp) Hour() int {
	if len(t) < 2 || t[0] < '0' || t[0] > '9' || t[1] < '0' || t[1] > '9' {
		return -1
	}
	h := int(t[0]-'0')*10 + int(t[1]-'0')
	if h > 23 {
		return -1
	}
	return h
}

// Sink receives decoded events from a parser, one call per event.
// Calls happen synchronously while the input line is being classified,
// in decode order; nothing is buffered or reordered. Nicknames arrive
// with any leading role sigil already stripped.
type Sink interface {
	// Message is a normal chat line.
	Message(ts Timestamp, nick, text string)
	// Action is a "/me" line. Text is the full action body.
	Action(ts Timestamp, nick, text string)
	// Slap is the slap specialization of an action line. It is always
	// followed by the Action call for the same line. Target may be empty
	// when the slap names no one.
	Slap(ts Timestamp, nick, target string)
	// Nickchange reports oldNick renaming itself to newNick.
	Nickchange(ts Timestamp, oldNick, newNick string)
	Join(ts Timestamp, nick string)
	Part(ts Timestamp, nick string)
	Quit(ts Timestamp, nick string)
	// Mode reports one signed channel-mode flag, e.g. "+o", applied by
	// nick to target. A multi-flag mode line produces one call per flag.
	Mode(ts Timestamp, nick, target, mode string)
	// Topic reports a topic change. Empty topics are never delivered.
	Topic(ts Timestamp, nick, topic string)
	// Kick reports kicker removing kicked. Text is the full event clause
	// from the line, including the kick reason.
	Kick(ts Timestamp, kicker, kicked, text string)
}

// DebugFunc receives parser diagnostics, printf style. A nil DebugFunc
// disables diagnostics.
type DebugFunc func(format string, args ...any)
