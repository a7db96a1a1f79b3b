// Package stats accumulates per-nick and channel-wide statistics from a
// stream of decoded transcript events.
package stats

import (
	"sort"
	"strings"

	"github.com/weestat/weestat/internal/event"
)

// Options configures a Tracker.
type Options struct {
	// IgnoreNicks are excluded from per-nick tallies (bots, services).
	// Channel totals still include their activity.
	IgnoreNicks []string
	// TrackRenames folds activity after a nick change into the original
	// nick's entry.
	TrackRenames bool
}

// NickStats holds the counters for one nickname. Nicknames are matched
// case-insensitively; Nick keeps the first spelling seen.
type NickStats struct {
	Nick        string          `json:"nick"`
	Lines       int             `json:"lines"`
	Words       int             `json:"words"`
	Actions     int             `json:"actions"`
	SlapsGiven  int             `json:"slaps_given,omitempty"`
	SlapsGot    int             `json:"slaps_got,omitempty"`
	Joins       int             `json:"joins,omitempty"`
	Parts       int             `json:"parts,omitempty"`
	Quits       int             `json:"quits,omitempty"`
	KicksGiven  int             `json:"kicks_given,omitempty"`
	KicksGot    int             `json:"kicks_got,omitempty"`
	ModesGiven  map[string]int  `json:"modes_given,omitempty"`
	ModesGot    map[string]int  `json:"modes_got,omitempty"`
	Topics      int             `json:"topics,omitempty"`
	Nickchanges int             `json:"nickchanges,omitempty"`
	LastSeen    event.Timestamp `json:"last_seen,omitempty"`
}

// Totals holds channel-wide event counts, including activity from
// ignored nicks.
type Totals struct {
	Messages    int `json:"messages"`
	Words       int `json:"words"`
	Actions     int `json:"actions"`
	Slaps       int `json:"slaps"`
	Joins       int `json:"joins"`
	Parts       int `json:"parts"`
	Quits       int `json:"quits"`
	Modes       int `json:"modes"`
	Topics      int `json:"topics"`
	Kicks       int `json:"kicks"`
	Nickchanges int `json:"nickchanges"`
}

// TopicInfo records a topic change: what was set, by whom, and when.
type TopicInfo struct {
	Text string          `json:"text"`
	Nick string          `json:"nick"`
	Time event.Timestamp `json:"time"`
}

// Tracker accumulates statistics from decoded events. It implements
// event.Sink and is meant to be fed by a format.Parser, one channel's
// transcripts per Tracker.
type Tracker struct {
	ignore  map[string]bool
	renames bool
	alias   map[string]string // lowercased nick -> canonical key
	nicks   map[string]*NickStats
	totals  Totals
	hours   [24]int
	topic   *TopicInfo
	first   event.Timestamp
	last    event.Timestamp
}

var _ event.Sink = (*Tracker)(nil)

// NewTracker creates an empty tracker.
func NewTracker(opts Options) *Tracker {
	t := &Tracker{
		ignore:  make(map[string]bool),
		renames: opts.TrackRenames,
		alias:   make(map[string]string),
		nicks:   make(map[string]*NickStats),
	}
	for _, n := range opts.IgnoreNicks {
		t.ignore[strings.ToLower(n)] = true
	}
	return t
}

// key resolves a nickname to its canonical map key, following any
// recorded rename back to the original identity.
func (t *Tracker) key(nick string) string {
	k := strings.ToLower(nick)
	if orig, ok := t.alias[k]; ok {
		return orig
	}
	return k
}

func (t *Tracker) ignored(nick string) bool {
	return t.ignore[t.key(nick)]
}

func (t *Tracker) get(ts event.Timestamp, nick string) *NickStats {
	k := t.key(nick)
	s, ok := t.nicks[k]
	if !ok {
		s = &NickStats{Nick: nick}
		t.nicks[k] = s
	}
	s.LastSeen = ts
	return s
}

func (t *Tracker) touch(ts event.Timestamp) {
	if t.first == "" {
		t.first = ts
	}
	t.last = ts
}

func (t *Tracker) Message(ts event.Timestamp, nick, text string) {
	words := len(strings.Fields(text))
	t.touch(ts)
	t.totals.Messages++
	t.totals.Words += words
	if h := ts.Hour(); h >= 0 {
		t.hours[h]++
	}
	if t.ignored(nick) {
		return
	}
	s := t.get(ts, nick)
	s.Lines++
	s.Words += words
}

func (t *Tracker) Action(ts event.Timestamp, nick, text string) {
	words := len(strings.Fields(text))
	t.touch(ts)
	t.totals.Actions++
	t.totals.Words += words
	if h := ts.Hour(); h >= 0 {
		t.hours[h]++
	}
	if t.ignored(nick) {
		return
	}
	s := t.get(ts, nick)
	s.Actions++
	s.Words += words
}

func (t *Tracker) Slap(ts event.Timestamp, nick, target string) {
	t.touch(ts)
	t.totals.Slaps++
	if !t.ignored(nick) {
		t.get(ts, nick).SlapsGiven++
	}
	if target != "" && !t.ignored(target) {
		t.get(ts, target).SlapsGot++
	}
}

func (t *Tracker) Nickchange(ts event.Timestamp, oldNick, newNick string) {
	t.touch(ts)
	t.totals.Nickchanges++
	if !t.ignored(oldNick) {
		t.get(ts, oldNick).Nickchanges++
	}
	if t.renames {
		// Record against the old nick's canonical key so rename chains
		// collapse to the original identity.
		t.alias[strings.ToLower(newNick)] = t.key(oldNick)
	}
}

func (t *Tracker) Join(ts event.Timestamp, nick string) {
	t.touch(ts)
	t.totals.Joins++
	if !t.ignored(nick) {
		t.get(ts, nick).Joins++
	}
}

func (t *Tracker) Part(ts event.Timestamp, nick string) {
	t.touch(ts)
	t.totals.Parts++
	if !t.ignored(nick) {
		t.get(ts, nick).Parts++
	}
}

func (t *Tracker) Quit(ts event.Timestamp, nick string) {
	t.touch(ts)
	t.totals.Quits++
	if !t.ignored(nick) {
		t.get(ts, nick).Quits++
	}
}

func (t *Tracker) Mode(ts event.Timestamp, nick, target, mode string) {
	t.touch(ts)
	t.totals.Modes++
	if !t.ignored(nick) {
		s := t.get(ts, nick)
		if s.ModesGiven == nil {
			s.ModesGiven = make(map[string]int)
		}
		s.ModesGiven[mode]++
	}
	if !t.ignored(target) {
		s := t.get(ts, target)
		if s.ModesGot == nil {
			s.ModesGot = make(map[string]int)
		}
		s.ModesGot[mode]++
	}
}

func (t *Tracker) Topic(ts event.Timestamp, nick, topic string) {
	t.touch(ts)
	t.totals.Topics++
	t.topic = &TopicInfo{Text: topic, Nick: nick, Time: ts}
	if !t.ignored(nick) {
		t.get(ts, nick).Topics++
	}
}

func (t *Tracker) Kick(ts event.Timestamp, kicker, kicked, text string) {
	t.touch(ts)
	t.totals.Kicks++
	if !t.ignored(kicker) {
		t.get(ts, kicker).KicksGiven++
	}
	if !t.ignored(kicked) {
		t.get(ts, kicked).KicksGot++
	}
}

// Nicks returns per-nick statistics sorted by message lines descending,
// ties broken by nick.
func (t *Tracker) Nicks() []*NickStats {
	out := make([]*NickStats, 0, len(t.nicks))
	for _, s := range t.nicks {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Lines != out[j].Lines {
			return out[i].Lines > out[j].Lines
		}
		return strings.ToLower(out[i].Nick) < strings.ToLower(out[j].Nick)
	})
	return out
}

// Totals returns the channel-wide counters.
func (t *Tracker) Totals() Totals {
	return t.totals
}

// Hours returns how many message and action lines fell in each hour of
// the day.
func (t *Tracker) Hours() [24]int {
	return t.hours
}

// LastTopic returns the most recent topic change, or nil if none was
// seen.
func (t *Tracker) LastTopic() *TopicInfo {
	return t.topic
}

// FirstSeen returns the timestamp of the first event observed.
func (t *Tracker) FirstSeen() event.Timestamp {
	return t.first
}

// LastSeen returns the timestamp of the last event observed.
func (t *Tracker) LastSeen() event.Timestamp {
	return t.last
}
