package report

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/pretty"

	"github.com/weestat/weestat/internal/event"
	"github.com/weestat/weestat/internal/stats"
)

// jsonReport is the document shape of the JSON report.
type jsonReport struct {
	Channel   string             `json:"channel,omitempty"`
	Files     int                `json:"files"`
	Lines     int                `json:"lines"`
	Unmatched int                `json:"unmatched"`
	FirstSeen event.Timestamp    `json:"first_seen,omitempty"`
	LastSeen  event.Timestamp    `json:"last_seen,omitempty"`
	Totals    stats.Totals       `json:"totals"`
	Hours     [24]int            `json:"hours"`
	Nicks     []*stats.NickStats `json:"nicks"`
	LastTopic *stats.TopicInfo   `json:"last_topic,omitempty"`
}

// JSON renders the report as indented JSON. Unlike the text report it
// always includes every tracked nick; Summary.TopN only affects text
// rankings.
func JSON(t *stats.Tracker, sum Summary) ([]byte, error) {
	nicks := t.Nicks()
	if nicks == nil {
		nicks = []*stats.NickStats{}
	}

	doc := jsonReport{
		Channel:   sum.Channel,
		Files:     sum.Files,
		Lines:     sum.Lines,
		Unmatched: sum.Unmatched,
		FirstSeen: t.FirstSeen(),
		LastSeen:  t.LastSeen(),
		Totals:    t.Totals(),
		Hours:     t.Hours(),
		Nicks:     nicks,
		LastTopic: t.LastTopic(),
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode report: %w", err)
	}
	return pretty.Pretty(data), nil
}
