package format

import "fmt"

// ModeChange is one decoded channel-mode flag: a sign, a mode letter,
// and the nickname it applies to.
type ModeChange struct {
	Sign   byte // '+' or '-'
	Letter byte // 'o' or 'v'
	Target string
}

// Flag returns the signed flag string, e.g. "+o".
func (c ModeChange) Flag() string {
	return string([]byte{c.Sign, c.Letter})
}

// ExpandModeFlags decodes a compact flag string such as "+o-v" or "+oo"
// against an ordered target list, producing one ModeChange per mode
// letter. A sign character sets the sign for every letter after it until
// the next sign character; each letter consumes the next target in order.
// The flag string must begin with a sign, and there must be a target for
// every letter. Malformed input returns an error and no changes.
func ExpandModeFlags(flags string, targets []string) ([]ModeChange, error) {
	var changes []ModeChange
	var sign byte
	next := 0
	for i := 0; i < len(flags); i++ {
		switch c := flags[i]; c {
		case '+', '-':
			sign = c
		default:
			if sign == 0 {
				return nil, fmt.Errorf("mode flags %q do not start with a sign", flags)
			}
			if next >= len(targets) {
				return nil, fmt.Errorf("mode flags %q name more letters than targets", flags)
			}
			changes = append(changes, ModeChange{Sign: sign, Letter: c, Target: targets[next]})
			next++
		}
	}
	return changes, nil
}
