package subtitle

import "time"

// Cue is one timed subtitle entry.
type Cue struct {
	// ID is the cue identifier, or "" when the source carried none.
	// Purely numeric identifiers are never stored; see RetainIdentifier.
	ID    string
	Begin time.Duration
	End   time.Duration
	Lines []string
}

// NewCue builds a cue from parsed parts. A reversed begin/end pair is
// swapped rather than rejected, so a cue always satisfies Begin <= End.
func NewCue(id string, begin, end time.Duration, lines []string) Cue {
	if begin > end {
		begin, end = end, begin
	}
	return Cue{ID: id, Begin: begin, End: end, Lines: lines}
}

// RetainIdentifier decides whether an identifier token is kept on a
// cue. A purely numeric token is a sequence ordinal, not a semantic
// id, and is dropped in both formats.
func RetainIdentifier(token string) string {
	if isDigits(token) {
		return ""
	}
	return token
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
