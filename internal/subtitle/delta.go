package subtitle

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

type deltaOp int

const (
	deltaNone deltaOp = iota
	deltaAdd
	deltaSub
)

// Delta is a signed time shift applied uniformly to a cue's begin and
// end. The zero value leaves cues untouched.
type Delta struct {
	op deltaOp
	d  time.Duration
}

// NoDelta leaves cues untouched.
var NoDelta = Delta{}

// AddDelta shifts cues forward by d.
func AddDelta(d time.Duration) Delta { return Delta{op: deltaAdd, d: d} }

// SubDelta shifts cues backward by d.
func SubDelta(d time.Duration) Delta { return Delta{op: deltaSub, d: d} }

// IsZero reports whether the delta is a no-op.
func (dl Delta) IsZero() bool { return dl.op == deltaNone || dl.d == 0 }

func (dl Delta) String() string {
	switch dl.op {
	case deltaAdd:
		return "+" + dl.d.String()
	case deltaSub:
		return "-" + dl.d.String()
	default:
		return "0"
	}
}

// Apply returns a shifted copy of c. Shifting a cue before zero is an
// error wrapping ErrUnderflow, never a silent clamp.
func (dl Delta) Apply(c Cue) (Cue, error) {
	switch dl.op {
	case deltaAdd:
		c.Begin += dl.d
		c.End += dl.d
	case deltaSub:
		if c.Begin < dl.d {
			return Cue{}, fmt.Errorf(
				"%w: cue at %v shifted by -%v", ErrUnderflow, c.Begin, dl.d)
		}
		c.Begin -= dl.d
		c.End -= dl.d
	}
	return c, nil
}

// ParseDelta parses the command-line shift grammar: an optional leading
// sign, an optional "MM:" minute prefix, and seconds with an optional
// fractional part kept at millisecond resolution. The empty string and
// the literal "0" mean no shift; any other value must carry an explicit
// sign.
func ParseDelta(s string) (Delta, error) {
	if s == "" || s == "0" {
		return NoDelta, nil
	}

	op := deltaNone
	switch s[0] {
	case '+':
		op = deltaAdd
	case '-':
		op = deltaSub
	default:
		return NoDelta, fmt.Errorf("delta %q needs a leading + or - sign", s)
	}

	body := s[1:]
	var min int64
	sec := body
	if i := strings.IndexByte(body, ':'); i >= 0 {
		m, ok := parseTimeUnit(body[:i])
		if !ok {
			return NoDelta, fmt.Errorf("invalid minute part in delta %q", s)
		}
		min = m
		sec = body[i+1:]
	}

	secs, ms, err := parseSeconds(sec)
	if err != nil {
		return NoDelta, fmt.Errorf("invalid second part in delta %q", s)
	}

	d := time.Duration(min)*time.Minute +
		time.Duration(secs)*time.Second +
		time.Duration(ms)*time.Millisecond
	if d == 0 {
		return NoDelta, nil
	}
	return Delta{op: op, d: d}, nil
}

// parseSeconds splits "SS" or "SS.fff", truncating the fraction to
// millisecond resolution.
func parseSeconds(s string) (secs, ms int64, err error) {
	whole, frac, hasFrac := strings.Cut(s, ".")
	secs, ok := parseTimeUnit(whole)
	if !ok {
		return 0, 0, fmt.Errorf("invalid seconds %q", s)
	}
	if !hasFrac {
		return secs, 0, nil
	}
	if !isDigits(frac) {
		return 0, 0, fmt.Errorf("invalid fraction %q", s)
	}
	if len(frac) > 3 {
		frac = frac[:3]
	}
	for len(frac) < 3 {
		frac += "0"
	}
	ms, _ = strconv.ParseInt(frac, 10, 64)
	return secs, ms, nil
}

// parseTimeUnit parses a non-negative integer of any width.
func parseTimeUnit(s string) (int64, bool) {
	if !isDigits(s) {
		return 0, false
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
