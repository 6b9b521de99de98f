package subtitle

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// timecodeSep separates the begin and end timestamps on an SRT
// timecode line. WebVTT tolerates surrounding whitespace variations,
// SRT does not.
const timecodeSep = " --> "

// srtState tracks where the parser is inside a cue block, making the
// sequencing rules explicit instead of inferring them from nullable
// fields.
type srtState int

const (
	srtAwaitID srtState = iota
	srtAwaitTimecode
	srtAwaitText
)

// SRTParser reads SubRip cues one at a time from a byte stream. A new
// parser must be constructed to read the stream again.
type SRTParser struct {
	lines *lineReader
	err   error
}

func NewSRTParser(r io.Reader) *SRTParser {
	return &SRTParser{lines: newLineReader(r)}
}

// Next returns the following cue. io.EOF signals a clean end of the
// document. Any other error is terminal and sticky: the parser yields
// no further cues once it has failed.
func (p *SRTParser) Next() (*Cue, error) {
	if p.err != nil {
		return nil, p.err
	}
	c, err := p.parseCue()
	if err != nil {
		p.err = err
		return nil, err
	}
	return c, nil
}

func (p *SRTParser) parseCue() (*Cue, error) {
	state := srtAwaitID
	var begin, end time.Duration
	var text []string

	for {
		line, err := p.lines.next()
		if err == io.EOF {
			switch state {
			case srtAwaitID:
				return nil, io.EOF
			case srtAwaitTimecode:
				return nil, unexpectedEOF("missing timecode line", p.lines.line)
			default:
				// end of stream closes the final cue
				c := NewCue("", begin, end, text)
				return &c, nil
			}
		}
		if err != nil {
			return nil, fmt.Errorf("read subtitle stream: %w", err)
		}

		switch state {
		case srtAwaitID:
			if line == "" {
				continue
			}
			if !isDigits(line) {
				return nil, invalidData("unexpected line, want cue number", line, p.lines.line)
			}
			// the ordinal value is never stored; output renumbers
			state = srtAwaitTimecode

		case srtAwaitTimecode:
			begin, end, err = parseSRTTimecode(line, p.lines.line)
			if err != nil {
				return nil, err
			}
			state = srtAwaitText

		case srtAwaitText:
			if line == "" {
				c := NewCue("", begin, end, text)
				return &c, nil
			}
			text = append(text, line)
		}
	}
}

func parseSRTTimecode(line string, n int) (begin, end time.Duration, err error) {
	left, right, ok := strings.Cut(line, timecodeSep)
	if !ok {
		return 0, 0, invalidData("invalid timecode line", line, n)
	}
	if begin, err = parseSRTTimestamp(strings.TrimSpace(left), line, n); err != nil {
		return 0, 0, err
	}
	if end, err = parseSRTTimestamp(strings.TrimSpace(right), line, n); err != nil {
		return 0, 0, err
	}
	return begin, end, nil
}

// parseSRTTimestamp parses H:MM:SS,mmm. Hour, minute and second take
// any width; milliseconds are exactly three digits.
func parseSRTTimestamp(s, raw string, n int) (time.Duration, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return 0, invalidData("invalid timestamp syntax", raw, n)
	}
	secPart, msPart, ok := strings.Cut(parts[2], ",")
	if !ok {
		return 0, invalidData("invalid timestamp syntax (second and millisecond part)", raw, n)
	}

	h, okH := parseTimeUnit(parts[0])
	min, okM := parseTimeUnit(parts[1])
	sec, okS := parseTimeUnit(secPart)
	if !okH || !okM || !okS {
		return 0, invalidData("invalid integer in timestamp", raw, n)
	}
	if len(msPart) != 3 || !isDigits(msPart) {
		return 0, invalidData("milliseconds must be exactly three digits", raw, n)
	}
	ms, _ := parseTimeUnit(msPart)

	return time.Duration(h)*time.Hour +
		time.Duration(min)*time.Minute +
		time.Duration(sec)*time.Second +
		time.Duration(ms)*time.Millisecond, nil
}
