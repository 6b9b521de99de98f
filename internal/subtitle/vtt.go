package subtitle

import (
	"fmt"
	"io"
	"strings"
	"time"
)

type vttState int

const (
	vttScan vttState = iota
	vttAwaitTimecode
	vttAwaitText
)

// VTTParser reads WebVTT cues one at a time from a byte stream.
// REGION, NOTE and STYLE blocks are consumed and discarded, never
// interpreted.
type VTTParser struct {
	lines *lineReader
	err   error
}

// NewVTTParser validates the WEBVTT header line before any cue is
// read.
func NewVTTParser(r io.Reader) (*VTTParser, error) {
	lr := newLineReader(r)
	line, err := lr.next()
	if err == io.EOF {
		return nil, unexpectedEOF("missing WEBVTT header", 1)
	}
	if err != nil {
		return nil, fmt.Errorf("read subtitle stream: %w", err)
	}
	if !strings.HasPrefix(line, "WEBVTT") {
		return nil, invalidData("invalid WebVTT header", line, lr.line)
	}
	return &VTTParser{lines: lr}, nil
}

// Next returns the following cue. io.EOF signals a clean end of the
// document; any other error is terminal and sticky.
func (p *VTTParser) Next() (*Cue, error) {
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

func (p *VTTParser) parseCue() (*Cue, error) {
	state := vttScan
	id := ""
	var begin, end time.Duration
	var text []string

	for {
		line, err := p.lines.next()
		if err == io.EOF {
			switch state {
			case vttScan:
				return nil, io.EOF
			case vttAwaitTimecode:
				return nil, unexpectedEOF("missing timecode after cue identifier", p.lines.line)
			default:
				c := NewCue(id, begin, end, text)
				return &c, nil
			}
		}
		if err != nil {
			return nil, fmt.Errorf("read subtitle stream: %w", err)
		}

		switch state {
		case vttScan:
			switch {
			case line == "":
				continue
			case isMetadataBlock(line):
				if err := p.skipBlock(); err != nil {
					return nil, err
				}
			case strings.Contains(line, "-->"):
				if begin, end, err = parseVTTTimecode(line, p.lines.line); err != nil {
					return nil, err
				}
				state = vttAwaitText
			default:
				id = RetainIdentifier(line)
				state = vttAwaitTimecode
			}

		case vttAwaitTimecode:
			if !strings.Contains(line, "-->") {
				return nil, invalidData("a lone text line without a timecode", line, p.lines.line)
			}
			if begin, end, err = parseVTTTimecode(line, p.lines.line); err != nil {
				return nil, err
			}
			state = vttAwaitText

		case vttAwaitText:
			if line == "" {
				c := NewCue(id, begin, end, text)
				return &c, nil
			}
			text = append(text, line)
		}
	}
}

// skipBlock discards lines until the next blank line or end of stream.
func (p *VTTParser) skipBlock() error {
	for {
		line, err := p.lines.next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read subtitle stream: %w", err)
		}
		if line == "" {
			return nil
		}
	}
}

func isMetadataBlock(line string) bool {
	return strings.HasPrefix(line, "REGION") ||
		strings.HasPrefix(line, "NOTE") ||
		strings.HasPrefix(line, "STYLE")
}

// parseVTTTimecode parses "T --> T [cue-settings]". Anything after the
// end timestamp, such as "line:63% position:72%", is parsed past and
// ignored.
func parseVTTTimecode(line string, n int) (begin, end time.Duration, err error) {
	left, rest, ok := strings.Cut(line, "-->")
	if !ok {
		return 0, 0, invalidData("invalid timecode line", line, n)
	}
	if begin, err = parseVTTTimestamp(strings.TrimSpace(left), line, n); err != nil {
		return 0, 0, err
	}
	rest = strings.TrimSpace(rest)
	if i := strings.IndexAny(rest, " \t"); i >= 0 {
		rest = rest[:i]
	}
	if end, err = parseVTTTimestamp(rest, line, n); err != nil {
		return 0, 0, err
	}
	return begin, end, nil
}

// parseVTTTimestamp parses MM:SS.mmm or HH:MM:SS.mmm. The hour segment
// is optional and of any width; milliseconds are exactly three digits.
func parseVTTTimestamp(s, raw string, n int) (time.Duration, error) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, invalidData("invalid timestamp syntax", raw, n)
	}
	var h int64
	if len(parts) == 3 {
		v, ok := parseTimeUnit(parts[0])
		if !ok {
			return 0, invalidData("invalid hour in timestamp", raw, n)
		}
		h = v
		parts = parts[1:]
	}
	secPart, msPart, ok := strings.Cut(parts[1], ".")
	if !ok {
		return 0, invalidData("invalid timestamp syntax (second and millisecond part)", raw, n)
	}
	min, okM := parseTimeUnit(parts[0])
	sec, okS := parseTimeUnit(secPart)
	if !okM || !okS {
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
