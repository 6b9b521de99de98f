package subtitle

import (
	"fmt"
	"io"
)

// deltaSource shifts each cue pulled from the wrapped source, keeping
// one cue in flight.
type deltaSource struct {
	src   CueSource
	delta Delta
}

func (s *deltaSource) Next() (*Cue, error) {
	c, err := s.src.Next()
	if err != nil {
		return nil, err
	}
	shifted, err := s.delta.Apply(*c)
	if err != nil {
		return nil, err
	}
	return &shifted, nil
}

// Convert reads a subtitle document from r in the input format, shifts
// every cue by delta and writes them to w in the output format. It
// returns the number of cues written. On a terminal parse error the
// cues already written stay in the output and the error is returned
// alongside their count; a write failure aborts immediately.
func Convert(w io.Writer, r io.Reader, in, out Format, delta Delta) (int, error) {
	var src CueSource
	switch in {
	case FormatSRT:
		src = NewSRTParser(r)
	case FormatVTT:
		p, err := NewVTTParser(r)
		if err != nil {
			return 0, err
		}
		src = p
	default:
		return 0, fmt.Errorf("unsupported input format %q", in)
	}

	if !delta.IsZero() {
		src = &deltaSource{src: src, delta: delta}
	}

	switch out {
	case FormatSRT:
		return WriteSRT(w, src)
	case FormatVTT:
		return WriteVTT(w, src)
	default:
		return 0, fmt.Errorf("unsupported output format %q", out)
	}
}
