package subtitle

import (
	"fmt"
	"io"
	"time"
)

// WriteSRT drains src into w as a SubRip document and returns the
// number of cues written. Cues are renumbered 1..N on output; a stored
// identifier never influences the numbering. The count stays valid
// when an error is returned: cues written before the failure remain in
// the output.
func WriteSRT(w io.Writer, src CueSource) (int, error) {
	n := 0
	for {
		c, err := src.Next()
		if err == io.EOF {
			return n, nil
		}
		if err != nil {
			return n, err
		}

		if _, err := fmt.Fprintf(w, "%d\n%s --> %s\n",
			n+1, formatSRTTime(c.Begin), formatSRTTime(c.End)); err != nil {
			return n, fmt.Errorf("write subtitle stream: %w", err)
		}
		for _, l := range c.Lines {
			if _, err := fmt.Fprintln(w, l); err != nil {
				return n, fmt.Errorf("write subtitle stream: %w", err)
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return n, fmt.Errorf("write subtitle stream: %w", err)
		}
		n++
	}
}

// formatSRTTime renders HH:MM:SS,mmm. The hour field is always
// present, zero-padded to two digits and unbounded beyond that.
func formatSRTTime(d time.Duration) string {
	return fmt.Sprintf("%02d:%02d:%02d,%03d",
		int64(d/time.Hour),
		int64(d/time.Minute)%60,
		int64(d/time.Second)%60,
		int64(d/time.Millisecond)%1000)
}
