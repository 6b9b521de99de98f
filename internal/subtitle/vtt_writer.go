package subtitle

import (
	"fmt"
	"io"
	"time"
)

// WriteVTT drains src into w as a WebVTT document and returns the
// number of cues written. The retained identifier is written on its
// own line when present. As with WriteSRT, the count stays valid when
// an error is returned.
func WriteVTT(w io.Writer, src CueSource) (int, error) {
	if _, err := io.WriteString(w, "WEBVTT\n\n"); err != nil {
		return 0, fmt.Errorf("write subtitle stream: %w", err)
	}

	n := 0
	for {
		c, err := src.Next()
		if err == io.EOF {
			return n, nil
		}
		if err != nil {
			return n, err
		}

		if c.ID != "" {
			if _, err := fmt.Fprintln(w, c.ID); err != nil {
				return n, fmt.Errorf("write subtitle stream: %w", err)
			}
		}
		if _, err := fmt.Fprintf(w, "%s --> %s\n",
			formatVTTTime(c.Begin), formatVTTTime(c.End)); err != nil {
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

// formatVTTTime renders MM:SS.mmm while the hour component is zero and
// HH:MM:SS.mmm otherwise.
func formatVTTTime(d time.Duration) string {
	h := int64(d / time.Hour)
	min := int64(d/time.Minute) % 60
	sec := int64(d/time.Second) % 60
	ms := int64(d/time.Millisecond) % 1000
	if h == 0 {
		return fmt.Sprintf("%02d:%02d.%03d", min, sec, ms)
	}
	return fmt.Sprintf("%02d:%02d:%02d.%03d", h, min, sec, ms)
}
