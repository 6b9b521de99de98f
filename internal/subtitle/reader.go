package subtitle

import (
	"bufio"
	"io"
	"strings"
)

// lineReader yields text lines one at a time and keeps a running
// 1-based line counter for diagnostics. LF and CRLF endings are both
// accepted, and a single leading UTF-8 byte-order mark is consumed
// without ever appearing as content.
type lineReader struct {
	r    *bufio.Reader
	line int
	eof  bool
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{r: bufio.NewReader(r)}
}

// next returns the following line without its terminator. io.EOF
// signals a clean end of stream; a final line without a terminator is
// still returned before that.
func (lr *lineReader) next() (string, error) {
	if lr.eof {
		return "", io.EOF
	}
	s, err := lr.r.ReadString('\n')
	if err == io.EOF {
		lr.eof = true
		if s == "" {
			return "", io.EOF
		}
	} else if err != nil {
		return "", err
	}
	s = strings.TrimSuffix(s, "\n")
	s = strings.TrimSuffix(s, "\r")
	lr.line++
	if lr.line == 1 {
		s = strings.TrimPrefix(s, "\uFEFF")
	}
	return s, nil
}
