package subtitle

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidData reports structurally malformed input.
	ErrInvalidData = errors.New("invalid subtitle data")
	// ErrUnexpectedEOF reports input that ends in the middle of a cue.
	ErrUnexpectedEOF = errors.New("unexpected end of subtitle stream")
	// ErrUnderflow reports a time shift that would move a cue before zero.
	ErrUnderflow = errors.New("time shift before zero")
)

// ParseError is a terminal parse failure carrying the offending raw
// line and its 1-based line number. It wraps ErrInvalidData or
// ErrUnexpectedEOF so callers can test the kind with errors.Is.
type ParseError struct {
	Line int
	Raw  string
	Msg  string
	Kind error
}

func (e *ParseError) Error() string {
	if e.Raw == "" {
		return fmt.Sprintf("%s (line %d)", e.Msg, e.Line)
	}
	return fmt.Sprintf("%s in %q (line %d)", e.Msg, e.Raw, e.Line)
}

func (e *ParseError) Unwrap() error { return e.Kind }

func invalidData(msg, raw string, line int) *ParseError {
	return &ParseError{Line: line, Raw: raw, Msg: msg, Kind: ErrInvalidData}
}

func unexpectedEOF(msg string, line int) *ParseError {
	return &ParseError{Line: line, Msg: msg, Kind: ErrUnexpectedEOF}
}
