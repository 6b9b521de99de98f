// Package subtitle converts between SubRip and WebVTT cue lists,
// optionally shifting every cue in time. Parsing, shifting and writing
// form a pull pipeline with a single cue in flight, so memory use does
// not grow with document length.
package subtitle

// CueSource yields cues one at a time. A clean end of the sequence is
// signalled with io.EOF; any other error is terminal and the source
// yields no further cues after returning it.
type CueSource interface {
	Next() (*Cue, error)
}
