package subtitle

import (
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sliceSource feeds prepared cues to a serializer under test.
type sliceSource struct {
	cues []Cue
	i    int
}

func (s *sliceSource) Next() (*Cue, error) {
	if s.i >= len(s.cues) {
		return nil, io.EOF
	}
	c := s.cues[s.i]
	s.i++
	return &c, nil
}

// failWriter fails every write after the first n bytes were accepted.
type failWriter struct {
	budget int
}

func (w *failWriter) Write(p []byte) (int, error) {
	if len(p) > w.budget {
		return 0, errors.New("sink full")
	}
	w.budget -= len(p)
	return len(p), nil
}

func TestConvertVTTRoundTrip(t *testing.T) {
	doc := "WEBVTT\n\n00:00.000 --> 00:05.000\nHello World\n\n"

	var sb strings.Builder
	n, err := Convert(&sb, strings.NewReader(doc), FormatVTT, FormatVTT, NoDelta)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, doc, sb.String())
}

func TestConvertSRTToVTT(t *testing.T) {
	in := "1\n00:00:05,542 --> 00:00:07,792\nHello\nWorld\n\n"

	var sb strings.Builder
	n, err := Convert(&sb, strings.NewReader(in), FormatSRT, FormatVTT, NoDelta)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, "WEBVTT\n\n00:05.542 --> 00:07.792\nHello\nWorld\n\n", sb.String())
}

func TestConvertVTTToSRTWithDelta(t *testing.T) {
	in := "WEBVTT\n\nintro\n00:00.000 --> 00:05.000\nHello World\n\n"
	delta, err := ParseDelta("+1:36.125")
	require.NoError(t, err)

	var sb strings.Builder
	n, err := Convert(&sb, strings.NewReader(in), FormatVTT, FormatSRT, delta)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	// the retained identifier never reaches SRT output
	assert.Equal(t, "1\n00:01:36,125 --> 00:01:41,125\nHello World\n\n", sb.String())
}

func TestConvertKeepsWrittenCuesOnParseError(t *testing.T) {
	in := "1\n00:00:01,000 --> 00:00:02,000\ngood\n\nbroken line\n"

	var sb strings.Builder
	n, err := Convert(&sb, strings.NewReader(in), FormatSRT, FormatSRT, NoDelta)
	require.ErrorIs(t, err, ErrInvalidData)
	assert.Equal(t, 1, n)
	assert.Equal(t, "1\n00:00:01,000 --> 00:00:02,000\ngood\n\n", sb.String())

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 5, perr.Line)
	assert.Equal(t, "broken line", perr.Raw)
}

func TestConvertUnderflowAborts(t *testing.T) {
	in := "1\n00:00:05,000 --> 00:00:06,000\ntoo early\n\n"

	var sb strings.Builder
	n, err := Convert(&sb, strings.NewReader(in), FormatSRT, FormatVTT, SubDelta(10*time.Second))
	require.ErrorIs(t, err, ErrUnderflow)
	assert.Equal(t, 0, n)
	// header was already emitted before the first cue failed
	assert.Equal(t, "WEBVTT\n\n", sb.String())
}

func TestConvertWriteFailureAborts(t *testing.T) {
	in := "WEBVTT\n\n00:01.000 --> 00:02.000\none\n\n00:03.000 --> 00:04.000\ntwo\n\n"

	w := &failWriter{budget: len("WEBVTT\n\n") + len("00:01.000 --> 00:02.000\n") + len("one\n") + 1}
	n, err := Convert(w, strings.NewReader(in), FormatVTT, FormatVTT, NoDelta)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrInvalidData))
	assert.LessOrEqual(t, n, 1)
}

func TestConvertBadHeader(t *testing.T) {
	var sb strings.Builder
	_, err := Convert(&sb, strings.NewReader("not vtt\n"), FormatVTT, FormatSRT, NoDelta)
	require.ErrorIs(t, err, ErrInvalidData)
	assert.Empty(t, sb.String())
}
