package subtitle

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format selects which parser/serializer pair is used.
type Format string

const (
	FormatSRT Format = "srt"
	FormatVTT Format = "vtt"
)

// ParseFormat maps a flag value to a format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "srt", "subrip":
		return FormatSRT, nil
	case "vtt", "webvtt":
		return FormatVTT, nil
	default:
		return "", fmt.Errorf("unknown subtitle format %q (want srt or vtt)", s)
	}
}

// FormatFromExtension guesses the format from a file name.
func FormatFromExtension(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".srt":
		return FormatSRT, nil
	case ".vtt", ".webvtt":
		return FormatVTT, nil
	default:
		return "", fmt.Errorf("unsupported subtitle extension %q", filepath.Ext(path))
	}
}

// Extension is the canonical file extension for a format.
func (f Format) Extension() string {
	if f == FormatVTT {
		return ".vtt"
	}
	return ".srt"
}
