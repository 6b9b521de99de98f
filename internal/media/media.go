package media

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	ffmpeg "github.com/u2takey/ffmpeg-go"

	ffmpegbin "github.com/pvikhar/subshift/internal/ffmpeg"
)

// SubtitleStream is one text stream found inside a media container.
type SubtitleStream struct {
	Index    int    // position among the file's subtitle streams
	Codec    string // e.g. subrip, webvtt, ass
	Language string
	Title    string
}

// JSON output from ffprobe
type ffprobeOutput struct {
	Streams []struct {
		CodecType string `json:"codec_type"`
		CodecName string `json:"codec_name"`
		Tags      struct {
			Language string `json:"language"`
			Title    string `json:"title"`
		} `json:"tags"`
	} `json:"streams"`
}

// ProbeSubtitleStreams lists the subtitle streams embedded in a media
// file, in container order.
func ProbeSubtitleStreams(path string) ([]SubtitleStream, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("file not found: %s", path)
	}

	ffprobePath, err := ffmpegbin.FFprobePath()
	if err != nil {
		return nil, err
	}

	cmd := exec.Command(ffprobePath,
		"-v", "quiet",
		"-print_format", "json",
		"-show_streams",
		path,
	)

	var out bytes.Buffer
	cmd.Stdout = &out

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("ffprobe failed: %w", err)
	}

	var probe ffprobeOutput
	if err := json.Unmarshal(out.Bytes(), &probe); err != nil {
		return nil, fmt.Errorf("failed to parse ffprobe output: %w", err)
	}

	var streams []SubtitleStream
	for _, s := range probe.Streams {
		if s.CodecType != "subtitle" {
			continue
		}
		streams = append(streams, SubtitleStream{
			Index:    len(streams),
			Codec:    s.CodecName,
			Language: s.Tags.Language,
			Title:    s.Tags.Title,
		})
	}
	return streams, nil
}

// ExtractSubtitle dumps one embedded subtitle stream to an SRT file.
// streamIndex counts subtitle streams only, matching ffmpeg's 0:s:N
// selector.
func ExtractSubtitle(
	ctx context.Context,
	mediaPath, outputPath string,
	streamIndex int,
) error {
	if _, err := os.Stat(mediaPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", mediaPath)
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	ffmpegPath, err := ffmpegbin.FFmpegPath()
	if err != nil {
		return err
	}

	kwargs := ffmpeg.KwArgs{
		"map": fmt.Sprintf("0:s:%d", streamIndex),
		"c:s": "srt",
		"y":   "",
	}

	err = ffmpeg.Input(mediaPath).
		Output(outputPath, kwargs).
		OverWriteOutput().
		SetFfmpegPath(ffmpegPath).
		Run()
	if err != nil {
		return fmt.Errorf("subtitle extraction failed: %w", err)
	}

	return nil
}

// IsVideoFile checks the extension against common video containers.
func IsVideoFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	videoExts := map[string]bool{
		".mp4":  true,
		".mkv":  true,
		".avi":  true,
		".mov":  true,
		".wmv":  true,
		".flv":  true,
		".webm": true,
		".m4v":  true,
		".mpeg": true,
		".mpg":  true,
		".ts":   true,
	}
	return videoExts[ext]
}
