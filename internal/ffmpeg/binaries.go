package ffmpeg

import (
	"fmt"
	"os"
	"os/exec"
	"sync"
)

// BinaryPaths holds the resolved ffmpeg and ffprobe executables.
type BinaryPaths struct {
	FFmpeg  string
	FFprobe string
}

var (
	ensureOnce sync.Once
	ensureErr  error
	ensurePath BinaryPaths
)

// Ensure resolves the binaries once per process: the
// SUBSHIFT_FFMPEG_PATH / SUBSHIFT_FFPROBE_PATH overrides first, then
// whatever is on PATH.
func Ensure() (BinaryPaths, error) {
	ensureOnce.Do(func() {
		ensurePath, ensureErr = ensure()
	})
	return ensurePath, ensureErr
}

func FFmpegPath() (string, error) {
	paths, err := Ensure()
	if err != nil {
		return "", err
	}
	return paths.FFmpeg, nil
}

func FFprobePath() (string, error) {
	paths, err := Ensure()
	if err != nil {
		return "", err
	}
	return paths.FFprobe, nil
}

func ensure() (BinaryPaths, error) {
	paths := BinaryPaths{
		FFmpeg:  os.Getenv("SUBSHIFT_FFMPEG_PATH"),
		FFprobe: os.Getenv("SUBSHIFT_FFPROBE_PATH"),
	}
	if paths.FFmpeg == "" {
		p, err := exec.LookPath("ffmpeg")
		if err != nil {
			return BinaryPaths{}, fmt.Errorf("ffmpeg not found on PATH: %w", err)
		}
		paths.FFmpeg = p
	}
	if paths.FFprobe == "" {
		p, err := exec.LookPath("ffprobe")
		if err != nil {
			return BinaryPaths{}, fmt.Errorf("ffprobe not found on PATH: %w", err)
		}
		paths.FFprobe = p
	}
	return paths, nil
}
