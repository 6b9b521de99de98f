package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pvikhar/subshift/internal/media"
	"github.com/pvikhar/subshift/internal/subtitle"
)

var extractCmd = &cobra.Command{
	Use:   "extract [media_file]",
	Short: "Extract an embedded subtitle track from a media file",
	Long: `Extract a subtitle stream from a video container and convert it.

The selected track is dumped with ffmpeg to SRT and then run through
the normal conversion pipeline, so --to and --delta behave exactly as
for convert. Requires ffmpeg and ffprobe on PATH (or the
SUBSHIFT_FFMPEG_PATH / SUBSHIFT_FFPROBE_PATH overrides).

Examples:
  subshift extract movie.mkv
  subshift extract movie.mkv --list
  subshift extract movie.mkv --track 1 -o movie.vtt
  subshift extract movie.mkv -t srt -d +0.750 -o shifted.srt`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().
		Int("track", 0, "Subtitle track number (0-based, in stream order)")
	extractCmd.Flags().
		Bool("list", false, "List subtitle tracks and exit")
	extractCmd.Flags().
		StringP("to", "t", "", "Output format (srt, vtt); inferred from the output extension when omitted")
	extractCmd.Flags().
		StringP("delta", "d", "", "Time shift to apply, e.g. +2.5 or -1:36.125")
}

func runExtract(cmd *cobra.Command, args []string) error {
	mediaPath := args[0]

	if _, err := os.Stat(mediaPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", mediaPath)
	}
	if !media.IsVideoFile(mediaPath) {
		return fmt.Errorf(
			"unsupported file type: %s (expected a video container)",
			filepath.Ext(mediaPath),
		)
	}

	streams, err := media.ProbeSubtitleStreams(mediaPath)
	if err != nil {
		return err
	}

	if list, _ := cmd.Flags().GetBool("list"); list {
		if len(streams) == 0 {
			fmt.Println("no subtitle tracks")
			return nil
		}
		for _, s := range streams {
			fmt.Printf("%d: %s %s %s\n", s.Index, s.Codec, s.Language, s.Title)
		}
		return nil
	}

	if len(streams) == 0 {
		return fmt.Errorf("no subtitle tracks in %s", mediaPath)
	}
	track, _ := cmd.Flags().GetInt("track")
	if track < 0 || track >= len(streams) {
		return fmt.Errorf("track %d out of range (0-%d)", track, len(streams)-1)
	}

	toStr, _ := cmd.Flags().GetString("to")
	deltaStr, _ := cmd.Flags().GetString("delta")
	if deltaStr == "" {
		deltaStr = cfg.Delta
	}
	outputPath, _ := cmd.Flags().GetString("output")
	if outputPath == "" {
		name := toStr
		if name == "" {
			name = cfg.Format
		}
		outFormat, err := subtitle.ParseFormat(name)
		if err != nil {
			return err
		}
		base := strings.TrimSuffix(mediaPath, filepath.Ext(mediaPath))
		outputPath = base + outFormat.Extension()
	}

	outFormat, err := resolveFormat(toStr, outputPath, "output")
	if err != nil {
		return err
	}
	delta, err := subtitle.ParseDelta(deltaStr)
	if err != nil {
		return err
	}

	tmpDir, err := os.MkdirTemp("", "subshift-")
	if err != nil {
		return err
	}
	defer func() {
		_ = os.RemoveAll(tmpDir)
	}()
	trackPath := filepath.Join(tmpDir, "track.srt")

	logger.Infow("Extracting subtitle track",
		"media", mediaPath,
		"track", track,
		"codec", streams[track].Codec,
		"output", outputPath,
	)

	if err := media.ExtractSubtitle(cmd.Context(), mediaPath, trackPath, track); err != nil {
		return err
	}

	in, closeIn, err := openInput(trackPath)
	if err != nil {
		return err
	}
	defer func() {
		_ = closeIn()
	}()

	out, closeOut, err := openOutput(outputPath)
	if err != nil {
		return err
	}

	n, err := subtitle.Convert(out, in, subtitle.FormatSRT, outFormat, delta)
	if cerr := closeOut(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("conversion failed after %d cues: %w", n, err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Subtitle track extracted: %s (%d cues)\n", absOutput, n)
	return nil
}
