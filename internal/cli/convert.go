package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pvikhar/subshift/internal/subtitle"
)

var convertCmd = &cobra.Command{
	Use:   "convert [input_file]",
	Short: "Convert a subtitle file between SRT and WebVTT",
	Long: `Convert a subtitle document between SubRip and WebVTT.

Input and output default to stdin and stdout; "-" selects them
explicitly. Formats are inferred from file extensions and can be
forced with --from/--to. A time shift is applied with --delta: the
value needs an explicit sign, an optional minute prefix and seconds
with an optional fraction.

Examples:
  subshift convert movie.srt -o movie.vtt
  subshift convert movie.vtt -o movie.srt --delta +1:36.125
  cat in.srt | subshift convert --from srt --to vtt > out.vtt
  subshift convert episode.srt -o fixed.srt -d -2.5`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().
		StringP("from", "f", "", "Input format (srt, vtt); inferred from the input extension when omitted")
	convertCmd.Flags().
		StringP("to", "t", "", "Output format (srt, vtt); inferred from the output extension when omitted")
	convertCmd.Flags().
		StringP("delta", "d", "", "Time shift to apply, e.g. +2.5 or -1:36.125")
}

func runConvert(cmd *cobra.Command, args []string) error {
	inputPath := ""
	if len(args) == 1 && args[0] != "-" {
		inputPath = args[0]
	}
	outputPath, _ := cmd.Flags().GetString("output")
	if outputPath == "-" {
		outputPath = ""
	}

	fromStr, _ := cmd.Flags().GetString("from")
	toStr, _ := cmd.Flags().GetString("to")
	deltaStr, _ := cmd.Flags().GetString("delta")
	if deltaStr == "" {
		deltaStr = cfg.Delta
	}
	if toStr == "" && outputPath == "" {
		toStr = cfg.Format
	}

	inFormat, err := resolveFormat(fromStr, inputPath, "input")
	if err != nil {
		return err
	}
	outFormat, err := resolveFormat(toStr, outputPath, "output")
	if err != nil {
		return err
	}

	delta, err := subtitle.ParseDelta(deltaStr)
	if err != nil {
		return err
	}

	in, closeIn, err := openInput(inputPath)
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

	logger.Infow("Converting subtitles",
		"input", displayPath(inputPath),
		"output", displayPath(outputPath),
		"from", inFormat,
		"to", outFormat,
		"delta", delta.String(),
	)

	n, err := subtitle.Convert(out, in, inFormat, outFormat, delta)
	if cerr := closeOut(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("conversion failed after %d cues: %w", n, err)
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "%d cues written\n", n)
	return nil
}

func resolveFormat(flag, path, role string) (subtitle.Format, error) {
	if flag != "" {
		return subtitle.ParseFormat(flag)
	}
	if path != "" {
		return subtitle.FormatFromExtension(path)
	}
	return "", fmt.Errorf(
		"need a format for the %s: pass --from/--to or use a file path with a known extension",
		role,
	)
}

func openInput(path string) (io.Reader, func() error, error) {
	if path == "" {
		return os.Stdin, func() error { return nil }, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

func openOutput(path string) (io.Writer, func() error, error) {
	if path == "" {
		bw := bufio.NewWriter(os.Stdout)
		return bw, bw.Flush, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	bw := bufio.NewWriter(f)
	cleanup := func() error {
		if err := bw.Flush(); err != nil {
			_ = f.Close()
			return err
		}
		return f.Close()
	}
	return bw, cleanup, nil
}

func displayPath(path string) string {
	if path == "" {
		return "-"
	}
	return path
}
