package cli

import (
	"github.com/spf13/cobra"

	"github.com/pvikhar/subshift/internal/config"
	"github.com/pvikhar/subshift/internal/logging"
)

var (
	verbose bool
	cfgPath string
	cfg     *config.Config
	logger  *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "subshift",
	Short: "Convert subtitles between SRT and WebVTT with a time shift",
	Long: `Subshift converts subtitle files between the SubRip (.srt) and
WebVTT (.vtt) formats, optionally shifting every cue by a time delta.

Documents are streamed one cue at a time, so arbitrarily large files
convert in constant memory.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return err
		}
		logger = logging.NewLogger(verbose || cfg.Verbose)
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		StringP("output", "o", "", "Output file path (default stdout)")
	rootCmd.PersistentFlags().
		StringVar(&cfgPath, "config", "", "Config file (default subshift.yaml in . or ~/.config/subshift)")
}
