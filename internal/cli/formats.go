package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List supported subtitle formats",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("srt  SubRip  (.srt)           numeric sequence ids, comma milliseconds")
		fmt.Println("vtt  WebVTT  (.vtt, .webvtt)  optional cue identifiers, dot milliseconds")
	},
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}
