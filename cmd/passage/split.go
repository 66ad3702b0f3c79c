package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/storyproof/passage"
	"github.com/storyproof/passage/chapter"
)

var splitCmd = &cobra.Command{
	Use:   "split",
	Short: "Preview how a chapter splits into scenes",
	Long: `Shows the scene segmentation of a chapter: index, byte length, and a
short preview per scene. With --text the chapter file is split on
scene-break markers and blank-line runs; without it the codec-encoded
scene list is previewed as-is.`,
	RunE: runSplit,
}

var (
	splitChapter string
	splitText    bool
)

func init() {
	splitCmd.Flags().StringVar(&splitChapter, "chapter", "", "Chapter file: codec-encoded scene list, or plain text with --text (required)")
	splitCmd.Flags().BoolVar(&splitText, "text", false, "Treat the chapter file as a plain manuscript")
	splitCmd.MarkFlagRequired("chapter")
}

func runSplit(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(splitChapter)
	if err != nil {
		return err
	}

	var segments []passage.Segment
	if splitText {
		segments = chapter.Split(string(data))
	} else {
		segments, err = chapter.Decode(data, wire)
		if err != nil {
			return err
		}
	}
	logger.LogSplit(cmd.Context(), len(data), len(segments))

	if len(segments) == 0 {
		fmt.Println(dimStyle.Render("no scenes"))
		return nil
	}

	for _, seg := range segments {
		fmt.Printf("%3d  %6dB  %s\n", seg.Index, len(seg.Text), dimStyle.Render(preview(seg.Text, 60)))
	}

	return nil
}
