package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/storyproof/passage"
)

var locateCmd = &cobra.Command{
	Use:   "locate",
	Short: "Locate one quote inside a chapter",
	Long: `Loads a chapter, locates the quote, and prints the match with the
located span highlighted in its scene. Exit code 1 means the quote was
not found at any tier.

Example:
  passage locate --chapter ch03.json --quote "counted the coins"
  passage locate --chapter draft.txt --text --quote "counted the coins" --json-out`,
	RunE: runLocate,
}

var (
	locateChapter string
	locateQuote   string
	locateText    bool
	locateJSON    bool
)

func init() {
	locateCmd.Flags().StringVar(&locateChapter, "chapter", "", "Chapter file: codec-encoded scene list, or plain text with --text (required)")
	locateCmd.Flags().StringVar(&locateQuote, "quote", "", "Quote to locate (required)")
	locateCmd.Flags().BoolVar(&locateText, "text", false, "Treat the chapter file as a plain manuscript")
	locateCmd.Flags().BoolVar(&locateJSON, "json-out", false, "Print the match as JSON")
	locateCmd.MarkFlagRequired("chapter")
	locateCmd.MarkFlagRequired("quote")
}

func runLocate(cmd *cobra.Command, args []string) error {
	segments, err := loadSegments(locateChapter, locateText)
	if err != nil {
		return err
	}

	locator := passage.New(passage.WithLogger(logger))

	m, err := locator.Locate(cmd.Context(), segments, locateQuote)
	if err != nil {
		return err
	}

	if locateJSON {
		out, err := wire.Marshal(m)
		if err != nil {
			return err
		}
		fmt.Println(string(out))

		if !m.Found {
			return errNotFound
		}
		return nil
	}

	if !m.Found {
		fmt.Println(dimStyle.Render("quote not found in any scene"))
		return errNotFound
	}

	fmt.Printf("%s match in scene %d, bytes %d-%d\n", m.Tier, m.SegmentIndex, m.Start, m.End)
	fmt.Println(renderExcerpt(segments[m.SegmentIndex].Text, m.Start, m.End))

	return nil
}
