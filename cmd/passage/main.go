// Command passage is a diagnostic front end for the quote locator:
// locate a single quote, resolve a consistency report, or preview how
// a manuscript splits into scenes.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/storyproof/passage"
	"github.com/storyproof/passage/chapter"
	"github.com/storyproof/passage/codec"
)

var (
	// Global flags
	verbose   bool
	codecName string

	logger *passage.Logger
	wire   codec.Codec
)

// errNotFound maps a clean miss to exit code 1.
var errNotFound = errors.New("quote not found")

var rootCmd = &cobra.Command{
	Use:   "passage",
	Short: "Locate LLM-echoed quotes inside manuscript scenes",
	Long: `passage finds where a quotation, echoed back by an analysis model,
actually sits inside the scenes of a chapter. Matching runs in three
tiers: exact substring, whitespace-insensitive, and a fuzzy prefix
fallback for quotes whose tail has drifted.

Chapters are JSON scene lists by default; pass --text to read a plain
manuscript and split it into scenes first.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		logger = passage.NewTextLogger(level)

		c, ok := codec.ByName(codecName)
		if !ok {
			return fmt.Errorf("unknown codec %q (want json or go-json)", codecName)
		}
		wire = c

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&codecName, "codec", codec.Default.Name(), "Wire codec for JSON input and output")

	rootCmd.AddCommand(locateCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(splitCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errNotFound) {
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(2)
	}
}

// loadSegments reads a chapter file as a codec-encoded scene list, or
// as a plain manuscript to be split when plainText is set.
func loadSegments(path string, plainText bool) ([]passage.Segment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if plainText {
		return chapter.Split(string(data)), nil
	}

	return chapter.Decode(data, wire)
}
