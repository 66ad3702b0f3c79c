package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/storyproof/passage/report"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve a consistency report against a chapter",
	Long: `Loads a chapter and an analysis report, locates every issue's quote,
and prints one line per issue with severity, location, and confidence.

Example:
  passage resolve --chapter ch03.json --report findings.json`,
	RunE: runResolve,
}

var (
	resolveChapter string
	resolveReport  string
	resolveText    bool
	resolveJSON    bool
)

func init() {
	resolveCmd.Flags().StringVar(&resolveChapter, "chapter", "", "Chapter file: codec-encoded scene list, or plain text with --text (required)")
	resolveCmd.Flags().StringVar(&resolveReport, "report", "", "Report file with the issues to resolve (required)")
	resolveCmd.Flags().BoolVar(&resolveText, "text", false, "Treat the chapter file as a plain manuscript")
	resolveCmd.Flags().BoolVar(&resolveJSON, "json-out", false, "Print the resolution as JSON")
	resolveCmd.MarkFlagRequired("chapter")
	resolveCmd.MarkFlagRequired("report")
}

func runResolve(cmd *cobra.Command, args []string) error {
	segments, err := loadSegments(resolveChapter, resolveText)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(resolveReport)
	if err != nil {
		return err
	}

	var rep report.Report
	if err := wire.Unmarshal(data, &rep); err != nil {
		return fmt.Errorf("parse report: %w", err)
	}

	resolver := report.NewResolver(report.WithLogger(logger.WithChapter(rep.Chapter)))

	res, err := resolver.Resolve(cmd.Context(), segments, rep)
	if err != nil {
		return err
	}

	if resolveJSON {
		out, err := wire.Marshal(res)
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	for _, ri := range res.Issues {
		sev := severityStyle(ri.Severity).Render(fmt.Sprintf("%-7s", ri.Severity))

		loc := dimStyle.Render(fmt.Sprintf("%-19s", "not found"))
		if ri.Match.Found {
			loc = fmt.Sprintf("scene %-3d conf %.2f", ri.Match.SegmentIndex, ri.Confidence)
		}

		fmt.Printf("%s  %s  %s\n", sev, loc, ri.Summary)
	}
	fmt.Printf("located %d/%d\n", res.Located, len(res.Issues))

	return nil
}
