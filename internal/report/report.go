// Package report renders run summaries and corpus statistics for the CLI.
package report

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"golang.org/x/term"

	"github.com/reviewlab/revminer/internal/contract"
	"github.com/reviewlab/revminer/schema"
)

// maxRootWidth caps how much of the corpus root path is shown in tables.
const maxRootWidth = 70

// terminalWidth returns the effective terminal width, honoring the config
// override and falling back to a conservative default for CI.
func terminalWidth(cfg *contract.Config) int {
	if cfg.Width > 0 {
		return cfg.Width
	}
	detected, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || detected <= 0 {
		return 80
	}
	return detected
}

// truncateLeft shortens a path to maxWidth with an ellipsis prefix.
func truncateLeft(path string, maxWidth int) string {
	runes := []rune(path)
	if len(runes) > maxWidth && maxWidth > 3 {
		return "..." + string(runes[len(runes)-maxWidth+3:])
	}
	return path
}

// PrintRunSummary writes the per-table row counts of a completed run.
func PrintRunSummary(w io.Writer, summary schema.RunSummary, cfg *contract.Config) error {
	table := tablewriter.NewWriter(w)
	defer func() { _ = table.Close() }()

	table.Header([]string{"Table", "Rows"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	data := [][]string{
		{"reviews", formatCount(summary.Reviews)},
		{"reviewers", formatCount(summary.Reviewers)},
		{"patchsets", formatCount(summary.Patchsets)},
		{"patchset_files", formatCount(summary.PatchsetFiles)},
		{"comments", formatCount(summary.Comments)},
		{"messages", formatCount(summary.Messages)},
		{"developers", formatCount(summary.Developers)},
		{"participants", formatCount(summary.Participants)},
		{"contributors", formatCount(summary.Contributors)},
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if summary.MissingPatchsets > 0 {
		yellow := fmt.Sprint
		if cfg.UseColors {
			yellow = color.New(color.FgYellow).SprintFunc()
		}
		skipped := fmt.Sprintf("Skipped %d missing patchset side-files", summary.MissingPatchsets)
		if _, err := fmt.Fprintln(w, yellow(skipped)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "Mining completed in %v\n", time.Duration(summary.DurationMs)*time.Millisecond)
	return err
}

// PrintCorpusStats writes the layout summary produced by inspection.
func PrintCorpusStats(w io.Writer, stats schema.CorpusStats, cfg *contract.Config) error {
	table := tablewriter.NewWriter(w)
	defer func() { _ = table.Close() }()

	rootWidth := min(terminalWidth(cfg)-20, maxRootWidth)

	table.Header([]string{"Corpus", "Chunks", "Reviews", "Patchsets", "Size (bytes)"})
	data := [][]string{{
		truncateLeft(stats.Root, rootWidth),
		strconv.Itoa(stats.Chunks),
		strconv.Itoa(stats.ReviewDocs),
		strconv.Itoa(stats.PatchsetDocs),
		formatCount(stats.TotalSizeByte),
	}}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

func formatCount(v int64) string {
	return strconv.FormatInt(v, 10)
}
