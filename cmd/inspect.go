package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/reviewlab/revminer/core"
	"github.com/reviewlab/revminer/internal/contract"
	"github.com/reviewlab/revminer/internal/report"
)

// inspectCmd summarizes a corpus without mining it.
var inspectCmd = &cobra.Command{
	Use:   "inspect [corpus-path]",
	Short: "Summarize the corpus layout without parsing documents.",
	Long: `Enumerate the chunk directories, review documents and patchset side-files
of a corpus and print their counts and total size.

Useful as a cheap sanity check before a long mining run: a corpus with zero
chunks or far fewer patchset side-files than expected usually means a broken
or partial export.

Examples:
  # Check a corpus before mining
  revminer inspect ./codereviews`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		stats, err := core.InspectCorpus(cfg.CorpusDir)
		if err != nil {
			contract.LogFatal("Cannot inspect corpus", err)
		}
		if err := report.PrintCorpusStats(os.Stdout, stats, cfg); err != nil {
			contract.LogFatal("Cannot print corpus stats", err)
		}
	},
}
