package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/reviewlab/revminer/core"
	"github.com/reviewlab/revminer/internal/contract"
	"github.com/reviewlab/revminer/internal/report"
	"github.com/reviewlab/revminer/internal/tabsink"
)

// mineCmd runs the corpus-to-table ETL pipeline.
var mineCmd = &cobra.Command{
	Use:   "mine [corpus-path]",
	Short: "Mine the review corpus into nine normalized tables.",
	Long: `Walk every chunk directory of a code-review JSON export and emit the
reviews, reviewers, patchsets, patchset_files, comments, messages, developers,
participants and contributors tables in one single-threaded pass.

Developer emails are canonicalized to run-scoped surrogate ids; emails that
fail validation are marked with id -1 and never enter the developers table.
Participants are developers who authored at least one comment or message on a
review; contributors are the subset whose text passed the contribution
classifier.

A missing patchset side-file is logged and skipped; a malformed review
document aborts the run, and partial output from an aborted run must be
discarded.

Examples:
  # Mine into headerless CSV files (default sink)
  revminer mine ./codereviews --output-dir ./tables

  # Emit Parquet instead of CSV
  revminer mine ./codereviews --sink parquet

  # Load straight into SQLite
  revminer mine ./codereviews --sink database --db-backend sqlite --db-connect reviews.db

  # Load into PostgreSQL (use env vars for credentials)
  REVMINER_DB_CONNECT="host=db dbname=reviews user=miner" revminer mine ./codereviews --sink database --db-backend postgresql`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		sink, err := tabsink.New(cfg)
		if err != nil {
			contract.LogFatal("Cannot open output sink", err)
		}
		summary, err := core.ExecuteMine(cfg.CorpusDir, sink, core.NewKeywordClassifier(), logger)
		if err != nil {
			contract.LogFatal("Mining run failed", err)
		}
		if err := report.PrintRunSummary(os.Stdout, summary, cfg); err != nil {
			contract.LogFatal("Cannot print run summary", err)
		}
	},
}
