package core

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/reviewlab/revminer/internal/contract"
	"github.com/reviewlab/revminer/schema"
)

// ExecuteMine runs one complete mining pass: walk the corpus, dump the
// developer mapping, and flush the sink. The sink is closed on every exit
// path; after a fatal error the partially written outputs are still flushed
// but must be discarded, since there is no cross-table atomicity.
func ExecuteMine(corpusDir string, sink contract.RowSink, classifier contract.Classifier, logger *slog.Logger) (schema.RunSummary, error) {
	start := time.Now()
	m := NewMiner(sink, classifier, logger)

	runErr := m.Walk(corpusDir)
	if runErr == nil {
		runErr = m.DumpDevelopers()
	}

	closeErr := sink.Close()
	if runErr != nil {
		return schema.RunSummary{}, runErr
	}
	if closeErr != nil {
		return schema.RunSummary{}, fmt.Errorf("flushing output sink: %w", closeErr)
	}

	summary := m.Summary()
	summary.DurationMs = time.Since(start).Milliseconds()
	return summary, nil
}
