// Package tabsink implements the append-only tabular destinations for a
// mining run: a CSV directory, a Parquet directory, or a relational database.
package tabsink

import (
	"fmt"

	"github.com/reviewlab/revminer/internal/contract"
	"github.com/reviewlab/revminer/schema"
)

// New constructs the sink selected by the validated config. All nine
// destinations are (re)initialized empty; prior contents are discarded.
func New(cfg *contract.Config) (contract.RowSink, error) {
	switch cfg.Sink {
	case schema.CSVSink:
		return NewCSVSink(cfg.OutputDir)
	case schema.ParquetSink:
		return NewParquetSink(cfg.OutputDir)
	case schema.DatabaseSink:
		return NewDatabaseSink(cfg.DBBackend, cfg.DBConnect)
	default:
		return nil, fmt.Errorf("unsupported sink: %s", cfg.Sink)
	}
}
