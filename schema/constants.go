package schema

// Custom string types for type safety.
type (
	// SinkMode represents the kind of output sink used for a run.
	SinkMode string

	// DatabaseBackend represents the database backend for the database sink.
	DatabaseBackend string
)

// All sink modes supported.
const (
	CSVSink      SinkMode = "csv" // default
	ParquetSink  SinkMode = "parquet"
	DatabaseSink SinkMode = "database"
)

// All database backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
)

// InvalidDevID marks an email that failed validation. It is emitted on the
// owning row but never stored in the developers table.
const InvalidDevID int64 = -1

// ValidSinkModes lists all valid sink modes.
var ValidSinkModes = map[SinkMode]struct{}{
	CSVSink:      {},
	ParquetSink:  {},
	DatabaseSink: {},
}

// ValidDatabaseBackends lists all valid database backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
}

// TableNames lists the nine output tables in emission-dump order.
var TableNames = []string{
	"reviews",
	"reviewers",
	"patchsets",
	"patchset_files",
	"comments",
	"messages",
	"developers",
	"participants",
	"contributors",
}
