package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/reviewlab/revminer/schema"
)

// Default values for configuration.
const (
	DefaultOutputDirName = "revminer-out"
	DefaultLogLevel      = "info"
)

// Config holds the runtime configuration for a mining run.
// This struct remains the "final, validated" config.
type Config struct {
	CorpusDir string // Absolute path to the corpus root (chunk directories below)
	OutputDir string // Directory receiving csv/parquet outputs

	Sink      schema.SinkMode
	DBBackend schema.DatabaseBackend
	DBConnect string // Please use env var as this is plaintext

	LogLevel  string
	Width     int // Terminal width override (0 = auto-detect)
	UseColors bool
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	CorpusDirStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	OutputDir string `mapstructure:"output-dir"`
	Sink      string `mapstructure:"sink"`
	DBBackend string `mapstructure:"db-backend"`
	DBConnect string `mapstructure:"db-connect"`
	LogLevel  string `mapstructure:"log-level"`
	Width     int    `mapstructure:"width"`
	Color     string `mapstructure:"color"`
}

// ProcessAndValidate turns the raw input into a validated Config.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	// --- Corpus Directory Validation ---
	corpusDir, err := filepath.Abs(input.CorpusDirStr)
	if err != nil {
		return fmt.Errorf("invalid corpus path %q: %w", input.CorpusDirStr, err)
	}
	info, err := os.Stat(corpusDir)
	if err != nil {
		return fmt.Errorf("corpus directory %q is not accessible: %w", corpusDir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("corpus path %q is not a directory", corpusDir)
	}
	cfg.CorpusDir = corpusDir

	// --- Output Directory ---
	outputDir := input.OutputDir
	if outputDir == "" {
		outputDir = DefaultOutputDirName
	}
	cfg.OutputDir, err = filepath.Abs(outputDir)
	if err != nil {
		return fmt.Errorf("invalid output path %q: %w", outputDir, err)
	}

	// --- Sink Validation ---
	cfg.Sink = schema.SinkMode(strings.ToLower(input.Sink))
	if _, ok := schema.ValidSinkModes[cfg.Sink]; !ok {
		return fmt.Errorf("invalid sink '%s'. must be csv, parquet, database", input.Sink)
	}

	// --- Database Backend Validation ---
	cfg.DBBackend = schema.DatabaseBackend(strings.ToLower(input.DBBackend))
	if _, ok := schema.ValidDatabaseBackends[cfg.DBBackend]; !ok {
		return fmt.Errorf("invalid db backend '%s'. must be sqlite, mysql, postgresql", input.DBBackend)
	}
	cfg.DBConnect = input.DBConnect
	if cfg.Sink == schema.DatabaseSink {
		if err := ValidateDatabaseConnectionString(cfg.DBBackend, cfg.DBConnect); err != nil {
			return err
		}
	}

	// --- Logging / Presentation ---
	cfg.LogLevel = input.LogLevel
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	cfg.Width = input.Width
	useColors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid color setting: %w", err)
	}
	cfg.UseColors = useColors

	return nil
}

// ValidateDatabaseConnectionString validates the format of database connection
// strings for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}
