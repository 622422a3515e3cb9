package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mhelling/podfit/internal/contract"
	"github.com/mhelling/podfit/internal/histstore"
	"github.com/mhelling/podfit/internal/parquet"
	"github.com/mhelling/podfit/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// historySetup loads minimal configuration needed for history operations.
// This is used by commands that need store access without full shared setup.
func historySetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get store-related config values
	backendStr := viper.GetString("store-backend")
	connStr := viper.GetString("store-db-connect")

	backend := schema.StoreBackend(backendStr)
	if backendStr == "" {
		backend = schema.SQLiteBackend
	}
	if _, ok := schema.ValidStoreBackends[backend]; !ok {
		return fmt.Errorf("invalid store backend %q: must be sqlite, mysql, postgresql or none", backendStr)
	}

	cfg.StoreBackend = backend
	cfg.StoreDBConnect = connStr
	cfg.OutputFile = viper.GetString("output-file")

	return nil
}

// historySetupWrapper wraps historySetup to provide PreRunE for history commands.
func historySetupWrapper(_ *cobra.Command, _ []string) error {
	return historySetup()
}

// openHistoryStore opens the configured session store.
func openHistoryStore() (histstore.SessionStore, error) {
	return histstore.NewSessionStore(cfg.StoreBackend, cfg.StoreDBConnect)
}

// historyCmd focused on session history management.
//
// Note: History subcommands use minimal initialization (historySetup) instead
// of the full sharedSetup used by the generate command. This avoids roster
// validation for simple store operations.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage stored generation sessions",
	Long: `Manage the session history that podfit records on every generate run.

Each run stores its leniency mode, player counts and the full seating result,
so past nights can be reviewed or exported for analysis.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  list    - Show recent sessions
  status  - Show history statistics and connection info
  export  - Export sessions to Parquet for analytics
  clear   - Remove all stored sessions
  migrate - Run database schema migrations

Examples:
  # Show the last five sessions
  podfit history list --limit 5

  # Export for analysis in pandas/DuckDB
  podfit history export --output-file sessions.parquet`,
}

// historyListCmd lists stored sessions.
var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show recent generation sessions, newest first",
	Long: `List stored sessions with their date, leniency and seating counts.

Examples:
  # Show everything
  podfit history list

  # Show the last five sessions
  podfit history list --limit 5`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		store, err := openHistoryStore()
		if err != nil {
			contract.LogFatal("Failed to open history store", err)
		}
		defer func() { _ = store.Close() }()

		records, err := store.ListSessions(viper.GetInt("limit"))
		if err != nil {
			contract.LogFatal("Failed to list sessions", err)
		}
		histstore.PrintSessions(records)
	},
}

// historyClearCmd clears the session history.
var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all stored generation sessions",
	Long: `Delete all stored sessions from the configured backend.

WARNING: This action cannot be undone. Consider exporting data first.

Examples:
  # Export before clearing
  podfit history export --output-file backup.parquet
  podfit history clear`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		store, err := openHistoryStore()
		if err != nil {
			contract.LogFatal("Failed to open history store", err)
		}
		defer func() { _ = store.Close() }()

		affected, err := store.ClearSessions()
		if err != nil {
			contract.LogFatal("Failed to clear sessions", err)
		}
		fmt.Printf("History cleared successfully (%d sessions removed).\n", affected)
	},
}

// historyStatusCmd shows history store status.
var historyStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display history statistics and connection details",
	Long: `Show detailed information about the session history store.

Displays:
- Backend type and location
- Total number of stored sessions

Examples:
  # Check history status
  podfit history status`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		store, err := openHistoryStore()
		if err != nil {
			contract.LogFatal("Failed to open history store", err)
		}
		defer func() { _ = store.Close() }()

		status, err := store.Status()
		if err != nil {
			contract.LogFatal("Failed to get history status", err)
		}
		histstore.PrintStoreStatus(status)
	},
}

// historyExportCmd exports session history to a Parquet file.
var historyExportCmd = &cobra.Command{
	Use:   "export [file.parquet]",
	Short: "Export session history to Parquet for analytics",
	Long: `Export all stored sessions to Parquet format for use with analytics tools.

Exports two datasets:
- Sessions - one row per generation run
- Pods - one row per pod, flattened for analytics (written next to the
  sessions file with a -pods suffix)

Parquet format enables:
- Fast querying with DuckDB, Apache Spark, pandas
- Efficient storage with columnar compression
- Direct import into BI tools

The output path may be given positionally or via --output-file.

Examples:
  # Export all sessions
  podfit history export sessions.parquet

  # Use with DuckDB for analysis
  duckdb -c "SELECT * FROM read_parquet('sessions.parquet') LIMIT 10"`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		if len(args) == 1 {
			cfg.OutputFile = args[0]
		}
		if cfg.OutputFile == "" {
			contract.LogFatal("Failed to export history", fmt.Errorf("an output path is required"))
		}

		store, err := openHistoryStore()
		if err != nil {
			contract.LogFatal("Failed to open history store", err)
		}
		defer func() { _ = store.Close() }()

		records, err := store.ListSessions(0)
		if err != nil {
			contract.LogFatal("Failed to list sessions", err)
		}

		rows := parquet.FromSessionRecords(records)
		if err := parquet.WriteSessionsParquet(rows, cfg.OutputFile); err != nil {
			contract.LogFatal("Failed to export history", err)
		}
		fmt.Printf("Exported %d sessions to %s\n", len(rows), cfg.OutputFile)

		var podRows []parquet.PodRow
		for _, rec := range records {
			if rec.ResultJSON == "" {
				continue
			}
			var view schema.ResultView
			if err := json.Unmarshal([]byte(rec.ResultJSON), &view); err != nil {
				contract.LogWarn("Skipping malformed session result", fmt.Errorf("session %s: %w", rec.ID, err))
				continue
			}
			podRows = append(podRows, parquet.FromResultView(rec.ID, view)...)
		}
		podsPath := strings.TrimSuffix(cfg.OutputFile, ".parquet") + "-pods.parquet"
		if err := parquet.WritePodsParquet(podRows, podsPath); err != nil {
			contract.LogFatal("Failed to export pod rows", err)
		}
		fmt.Printf("Exported %d pod rows to %s\n", len(podRows), podsPath)
	},
}

// historyMigrateCmd runs database migrations for the history store.
var historyMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the session history store.

By default, migrates to the latest version. Use --target-version for specific versions.

Examples:
  # Migrate to latest version (default)
  podfit history migrate

  # Rollback to initial state
  podfit history migrate --target-version 0`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := histstore.MigrateSessions(cfg.StoreBackend, cfg.StoreDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
		fmt.Println("Migrations applied successfully.")
	},
}
