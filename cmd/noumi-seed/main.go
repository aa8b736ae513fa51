package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"noumi/internal/cli"
	"noumi/internal/config"
	"noumi/internal/datasource/fixture"
	"noumi/internal/log"
)

var (
	fixtureDir string
	dbPath     string
	logger     *log.Logger
)

var rootCmd = &cobra.Command{
	Use:   "noumi-seed",
	Short: "Import fixture JSON into the noumi SQLite database",
	Long: `noumi-seed loads <resource>.json files from a fixture directory on top of
the built-in demo dataset and writes them to SQLite.

Example usage:
  noumi-seed                         # Seed SQLITE_DB_PATH from FIXTURE_DIR
  noumi-seed --dir ./data --db x.db  # Explicit paths
  noumi-seed validate --dir ./data   # Check fixtures without writing`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runImport,
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Load and validate fixtures without touching the database",
	RunE:  runValidate,
}

func init() {
	cli.LoadEnvFile()
	cfg := config.Load()

	rootCmd.PersistentFlags().StringVar(&fixtureDir, "dir", cfg.FixtureDir, "directory holding <resource>.json fixtures")
	rootCmd.Flags().StringVar(&dbPath, "db", cfg.SQLiteDBPath, "sqlite database to seed")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		logger = cli.SetupLogger(cfg.LogLevel)
	}
	rootCmd.AddCommand(validateCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	dataset, err := fixture.LoadDir(fixtureDir)
	if err != nil {
		return fmt.Errorf("load fixtures: %w", err)
	}

	repo := cli.InitSQLite(logger, dbPath)
	defer repo.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
	defer cancel()

	if err := repo.Import(ctx, dataset); err != nil {
		return fmt.Errorf("import: %w", err)
	}
	logger.Info("Database seeded", "dir", fixtureDir, "path", dbPath,
		log.FieldRecords, len(dataset.SpendingCategories))
	return nil
}

func runValidate(cmd *cobra.Command, args []string) error {
	dataset, err := fixture.LoadDir(fixtureDir)
	if err != nil {
		return err
	}
	logger.Info("Fixtures valid", "dir", fixtureDir,
		log.FieldRecords, len(dataset.SpendingCategories),
		"habits", len(dataset.Habits))
	return nil
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Stderr.WriteString("Error: " + err.Error() + "\n")
		os.Exit(1)
	}
}
