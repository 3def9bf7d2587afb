// Package cli provides the command-line interface for dm-data-renamer.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dmdata/dm-data-renamer/internal/config"
	"github.com/dmdata/dm-data-renamer/internal/database"
	"github.com/dmdata/dm-data-renamer/internal/exporter"
	"github.com/dmdata/dm-data-renamer/internal/logging"
	"github.com/dmdata/dm-data-renamer/internal/renamer"
)

var (
	// Colors for output
	successColor = color.New(color.FgGreen, color.Bold)
	infoColor    = color.New(color.FgCyan)
	warnColor    = color.New(color.FgYellow)
)

var rootCmd = newRootCommand()

func newRootCommand() *cobra.Command {
	v := viper.New()
	config.SetDefaults(v)
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "dm-data-renamer <database>",
		Short: "Rename tables and columns of a SQLite database to generic names",
		Long: `dm-data-renamer replaces every table name with <prefix_table><n> and every
column name with <prefix_column><n>, numbered in catalog order. Column numbering
restarts at 1 for each table.

Foreign key constraints, views and triggers are not rewritten by this tool and
should be reviewed after a run. Use --dry_run to preview the mapping first.

Every option can also be set through the environment (DM_RENAMER_PREFIX_TABLE,
DM_RENAMER_DRY_RUN, ...) or a YAML file passed with --config.`,
		Example: `  # Preview the renames
  dm-data-renamer mydatabase.db --dry_run

  # Custom prefixes
  dm-data-renamer mydatabase.db --prefix_table t_ --prefix_column c_

  # Keep a CSV of the mapping next to a custom log file
  dm-data-renamer mydatabase.db --log_file my_renamer.log --mapping_file mapping.csv`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfgFile != "" {
				v.SetConfigFile(cfgFile)
				if err := v.ReadInConfig(); err != nil {
					return fmt.Errorf("failed to read config file %q: %w", cfgFile, err)
				}
			}

			cfg, err := config.Load(v, args[0])
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cfgFile, "config", "", "Optional YAML config file")
	flags.String(config.KeyTablePrefix, config.DefaultTablePrefix, "Prefix for renamed tables")
	flags.String(config.KeyColumnPrefix, config.DefaultColumnPrefix, "Prefix for renamed columns")
	flags.Bool(config.KeyDryRun, false, "Perform a dry run without applying changes")
	flags.String(config.KeyLogFile, config.DefaultLogFile, "Path to the log file")
	flags.String(config.KeyMappingFile, "", "Write the name mapping to this CSV/TSV file (.gz to compress)")
	_ = v.BindPFlags(flags)

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// run validates the database path, renames the schema and reports.
// Log lines go to cfg.LogFile and to console; the summary goes to out.
func run(ctx context.Context, cfg *config.Config, out, console io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	logger, logCloser := logging.New(cfg.LogFile, console)
	defer logCloser.Close()

	if err := config.ValidateDatabasePath(cfg.DatabasePath); err != nil {
		logger.Errorf("File error: %v", err)
		return err
	}

	db, err := database.Open(cfg.DatabasePath)
	if err != nil {
		logger.Errorf("Database error: %v", err)
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Errorf("Failed to close database: %v", err)
			return
		}
		logger.Info("Database connection closed.")
	}()

	logger.Infof("Opened database: %s", db.Path)

	report, err := renamer.Run(ctx, db.DB, logger, renamer.Options{
		TablePrefix:  cfg.TablePrefix,
		ColumnPrefix: cfg.ColumnPrefix,
		DryRun:       cfg.DryRun,
	})
	if err != nil {
		var catalogErr *renamer.CatalogError
		if !errors.As(err, &catalogErr) {
			logger.Errorf("Database error: %v", err)
		}
		return err
	}

	if cfg.MappingFile != "" {
		result, err := exporter.WriteMapping(report, cfg.MappingFile)
		if err != nil {
			logger.Errorf("Failed to write mapping file %s: %v", cfg.MappingFile, err)
			return err
		}
		logger.Infof("Wrote %d mapping rows to %s", result.RowCount, cfg.MappingFile)
	}

	printSummary(out, report)
	return nil
}

func printSummary(out io.Writer, report *renamer.Report) {
	tables := report.Tables.Len()
	columns := report.ColumnCount()

	if report.DryRun {
		infoColor.Fprintf(out, "Dry run: %d table(s) and %d column(s) would be renamed\n", tables, columns)
		return
	}

	if failures := len(report.Failures()); failures > 0 {
		warnColor.Fprintf(out, "⚠ %d rename(s) failed, see the log for details\n", failures)
	}
	successColor.Fprintf(out, "✓ Renamed %d table(s) and %d column(s)\n", tables, columns)
}
