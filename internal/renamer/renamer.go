// Package renamer replaces table and column names of a SQLite database
// with generic, sequentially numbered names.
//
// A run has three phases executed in order on one transaction: tables are
// renamed, then the columns of every table, then an advisory about
// constraints that still reference the original names is logged. Individual
// rename failures are logged and skipped; whatever succeeded is committed
// together at the end. Dry runs compute and log the same mapping without
// issuing a single mutating statement.
package renamer

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

// Options controls a run.
type Options struct {
	TablePrefix  string
	ColumnPrefix string
	DryRun       bool
}

// Report describes what a run did.
type Report struct {
	DryRun  bool
	Tables  *Mapping
	Columns []*TableColumns
}

// Failures returns every per-object and per-table error recorded in the run.
func (r *Report) Failures() []error {
	failures := r.Tables.Failures()
	for _, tc := range r.Columns {
		if tc.Err != nil {
			failures = append(failures, tc.Err)
		}
		failures = append(failures, tc.Columns.Failures()...)
	}
	return failures
}

// ColumnCount returns the number of columns mapped across all tables.
func (r *Report) ColumnCount() int {
	n := 0
	for _, tc := range r.Columns {
		n += tc.Columns.Len()
	}
	return n
}

// Run renames all tables and columns reachable through db.
//
// The returned error is non-nil only when the run was aborted: the table
// catalog could not be read (*CatalogError), or the transaction could not
// be started or committed. Per-object failures are reported through
// Report.Failures.
func Run(ctx context.Context, db *sql.DB, logger log.FieldLogger, opts Options) (report *Report, err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				logger.Errorf("Failed to roll back transaction: %v", rbErr)
			}
		}
	}()

	tables, err := RenameTables(ctx, tx, logger, opts.TablePrefix, opts.DryRun)
	if err != nil {
		logger.Errorf("Error during table renaming: %v", err)
		return &Report{DryRun: opts.DryRun, Tables: tables}, err
	}

	columns := RenameColumns(ctx, tx, logger, opts.ColumnPrefix, tables, opts.DryRun)
	Advise(logger, tables, opts.DryRun)

	report = &Report{DryRun: opts.DryRun, Tables: tables, Columns: columns}

	if opts.DryRun {
		logger.Info("Dry run completed. No changes were applied to the database.")
		return report, nil
	}

	if err := tx.Commit(); err != nil {
		return report, fmt.Errorf("failed to commit renames: %w", err)
	}
	committed = true

	if failures := report.Failures(); len(failures) > 0 {
		logger.Warnf("%d rename(s) failed and were skipped; see the errors above.", len(failures))
	}
	logger.Info("Database renaming completed successfully.")
	return report, nil
}
