package exporter

import (
	"encoding/csv"
	"fmt"

	"github.com/dmdata/dm-data-renamer/internal/renamer"
)

// Header is the first row of every mapping file.
var Header = []string{"kind", "table", "original", "generic", "status"}

// Row statuses.
const (
	StatusRenamed = "renamed"
	StatusFailed  = "failed"
	StatusPlanned = "planned"
)

// Result contains the result of a mapping export.
type Result struct {
	RowCount int
}

// WriteMapping writes every table and column entry of report to outputFile.
// Column rows carry the original name of their table so that the file can
// be used to translate generic names back. If outputFile is empty, the
// mapping goes to stdout.
func WriteMapping(report *renamer.Report, outputFile string) (*Result, error) {
	output, err := OpenOutputFile(outputFile)
	if err != nil {
		return nil, err
	}
	defer output.Close()

	writer := csv.NewWriter(output)
	writer.Comma = DetectOutputDelimiter(outputFile)

	if err := writer.Write(Header); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	rowCount := 0
	tables := report.Tables.Entries()
	for _, table := range tables {
		if err := writer.Write([]string{"table", "", table.Old, table.New, status(table, report.DryRun)}); err != nil {
			return nil, fmt.Errorf("failed to write row: %w", err)
		}
		rowCount++
	}

	for i, tc := range report.Columns {
		tableName := tc.Table
		if i < len(tables) {
			tableName = tables[i].Old
		}
		for _, column := range tc.Columns.Entries() {
			if err := writer.Write([]string{"column", tableName, column.Old, column.New, status(column, report.DryRun)}); err != nil {
				return nil, fmt.Errorf("failed to write row: %w", err)
			}
			rowCount++
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush mapping: %w", err)
	}

	return &Result{RowCount: rowCount}, nil
}

func status(e renamer.Entry, dryRun bool) string {
	switch {
	case dryRun:
		return StatusPlanned
	case e.Applied:
		return StatusRenamed
	default:
		return StatusFailed
	}
}
