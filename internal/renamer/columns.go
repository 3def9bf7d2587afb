package renamer

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/dmdata/dm-data-renamer/internal/database"
)

// TableColumns holds the column mapping of one table.
type TableColumns struct {
	Table   string // name the columns were listed under
	Columns *Mapping
	Err     error // *CatalogError when the columns could not be listed
}

// RenameColumns renames the columns of every table in tables to prefix+i,
// numbering from 1 within each table. Columns are looked up under each
// table's live name, so it must run after RenameTables on the same handle.
//
// A table whose columns cannot be listed is logged and skipped; a failed
// column rename is logged and skipped.
func RenameColumns(ctx context.Context, q database.Querier, logger log.FieldLogger, prefix string, tables *Mapping, dryRun bool) []*TableColumns {
	results := make([]*TableColumns, 0, tables.Len())
	for _, table := range tables.Entries() {
		results = append(results, renameTableColumns(ctx, q, logger, prefix, table.LiveName(), dryRun))
	}
	return results
}

func renameTableColumns(ctx context.Context, q database.Querier, logger log.FieldLogger, prefix, tableName string, dryRun bool) *TableColumns {
	result := &TableColumns{Table: tableName, Columns: NewMapping()}

	columns, err := database.ListColumns(ctx, q, tableName)
	if err != nil {
		result.Err = &CatalogError{Table: tableName, Err: err}
		logger.Error(result.Err.Error())
		return result
	}

	for i, oldName := range columns {
		newName := GenericName(prefix, i+1)
		result.Columns.Add(oldName, newName)

		if dryRun {
			logger.Infof("(Dry run) Renaming column '%s' in table '%s' to '%s'", oldName, tableName, newName)
			continue
		}

		if err := database.RenameColumn(ctx, q, tableName, oldName, newName); err != nil {
			renameErr := &RenameError{Kind: KindColumn, Table: tableName, Old: oldName, New: newName, Err: err}
			result.Columns.markFailed(oldName, renameErr)
			logger.Error(renameErr.Error())
			continue
		}
		result.Columns.markApplied(oldName)
		logger.Infof("Renamed column '%s' in table '%s' to '%s'", oldName, tableName, newName)
	}

	return result
}
