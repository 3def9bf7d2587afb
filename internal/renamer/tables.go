package renamer

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/dmdata/dm-data-renamer/internal/database"
)

// RenameTables assigns every user table the name prefix+i, i being its
// 1-based catalog position, and applies the renames unless dryRun is set.
//
// A failed rename is logged, recorded on its entry, and skipped; the entry
// stays in the mapping. If the catalog cannot be read, an empty mapping and
// a *CatalogError are returned.
func RenameTables(ctx context.Context, q database.Querier, logger log.FieldLogger, prefix string, dryRun bool) (*Mapping, error) {
	mapping := NewMapping()

	tables, err := database.ListTables(ctx, q)
	if err != nil {
		return mapping, &CatalogError{Err: err}
	}

	for i, oldName := range tables {
		newName := GenericName(prefix, i+1)
		mapping.Add(oldName, newName)

		if dryRun {
			logger.Infof("(Dry run) Renaming table '%s' to '%s'", oldName, newName)
			continue
		}

		if err := database.RenameTable(ctx, q, oldName, newName); err != nil {
			renameErr := &RenameError{Kind: KindTable, Old: oldName, New: newName, Err: err}
			mapping.markFailed(oldName, renameErr)
			logger.Error(renameErr.Error())
			continue
		}
		mapping.markApplied(oldName)
		logger.Infof("Renamed table '%s' to '%s'", oldName, newName)
	}

	return mapping, nil
}
