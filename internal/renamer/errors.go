package renamer

import "fmt"

// ObjectKind names the kind of schema object being renamed.
type ObjectKind string

const (
	KindTable  ObjectKind = "table"
	KindColumn ObjectKind = "column"
)

// CatalogError reports a failure to enumerate schema objects.
// With an empty Table the table catalog itself could not be read and the
// run is aborted; otherwise only that table's columns are skipped.
type CatalogError struct {
	Table string
	Err   error
}

func (e *CatalogError) Error() string {
	if e.Table == "" {
		return fmt.Sprintf("failed to list tables: %v", e.Err)
	}
	return fmt.Sprintf("failed to list columns of table '%s': %v", e.Table, e.Err)
}

func (e *CatalogError) Unwrap() error {
	return e.Err
}

// Aborts reports whether the error ends the whole run.
func (e *CatalogError) Aborts() bool {
	return e.Table == ""
}

// RenameError reports a single rename statement that failed.
// The object is skipped and the run continues.
type RenameError struct {
	Kind  ObjectKind
	Table string // owning table, set for columns
	Old   string
	New   string
	Err   error
}

func (e *RenameError) Error() string {
	if e.Kind == KindColumn {
		return fmt.Sprintf("Failed to rename column '%s' in table '%s' to '%s': %v", e.Old, e.Table, e.New, e.Err)
	}
	return fmt.Sprintf("Failed to rename table '%s' to '%s': %v", e.Old, e.New, e.Err)
}

func (e *RenameError) Unwrap() error {
	return e.Err
}
