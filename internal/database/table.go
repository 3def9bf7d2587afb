package database

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// ColumnsQuery lists a table's columns in declaration order.
// pragma_table_info takes the table name as a bound parameter.
const ColumnsQuery = "SELECT name FROM pragma_table_info(?) ORDER BY cid"

// TablesQuery returns the catalog query used by ListTables.
// Internal sqlite_* tables are excluded. Renames update catalog rows in
// place, so rowid order is stable for the life of a run.
func TablesQuery() (string, []any, error) {
	return sq.Select("name").
		From("sqlite_master").
		Where(sq.Eq{"type": "table"}).
		Where(sq.Expr("substr(name, 1, 7) <> ?", "sqlite_")).
		OrderBy("rowid").
		ToSql()
}

// ListTables returns the names of all user tables in catalog order.
func ListTables(ctx context.Context, q Querier) ([]string, error) {
	query, args, err := TablesQuery()
	if err != nil {
		return nil, fmt.Errorf("failed to build table query: %w", err)
	}

	return queryNames(ctx, q, query, args...)
}

// ListColumns returns the column names of a table in declaration order.
// A table that does not exist has no columns, which is reported as an error.
func ListColumns(ctx context.Context, q Querier, tableName string) ([]string, error) {
	columns, err := queryNames(ctx, q, ColumnsQuery, tableName)
	if err != nil {
		return nil, err
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("no such table: %s", tableName)
	}
	return columns, nil
}

// RenameTable renames a table. Both names are quoted.
// Driver errors are returned unwrapped; callers attach the object context.
func RenameTable(ctx context.Context, q Querier, oldName, newName string) error {
	stmt := fmt.Sprintf("ALTER TABLE %s RENAME TO %s", QuoteIdentifier(oldName), QuoteIdentifier(newName))
	_, err := q.ExecContext(ctx, stmt)
	return err
}

// RenameColumn renames a column of tableName. All names are quoted.
func RenameColumn(ctx context.Context, q Querier, tableName, oldName, newName string) error {
	stmt := fmt.Sprintf("ALTER TABLE %s RENAME COLUMN %s TO %s",
		QuoteIdentifier(tableName),
		QuoteIdentifier(oldName),
		QuoteIdentifier(newName))
	_, err := q.ExecContext(ctx, stmt)
	return err
}

func queryNames(ctx context.Context, q Querier, query string, args ...any) ([]string, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query catalog: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan catalog row: %w", err)
		}
		names = append(names, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading catalog: %w", err)
	}

	return names, nil
}
