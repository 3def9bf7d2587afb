package database

import "strings"

// QuoteIdentifier returns name as a double-quoted SQL identifier.
// Embedded double quotes are doubled, so any string is safe to splice
// into a statement, including reserved words and names with spaces.
func QuoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
