package source

import (
	"fmt"
	"regexp"

	"github.com/jmoiron/sqlx"
)

// Dialect captures the SQL differences between supported databases.
type Dialect struct {
	name string
	like string
	bind int
}

var (
	// Postgres uses $n placeholders and ILIKE.
	Postgres = Dialect{name: "postgres", bind: sqlx.DOLLAR, like: "ILIKE"}

	// SQLite uses ? placeholders; its LIKE is case-insensitive for ASCII.
	SQLite = Dialect{name: "sqlite", bind: sqlx.QUESTION, like: "LIKE"}
)

// Name returns the dialect name.
func (d Dialect) Name() string {
	return d.name
}

// rebind converts "?" placeholders to the dialect's bind style.
func (d Dialect) rebind(query string) string {
	return sqlx.Rebind(d.bind, query)
}

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

// ValidateIdentifier checks that name is a plain or table-qualified column name.
func ValidateIdentifier(name string) error {
	if !identifierPattern.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidIdentifier, name)
	}
	return nil
}
