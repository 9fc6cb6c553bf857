// Package source provides the data sources a table reads its rows from.
//
// A [Source] answers two questions for a [Query]: how many rows match it
// (Count) and which rows fall on the requested page (Rows). Rows are returned
// as [Row] values keyed by column name, so a table can address any attribute
// without knowing the underlying struct.
//
// # Implementations
//
//   - [SQL] reads through database/sql using [github.com/jmoiron/sqlx]
//   - [Pgx] reads through a [github.com/jackc/pgx/v5/pgxpool.Pool] (or any [Querier])
//   - [Memory] filters, sorts and slices rows held in memory
//
// SQL backed sources build their statements from the query: searched fields are
// matched with a case-insensitive LIKE, the sort field and direction become the
// ORDER BY clause and the page becomes LIMIT/OFFSET. Table and field names are
// validated against a strict identifier pattern before they reach the statement.
//
// # Scopes
//
// A [Scope] narrows the rows a source exposes, the same way an additional
// query closure would on an ORM builder:
//
//	scope := source.NewScope().
//		Join("LEFT JOIN companies ON companies.id = users.company_id").
//		Select("users.*", "companies.name AS company").
//		Where("users.active = ?", true)
//
// SQL sources accept Select, Join and Where; the memory source accepts Filter.
// Mixing them returns [ErrUnsupportedScope].
//
// # Count caching
//
// Counting large tables is often the slowest part of rendering a page.
// [WithCountCache] wraps a source so totals are stored in a
// [github.com/dmitrymomot/tabula/pkg/cache.Cache] for a fixed TTL:
//
//	src := source.WithCountCache(
//		source.NewPgx(pool, "users"),
//		cache.NewRedis[int](client, nil, cache.WithPrefix("tabula:count")),
//		time.Minute,
//	)
package source
