// Package database holds the shared Postgres query builder and migrations.
package database

import sq "github.com/Masterminds/squirrel"

// QB is the query builder with PostgreSQL placeholder format.
var QB = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
