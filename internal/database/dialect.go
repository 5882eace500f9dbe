package database

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// Querier is satisfied by both *sql.DB and *sql.Tx so schema checks can run
// on the raw connection while inserts run inside the seeding transaction.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// Dialect covers the per-provider differences the seeder cares about:
// placeholder style, identifier quoting and how inserted ids come back.
type Dialect interface {
	Name() string
	Placeholder() sq.PlaceholderFormat
	QuoteIdentifier(name string) string

	TableExists(ctx context.Context, q Querier, table string) (bool, error)
	ColumnExists(ctx context.Context, q Querier, table, column string) (bool, error)

	// InsertReturningID inserts one row and returns its generated primary key.
	InsertReturningID(ctx context.Context, q Querier, table string, columns []string, values []interface{}) (int64, error)
}

func NewDialect(provider string) (Dialect, error) {
	switch provider {
	case "postgresql", "postgres":
		return &postgresDialect{}, nil
	case "mysql":
		return &mysqlDialect{}, nil
	case "sqlite", "sqlite3":
		return &sqliteDialect{}, nil
	default:
		return nil, fmt.Errorf("unsupported database provider: %s", provider)
	}
}
