package database

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
)

type postgresDialect struct{}

func (d *postgresDialect) Name() string { return "postgresql" }

func (d *postgresDialect) Placeholder() sq.PlaceholderFormat { return sq.Dollar }

func (d *postgresDialect) QuoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func (d *postgresDialect) TableExists(ctx context.Context, q Querier, table string) (bool, error) {
	var exists bool
	err := q.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM information_schema.tables
			WHERE table_schema = 'public' AND table_name = $1
		)`, table).Scan(&exists)
	return exists, err
}

func (d *postgresDialect) ColumnExists(ctx context.Context, q Querier, table, column string) (bool, error) {
	var exists bool
	err := q.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM information_schema.columns
			WHERE table_schema = 'public' AND table_name = $1 AND column_name = $2
		)`, table, column).Scan(&exists)
	return exists, err
}

func (d *postgresDialect) InsertReturningID(ctx context.Context, q Querier, table string, columns []string, values []interface{}) (int64, error) {
	query, args, err := sq.Insert(table).
		Columns(columns...).
		Values(values...).
		Suffix("RETURNING id").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build insert for %s: %w", table, err)
	}

	var id int64
	if err := q.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to insert into %s: %w", table, err)
	}
	return id, nil
}
