package database

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
)

type sqliteDialect struct{}

func (d *sqliteDialect) Name() string { return "sqlite" }

func (d *sqliteDialect) Placeholder() sq.PlaceholderFormat { return sq.Question }

func (d *sqliteDialect) QuoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func (d *sqliteDialect) TableExists(ctx context.Context, q Querier, table string) (bool, error) {
	var count int
	err := q.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM sqlite_master
		WHERE type = 'table' AND name = ?`, table).Scan(&count)
	return count > 0, err
}

func (d *sqliteDialect) ColumnExists(ctx context.Context, q Querier, table, column string) (bool, error) {
	// PRAGMA does not take bound parameters; table names come from the fixed
	// schema list, never from user input.
	rows, err := q.QueryContext(ctx, fmt.Sprintf("PRAGMA table_info(%s)", d.QuoteIdentifier(table)))
	if err != nil {
		return false, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			cid       int
			name      string
			colType   string
			notNull   int
			dfltValue interface{}
			pk        int
		)
		if err := rows.Scan(&cid, &name, &colType, &notNull, &dfltValue, &pk); err != nil {
			return false, err
		}
		if name == column {
			return true, nil
		}
	}
	return false, rows.Err()
}

func (d *sqliteDialect) InsertReturningID(ctx context.Context, q Querier, table string, columns []string, values []interface{}) (int64, error) {
	query, args, err := sq.Insert(table).
		Columns(columns...).
		Values(values...).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build insert for %s: %w", table, err)
	}

	result, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to insert into %s: %w", table, err)
	}
	return result.LastInsertId()
}
