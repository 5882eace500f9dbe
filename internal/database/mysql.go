package database

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
)

type mysqlDialect struct{}

func (d *mysqlDialect) Name() string { return "mysql" }

func (d *mysqlDialect) Placeholder() sq.PlaceholderFormat { return sq.Question }

func (d *mysqlDialect) QuoteIdentifier(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}

func (d *mysqlDialect) TableExists(ctx context.Context, q Querier, table string) (bool, error) {
	var count int
	err := q.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM information_schema.tables
		WHERE table_schema = DATABASE() AND table_name = ?`, table).Scan(&count)
	return count > 0, err
}

func (d *mysqlDialect) ColumnExists(ctx context.Context, q Querier, table, column string) (bool, error) {
	var count int
	err := q.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM information_schema.columns
		WHERE table_schema = DATABASE() AND table_name = ? AND column_name = ?`, table, column).Scan(&count)
	return count > 0, err
}

func (d *mysqlDialect) InsertReturningID(ctx context.Context, q Querier, table string, columns []string, values []interface{}) (int64, error) {
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
