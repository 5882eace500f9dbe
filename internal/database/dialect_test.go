package database

import (
	"context"
	"database/sql"
	"testing"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDialect(t *testing.T) {
	for provider, name := range map[string]string{
		"postgresql": "postgresql",
		"postgres":   "postgresql",
		"mysql":      "mysql",
		"sqlite":     "sqlite",
		"sqlite3":    "sqlite",
	} {
		d, err := NewDialect(provider)
		require.NoError(t, err, provider)
		assert.Equal(t, name, d.Name())
	}

	_, err := NewDialect("mssql")
	assert.Error(t, err)
}

func TestPlaceholderFormats(t *testing.T) {
	pg, _ := NewDialect("postgres")
	assert.Equal(t, sq.Dollar, pg.Placeholder())

	my, _ := NewDialect("mysql")
	assert.Equal(t, sq.Question, my.Placeholder())
}

func TestQuoteIdentifier(t *testing.T) {
	pg, _ := NewDialect("postgres")
	assert.Equal(t, `"order"`, pg.QuoteIdentifier("order"))

	my, _ := NewDialect("mysql")
	assert.Equal(t, "`order`", my.QuoteIdentifier("order"))
}

func openSQLite(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSQLiteIntrospection(t *testing.T) {
	ctx := context.Background()
	db := openSQLite(t)
	d, _ := NewDialect("sqlite")

	_, err := db.ExecContext(ctx, `CREATE TABLE users_shippingaddress (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		street VARCHAR(255) NOT NULL,
		neighborhood VARCHAR(100)
	)`)
	require.NoError(t, err)

	exists, err := d.TableExists(ctx, db, "users_shippingaddress")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = d.TableExists(ctx, db, "orders_order")
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = d.ColumnExists(ctx, db, "users_shippingaddress", "neighborhood")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = d.ColumnExists(ctx, db, "users_shippingaddress", "complement")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestSQLiteInsertReturningID(t *testing.T) {
	ctx := context.Background()
	db := openSQLite(t)
	d, _ := NewDialect("sqlite")

	_, err := db.ExecContext(ctx, `CREATE TABLE catalog_category (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name VARCHAR(100) NOT NULL,
		icon VARCHAR(50) NOT NULL
	)`)
	require.NoError(t, err)

	first, err := d.InsertReturningID(ctx, db, "catalog_category",
		[]string{"name", "icon"}, []interface{}{"Geladeiras", "refrigerator"})
	require.NoError(t, err)

	second, err := d.InsertReturningID(ctx, db, "catalog_category",
		[]string{"name", "icon"}, []interface{}{"Fogões", "chef-hat"})
	require.NoError(t, err)

	assert.Equal(t, first+1, second)
}
