package cmd

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eletroplus/eletroseed/internal/config"
	"github.com/eletroplus/eletroseed/internal/database"
	"github.com/eletroplus/eletroseed/internal/seeder"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
)

var (
	seedClear    bool
	seedUsers    int
	seedProducts int
	seedOrders   int
	seedRandSeed int64
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the database with sample data",
	Long: `Generate sample rows for every store entity in one transaction.

Generation runs in dependency order (categories before products, users
before addresses and orders, orders before payments) so every foreign key
points at a row created earlier in the same run.

With --clear, all previously seeded rows are deleted first — superuser
accounts are kept. The clear phase runs inside the same transaction as
the generation, so a failed run never leaves a half-emptied database.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		seedCfg := seeder.Config{
			Users:    seedUsers,
			Products: seedProducts,
			Orders:   seedOrders,
			Clear:    seedClear,
			Seed:     seedRandSeed,
		}
		if err := seedCfg.Validate(); err != nil {
			return err
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		dbURL, err := cfg.GetDatabaseURL()
		if err != nil {
			return err
		}

		db, err := openDB(cfg.Database.Provider, dbURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer db.Close()

		dialect, err := database.NewDialect(cfg.Database.Provider)
		if err != nil {
			return err
		}

		s := seeder.New(db, dialect)

		summary, err := s.Run(context.Background(), seedCfg)
		if err != nil {
			return err
		}

		summary.Print()
		return nil
	},
}

func openDB(provider, url string) (*sql.DB, error) {
	var driverName string
	switch provider {
	case "postgresql", "postgres":
		driverName = "pgx"
	case "mysql":
		driverName = "mysql"
	case "sqlite", "sqlite3":
		driverName = "sqlite3"
	default:
		driverName = "pgx"
	}

	db, err := sql.Open(driverName, url)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func init() {
	rootCmd.AddCommand(seedCmd)
	seedCmd.Flags().BoolVar(&seedClear, "clear", false, "Delete previously seeded data first (superusers are kept)")
	seedCmd.Flags().IntVar(&seedUsers, "users", 50, "Number of users to create")
	seedCmd.Flags().IntVar(&seedProducts, "products", 200, "Number of products to create")
	seedCmd.Flags().IntVar(&seedOrders, "orders", 100, "Number of orders to create")
	seedCmd.Flags().Int64Var(&seedRandSeed, "rand-seed", 0, "Random seed for reproducible runs (0 = time-based)")
}
