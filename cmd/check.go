package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/eletroplus/eletroseed/internal/config"
	"github.com/eletroplus/eletroseed/internal/database"
	"github.com/eletroplus/eletroseed/internal/seeder"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the database schema before seeding",
	Long: `Check that every table the seeder writes to exists and that the
shipping address table carries the neighborhood column.

The seed command runs the same check and refuses to write anything when
the schema is incomplete. If the neighborhood column is missing, apply
the Django migration for the users app or run the SQL patch in
db/patches/0001_add_neighborhood.sql.`,
	RunE: func(cmd *cobra.Command, args []string) error {
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

		if err := seeder.CheckSchema(context.Background(), db, dialect); err != nil {
			if errors.Is(err, seeder.ErrSchemaMismatch) {
				color.Red("❌ %v", err)
				fmt.Println()
				color.Yellow("Remediation: run the pending migrations, or apply db/patches/0001_add_neighborhood.sql")
				return err
			}
			return err
		}

		color.Green("✅ Schema looks good — all %d tables present", len(seeder.RequiredTables))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
