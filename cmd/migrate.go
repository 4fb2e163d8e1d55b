package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/uptrace/bun/migrate"

	"github.com/nitrazepam01/jmx-history/internal/config"
	"github.com/nitrazepam01/jmx-history/internal/history"
	"github.com/nitrazepam01/jmx-history/internal/history/migrations"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the remote store schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		if cfg.DatabaseURL == "" {
			return fmt.Errorf("JMX_DATABASE_URL not set; the sqlite fallback creates its schema on open and needs no migration")
		}

		store, err := history.OpenPostgres(cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer store.Close()

		m, ok := store.(history.Migratable)
		if !ok {
			return fmt.Errorf("store does not expose a migratable database")
		}

		ctx := cmd.Context()
		migrator := migrate.NewMigrator(m.DB(), migrations.Migrations)
		if err := migrator.Init(ctx); err != nil {
			return err
		}
		group, err := migrator.Migrate(ctx)
		if err != nil {
			return err
		}
		if group.IsZero() {
			fmt.Println("schema up to date")
			return nil
		}
		fmt.Printf("migrated to %s\n", group)
		return nil
	},
}
