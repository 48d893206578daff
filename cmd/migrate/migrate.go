// Package migrate applies and inspects the SQL schema migrations
package migrate

import (
	"context"
	"database/sql"
	"fmt"

	"finance-dashboard/cmd/root"
	"finance-dashboard/internal/config"
	"finance-dashboard/internal/database"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

var (
	// Status prints the schema version instead of migrating
	Status bool
	// Steps rolls back this many migrations when positive
	Steps int
)

// Cmd represents the migrate command
var Cmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations",
	Long:  `Apply the SQL migrations under MIGRATIONS_PATH (default db/migrations) to the configured PostgreSQL database.`,
	RunE:  migrateFunc,
}

func init() {
	Cmd.Flags().BoolVarP(&Status, "status", "s", false, "Print the current schema version and exit")
	Cmd.Flags().IntVarP(&Steps, "down", "d", 0, "Roll back the given number of migrations")
}

func migrateFunc(cmd *cobra.Command, args []string) error {
	if Steps < 0 {
		return fmt.Errorf("--down must be positive, got %d", Steps)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg := config.Load()

	sqlDB, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer sqlDB.Close()

	runner := database.NewMigrationRunner(sqlDB, cfg.Database.MigrationsPath)
	if err := runner.WaitForDatabase(ctx); err != nil {
		return err
	}

	switch {
	case Status:
		status, err := runner.Status()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "version=%d dirty=%t pending=%t\n", status.Version, status.Dirty, status.Pending)
		return nil
	case Steps > 0:
		root.Log.Info("rolling back migrations", "steps", Steps)
		return runner.Down(Steps)
	default:
		return runner.Up()
	}
}
