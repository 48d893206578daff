// Package serve runs the HTTP API
package serve

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"finance-dashboard/cmd/root"
	"finance-dashboard/internal/config"
	"finance-dashboard/internal/database"
	"finance-dashboard/internal/server"

	"github.com/spf13/cobra"
)

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API and the background sync scheduler",
	Long: `Start the HTTP API. The database schema is migrated first when AUTO_MIGRATE is set,
and the sync scheduler runs alongside when SYNC_SCHEDULER_ENABLED is set.
SIGINT and SIGTERM drain in-flight requests before exiting.`,
	RunE: serveFunc,
}

func serveFunc(cmd *cobra.Command, args []string) error {
	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()

	db, err := database.Initialize(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			root.Log.Warn("failed to close database", "error", err)
		}
	}()

	srv, err := server.New(ctx, cfg, db.DB, root.Log)
	if err != nil {
		return err
	}

	return srv.Run(ctx)
}
