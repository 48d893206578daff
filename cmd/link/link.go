// Package link stores a provider account for a user
package link

import (
	"context"
	"fmt"

	"finance-dashboard/cmd/root"
	"finance-dashboard/internal/config"
	"finance-dashboard/internal/database"
	"finance-dashboard/internal/server"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

var (
	UserID            string
	ProviderAccountID string
	Name              string
	Mask              string
	AccountType       string
	Subtype           string
	AccessToken       string
)

// Cmd represents the link command
var Cmd = &cobra.Command{
	Use:   "link",
	Short: "Link a provider account to a user",
	Long: `Store a provider account and its access token for a user. The token is sealed with
VAULT_KEY before it is written. In sandbox mode any token works and produces a generated history.`,
	RunE: linkFunc,
}

func init() {
	Cmd.Flags().StringVarP(&UserID, "user", "u", "", "User ID (UUID)")
	Cmd.Flags().StringVarP(&ProviderAccountID, "account", "a", "", "Provider account ID")
	Cmd.Flags().StringVar(&Name, "name", "", "Display name")
	Cmd.Flags().StringVar(&Mask, "mask", "", "Last digits of the account number")
	Cmd.Flags().StringVar(&AccountType, "type", "depository", "Account type")
	Cmd.Flags().StringVar(&Subtype, "subtype", "checking", "Account subtype")
	Cmd.Flags().StringVar(&AccessToken, "access-token", "", "Provider access token")
	_ = Cmd.MarkFlagRequired("user")
	_ = Cmd.MarkFlagRequired("account")
	_ = Cmd.MarkFlagRequired("access-token")
}

func linkFunc(cmd *cobra.Command, args []string) error {
	userID, err := uuid.Parse(UserID)
	if err != nil {
		return fmt.Errorf("invalid --user %q: %w", UserID, err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg := config.Load()
	db, err := database.Initialize(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	svcs, err := server.NewServices(cfg, db.DB, prometheus.NewRegistry(), root.Log)
	if err != nil {
		return err
	}

	account, err := svcs.Accounts.LinkAccount(ctx, userID, ProviderAccountID, Name, Mask, AccountType, Subtype, AccessToken)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), account.ID)
	return nil
}
