// Package token mints development access tokens
package token

import (
	"fmt"
	"time"

	"finance-dashboard/internal/config"
	"finance-dashboard/internal/services"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	UserID string
	Email  string
)

// Cmd represents the token command
var Cmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a development access token",
	Long: `Mint an RS256 access token for a user with the configured private key (JWT_PRIVATE_KEY).
Outside production a key pair is generated at start, so the token is only valid for a server
started with the same keys.`,
	RunE: tokenFunc,
}

func init() {
	Cmd.Flags().StringVarP(&UserID, "user", "u", "", "User ID (UUID)")
	Cmd.Flags().StringVarP(&Email, "email", "e", "dev@example.com", "Email claim")
	_ = Cmd.MarkFlagRequired("user")
}

func tokenFunc(cmd *cobra.Command, args []string) error {
	userID, err := uuid.Parse(UserID)
	if err != nil {
		return fmt.Errorf("invalid --user %q: %w", UserID, err)
	}

	cfg := config.Load()
	token, expiresAt, err := services.NewTokenService(&cfg.JWT).GenerateAccessToken(userID, Email)
	if err != nil {
		return fmt.Errorf("failed to generate token: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), token)
	fmt.Fprintf(cmd.ErrOrStderr(), "expires at %s\n", expiresAt.UTC().Format(time.RFC3339))
	return nil
}
