package commands

import (
	"fmt"
	"time"

	authUsecase "howtouseai-backend/internal/auth/usecase"

	"github.com/spf13/cobra"
)

var (
	// Token flags
	tokenSubject string
	tokenTTL     time.Duration
)

// tokenCmd prints a signed admin token for the admin category routes
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue an admin bearer token",
	Long: `Issue a bearer token accepted by /api/admin routes. Requires ADMIN_JWT_SECRET.

Examples:
  howtouseai token --subject ops             # Token valid for ADMIN_TOKEN_TTL
  howtouseai token --subject ops --ttl 1h    # Token valid for one hour`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ttl := tokenTTL
		if ttl == 0 {
			ttl = cfg.AdminTokenTTL
		}

		token, err := authUsecase.NewAuthUsecase(cfg.AdminJWTSecret).IssueAdminToken(tokenSubject, ttl)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenSubject, "subject", "admin", "Token subject")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 0, "Token lifetime (defaults to ADMIN_TOKEN_TTL)")
}
