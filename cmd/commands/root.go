package commands

import (
	"fmt"
	"os"

	"howtouseai-backend/pkg/config"
	"howtouseai-backend/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var cfg *config.Config

// rootCmd represents the base command; it serves the API when run bare
var rootCmd = &cobra.Command{
	Use:   "howtouseai",
	Short: "HowToUseAI API - categories, cards and likes",
	Long: `HowToUseAI serves the catalog of AI usage cards grouped by category.

Commands:
  serve    - Run the HTTP API (default)
  migrate  - Create or update the database schema
  token    - Issue an admin bearer token`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = config.Load()
		_, err := logger.New(logger.Options{Level: cfg.LogLevel, File: cfg.LogFile})
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd, tokenCmd)
}
