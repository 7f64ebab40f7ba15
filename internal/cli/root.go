package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfg    *Config
	client *Client
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "duelctl",
		Short: "CLI tool for the slipper duel matchmaking server",
		Long: `duelctl is a CLI tool for operating the slipper duel matchmaking server.

It covers the server's HTTP surface: health checks, the public
leaderboard, and admin access to the training bot configuration.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			client = NewClient(cfg.ServerURL, cfg.AdminToken)
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: SLIPPERDUEL_SERVER)")
	rootCmd.PersistentFlags().StringVar(&cfg.AdminToken, "admin-token", cfg.AdminToken, "Admin token for config writes (env: SLIPPERDUEL_ADMIN_TOKEN)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")

	// Add subcommands
	rootCmd.AddCommand(newHealthCmd())
	rootCmd.AddCommand(newLeadersCmd())
	rootCmd.AddCommand(newTrainingCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
