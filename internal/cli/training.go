package cli

import (
	"github.com/spf13/cobra"
)

func newTrainingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "training-config",
		Short: "Manage training bot configuration",
	}

	cmd.AddCommand(newTrainingGetCmd())
	cmd.AddCommand(newTrainingSetCmd())

	return cmd
}

func newTrainingGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Show the current training bot configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result TrainingConfigResult

			if err := client.Get("/training-config", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newTrainingSetCmd() *cobra.Command {
	var (
		reactionMinMs int
		reactionMaxMs int
		missChance    float64
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update the training bot configuration (requires admin token)",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Only send fields that were explicitly set; the server
			// keeps current values for absent fields
			update := map[string]any{}
			if cmd.Flags().Changed("reaction-min-ms") {
				update["reactionMinMs"] = reactionMinMs
			}
			if cmd.Flags().Changed("reaction-max-ms") {
				update["reactionMaxMs"] = reactionMaxMs
			}
			if cmd.Flags().Changed("miss-chance") {
				update["missChance"] = missChance
			}

			var result TrainingConfigResult
			if err := client.Post("/training-config", update, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&reactionMinMs, "reaction-min-ms", 0, "Minimum bot reaction time in milliseconds")
	cmd.Flags().IntVar(&reactionMaxMs, "reaction-max-ms", 0, "Maximum bot reaction time in milliseconds")
	cmd.Flags().Float64Var(&missChance, "miss-chance", 0, "Probability the bot misses a round (0-1)")

	return cmd
}
