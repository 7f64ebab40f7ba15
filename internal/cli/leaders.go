package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLeadersCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "leaders",
		Short: "Show the balance leaderboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result LeadersResult

			path := "/leaders"
			if limit > 0 {
				path = fmt.Sprintf("/leaders?limit=%d", limit)
			}
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Number of rows to fetch (server default: 20, max: 100)")

	return cmd
}
