package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newHealthCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the API is reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := a.api.Health(cmd.Context())
			if h != nil {
				fmt.Fprintf(a.out, "%s (%s)\n", h.Status, h.Timestamp.Format(time.RFC3339))
				if h.Database != "" {
					fmt.Fprintf(a.out, "database: %s\n", h.Database)
				}
			}
			return err
		},
	}
}
