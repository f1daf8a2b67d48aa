package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/carbonwise/carbonwise/internal/config"
	"github.com/carbonwise/carbonwise/internal/render"
)

// NewHealthCmd creates the command that queries the ranking service health
// endpoint. It exits with ExitCodeUnhealthy when the service is reachable
// but not ready.
func NewHealthCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "health",
		Short: "Show the ranking service health",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := resolveOutputFormat(output)
			if err != nil {
				return err
			}
			client := newClient(cmd)
			health, err := client.Health(cmd.Context())
			if err != nil {
				return err
			}

			if format == config.FormatJSON {
				err = render.RenderHealthJSON(cmd.OutOrStdout(), client.BaseURL(), *health)
			} else {
				err = render.RenderHealthTable(cmd.OutOrStdout(), client.BaseURL(), *health)
			}
			if err != nil {
				return err
			}

			if !health.Healthy() {
				return &ExitError{
					ExitCode: ExitCodeUnhealthy,
					Reason:   fmt.Sprintf("ranking service is not ready (status %q, dataset loaded: %t)", health.Status, health.DatasetLoaded),
				}
			}
			return nil
		},
	}
	addOutputFlag(cmd, &output)

	return cmd
}
