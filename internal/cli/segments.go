package cli

import (
	"github.com/spf13/cobra"

	"github.com/carbonwise/carbonwise/internal/config"
	"github.com/carbonwise/carbonwise/internal/render"
)

// NewSegmentsCmd creates the command that lists the vehicle segment catalog.
func NewSegmentsCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "segments",
		Short: "List the vehicle segments offered by the ranking service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := resolveOutputFormat(output)
			if err != nil {
				return err
			}
			segments, err := newClient(cmd).Segments(cmd.Context())
			if err != nil {
				return err
			}
			if format == config.FormatJSON {
				return render.RenderSegmentsJSON(cmd.OutOrStdout(), segments)
			}
			return render.RenderSegmentsTable(cmd.OutOrStdout(), segments)
		},
	}
	addOutputFlag(cmd, &output)

	return cmd
}
