package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/carbonwise/carbonwise/internal/config"
)

// NewConfigGetCmd creates the config get command.
func NewConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Print one configuration value",
		Long: `Prints the effective value of a dotted configuration key.

Keys: api.base_url, output.default_format, logging.level, logging.format, logging.file`,
		Example: `  carbonwise config get api.base_url`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := config.GetGlobalConfig().Get(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), value)
			return err
		},
	}
}
