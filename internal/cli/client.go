package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/carbonwise/carbonwise/internal/config"
	"github.com/carbonwise/carbonwise/internal/vehicleapi"
)

const envAPIURLName = config.EnvAPIURL

// resolveAPIURL returns --api-url when set, otherwise the configured address.
func resolveAPIURL(cmd *cobra.Command) string {
	if v, _ := cmd.Flags().GetString("api-url"); v != "" {
		return v
	}
	return config.GetAPIBaseURL()
}

// newClient builds a ranking service client for the command.
func newClient(cmd *cobra.Command) *vehicleapi.Client {
	baseURL := resolveAPIURL(cmd)
	logger.Debug().Ctx(cmd.Context()).Str("base_url", baseURL).Msg("using ranking service")
	return vehicleapi.New(baseURL)
}

// resolveOutputFormat validates the --output flag against the supported formats.
func resolveOutputFormat(flagValue string) (string, error) {
	format := config.GetOutputFormat(flagValue)
	switch format {
	case config.FormatTable, config.FormatJSON:
		return format, nil
	default:
		return "", fmt.Errorf("unsupported output format: %s (use %s or %s)",
			format, config.FormatTable, config.FormatJSON)
	}
}

// addOutputFlag registers the shared --output flag.
func addOutputFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVarP(target, "output", "o", "",
		"output format: table or json (default from config, else table)")
}
