package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/carbonwise/carbonwise/internal/logging"
	"github.com/carbonwise/carbonwise/internal/tui"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the carbonwise CLI.
// Run without a subcommand on a terminal it starts the interactive
// comparison screen; otherwise it prints help.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:   "carbonwise",
		Short: "Compare vehicle lifecycle CO₂ emissions",
		Long: `CarbonWise ranks vehicles by total lifecycle emissions (manufacturing plus
use phase) for your daily mileage, ownership period and vehicle segment.
Rankings come from the CarbonWise ranking service.`,
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd, logResult)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if tui.DetectOutputMode(false, false, false) != tui.OutputModeInteractive {
				return cmd.Help()
			}
			return runInteractive(cmd)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging to stderr")
	cmd.PersistentFlags().String("api-url", "",
		"ranking service base URL (overrides config file and "+envAPIURLName+")")

	cmd.AddCommand(
		NewCompareCmd(),
		NewSegmentsCmd(),
		NewHealthCmd(),
		NewStatusCmd(),
		NewTUICmd(),
		newConfigCmd(),
	)

	return cmd
}

const rootCmdExample = `  # Start the interactive comparison screen
  carbonwise

  # Compare vehicles for 40 km a day over 6 years
  carbonwise compare --daily-mileage 40 --years 6 --segment "SUV (Small)"

  # Same comparison as JSON
  carbonwise compare --daily-mileage 40 --years 6 --output json

  # List the vehicle segments the service knows
  carbonwise segments

  # Check the ranking service
  carbonwise status --api-url http://ranking.internal:8000

  # Initialize configuration
  carbonwise config init`

// newConfigCmd creates the config command group.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigGetCmd())
	return cmd
}
