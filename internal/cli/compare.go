package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/carbonwise/carbonwise/internal/compare"
	"github.com/carbonwise/carbonwise/internal/config"
	"github.com/carbonwise/carbonwise/internal/render"
	"github.com/carbonwise/carbonwise/internal/tui"
)

// compareFlags holds the flags of the compare command.
type compareFlags struct {
	dailyMileage   string
	ownershipYears string
	segment        string
	output         string
}

// NewCompareCmd creates the non-interactive compare command. It runs the
// same session as the interactive screen: load the segment catalog, fill
// the form, validate, submit once.
func NewCompareCmd() *cobra.Command {
	var flags compareFlags

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Rank vehicles by lifecycle CO₂ for one set of inputs",
		Long: `Ranks vehicles by total lifecycle CO₂ (manufacturing plus use phase) for the
given daily mileage, ownership period and vehicle segment. When --segment is
omitted the first segment offered by the service is used.`,
		Example: `  # Default inputs (50 km/day, 5 years, first segment)
  carbonwise compare

  # Specific segment as JSON
  carbonwise compare --daily-mileage 35 --years 8 --segment SUV --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCompare(cmd, flags)
		},
	}

	cmd.Flags().StringVar(&flags.dailyMileage, "daily-mileage", compare.DefaultDailyMileage,
		"average distance driven per day, in km")
	cmd.Flags().StringVar(&flags.ownershipYears, "years", compare.DefaultOwnershipYears,
		"planned ownership period, in years")
	cmd.Flags().StringVar(&flags.segment, "segment", "",
		"vehicle segment (see 'carbonwise segments'; default: first listed)")
	addOutputFlag(cmd, &flags.output)

	return cmd
}

func runCompare(cmd *cobra.Command, flags compareFlags) error {
	ctx := cmd.Context()
	format, err := resolveOutputFormat(flags.output)
	if err != nil {
		return err
	}

	client := newClient(cmd)
	session := compare.NewSession()
	if err = session.LoadCatalog(ctx, client); err != nil {
		return fmt.Errorf("%s: %w", compare.MsgCatalogFailed, err)
	}

	form := session.Form()
	form.UpdateField(compare.FieldDailyMileage, flags.dailyMileage)
	form.UpdateField(compare.FieldOwnershipYears, flags.ownershipYears)
	if cmd.Flags().Changed("segment") {
		form.UpdateField(compare.FieldSegment, flags.segment)
	}

	if err = session.Compare(ctx, client); err != nil {
		return compareError(session, err)
	}

	view := render.Build(ctx, *session.Result(), *session.LastSubmitted())
	return writeComparison(cmd.OutOrStdout(), format, view)
}

// compareError maps a failed comparison to the error returned to main.
func compareError(session *compare.Session, err error) error {
	switch {
	case compare.IsValidationError(err):
		return &ExitError{ExitCode: ExitCodeInvalidInput, Reason: "invalid input: " + err.Error(), Err: err}
	case errors.Is(err, compare.ErrSubmissionDisabled):
		return err
	default:
		logger.Debug().Err(err).Msg("compare request failed")
		return fmt.Errorf("comparison failed: %s", session.Failure())
	}
}

func writeComparison(w io.Writer, format string, view render.View) error {
	if format == config.FormatJSON {
		return render.RenderJSON(w, view)
	}

	switch tui.DetectOutputMode(false, false, false) {
	case tui.OutputModeInteractive, tui.OutputModeStyled:
		_, err := fmt.Fprintln(w, tui.RenderResult(view, tui.TerminalWidth()))
		return err
	case tui.OutputModePlain:
		return render.RenderTable(w, view)
	default:
		return render.RenderTable(w, view)
	}
}
