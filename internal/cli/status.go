package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/carbonwise/carbonwise/internal/vehicle"
	"github.com/carbonwise/carbonwise/internal/vehicleapi"
)

// statusReport is the combined result of the status probes.
type statusReport struct {
	baseURL     string
	health      *vehicle.Health
	healthErr   error
	segments    []vehicle.Segment
	segmentsErr error
}

// NewStatusCmd creates the command that probes the health and segment
// endpoints concurrently and summarizes whether comparisons can run.
func NewStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check that the ranking service can serve comparisons",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report := probeService(cmd.Context(), newClient(cmd))
			writeStatus(cmd.OutOrStdout(), report)
			return report.err()
		},
	}
}

// probeService runs both probes in parallel. A failing probe does not
// cancel the other.
func probeService(ctx context.Context, client *vehicleapi.Client) statusReport {
	report := statusReport{baseURL: client.BaseURL()}

	var g errgroup.Group
	g.Go(func() error {
		report.health, report.healthErr = client.Health(ctx)
		return nil
	})
	g.Go(func() error {
		report.segments, report.segmentsErr = client.Segments(ctx)
		return nil
	})
	_ = g.Wait()

	return report
}

func (r statusReport) err() error {
	var errs []error
	if r.healthErr != nil {
		errs = append(errs, fmt.Errorf("health check: %w", r.healthErr))
	} else if !r.health.Healthy() {
		errs = append(errs, &ExitError{
			ExitCode: ExitCodeUnhealthy,
			Reason:   fmt.Sprintf("ranking service is not ready (status %q)", r.health.Status),
		})
	}
	if r.segmentsErr != nil {
		errs = append(errs, fmt.Errorf("segment catalog: %w", r.segmentsErr))
	} else if len(r.segments) == 0 {
		errs = append(errs, errors.New("segment catalog is empty, comparisons are disabled"))
	}
	return errors.Join(errs...)
}

func writeStatus(w io.Writer, r statusReport) {
	_, _ = fmt.Fprintf(w, "Service:   %s\n", r.baseURL)

	switch {
	case r.healthErr != nil:
		_, _ = fmt.Fprintf(w, "Health:    unreachable (%v)\n", r.healthErr)
	case r.health.Healthy():
		_, _ = fmt.Fprintf(w, "Health:    %s, %d vehicles loaded\n", r.health.Status, r.health.TotalVehicles)
	default:
		_, _ = fmt.Fprintf(w, "Health:    %s (dataset loaded: %t)\n", r.health.Status, r.health.DatasetLoaded)
	}

	switch {
	case r.segmentsErr != nil:
		_, _ = fmt.Fprintf(w, "Segments:  unavailable (%v)\n", r.segmentsErr)
	case len(r.segments) == 0:
		_, _ = fmt.Fprintln(w, "Segments:  none")
	default:
		names := make([]string, 0, len(r.segments))
		for _, s := range r.segments {
			names = append(names, string(s))
		}
		_, _ = fmt.Fprintf(w, "Segments:  %d (%s)\n", len(names), strings.Join(names, ", "))
	}

	ready := "yes"
	if r.err() != nil {
		ready = "no"
	}
	_, _ = fmt.Fprintf(w, "Ready:     %s\n", ready)
}
