package cli

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/carbonwise/carbonwise/internal/tui"
)

// NewTUICmd creates the command that starts the interactive comparison screen.
func NewTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Start the interactive comparison screen",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !tui.IsTTY() {
				return errors.New("the interactive screen needs a terminal; use 'carbonwise compare' instead")
			}
			return runInteractive(cmd)
		},
	}
}

func runInteractive(cmd *cobra.Command) error {
	model := tui.NewModel(cmd.Context(), newClient(cmd))
	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running interactive screen: %w", err)
	}
	return nil
}
