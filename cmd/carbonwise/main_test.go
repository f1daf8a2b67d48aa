package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/carbonwise/carbonwise/internal/cli"
	"github.com/carbonwise/carbonwise/pkg/version"
)

func TestMainComponents(t *testing.T) {
	t.Run("version available", func(t *testing.T) {
		assert.NotEmpty(t, version.GetVersion())
	})

	t.Run("cli root command", func(t *testing.T) {
		root := cli.NewRootCmd(version.String())
		assert.NotNil(t, root)
		assert.Equal(t, "carbonwise", root.Use)
	})
}

func TestExtractExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error returns 0", nil, 0},
		{"generic error", errors.New("boom"), 1},
		{"invalid input", &cli.ExitError{ExitCode: cli.ExitCodeInvalidInput, Reason: "invalid input"}, 2},
		{"unhealthy", &cli.ExitError{ExitCode: cli.ExitCodeUnhealthy, Reason: "not ready"}, 3},
		{"wrapped", fmt.Errorf("outer: %w", &cli.ExitError{ExitCode: 3, Reason: "x"}), 3},
		{"joined", errors.Join(errors.New("segments"), &cli.ExitError{ExitCode: 3, Reason: "x"}), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractExitCode(tt.err))
		})
	}
}
