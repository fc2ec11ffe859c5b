// Package controller provides the output adapters that display reconciliation results.
package controller

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	m "retest.dev/pkg/retest/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeUpdate StartMode = iota
	ModeRerun
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// Mode returns the configured StartMode.
func (c StartConfig) Mode() StartMode {
	return c.mode
}

// WithUpdateMode sets the UI to display a reconciliation only.
func WithUpdateMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeUpdate
	}
}

// WithRerunMode sets the UI to display a re-run followed by a reconciliation.
func WithRerunMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeRerun
	}
}

func newStartConfig(options []StartOption) StartConfig {
	config := StartConfig{mode: ModeUpdate}
	for _, option := range options {
		option(&config)
	}

	return config
}

// UI defines how the workflow reports progress and results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	DisplayRerunStarted(ctx context.Context, command []string)
	DisplayRerunFinished(ctx context.Context, output string, exitCode int, err error)
	DisplayReconciliation(ctx context.Context, rec m.Reconciliation) error
	DisplayDiff(ctx context.Context, diff string)
}

// NewUI returns a TUI when stdout is a terminal and a SimpleUI otherwise.
func NewUI(cmd *cobra.Command, isTTY bool) UI {
	if isTTY {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
