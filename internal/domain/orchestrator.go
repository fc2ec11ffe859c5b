package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"retest.dev/pkg/retest/internal/adapter"
	m "retest.dev/pkg/retest/internal/model"
)

// RerunArgs contains the arguments for running the re-run command.
type RerunArgs struct {
	Command []string
	WorkDir m.Path
	Timeout time.Duration
}

// RerunOutcome is what the re-run command produced.
type RerunOutcome struct {
	Output   string
	ExitCode int
}

// Passed reports whether every re-run test passed.
func (o RerunOutcome) Passed() bool {
	return o.ExitCode == 0
}

// Orchestrator runs the command that re-executes previously failing tests.
type Orchestrator interface {
	Rerun(ctx context.Context, args RerunArgs) (RerunOutcome, error)
}

type orchestrator struct {
	testAdapter adapter.TestRunnerAdapter
}

// NewOrchestrator constructs an Orchestrator backed by the provided test runner adapter.
func NewOrchestrator(testAdapter adapter.TestRunnerAdapter) Orchestrator {
	return &orchestrator{
		testAdapter: testAdapter,
	}
}

// Rerun runs the command and returns its output. A command that ran to completion is
// never an error, whatever its exit code; an error means no usable results were produced.
func (o *orchestrator) Rerun(ctx context.Context, args RerunArgs) (RerunOutcome, error) {
	if err := o.validate(args); err != nil {
		return RerunOutcome{}, err
	}

	if args.Timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, args.Timeout)
		defer cancel()
	}

	started := time.Now()

	output, exitCode, err := o.testAdapter.RunCommand(ctx, string(args.WorkDir), args.Command)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			slog.Error("Re-run timed out", "command", args.Command, "timeout", args.Timeout)
			return RerunOutcome{Output: output, ExitCode: exitCode}, fmt.Errorf("re-run timed out after %s: %w", args.Timeout, err)
		}

		slog.Error("Failed to run re-run command", "command", args.Command, "error", err)

		return RerunOutcome{Output: output, ExitCode: exitCode}, fmt.Errorf("run %q: %w", args.Command[0], err)
	}

	slog.Info("Re-run finished", "command", args.Command, "exitCode", exitCode, "elapsed", time.Since(started))

	return RerunOutcome{Output: output, ExitCode: exitCode}, nil
}

func (o *orchestrator) validate(args RerunArgs) error {
	if o.testAdapter == nil {
		return fmt.Errorf("missing test runner adapter")
	}

	if len(args.Command) == 0 {
		return fmt.Errorf("no re-run command given")
	}

	return nil
}
