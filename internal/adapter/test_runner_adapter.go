package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"
)

const defaultCommandTimeout = 30 * time.Minute

// TestRunnerAdapter runs the command that re-executes tests.
type TestRunnerAdapter interface {
	// RunCommand runs command in workDir and returns its combined stdout/stderr
	// output and exit code. A command that ran and exited non-zero is not an error;
	// err is set only when the command could not be started or was interrupted.
	RunCommand(ctx context.Context, workDir string, command []string) (output string, exitCode int, err error)
}

// LocalTestRunnerAdapter provides a concrete implementation using os/exec.
type LocalTestRunnerAdapter struct {
	timeout time.Duration
}

// NewLocalTestRunnerAdapter constructs a LocalTestRunnerAdapter with a default 30m timeout,
// used when the caller's context has no deadline.
func NewLocalTestRunnerAdapter() *LocalTestRunnerAdapter {
	return &LocalTestRunnerAdapter{
		timeout: defaultCommandTimeout,
	}
}

// RunCommand runs command in workDir.
func (a *LocalTestRunnerAdapter) RunCommand(ctx context.Context, workDir string, command []string) (string, int, error) {
	if len(command) == 0 {
		return "", -1, errors.New("empty command")
	}

	// The caller's deadline wins over the default.
	if _, ok := ctx.Deadline(); !ok && a.timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	// #nosec G204 - the command is supplied by the user invoking the tool
	cmd := exec.CommandContext(ctx, command[0], command[1:]...)
	cmd.Dir = workDir

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	output := stdout.String() + stderr.String()

	if err == nil {
		return output, 0, nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return output, -1, fmt.Errorf("%s: %w", command[0], ctxErr)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return output, exitErr.ExitCode(), nil
	}

	return output, -1, err
}
