package domain

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/sync/errgroup"
	"retest.dev/pkg/retest/internal/adapter"
	"retest.dev/pkg/retest/internal/controller"
	m "retest.dev/pkg/retest/internal/model"
)

// maxParallelLoads bounds how many result logs are read at once.
const maxParallelLoads = 4

// UpdateArgs contains the arguments for updating a report from result logs.
type UpdateArgs struct {
	Report  m.Path
	Output  m.Path
	Results []m.Path
	DryRun  bool
}

// ExecArgs contains the arguments for running the re-run command and then updating
// the report from the result logs it wrote.
type ExecArgs struct {
	UpdateArgs
	Command []string
	WorkDir m.Path
	Timeout time.Duration
}

// Workflow defines the retest workflows.
type Workflow interface {
	Update(ctx context.Context, args UpdateArgs) error
	Exec(ctx context.Context, args ExecArgs) error
}

type workflow struct {
	adapter.ResultSource
	controller.UI
	Orchestrator
	Reconciler
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	resultSource adapter.ResultSource,
	ui controller.UI,
	orchestrator Orchestrator,
	reconciler Reconciler,
) Workflow {
	return &workflow{
		ResultSource: resultSource,
		UI:           ui,
		Orchestrator: orchestrator,
		Reconciler:   reconciler,
	}
}

// Update reconciles the report with the results recorded in args.Results.
func (w *workflow) Update(ctx context.Context, args UpdateArgs) error {
	if err := validateUpdateArgs(args); err != nil {
		return err
	}

	if err := w.Start(ctx, controller.WithUpdateMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}
	defer w.Close(ctx)

	return w.update(ctx, args)
}

// Exec runs the re-run command, then reconciles the report with the results it logged.
// Tests still failing on re-run do not prevent reconciliation; the returned error then
// wraps ErrRerunFailed so callers keep the re-run's failing status.
func (w *workflow) Exec(ctx context.Context, args ExecArgs) error {
	if err := validateUpdateArgs(args.UpdateArgs); err != nil {
		return err
	}

	if err := w.Start(ctx, controller.WithRerunMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}
	defer w.Close(ctx)

	w.DisplayRerunStarted(ctx, args.Command)

	outcome, err := w.Rerun(ctx, RerunArgs{
		Command: args.Command,
		WorkDir: args.WorkDir,
		Timeout: args.Timeout,
	})

	w.DisplayRerunFinished(ctx, outcome.Output, outcome.ExitCode, err)

	if err != nil {
		return fmt.Errorf("re-run: %w", err)
	}

	if err := w.update(ctx, args.UpdateArgs); err != nil {
		return err
	}

	if !outcome.Passed() {
		return fmt.Errorf("%w: exit code %d", ErrRerunFailed, outcome.ExitCode)
	}

	return nil
}

func (w *workflow) update(ctx context.Context, args UpdateArgs) error {
	batches, err := w.loadResults(ctx, args.Results)
	if err != nil {
		return fmt.Errorf("load results: %w", err)
	}

	session := NewSession()
	for _, batch := range batches {
		session.RecordAll(batch)
	}

	slog.Debug("Collected re-run results", "logs", len(args.Results), "results", session.Len())

	rec, err := w.Reconcile(ctx, ReconcileArgs{
		Original: args.Report,
		Output:   args.Output,
		Results:  session.Results(),
		DryRun:   args.DryRun,
	})
	if err != nil {
		return fmt.Errorf("reconcile: %w", err)
	}

	if err := w.DisplayReconciliation(ctx, rec); err != nil {
		slog.Error("Failed to display reconciliation", "error", err)
		return fmt.Errorf("display: %w", err)
	}

	if args.DryRun {
		diff, err := reportDiff(rec)
		if err != nil {
			return fmt.Errorf("diff: %w", err)
		}

		w.DisplayDiff(ctx, diff)
	}

	return nil
}

// loadResults reads every result log concurrently and returns their results in the
// order the logs were given, so that later logs override earlier ones.
func (w *workflow) loadResults(ctx context.Context, paths []m.Path) ([][]m.Result, error) {
	batches := make([][]m.Result, len(paths))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(maxParallelLoads)

	for i, path := range paths {
		group.Go(func() error {
			results, err := w.LoadResults(groupCtx, path)
			if err != nil {
				slog.Error("Failed to load results", "path", path, "error", err)
				return fmt.Errorf("%s: %w", path, err)
			}

			batches[i] = results

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return batches, nil
}

func reportDiff(rec m.Reconciliation) (string, error) {
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(rec.Original)),
		B:        difflib.SplitLines(string(rec.Updated)),
		FromFile: string(rec.Report),
		ToFile:   string(rec.Output),
		Context:  3,
	})
}

func validateUpdateArgs(args UpdateArgs) error {
	if args.Report == "" {
		return fmt.Errorf("no report path given")
	}

	if len(args.Results) == 0 {
		return ErrNoResults
	}

	return nil
}
