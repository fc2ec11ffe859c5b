package domain

import (
	"context"
	"fmt"
	"log/slog"

	"retest.dev/pkg/retest/internal/adapter"
	m "retest.dev/pkg/retest/internal/model"
)

// ReconcileArgs contains the inputs of a single reconciliation pass.
type ReconcileArgs struct {
	Original m.Path
	// Output defaults to Original when empty.
	Output  m.Path
	Results []m.Result
	DryRun  bool
}

// Reconciler updates a JUnit report with the outcomes of a re-run.
type Reconciler interface {
	Reconcile(ctx context.Context, args ReconcileArgs) (m.Reconciliation, error)
}

type reconciler struct {
	adapter.ReportStore
}

// NewReconciler creates a Reconciler reading and writing reports through store.
func NewReconciler(store adapter.ReportStore) Reconciler {
	return &reconciler{ReportStore: store}
}

// Reconcile removes the failure or error marker of every report entry that passed on
// re-run and decrements the suite counters accordingly. The output is written only when
// a counter changed; otherwise the original bytes are copied to a distinct output, or
// nothing is written when output and original are the same location.
func (r *reconciler) Reconcile(ctx context.Context, args ReconcileArgs) (m.Reconciliation, error) {
	if err := ctx.Err(); err != nil {
		return m.Reconciliation{}, err
	}

	output := args.Output
	if output == "" {
		output = args.Original
	}

	source, err := r.ReadReport(ctx, args.Original)
	if err != nil {
		slog.Error("Failed to read report", "path", args.Original, "error", err)
		return m.Reconciliation{}, fmt.Errorf("%w %s: %w", ErrReadReport, args.Original, err)
	}

	report, err := parseJUnitReport(source)
	if err != nil {
		slog.Error("Failed to parse report", "path", args.Original, "error", err)
		return m.Reconciliation{}, fmt.Errorf("%s: %w", args.Original, err)
	}

	passed, err := PassedIdentities(args.Results)
	if err != nil {
		slog.Error("Failed to resolve re-run results", "error", err)
		return m.Reconciliation{}, err
	}

	rec := m.Reconciliation{
		Report:           args.Original,
		Output:           output,
		OriginalFailures: report.suite.Failures,
		OriginalErrors:   report.suite.Errors,
		Matched:          len(passed),
		DryRun:           args.DryRun,
		Original:         source,
	}

	removed := clearPassed(report, passed, &rec)
	rec.Failures = report.suite.Failures
	rec.Errors = report.suite.Errors

	if rec.Changed() {
		updated, err := report.render(removed)
		if err != nil {
			return m.Reconciliation{}, fmt.Errorf("%s: %w", args.Original, err)
		}

		rec.Updated = updated
		rec.Action = m.ActionWritten

		return rec, r.write(ctx, rec, output, updated)
	}

	rec.Updated = source

	if r.SamePath(args.Original, output) {
		rec.Action = m.ActionUnchanged
		slog.Debug("Report unchanged, nothing to write", "path", args.Original)

		return rec, nil
	}

	rec.Action = m.ActionCopied

	return rec, r.write(ctx, rec, output, source)
}

func (r *reconciler) write(ctx context.Context, rec m.Reconciliation, output m.Path, data []byte) error {
	if rec.DryRun {
		slog.Info("Dry run, report not written", "output", output, "action", rec.Action.String())
		return nil
	}

	if err := r.WriteReport(ctx, output, data); err != nil {
		slog.Error("Failed to write report", "path", output, "error", err)
		return fmt.Errorf("%w %s: %w", ErrWriteReport, output, err)
	}

	slog.Info("Report reconciled",
		"report", rec.Report,
		"output", output,
		"action", rec.Action.String(),
		"failures", rec.Failures,
		"errors", rec.Errors,
	)

	return nil
}

// PassedIdentities resolves the identity of every call-phase result that passed.
// Other outcomes and phases never affect a report.
func PassedIdentities(results []m.Result) (map[m.TestIdentity]struct{}, error) {
	passed := make(map[m.TestIdentity]struct{})

	for _, result := range results {
		if result.Phase != m.Call || result.Outcome != m.Passed {
			continue
		}

		identity, err := ResolveIdentity(result.RuntimeID)
		if err != nil {
			return nil, err
		}

		passed[identity] = struct{}{}
	}

	return passed, nil
}

func clearPassed(report *junitReport, passed map[m.TestIdentity]struct{}, rec *m.Reconciliation) []span {
	if len(passed) == 0 {
		return nil
	}

	var removed []span

	for i, tc := range report.suite.Testcases {
		identity := IdentityOf(tc.Classname, tc.Name)
		if _, ok := passed[identity]; !ok {
			continue
		}

		var marker m.Marker

		switch {
		case tc.HasFailure:
			marker = m.MarkerFailure
		case tc.HasError:
			marker = m.MarkerError
		default:
			continue
		}

		removed = append(removed, report.clear(i, marker)...)
		rec.Cleared = append(rec.Cleared, m.ClearedCase{Identity: identity, Marker: marker})

		slog.Debug("Cleared marker", "identity", identity.String(), "marker", string(marker))
	}

	return removed
}
