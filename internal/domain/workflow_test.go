package domain_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	adaptermocks "retest.dev/pkg/retest/internal/adapter/mocks"
	"retest.dev/pkg/retest/internal/controller"
	controllermocks "retest.dev/pkg/retest/internal/controller/mocks"
	"retest.dev/pkg/retest/internal/domain"
	domainmocks "retest.dev/pkg/retest/internal/domain/mocks"
	m "retest.dev/pkg/retest/internal/model"
)

type workflowMocks struct {
	resultSource *adaptermocks.MockResultSource
	ui           *controllermocks.MockUI
	orchestrator *domainmocks.MockOrchestrator
	reconciler   *domainmocks.MockReconciler
}

func newTestWorkflow(t *testing.T) (domain.Workflow, workflowMocks) {
	t.Helper()

	mocks := workflowMocks{
		resultSource: adaptermocks.NewMockResultSource(t),
		ui:           controllermocks.NewMockUI(t),
		orchestrator: domainmocks.NewMockOrchestrator(t),
		reconciler:   domainmocks.NewMockReconciler(t),
	}

	wf := domain.NewWorkflow(mocks.resultSource, mocks.ui, mocks.orchestrator, mocks.reconciler)

	return wf, mocks
}

// expectStart expects Start with a single option selecting mode, and the matching Close.
func (w workflowMocks) expectStart(t *testing.T, mode controller.StartMode) {
	w.ui.EXPECT().
		Start(mock.Anything, mock.Anything).
		Run(func(_ context.Context, options ...controller.StartOption) {
			var config controller.StartConfig
			for _, option := range options {
				option(&config)
			}

			assert.Equal(t, mode, config.Mode())
		}).
		Return(nil)
	w.ui.EXPECT().Close(mock.Anything).Return()
}

func passedResult(runtimeID string) m.Result {
	return m.Result{RuntimeID: runtimeID, Outcome: m.Passed, Phase: m.Call}
}

func TestWorkflow_Update_MergesResultLogsInOrder(t *testing.T) {
	// Arrange
	ctx := context.Background()
	wf, mocks := newTestWorkflow(t)
	mocks.expectStart(t, controller.ModeUpdate)

	mocks.resultSource.EXPECT().LoadResults(mock.Anything, m.Path("first.jsonl")).Return([]m.Result{
		passedResult("a.py::test_one"),
		{RuntimeID: "a.py::test_two", Outcome: m.Failed, Phase: m.Call},
		{RuntimeID: "a.py::test_two", Outcome: m.Passed, Phase: m.Setup},
	}, nil)
	mocks.resultSource.EXPECT().LoadResults(mock.Anything, m.Path("second.yaml")).Return([]m.Result{
		passedResult("a.py::test_two"),
	}, nil)

	rec := m.Reconciliation{Report: "junit.xml", Output: "junit.xml", Action: m.ActionWritten}

	mocks.reconciler.EXPECT().
		Reconcile(mock.Anything, domain.ReconcileArgs{
			Original: "junit.xml",
			Output:   "",
			Results:  []m.Result{passedResult("a.py::test_one"), passedResult("a.py::test_two")},
		}).
		Return(rec, nil)
	mocks.ui.EXPECT().DisplayReconciliation(mock.Anything, rec).Return(nil)

	// Act
	err := wf.Update(ctx, domain.UpdateArgs{
		Report:  "junit.xml",
		Results: []m.Path{"first.jsonl", "second.yaml"},
	})

	// Assert
	require.NoError(t, err)
}

func TestWorkflow_Update_DryRunDisplaysDiff(t *testing.T) {
	// Arrange
	wf, mocks := newTestWorkflow(t)
	mocks.expectStart(t, controller.ModeUpdate)

	mocks.resultSource.EXPECT().LoadResults(mock.Anything, mock.Anything).Return(nil, nil)

	rec := m.Reconciliation{
		Report:   "junit.xml",
		Output:   "out.xml",
		DryRun:   true,
		Original: []byte("<testcase>\n  <failure/>\n</testcase>\n"),
		Updated:  []byte("<testcase>\n</testcase>\n"),
	}

	mocks.reconciler.EXPECT().
		Reconcile(mock.Anything, mock.MatchedBy(func(args domain.ReconcileArgs) bool {
			return args.DryRun && args.Output == "out.xml"
		})).
		Return(rec, nil)
	mocks.ui.EXPECT().DisplayReconciliation(mock.Anything, rec).Return(nil)
	mocks.ui.EXPECT().
		DisplayDiff(mock.Anything, mock.MatchedBy(func(diff string) bool {
			return assert.Contains(t, diff, "--- junit.xml") &&
				assert.Contains(t, diff, "+++ out.xml") &&
				assert.Contains(t, diff, "-  <failure/>")
		})).
		Return()

	// Act
	err := wf.Update(context.Background(), domain.UpdateArgs{
		Report:  "junit.xml",
		Output:  "out.xml",
		Results: []m.Path{"rerun.jsonl"},
		DryRun:  true,
	})

	// Assert
	require.NoError(t, err)
}

func TestWorkflow_Update_Validation(t *testing.T) {
	wf, _ := newTestWorkflow(t)

	err := wf.Update(context.Background(), domain.UpdateArgs{Report: "junit.xml"})
	require.ErrorIs(t, err, domain.ErrNoResults)

	err = wf.Update(context.Background(), domain.UpdateArgs{Results: []m.Path{"rerun.jsonl"}})
	require.Error(t, err)
}

func TestWorkflow_Update_LoadResultsError(t *testing.T) {
	// Arrange
	wf, mocks := newTestWorkflow(t)
	mocks.expectStart(t, controller.ModeUpdate)

	loadErr := errors.New("report log line 3: invalid JSON")
	mocks.resultSource.EXPECT().LoadResults(mock.Anything, m.Path("rerun.jsonl")).Return(nil, loadErr)

	// Act
	err := wf.Update(context.Background(), domain.UpdateArgs{Report: "junit.xml", Results: []m.Path{"rerun.jsonl"}})

	// Assert
	require.ErrorIs(t, err, loadErr)
	assert.Contains(t, err.Error(), "rerun.jsonl")
}

func TestWorkflow_Update_ReconcileError(t *testing.T) {
	// Arrange
	wf, mocks := newTestWorkflow(t)
	mocks.expectStart(t, controller.ModeUpdate)

	mocks.resultSource.EXPECT().LoadResults(mock.Anything, mock.Anything).Return([]m.Result{passedResult("a.py::t")}, nil)
	mocks.reconciler.EXPECT().
		Reconcile(mock.Anything, mock.Anything).
		Return(m.Reconciliation{}, fmt.Errorf("junit.xml: %w", domain.ErrMalformedReport))

	// Act
	err := wf.Update(context.Background(), domain.UpdateArgs{Report: "junit.xml", Results: []m.Path{"rerun.jsonl"}})

	// Assert
	require.ErrorIs(t, err, domain.ErrMalformedReport)
}

func TestWorkflow_Update_StartError(t *testing.T) {
	wf, mocks := newTestWorkflow(t)
	mocks.ui.EXPECT().Start(mock.Anything, mock.Anything).Return(context.Canceled)

	err := wf.Update(context.Background(), domain.UpdateArgs{Report: "junit.xml", Results: []m.Path{"rerun.jsonl"}})

	require.ErrorIs(t, err, context.Canceled)
}

func TestWorkflow_Exec_ReconcilesAfterRerun(t *testing.T) {
	// Arrange
	wf, mocks := newTestWorkflow(t)
	mocks.expectStart(t, controller.ModeRerun)

	command := []string{"pytest", "--last-failed", "--report-log=rerun.jsonl"}
	rec := m.Reconciliation{Report: "junit.xml", Output: "junit.xml"}

	mocks.ui.EXPECT().DisplayRerunStarted(mock.Anything, command).Return()
	mocks.orchestrator.EXPECT().
		Rerun(mock.Anything, domain.RerunArgs{Command: command, WorkDir: "tests"}).
		Return(domain.RerunOutcome{Output: "2 passed", ExitCode: 0}, nil)
	mocks.ui.EXPECT().DisplayRerunFinished(mock.Anything, "2 passed", 0, mock.Anything).Return()
	mocks.resultSource.EXPECT().LoadResults(mock.Anything, m.Path("rerun.jsonl")).Return([]m.Result{passedResult("a.py::t")}, nil)
	mocks.reconciler.EXPECT().Reconcile(mock.Anything, mock.Anything).Return(rec, nil)
	mocks.ui.EXPECT().DisplayReconciliation(mock.Anything, rec).Return(nil)

	// Act
	err := wf.Exec(context.Background(), domain.ExecArgs{
		UpdateArgs: domain.UpdateArgs{Report: "junit.xml", Results: []m.Path{"rerun.jsonl"}},
		Command:    command,
		WorkDir:    "tests",
	})

	// Assert
	require.NoError(t, err)
}

func TestWorkflow_Exec_StillFailingReconcilesAndReportsFailure(t *testing.T) {
	// Arrange
	wf, mocks := newTestWorkflow(t)
	mocks.expectStart(t, controller.ModeRerun)

	rec := m.Reconciliation{Report: "junit.xml", Output: "junit.xml", Failures: 1}

	mocks.ui.EXPECT().DisplayRerunStarted(mock.Anything, mock.Anything).Return()
	mocks.orchestrator.EXPECT().
		Rerun(mock.Anything, mock.Anything).
		Return(domain.RerunOutcome{Output: "1 failed, 1 passed", ExitCode: 1}, nil)
	mocks.ui.EXPECT().DisplayRerunFinished(mock.Anything, "1 failed, 1 passed", 1, mock.Anything).Return()
	mocks.resultSource.EXPECT().LoadResults(mock.Anything, mock.Anything).Return([]m.Result{passedResult("a.py::t")}, nil)
	mocks.reconciler.EXPECT().Reconcile(mock.Anything, mock.Anything).Return(rec, nil)
	mocks.ui.EXPECT().DisplayReconciliation(mock.Anything, rec).Return(nil)

	// Act
	err := wf.Exec(context.Background(), domain.ExecArgs{
		UpdateArgs: domain.UpdateArgs{Report: "junit.xml", Results: []m.Path{"rerun.jsonl"}},
		Command:    []string{"pytest"},
	})

	// Assert
	require.ErrorIs(t, err, domain.ErrRerunFailed)
	assert.Contains(t, err.Error(), "exit code 1")
}

func TestWorkflow_Exec_AbortedRerunSkipsReconciliation(t *testing.T) {
	// Arrange
	wf, mocks := newTestWorkflow(t)
	mocks.expectStart(t, controller.ModeRerun)

	rerunErr := fmt.Errorf("re-run timed out after 1s: %w", context.DeadlineExceeded)

	mocks.ui.EXPECT().DisplayRerunStarted(mock.Anything, mock.Anything).Return()
	mocks.orchestrator.EXPECT().
		Rerun(mock.Anything, mock.Anything).
		Return(domain.RerunOutcome{Output: "partial", ExitCode: -1}, rerunErr)
	mocks.ui.EXPECT().DisplayRerunFinished(mock.Anything, "partial", -1, rerunErr).Return()

	// Act
	err := wf.Exec(context.Background(), domain.ExecArgs{
		UpdateArgs: domain.UpdateArgs{Report: "junit.xml", Results: []m.Path{"rerun.jsonl"}},
		Command:    []string{"pytest"},
	})

	// Assert
	require.ErrorIs(t, err, context.DeadlineExceeded)
	mocks.resultSource.AssertNotCalled(t, "LoadResults", mock.Anything, mock.Anything)
	mocks.reconciler.AssertNotCalled(t, "Reconcile", mock.Anything, mock.Anything)
}

func TestWorkflow_Exec_Validation(t *testing.T) {
	wf, _ := newTestWorkflow(t)

	err := wf.Exec(context.Background(), domain.ExecArgs{
		UpdateArgs: domain.UpdateArgs{Report: "junit.xml"},
		Command:    []string{"pytest"},
	})

	require.ErrorIs(t, err, domain.ErrNoResults)
}
