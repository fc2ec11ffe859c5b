package cmd

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"retest.dev/pkg/retest/internal/domain"
	m "retest.dev/pkg/retest/internal/model"
)

func TestExecCmd_PassesCommandAfterDashes(t *testing.T) {
	mockWorkflow := swapWorkflow(t)

	mockWorkflow.EXPECT().
		Exec(mock.Anything, mock.MatchedBy(func(args domain.ExecArgs) bool {
			return args.Report == m.Path("report.xml") &&
				assert.ObjectsAreEqual([]m.Path{"rerun.jsonl"}, args.Results) &&
				assert.ObjectsAreEqual([]string{"pytest", "--last-failed", "--report-log=rerun.jsonl"}, args.Command) &&
				args.WorkDir == m.Path("tests") &&
				args.Timeout == 90*time.Second
		})).
		Return(nil)

	cmd := newTestRootCmd(t, newExecCmd(),
		"exec",
		"--update-xml", "report.xml",
		"--results", "rerun.jsonl",
		"--workdir", "tests",
		"--timeout", "90",
		"--", "pytest", "--last-failed", "--report-log=rerun.jsonl",
	)

	require.NoError(t, cmd.Execute())
}

func TestExecCmd_FlagsAfterCommandBelongToCommand(t *testing.T) {
	mockWorkflow := swapWorkflow(t)

	mockWorkflow.EXPECT().
		Exec(mock.Anything, mock.MatchedBy(func(args domain.ExecArgs) bool {
			return assert.ObjectsAreEqual([]string{"pytest", "-x", "--verbose"}, args.Command)
		})).
		Return(nil)

	cmd := newTestRootCmd(t, newExecCmd(),
		"exec", "--update-xml", "report.xml", "--results", "rerun.jsonl",
		"pytest", "-x", "--verbose",
	)

	require.NoError(t, cmd.Execute())
}

func TestExecCmd_RequiresCommand(t *testing.T) {
	swapWorkflow(t)

	cmd := newTestRootCmd(t, newExecCmd(), "exec", "--update-xml", "report.xml")

	require.Error(t, cmd.Execute())
}

func TestExecCmd_ReturnsRerunFailure(t *testing.T) {
	mockWorkflow := swapWorkflow(t)

	mockWorkflow.EXPECT().
		Exec(mock.Anything, mock.Anything).
		Return(fmt.Errorf("%w: exit code 1", domain.ErrRerunFailed))

	cmd := newTestRootCmd(t, newExecCmd(),
		"exec", "--update-xml", "report.xml", "--results", "rerun.jsonl", "--", "false",
	)

	err := cmd.Execute()
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrRerunFailed))
}
